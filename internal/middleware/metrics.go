package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// Metrics returns a Fiber handler recording request counts and latencies.
func Metrics(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
