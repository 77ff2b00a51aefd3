package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()

	var got Pagination
	app.Get("/page", func(c *fiber.Ctx) error {
		got = parsePagination(c, 20)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name     string
		query    string
		expected Pagination
	}{
		{"Defaults", "", Pagination{Limit: 20, Offset: 0}},
		{"Explicit", "?limit=5&offset=10", Pagination{Limit: 5, Offset: 10}},
		{"Limit Capped", "?limit=5000", Pagination{Limit: 100, Offset: 0}},
		{"Negative Limit Falls Back", "?limit=-1", Pagination{Limit: 20, Offset: 0}},
		{"Negative Offset Clamped", "?offset=-7", Pagination{Limit: 20, Offset: 0}},
		{"Garbage Values Fall Back", "?limit=abc&offset=xyz", Pagination{Limit: 20, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/page"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseIDRoute(t *testing.T) {
	s := &Server{}
	app := fiber.New()

	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id", "Thing")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"Numeric", "/things/42", http.StatusOK},
		{"Non Numeric", "/things/notanumber", http.StatusNotFound},
		{"Zero", "/things/0", http.StatusNotFound},
		{"Negative", "/things/-3", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
