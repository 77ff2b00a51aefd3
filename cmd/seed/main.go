package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/config"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/database"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/seed"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var (
		users    = flag.Int("users", 25, "number of fake users to create")
		messages = flag.Int("messages", 8, "warbles per user")
		follows  = flag.Int("follows", 5, "follow edges per user")
		likes    = flag.Int("likes", 10, "likes per user")
		fixtures = flag.String("fixtures", "", "optional YAML fixture file to load")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		logger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.MessagesPerUser = *messages
	opts.FollowsPerUser = *follows
	opts.LikesPerUser = *likes

	if err := seed.Run(db, opts); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeded fake data", "users", opts.Users)

	if *fixtures != "" {
		if err := seed.LoadFixtures(db, *fixtures); err != nil {
			logger.Error("fixture load failed", "error", err)
			os.Exit(1)
		}
		logger.Info("loaded fixtures", "file", *fixtures)
	}
}
