// Package seed populates a development database with fake users, warbles,
// and social-graph edges.
package seed

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/auth"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	MessagesPerUser int
	FollowsPerUser  int
	LikesPerUser    int
	Password        string // plaintext password shared by all seeded accounts
}

// DefaultOptions returns a small but connected data set.
func DefaultOptions() Options {
	return Options{
		Users:           25,
		MessagesPerUser: 8,
		FollowsPerUser:  5,
		LikesPerUser:    10,
		Password:        "password123",
	}
}

// Run generates users, warbles, follows, and likes. Safe to re-run: edge
// inserts are ON CONFLICT DO NOTHING and usernames are uniquely suffixed.
func Run(db *gorm.DB, opts Options) error {
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	digest, err := hasher.Hash(opts.Password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := models.User{
			Username:       fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Email:          fmt.Sprintf("seed%d_%s", i, gofakeit.Email()),
			Password:       digest,
			Bio:            gofakeit.Sentence(8),
			Location:       gofakeit.City(),
			ImageURL:       models.DefaultImageURL,
			HeaderImageURL: models.DefaultHeaderImageURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, user)
	}

	var messages []models.Message
	for _, user := range users {
		for i := 0; i < opts.MessagesPerUser; i++ {
			text := gofakeit.Sentence(rand.Intn(12) + 3)
			if len(text) > models.MaxMessageLength {
				text = text[:models.MaxMessageLength]
			}
			message := models.Message{Text: text, UserID: user.ID}
			if err := db.Create(&message).Error; err != nil {
				return fmt.Errorf("seed message for user %d: %w", user.ID, err)
			}
			messages = append(messages, message)
		}
	}

	for _, user := range users {
		for i := 0; i < opts.FollowsPerUser; i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			edge := models.Follow{FollowerID: user.ID, FolloweeID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}

		for i := 0; i < opts.LikesPerUser; i++ {
			message := messages[rand.Intn(len(messages))]
			if message.UserID == user.ID {
				continue
			}
			edge := models.Like{UserID: user.ID, MessageID: message.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	return nil
}

// Fixture mirrors the YAML shape consumed by LoadFixtures.
type Fixture struct {
	Users []struct {
		Username string   `yaml:"username"`
		Email    string   `yaml:"email"`
		Password string   `yaml:"password"`
		Bio      string   `yaml:"bio"`
		Messages []string `yaml:"messages"`
	} `yaml:"users"`
}

// LoadFixtures reads a YAML fixture file and inserts its users and warbles.
// Fixture users get stable, human-memorable credentials for local testing.
func LoadFixtures(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	for _, fu := range fixture.Users {
		digest, err := hasher.Hash(fu.Password)
		if err != nil {
			return fmt.Errorf("hash fixture password: %w", err)
		}
		user := models.User{
			Username:       fu.Username,
			Email:          fu.Email,
			Password:       digest,
			Bio:            fu.Bio,
			ImageURL:       models.DefaultImageURL,
			HeaderImageURL: models.DefaultHeaderImageURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("fixture user %q: %w", fu.Username, err)
		}
		for _, text := range fu.Messages {
			if err := db.Create(&models.Message{Text: text, UserID: user.ID}).Error; err != nil {
				return fmt.Errorf("fixture message for %q: %w", fu.Username, err)
			}
		}
	}

	return nil
}
