package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/database"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRun(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{
		Users:           5,
		MessagesPerUser: 3,
		FollowsPerUser:  2,
		LikesPerUser:    4,
		Password:        "seedpass",
	}
	require.NoError(t, Run(db, opts))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(5), userCount)

	var messageCount int64
	require.NoError(t, db.Model(&models.Message{}).Count(&messageCount).Error)
	assert.Equal(t, int64(15), messageCount)

	var messages []models.Message
	require.NoError(t, db.Find(&messages).Error)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m.Text), models.MaxMessageLength)
		assert.NotZero(t, m.UserID)
	}

	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = followee_id").Count(&selfFollows).Error)
	assert.Equal(t, int64(0), selfFollows)

	var selfLikes int64
	require.NoError(t, db.Table("likes").
		Joins("JOIN messages ON messages.id = likes.message_id").
		Where("likes.user_id = messages.user_id").
		Count(&selfLikes).Error)
	assert.Equal(t, int64(0), selfLikes)
}

func TestLoadFixtures(t *testing.T) {
	db := setupTestDB(t)

	fixture := `users:
  - username: tuckerdiane
    email: tuckerdiane@example.com
    password: fixturepass
    bio: first fixture account
    messages:
      - hello from the fixture file
      - a second warble
  - username: quietfinch
    email: quietfinch@example.com
    password: fixturepass
`
	path := filepath.Join(t.TempDir(), "fixtures.yml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	require.NoError(t, LoadFixtures(db, path))

	var user models.User
	require.NoError(t, db.Where("username = ?", "tuckerdiane").First(&user).Error)
	assert.Equal(t, "first fixture account", user.Bio)
	assert.NotEqual(t, "fixturepass", user.Password, "fixture passwords are stored hashed")

	var messageCount int64
	require.NoError(t, db.Model(&models.Message{}).Where("user_id = ?", user.ID).Count(&messageCount).Error)
	assert.Equal(t, int64(2), messageCount)

	var silent models.User
	require.NoError(t, db.Where("username = ?", "quietfinch").First(&silent).Error)

	t.Run("Missing File", func(t *testing.T) {
		assert.Error(t, LoadFixtures(db, filepath.Join(t.TempDir(), "nope.yml")))
	})
}
