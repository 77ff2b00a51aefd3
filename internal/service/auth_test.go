package service

import (
	"context"
	"testing"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/auth"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/database"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	return NewAuthService(users, hasher), db
}

func TestAuthService_Signup(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Signup(ctx, "newbird", "newbird@example.com", "secret123", "")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
		assert.Equal(t, models.DefaultImageURL, user.ImageURL)
		assert.Equal(t, models.DefaultHeaderImageURL, user.HeaderImageURL)
	})

	t.Run("Custom Image URL Kept", func(t *testing.T) {
		user, err := svc.Signup(ctx, "artsy", "artsy@example.com", "secret123", "/uploads/me.png")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/me.png", user.ImageURL)
	})

	t.Run("Empty Password Rejected", func(t *testing.T) {
		_, err := svc.Signup(ctx, "nopass", "nopass@example.com", "", "")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Short Password Rejected", func(t *testing.T) {
		_, err := svc.Signup(ctx, "shorty", "shorty@example.com", "abc", "")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Duplicate Username Rejected", func(t *testing.T) {
		_, err := svc.Signup(ctx, "newbird", "different@example.com", "secret123", "")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNIQUENESS_VIOLATION", appErr.Code)
	})

	t.Run("Duplicate Email Rejected", func(t *testing.T) {
		_, err := svc.Signup(ctx, "otherbird", "newbird@example.com", "secret123", "")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNIQUENESS_VIOLATION", appErr.Code)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "loginbird", "loginbird@example.com", "correcthorse", "")
	require.NoError(t, err)

	t.Run("Valid Credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "loginbird", "correcthorse")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "loginbird", user.Username)
	})

	// Unknown username and wrong password must be indistinguishable.
	t.Run("Wrong Password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "loginbird", "wrongpass")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Unknown Username", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "nosuchbird", "correcthorse")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
