// Package service contains domain logic layered between handlers and repositories.
package service

import (
	"context"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/auth"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/repository"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/validation"
)

// AuthService implements signup and authentication over the user store.
type AuthService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
}

// NewAuthService creates an AuthService.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Signup validates the input, hashes the password, applies default image URLs,
// and persists the new user. Validation failures are reported before any
// store access; duplicate username/email comes back from the storage layer as
// a uniqueness violation.
func (s *AuthService) Signup(ctx context.Context, username, email, password, imageURL string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       digest,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks the user up by exact username and verifies the password
// against the stored digest. An unknown username and a wrong password return
// the identical (nil, nil) result so callers cannot distinguish them.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !s.hasher.Check(password, user.Password) {
		return nil, nil
	}
	return user, nil
}
