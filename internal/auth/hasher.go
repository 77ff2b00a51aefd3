// Package auth provides the password hashing capability used by signup and
// authentication.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts the salted one-way hash used for credentials.
// Signup calls Hash; Authenticate calls Check. Nothing else in the
// application touches password bytes.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password against a stored digest.
	Check(password, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt at the given cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher using bcrypt.DefaultCost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost returns a BcryptHasher with an explicit cost.
// Tests use bcrypt.MinCost to keep hashing fast.
func NewBcryptHasherWithCost(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
