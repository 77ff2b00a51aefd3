package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/auth"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/config"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/database"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/repository"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires a Server against an in-memory SQLite database with
// real repositories, then registers the full route table.
func setupTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	s := &Server{
		config:      &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:          db,
		userRepo:    userRepo,
		messageRepo: repository.NewMessageRepository(db),
		followRepo:  repository.NewFollowRepository(db),
		likeRepo:    repository.NewLikeRepository(db),
		authService: service.NewAuthService(userRepo, auth.NewBcryptHasherWithCost(bcrypt.MinCost)),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

// signupUser creates an account through the auth service and returns it with
// a valid bearer token.
func signupUser(t *testing.T, s *Server, username string) (*models.User, string) {
	t.Helper()

	user, err := s.authService.Signup(context.Background(), username, username+"@example.com", "password123", "")
	require.NoError(t, err)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

// doRequest performs a JSON request against the test app; token may be empty.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
