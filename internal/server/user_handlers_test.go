package server

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsers(t *testing.T) {
	app, s := setupTestServer(t)
	signupUser(t, s, "warblerone")
	signupUser(t, s, "warblertwo")
	signupUser(t, s, "somebodyelse")

	t.Run("List All", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var users []models.User
		decodeBody(t, resp, &users)
		assert.Len(t, users, 3)
	})

	t.Run("Search By Username Fragment", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users?q=warbler", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var users []models.User
		decodeBody(t, resp, &users)
		assert.Len(t, users, 2)
	})
}

func TestGetUserProfile(t *testing.T) {
	app, s := setupTestServer(t)
	user, _ := signupUser(t, s, "profiled")
	require.NoError(t, s.messageRepo.Create(context.Background(),
		&models.Message{Text: "profile warble", UserID: user.ID}))

	t.Run("Found With Recent Warbles", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(int(user.ID)), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.User
		decodeBody(t, resp, &got)
		assert.Equal(t, "profiled", got.Username)
		assert.Equal(t, models.DefaultImageURL, got.ImageURL)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "profile warble", got.Messages[0].Text)
	})

	t.Run("Missing", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users/99999", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users/notanumber", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMyProfile(t *testing.T) {
	app, s := setupTestServer(t)
	user, token := signupUser(t, s, "selfie")

	t.Run("Get", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.User
		decodeBody(t, resp, &got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("Update Requires Password Confirmation", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/api/users/me", token,
			map[string]string{"bio": "new bio", "password": "wrongpass"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Update With Correct Password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/api/users/me", token,
			map[string]string{"bio": "new bio", "location": "The Nest", "password": "password123"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.User
		decodeBody(t, resp, &got)
		assert.Equal(t, "new bio", got.Bio)
		assert.Equal(t, "The Nest", got.Location)
	})

	t.Run("Requires Session", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDeleteMyAccount(t *testing.T) {
	app, s := setupTestServer(t)
	doomed, doomedToken := signupUser(t, s, "doomed")
	survivor, survivorToken := signupUser(t, s, "survivor")
	ctx := context.Background()

	// Build a small graph around the doomed account.
	doomedMsg := &models.Message{Text: "soon gone", UserID: doomed.ID}
	require.NoError(t, s.messageRepo.Create(ctx, doomedMsg))
	survivorMsg := &models.Message{Text: "still here", UserID: survivor.ID}
	require.NoError(t, s.messageRepo.Create(ctx, survivorMsg))
	require.NoError(t, s.followRepo.Follow(ctx, doomed.ID, survivor.ID))
	require.NoError(t, s.followRepo.Follow(ctx, survivor.ID, doomed.ID))
	require.NoError(t, s.likeRepo.Like(ctx, doomed.ID, survivorMsg.ID))
	require.NoError(t, s.likeRepo.Like(ctx, survivor.ID, doomedMsg.ID))

	resp := doRequest(t, app, http.MethodDelete, "/api/users/me", doomedToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The account and everything bound to it is gone.
	resp = doRequest(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(int(doomed.ID)), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.Message{}).Where("user_id = ?", doomed.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, s.db.Model(&models.Follow{}).
		Where("follower_id = ? OR followee_id = ?", doomed.ID, doomed.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, s.db.Model(&models.Like{}).
		Where("user_id = ? OR message_id = ?", doomed.ID, doomedMsg.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// The stale token no longer opens any guarded door.
	resp = doRequest(t, app, http.MethodGet, "/api/users/me", doomedToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Bystanders keep their data.
	resp = doRequest(t, app, http.MethodGet, "/api/users/me", survivorToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	still, err := s.messageRepo.GetByID(ctx, survivorMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, "still here", still.Text)
}

func TestGetUserMessages(t *testing.T) {
	app, s := setupTestServer(t)
	user, _ := signupUser(t, s, "chirper")
	signupUser(t, s, "quiet")

	ctx := context.Background()
	require.NoError(t, s.messageRepo.Create(ctx, &models.Message{Text: "one", UserID: user.ID}))
	require.NoError(t, s.messageRepo.Create(ctx, &models.Message{Text: "two", UserID: user.ID}))

	resp := doRequest(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(int(user.ID))+"/messages", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []models.Message
	decodeBody(t, resp, &messages)
	assert.Len(t, messages, 2)
}
