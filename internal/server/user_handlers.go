package server

import (
	"fmt"
	"time"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/cache"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUsers handles GET /api/users, optionally filtered by ?q= username search.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	var (
		users []models.User
		err   error
	)
	if q := c.Query("q"); q != "" {
		users, err = s.userRepo.Search(ctx, q, page.Limit, page.Offset)
	} else {
		users, err = s.userRepo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(users)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me. Editing a profile requires the
// account password as confirmation.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		Password       string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	confirmed, err := s.authService.Authenticate(ctx, user.Username, req.Password)
	if err != nil {
		return respondAppError(c, err)
	}
	if confirmed == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Access unauthorized"))
	}

	if req.Username != "" {
		if err := validation.ValidateUsername(req.Username); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Username = req.Username
	}
	if req.Email != "" {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Email = req.Email
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.HeaderImageURL != "" {
		user.HeaderImageURL = req.HeaderImageURL
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return respondAppError(c, err)
	}

	cache.Invalidate(ctx, userCacheKey(user.ID))

	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me. The cascade to warbles,
// follow edges, and likes happens in the repository transaction.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return respondAppError(c, err)
	}

	cache.Invalidate(ctx, userCacheKey(user.ID))

	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserProfile handles GET /api/users/:id with cache-aside reads.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	var user models.User
	cacheErr := cache.CacheAside(ctx, userCacheKey(userID), &user, userCacheTTL, func() error {
		found, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		user = *found
		return nil
	})
	if cacheErr != nil {
		return respondAppError(c, cacheErr)
	}

	// Recent warbles ride along but never enter the cache entry.
	messages, err := s.messageRepo.GetByUserID(ctx, userID, 20, 0)
	if err != nil {
		return respondAppError(c, err)
	}
	user.Messages = messages

	return c.JSON(user)
}

// GetUserMessages handles GET /api/users/:id/messages
func (s *Server) GetUserMessages(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}

	page := parsePagination(c, 20)
	messages, err := s.messageRepo.GetByUserID(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}
