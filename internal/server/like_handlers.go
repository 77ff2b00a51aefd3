package server

import (
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeMessage handles POST /api/messages/:id/like
func (s *Server) LikeMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	messageID, err := s.parseID(c, "id", "Message")
	if err != nil {
		return nil
	}

	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return respondAppError(c, err)
	}

	// Users cannot like their own warbles.
	if message.UserID == user.ID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot like your own warble"))
	}

	// Liking twice is a no-op.
	if err := s.likeRepo.Like(ctx, user.ID, messageID); err != nil {
		return respondAppError(c, err)
	}

	updated, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(updated)
}

// UnlikeMessage handles DELETE /api/messages/:id/like
func (s *Server) UnlikeMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	messageID, err := s.parseID(c, "id", "Message")
	if err != nil {
		return nil
	}

	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return respondAppError(c, err)
	}

	// Removing an absent like is a no-op.
	if err := s.likeRepo.Unlike(ctx, user.ID, messageID); err != nil {
		return respondAppError(c, err)
	}

	updated, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(updated)
}

// GetMessageLikes handles GET /api/messages/:id/likes
func (s *Server) GetMessageLikes(c *fiber.Ctx) error {
	ctx := c.Context()

	messageID, err := s.parseID(c, "id", "Message")
	if err != nil {
		return nil
	}

	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return respondAppError(c, err)
	}

	likes, err := s.likeRepo.LikesForMessage(ctx, messageID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(likes)
}

// GetUserLikes handles GET /api/users/:id/likes
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}

	page := parsePagination(c, 20)
	messages, err := s.likeRepo.LikedMessages(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}
