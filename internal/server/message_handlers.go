package server

import (
	"errors"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"
	"github.com/srinipandiyan/26-Twitter-Clone/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMessages handles GET /api/messages
func (s *Server) GetMessages(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	messages, err := s.messageRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}

// CreateMessage handles POST /api/messages
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	// Guard runs before the body is even considered: no valid session, no write.
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateMessageText(req.Text, models.MaxMessageLength); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	message := &models.Message{
		Text:   req.Text,
		UserID: user.ID,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return respondAppError(c, err)
	}

	// Load owner data for response
	created, err := s.messageRepo.GetByID(ctx, message.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMessage handles GET /api/messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id", "Message")
	if err != nil {
		return nil
	}

	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(message)
}

// DeleteMessage handles DELETE /api/messages/:id
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	id, err := s.parseID(c, "id", "Message")
	if err != nil {
		return nil
	}

	// Ownership check and delete are one transaction inside the repository.
	if err := s.messageRepo.DeleteOwned(ctx, id, user.ID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "UNAUTHORIZED" {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Access unauthorized"))
		}
		return respondAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFeed handles GET /api/feed: the home timeline of warbles from followed
// users plus the requester's own.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	messages, err := s.messageRepo.Feed(ctx, user.ID, page.Limit, page.Offset)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}
