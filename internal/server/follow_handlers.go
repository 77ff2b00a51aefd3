package server

import (
	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	targetID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	// Self-follow is rejected outright.
	if user.ID == targetID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot follow yourself"))
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return respondAppError(c, err)
	}

	// Following twice is a no-op.
	if err := s.followRepo.Follow(ctx, user.ID, targetID); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"follower_id": user.ID,
		"followee_id": targetID,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	targetID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return respondAppError(c, err)
	}

	// Removing an absent edge is a no-op.
	if err := s.followRepo.Unfollow(ctx, user.ID, targetID); err != nil {
		return respondAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}

	followers, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := s.parseID(c, "id", "User")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return respondAppError(c, err)
	}

	following, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(following)
}
