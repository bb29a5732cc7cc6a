package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFollow handles POST /api/follows
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	var req struct {
		FollowingID uint `json:"followingId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if req.FollowingID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("followingId is required"))
	}

	follow, err := s.followService.Create(c.Context(), currentUserID(c), req.FollowingID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// GetFollowing handles GET /api/follows/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	following, err := s.followService.ListFollowing(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(following)
}

// GetFollowers handles GET /api/follows/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	followers, err := s.followService.ListFollowers(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowStats handles GET /api/follows/stats
func (s *Server) GetFollowStats(c *fiber.Ctx) error {
	stats, err := s.followService.Stats(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(stats)
}

// CheckFollowing handles GET /api/follows/check/:userId
func (s *Server) CheckFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	following, err := s.followService.IsFollowing(c.Context(), currentUserID(c), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"isFollowing": following})
}

// DeleteFollow handles DELETE /api/follows/:userId
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Remove(c.Context(), currentUserID(c), userID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
