package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLike handles POST /api/likes
func (s *Server) CreateLike(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"postId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("postId is required"))
	}

	like, err := s.likeService.Create(c.Context(), currentUserID(c), req.PostID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// DeleteLike handles DELETE /api/likes/:postId
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.likeService.Remove(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CheckLiked handles GET /api/likes/check/:postId
func (s *Server) CheckLiked(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	liked, err := s.likeService.HasLiked(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"hasLiked": liked})
}

// GetPostLikes handles GET /api/likes/post/:postId
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	likes, err := s.likeService.ListForPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(likes)
}

// GetPostLikeCount handles GET /api/likes/post/:postId/count
func (s *Server) GetPostLikeCount(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountForPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// GetMyLikes handles GET /api/likes/user/me
func (s *Server) GetMyLikes(c *fiber.Ctx) error {
	likes, err := s.likeService.ListForUser(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(likes)
}

// GetUserLikes handles GET /api/likes/user/:userId
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	likes, err := s.likeService.ListForUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(likes)
}
