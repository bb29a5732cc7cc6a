package server

import (
	"strings"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content      string `json:"content"`
		ParentPostID *uint  `json:"parent_post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), currentUserID(c), service.CreatePostInput{
		Content:      req.Content,
		ParentPostID: req.ParentPostID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts?sort=recent|popular
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, err := s.postService.FindAll(c.Context(), c.Query("sort"), parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(page)
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.postService.Feed(c.Context(), currentUserID(c), parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(page)
}

// SearchPosts handles GET /api/posts/search?q=...&tags=a,b
// Both filters are optional; an unfiltered search pages through everything
// newest first.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	result, err := s.postService.Search(c.Context(), c.Query("q"), splitTags(c.Query("tags")), parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(result)
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// GetTrendingPosts handles GET /api/posts/trending?timeframe=24h|7d|30d&limit=n
func (s *Server) GetTrendingPosts(c *fiber.Ctx) error {
	timeframe := c.Query("timeframe", "24h")
	limit := c.QueryInt("limit", 10)

	posts, err := s.postService.Trending(c.Context(), timeframe, limit)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPostsByHashtag handles GET /api/posts/hashtag/:tag
func (s *Server) GetPostsByHashtag(c *fiber.Ctx) error {
	tag := c.Params("tag")
	if tag == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Hashtag is required"))
	}

	page, err := s.postService.FindByHashtag(c.Context(), tag, parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(page)
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page, err := s.postService.FindUserPosts(c.Context(), userID, parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(page)
}

// GetReplies handles GET /api/posts/replies/:postId
func (s *Server) GetReplies(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	page, err := s.postService.FindReplies(c.Context(), postID, parsePagination(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(page)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.FindOne(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PATCH /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), id, currentUserID(c), req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Remove(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SharePost handles POST /api/posts/:id/share
func (s *Server) SharePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	// The share body is optional commentary; an empty body is fine.
	_ = c.BodyParser(&req)

	post, err := s.postService.Share(c.Context(), currentUserID(c), id, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}
