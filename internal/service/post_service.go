package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxPostLength = 500

var hashtagRegex = regexp.MustCompile(`#(\w+)`)

// PostService manages the post store and composes feeds.
type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// CreatePostInput carries the fields of a new post or reply.
type CreatePostInput struct {
	Content      string `json:"content"`
	ParentPostID *uint  `json:"parent_post_id"`
}

// SearchResult pairs one page of matches with the globally most used
// hashtags. The hashtag list is not scoped to the query.
type SearchResult struct {
	Posts           models.Page[models.Post] `json:"posts"`
	PopularHashtags []models.HashtagCount    `json:"popularHashtags"`
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, followRepo repository.FollowRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, followRepo: followRepo}
}

// extractHashtags pulls #tags out of content, keeping first-seen order.
// Dedup is exact-string: #World and #world are distinct tags.
func extractHashtags(content string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(content, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		tag := m[1]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Create stores a new post. A reply's parent must exist.
func (s *PostService) Create(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewBadRequestError("Content is required")
	}
	if len(content) > maxPostLength {
		return nil, models.NewBadRequestError("Content too long (max 500 characters)")
	}

	if in.ParentPostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *in.ParentPostID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Content:      content,
		UserID:       userID,
		ParentPostID: in.ParentPostID,
		Hashtags:     extractHashtags(content),
		Type:         models.PostTypeOriginal,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// FindOne returns the post with author, likes and parent loaded.
func (s *PostService) FindOne(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update edits a post's content. Editing someone else's post reports
// NotFound, never Forbidden, so post existence is not probeable.
func (s *PostService) Update(ctx context.Context, id, userID uint, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewNotFoundError("Post", id)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewBadRequestError("Content is required")
	}
	if len(content) > maxPostLength {
		return nil, models.NewBadRequestError("Content too long (max 500 characters)")
	}

	post.Content = content
	post.Hashtags = extractHashtags(content)
	post.IsEdited = true
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Remove deletes a post with the same NotFound masking as Update.
func (s *PostService) Remove(ctx context.Context, id, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewNotFoundError("Post", id)
	}
	return s.postRepo.Delete(ctx, id)
}

// Share creates a share post referencing the original. Comment content is
// optional.
func (s *PostService) Share(ctx context.Context, userID, postID uint, content string) (*models.Post, error) {
	original, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if len(content) > maxPostLength {
		return nil, models.NewBadRequestError("Content too long (max 500 characters)")
	}

	// Share commentary is stored as-is; it does not feed the hashtag index.
	share := &models.Post{
		Content:        content,
		UserID:         userID,
		OriginalPostID: &original.ID,
		Type:           models.PostTypeShare,
	}
	if err := s.postRepo.Create(ctx, share); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, share.ID)
}

// FindAll lists posts sorted "recent" (default) or "popular".
func (s *PostService) FindAll(ctx context.Context, sort string, params models.PaginationParams) (*models.Page[models.Post], error) {
	if sort != "popular" {
		sort = "recent"
	}
	posts, total, err := s.postRepo.List(ctx, sort, params)
	if err != nil {
		return nil, err
	}
	page := models.NewPage(posts, total, params)
	return &page, nil
}

// Feed returns posts from the user's followees and the user themselves,
// newest first.
func (s *PostService) Feed(ctx context.Context, userID uint, params models.PaginationParams) (*models.Page[models.Post], error) {
	ids, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, userID)

	posts, total, err := s.postRepo.ListByUsers(ctx, ids, params)
	if err != nil {
		return nil, err
	}
	page := models.NewPage(posts, total, params)
	return &page, nil
}

// Search matches content and hashtags. The popular-hashtags side list is
// always the global top 10.
func (s *PostService) Search(ctx context.Context, query string, tags []string, params models.PaginationParams) (*SearchResult, error) {
	posts, total, err := s.postRepo.Search(ctx, query, tags, params)
	if err != nil {
		return nil, err
	}
	popular, err := s.postRepo.TopHashtags(ctx, 10)
	if err != nil {
		return nil, err
	}
	if popular == nil {
		popular = []models.HashtagCount{}
	}
	return &SearchResult{
		Posts:           models.NewPage(posts, total, params),
		PopularHashtags: popular,
	}, nil
}

// FindByHashtag lists posts carrying the exact tag.
func (s *PostService) FindByHashtag(ctx context.Context, tag string, params models.PaginationParams) (*models.Page[models.Post], error) {
	posts, total, err := s.postRepo.ListByHashtag(ctx, tag, params)
	if err != nil {
		return nil, err
	}
	page := models.NewPage(posts, total, params)
	return &page, nil
}

// Trending returns the most liked posts of a recent window.
func (s *PostService) Trending(ctx context.Context, timeframe string, limit int) ([]models.Post, error) {
	var window time.Duration
	switch timeframe {
	case "24h":
		window = 24 * time.Hour
	case "7d":
		window = 7 * 24 * time.Hour
	case "30d":
		window = 30 * 24 * time.Hour
	default:
		return nil, models.NewBadRequestError("Invalid timeframe: must be one of 24h, 7d, 30d")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.postRepo.ListTrending(ctx, time.Now().Add(-window), limit)
}

// FindUserPosts lists one user's posts; the user must exist.
func (s *PostService) FindUserPosts(ctx context.Context, userID uint, params models.PaginationParams) (*models.Page[models.Post], error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	posts, total, err := s.postRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	page := models.NewPage(posts, total, params)
	return &page, nil
}

// FindReplies lists a post's replies oldest first; the parent must exist.
func (s *PostService) FindReplies(ctx context.Context, postID uint, params models.PaginationParams) (*models.Page[models.Post], error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	posts, total, err := s.postRepo.ListReplies(ctx, postID, params)
	if err != nil {
		return nil, err
	}
	page := models.NewPage(posts, total, params)
	return &page, nil
}
