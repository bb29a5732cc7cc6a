package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// LikeService manages the like index.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo}
}

// Create likes a post. The post must exist; liking twice is a Conflict.
func (s *LikeService) Create(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// Remove unlikes a post or reports NotFound.
func (s *LikeService) Remove(ctx context.Context, userID, postID uint) error {
	deleted, err := s.likeRepo.Delete(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundMessageError("Like not found")
	}
	return nil
}

// HasLiked reports whether the user liked the post.
func (s *LikeService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}

// CountForPost returns how many likes a post has.
func (s *LikeService) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.CountForPost(ctx, postID)
}

// ListForPost returns a post's likes with the liker's public fields.
func (s *LikeService) ListForPost(ctx context.Context, postID uint) ([]models.PostLikeEntry, error) {
	likes, err := s.likeRepo.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	entries := make([]models.PostLikeEntry, 0, len(likes))
	for _, l := range likes {
		entries = append(entries, models.PostLikeEntry{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
			User:      l.User.Summary(),
		})
	}
	return entries, nil
}

// ListForUser returns a user's likes newest first, liked-post summary only.
func (s *LikeService) ListForUser(ctx context.Context, userID uint) ([]models.UserLikeEntry, error) {
	likes, err := s.likeRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]models.UserLikeEntry, 0, len(likes))
	for _, l := range likes {
		entry := models.UserLikeEntry{ID: l.ID, CreatedAt: l.CreatedAt}
		if l.Post != nil {
			entry.Post = models.PostSummary{
				ID:        l.Post.ID,
				Content:   l.Post.Content,
				CreatedAt: l.Post.CreatedAt,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
