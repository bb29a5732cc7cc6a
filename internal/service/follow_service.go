package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService manages the follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Create adds a follow edge. The self-follow check runs before the target
// existence check, so following yourself is always BadRequest.
func (s *FollowService) Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if followerID == followingID {
		return nil, models.NewBadRequestError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return nil, err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// ListFollowing returns who the user follows, counterpart public fields only.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint) ([]models.FollowingEntry, error) {
	follows, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowingEntry, 0, len(follows))
	for _, f := range follows {
		entries = append(entries, models.FollowingEntry{
			ID:        f.ID,
			CreatedAt: f.CreatedAt,
			Following: f.Following.Summary(),
		})
	}
	return entries, nil
}

// ListFollowers returns who follows the user, counterpart public fields only.
func (s *FollowService) ListFollowers(ctx context.Context, userID uint) ([]models.FollowerEntry, error) {
	follows, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowerEntry, 0, len(follows))
	for _, f := range follows {
		entries = append(entries, models.FollowerEntry{
			ID:        f.ID,
			CreatedAt: f.CreatedAt,
			Follower:  f.Follower.Summary(),
		})
	}
	return entries, nil
}

// Remove deletes the follow edge or reports NotFound.
func (s *FollowService) Remove(ctx context.Context, followerID, followingID uint) error {
	deleted, err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundMessageError("Follow relationship not found")
	}
	return nil
}

// IsFollowing reports whether the edge exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followingID)
}

// Stats returns follower and following counts for the user.
func (s *FollowService) Stats(ctx context.Context, userID uint) (*models.FollowStats, error) {
	return s.followRepo.Stats(ctx, userID)
}
