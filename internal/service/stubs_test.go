package service

import (
	"context"
	"time"

	"ripple/internal/models"
)

// Function-field stubs: tests override just the calls they care about.
// Unset lookups report NotFound, unset writes succeed.

type userRepoStub struct {
	getByID        func(ctx context.Context, id uint) (*models.User, error)
	getByEmail     func(ctx context.Context, email string) (*models.User, error)
	getByUsername  func(ctx context.Context, username string) (*models.User, error)
	create         func(ctx context.Context, user *models.User) error
	update         func(ctx context.Context, user *models.User) error
	touchLastLogin func(ctx context.Context, id uint, at time.Time) error
	deleteFn       func(ctx context.Context, id uint) error
	list           func(ctx context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsername != nil {
		return s.getByUsername(ctx, username)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.create != nil {
		return s.create(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.update != nil {
		return s.update(ctx, user)
	}
	return nil
}

func (s *userRepoStub) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	if s.touchLastLogin != nil {
		return s.touchLastLogin(ctx, id, at)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

type postRepoStub struct {
	getByID       func(ctx context.Context, id uint) (*models.Post, error)
	create        func(ctx context.Context, post *models.Post) error
	update        func(ctx context.Context, post *models.Post) error
	deleteFn      func(ctx context.Context, id uint) error
	list          func(ctx context.Context, sort string, params models.PaginationParams) ([]models.Post, int64, error)
	listByUsers   func(ctx context.Context, userIDs []uint, params models.PaginationParams) ([]models.Post, int64, error)
	listByUser    func(ctx context.Context, userID uint, params models.PaginationParams) ([]models.Post, int64, error)
	listByHashtag func(ctx context.Context, tag string, params models.PaginationParams) ([]models.Post, int64, error)
	listReplies   func(ctx context.Context, parentID uint, params models.PaginationParams) ([]models.Post, int64, error)
	listTrending  func(ctx context.Context, since time.Time, limit int) ([]models.Post, error)
	search        func(ctx context.Context, query string, tags []string, params models.PaginationParams) ([]models.Post, int64, error)
	topHashtags   func(ctx context.Context, limit int) ([]models.HashtagCount, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	if s.create != nil {
		return s.create(ctx, post)
	}
	post.ID = 1
	return nil
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	if s.update != nil {
		return s.update(ctx, post)
	}
	return nil
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *postRepoStub) List(ctx context.Context, sort string, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.list != nil {
		return s.list(ctx, sort, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) ListByUsers(ctx context.Context, userIDs []uint, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.listByUsers != nil {
		return s.listByUsers(ctx, userIDs, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.listByUser != nil {
		return s.listByUser(ctx, userID, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) ListByHashtag(ctx context.Context, tag string, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.listByHashtag != nil {
		return s.listByHashtag(ctx, tag, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) ListReplies(ctx context.Context, parentID uint, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.listReplies != nil {
		return s.listReplies(ctx, parentID, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) ListTrending(ctx context.Context, since time.Time, limit int) ([]models.Post, error) {
	if s.listTrending != nil {
		return s.listTrending(ctx, since, limit)
	}
	return nil, nil
}

func (s *postRepoStub) Search(ctx context.Context, query string, tags []string, params models.PaginationParams) ([]models.Post, int64, error) {
	if s.search != nil {
		return s.search(ctx, query, tags, params)
	}
	return nil, 0, nil
}

func (s *postRepoStub) TopHashtags(ctx context.Context, limit int) ([]models.HashtagCount, error) {
	if s.topHashtags != nil {
		return s.topHashtags(ctx, limit)
	}
	return nil, nil
}

type followRepoStub struct {
	create           func(ctx context.Context, follow *models.Follow) error
	deleteFn         func(ctx context.Context, followerID, followingID uint) (bool, error)
	exists           func(ctx context.Context, followerID, followingID uint) (bool, error)
	listFollowing    func(ctx context.Context, followerID uint) ([]models.Follow, error)
	listFollowers    func(ctx context.Context, followingID uint) ([]models.Follow, error)
	listFollowingIDs func(ctx context.Context, followerID uint) ([]uint, error)
	stats            func(ctx context.Context, userID uint) (*models.FollowStats, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	if s.create != nil {
		return s.create(ctx, follow)
	}
	follow.ID = 1
	return nil
}

func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) (bool, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	if s.exists != nil {
		return s.exists(ctx, followerID, followingID)
	}
	return false, nil
}

func (s *followRepoStub) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	if s.listFollowing != nil {
		return s.listFollowing(ctx, followerID)
	}
	return nil, nil
}

func (s *followRepoStub) ListFollowers(ctx context.Context, followingID uint) ([]models.Follow, error) {
	if s.listFollowers != nil {
		return s.listFollowers(ctx, followingID)
	}
	return nil, nil
}

func (s *followRepoStub) ListFollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if s.listFollowingIDs != nil {
		return s.listFollowingIDs(ctx, followerID)
	}
	return nil, nil
}

func (s *followRepoStub) Stats(ctx context.Context, userID uint) (*models.FollowStats, error) {
	if s.stats != nil {
		return s.stats(ctx, userID)
	}
	return &models.FollowStats{}, nil
}

type likeRepoStub struct {
	create       func(ctx context.Context, like *models.Like) error
	deleteFn     func(ctx context.Context, userID, postID uint) (bool, error)
	exists       func(ctx context.Context, userID, postID uint) (bool, error)
	countForPost func(ctx context.Context, postID uint) (int64, error)
	listForPost  func(ctx context.Context, postID uint) ([]models.Like, error)
	listForUser  func(ctx context.Context, userID uint) ([]models.Like, error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	if s.create != nil {
		return s.create(ctx, like)
	}
	like.ID = 1
	return nil
}

func (s *likeRepoStub) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, postID)
	}
	return false, nil
}

func (s *likeRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	if s.exists != nil {
		return s.exists(ctx, userID, postID)
	}
	return false, nil
}

func (s *likeRepoStub) CountForPost(ctx context.Context, postID uint) (int64, error) {
	if s.countForPost != nil {
		return s.countForPost(ctx, postID)
	}
	return 0, nil
}

func (s *likeRepoStub) ListForPost(ctx context.Context, postID uint) ([]models.Like, error) {
	if s.listForPost != nil {
		return s.listForPost(ctx, postID)
	}
	return nil, nil
}

func (s *likeRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Like, error) {
	if s.listForUser != nil {
		return s.listForUser(ctx, userID)
	}
	return nil, nil
}
