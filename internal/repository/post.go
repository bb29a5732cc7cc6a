package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ripple/internal/cache"
	"ripple/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, sort string, params models.PaginationParams) ([]models.Post, int64, error)
	ListByUsers(ctx context.Context, userIDs []uint, params models.PaginationParams) ([]models.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, params models.PaginationParams) ([]models.Post, int64, error)
	ListByHashtag(ctx context.Context, tag string, params models.PaginationParams) ([]models.Post, int64, error)
	ListReplies(ctx context.Context, parentID uint, params models.PaginationParams) ([]models.Post, int64, error)
	ListTrending(ctx context.Context, since time.Time, limit int) ([]models.Post, error)
	Search(ctx context.Context, query string, tags []string, params models.PaginationParams) ([]models.Post, int64, error)
	TopHashtags(ctx context.Context, limit int) ([]models.HashtagCount, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withLikesCount adds a subquery select so likes_count arrives in the same
// query. PostgreSQL allows referencing the alias in ORDER BY at this level.
func (r *postRepository) withLikesCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		err := r.withLikesCount(r.db.WithContext(ctx).Model(&models.Post{})).
			Preload("User").
			Preload("Likes").
			Preload("ParentPost").
			Preload("OriginalPost").
			Preload("OriginalPost.User").
			First(&post, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// paginate runs the count and the page fetch for a filtered post query.
// filter receives a fresh *gorm.DB for each of the two queries.
func (r *postRepository) paginate(ctx context.Context, params models.PaginationParams, order string, filter func(db *gorm.DB) *gorm.DB) ([]models.Post, int64, error) {
	var total int64
	if err := filter(r.db.WithContext(ctx).Model(&models.Post{})).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []models.Post
	query := r.withLikesCount(filter(r.db.WithContext(ctx).Model(&models.Post{}))).
		Preload("User").
		Preload("OriginalPost").
		Preload("OriginalPost.User").
		Order(order).
		Limit(params.Limit).
		Offset(params.Offset())
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) List(ctx context.Context, sort string, params models.PaginationParams) ([]models.Post, int64, error) {
	order := "created_at DESC"
	if sort == "popular" {
		order = "likes_count DESC, created_at DESC"
	}
	return r.paginate(ctx, params, order, func(db *gorm.DB) *gorm.DB {
		return db
	})
}

func (r *postRepository) ListByUsers(ctx context.Context, userIDs []uint, params models.PaginationParams) ([]models.Post, int64, error) {
	return r.paginate(ctx, params, "created_at DESC", func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id IN ?", userIDs)
	})
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, params models.PaginationParams) ([]models.Post, int64, error) {
	return r.paginate(ctx, params, "created_at DESC", func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	})
}

func (r *postRepository) ListByHashtag(ctx context.Context, tag string, params models.PaginationParams) ([]models.Post, int64, error) {
	return r.paginate(ctx, params, "created_at DESC", func(db *gorm.DB) *gorm.DB {
		return db.Where("hashtags @> ?", pq.StringArray{tag})
	})
}

// ListReplies returns a post's replies oldest first, reading order.
func (r *postRepository) ListReplies(ctx context.Context, parentID uint, params models.PaginationParams) ([]models.Post, int64, error) {
	return r.paginate(ctx, params, "created_at ASC", func(db *gorm.DB) *gorm.DB {
		return db.Where("parent_post_id = ?", parentID)
	})
}

func (r *postRepository) ListTrending(ctx context.Context, since time.Time, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.withLikesCount(r.db.WithContext(ctx).Model(&models.Post{})).
		Preload("User").
		Where("created_at >= ?", since).
		Order("likes_count DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Search matches content case-insensitively and, when tags are given, keeps
// only posts whose hashtag array contains every requested tag.
func (r *postRepository) Search(ctx context.Context, query string, tags []string, params models.PaginationParams) ([]models.Post, int64, error) {
	return r.paginate(ctx, params, "created_at DESC", func(db *gorm.DB) *gorm.DB {
		if query != "" {
			db = db.Where("content ILIKE ?", "%"+query+"%")
		}
		if len(tags) > 0 {
			db = db.Where("hashtags @> ?", pq.StringArray(tags))
		}
		return db
	})
}

// TopHashtags returns the most frequent hashtags across all posts.
func (r *postRepository) TopHashtags(ctx context.Context, limit int) ([]models.HashtagCount, error) {
	var counts []models.HashtagCount
	err := r.db.WithContext(ctx).Raw(
		`SELECT tag, COUNT(*) AS count
		 FROM posts, unnest(hashtags) AS tag
		 GROUP BY tag
		 ORDER BY count DESC, tag ASC
		 LIMIT ?`, limit,
	).Scan(&counts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}
