package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple/internal/models"
)

func TestExtractHashtags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"None", "plain text", []string{}},
		{"Single", "hello #world", []string{"world"}},
		{"Multiple", "#go and #redis and #go", []string{"go", "redis"}},
		{"Case Sensitive Dedup", "hello #World #world", []string{"World", "world"}},
		{"Underscore And Digits", "big #go_1_2 news", []string{"go_1_2"}},
		{"Punctuation Boundary", "ship it#now!", []string{"now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractHashtags(tt.content))
		})
	}
}

func existingPost(post models.Post) *postRepoStub {
	return &postRepoStub{
		getByID: func(_ context.Context, id uint) (*models.Post, error) {
			if id == post.ID {
				p := post
				return &p, nil
			}
			return nil, models.NewNotFoundError("Post", id)
		},
	}
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Extracted Hashtags", func(t *testing.T) {
		var created *models.Post
		repo := &postRepoStub{
			create: func(_ context.Context, post *models.Post) error {
				post.ID = 10
				created = post
				return nil
			},
			getByID: func(_ context.Context, id uint) (*models.Post, error) {
				return created, nil
			},
		}
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		post, err := svc.Create(ctx, 1, CreatePostInput{Content: "shipping #go code #Go"})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "Go"}, []string(post.Hashtags))
		assert.Equal(t, models.PostTypeOriginal, post.Type)
	})

	t.Run("Empty Content", func(t *testing.T) {
		svc := NewPostService(&postRepoStub{}, &userRepoStub{}, &followRepoStub{})

		_, err := svc.Create(ctx, 1, CreatePostInput{Content: "   "})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeBadRequest, appErr.Code)
	})

	t.Run("Reply With Missing Parent", func(t *testing.T) {
		svc := NewPostService(&postRepoStub{}, &userRepoStub{}, &followRepoStub{})

		parentID := uint(99)
		_, err := svc.Create(ctx, 1, CreatePostInput{Content: "a reply", ParentPostID: &parentID})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Edits", func(t *testing.T) {
		repo := existingPost(models.Post{ID: 5, UserID: 1, Content: "old", Hashtags: []string{"old"}})
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		post, err := svc.Update(ctx, 5, 1, "new content #fresh")
		require.NoError(t, err)
		assert.True(t, post.IsEdited)
		assert.Equal(t, []string{"fresh"}, []string(post.Hashtags))
	})

	t.Run("Non Owner Gets NotFound", func(t *testing.T) {
		repo := existingPost(models.Post{ID: 5, UserID: 1, Content: "old"})
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		_, err := svc.Update(ctx, 5, 2, "hijack")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Non Owner Gets NotFound", func(t *testing.T) {
		repo := existingPost(models.Post{ID: 5, UserID: 1})
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		err := svc.Remove(ctx, 5, 2)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("Owner Deletes", func(t *testing.T) {
		deleted := false
		repo := existingPost(models.Post{ID: 5, UserID: 1})
		repo.deleteFn = func(_ context.Context, id uint) error {
			deleted = true
			return nil
		}
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		require.NoError(t, svc.Remove(ctx, 5, 1))
		assert.True(t, deleted)
	})
}

func TestPostServiceShare(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Share Referencing Original", func(t *testing.T) {
		var created *models.Post
		repo := &postRepoStub{
			getByID: func(_ context.Context, id uint) (*models.Post, error) {
				if id == 7 {
					return &models.Post{ID: 7, UserID: 2, Content: "original"}, nil
				}
				if created != nil && id == created.ID {
					return created, nil
				}
				return nil, models.NewNotFoundError("Post", id)
			},
			create: func(_ context.Context, post *models.Post) error {
				post.ID = 8
				created = post
				return nil
			},
		}
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		share, err := svc.Share(ctx, 1, 7, "look at this #wow")
		require.NoError(t, err)
		assert.Equal(t, models.PostTypeShare, share.Type)
		require.NotNil(t, share.OriginalPostID)
		assert.Equal(t, uint(7), *share.OriginalPostID)
		// Commentary tags stay out of the hashtag index.
		assert.Empty(t, share.Hashtags)
	})

	t.Run("Missing Original", func(t *testing.T) {
		svc := NewPostService(&postRepoStub{}, &userRepoStub{}, &followRepoStub{})

		_, err := svc.Share(ctx, 1, 99, "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostServiceFeedIncludesSelf(t *testing.T) {
	ctx := context.Background()

	var queried []uint
	repo := &postRepoStub{
		listByUsers: func(_ context.Context, userIDs []uint, _ models.PaginationParams) ([]models.Post, int64, error) {
			queried = userIDs
			return []models.Post{{ID: 1}}, 1, nil
		},
	}
	follows := &followRepoStub{
		listFollowingIDs: func(_ context.Context, _ uint) ([]uint, error) {
			return []uint{2, 3}, nil
		},
	}
	svc := NewPostService(repo, &userRepoStub{}, follows)

	page, err := svc.Feed(ctx, 1, models.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3, 1}, queried)
	assert.EqualValues(t, 1, page.Meta.TotalItems)
}

func TestPostServiceSearchAttachesGlobalHashtags(t *testing.T) {
	ctx := context.Background()

	repo := &postRepoStub{
		search: func(_ context.Context, query string, tags []string, _ models.PaginationParams) ([]models.Post, int64, error) {
			return []models.Post{{ID: 1, Content: "go rocks"}}, 1, nil
		},
		topHashtags: func(_ context.Context, limit int) ([]models.HashtagCount, error) {
			assert.Equal(t, 10, limit)
			return []models.HashtagCount{{Tag: "unrelated", Count: 40}}, nil
		},
	}
	svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

	result, err := svc.Search(ctx, "go", nil, models.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.PopularHashtags, 1)
	// The side list is global, not scoped to the query.
	assert.Equal(t, "unrelated", result.PopularHashtags[0].Tag)
}

func TestPostServiceTrending(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Timeframe", func(t *testing.T) {
		svc := NewPostService(&postRepoStub{}, &userRepoStub{}, &followRepoStub{})

		_, err := svc.Trending(ctx, "48h", 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeBadRequest, appErr.Code)
	})

	t.Run("Window Matches Timeframe", func(t *testing.T) {
		var since time.Time
		repo := &postRepoStub{
			listTrending: func(_ context.Context, s time.Time, limit int) ([]models.Post, error) {
				since = s
				return nil, nil
			},
		}
		svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

		_, err := svc.Trending(ctx, "7d", 10)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), since, time.Minute)
	})
}

func TestPostServicePaginationEnvelope(t *testing.T) {
	ctx := context.Background()

	repo := &postRepoStub{
		list: func(_ context.Context, sort string, _ models.PaginationParams) ([]models.Post, int64, error) {
			assert.Equal(t, "recent", sort)
			return []models.Post{{ID: 1}, {ID: 2}}, 25, nil
		},
	}
	svc := NewPostService(repo, &userRepoStub{}, &followRepoStub{})

	page, err := svc.FindAll(ctx, "unknown-sort", models.PaginationParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.ItemCount)
	assert.Equal(t, 10, page.Meta.ItemsPerPage)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.CurrentPage)
}
