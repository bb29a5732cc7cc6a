package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
)

func strptr(s string) *string {
	return &s
}

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Hashes Password", func(t *testing.T) {
		var saved *models.User
		repo := &userRepoStub{
			create: func(_ context.Context, user *models.User) error {
				user.ID = 1
				saved = user
				return nil
			},
		}
		svc := NewUserService(repo)

		user, err := svc.Create(ctx, CreateUserInput{
			Username: "ada",
			Email:    "ada@example.com",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		require.NotNil(t, saved)
		assert.NotEqual(t, "hunter2hunter2", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("hunter2hunter2")))
	})

	t.Run("Email Taken", func(t *testing.T) {
		repo := &userRepoStub{
			getByEmail: func(_ context.Context, email string) (*models.User, error) {
				return &models.User{ID: 2, Email: email}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Create(ctx, CreateUserInput{Username: "ada", Email: "ada@example.com", Password: "hunter2hunter2"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "Email already exists", appErr.Message)
	})

	t.Run("Username Taken", func(t *testing.T) {
		repo := &userRepoStub{
			getByUsername: func(_ context.Context, username string) (*models.User, error) {
				return &models.User{ID: 2, Username: username}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Create(ctx, CreateUserInput{Username: "ada", Email: "ada@example.com", Password: "hunter2hunter2"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "Username already exists", appErr.Message)
	})

	t.Run("Weak Password", func(t *testing.T) {
		svc := NewUserService(&userRepoStub{})

		_, err := svc.Create(ctx, CreateUserInput{Username: "ada", Email: "ada@example.com", Password: "short"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeBadRequest, appErr.Code)
	})
}

func TestUserServiceValidateCredentials(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoStub{
		getByEmail: func(_ context.Context, email string) (*models.User, error) {
			if email == "ada@example.com" {
				return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	t.Run("Valid", func(t *testing.T) {
		user, err := svc.ValidateCredentials(ctx, "ada@example.com", "correct-horse")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Wrong Password Is Nil Not Error", func(t *testing.T) {
		user, err := svc.ValidateCredentials(ctx, "ada@example.com", "wrong")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Unknown Email Is Nil Not Error", func(t *testing.T) {
		user, err := svc.ValidateCredentials(ctx, "ghost@example.com", "whatever")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()

	current := func() *userRepoStub {
		return &userRepoStub{
			getByID: func(_ context.Context, id uint) (*models.User, error) {
				if id == 1 {
					return &models.User{ID: 1, Username: "ada", Email: "ada@example.com"}, nil
				}
				return nil, models.NewNotFoundError("User", id)
			},
		}
	}

	t.Run("Missing User", func(t *testing.T) {
		svc := NewUserService(current())

		_, err := svc.Update(ctx, 99, UpdateUserInput{Bio: strptr("hi")})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("New Email Taken", func(t *testing.T) {
		repo := current()
		repo.getByEmail = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: email}, nil
		}
		svc := NewUserService(repo)

		_, err := svc.Update(ctx, 1, UpdateUserInput{Email: "taken@example.com"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("Keeping Own Email Is Fine", func(t *testing.T) {
		svc := NewUserService(current())

		user, err := svc.Update(ctx, 1, UpdateUserInput{Email: "ada@example.com", Bio: strptr("new bio")})
		require.NoError(t, err)
		assert.Equal(t, "new bio", user.Bio)
	})

	t.Run("Explicit Empty String Clears Bio", func(t *testing.T) {
		repo := current()
		repo.getByID = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "ada@example.com", Bio: "old bio", ProfilePicture: "pic.png"}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.Update(ctx, 1, UpdateUserInput{Bio: strptr(""), ProfilePicture: strptr("")})
		require.NoError(t, err)
		assert.Empty(t, user.Bio)
		assert.Empty(t, user.ProfilePicture)
	})

	t.Run("Omitted Fields Stay Unchanged", func(t *testing.T) {
		repo := current()
		repo.getByID = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "ada@example.com", Bio: "old bio"}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.Update(ctx, 1, UpdateUserInput{Username: "ada2"})
		require.NoError(t, err)
		assert.Equal(t, "old bio", user.Bio)
	})

	t.Run("Password Change Rehashes", func(t *testing.T) {
		var saved *models.User
		repo := current()
		repo.update = func(_ context.Context, user *models.User) error {
			saved = user
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.Update(ctx, 1, UpdateUserInput{Password: "new-password-1"})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("new-password-1")))
	})
}

func TestUserServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing User", func(t *testing.T) {
		svc := NewUserService(&userRepoStub{})

		err := svc.Remove(ctx, 42)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserServiceTouchLastLogin(t *testing.T) {
	ctx := context.Background()

	var touchedID uint
	var touchedAt time.Time
	repo := &userRepoStub{
		touchLastLogin: func(_ context.Context, id uint, at time.Time) error {
			touchedID = id
			touchedAt = at
			return nil
		},
	}
	svc := NewUserService(repo)

	require.NoError(t, svc.TouchLastLogin(ctx, 1))
	assert.Equal(t, uint(1), touchedID)
	assert.WithinDuration(t, time.Now(), touchedAt, time.Second)
}
