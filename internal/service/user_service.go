// Package service contains the business logic of the application.
package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// UserService manages the user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields accepted at registration.
type CreateUserInput struct {
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Bio         string     `json:"bio"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// UpdateUserInput carries the fields a user may change on their profile.
// Empty strings mean "leave unchanged" for the identity fields; bio and
// profile picture are pointers so an explicit empty string clears them.
type UpdateUserInput struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registers a new user. Email and username must both be free.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewBadRequestError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewBadRequestError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	existing, err = s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hash),
		Bio:         in.Bio,
		DateOfBirth: in.DateOfBirth,
		IsActive:    true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindOne returns the user or NotFound.
func (s *UserService) FindOne(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// FindAll lists every user.
func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// FindOneByEmail returns (nil, nil) when no account carries the email.
func (s *UserService) FindOneByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// ValidateCredentials returns the user when email and password match, and
// (nil, nil) otherwise. Bad credentials are not an error at this layer.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// Update applies a partial profile update. Taking someone else's email or
// username is a Conflict.
func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && in.Email != user.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewBadRequestError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Email already exists")
		}
		user.Email = in.Email
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewBadRequestError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username already exists")
		}
		user.Username = in.Username
	}

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewBadRequestError(err.Error())
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hash)
	}

	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove deletes the user or returns NotFound.
func (s *UserService) Remove(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// TouchLastLogin stamps the user's last successful login.
func (s *UserService) TouchLastLogin(ctx context.Context, id uint) error {
	return s.userRepo.TouchLastLogin(ctx, id, time.Now())
}
