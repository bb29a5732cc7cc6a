// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the Ripple application.
// Password is bcrypt-hashed and never serialized outward.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"unique;not null" json:"username"`
	Email          string     `gorm:"unique;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	Bio            string     `json:"bio"`
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`
	Role           string     `gorm:"default:user" json:"role"`
	ProfilePicture string     `json:"profile_picture"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the public subset of a user embedded in listings.
type UserSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	Bio            string `json:"bio"`
}

// Summary strips the user down to its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
	}
}
