package models

import (
	"time"
)

// Like records that a user liked a post.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// PostLikeEntry is one row of a post's like listing.
type PostLikeEntry struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	User      UserSummary `json:"user"`
}

// PostSummary is the liked-post subset embedded in a user's like listing.
type PostSummary struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLikeEntry is one row of a user's like listing, newest first.
type UserLikeEntry struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Post      PostSummary `json:"post"`
}
