package models

import (
	"time"
)

// Follow is a directed follower -> following edge between two users.
// The (follower, following) pair is unique; a user cannot follow themselves.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// FollowingEntry is one row of a "who am I following" listing. Only the
// counterpart's public fields go out.
type FollowingEntry struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Following UserSummary `json:"following"`
}

// FollowerEntry is one row of a "who follows me" listing.
type FollowerEntry struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Follower  UserSummary `json:"follower"`
}

// FollowStats aggregates both edge directions for one user.
type FollowStats struct {
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}
