package models

import (
	"time"

	"github.com/lib/pq"
)

// Post types. Shares carry a reference to the original post and may have
// empty content of their own.
const (
	PostTypeOriginal = "original"
	PostTypeShare    = "share"
)

// Post is a text post. A post with a ParentPostID is a reply; a post of type
// "share" references the shared post through OriginalPostID.
type Post struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"author"`
	ParentPostID   *uint          `gorm:"index" json:"parent_post_id,omitempty"`
	ParentPost     *Post          `gorm:"foreignKey:ParentPostID" json:"parent_post,omitempty"`
	OriginalPostID *uint          `gorm:"index" json:"original_post_id,omitempty"`
	OriginalPost   *Post          `gorm:"foreignKey:OriginalPostID" json:"original_post,omitempty"`
	Hashtags       pq.StringArray `gorm:"type:text[]" json:"hashtags"`
	IsEdited       bool           `gorm:"default:false" json:"is_edited"`
	Type           string         `gorm:"type:varchar(20);default:'original'" json:"type"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Likes []Like `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	// LikesCount is not persisted; computed at query time by popularity sorts.
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
}

// HashtagCount is one entry of a hashtag frequency listing.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
