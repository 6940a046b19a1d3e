package models

import (
	"time"
)

// Blog represents a user's blog. The unique index on UserID enforces the
// one-blog-per-user rule even when two create requests race past the
// service-level pre-check.
type Blog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Posts []Post `gorm:"foreignKey:BlogID" json:"posts,omitempty"`
}
