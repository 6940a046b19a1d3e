package models

import (
	"time"
)

// Post represents an article published on a blog
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`

	// Relationships
	Blog     Blog        `gorm:"foreignKey:BlogID" json:"blog,omitempty"`
	Topics   []PostTopic `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
	Comments []Comment   `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

// PostTopic is one topic tag attached to a post
type PostTopic struct {
	ID     uint  `gorm:"primarykey" json:"id"`
	PostID uint  `gorm:"not null;uniqueIndex:idx_post_topic" json:"post_id"`
	Topic  Topic `gorm:"type:varchar(20);not null;uniqueIndex:idx_post_topic" json:"topic"`
}
