package models

import (
	"time"
)

// Group represents a community of users sharing a set of topics.
// Group names are unique at the store level.
type Group struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`

	// Relationships
	Topics      []GroupTopic      `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
	Memberships []GroupMembership `gorm:"foreignKey:GroupID" json:"memberships,omitempty"`
}

// GroupTopic is one topic tag attached to a group
type GroupTopic struct {
	ID      uint  `gorm:"primarykey" json:"id"`
	GroupID uint  `gorm:"not null;uniqueIndex:idx_group_topic" json:"group_id"`
	Topic   Topic `gorm:"type:varchar(20);not null;uniqueIndex:idx_group_topic" json:"topic"`
}
