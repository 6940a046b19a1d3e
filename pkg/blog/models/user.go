package models

import (
	"time"
)

// Gender represents a user's declared gender
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// User represents a registered author in the system.
// Username and email are unique at the store level; the service layer
// pre-checks both only to produce a friendly conflict error.
type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	Surname     string    `gorm:"not null" json:"surname"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      Gender    `gorm:"type:varchar(10);default:'UNKNOWN'" json:"gender"`

	// Relationships
	GroupMemberships []GroupMembership `gorm:"foreignKey:UserID" json:"group_memberships,omitempty"`
	Blog             *Blog             `gorm:"foreignKey:UserID" json:"blog,omitempty"`
	Comments         []Comment         `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}
