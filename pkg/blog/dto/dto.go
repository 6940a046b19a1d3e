package dto

import "time"

// UserResponse is the transfer representation of a user
type UserResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Surname     string            `json:"surname"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	DateOfBirth string            `json:"date_of_birth"`
	Gender      string            `json:"gender"`
	Groups      []GroupResponse   `json:"groups,omitempty"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

// GroupResponse is the transfer representation of a group
type GroupResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Topics      []string       `json:"topics,omitempty"`
	Members     []UserResponse `json:"members,omitempty"`
}

// BlogResponse is the transfer representation of a blog
type BlogResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
	User        *UserResponse  `json:"user,omitempty"`
	Posts       []PostResponse `json:"posts,omitempty"`
}

// PostResponse is the transfer representation of a post
type PostResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	Topics    []string          `json:"topics,omitempty"`
	Comments  []CommentResponse `json:"comments,omitempty"`
	BlogTitle string            `json:"blog_title,omitempty"`
}

// CommentResponse is the transfer representation of a comment
type CommentResponse struct {
	ID        uint      `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	PostTitle string    `json:"post_title,omitempty"`
	Username  string    `json:"username,omitempty"`
}

// DeleteResponse confirms a hard delete
type DeleteResponse struct {
	Message string `json:"message"`
}
