package comments

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// Service implements comment business rules on top of the store
type Service struct {
	db *gorm.DB
}

// NewService creates a new comment service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new comment on a post. The post is resolved before the
// author, so a request with both ids missing reports the post.
func (s *Service) Create(postID, userID uint, req *CreateCommentRequest) (dto.CommentResponse, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentResponse{}, apierrors.NewNotFound("Couldn't find post by id: %d", postID)
		}
		return dto.CommentResponse{}, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentResponse{}, apierrors.NewNotFound("Couldn't find user by id: %d", userID)
		}
		return dto.CommentResponse{}, err
	}

	comment := models.Comment{
		Body:   req.Body,
		PostID: postID,
		Post:   post,
		UserID: userID,
		User:   user,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return dto.CommentResponse{}, err
	}

	return dto.NewCommentResponse(&comment), nil
}

// Get returns a single comment by id
func (s *Service) Get(id uint) (dto.CommentResponse, error) {
	comment, err := s.find(id)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.NewCommentResponse(comment), nil
}

// ListByPost returns the comments of the given post. The post is resolved
// first so a missing post reports 404 rather than an empty list.
func (s *Service) ListByPost(postID uint) ([]dto.CommentResponse, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find post by id: %d", postID)
		}
		return nil, err
	}

	var commentList []models.Comment
	if err := s.db.Preload("Post").Preload("User").
		Where("post_id = ?", postID).Find(&commentList).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, len(commentList))
	for i := range commentList {
		responses[i] = dto.NewCommentResponse(&commentList[i])
	}
	return responses, nil
}

// Update replaces the comment's body and refreshes its timestamp. The post
// and author references are preserved.
func (s *Service) Update(id uint, req *CreateCommentRequest) (dto.CommentResponse, error) {
	comment, err := s.find(id)
	if err != nil {
		return dto.CommentResponse{}, err
	}

	comment.Body = req.Body
	comment.CreatedAt = time.Now()
	if err := s.db.Save(comment).Error; err != nil {
		return dto.CommentResponse{}, err
	}

	return dto.NewCommentResponse(comment), nil
}

// Delete hard-deletes the comment
func (s *Service) Delete(id uint) (string, error) {
	if _, err := s.find(id); err != nil {
		return "", err
	}

	if err := s.db.Delete(&models.Comment{}, id).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("Comment successfully deleted from database with id: %d", id), nil
}

func (s *Service) find(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Post").Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find comment by id: %d", id)
		}
		return nil, err
	}
	return &comment, nil
}
