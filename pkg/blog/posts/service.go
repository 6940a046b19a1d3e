package posts

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// Service implements post business rules on top of the store
type Service struct {
	db *gorm.DB
}

// NewService creates a new post service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new post under the given blog. Omitted topics default
// to DEFAULT.
func (s *Service) Create(blogID uint, req *CreatePostRequest) (dto.PostResponse, error) {
	var blog models.Blog
	if err := s.db.First(&blog, blogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PostResponse{}, apierrors.NewNotFound("Couldn't find blog by id: %d", blogID)
		}
		return dto.PostResponse{}, err
	}

	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
		BlogID:  blogID,
		Blog:    blog,
		Topics:  topicRows(req.Topics),
	}
	if err := s.db.Create(&post).Error; err != nil {
		return dto.PostResponse{}, err
	}

	return dto.NewPostResponse(&post), nil
}

// List returns all posts
func (s *Service) List() ([]dto.PostResponse, error) {
	var postList []models.Post
	if err := s.db.Preload("Blog").Preload("Topics").Preload("Comments").Find(&postList).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, len(postList))
	for i := range postList {
		responses[i] = dto.NewPostResponse(&postList[i])
	}
	return responses, nil
}

// Get returns a single post by id
func (s *Service) Get(id uint) (dto.PostResponse, error) {
	post, err := s.find(id)
	if err != nil {
		return dto.PostResponse{}, err
	}
	return dto.NewPostResponse(post), nil
}

// ListByBlog returns the posts of the given blog. The blog is resolved
// first so a missing blog reports 404 rather than an empty list.
func (s *Service) ListByBlog(blogID uint) ([]dto.PostResponse, error) {
	var blog models.Blog
	if err := s.db.First(&blog, blogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find blog by id: %d", blogID)
		}
		return nil, err
	}

	var postList []models.Post
	if err := s.db.Preload("Blog").Preload("Topics").Preload("Comments").
		Where("blog_id = ?", blogID).Find(&postList).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, len(postList))
	for i := range postList {
		responses[i] = dto.NewPostResponse(&postList[i])
	}
	return responses, nil
}

// Update replaces the post's title, content and topics. Parent blog,
// creation date and comments are preserved.
func (s *Service) Update(id uint, req *CreatePostRequest) (dto.PostResponse, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PostResponse{}, apierrors.NewNotFound("Couldn't find post by id: %d", id)
		}
		return dto.PostResponse{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTopic{}).Error; err != nil {
			return err
		}

		post.Title = req.Title
		post.Content = req.Content
		post.Topics = topicRows(req.Topics)
		return tx.Save(&post).Error
	})
	if err != nil {
		return dto.PostResponse{}, err
	}

	return s.Get(id)
}

// Delete hard-deletes the post together with its comments and topic tags
func (s *Service) Delete(id uint) (string, error) {
	if _, err := s.find(id); err != nil {
		return "", err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTopic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Post successfully deleted from database with id: %d", id), nil
}

func (s *Service) find(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Blog").Preload("Topics").Preload("Comments").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find post by id: %d", id)
		}
		return nil, err
	}
	return &post, nil
}

func topicRows(topics []string) []models.PostTopic {
	if len(topics) == 0 {
		topics = []string{string(models.TopicDefault)}
	}
	rows := make([]models.PostTopic, len(topics))
	for i, t := range topics {
		rows[i] = models.PostTopic{Topic: models.Topic(t)}
	}
	return rows
}
