package blogs

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// Service implements blog business rules on top of the store
type Service struct {
	db *gorm.DB
}

// NewService creates a new blog service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new blog for the given user. The user is resolved
// before the one-blog-per-user check so a missing user reports 404, not
// 409. The unique index on user_id enforces the rule under races.
func (s *Service) Create(userID uint, req *CreateBlogRequest) (dto.BlogResponse, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BlogResponse{}, apierrors.NewNotFound("Couldn't find user by id: %d", userID)
		}
		return dto.BlogResponse{}, err
	}

	if err := s.checkUniqueConstraints(userID); err != nil {
		return dto.BlogResponse{}, err
	}

	blog := models.Blog{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		UserID:      userID,
		User:        user,
	}
	if err := s.db.Create(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.BlogResponse{}, apierrors.NewConflict("A blog already exists for this user")
		}
		return dto.BlogResponse{}, err
	}

	return dto.NewBlogResponse(&blog), nil
}

// List returns all blogs
func (s *Service) List() ([]dto.BlogResponse, error) {
	var blogList []models.Blog
	if err := s.db.Preload("User").Preload("Posts.Topics").Preload("Posts.Comments").Find(&blogList).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.BlogResponse, len(blogList))
	for i := range blogList {
		responses[i] = dto.NewBlogResponse(&blogList[i])
	}
	return responses, nil
}

// Get returns a single blog by id
func (s *Service) Get(id uint) (dto.BlogResponse, error) {
	blog, err := s.find(id)
	if err != nil {
		return dto.BlogResponse{}, err
	}
	return dto.NewBlogResponse(blog), nil
}

// ListByUser returns the blogs owned by the given user
func (s *Service) ListByUser(userID uint) ([]dto.BlogResponse, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find user by id: %d", userID)
		}
		return nil, err
	}

	var blogList []models.Blog
	if err := s.db.Preload("User").Preload("Posts.Topics").Preload("Posts.Comments").
		Where("user_id = ?", userID).Find(&blogList).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.BlogResponse, len(blogList))
	for i := range blogList {
		responses[i] = dto.NewBlogResponse(&blogList[i])
	}
	return responses, nil
}

// Update replaces the blog's title, description and content. Owner,
// creation date and posts are preserved.
func (s *Service) Update(id uint, req *CreateBlogRequest) (dto.BlogResponse, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BlogResponse{}, apierrors.NewNotFound("Couldn't find blog by id: %d", id)
		}
		return dto.BlogResponse{}, err
	}

	blog.Title = req.Title
	blog.Description = req.Description
	blog.Content = req.Content

	if err := s.db.Save(&blog).Error; err != nil {
		return dto.BlogResponse{}, err
	}

	return s.Get(id)
}

// Delete hard-deletes the blog together with its posts and those posts'
// comments, in one transaction.
func (s *Service) Delete(id uint) (string, error) {
	if _, err := s.find(id); err != nil {
		return "", err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return DeleteCascade(tx, id)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Blog successfully deleted from database with id: %d", id), nil
}

// DeleteCascade removes a blog, its posts, and the comments and topic tags
// of those posts. Callers are expected to run it inside a transaction.
func DeleteCascade(tx *gorm.DB, blogID uint) error {
	postIDs := tx.Model(&models.Post{}).Select("id").Where("blog_id = ?", blogID)

	if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.PostTopic{}).Error; err != nil {
		return err
	}
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.Post{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Blog{}, blogID).Error
}

func (s *Service) find(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Preload("User").Preload("Posts.Topics").Preload("Posts.Comments").First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find blog by id: %d", id)
		}
		return nil, err
	}
	return &blog, nil
}

func (s *Service) checkUniqueConstraints(userID uint) error {
	var count int64
	if err := s.db.Model(&models.Blog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apierrors.NewConflict("A blog already exists for this user")
	}
	return nil
}
