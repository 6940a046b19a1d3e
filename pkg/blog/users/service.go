package users

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/blogs"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// Service implements user business rules on top of the store
type Service struct {
	db *gorm.DB
}

// NewService creates a new user service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new user after checking username/email uniqueness.
// The store's unique indexes remain the enforcement point under races.
func (s *Service) Create(req *CreateUserRequest) (dto.UserResponse, error) {
	if err := s.checkUniqueConstraints(req.Username, req.Email, nil); err != nil {
		return dto.UserResponse{}, err
	}

	dateOfBirth, err := time.Parse(dto.DateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return dto.UserResponse{}, apierrors.NewValidation("date_of_birth", "must be a date in format "+dto.DateOfBirthLayout)
	}

	user := models.User{
		Name:        req.Name,
		Surname:     req.Surname,
		Username:    req.Username,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
		Gender:      models.Gender(req.Gender),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserResponse{}, apierrors.NewConflict("Username and/or email already exists")
		}
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(&user), nil
}

// List returns all users
func (s *Service) List() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Preload("GroupMemberships.Group.Topics").Preload("Comments").Find(&users).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = dto.NewUserResponse(&users[i])
	}
	return responses, nil
}

// Get returns a single user by id
func (s *Service) Get(id uint) (dto.UserResponse, error) {
	user, err := s.find(id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// Update replaces the user's username, email, date of birth and gender.
// Name, surname, group memberships and authored comments are preserved.
func (s *Service) Update(id uint, req *UpdateUserRequest) (dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apierrors.NewNotFound("Couldn't find user by id: %d", id)
		}
		return dto.UserResponse{}, err
	}

	if err := s.checkUniqueConstraints(req.Username, req.Email, &user); err != nil {
		return dto.UserResponse{}, err
	}

	dateOfBirth, err := time.Parse(dto.DateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return dto.UserResponse{}, apierrors.NewValidation("date_of_birth", "must be a date in format "+dto.DateOfBirthLayout)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.DateOfBirth = dateOfBirth
	user.Gender = models.Gender(req.Gender)

	if err := s.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserResponse{}, apierrors.NewConflict("Username and/or email already exists")
		}
		return dto.UserResponse{}, err
	}

	return s.Get(user.ID)
}

// AddGroup adds the user to a group. Adding twice is a no-op thanks to the
// composite unique index on the membership row.
func (s *Service) AddGroup(userID, groupID uint) (dto.UserResponse, error) {
	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apierrors.NewNotFound("Couldn't find group by id: %d", groupID)
		}
		return dto.UserResponse{}, err
	}

	if _, err := s.find(userID); err != nil {
		return dto.UserResponse{}, err
	}

	membership := models.GroupMembership{UserID: userID, GroupID: groupID}
	if err := s.db.Create(&membership).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return dto.UserResponse{}, err
	}

	return s.Get(userID)
}

// Delete hard-deletes the user together with their blog (and its posts and
// those posts' comments), their authored comments and their group
// memberships, in one transaction.
func (s *Service) Delete(id uint) (string, error) {
	if _, err := s.find(id); err != nil {
		return "", err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var blog models.Blog
		err := tx.Where("user_id = ?", id).First(&blog).Error
		if err == nil {
			if err := blogs.DeleteCascade(tx, blog.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.GroupMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("User successfully deleted from database with id: %d", id), nil
}

func (s *Service) find(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("GroupMemberships.Group.Topics").Preload("Comments").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find user by id: %d", id)
		}
		return nil, err
	}
	return &user, nil
}

// checkUniqueConstraints fails with a conflict when another user already
// holds the candidate username or email. The user being updated may keep
// its own current values; pass nil for creates.
func (s *Service) checkUniqueConstraints(username, email string, current *models.User) error {
	query := s.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email)
	if current != nil {
		query = query.Where("id <> ?", current.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apierrors.NewConflict("Username and/or email already exists")
	}
	return nil
}
