package groups

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// Service implements group business rules on top of the store
type Service struct {
	db *gorm.DB
}

// NewService creates a new group service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new group with its topic tags. Omitted topics default
// to DEFAULT.
func (s *Service) Create(req *CreateGroupRequest) (dto.GroupResponse, error) {
	if err := s.checkUniqueConstraints(req.Name, nil); err != nil {
		return dto.GroupResponse{}, err
	}

	group := models.Group{
		Name:        req.Name,
		Description: req.Description,
		Topics:      topicRows(req.Topics),
	}
	if err := s.db.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.GroupResponse{}, apierrors.NewConflict("This group name is already taken")
		}
		return dto.GroupResponse{}, err
	}

	return dto.NewGroupResponse(&group), nil
}

// List returns all groups
func (s *Service) List() ([]dto.GroupResponse, error) {
	var groups []models.Group
	if err := s.db.Preload("Topics").Preload("Memberships.User").Find(&groups).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.GroupResponse, len(groups))
	for i := range groups {
		responses[i] = dto.NewGroupResponse(&groups[i])
	}
	return responses, nil
}

// Get returns a single group by id
func (s *Service) Get(id uint) (dto.GroupResponse, error) {
	group, err := s.find(id)
	if err != nil {
		return dto.GroupResponse{}, err
	}
	return dto.NewGroupResponse(group), nil
}

// Update replaces the group's name, description and topics. The group may
// keep its own current name without tripping the uniqueness check.
func (s *Service) Update(id uint, req *CreateGroupRequest) (dto.GroupResponse, error) {
	group, err := s.find(id)
	if err != nil {
		return dto.GroupResponse{}, err
	}

	if err := s.checkUniqueConstraints(req.Name, group); err != nil {
		return dto.GroupResponse{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupTopic{}).Error; err != nil {
			return err
		}

		group.Name = req.Name
		group.Description = req.Description
		group.Topics = topicRows(req.Topics)
		return tx.Save(group).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.GroupResponse{}, apierrors.NewConflict("This group name is already taken")
		}
		return dto.GroupResponse{}, err
	}

	return s.Get(id)
}

// Delete hard-deletes the group together with its memberships and topics
func (s *Service) Delete(id uint) (string, error) {
	if _, err := s.find(id); err != nil {
		return "", err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMembership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupTopic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Group successfully deleted from database with id: %d", id), nil
}

func (s *Service) find(id uint) (*models.Group, error) {
	var group models.Group
	err := s.db.Preload("Topics").Preload("Memberships.User").First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Couldn't find group by id: %d", id)
		}
		return nil, err
	}
	return &group, nil
}

func (s *Service) checkUniqueConstraints(name string, current *models.Group) error {
	query := s.db.Model(&models.Group{}).Where("name = ?", name)
	if current != nil {
		query = query.Where("id <> ?", current.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apierrors.NewConflict("This group name is already taken")
	}
	return nil
}

func topicRows(topics []string) []models.GroupTopic {
	if len(topics) == 0 {
		topics = []string{string(models.TopicDefault)}
	}
	rows := make([]models.GroupTopic, len(topics))
	for i, t := range topics {
		rows[i] = models.GroupTopic{Topic: models.Topic(t)}
	}
	return rows
}
