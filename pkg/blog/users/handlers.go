package users

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
)

// Handler handles user-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new users handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"required,oneof=MALE FEMALE UNKNOWN"`
}

// UpdateUserRequest represents the request to update a user. Name and
// surname are immutable and therefore absent.
type UpdateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"required,oneof=MALE FEMALE UNKNOWN"`
}

// List returns all users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /user [get]
func (h *Handler) List(c *gin.Context) {
	responses, err := h.service.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Get returns a specific user
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /user/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := h.service.Get(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create creates a new user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /user [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.FromBinding(err))
		return
	}

	response, err := h.service.Create(&req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Update replaces a user's mutable fields
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Updated user details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /user/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.FromBinding(err))
		return
	}

	response, err := h.service.Update(uint(id), &req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// AddGroup adds the user to a group
// @Summary Add a user to a group
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param groupId path int true "Group ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User or group not found"
// @Router /user/{id}/{groupId} [put]
func (h *Handler) AddGroup(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	groupID, err := strconv.ParseUint(c.Param("groupId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	response, err := h.service.AddGroup(uint(userID), uint(groupID))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete hard-deletes a user and everything they own
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /user/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	message, err := h.service.Delete(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: message})
}

// RegisterRoutes registers user routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/:groupId", h.AddGroup)
	rg.DELETE("/:id", h.Delete)
}
