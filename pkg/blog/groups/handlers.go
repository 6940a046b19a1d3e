package groups

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
)

// Handler handles group-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new groups handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// CreateGroupRequest represents the request to create or update a group
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Topics      []string `json:"topics" binding:"omitempty,dive,oneof=DEFAULT COMEDY GENERAL DRAMA NEWS FANTASY HORROR"`
}

// List returns all groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} dto.GroupResponse
// @Router /group [get]
func (h *Handler) List(c *gin.Context) {
	responses, err := h.service.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Get returns a specific group
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /group/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	response, err := h.service.Get(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create creates a new group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Group name taken"
// @Router /group [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
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

// Update replaces a group's name, description and topics
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body CreateGroupRequest true "Updated group details"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Group not found"
// @Failure 409 {object} map[string]string "Group name taken"
// @Router /group/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	var req CreateGroupRequest
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

// Delete hard-deletes a group
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /group/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	message, err := h.service.Delete(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: message})
}

// RegisterRoutes registers group routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
