package blogs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
)

// Handler handles blog-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new blogs handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// CreateBlogRequest represents the request to create or update a blog
type CreateBlogRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content"`
}

// List returns all blogs
// @Summary List blogs
// @Tags blogs
// @Produce json
// @Success 200 {array} dto.BlogResponse
// @Router /blog [get]
func (h *Handler) List(c *gin.Context) {
	responses, err := h.service.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Get returns a specific blog
// @Summary Get a blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /blog/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	response, err := h.service.Get(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ListByUser returns the blogs owned by a user
// @Summary List blogs by user
// @Tags blogs
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.BlogResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /blog/user/{id} [get]
func (h *Handler) ListByUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	responses, err := h.service.ListByUser(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Create creates a new blog for a user
// @Summary Create a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body CreateBlogRequest true "Blog details"
// @Success 200 {object} dto.BlogResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "User already has a blog"
// @Router /blog/{id} [post]
func (h *Handler) Create(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.FromBinding(err))
		return
	}

	response, err := h.service.Create(uint(userID), &req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Update replaces a blog's title, description and content
// @Summary Update a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param request body CreateBlogRequest true "Updated blog details"
// @Success 200 {object} dto.BlogResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /blog/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	var req CreateBlogRequest
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

// Delete hard-deletes a blog with its posts and their comments
// @Summary Delete a blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /blog/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	message, err := h.service.Delete(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: message})
}

// RegisterRoutes registers blog routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/user/:id", h.ListByUser)
	rg.POST("/:id", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
