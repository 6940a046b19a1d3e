package posts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
)

// Handler handles post-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new posts handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// CreatePostRequest represents the request to create or update a post
type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Topics  []string `json:"topics" binding:"omitempty,dive,oneof=DEFAULT COMEDY GENERAL DRAMA NEWS FANTASY HORROR TECH ECONOMY"`
}

// List returns all posts
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} dto.PostResponse
// @Router /post [get]
func (h *Handler) List(c *gin.Context) {
	responses, err := h.service.List()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Get returns a specific post
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} map[string]string "Post not found"
// @Router /post/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	response, err := h.service.Get(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ListByBlog returns the posts of a blog
// @Summary List posts by blog
// @Tags posts
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {array} dto.PostResponse
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /post/blog/{id} [get]
func (h *Handler) ListByBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	responses, err := h.service.ListByBlog(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Create creates a new post under a blog
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param request body CreatePostRequest true "Post details"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /post/{id} [post]
func (h *Handler) Create(c *gin.Context) {
	blogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.FromBinding(err))
		return
	}

	response, err := h.service.Create(uint(blogID), &req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Update replaces a post's title, content and topics
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body CreatePostRequest true "Updated post details"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /post/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req CreatePostRequest
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

// Delete hard-deletes a post and its comments
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string "Post not found"
// @Router /post/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	message, err := h.service.Delete(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: message})
}

// RegisterRoutes registers post routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/blog/:id", h.ListByBlog)
	rg.POST("/:id", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
