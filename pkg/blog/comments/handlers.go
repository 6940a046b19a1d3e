package comments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/apierrors"
	"github.com/folksdev/blogapi/pkg/blog/dto"
)

// Handler handles comment-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new comments handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// CreateCommentRequest represents the request to create or update a comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// Get returns a specific comment
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comment/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	response, err := h.service.Get(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ListByPost returns the comments of a post
// @Summary List comments by post
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} map[string]string "Post not found"
// @Router /comment/post/{id} [get]
func (h *Handler) ListByPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	responses, err := h.service.ListByPost(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Create creates a new comment on a post
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param userId path int true "User ID"
// @Param request body CreateCommentRequest true "Comment details"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Post or user not found"
// @Router /comment/{id}/{userId} [post]
func (h *Handler) Create(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.FromBinding(err))
		return
	}

	response, err := h.service.Create(uint(postID), uint(userID), &req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Update replaces a comment's body
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body CreateCommentRequest true "Updated comment details"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} map[string]map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comment/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var req CreateCommentRequest
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

// Delete hard-deletes a comment
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comment/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	message, err := h.service.Delete(uint(id))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: message})
}

// RegisterRoutes registers comment routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.Get)
	rg.GET("/post/:id", h.ListByPost)
	rg.POST("/:id/:userId", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
