package delivery

import (
	"errors"
	"log"
	"net/http"

	authDelivery "sociopedia-backend/internal/auth/delivery"
	"sociopedia-backend/internal/post/domain"
	postdto "sociopedia-backend/internal/post/dto"
	"sociopedia-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// actingUser prefers the userId from the body and falls back to the token subject.
func actingUser(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return authDelivery.UserIDFrom(c)
}

// CreatePost
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[PostHandler] CreatePost bind failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	posts, err := h.postUsecase.CreatePost(c.Request.Context(), actingUser(c, req.UserID), req.Description, req.PicturePath)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("[PostHandler] CreatePost failed: %v", err)
		c.JSON(http.StatusConflict, gin.H{"msg": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": posts})
}

// GetFeedPosts
// GET /api/posts
func (h *PostHandler) GetFeedPosts(c *gin.Context) {
	posts, err := h.postUsecase.GetFeed(c.Request.Context())
	if err != nil {
		log.Printf("[PostHandler] GetFeedPosts failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"msg": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": posts})
}

// GetUserPosts
// GET /api/posts/user/:userId
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	posts, err := h.postUsecase.GetUserPosts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		log.Printf("[PostHandler] GetUserPosts failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"msg": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": posts})
}

// LikePost toggles the acting user's like
// PATCH /api/posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
	var req postdto.LikePostRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[PostHandler] LikePost bind failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
			return
		}
	}

	userID := actingUser(c, req.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "userId is required"})
		return
	}

	post, err := h.postUsecase.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("[PostHandler] LikePost failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"msg": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Post updated successfully",
		"data": post,
	})
}
