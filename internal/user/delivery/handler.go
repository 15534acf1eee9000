package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetUser", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GET /api/users/:id/friends
func (h *UserHandler) GetUserFriends(c *gin.Context) {
	friends, err := h.userUsecase.GetUserFriends(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetUserFriends", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": friends})
}

// PATCH /api/users/:id/:friendId
func (h *UserHandler) AddRemoveFriend(c *gin.Context) {
	friends, err := h.userUsecase.AddRemoveFriend(c.Request.Context(), c.Param("id"), c.Param("friendId"))
	if err != nil {
		h.fail(c, "AddRemoveFriend", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": friends})
}

func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, authdomain.ErrSelfFriend):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		log.Printf("[UserHandler] %s failed: %v", op, err)
		c.JSON(http.StatusNotFound, gin.H{"msg": "request failed"})
	}
}
