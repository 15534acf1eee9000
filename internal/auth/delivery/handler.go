package delivery

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	authdomain "sociopedia-backend/internal/auth/domain"
	authdto "sociopedia-backend/internal/auth/dto"
	"sociopedia-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	assetsDir   string
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, assetsDir string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		assetsDir:   assetsDir,
	}
}

// Register creates an account. Accepts JSON or multipart with a "picture" file.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("[AuthHandler] Register bind failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	// Uploads are stored under a fresh name so they never replace an existing asset.
	var stored string
	if file, err := c.FormFile("picture"); err == nil {
		stored = uuid.New().String() + filepath.Ext(filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.assetsDir, stored)); err != nil {
			log.Printf("[AuthHandler] Failed to store picture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to store picture"})
			return
		}
		if req.PicturePath == "" {
			req.PicturePath = stored
		}
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		if stored != "" {
			if rmErr := os.Remove(filepath.Join(h.assetsDir, stored)); rmErr != nil {
				log.Printf("[AuthHandler] Failed to remove picture %s: %v", stored, rmErr)
			}
		}
		switch {
		case errors.Is(err, authdomain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
			return
		case errors.Is(err, authdomain.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("[AuthHandler] Register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":  "User created successfully",
		"data": user,
	})
}

// Login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[AuthHandler] Login bind failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) || errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("[AuthHandler] Login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token when revocation is configured.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), ClaimsFrom(c)); err != nil {
		log.Printf("[AuthHandler] Logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Logged out"})
}
