package api

import (
	"net/http"

	authUsecase "sociopedia-backend/internal/auth/usecase"
	postUsecase "sociopedia-backend/internal/post/usecase"
	userUsecase "sociopedia-backend/internal/user/usecase"
	"sociopedia-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	postUsecase postUsecase.PostUsecase
	userUsecase userUsecase.UserUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, userUc userUsecase.UserUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		postUsecase: postUc,
		userUsecase: userUc,
		config:      cfg,
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = h.config.MaxUploadBytes

	r.Use(securityHeaders(), corsMiddleware(), bodyLimit(h.config.MaxUploadBytes))

	SetupRoutes(r, h.authUsecase, h.postUsecase, h.userUsecase, h.config)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		c.Next()
	}
}

func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
