package api

import (
	"net/http"

	"sociopedia-backend/internal/auth/delivery"
	authUsecase "sociopedia-backend/internal/auth/usecase"
	postDelivery "sociopedia-backend/internal/post/delivery"
	postUsecase "sociopedia-backend/internal/post/usecase"
	userDelivery "sociopedia-backend/internal/user/delivery"
	userUsecase "sociopedia-backend/internal/user/usecase"
	"sociopedia-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, postUsecase postUsecase.PostUsecase, userUsecase userUsecase.UserUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase, cfg.AssetsDir)
	postHandler := postDelivery.NewPostHandler(postUsecase)
	userHandler := userDelivery.NewUserHandler(userUsecase)
	requireAuth := delivery.AuthMiddleware(authUsecase)

	// Uploaded pictures
	r.Static("/assets", cfg.AssetsDir)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", requireAuth, authHandler.Logout)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/friends", userHandler.GetUserFriends)
			users.PATCH("/:id/:friendId", userHandler.AddRemoveFriend)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(requireAuth)
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.GetFeedPosts)
			posts.GET("/user/:userId", postHandler.GetUserPosts)
			posts.PATCH("/:id/like", postHandler.LikePost)
		}
	}
}
