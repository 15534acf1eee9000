package main

import (
	"context"
	"log"
	"os"

	api "sociopedia-backend/cmd/api"
	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/auth/password"
	authRepo "sociopedia-backend/internal/auth/repository"
	"sociopedia-backend/internal/auth/token"
	authUsecase "sociopedia-backend/internal/auth/usecase"
	postdomain "sociopedia-backend/internal/post/domain"
	postRepo "sociopedia-backend/internal/post/repository"
	postUsecase "sociopedia-backend/internal/post/usecase"
	userUsecase "sociopedia-backend/internal/user/usecase"
	"sociopedia-backend/pkg/config"
	"sociopedia-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.Friendship{}, &postdomain.Post{}, &postdomain.PostLike{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := os.MkdirAll(cfg.AssetsDir, 0o755); err != nil {
		log.Fatal("Failed to create assets directory:", err)
	}

	// Token revocation is only available with Redis
	revocations := authRepo.NewNoopRevocationRepository()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
		revocations = authRepo.NewRedisRevocationRepository(client)
		log.Printf("[INFO] Token revocation enabled (redis %s)", cfg.RedisAddr)
	} else {
		log.Printf("[WARN] REDIS_ADDR not configured, logout will not revoke tokens")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	postRepository := postRepo.NewGormPostRepository(db)

	// Initialize use cases (dependency injection)
	hasher := password.NewHasher(bcrypt.DefaultCost)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, revocations, hasher, tokens)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository, userRepository)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, postUsecaseInstance, userUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
