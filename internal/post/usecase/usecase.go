package usecase

import (
	"context"

	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/post/domain"
)

// PostUsecase defines the interface for post business logic
type PostUsecase interface {
	// CreatePost stores a post by userID and returns the whole feed
	CreatePost(ctx context.Context, userID, description, picturePath string) ([]*domain.Post, error)

	// GetFeed returns every post
	GetFeed(ctx context.Context) ([]*domain.Post, error)

	// GetUserPosts returns the posts authored by userID
	GetUserPosts(ctx context.Context, userID string) ([]*domain.Post, error)

	// ToggleLike flips userID's like on the post and returns the updated post
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
}

// AuthorLookup fetches the profile a new post copies its author fields from.
type AuthorLookup interface {
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
}
