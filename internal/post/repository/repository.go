package repository

import (
	"context"

	"sociopedia-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create assigns an ID and persists post
	Create(ctx context.Context, post *domain.Post) error

	// FindByID returns (nil, nil) when the post does not exist
	FindByID(ctx context.Context, id string) (*domain.Post, error)

	// FindAll returns every post, newest first
	FindAll(ctx context.Context) ([]*domain.Post, error)

	// FindByUserID returns the posts authored by userID, newest first
	FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error)

	// ToggleLike atomically adds or removes userID from the post's liked-map
	// and reports whether the user likes the post afterwards.
	// Returns domain.ErrPostNotFound if the post does not exist.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
}
