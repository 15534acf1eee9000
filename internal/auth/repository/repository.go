package repository

import (
	"context"
	"time"

	authdomain "sociopedia-backend/internal/auth/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create assigns an ID and persists user. Returns ErrEmailTaken when the
	// email is already in use.
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail and FindByID return (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*authdomain.User, error)

	// FriendIDs lists the users userID is friends with.
	FriendIDs(ctx context.Context, userID string) ([]string, error)

	// ToggleFriend removes the mutual link between the two users if it exists
	// and creates it otherwise. Returns whether they are friends afterwards.
	ToggleFriend(ctx context.Context, userID, friendID string) (bool, error)
}

// RevocationRepository remembers revoked token IDs until they would have
// expired anyway.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
