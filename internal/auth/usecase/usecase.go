package usecase

import (
	"context"

	authdomain "sociopedia-backend/internal/auth/domain"
	authdto "sociopedia-backend/internal/auth/dto"
	"sociopedia-backend/internal/auth/token"
)

// AuthUsecase covers registration, login and session checks.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// Authenticate turns a raw Authorization header value into claims. Every
	// error it returns is an *authdomain.AuthError.
	Authenticate(ctx context.Context, header string) (*token.Claims, error)

	// Logout revokes the session identified by claims.
	Logout(ctx context.Context, claims *token.Claims) error
}

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

// TokenService is satisfied by *token.Service.
type TokenService interface {
	Issue(subjectID string) (string, error)
	Verify(tokenString string) (*token.Claims, error)
}
