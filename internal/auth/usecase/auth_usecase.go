package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	authdomain "sociopedia-backend/internal/auth/domain"
	authdto "sociopedia-backend/internal/auth/dto"
	"sociopedia-backend/internal/auth/password"
	"sociopedia-backend/internal/auth/repository"
	"sociopedia-backend/internal/auth/token"
)

const counterCeiling = 10000

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	revocations repository.RevocationRepository
	hasher      PasswordHasher
	tokens      TokenService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, revocations repository.RevocationRepository, hasher PasswordHasher, tokens TokenService) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		revocations: revocations,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashedPassword, err := u.hasher.Hash(ctx, req.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, authdomain.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &authdomain.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      hashedPassword,
		PicturePath:   req.PicturePath,
		Location:      req.Location,
		Occupation:    req.Occupation,
		ViewedProfile: rand.Intn(counterCeiling),
		Impressions:   rand.Intn(counterCeiling),
		Friends:       []string{},
	}

	// The unique index still guards the race between the lookup and here.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("[AuthUsecase] Registered user %s", user.ID)
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	ok, err := u.hasher.Verify(ctx, req.Password, user.Password)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[AuthUsecase] Stored hash for user %s is unusable: %v", user.ID, err)
		return nil, authdomain.ErrInvalidCredentials
	}
	if !ok {
		return nil, authdomain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &authdto.LoginResponse{
		Msg:   "Login successfully",
		Token: signed,
		Data:  user,
	}, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, header string) (*token.Claims, error) {
	raw, authErr := extractToken(header)
	if authErr != nil {
		return nil, authErr
	}

	claims, err := u.tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			return nil, authdomain.NewAuthError(authdomain.InvalidToken, err)
		}
		return nil, authdomain.NewAuthError(authdomain.Internal, err)
	}

	if claims.ID != "" {
		revoked, err := u.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, authdomain.NewAuthError(authdomain.Internal, fmt.Errorf("revocation lookup: %w", err))
		}
		if revoked {
			return nil, authdomain.NewAuthError(authdomain.InvalidToken, errors.New("token revoked"))
		}
	}

	return claims, nil
}

func (u *authUsecase) Logout(ctx context.Context, claims *token.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return u.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// extractToken accepts a bare token or "Bearer <token>" with the scheme
// matched case-insensitively.
func extractToken(header string) (string, *authdomain.AuthError) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", authdomain.NewAuthError(authdomain.MissingToken, nil)
	}

	const scheme = "bearer"
	if len(header) >= len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
		rest := header[len(scheme):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			raw := strings.TrimSpace(rest)
			if raw == "" {
				return "", authdomain.NewAuthError(authdomain.MalformedToken, nil)
			}
			return raw, nil
		}
	}
	return header, nil
}
