package domain

import (
	"errors"
	"net/http"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("User does not exist")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrSelfFriend         = errors.New("cannot befriend yourself")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

type AuthErrorKind int

const (
	MissingToken AuthErrorKind = iota + 1
	MalformedToken
	InvalidToken
	Internal
)

func (k AuthErrorKind) String() string {
	switch k {
	case MissingToken:
		return "missing token"
	case MalformedToken:
		return "malformed token"
	case InvalidToken:
		return "invalid token"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// AuthError is the only error the auth guard produces. Err carries the
// underlying cause for logs and is never shown to clients.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func NewAuthError(kind AuthErrorKind, err error) *AuthError {
	return &AuthError{Kind: kind, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *AuthError) Unwrap() error { return e.Err }

// HTTPStatus maps client-side kinds to 4xx and everything else to 500.
func (e *AuthError) HTTPStatus() int {
	switch e.Kind {
	case MissingToken, MalformedToken:
		return http.StatusBadRequest
	case InvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing text for the kind.
func (e *AuthError) Message() string {
	switch e.Kind {
	case MissingToken:
		return "No token provided"
	case MalformedToken:
		return "Invalid Bearer Token"
	case InvalidToken:
		return "Invalid or expired token"
	default:
		return "Internal server error"
	}
}

// IsKind reports whether err is an AuthError of the given kind.
func IsKind(err error, kind AuthErrorKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}
