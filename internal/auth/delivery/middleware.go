package delivery

import (
	"errors"
	"log"

	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/auth/token"
	"sociopedia-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "claims"
	userIDKey = "userID"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authUsecase.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			var authErr *authdomain.AuthError
			if !errors.As(err, &authErr) {
				authErr = authdomain.NewAuthError(authdomain.Internal, err)
			}
			if authErr.Kind == authdomain.Internal {
				log.Printf("[AuthMiddleware] %s %s: %v", c.Request.Method, c.Request.URL.Path, authErr)
			}
			c.AbortWithStatusJSON(authErr.HTTPStatus(), gin.H{"msg": authErr.Message()})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// ClaimsFrom returns the claims AuthMiddleware attached, or nil.
func ClaimsFrom(c *gin.Context) *token.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

// UserIDFrom returns the authenticated subject, or "".
func UserIDFrom(c *gin.Context) string {
	return c.GetString(userIDKey)
}
