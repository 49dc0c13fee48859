package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenClaims represents the claims carried by a validated token.
type TokenClaims struct {
	UserID uuid.UUID
}

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, validator)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a valid token is present
// but lets anonymous requests through. List and get endpoints use it.
func OptionalAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, err := parseBearer(c, validator); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}

type authError string

func (e authError) Error() string { return string(e) }

func parseBearer(c *gin.Context, validator TokenValidator) (*TokenClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, authError("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, authError("invalid authorization header format")
	}

	return validator.ValidateToken(parts[1])
}

// CurrentUserID returns the authenticated user stored by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
