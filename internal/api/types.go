package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platefeed/backend/internal/service"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

type ToggleLikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

type ToggleSaveResponse struct {
	Saved      bool `json:"saved"`
	SavesCount int  `json:"savesCount"`
}

type UploadImageRequest struct {
	Image string `json:"image"`
}

type UploadImageResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// respondError translates service errors into the HTTP taxonomy. Anything
// unrecognized is logged and reported as a generic 500 so internals do not
// leak to clients.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "fields": ve.Fields})
	case errors.Is(err, service.ErrNotRecipeOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
