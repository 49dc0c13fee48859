package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/platefeed/backend/internal/middleware"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(token string) (*middleware.TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &middleware.TokenClaims{UserID: v.userID}, nil
}

func setupAuthRouter(validator middleware.TokenValidator, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	mw := middleware.AuthMiddleware(validator)
	if optional {
		mw = middleware.OptionalAuthMiddleware(validator)
	}

	router.GET("/protected", mw, func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": userID.String()})
	})
	return router
}

func doRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupAuthRouter(&stubValidator{userID: uuid.New()}, false)
	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router := setupAuthRouter(&stubValidator{userID: uuid.New()}, false)

	w := doRequest(router, "token-without-scheme")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := setupAuthRouter(&stubValidator{err: errors.New("expired")}, false)
	w := doRequest(router, "Bearer some-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	userID := uuid.New()
	router := setupAuthRouter(&stubValidator{userID: userID}, false)
	w := doRequest(router, "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	router := setupAuthRouter(&stubValidator{userID: uuid.New()}, true)
	w := doRequest(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestOptionalAuthResolvesUser(t *testing.T) {
	userID := uuid.New()
	router := setupAuthRouter(&stubValidator{userID: userID}, true)
	w := doRequest(router, "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	router := setupAuthRouter(&stubValidator{err: errors.New("expired")}, true)
	w := doRequest(router, "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
