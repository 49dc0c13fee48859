package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/models"
	"github.com/platefeed/backend/internal/service"
	"github.com/platefeed/backend/internal/testhelpers"
)

// SetupTestRouter builds the full route tree on an in-memory database.
func SetupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-jwt-secret")
	recipeService := service.NewRecipeService(db)
	uploadService := service.NewUploadService(nil)

	router := gin.New()
	router.Use(middleware.CORS(nil))

	root := router.Group("/api")
	NewAuthHandler(authService).RegisterRoutes(root)
	NewRecipeHandler(recipeService, authService, nil).RegisterRoutes(root)
	NewUploadHandler(uploadService, authService).RegisterRoutes(root)

	return router, db
}

// CreateTestUserAndToken signs up a user through the service layer and
// returns it with a usable bearer token.
func CreateTestUserAndToken(t *testing.T, db *gorm.DB, name, email string) (*models.User, string) {
	t.Helper()
	authService := service.NewAuthService(db, "test-jwt-secret")
	token, user, err := authService.Signup(context.Background(), name, email, "password123")
	require.NoError(t, err)
	return user, token
}

// DoJSON performs a request with an optional bearer token and JSON body.
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
