package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupEndpoint(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := DoJSON(t, router, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	DecodeJSON(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alice", resp.User["name"])
	assert.NotContains(t, w.Body.String(), "passwordHash")

	// Duplicate email is rejected.
	w = DoJSON(t, router, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Imposter",
		"email":    "alice@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupValidatesBody(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := DoJSON(t, router, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = DoJSON(t, router, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, db := SetupTestRouter(t)
	CreateTestUserAndToken(t, db, "Alice", "alice@example.com")

	w := DoJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	DecodeJSON(t, w, &resp)
	assert.NotEmpty(t, resp.Token)

	w = DoJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	router, db := SetupTestRouter(t)
	user, token := CreateTestUserAndToken(t, db, "Alice", "alice@example.com")

	w := DoJSON(t, router, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]interface{}
	DecodeJSON(t, w, &me)
	assert.Equal(t, user.ID.String(), me["id"])

	w = DoJSON(t, router, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	router, db := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, db, "Alice", "alice@example.com")

	w := DoJSON(t, router, "PUT", "/api/auth/profile", token, map[string]string{
		"bio":    "I cook things.",
		"avatar": "https://example.com/alice.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	DecodeJSON(t, w, &updated)
	assert.Equal(t, "I cook things.", updated["bio"])
	assert.Equal(t, "Alice", updated["name"])
}
