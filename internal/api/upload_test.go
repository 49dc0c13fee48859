package api

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageEndpoint(t *testing.T) {
	router, db := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, db, "Alice", "alice@example.com")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-image"))
	w := DoJSON(t, router, "POST", "/api/upload/image", token, map[string]string{"image": payload})
	require.Equal(t, http.StatusOK, w.Code)

	var resp UploadImageResponse
	DecodeJSON(t, w, &resp)
	// Passthrough mode echoes the payload back as the URL.
	assert.Equal(t, payload, resp.URL)
}

func TestUploadImageMissingPayload(t *testing.T) {
	router, db := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, db, "Alice", "alice@example.com")

	w := DoJSON(t, router, "POST", "/api/upload/image", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageRequiresAuth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := DoJSON(t, router, "POST", "/api/upload/image", "", map[string]string{"image": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
