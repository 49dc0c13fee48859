// Package client implements the non-visual core of the mobile app: the
// session, the HTTP bindings for the recipe API, and the per-view recipe
// cache with optimistic like/save updates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client issues authenticated calls against the recipe API.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8080/api").
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: baseURL,
		session: session,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Session returns the session the client attaches to every call.
func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates and begins a session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.session.Begin(resp.Token, &resp.User)
	return &resp.User, nil
}

// Signup creates an account and begins a session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		return nil, err
	}
	c.session.Begin(resp.Token, &resp.User)
	return &resp.User, nil
}

// UpdateProfile applies a partial profile edit. Nil fields are unchanged.
func (c *Client) UpdateProfile(ctx context.Context, name, avatar, bio *string) (*User, error) {
	body := map[string]*string{"name": name, "avatar": avatar, "bio": bio}
	var user User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", body, &user); err != nil {
		return nil, err
	}
	if c.session.Authenticated() {
		c.session.Begin(c.session.Token(), &user)
	}
	return &user, nil
}

// UploadImage sends a base64 payload and returns the stored URL.
func (c *Client) UploadImage(ctx context.Context, imageBase64 string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload/image", map[string]string{"image": imageBase64}, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// GetRecipes fetches the feed, optionally narrowed by a search term.
func (c *Client) GetRecipes(ctx context.Context, search string) ([]Recipe, error) {
	path := "/recipes"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var recipes []Recipe
	if err := c.do(ctx, http.MethodGet, path, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe.
func (c *Client) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	var recipe Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/"+id, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe uploads a new recipe.
func (c *Client) CreateRecipe(ctx context.Context, input *RecipeInput) (*Recipe, error) {
	var recipe Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe overwrites a recipe the session user owns.
func (c *Client) UpdateRecipe(ctx context.Context, id string, input *RecipeInput) (*Recipe, error) {
	var recipe Recipe
	if err := c.do(ctx, http.MethodPut, "/recipes/"+id, input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe the session user owns.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+id, nil, nil)
}

// ToggleLike flips the session user's like on a recipe and returns the
// server's authoritative membership and count.
func (c *Client) ToggleLike(ctx context.Context, id string) (*ToggleResult, error) {
	var result ToggleResult
	if err := c.do(ctx, http.MethodPost, "/recipes/"+id+"/like", struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ToggleSave flips the session user's save on a recipe.
func (c *Client) ToggleSave(ctx context.Context, id string) (*ToggleResult, error) {
	var result ToggleResult
	if err := c.do(ctx, http.MethodPost, "/recipes/"+id+"/save", struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUserRecipes fetches the session user's uploads.
func (c *Client) GetUserRecipes(ctx context.Context) ([]Recipe, error) {
	return c.getList(ctx, "/recipes/user/uploaded")
}

// GetSavedRecipes fetches the recipes the session user has saved.
func (c *Client) GetSavedRecipes(ctx context.Context) ([]Recipe, error) {
	return c.getList(ctx, "/recipes/user/saved")
}

// GetLikedRecipes fetches the recipes the session user has liked.
func (c *Client) GetLikedRecipes(ctx context.Context) ([]Recipe, error) {
	return c.getList(ctx, "/recipes/user/liked")
}

func (c *Client) getList(ctx context.Context, path string) ([]Recipe, error) {
	var recipes []Recipe
	if err := c.do(ctx, http.MethodGet, path, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
