package client

import (
	"fmt"
	"time"
)

// UserSummary is the owner profile embedded in recipe responses.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// User is the authenticated user's own profile.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recipe is an annotated recipe summary as the server returns it. Liked
// and Saved are the client's local view of its own membership; the server
// list endpoints do not carry it.
type Recipe struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Cuisine      string      `json:"cuisine"`
	Image        string      `json:"image"`
	Ingredients  []string    `json:"ingredients"`
	Instructions string      `json:"instructions"`
	PrepTime     string      `json:"prepTime"`
	Servings     int         `json:"servings"`
	ServingsMax  *int        `json:"servingsMax"`
	User         UserSummary `json:"userId"`
	LikesCount   int         `json:"likesCount"`
	SavesCount   int         `json:"savesCount"`

	Liked bool `json:"-"`
	Saved bool `json:"-"`
}

// RecipeInput carries the fields for creating or updating a recipe.
type RecipeInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	Image        string   `json:"image,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTime     string   `json:"prepTime"`
	Servings     int      `json:"servings"`
	ServingsMax  *int     `json:"servingsMax,omitempty"`
}

// ToggleResult is the server's authoritative answer to a like or save
// toggle.
type ToggleResult struct {
	Liked      bool `json:"liked"`
	Saved      bool `json:"saved"`
	LikesCount int  `json:"likesCount"`
	SavesCount int  `json:"savesCount"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
