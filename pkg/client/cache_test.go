package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed() []Recipe {
	return []Recipe{
		{ID: "r1", Title: "Tom Yum", LikesCount: 5, SavesCount: 2},
		{ID: "r2", Title: "Margherita", LikesCount: 1, SavesCount: 0},
		{ID: "r3", Title: "Pad Thai", LikesCount: 0, SavesCount: 0},
	}
}

func TestReplaceResetsCache(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())
	require.Equal(t, 3, cache.Len())

	cache.Replace(feed()[:1])
	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("r2")
	assert.False(t, ok)
}

func TestApplyLikeToggleFlipsDirection(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())

	require.True(t, cache.ApplyLikeToggle("r2"))
	r, _ := cache.Get("r2")
	assert.True(t, r.Liked)
	assert.Equal(t, 2, r.LikesCount)

	// A second tap undoes the first instead of incrementing again.
	require.True(t, cache.ApplyLikeToggle("r2"))
	r, _ = cache.Get("r2")
	assert.False(t, r.Liked)
	assert.Equal(t, 1, r.LikesCount)
}

func TestApplySaveToggle(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())

	require.True(t, cache.ApplySaveToggle("r3"))
	r, _ := cache.Get("r3")
	assert.True(t, r.Saved)
	assert.Equal(t, 1, r.SavesCount)

	require.True(t, cache.ApplySaveToggle("r3"))
	r, _ = cache.Get("r3")
	assert.False(t, r.Saved)
	assert.Equal(t, 0, r.SavesCount)
}

func TestReconcileOverridesTentativeState(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())

	// Tentative delta guessed "like", server says the user had already
	// liked it on another device, so the toggle removed it.
	cache.ApplyLikeToggle("r1")
	require.True(t, cache.ReconcileLike("r1", false, 4))

	r, _ := cache.Get("r1")
	assert.False(t, r.Liked)
	assert.Equal(t, 4, r.LikesCount)
}

func TestToggleUnknownID(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())

	assert.False(t, cache.ApplyLikeToggle("missing"))
	assert.False(t, cache.ApplySaveToggle("missing"))
	assert.False(t, cache.ReconcileLike("missing", true, 1))
	assert.False(t, cache.ReconcileSave("missing", true, 1))
}

func TestLikeToggleCountNeverNegative(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace([]Recipe{{ID: "r1", Liked: true, LikesCount: 0}})

	cache.ApplyLikeToggle("r1")
	r, _ := cache.Get("r1")
	assert.Equal(t, 0, r.LikesCount)
}

func TestRemoveReindexes(t *testing.T) {
	cache := NewRecipeCache()
	cache.Replace(feed())

	require.True(t, cache.Remove("r2"))
	assert.Equal(t, 2, cache.Len())

	r, ok := cache.Get("r3")
	require.True(t, ok)
	assert.Equal(t, "Pad Thai", r.Title)
	require.True(t, cache.ApplyLikeToggle("r3"))
	assert.Equal(t, "r1", cache.Items()[0].ID)
	assert.Equal(t, "r3", cache.Items()[1].ID)
}
