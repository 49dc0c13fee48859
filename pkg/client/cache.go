package client

// RecipeCache holds the ordered recipe list backing one view (feed,
// uploads, saves or likes). Like and save taps update it in two phases:
// ApplyLikeToggle applies a tentative local delta so the UI responds
// immediately, and ReconcileLike overwrites it with the server's answer
// once the call returns. The tentative delta flips on the cache's own
// membership view, so a second tap moves the count back down instead of
// incrementing again, and reconciliation corrects any remaining drift.
type RecipeCache struct {
	items []Recipe
	index map[string]int
}

func NewRecipeCache() *RecipeCache {
	return &RecipeCache{index: map[string]int{}}
}

// Replace swaps in a freshly fetched list and rebuilds the id index.
func (c *RecipeCache) Replace(recipes []Recipe) {
	c.items = make([]Recipe, len(recipes))
	copy(c.items, recipes)
	c.index = make(map[string]int, len(recipes))
	for i, r := range recipes {
		c.index[r.ID] = i
	}
}

// Len returns the number of cached recipes.
func (c *RecipeCache) Len() int {
	return len(c.items)
}

// Items returns the cached list in order.
func (c *RecipeCache) Items() []Recipe {
	return c.items
}

// Get returns the cached recipe with the given id.
func (c *RecipeCache) Get(id string) (Recipe, bool) {
	i, ok := c.index[id]
	if !ok {
		return Recipe{}, false
	}
	return c.items[i], true
}

// ApplyLikeToggle applies the tentative local effect of a like tap: flip
// membership and move the count one step in the matching direction.
func (c *RecipeCache) ApplyLikeToggle(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	r := &c.items[i]
	if r.Liked {
		r.Liked = false
		if r.LikesCount > 0 {
			r.LikesCount--
		}
	} else {
		r.Liked = true
		r.LikesCount++
	}
	return true
}

// ApplySaveToggle applies the tentative local effect of a save tap.
func (c *RecipeCache) ApplySaveToggle(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	r := &c.items[i]
	if r.Saved {
		r.Saved = false
		if r.SavesCount > 0 {
			r.SavesCount--
		}
	} else {
		r.Saved = true
		r.SavesCount++
	}
	return true
}

// ReconcileLike overwrites the tentative state with the server's
// authoritative membership and count.
func (c *RecipeCache) ReconcileLike(id string, liked bool, likesCount int) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items[i].Liked = liked
	c.items[i].LikesCount = likesCount
	return true
}

// ReconcileSave overwrites the tentative save state.
func (c *RecipeCache) ReconcileSave(id string, saved bool, savesCount int) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items[i].Saved = saved
	c.items[i].SavesCount = savesCount
	return true
}

// Remove drops a recipe from the view, closing the gap and reindexing.
func (c *RecipeCache) Remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return true
}
