package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefeed/backend/internal/models"
)

// RecipeService handles recipe mutations and queries
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeInput carries the mutable recipe fields for create and update.
type RecipeInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	Image        string   `json:"image"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTime     string   `json:"prepTime"`
	Servings     int      `json:"servings"`
	ServingsMax  *int     `json:"servingsMax"`
}

// Validate checks every field and collects all violations.
func (in *RecipeInput) Validate() error {
	fields := map[string]string{}

	required := map[string]string{
		"title":        in.Title,
		"description":  in.Description,
		"cuisine":      in.Cuisine,
		"instructions": in.Instructions,
		"prepTime":     in.PrepTime,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "is required"
		}
	}

	if len(in.Ingredients) == 0 {
		fields["ingredients"] = "at least one ingredient is required"
	} else {
		for _, ing := range in.Ingredients {
			if strings.TrimSpace(ing) == "" {
				fields["ingredients"] = "ingredients must not be empty"
				break
			}
		}
	}

	if in.Servings < 1 {
		fields["servings"] = "must be a positive integer"
	}
	if in.ServingsMax != nil && *in.ServingsMax < in.Servings {
		fields["servingsMax"] = "must be greater than or equal to servings"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AnnotatedRecipe is a recipe plus its derived counts and the owner's
// public profile, the shape every read endpoint returns.
type AnnotatedRecipe struct {
	models.Recipe
	User       models.UserSummary `json:"userId"`
	LikesCount int                `json:"likesCount"`
	SavesCount int                `json:"savesCount"`
}

// CreateRecipe validates the input and inserts a recipe owned by ownerID.
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, in *RecipeInput) (*AnnotatedRecipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Cuisine:      in.Cuisine,
		Image:        in.Image,
		Ingredients:  models.JSONBStringArray(in.Ingredients),
		Instructions: in.Instructions,
		PrepTime:     in.PrepTime,
		Servings:     in.Servings,
		ServingsMax:  in.ServingsMax,
		UserID:       ownerID,
		LikedBy:      models.JSONBUUIDArray{},
		SavedBy:      models.JSONBUUIDArray{},
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.annotate(ctx, &recipe)
}

// UpdateRecipe overwrites the mutable fields of a recipe owned by
// requesterID. Owner, likes, saves and creation time are untouched.
func (s *RecipeService) UpdateRecipe(ctx context.Context, requesterID, recipeID uuid.UUID, in *RecipeInput) (*AnnotatedRecipe, error) {
	recipe, err := s.load(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID {
		return nil, ErrNotRecipeOwner
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	recipe.Title = in.Title
	recipe.Description = in.Description
	recipe.Cuisine = in.Cuisine
	if in.Image != "" {
		recipe.Image = in.Image
	}
	recipe.Ingredients = models.JSONBStringArray(in.Ingredients)
	recipe.Instructions = in.Instructions
	recipe.PrepTime = in.PrepTime
	recipe.Servings = in.Servings
	recipe.ServingsMax = in.ServingsMax

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return s.annotate(ctx, recipe)
}

// DeleteRecipe removes a recipe owned by requesterID.
func (s *RecipeService) DeleteRecipe(ctx context.Context, requesterID, recipeID uuid.UUID) error {
	recipe, err := s.load(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.UserID != requesterID {
		return ErrNotRecipeOwner
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", recipeID).Error
}

// ToggleLike flips requesterID's membership in the recipe's likedBy set.
// Any authenticated user may like any recipe, including their own.
func (s *RecipeService) ToggleLike(ctx context.Context, requesterID, recipeID uuid.UUID) (liked bool, likesCount int, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRecipeNotFound
			}
			return err
		}

		if recipe.LikedBy.Contains(requesterID) {
			recipe.LikedBy = recipe.LikedBy.Remove(requesterID)
			liked = false
		} else {
			recipe.LikedBy = recipe.LikedBy.Add(requesterID)
			liked = true
		}
		likesCount = len(recipe.LikedBy)

		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Update("liked_by", recipe.LikedBy).Error
	})
	return liked, likesCount, err
}

// ToggleSave flips requesterID's membership in the recipe's savedBy set.
func (s *RecipeService) ToggleSave(ctx context.Context, requesterID, recipeID uuid.UUID) (saved bool, savesCount int, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRecipeNotFound
			}
			return err
		}

		if recipe.SavedBy.Contains(requesterID) {
			recipe.SavedBy = recipe.SavedBy.Remove(requesterID)
			saved = false
		} else {
			recipe.SavedBy = recipe.SavedBy.Add(requesterID)
			saved = true
		}
		savesCount = len(recipe.SavedBy)

		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Update("saved_by", recipe.SavedBy).Error
	})
	return saved, savesCount, err
}

// ListRecipes returns all recipes, newest first. A non-empty search term
// narrows the result to recipes whose title, cuisine or ingredients
// contain it, case-insensitively.
func (s *RecipeService) ListRecipes(ctx context.Context, search string) ([]AnnotatedRecipe, error) {
	query := s.db.WithContext(ctx)

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(ingredients::text) LIKE ?",
				like, like, like)
		} else {
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(ingredients) LIKE ?",
				like, like, like)
		}
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.annotateAll(ctx, recipes)
}

// GetRecipe returns a single annotated recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*AnnotatedRecipe, error) {
	recipe, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, recipe)
}

// ListUploadedBy returns the recipes a user created, newest first.
func (s *RecipeService) ListUploadedBy(ctx context.Context, userID uuid.UUID) ([]AnnotatedRecipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.annotateAll(ctx, recipes)
}

// ListSavedBy returns the recipes a user has saved, newest first.
func (s *RecipeService) ListSavedBy(ctx context.Context, userID uuid.UUID) ([]AnnotatedRecipe, error) {
	return s.listByMembership(ctx, "saved_by", userID)
}

// ListLikedBy returns the recipes a user has liked, newest first.
func (s *RecipeService) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]AnnotatedRecipe, error) {
	return s.listByMembership(ctx, "liked_by", userID)
}

func (s *RecipeService) listByMembership(ctx context.Context, column string, userID uuid.UUID) ([]AnnotatedRecipe, error) {
	query := s.db.WithContext(ctx)
	if s.db.Dialector.Name() == "postgres" {
		query = query.Where(column+" @> ?", fmt.Sprintf("[%q]", userID.String()))
	} else {
		query = query.Where(column+" LIKE ?", "%"+userID.String()+"%")
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.annotateAll(ctx, recipes)
}

func (s *RecipeService) load(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) annotate(ctx context.Context, recipe *models.Recipe) (*AnnotatedRecipe, error) {
	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, "id = ?", recipe.UserID).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return &AnnotatedRecipe{
		Recipe:     *recipe,
		User:       owner.Summary(),
		LikesCount: len(recipe.LikedBy),
		SavesCount: len(recipe.SavedBy),
	}, nil
}

// annotateAll resolves every owner in one query.
func (s *RecipeService) annotateAll(ctx context.Context, recipes []models.Recipe) ([]AnnotatedRecipe, error) {
	ownerIDs := make([]uuid.UUID, 0, len(recipes))
	seen := map[uuid.UUID]bool{}
	for _, r := range recipes {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ownerIDs = append(ownerIDs, r.UserID)
		}
	}

	owners := map[uuid.UUID]models.UserSummary{}
	if len(ownerIDs) > 0 {
		var users []models.User
		if err := s.db.WithContext(ctx).Where("id IN ?", ownerIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.ID] = u.Summary()
		}
	}

	result := make([]AnnotatedRecipe, len(recipes))
	for i, r := range recipes {
		result[i] = AnnotatedRecipe{
			Recipe:     r,
			User:       owners[r.UserID],
			LikesCount: len(r.LikedBy),
			SavesCount: len(r.SavedBy),
		}
	}
	return result, nil
}
