package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/service"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipes *service.RecipeService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")

	recipes.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListRecipes)
	recipes.GET("/:id", middleware.OptionalAuthMiddleware(h.authService), h.GetRecipe)

	authed := recipes.Group("", middleware.AuthMiddleware(h.authService))
	{
		create := authed.Group("")
		if h.rateLimiter != nil {
			create.Use(h.rateLimiter.RateLimitMiddleware())
		}
		create.POST("", h.CreateRecipe)

		authed.PUT("/:id", h.UpdateRecipe)
		authed.DELETE("/:id", h.DeleteRecipe)
		authed.POST("/:id/like", h.ToggleLike)
		authed.POST("/:id/save", h.ToggleSave)
		authed.GET("/user/uploaded", h.ListUploaded)
		authed.GET("/user/saved", h.ListSaved)
		authed.GET("/user/liked", h.ListLiked)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input service.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var input service.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), userID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	liked, likesCount, err := h.recipes.ToggleLike(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleLikeResponse{Liked: liked, LikesCount: likesCount})
}

func (h *RecipeHandler) ToggleSave(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	saved, savesCount, err := h.recipes.ToggleSave(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleSaveResponse{Saved: saved, SavesCount: savesCount})
}

func (h *RecipeHandler) ListUploaded(c *gin.Context) {
	h.listForUser(c, h.recipes.ListUploadedBy)
}

func (h *RecipeHandler) ListSaved(c *gin.Context) {
	h.listForUser(c, h.recipes.ListSavedBy)
}

func (h *RecipeHandler) ListLiked(c *gin.Context) {
	h.listForUser(c, h.recipes.ListLikedBy)
}

func (h *RecipeHandler) listForUser(c *gin.Context, list func(ctx context.Context, userID uuid.UUID) ([]service.AnnotatedRecipe, error)) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := list(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}
