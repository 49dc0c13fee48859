package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platefeed/backend/internal/api"
	"github.com/platefeed/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	uploadHandler *api.UploadHandler,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	root := router.Group("/api")
	authHandler.RegisterRoutes(root)
	recipeHandler.RegisterRoutes(root)
	uploadHandler.RegisterRoutes(root)

	return router
}
