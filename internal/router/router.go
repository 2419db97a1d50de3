// Package router wires controllers, middleware and documentation into a gin engine.
package router

import (
	"net/http"

	_ "github.com/franciscosanchezn/gin-recipe-api/docs" // swagger docs
	"github.com/franciscosanchezn/gin-recipe-api/internal/controllers"
	"github.com/franciscosanchezn/gin-recipe-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// TokenService issues tokens at login and resolves them on every request
type TokenService interface {
	controllers.TokenIssuer
	middleware.TokenLoader
}

// Dependencies are the collaborators the routes need
type Dependencies struct {
	DB                *gorm.DB
	JWTSecret         string
	Tokens            TokenService
	UserService       services.UserService
	RecipeService     services.RecipeService
	TagService        services.LabelService[models.Tag]
	IngredientService services.LabelService[models.Ingredient]
	Logger            logrus.FieldLogger
	// AuthRateLimit caps registration and token requests per client IP per
	// minute; zero disables the limit
	AuthRateLimit int
}

// SetupRouter initializes the Gin router and sets up the routes
func SetupRouter(deps Dependencies) *gin.Engine {
	validation.Register()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	if deps.Logger != nil {
		router.Use(middleware.RequestLogger(deps.Logger))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.NewAPIError(models.ErrMethodNotAllowed,
			"Method \""+c.Request.Method+"\" not allowed."))
	})

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", controllers.HealthCheck(deps.DB))

	userController := controllers.NewUserController(deps.UserService, deps.Tokens)
	recipeController := controllers.NewRecipeController(deps.RecipeService)
	tagController := controllers.NewTagController(deps.TagService)
	ingredientController := controllers.NewIngredientController(deps.IngredientService)

	authenticated := []gin.HandlerFunc{
		middleware.TokenAuth([]byte(deps.JWTSecret), deps.Tokens),
		middleware.RequireActiveUser(deps.UserService),
	}

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			var throttle []gin.HandlerFunc
			if deps.AuthRateLimit > 0 {
				limiter := middleware.NewKeyedRateLimiter(deps.AuthRateLimit, deps.AuthRateLimit)
				throttle = append(throttle, middleware.RateLimit(limiter))
			}
			user.POST("/create", append(throttle, userController.Register)...)
			user.POST("/token", append(throttle, userController.Token)...)

			me := user.Group("/me", authenticated...)
			me.GET("", userController.Me)
			me.PUT("", userController.UpdateMe)
			me.PATCH("", userController.UpdateMe)
		}

		recipe := api.Group("/recipe", authenticated...)
		{
			recipe.GET("/recipes", recipeController.ListRecipes)
			recipe.POST("/recipes", recipeController.CreateRecipe)
			recipe.GET("/recipes/:id", recipeController.GetRecipe)
			recipe.PUT("/recipes/:id", recipeController.ReplaceRecipe)
			recipe.PATCH("/recipes/:id", recipeController.PatchRecipe)
			recipe.DELETE("/recipes/:id", recipeController.DeleteRecipe)

			recipe.GET("/tags", tagController.List)
			recipe.POST("/tags", tagController.Create)
			recipe.PUT("/tags/:id", tagController.Update)
			recipe.PATCH("/tags/:id", tagController.Update)
			recipe.DELETE("/tags/:id", tagController.Delete)

			recipe.GET("/ingredients", ingredientController.List)
			recipe.POST("/ingredients", ingredientController.Create)
			recipe.PUT("/ingredients/:id", ingredientController.Update)
			recipe.PATCH("/ingredients/:id", ingredientController.Update)
			recipe.DELETE("/ingredients/:id", ingredientController.Delete)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
