package main

import (
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipe-api/internal/config"
	"github.com/franciscosanchezn/gin-recipe-api/internal/controllers"
	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/router"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Recipe API
// @version 1.0
// @description Multi-tenant recipe API with per-user tags and ingredients
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Register the API as its own OAuth client
	_, err := services.NewClientService(db).EnsureClient(
		configuration.OAuthClientID, configuration.OAuthClientSecret, "Recipe API")
	checkPanicErr(err)

	oauthService := auth.NewOAuthService(db, configuration.JWTSecret, auth.ClientCredentials{
		ID:     configuration.OAuthClientID,
		Secret: configuration.OAuthClientSecret,
	}, time.Duration(configuration.TokenTTLHours)*time.Hour)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	engine := router.SetupRouter(router.Dependencies{
		DB:                db,
		JWTSecret:         configuration.JWTSecret,
		Tokens:            oauthService,
		UserService:       services.NewUserService(db),
		RecipeService:     services.NewRecipeService(db),
		TagService:        services.NewTagService(db),
		IngredientService: services.NewIngredientService(db),
		Logger:            log.StandardLogger(),
		AuthRateLimit:     configuration.AuthRateLimit,
	})

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(engine.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger uses a JSON formatter and the level from APP_ENV, unless LOG_LEVEL names one
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(conf.Environment)
	if parsed, err := log.ParseLevel(conf.LogLevel); err == nil && config.GetEnvWithDefault("LOG_LEVEL", "") != "" {
		level = parsed
	}
	log.SetLevel(level)
	services.SetLogLevel(level)
	controllers.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, waiting for the database to come up, and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	log.Info("Database schema is up to date")
	return db
}
