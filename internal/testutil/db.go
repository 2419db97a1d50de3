// Package testutil builds isolated databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full schema migrated.
// Every call gets its own database, so tests never see each other's rows.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	models.PasswordCost = bcrypt.MinCost

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts an active user with the given email and password
func CreateUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    models.NormalizeEmail(email),
		Name:     "Test User",
		IsActive: true,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateRecipe inserts a recipe for owner with sample values
func CreateRecipe(t *testing.T, db *gorm.DB, owner uint, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		UserID:      owner,
		Title:       title,
		Description: "Sample description",
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.25"),
		Link:        "http://www.example.com/recipe.pdf",
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// CreateTag inserts a tag owned by owner
func CreateTag(t *testing.T, db *gorm.DB, owner uint, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Label: models.Label{UserID: owner, Name: name}}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// CreateIngredient inserts an ingredient owned by owner
func CreateIngredient(t *testing.T, db *gorm.DB, owner uint, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Label: models.Label{UserID: owner, Name: name}}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}
