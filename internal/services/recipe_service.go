package services

import (
	"github.com/franciscosanchezn/gin-recipe-api/internal/apperror"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeService provides owner-scoped access to recipes
type RecipeService interface {
	// ListRecipes returns the owner's recipes, newest first
	ListRecipes(owner uint) ([]models.Recipe, error)
	// GetRecipe returns one of the owner's recipes with its labels
	GetRecipe(owner, id uint) (*models.Recipe, error)
	// CreateRecipe stores a new recipe and reconciles its labels
	CreateRecipe(owner uint, in models.RecipeInput) (*models.Recipe, error)
	// UpdateRecipe applies the supplied fields and reconciles the supplied label lists
	UpdateRecipe(owner, id uint, in models.RecipeInput) (*models.Recipe, error)
	// DeleteRecipe removes one of the owner's recipes and its label links
	DeleteRecipe(owner, id uint) error
}

// recipeService is the implementation of the RecipeService interface
type recipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(db *gorm.DB) RecipeService {
	return &recipeService{db: db}
}

func (s *recipeService) ListRecipes(owner uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Scopes(ownedBy(owner)).
		Preload("Tags").
		Preload("Ingredients").
		Order("id desc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(owner, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Scopes(ownedBy(owner)).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, id).Error
	if err != nil {
		return nil, notFoundOr(err, "recipe", id)
	}
	return &recipe, nil
}

func (s *recipeService) CreateRecipe(owner uint, in models.RecipeInput) (*models.Recipe, error) {
	switch {
	case in.Title == nil:
		return nil, apperror.ValidationFailed("title", "This field is required.")
	case in.TimeMinutes == nil:
		return nil, apperror.ValidationFailed("time_minutes", "This field is required.")
	case in.Price == nil:
		return nil, apperror.ValidationFailed("price", "This field is required.")
	}

	recipe := models.Recipe{UserID: owner}
	if err := applyRecipeFields(&recipe, in); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}
		return reconcileRecipeLabels(tx, &recipe, in)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"user_id": owner, "recipe_id": recipe.ID}).Debug("Recipe created")
	return s.GetRecipe(owner, recipe.ID)
}

func (s *recipeService) UpdateRecipe(owner, id uint, in models.RecipeInput) (*models.Recipe, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Scopes(ownedBy(owner)).First(&recipe, id).Error; err != nil {
			return notFoundOr(err, "recipe", id)
		}

		if err := applyRecipeFields(&recipe, in); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&recipe).Error; err != nil {
			return err
		}
		return reconcileRecipeLabels(tx, &recipe, in)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"user_id": owner, "recipe_id": id}).Debug("Recipe updated")
	return s.GetRecipe(owner, id)
}

func (s *recipeService) DeleteRecipe(owner, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Scopes(ownedBy(owner)).First(&recipe, id).Error; err != nil {
			return notFoundOr(err, "recipe", id)
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// applyRecipeFields copies the supplied scalar fields onto the recipe. The owner
// is not part of RecipeInput and so can never change here.
func applyRecipeFields(recipe *models.Recipe, in models.RecipeInput) error {
	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.TimeMinutes != nil {
		recipe.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		price, ok := models.NormalizePrice(*in.Price)
		if !ok {
			return apperror.ValidationFailed("price", "Ensure that there are no more than 5 digits in total.")
		}
		recipe.Price = price
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}
	return nil
}
