package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"gorm.io/gorm"
)

// LabelService provides owner-scoped access to tags or ingredients
type LabelService[T any] interface {
	// List returns the owner's labels sorted by name, descending
	List(owner uint) ([]T, error)
	// Create returns the owner's label with this name, creating it if needed
	Create(owner uint, name string) (*T, error)
	// Update renames one of the owner's labels
	Update(owner, id uint, name string) (*T, error)
	// Delete removes one of the owner's labels and unlinks it from recipes
	Delete(owner, id uint) error
}

type labelService[T any, P models.LabelRow[T]] struct {
	db         *gorm.DB
	resource   string
	joinTable  string
	joinColumn string
}

// NewTagService creates the LabelService for tags
func NewTagService(db *gorm.DB) LabelService[models.Tag] {
	return &labelService[models.Tag, *models.Tag]{
		db:         db,
		resource:   "tag",
		joinTable:  "recipe_tags",
		joinColumn: "tag_id",
	}
}

// NewIngredientService creates the LabelService for ingredients
func NewIngredientService(db *gorm.DB) LabelService[models.Ingredient] {
	return &labelService[models.Ingredient, *models.Ingredient]{
		db:         db,
		resource:   "ingredient",
		joinTable:  "recipe_ingredients",
		joinColumn: "ingredient_id",
	}
}

func (s *labelService[T, P]) List(owner uint) ([]T, error) {
	var rows []T
	if err := s.db.Scopes(ownedBy(owner)).Order("name desc").Order("id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *labelService[T, P]) Create(owner uint, name string) (*T, error) {
	var row *T
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = findOrCreateLabel[T, P](tx, owner, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *labelService[T, P]) Update(owner, id uint, name string) (*T, error) {
	row := P(new(T))
	if err := s.db.Scopes(ownedBy(owner)).First(row, id).Error; err != nil {
		return nil, notFoundOr(err, s.resource, id)
	}
	row.Base().Name = name
	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}
	return (*T)(row), nil
}

func (s *labelService[T, P]) Delete(owner, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		row := P(new(T))
		if err := tx.Scopes(ownedBy(owner)).First(row, id).Error; err != nil {
			return notFoundOr(err, s.resource, id)
		}
		unlink := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", s.joinTable, s.joinColumn)
		if err := tx.Exec(unlink, id).Error; err != nil {
			return err
		}
		return tx.Delete(row).Error
	})
}
