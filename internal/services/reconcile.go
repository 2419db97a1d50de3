package services

import (
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"gorm.io/gorm"
)

// findOrCreateLabel returns the owner's label with this exact name, creating it
// when none exists. Running it twice with the same arguments yields the same row.
func findOrCreateLabel[T any, P models.LabelRow[T]](tx *gorm.DB, owner uint, name string) (*T, error) {
	row := P(new(T))
	base := row.Base()
	base.UserID = owner
	base.Name = name

	if err := tx.Where("user_id = ? AND name = ?", owner, name).FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return (*T)(row), nil
}

// reconcileLabels makes names, resolved against the owner's labels, the complete
// association set of the recipe's relation. Names are attached in request order;
// repeats collapse to one row. An empty list clears the relation.
func reconcileLabels[T any, P models.LabelRow[T]](tx *gorm.DB, recipe *models.Recipe, relation string, owner uint, names []string) error {
	rows := make([]T, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		row, err := findOrCreateLabel[T, P](tx, owner, name)
		if err != nil {
			return err
		}
		rows = append(rows, *row)
	}

	association := tx.Model(recipe).Association(relation)
	if len(rows) == 0 {
		return association.Clear()
	}
	return association.Replace(rows)
}

// reconcileRecipeLabels applies the tag and ingredient lists of a write. A nil
// list means the key was absent and the relation is left untouched.
func reconcileRecipeLabels(tx *gorm.DB, recipe *models.Recipe, in models.RecipeInput) error {
	if in.Tags != nil {
		if err := reconcileLabels[models.Tag, *models.Tag](tx, recipe, "Tags", recipe.UserID, *in.Tags); err != nil {
			return err
		}
	}
	if in.Ingredients != nil {
		if err := reconcileLabels[models.Ingredient, *models.Ingredient](tx, recipe, "Ingredients", recipe.UserID, *in.Ingredients); err != nil {
			return err
		}
	}
	return nil
}
