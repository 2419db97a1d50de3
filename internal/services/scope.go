package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-recipe-api/internal/apperror"
	"gorm.io/gorm"
)

// ownedBy restricts a query to rows whose user_id is owner. Every recipe and
// label query goes through it; there is no request-global user.
func ownedBy(owner uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", owner)
	}
}

// notFoundOr turns gorm's missing-row error into an apperror so rows owned by
// another user and rows that do not exist look the same to the caller
func notFoundOr(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource, id)
	}
	return err
}
