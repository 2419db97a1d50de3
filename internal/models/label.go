package models

import "time"

// Label holds the columns shared by tags and ingredients. Names are unique per
// owner only by convention of the reconciliation code, not by a constraint.
type Label struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Base gives generic code access to the shared columns
func (l *Label) Base() *Label {
	return l
}

// Tag categorizes recipes
type Tag struct {
	Label
}

// Ingredient is something a recipe is made of
type Ingredient struct {
	Label
}

// LabelRow is satisfied by *Tag and *Ingredient
type LabelRow[T any] interface {
	*T
	Base() *Label
}

// LabelRequest is the body for creating or updating a tag or ingredient,
// and the shape of inline label descriptors in recipe writes
type LabelRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// LabelResponse is the public shape of a tag or ingredient
type LabelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewLabelResponse maps the shared columns of a label
func NewLabelResponse(l *Label) LabelResponse {
	return LabelResponse{ID: l.ID, Name: l.Name}
}
