package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceDecimalPlaces and PriceMaxDigits mirror the decimal(5,2) column
const (
	PriceDecimalPlaces = 2
	PriceMaxDigits     = 5
)

// Recipe belongs to exactly one user; UserID is never changed after creation
type Recipe struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;index"`
	Title       string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	TimeMinutes int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Link        string          `gorm:"size:255"`
	Tags        []Tag           `gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient    `gorm:"many2many:recipe_ingredients;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeRequest is the body of POST and PUT. An owner field in the body is not
// bound and therefore silently dropped.
type RecipeRequest struct {
	Title       string           `json:"title" binding:"required,notblank,max=255"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Tags        *[]LabelRequest  `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]LabelRequest  `json:"ingredients" binding:"omitempty,dive"`
}

// RecipePatchRequest is the body of PATCH; every field is optional
type RecipePatchRequest struct {
	Title       *string          `json:"title" binding:"omitempty,notblank,max=255"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Tags        *[]LabelRequest  `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]LabelRequest  `json:"ingredients" binding:"omitempty,dive"`
}

// RecipeInput is the validated write handed to the recipe service. A nil
// field means "not supplied"; a non-nil empty label slice means "clear".
type RecipeInput struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	Tags        *[]string
	Ingredients *[]string
}

// Input converts a create/replace body
func (r RecipeRequest) Input() RecipeInput {
	title := strings.TrimSpace(r.Title)
	return RecipeInput{
		Title:       &title,
		Description: r.Description,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        labelNames(r.Tags),
		Ingredients: labelNames(r.Ingredients),
	}
}

// Input converts a partial update body
func (r RecipePatchRequest) Input() RecipeInput {
	var title *string
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		title = &t
	}
	return RecipeInput{
		Title:       title,
		Description: r.Description,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        labelNames(r.Tags),
		Ingredients: labelNames(r.Ingredients),
	}
}

func labelNames(in *[]LabelRequest) *[]string {
	if in == nil {
		return nil
	}
	names := make([]string, 0, len(*in))
	for _, l := range *in {
		names = append(names, strings.TrimSpace(l.Name))
	}
	return &names
}

// NormalizePrice rounds to two places and reports whether the result fits decimal(5,2)
func NormalizePrice(p decimal.Decimal) (decimal.Decimal, bool) {
	rounded := p.Round(PriceDecimalPlaces)
	limit := decimal.New(1, PriceMaxDigits-PriceDecimalPlaces)
	return rounded, rounded.Abs().LessThan(limit)
}

// RecipeSummary is the list representation
type RecipeSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       string          `json:"price"`
	Link        string          `json:"link"`
	Tags        []LabelResponse `json:"tags"`
	Ingredients []LabelResponse `json:"ingredients"`
}

// RecipeDetail adds the description to the summary
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"`
}

// NewRecipeSummary maps a recipe with its preloaded labels
func NewRecipeSummary(r *Recipe) RecipeSummary {
	tags := make([]LabelResponse, 0, len(r.Tags))
	for i := range r.Tags {
		tags = append(tags, NewLabelResponse(&r.Tags[i].Label))
	}
	ingredients := make([]LabelResponse, 0, len(r.Ingredients))
	for i := range r.Ingredients {
		ingredients = append(ingredients, NewLabelResponse(&r.Ingredients[i].Label))
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i].ID < ingredients[j].ID })

	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(PriceDecimalPlaces),
		Link:        r.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

// NewRecipeDetail maps a recipe to its detail representation
func NewRecipeDetail(r *Recipe) RecipeDetail {
	return RecipeDetail{
		RecipeSummary: NewRecipeSummary(r),
		Description:   r.Description,
	}
}
