package controllers

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// LabelController serves tags or ingredients; both share one shape
type LabelController[T any, P models.LabelRow[T]] struct {
	service services.LabelService[T]
}

func NewTagController(service services.LabelService[models.Tag]) *LabelController[models.Tag, *models.Tag] {
	return &LabelController[models.Tag, *models.Tag]{service: service}
}

func NewIngredientController(service services.LabelService[models.Ingredient]) *LabelController[models.Ingredient, *models.Ingredient] {
	return &LabelController[models.Ingredient, *models.Ingredient]{service: service}
}

func toResponse[T any, P models.LabelRow[T]](row *T) models.LabelResponse {
	return models.NewLabelResponse(P(row).Base())
}

// List godoc
// @Summary List tags or ingredients
// @Description The authenticated user's labels ordered by name, descending
// @Tags labels
// @Produce json
// @Success 200 {array} models.LabelResponse
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/recipe/tags [get]
// @Router /api/recipe/ingredients [get]
func (lc *LabelController[T, P]) List(c *gin.Context) {
	rows, err := lc.service.List(ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.LabelResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse[T, P](&rows[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a tag or ingredient
// @Description Returns the existing label when the caller already has one with this name
// @Tags labels
// @Accept json
// @Produce json
// @Param label body models.LabelRequest true "Label"
// @Success 201 {object} models.LabelResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/recipe/tags [post]
// @Router /api/recipe/ingredients [post]
func (lc *LabelController[T, P]) Create(c *gin.Context) {
	var req models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := lc.service.Create(ownerID(c), strings.TrimSpace(req.Name))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse[T, P](row))
}

// Update godoc
// @Summary Rename a tag or ingredient
// @Tags labels
// @Accept json
// @Produce json
// @Param id path int true "Label ID"
// @Param label body models.LabelRequest true "Label"
// @Success 200 {object} models.LabelResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/tags/{id} [put]
// @Router /api/recipe/tags/{id} [patch]
// @Router /api/recipe/ingredients/{id} [put]
// @Router /api/recipe/ingredients/{id} [patch]
func (lc *LabelController[T, P]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := lc.service.Update(ownerID(c), id, strings.TrimSpace(req.Name))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse[T, P](row))
}

// Delete godoc
// @Summary Delete a tag or ingredient
// @Description Unlinks the label from every recipe first
// @Tags labels
// @Param id path int true "Label ID"
// @Success 204
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/tags/{id} [delete]
// @Router /api/recipe/ingredients/{id} [delete]
func (lc *LabelController[T, P]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := lc.service.Delete(ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
