package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// ListRecipes lists the caller's recipes
	ListRecipes(c *gin.Context)
	// GetRecipe returns one of the caller's recipes
	GetRecipe(c *gin.Context)
	// CreateRecipe creates a recipe owned by the caller
	CreateRecipe(c *gin.Context)
	// ReplaceRecipe handles PUT
	ReplaceRecipe(c *gin.Context)
	// PatchRecipe handles PATCH
	PatchRecipe(c *gin.Context)
	// DeleteRecipe deletes one of the caller's recipes
	DeleteRecipe(c *gin.Context)
}

type recipeController struct {
	service services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService) RecipeController {
	return &recipeController{service: service}
}

// ListRecipes godoc
// @Summary List recipes
// @Description List the authenticated user's recipes, newest first
// @Tags recipes
// @Produce json
// @Success 200 {array} models.RecipeSummary
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/recipe/recipes [get]
func (rc *recipeController) ListRecipes(c *gin.Context) {
	recipes, err := rc.service.ListRecipes(ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		out = append(out, models.NewRecipeSummary(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetRecipe godoc
// @Summary Get recipe by ID
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/recipes/{id} [get]
func (rc *recipeController) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipe, err := rc.service.GetRecipe(ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Tags and ingredients are matched by name against the caller's existing ones and created when missing
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.RecipeRequest true "Recipe"
// @Success 201 {object} models.RecipeDetail
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/recipe/recipes [post]
func (rc *recipeController) CreateRecipe(c *gin.Context) {
	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := rc.service.CreateRecipe(ownerID(c), req.Input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewRecipeDetail(recipe))
}

// ReplaceRecipe godoc
// @Summary Replace a recipe
// @Description Required fields must be present. Omitted tag or ingredient lists keep their current links.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body models.RecipeRequest true "Recipe"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/recipes/{id} [put]
func (rc *recipeController) ReplaceRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	rc.update(c, id, req.Input())
}

// PatchRecipe godoc
// @Summary Partially update a recipe
// @Description Only supplied fields change. A supplied empty tag or ingredient list clears that relation.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body models.RecipePatchRequest true "Fields to change"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/recipes/{id} [patch]
func (rc *recipeController) PatchRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.RecipePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	rc.update(c, id, req.Input())
}

func (rc *recipeController) update(c *gin.Context, id uint, in models.RecipeInput) {
	recipe, err := rc.service.UpdateRecipe(ownerID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/recipe/recipes/{id} [delete]
func (rc *recipeController) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.service.DeleteRecipe(ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
