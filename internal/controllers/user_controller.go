package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TokenIssuer hands out access tokens for authenticated users
type TokenIssuer interface {
	IssueToken(ctx context.Context, user *models.User) (string, error)
}

// UserController handles registration, token issuance and the caller's profile
type UserController struct {
	userService services.UserService
	tokens      TokenIssuer
}

func NewUserController(userService services.UserService, tokens TokenIssuer) *UserController {
	return &UserController{
		userService: userService,
		tokens:      tokens,
	}
}

// Register godoc
// @Summary Register a user
// @Description Create a new account. The email must not be registered yet.
// @Tags user
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "New account"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} models.APIError
// @Router /api/user/create [post]
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.userService.CreateUser(req.Email, req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

// Token godoc
// @Summary Obtain an access token
// @Description Exchange email and password for an access token
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body models.TokenRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.APIError
// @Router /api/user/token [post]
func (uc *UserController) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := uc.tokens.IssueToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/user/me [get]
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.userService.GetUserByID(ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateMe godoc
// @Summary Update the authenticated user
// @Description Change the name and/or password. The email cannot be changed here.
// @Tags user
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /api/user/me [put]
// @Router /api/user/me [patch]
func (uc *UserController) UpdateMe(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	user, err := uc.userService.UpdateProfile(ownerID(c), req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}
