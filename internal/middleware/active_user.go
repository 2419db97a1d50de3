package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
)

// UserLoader fetches the account behind an authenticated request
type UserLoader interface {
	GetUserByID(id uint) (*models.User, error)
}

// RequireActiveUser loads the user set by TokenAuth and rejects requests from
// deleted or disabled accounts.
func RequireActiveUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		if userID == 0 {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrAuthorizationRequired,
				"Authentication credentials were not provided.")
			return
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken,
				"User not found.")
			return
		}
		if !user.IsActive {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken,
				"User inactive or deleted.")
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireActiveUser
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
