package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-api/internal/apperror"
	"github.com/franciscosanchezn/gin-recipe-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLogLevel aligns the controller logger with the configured level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// respondBindError answers a request whose body failed to bind or validate
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.NewValidationError(validation.FieldErrors(err)))
}

// respondError maps service errors to status codes. Anything unrecognised is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	errors.As(err, &appErr)

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
	case errors.Is(err, apperror.ErrValidation):
		c.JSON(http.StatusBadRequest, models.NewValidationError(fieldMessages(appErr)))
	case errors.Is(err, apperror.ErrConflict):
		body := models.NewValidationError(fieldMessages(appErr))
		if appErr != nil && appErr.Field == "email" {
			body.Code = models.ErrEmailTaken
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperror.ErrUnauthenticated):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidCredentials, err.Error(),
			map[string]interface{}{validation.NonFieldErrors: []string{err.Error()}}))
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error."))
	}
}

func fieldMessages(appErr *apperror.AppError) map[string][]string {
	if appErr == nil {
		return map[string][]string{validation.NonFieldErrors: {"Invalid input."}}
	}
	return map[string][]string{fieldOrGeneral(appErr): {appErr.Message}}
}

func fieldOrGeneral(appErr *apperror.AppError) string {
	if appErr == nil || appErr.Field == "" {
		return validation.NonFieldErrors
	}
	return appErr.Field
}

// pathID parses the :id parameter. Anything that is not a positive integer is
// reported as not found, the same as an ID that matches no row.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
		return 0, false
	}
	return uint(id), true
}

// ownerID returns the authenticated user's ID set by the auth middleware
func ownerID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}
