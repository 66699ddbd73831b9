package handler

import (
	"errors"
	"net/http"

	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps the service error taxonomy onto HTTP statuses in one
// place so every handler reports failures the same way.
func respondError(c *gin.Context, err error) {
	var validationError *service.ValidationError
	switch {
	case errors.As(err, &validationError):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationError.Message,
			"field": validationError.Field,
		})
	case errors.Is(err, service.ErrUsernameInUse),
		errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrSlugInUse),
		errors.Is(err, service.ErrReviewExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		middleware.Forbidden(c)
	case errors.Is(err, service.ErrInvalidCredentials):
		// Same body for unknown username and wrong code.
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
