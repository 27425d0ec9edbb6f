package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aydink/acadmin/internal/app/models/dto"
)

// BindJSON binds and validates a JSON body, writing the 400 envelope on
// failure. Returns false when the request was already answered.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, formatBindError(err)))
		return false
	}
	return true
}

// RequireQuery fetches a required query parameter, answering with 400
// when it is missing.
func RequireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, name+" is required"))
		return "", false
	}
	return value, true
}

// formatBindError creates a human-readable message for binding failures
func formatBindError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatValidationError(validationErrs[0])
	}
	return "invalid request format"
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
