package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the response envelope. Every
// error is terminal for the request; nothing is retried.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrCourseFull):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// One message for every mismatch so the caller cannot learn
		// which field was wrong.
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(http.StatusUnauthorized, "incorrect account, password or role"))

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(http.StatusUnauthorized, err.Error()))

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrCourseNotOwned),
		errors.Is(err, apperrors.ErrOperatorNotAdmin),
		errors.Is(err, apperrors.ErrEnrollmentGraded):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(http.StatusForbidden, err.Error()))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrClassNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrNoGradeRecords):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(http.StatusNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrDuplicateResource):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, err.Error()))

	case errors.Is(err, apperrors.ErrUnexpectedEnrollStatus):
		// Keep the raw procedure token in the message for diagnostics
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
	}
}
