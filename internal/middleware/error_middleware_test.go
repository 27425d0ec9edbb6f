package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandler(t *testing.T, err error) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	return w, body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationError("score must be a number"), http.StatusBadRequest},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusBadRequest},
		{"course full", apperrors.ErrCourseFull, http.StatusBadRequest},
		{"duplicate resource", apperrors.ErrDuplicateResource, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"course not owned", apperrors.ErrCourseNotOwned, http.StatusForbidden},
		{"operator not admin", apperrors.ErrOperatorNotAdmin, http.StatusForbidden},
		{"graded enrollment drop", apperrors.ErrEnrollmentGraded, http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewNotFoundError("class not found"), http.StatusNotFound},
		{"no grade records", apperrors.ErrNoGradeRecords, http.StatusNotFound},
		{"unexpected enroll status", apperrors.ErrUnexpectedEnrollStatus, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := runHandler(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("HTTP status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Code != tt.wantStatus {
				t.Errorf("envelope code = %d, want %d", body.Code, tt.wantStatus)
			}
			if body.Msg == "" {
				t.Error("envelope msg should not be empty on error")
			}
		})
	}
}

func TestHandleAPIError_CredentialMessageIsUniform(t *testing.T) {
	_, body := runHandler(t, apperrors.ErrInvalidCredentials)
	if body.Msg != "incorrect account, password or role" {
		t.Errorf("msg = %q, want the uniform credential failure message", body.Msg)
	}
}

func TestHandleAPIError_UnknownErrorIsOpaque(t *testing.T) {
	w, body := runHandler(t, errInternal{})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("HTTP status = %d, want 500", w.Code)
	}
	if body.Msg != "internal server error" {
		t.Errorf("msg = %q, internal details must not leak", body.Msg)
	}
}

type errInternal struct{}

func (errInternal) Error() string { return "pq: connection refused to 10.0.0.3" }
