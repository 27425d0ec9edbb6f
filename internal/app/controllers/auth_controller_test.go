package controllers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// stubAuthService returns a canned response or error
type stubAuthService struct {
	resp    *dto.LoginResponse
	err     error
	lastReq dto.LoginRequest
}

func (s *stubAuthService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	ctrl := NewAuthController(svc)
	router := gin.New()
	router.POST("/auth/login", ctrl.Login)
	return router
}

func TestLogin_Success(t *testing.T) {
	svc := &stubAuthService{
		resp: &dto.LoginResponse{Token: "signed-token", Role: "student"},
	}
	router := newAuthRouter(svc)

	w, envelope := doJSON(router, http.MethodPost, "/auth/login",
		`{"username":"S001","password":"pw","role":"student"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if envelope.Code != 200 || envelope.Msg != "login successful" {
		t.Errorf("envelope = {%d %q}, want {200 \"login successful\"}", envelope.Code, envelope.Msg)
	}
	if envelope.Data == nil {
		t.Error("envelope data should carry the token payload")
	}
	if svc.lastReq.Username != "S001" || svc.lastReq.Role != "student" {
		t.Errorf("service called with %+v", svc.lastReq)
	}
}

func TestLogin_ResponseStripsPassword(t *testing.T) {
	tests := []struct {
		name string
		info interface{}
	}{
		{
			name: "student info",
			info: &models.Student{
				ID: "S001", Name: "Jordan Lee", Password: "plain-secret",
				ClassID: "CL01", Email: "s001@example.edu", DeptID: "D001",
			},
		},
		{
			name: "teacher info",
			info: &models.Teacher{
				ID: "T001", Name: "Dr. Chen", Password: "plain-secret",
				RollType: models.RoleTeacher,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{
				resp: &dto.LoginResponse{Token: "signed-token", Role: "student", Info: tt.info},
			}
			router := newAuthRouter(svc)

			w, _ := doJSON(router, http.MethodPost, "/auth/login",
				`{"username":"S001","password":"pw","role":"student"}`)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := w.Body.String()
			if strings.Contains(body, "password") {
				t.Errorf("response carries a password key: %s", body)
			}
			if strings.Contains(body, "plain-secret") {
				t.Errorf("response leaks the stored password: %s", body)
			}
		})
	}
}

func TestLogin_MissingRole(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w, envelope := doJSON(router, http.MethodPost, "/auth/login",
		`{"username":"S001","password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing role", w.Code)
	}
	if envelope.Code != http.StatusBadRequest {
		t.Errorf("envelope code = %d, want 400", envelope.Code)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := &stubAuthService{err: apperrors.ErrInvalidCredentials}
	router := newAuthRouter(svc)

	w, envelope := doJSON(router, http.MethodPost, "/auth/login",
		`{"username":"S001","password":"wrong","role":"student"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if envelope.Msg != "incorrect account, password or role" {
		t.Errorf("msg = %q, want the uniform credential failure message", envelope.Msg)
	}
}

func TestLogin_InvalidRole(t *testing.T) {
	svc := &stubAuthService{err: apperrors.NewValidationError("invalid role type")}
	router := newAuthRouter(svc)

	w, _ := doJSON(router, http.MethodPost, "/auth/login",
		`{"username":"S001","password":"pw","role":"superuser"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown role", w.Code)
	}
}
