package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadmin-test",
	})
}

func setupProtectedRouter(m *AuthMiddleware, allowed ...models.Role) *gin.Engine {
	router := gin.New()
	group := router.Group("/protected", m.JWTAuth())
	if len(allowed) > 0 {
		group.Use(m.RoleRequired(allowed...))
	}
	group.GET("", func(c *gin.Context) {
		userID, role := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": string(role)})
	})
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService())
	router := setupProtectedRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService())
	router := setupProtectedRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Code != http.StatusUnauthorized || body.Msg != "invalid token" {
		t.Errorf("envelope = {%d %q}, want {401 \"invalid token\"}", body.Code, body.Msg)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "acadmin-test",
	})
	token, err := expired.GenerateToken("T001", models.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	m := NewAuthMiddleware(newTestJWTService())
	router := setupProtectedRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Msg != "token expired" {
		t.Errorf("msg = %q, want %q", body.Msg, "token expired")
	}
}

func TestJWTAuth_ValidTokenExposesIdentity(t *testing.T) {
	svc := newTestJWTService()
	m := NewAuthMiddleware(svc)
	router := setupProtectedRouter(m)

	token, err := svc.GenerateToken("T001", models.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"user_id":"T001"`, `"role":"teacher"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
}

func TestRoleRequired_AllowsListedRole(t *testing.T) {
	svc := newTestJWTService()
	m := NewAuthMiddleware(svc)
	router := setupProtectedRouter(m, models.RoleCounselor, models.RoleAdmin)

	token, _ := svc.GenerateToken("T002", models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for admin on counselor route", w.Code)
	}
}

func TestRoleRequired_RejectsUnlistedRole(t *testing.T) {
	svc := newTestJWTService()
	m := NewAuthMiddleware(svc)
	router := setupProtectedRouter(m, models.RoleAdmin)

	token, _ := svc.GenerateToken("T003", models.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for teacher on admin route", w.Code)
	}
}
