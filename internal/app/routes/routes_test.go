package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/controllers"
	"github.com/aydink/acadmin/internal/middleware"
	"github.com/aydink/acadmin/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the real route table with nil services. Handlers
// are never invoked: requests carry no token, so the auth middleware
// answers 401 for every registered protected path, while unregistered
// paths fall through to gin's 404.
func newTestRouter() *gin.Engine {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadmin-test",
	})

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewStudentController(nil),
		controllers.NewTeacherController(nil),
		controllers.NewCounselorController(nil),
		controllers.NewAdminController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func TestProtectedRoutesAreRegistered(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/teacher/courses"},
		{http.MethodPost, "/api/teacher/update_score"},
		{http.MethodGet, "/api/teacher/course_analysis"},
		{http.MethodGet, "/api/counselor/class_grades"},
		{http.MethodGet, "/api/counselor/failed_students"},
		{http.MethodGet, "/api/counselor/class_analysis"},
		{http.MethodGet, "/api/counselor/academic_report"},
		{http.MethodPost, "/api/counselor/analyze_student"},
		{http.MethodGet, "/api/admin/departments"},
		{http.MethodGet, "/api/admin/classes"},
		{http.MethodGet, "/api/admin/courses"},
		{http.MethodGet, "/api/admin/students"},
		{http.MethodGet, "/api/admin/reports/enrollment"},
		{http.MethodPost, "/api/admin/update_teacher_role"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("%s %s = %d, want 401 (registered path, no token)", tt.method, tt.path, w.Code)
			}
		})
	}
}

func TestRenamedPathsAreGone(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/teacher/my_courses"},
		{http.MethodGet, "/api/admin/enrollment_report"},
		{http.MethodPost, "/api/admin/update_role"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("%s %s = %d, want 404", tt.method, tt.path, w.Code)
			}
		})
	}
}

func TestPublicRoutesAreRegistered(t *testing.T) {
	router := newTestRouter()

	// Bodyless requests stop at binding, before any nil service is
	// touched, so a registered public POST answers 400.
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodPost, "/api/auth/login", http.StatusBadRequest},
		{http.MethodPost, "/api/student/enroll", http.StatusBadRequest},
		{http.MethodPost, "/api/student/drop", http.StatusBadRequest},
		{http.MethodGet, "/api/student/available_courses", http.StatusBadRequest},
		{http.MethodGet, "/api/student/enrolled_courses", http.StatusBadRequest},
		{http.MethodPost, "/api/student/update_profile", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
		})
	}
}
