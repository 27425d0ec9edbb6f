package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStudentService lets each test inject the error it wants back
type stubStudentService struct {
	enrollErr     error
	dropErr       error
	available     []dto.AvailableCourse
	availableErr  error
	enrolled      []dto.EnrolledCourse
	enrolledErr   error
	updateErr     error
	lastStudentID string
	lastCourseID  string
}

func (s *stubStudentService) Enroll(_ context.Context, studentID, courseID string) error {
	s.lastStudentID, s.lastCourseID = studentID, courseID
	return s.enrollErr
}

func (s *stubStudentService) Drop(_ context.Context, studentID, courseID string) error {
	s.lastStudentID, s.lastCourseID = studentID, courseID
	return s.dropErr
}

func (s *stubStudentService) AvailableCourses(_ context.Context, studentID string) ([]dto.AvailableCourse, error) {
	s.lastStudentID = studentID
	return s.available, s.availableErr
}

func (s *stubStudentService) EnrolledCourses(_ context.Context, studentID string) ([]dto.EnrolledCourse, error) {
	s.lastStudentID = studentID
	return s.enrolled, s.enrolledErr
}

func (s *stubStudentService) UpdateProfile(_ context.Context, req dto.UpdateProfileRequest) error {
	s.lastStudentID = req.StudentID
	return s.updateErr
}

func newStudentRouter(svc *stubStudentService) *gin.Engine {
	ctrl := NewStudentController(svc)
	router := gin.New()
	router.POST("/student/enroll", ctrl.Enroll)
	router.POST("/student/drop", ctrl.Drop)
	router.GET("/student/available_courses", ctrl.AvailableCourses)
	router.GET("/student/enrolled_courses", ctrl.EnrolledCourses)
	router.POST("/student/update_profile", ctrl.UpdateProfile)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)

	var envelope dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestEnroll_Success(t *testing.T) {
	svc := &stubStudentService{}
	router := newStudentRouter(svc)

	w, envelope := doJSON(router, http.MethodPost, "/student/enroll",
		`{"student_id":"S001","course_id":"C001"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if envelope.Code != 200 {
		t.Errorf("envelope code = %d, want 200", envelope.Code)
	}
	if svc.lastStudentID != "S001" || svc.lastCourseID != "C001" {
		t.Errorf("service called with (%q, %q), want (S001, C001)", svc.lastStudentID, svc.lastCourseID)
	}
}

func TestEnroll_MissingFields(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	w, envelope := doJSON(router, http.MethodPost, "/student/enroll", `{"student_id":"S001"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing course_id", w.Code)
	}
	if envelope.Code != http.StatusBadRequest {
		t.Errorf("envelope code = %d, want 400", envelope.Code)
	}
}

func TestEnroll_CourseFull(t *testing.T) {
	svc := &stubStudentService{enrollErr: apperrors.ErrCourseFull}
	router := newStudentRouter(svc)

	w, envelope := doJSON(router, http.MethodPost, "/student/enroll",
		`{"student_id":"S001","course_id":"C001"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for full course", w.Code)
	}
	if envelope.Msg == "" {
		t.Error("envelope msg should describe the rejection")
	}
}

func TestDrop_GradedEnrollmentForbidden(t *testing.T) {
	svc := &stubStudentService{dropErr: apperrors.ErrEnrollmentGraded}
	router := newStudentRouter(svc)

	w, _ := doJSON(router, http.MethodPost, "/student/drop",
		`{"student_id":"S001","course_id":"C001"}`)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for graded enrollment", w.Code)
	}
}

func TestAvailableCourses_RequiresStudentID(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	w, _ := doJSON(router, http.MethodGet, "/student/available_courses", "")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without student_id", w.Code)
	}
}

func TestEnrolledCourses_ReturnsData(t *testing.T) {
	score := 88.0
	svc := &stubStudentService{
		enrolled: []dto.EnrolledCourse{
			{CourseID: "C001", CourseName: "Calculus", Credits: 4, Score: &score, TeacherName: "Dr. Chen"},
		},
	}
	router := newStudentRouter(svc)

	w, envelope := doJSON(router, http.MethodGet, "/student/enrolled_courses?student_id=S001", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Data == nil {
		t.Error("envelope data should carry the course list")
	}
	if svc.lastStudentID != "S001" {
		t.Errorf("service called with %q, want S001", svc.lastStudentID)
	}
}

func TestUpdateProfile_StudentNotFound(t *testing.T) {
	svc := &stubStudentService{updateErr: apperrors.ErrStudentNotFound}
	router := newStudentRouter(svc)

	w, _ := doJSON(router, http.MethodPost, "/student/update_profile",
		`{"student_id":"S404","new_email":"new@example.edu"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown student", w.Code)
	}
}
