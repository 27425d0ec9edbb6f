package services

import (
	"context"
	"strings"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/repositories"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// StudentService defines the interface for student-facing operations
type StudentService interface {
	Enroll(ctx context.Context, studentID, courseID string) error
	Drop(ctx context.Context, studentID, courseID string) error
	AvailableCourses(ctx context.Context, studentID string) ([]dto.AvailableCourse, error)
	EnrolledCourses(ctx context.Context, studentID string) ([]dto.EnrolledCourse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	studentRepo *repositories.StudentRepository,
) StudentService {
	return &studentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
	}
}

// Enroll delegates the duplicate and capacity checks to the enrollment
// procedure and maps its status token onto the error taxonomy.
func (s *studentServiceImpl) Enroll(ctx context.Context, studentID, courseID string) error {
	status, err := s.enrollmentRepo.Enroll(ctx, studentID, courseID)
	if err != nil {
		return err
	}

	switch status {
	case models.EnrollResultSuccess:
		return nil
	case models.EnrollResultAlreadyEnrolled:
		return apperrors.ErrAlreadyEnrolled
	case models.EnrollResultCourseFull:
		return apperrors.ErrCourseFull
	default:
		// Unknown token from the procedure; keep it in the message for
		// diagnostics.
		return &apperrors.CustomError{
			Err:     apperrors.ErrUnexpectedEnrollStatus,
			Message: "enrollment failed: " + status,
		}
	}
}

// Drop removes an enrollment; a graded enrollment is refused by the
// database trigger and surfaces as ErrEnrollmentGraded.
func (s *studentServiceImpl) Drop(ctx context.Context, studentID, courseID string) error {
	return s.enrollmentRepo.Drop(ctx, studentID, courseID)
}

// AvailableCourses returns the courses the student may still enroll in
func (s *studentServiceImpl) AvailableCourses(ctx context.Context, studentID string) ([]dto.AvailableCourse, error) {
	return s.courseRepo.AvailableForStudent(ctx, studentID)
}

// EnrolledCourses returns the student's current enrollments with grades
func (s *studentServiceImpl) EnrolledCourses(ctx context.Context, studentID string) ([]dto.EnrolledCourse, error) {
	return s.enrollmentRepo.ListForStudent(ctx, studentID)
}

// UpdateProfile updates only the supplied fields of the student row
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error {
	newPassword := strings.TrimSpace(req.NewPassword)
	newEmail := strings.TrimSpace(req.NewEmail)

	if newPassword == "" && newEmail == "" {
		return apperrors.NewValidationError("nothing to update")
	}

	return s.studentRepo.UpdateProfile(ctx, req.StudentID, newPassword, newEmail)
}
