package services

import (
	"context"
	"strconv"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/repositories"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// TeacherService defines the interface for teacher-facing operations.
// The teacher identity always comes from the authenticated context, never
// from client input.
type TeacherService interface {
	TaughtCourses(ctx context.Context, teacherID string) ([]dto.TaughtCourse, error)
	UpdateScore(ctx context.Context, callerID string, callerRole models.Role, req dto.UpdateScoreRequest) error
	AnalyzeCourse(ctx context.Context, callerID string, callerRole models.Role, courseID string) (*dto.CourseAnalysis, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) TeacherService {
	return &teacherServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// parseScore accepts a JSON number or a numeric string
func parseScore(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, apperrors.NewValidationError("score must be a number")
		}
		return score, nil
	default:
		return 0, apperrors.NewValidationError("score must be a number")
	}
}

// TaughtCourses returns each of the teacher's courses with its roster
func (s *teacherServiceImpl) TaughtCourses(ctx context.Context, teacherID string) ([]dto.TaughtCourse, error) {
	courses, err := s.courseRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	taught := make([]dto.TaughtCourse, 0, len(courses))
	for _, course := range courses {
		roster, err := s.enrollmentRepo.Roster(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		taught = append(taught, dto.TaughtCourse{
			CourseID:   course.ID,
			CourseName: course.Name,
			Credits:    course.Credits,
			Capacity:   course.Capacity,
			Students:   roster,
		})
	}

	return taught, nil
}

// UpdateScore validates the score range, checks ownership for non-admin
// callers and records the grade. Validation happens before any write.
func (s *teacherServiceImpl) UpdateScore(ctx context.Context, callerID string, callerRole models.Role, req dto.UpdateScoreRequest) error {
	score, err := parseScore(req.Score)
	if err != nil {
		return err
	}
	if score < 0 || score > 100 {
		return apperrors.NewValidationError("score must be between 0 and 100")
	}

	if callerRole != models.RoleAdmin {
		owned, err := s.courseRepo.IsOwnedBy(ctx, req.CourseID, callerID)
		if err != nil {
			return err
		}
		if !owned {
			return apperrors.ErrCourseNotOwned
		}
	}

	return s.enrollmentRepo.UpdateScore(ctx, req.CourseID, req.StudentID, score)
}

// AnalyzeCourse aggregates the scored enrollments of one course.
// Non-admin callers must own the course.
func (s *teacherServiceImpl) AnalyzeCourse(ctx context.Context, callerID string, callerRole models.Role, courseID string) (*dto.CourseAnalysis, error) {
	if courseID == "" {
		return nil, apperrors.NewValidationError("course_id is required")
	}

	if callerRole != models.RoleAdmin {
		owned, err := s.courseRepo.IsOwnedBy(ctx, courseID, callerID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, apperrors.ErrCourseNotOwned
		}
	}

	return s.enrollmentRepo.Analyze(ctx, courseID)
}
