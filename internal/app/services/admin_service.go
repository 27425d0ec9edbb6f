package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/repositories"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// AdminService defines the interface for administrative operations
type AdminService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error
	UpdateDepartment(ctx context.Context, id, name string) error
	DeleteDepartment(ctx context.Context, id string) error

	ListClasses(ctx context.Context) ([]*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error
	UpdateClass(ctx context.Context, id, name string) error
	DeleteClass(ctx context.Context, id string) error

	ListCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	ListStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error

	EnrollmentReport(ctx context.Context) ([]dto.EnrollmentReportRow, error)
	UpdateTeacherRole(ctx context.Context, req dto.UpdateTeacherRoleRequest) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	classRepo      *repositories.ClassRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
	teacherRepo    *repositories.TeacherRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	departmentRepo *repositories.DepartmentRepository,
	classRepo *repositories.ClassRepository,
	courseRepo *repositories.CourseRepository,
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		departmentRepo: departmentRepo,
		classRepo:      classRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

func (s *adminServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *adminServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	return s.departmentRepo.Create(ctx, department)
}

func (s *adminServiceImpl) UpdateDepartment(ctx context.Context, id, name string) error {
	return s.departmentRepo.Update(ctx, id, name)
}

func (s *adminServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.GetAll(ctx)
}

func (s *adminServiceImpl) CreateClass(ctx context.Context, class *models.Class) error {
	return s.classRepo.Create(ctx, class)
}

func (s *adminServiceImpl) UpdateClass(ctx context.Context, id, name string) error {
	return s.classRepo.Update(ctx, id, name)
}

func (s *adminServiceImpl) DeleteClass(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

func (s *adminServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	return s.courseRepo.Create(ctx, course)
}

func (s *adminServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	return s.courseRepo.Update(ctx, course)
}

func (s *adminServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *adminServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *adminServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.Create(ctx, student)
}

func (s *adminServiceImpl) EnrollmentReport(ctx context.Context) ([]dto.EnrollmentReportRow, error) {
	return s.enrollmentRepo.Report(ctx)
}

// UpdateTeacherRole overwrites a staff member's roll_type. The operator
// is verified as an admin by a fresh database lookup; the request's own
// authentication is not trusted for this check.
func (s *adminServiceImpl) UpdateTeacherRole(ctx context.Context, req dto.UpdateTeacherRoleRequest) error {
	isAdmin, err := s.teacherRepo.IsAdmin(ctx, req.OperatorID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.ErrOperatorNotAdmin
	}

	rollType := models.Role(req.RollType)
	if !models.ValidStaffRole(rollType) {
		return apperrors.NewValidationError("invalid roll type")
	}

	if err := s.teacherRepo.UpdateRollType(ctx, req.TeacherID, rollType); err != nil {
		return err
	}

	s.logger.Info().
		Str("teacherId", req.TeacherID).
		Str("rollType", req.RollType).
		Str("operatorId", req.OperatorID).
		Msg("Teacher roll type updated")
	return nil
}
