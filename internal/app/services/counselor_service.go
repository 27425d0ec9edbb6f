package services

import (
	"context"
	"fmt"
	"math"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/repositories"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// Fixed recommendation texts for the student report
const (
	suggestionRetake = "Focus on retaking the failed courses"
	suggestionKeepUp = "Good academic standing, keep it up"
)

// CounselorService defines the interface for class-level analysis
type CounselorService interface {
	ClassGrades(ctx context.Context, classID string) ([]dto.ClassGrade, error)
	FailedStudents(ctx context.Context, classID string) ([]dto.ClassGrade, error)
	ClassAnalysis(ctx context.Context, classID string) ([]dto.ClassCourseAnalysis, error)
	AcademicReport(ctx context.Context, classID string) (*dto.AcademicReport, error)
	AnalyzeStudent(ctx context.Context, studentID string) (*dto.StudentAnalysis, error)
}

// counselorServiceImpl implements the CounselorService interface
type counselorServiceImpl struct {
	gradeRepo   *repositories.GradeRepository
	classRepo   *repositories.ClassRepository
	studentRepo *repositories.StudentRepository
}

// NewCounselorService creates a new counselor service instance
func NewCounselorService(
	gradeRepo *repositories.GradeRepository,
	classRepo *repositories.ClassRepository,
	studentRepo *repositories.StudentRepository,
) CounselorService {
	return &counselorServiceImpl{
		gradeRepo:   gradeRepo,
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// ClassGrades lists every scored enrollment for the class
func (s *counselorServiceImpl) ClassGrades(ctx context.Context, classID string) ([]dto.ClassGrade, error) {
	return s.gradeRepo.ClassGrades(ctx, classID)
}

// FailedStudents lists the class's failing score rows
func (s *counselorServiceImpl) FailedStudents(ctx context.Context, classID string) ([]dto.ClassGrade, error) {
	return s.gradeRepo.FailedGrades(ctx, classID)
}

// ClassAnalysis aggregates the class's scores per course
func (s *counselorServiceImpl) ClassAnalysis(ctx context.Context, classID string) ([]dto.ClassCourseAnalysis, error) {
	return s.gradeRepo.ClassAnalysis(ctx, classID)
}

// AcademicReport composes class name, failing records and per-course
// aggregates into one response.
func (s *counselorServiceImpl) AcademicReport(ctx context.Context, classID string) (*dto.AcademicReport, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	failed, err := s.gradeRepo.FailedGrades(ctx, classID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.gradeRepo.ClassAnalysis(ctx, classID)
	if err != nil {
		return nil, err
	}

	return &dto.AcademicReport{
		ClassName:      class.Name,
		FailedSummary:  fmt.Sprintf("%d failing records in total", len(failed)),
		CourseAnalysis: analysis,
		FailedDetails:  failed,
	}, nil
}

// AnalyzeStudent builds the deterministic per-student summary. A student
// without scored rows is reported as not found, matching the listing
// endpoints.
func (s *counselorServiceImpl) AnalyzeStudent(ctx context.Context, studentID string) (*dto.StudentAnalysis, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades, err := s.gradeRepo.StudentGrades(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(grades) == 0 {
		return nil, apperrors.ErrNoGradeRecords
	}

	report := buildStudentReport(student.Name, grades)
	return &dto.StudentAnalysis{StudentID: studentID, Report: report}, nil
}

// buildStudentReport is a pure rule-based summary over the fetched rows:
// failing course count, average rounded to two decimals and one of two
// fixed recommendations.
func buildStudentReport(studentName string, grades []dto.StudentGrade) dto.StudentReport {
	var sum float64
	failed := 0
	for _, grade := range grades {
		sum += grade.Score
		if grade.Score < models.PassingScore {
			failed++
		}
	}

	avg := 0.0
	if len(grades) > 0 {
		avg = math.Round(sum/float64(len(grades))*100) / 100
	}

	suggestion := suggestionKeepUp
	if failed > 0 {
		suggestion = suggestionRetake
	}

	return dto.StudentReport{
		StudentName:   studentName,
		TotalCourses:  len(grades),
		FailedCourses: failed,
		AvgScore:      avg,
		Suggestion:    suggestion,
	}
}
