package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Enroll delegates to the sp_student_enroll procedure, which owns the
// duplicate and capacity checks, and returns its status token verbatim.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID string) (string, error) {
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT sp_student_enroll($1, $2)`, studentID, courseID).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("error calling enrollment procedure: %w", err)
	}
	return status, nil
}

// Drop deletes an enrollment row. A graded row is rejected by the
// database trigger, surfaced here as ErrEnrollmentGraded.
func (r *EnrollmentRepository) Drop(ctx context.Context, studentID, courseID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		if dberrors.IsGradeLocked(err) {
			return apperrors.ErrEnrollmentGraded
		}
		return fmt.Errorf("error dropping enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// ListForStudent retrieves a student's enrollments joined with course and
// teacher metadata.
func (r *EnrollmentRepository) ListForStudent(ctx context.Context, studentID string) ([]dto.EnrolledCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.course_id, c.name, c.credits, e.score, t.name
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		JOIN teachers t ON c.teacher_id = t.teacher_id
		WHERE e.student_id = $1
		ORDER BY c.course_id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]dto.EnrolledCourse, 0)
	for rows.Next() {
		var course dto.EnrolledCourse
		if err := rows.Scan(&course.CourseID, &course.CourseName,
			&course.Credits, &course.Score, &course.TeacherName); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Roster retrieves the enrolled students of a course
func (r *EnrollmentRepository) Roster(ctx context.Context, courseID string) ([]dto.CourseStudent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.student_id, s.name, e.score, e.status
		FROM enrollments e
		JOIN students s ON e.student_id = s.student_id
		WHERE e.course_id = $1
		ORDER BY s.student_id`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]dto.CourseStudent, 0)
	for rows.Next() {
		var student dto.CourseStudent
		if err := rows.Scan(&student.StudentID, &student.StudentName,
			&student.Score, &student.Status); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateScore records a grade and marks the enrollment completed
func (r *EnrollmentRepository) UpdateScore(ctx context.Context, courseID, studentID string, score float64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE enrollments SET score = $1, status = $2
		 WHERE course_id = $3 AND student_id = $4`,
		score, string(models.EnrollStatusCompleted), courseID, studentID)
	if err != nil {
		return fmt.Errorf("error updating score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("no enrollment record for this student and course")
	}
	return nil
}

// Analyze aggregates the scored enrollments of a course. COALESCE keeps
// every aggregate at zero when no scored rows exist.
func (r *EnrollmentRepository) Analyze(ctx context.Context, courseID string) (*dto.CourseAnalysis, error) {
	var analysis dto.CourseAnalysis
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(score), 0),
		       COALESCE(SUM(CASE WHEN score >= $2 THEN 1 ELSE 0 END)::float / NULLIF(COUNT(*), 0), 0),
		       COALESCE(MAX(score), 0),
		       COALESCE(MIN(score), 0)
		FROM enrollments
		WHERE course_id = $1 AND score IS NOT NULL`,
		courseID, models.PassingScore).
		Scan(&analysis.TotalStudents, &analysis.AvgScore, &analysis.PassRate,
			&analysis.MaxScore, &analysis.MinScore)
	if err != nil {
		return nil, fmt.Errorf("error analyzing course: %w", err)
	}
	return &analysis, nil
}

// Report builds the per-course enrollment report. The LEFT JOIN keeps
// courses with zero enrollments in the output.
func (r *EnrollmentRepository) Report(ctx context.Context) ([]dto.EnrollmentReportRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.course_id, c.name,
		       COUNT(e.student_id), c.capacity,
		       c.capacity - COUNT(e.student_id)
		FROM courses c
		LEFT JOIN enrollments e ON c.course_id = e.course_id
		GROUP BY c.course_id, c.name, c.capacity
		ORDER BY c.course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]dto.EnrollmentReportRow, 0)
	for rows.Next() {
		var row dto.EnrollmentReportRow
		if err := rows.Scan(&row.CourseID, &row.CourseName,
			&row.Enrolled, &row.Capacity, &row.Remaining); err != nil {
			return nil, err
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
