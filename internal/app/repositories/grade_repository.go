package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
)

// GradeRepository reads from the v_student_grades view, which exposes
// scored enrollments joined with course metadata.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// ClassGrades lists every scored enrollment of the class's students
func (r *GradeRepository) ClassGrades(ctx context.Context, classID string) ([]dto.ClassGrade, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.student_id, s.name, g.course_name, g.score, g.credits
		FROM v_student_grades g
		JOIN students s ON g.student_id = s.student_id
		WHERE s.class_id = $1
		ORDER BY s.student_id, g.course_name`,
		classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make([]dto.ClassGrade, 0)
	for rows.Next() {
		var grade dto.ClassGrade
		if err := rows.Scan(&grade.StudentID, &grade.StudentName,
			&grade.CourseName, &grade.Score, &grade.Credits); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// FailedGrades lists the class's scored enrollments below the passing
// threshold.
func (r *GradeRepository) FailedGrades(ctx context.Context, classID string) ([]dto.ClassGrade, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.student_id, s.name, g.course_name, g.score
		FROM v_student_grades g
		JOIN students s ON g.student_id = s.student_id
		WHERE s.class_id = $1 AND g.score < $2
		ORDER BY s.student_id, g.course_name`,
		classID, models.PassingScore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make([]dto.ClassGrade, 0)
	for rows.Next() {
		var grade dto.ClassGrade
		if err := rows.Scan(&grade.StudentID, &grade.StudentName,
			&grade.CourseName, &grade.Score); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// ClassAnalysis aggregates the class's scores per course
func (r *GradeRepository) ClassAnalysis(ctx context.Context, classID string) ([]dto.ClassCourseAnalysis, error) {
	rows, err := r.db.Query(ctx, `
		SELECT g.course_name,
		       COALESCE(AVG(g.score), 0),
		       COALESCE(SUM(CASE WHEN g.score < $2 THEN 1 ELSE 0 END), 0),
		       COUNT(DISTINCT g.student_id)
		FROM v_student_grades g
		JOIN students s ON g.student_id = s.student_id
		WHERE s.class_id = $1
		GROUP BY g.course_name
		ORDER BY g.course_name`,
		classID, models.PassingScore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analysis := make([]dto.ClassCourseAnalysis, 0)
	for rows.Next() {
		var row dto.ClassCourseAnalysis
		if err := rows.Scan(&row.CourseName, &row.AvgScore,
			&row.FailedCount, &row.TotalStudents); err != nil {
			return nil, err
		}
		analysis = append(analysis, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analysis, nil
}

// StudentGrades lists one student's scored courses
func (r *GradeRepository) StudentGrades(ctx context.Context, studentID string) ([]dto.StudentGrade, error) {
	rows, err := r.db.Query(ctx, `
		SELECT course_name, score
		FROM v_student_grades
		WHERE student_id = $1
		ORDER BY course_name`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make([]dto.StudentGrade, 0)
	for rows.Next() {
		var grade dto.StudentGrade
		if err := rows.Scan(&grade.CourseName, &grade.Score); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
