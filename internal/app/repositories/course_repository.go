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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT course_id, name, credits, capacity, teacher_id
		 FROM courses ORDER BY course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Credits,
			&course.Capacity, &course.TeacherID); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO courses (course_id, name, credits, capacity, teacher_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		course.ID, course.Name, course.Credits, course.Capacity, course.TeacherID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateResource
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("teacher does not exist")
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET name = $1, credits = $2, capacity = $3, teacher_id = $4
		 WHERE course_id = $5`,
		course.Name, course.Credits, course.Capacity, course.TeacherID, course.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("teacher does not exist")
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewForbiddenError("course has enrollments and cannot be deleted")
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// IsOwnedBy checks whether a course is taught by the given teacher
func (r *CourseRepository) IsOwnedBy(ctx context.Context, courseID, teacherID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE course_id = $1 AND teacher_id = $2)`,
		courseID, teacherID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course ownership: %w", err)
	}
	return exists, nil
}

// ListByTeacher retrieves all courses taught by the given teacher
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT course_id, name, credits, capacity, teacher_id
		 FROM courses WHERE teacher_id = $1 ORDER BY course_id`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Credits,
			&course.Capacity, &course.TeacherID); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// AvailableForStudent computes courses the student has not enrolled in
// and that still have remaining capacity. Remaining seats are a
// correlated count over enrollments.
func (r *CourseRepository) AvailableForStudent(ctx context.Context, studentID string) ([]dto.AvailableCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.course_id, c.name, c.credits, c.capacity,
		       c.capacity - (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.course_id) AS remaining
		FROM courses c
		WHERE c.course_id NOT IN (
			SELECT course_id FROM enrollments WHERE student_id = $1
		)
		AND c.capacity - (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.course_id) > 0
		ORDER BY c.course_id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]dto.AvailableCourse, 0)
	for rows.Next() {
		var course dto.AvailableCourse
		if err := rows.Scan(&course.CourseID, &course.CourseName,
			&course.Credits, &course.Capacity, &course.Remaining); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
