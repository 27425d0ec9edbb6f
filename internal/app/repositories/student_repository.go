package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetByCredentials looks up a student by id and plaintext password.
// Returns ErrInvalidCredentials when no row matches; the caller must not
// learn which of the two fields was wrong.
func (r *StudentRepository) GetByCredentials(ctx context.Context, id, password string) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx,
		`SELECT student_id, name, class_id, email, dept_id
		 FROM students
		 WHERE student_id = $1 AND password = $2`,
		id, password).
		Scan(&student.ID, &student.Name, &student.ClassID, &student.Email, &student.DeptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student credentials: %w", err)
	}
	return &student, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx,
		`SELECT student_id, name, class_id, email, dept_id
		 FROM students WHERE student_id = $1`, id).
		Scan(&student.ID, &student.Name, &student.ClassID, &student.Email, &student.DeptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT student_id, name, class_id, email, dept_id
		 FROM students ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.ClassID,
			&student.Email, &student.DeptID); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO students (student_id, name, password, class_id, email, dept_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		student.ID, student.Name, student.Password,
		student.ClassID, student.Email, student.DeptID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateResource
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("class or department does not exist")
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// UpdateProfile updates only the supplied fields of a student row.
// Both arguments empty is a caller bug; the service validates that first.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id, newPassword, newEmail string) error {
	var sets []string
	var params []interface{}

	if newPassword != "" {
		params = append(params, newPassword)
		sets = append(sets, fmt.Sprintf("password = $%d", len(params)))
	}
	if newEmail != "" {
		params = append(params, newEmail)
		sets = append(sets, fmt.Sprintf("email = $%d", len(params)))
	}
	params = append(params, id)

	query := fmt.Sprintf("UPDATE students SET %s WHERE student_id = $%d",
		strings.Join(sets, ", "), len(params))

	cmdTag, err := r.db.Exec(ctx, query, params...)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
