package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
)

// TeacherRepository handles database operations for the teachers table,
// which also stores admins and counselors behind the roll_type
// discriminator.
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// GetByCredentials looks up a staff member by id, plaintext password and
// roll_type. The roll_type filter is what makes logging in as "admin"
// with a plain teacher account fail.
func (r *TeacherRepository) GetByCredentials(ctx context.Context, id, password string, rollType models.Role) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx,
		`SELECT teacher_id, name, roll_type
		 FROM teachers
		 WHERE teacher_id = $1 AND password = $2 AND roll_type = $3`,
		id, password, string(rollType)).
		Scan(&teacher.ID, &teacher.Name, &teacher.RollType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up teacher credentials: %w", err)
	}
	return &teacher, nil
}

// GetByID retrieves a staff member by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx,
		`SELECT teacher_id, name, roll_type FROM teachers WHERE teacher_id = $1`, id).
		Scan(&teacher.ID, &teacher.Name, &teacher.RollType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &teacher, nil
}

// IsAdmin checks whether the given id belongs to an administrator.
// Used by update_teacher_role, which must verify the operator against the
// database rather than trust the request.
func (r *TeacherRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE teacher_id = $1 AND roll_type = 'admin')`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin status: %w", err)
	}
	return exists, nil
}

// UpdateRollType overwrites the roll_type of a staff member
func (r *TeacherRepository) UpdateRollType(ctx context.Context, id string, rollType models.Role) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE teachers SET roll_type = $1 WHERE teacher_id = $2`,
		string(rollType), id)
	if err != nil {
		return fmt.Errorf("error updating roll type: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}
