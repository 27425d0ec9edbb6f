package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/dberrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	var class models.Class
	err := r.db.QueryRow(ctx,
		`SELECT class_id, name FROM classes WHERE class_id = $1`, id).
		Scan(&class.ID, &class.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	return &class, nil
}

// GetAll retrieves all classes
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `SELECT class_id, name FROM classes ORDER BY class_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Name); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO classes (class_id, name) VALUES ($1, $2)`,
		class.ID, class.Name)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateResource
		}
		return fmt.Errorf("error creating class: %w", err)
	}
	return nil
}

// Update renames an existing class
func (r *ClassRepository) Update(ctx context.Context, id, name string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE classes SET name = $1 WHERE class_id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error updating class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// Delete deletes a class by ID
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE class_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewForbiddenError("class has associated students and cannot be deleted")
		}
		return fmt.Errorf("error deleting class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}
