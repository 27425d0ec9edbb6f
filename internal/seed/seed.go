package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin inserts a bootstrap administrator account when the
// teachers table holds no admin. Credentials are meant to be rotated
// through the update_teacher_role / profile flows after first login.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE roll_type = 'admin')`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Admin account already present, skipping seed")
		return nil
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO teachers (teacher_id, name, password, roll_type)
		 VALUES ($1, $2, $3, 'admin')
		 ON CONFLICT (teacher_id) DO NOTHING`,
		"ADMIN", "System Administrator", "admin123")
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	lgr.Info().Str("teacherId", "ADMIN").Msg("Default admin account created")
	return nil
}
