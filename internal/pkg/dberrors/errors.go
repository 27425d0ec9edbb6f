package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories care about. GradeLockCode is raised by
// the enrollment delete trigger when the row already carries a score.
const (
	GradeLockCode       = "GR001"
	UniqueViolationCode = "23505"
	FKViolationCode     = "23503"
)

// IsRaisedWithCode checks if the error is a PostgreSQL error carrying the
// given SQLSTATE.
func IsRaisedWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsGradeLocked reports whether a delete was rejected because the
// enrollment already has a recorded score.
func IsGradeLocked(err error) bool {
	return IsRaisedWithCode(err, GradeLockCode)
}

// IsUniqueViolation reports whether the error is a unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	return IsRaisedWithCode(err, UniqueViolationCode)
}

// IsForeignKeyViolation reports whether the error is a foreign key
// violation.
func IsForeignKeyViolation(err error) bool {
	return IsRaisedWithCode(err, FKViolationCode)
}
