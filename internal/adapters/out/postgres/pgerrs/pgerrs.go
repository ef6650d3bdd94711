// Package pgerrs translates PostgreSQL driver errors into the error kinds of internal/pkg/errs.
package pgerrs

import (
	"errors"

	"wms/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Conflict returns a Conflict error for unique violations and err unchanged otherwise.
func Conflict(err error, paramName string, value any) error {
	if err == nil || !IsUniqueViolation(err) {
		return err
	}
	return errs.NewConflictErrorWithCause(paramName, value, err)
}
