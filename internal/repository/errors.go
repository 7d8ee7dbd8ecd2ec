package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicate - signals that the error is a unique constraint violation.
func IsDuplicate(err error) bool {
	return hasCode(err, "23505")
}

// IsForeignKey - signals that a referenced row does not exist.
func IsForeignKey(err error) bool {
	return hasCode(err, "23503")
}

// IsCheckViolation - signals that a row failed a CHECK constraint.
func IsCheckViolation(err error) bool {
	return hasCode(err, "23514")
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func hasCode(err error, code string) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == code
}
