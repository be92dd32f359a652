package repository

import "github.com/ganot/labdesk/internal/repository/repoerrors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = repoerrors.ErrNotFound

	// ErrConflict is returned when a uniqueness constraint fails
	ErrConflict = repoerrors.ErrConflict

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = repoerrors.ErrForeignKeyViolation
)
