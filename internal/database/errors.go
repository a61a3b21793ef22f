package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound indicates the row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness constraint violation.
	ErrDuplicate = errors.New("already exists")

	// ErrAlreadyReviewed indicates a status transition attempt on a request
	// that has already left the pending state.
	ErrAlreadyReviewed = errors.New("request already reviewed")
)

// translateConstraint maps sqlite uniqueness violations to ErrDuplicate so
// callers never depend on driver error types.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return ErrDuplicate
		}
	}
	return err
}
