// Package repository holds the errors shared by every store implementation.
package repository

import "errors"

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique key (an id or tag name) is already taken.
	ErrConflict = errors.New("conflict: name already exists")

	// ErrForeignKeyViolation means a referenced row (such as a mood) is missing.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
