package entity

import "errors"

var (
	// ErrNotFound is returned when a lookup or mutation matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists maps the unique-constraint violation on the
	// email columns of both users and leads.
	ErrEmailAlreadyExists = errors.New("a record with this email already exists")
)
