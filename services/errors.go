package services

import "errors"

var (
	// ErrUserAlreadyExists is returned when the requested username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrMealNotFound is returned when a meal lookup matches no row, which
	// for owner-scoped lookups includes meals belonging to someone else.
	ErrMealNotFound = errors.New("meal not found")
)
