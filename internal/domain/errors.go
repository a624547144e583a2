package domain

import "github.com/cockroachdb/errors"

var (
	// ErrCategoryNotFound is returned by a category source when the requested
	// category does not exist. It is not a transport failure.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidArgument marks errors caused by bad caller input.
	ErrInvalidArgument = errors.New("invalid argument")
)
