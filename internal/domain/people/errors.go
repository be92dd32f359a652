package people

import "errors"

var (
	// ErrPersonNotFound indicates the person doesn't exist.
	ErrPersonNotFound = errors.New("person not found")
	// ErrInvalidInput indicates invalid person or membership input.
	ErrInvalidInput = errors.New("invalid people input")
	// ErrDuplicateMembership indicates the person is already on the project.
	ErrDuplicateMembership = errors.New("person is already a member of the project")
)
