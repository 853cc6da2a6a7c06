package plan

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrIncompletePlan indicates a plan update missing a required field.
	ErrIncompletePlan = errors.New("plan requires name, target words and deadline")
)
