package common

import "errors"

var (
	// ErrNegativeValue is returned when a negative value reaches a tracker.
	ErrNegativeValue = errors.New("negative value")

	// ErrOutOfRange is returned when a value falls outside a tracker's universe.
	ErrOutOfRange = errors.New("value out of range")

	// ErrBudgetExceeded is returned once a bounded tracker has applied its
	// declared number of operations.
	ErrBudgetExceeded = errors.New("operation budget exceeded")

	// ErrNotPresent is returned by strict removal of a value that is absent.
	ErrNotPresent = errors.New("value not present")

	// ErrRemoveUnsupported is returned when a delete event targets an
	// insert-only tracker.
	ErrRemoveUnsupported = errors.New("remove not supported")
)
