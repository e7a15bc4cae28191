package reconcile

import "errors"

var (
	// ErrUnknownStrategy is returned by [ParseStrategy] for unsupported names.
	ErrUnknownStrategy = errors.New("unknown reconcile strategy")

	// ErrUndefinedView is returned by optimistic mutations issued before the
	// view received its first snapshot.
	ErrUndefinedView = errors.New("view has no snapshot yet")

	// ErrEntityNotFound is returned when removing an id absent from the view.
	ErrEntityNotFound = errors.New("entity not found in view")
)
