package errs

import "errors"

// Base errors shared across the core packages. Package-level sentinels wrap
// these with fmt.Errorf("%w: ...") so callers can branch on the category with
// errors.Is while still getting a specific message.
var (
	// ErrInvalidArgument indicates malformed or missing input to a
	// constructor or method
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates an operation that is not legal given the
	// current lifecycle or turn state
	ErrInvalidState = errors.New("invalid state")

	// ErrDuplicatePlayer indicates a player ID that already exists in a roster
	ErrDuplicatePlayer = errors.New("duplicate player")

	// ErrCapacityExceeded indicates a roster already at its maximum size
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotFound indicates a lookup miss that is reported, not fatal
	ErrNotFound = errors.New("not found")
)
