package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Update and Delete when no expense matches the
// given id.
var ErrNotFound = errors.New("expense not found")

// InvariantError reports a field value the store refuses to hold. Field
// validation belongs to the caller; this is the last line of defense against
// storing bad data.
type InvariantError struct {
	Field  string
	Reason string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
