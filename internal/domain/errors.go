package domain

import "fmt"

// NotFoundError is returned when a referenced entity does not resolve, or
// resolves but fails a scoping predicate (wrong role, wrong status,
// ownership mismatch). Resource names what was being looked up.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %s", e.Resource, e.ID)
}

// TransitionError is returned when an operation is requested against an
// entity whose current status forbids it.
type TransitionError struct {
	Event   Event
	Current string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from status %q", e.Event, e.Current)
}
