package errors

import "fmt"

// ErrValidation is returned when an input is rejected before any network call
// is made (missing selection, empty product set, unparseable date).
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// ErrNoSession is returned when a mutation is attempted without a bearer
// token in the session. No request is sent in that case.
type ErrNoSession struct{}

func (e *ErrNoSession) Error() string {
	return "no session token: sign in before modifying offers"
}

// ErrServer is returned when the catalog service answers with a non-success
// status. Message carries the server's error body when one was provided.
type ErrServer struct {
	Status  int
	Message string
}

func (e *ErrServer) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog service error: status %d", e.Status)
	}
	return fmt.Sprintf("catalog service error: status %d: %s", e.Status, e.Message)
}

// ErrNotFound is returned when a referenced offer or product does not exist
// in the current state.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
