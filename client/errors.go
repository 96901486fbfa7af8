package client

import "fmt"

// The error taxonomy callers dispatch on with errors.As. Matching on error
// message substrings is exactly what this replaces.

// ValidationError is a client-detected, field-scoped input error. It blocks
// submission and never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthError means the session is not usable: no token stored, or the
// backend answered 401. The session has already been cleared by the time
// a caller sees this.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// BackendError is a non-401 error response. Message is the backend's own
// text and is surfaced to the user verbatim.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// NetworkError wraps a transport failure (connection refused, DNS, etc).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
