package api

import "errors"

var (
	// ErrNetwork is wrapped by APIError when the request never produced an HTTP
	// response (connectivity, DNS, cancelled context). Status is 0 in that case.
	ErrNetwork = errors.New("network failure")

	// ErrUnauthorized is wrapped by APIError on a 401 response. The client only
	// classifies; it never tears the session down itself.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is wrapped by APIError when the server reported per-field errors.
	ErrValidation = errors.New("validation failed")
)

// APIError is the single error shape every failed request is normalized into.
type APIError struct {
	Message string
	Status  int
	Fields  map[string]string

	kind error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the classification sentinel, if any, for errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}

// classify picks the sentinel for a normalized failure.
func classify(status int, fields map[string]string) error {
	switch {
	case status == 0:
		return ErrNetwork
	case status == 401:
		return ErrUnauthorized
	case len(fields) > 0:
		return ErrValidation
	default:
		return nil
	}
}
