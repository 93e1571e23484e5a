package completion

import (
	"errors"
	"fmt"
)

// EmptyContentFallback is returned in place of response text when the
// endpoint answers successfully but the first choice carries no content.
// The request is not treated as failed in that case; this mirrors the
// strict-errors-elsewhere, lenient-on-empty-content contract of the
// original behavior and must not be extended to other failure paths.
const EmptyContentFallback = "No response content received."

// TransportError marks a completed HTTP exchange with a non-success
// status. It carries the status so the session layer can surface it.
type TransportError struct {
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion endpoint returned %d: %s", e.StatusCode, e.Status)
}

// NetworkError marks a request that could not be completed at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a non-success HTTP status failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
