package llm

import "fmt"

// ErrStatus indicates the service answered with a non-200 status. The code
// is surfaced verbatim in degraded feedback text.
type ErrStatus struct {
	Code int
	Body string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("text-generation service returned status %d", e.Code)
}

// ErrUnavailable indicates the service could not be reached at all
// (transport error, no response to carry a status code).
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text-generation service unavailable: %v", e.Err)
	}
	return "text-generation service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
