package recommend

import "fmt"

// ValidationError reports a rejected input value and the offending field.
// Always recoverable at the transport boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InternalError is an unexpected failure inside scoring, such as a malformed
// catalog. Not retried here; the caller logs it and responds generically.
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recommendation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("recommendation failed: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
