package calc

import "fmt"

// ValidationError reports an input field that failed a precondition check.
// It is always surfaced to the caller verbatim and is never retryable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UnknownCurrencyError reports a rate table lookup miss. Lookups never fall
// back to a default rate.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("currency %q is not in the rate table", e.Code)
}
