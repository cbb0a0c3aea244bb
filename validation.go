package logbook

import "fmt"

// ValidationError reports an invalid input shape on a single field. It is
// returned instead of silently coercing a malformed value: a record with a
// non-numeric price never becomes a zero-priced record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// invalidf builds a ValidationError for the given field.
func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
