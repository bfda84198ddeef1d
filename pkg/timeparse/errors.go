package timeparse

import "fmt"

// UnparseableExpressionError is returned when the grammar finds no
// interpretation for an expression. Snippet carries the offending text so
// callers can show it back to the user.
type UnparseableExpressionError struct {
	Snippet string
}

func (e *UnparseableExpressionError) Error() string {
	return fmt.Sprintf("could not parse time expression %q", e.Snippet)
}

// InvalidRangeError is returned when a two-sided range's end cannot be made
// to exceed its start, even after the overnight rollback.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: %s", e.Reason)
}

// UnknownTimeZoneError is returned when the supplied zone identifier is not
// present in the zone database. Resolution is never attempted with a
// fallback zone.
type UnknownTimeZoneError struct {
	Zone string
	Err  error
}

func (e *UnknownTimeZoneError) Error() string {
	return fmt.Sprintf("unknown timezone %q", e.Zone)
}

func (e *UnknownTimeZoneError) Unwrap() error { return e.Err }
