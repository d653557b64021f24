package search

import "fmt"

// InvalidValueError reports a raw value that failed validation for a
// parameter. It is the only error kind validation produces: a range with one
// bad bound fails as a whole, and no coercion is attempted.
type InvalidValueError struct {
	Parameter string
	Value     string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("search: invalid value %q for parameter %s", e.Value, e.Parameter)
}
