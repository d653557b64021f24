package search

import "time"

// dateLayouts are the accepted partial-precision forms: full date (with
// single-digit month and day tolerated), year-month, plain four-digit year,
// and a two-digit month-day pair without a year.
var dateLayouts = []string{
	"2006-1-2",
	"2006-1",
	"2006",
	"01-02",
}

// isValidDate reports whether the value matches one of the partial-precision
// date forms. Month and day components must be real calendar values.
func isValidDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
