package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Validate checks a raw query value against the descriptor. Numeric and date
// parameters additionally accept "low,high" ranges with "*" for an open
// bound; all other types reject comma-containing input outright (the
// geometry grammar consumes its own commas). A nil return means the value is
// usable as-is.
func Validate(d Descriptor, value string) error {
	if isValid(d, value) {
		return nil
	}
	return &InvalidValueError{Parameter: d.Name, Value: value}
}

// ParseRange splits a "low,high" expression into its trimmed bounds. An "*"
// bound comes back as an empty string, meaning unbounded. ok is false when
// the input does not have exactly two non-empty sides.
func ParseRange(value string) (low, high string, ok bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	low = strings.TrimSpace(parts[0])
	high = strings.TrimSpace(parts[1])
	if low == "" || high == "" {
		return "", "", false
	}
	if low == "*" {
		low = ""
	}
	if high == "*" {
		high = ""
	}
	return low, high, true
}

// IsRange reports whether the value reads as a range expression, regardless
// of any declared parameter type: exactly one comma, each side either "*",
// a decimal number or a partial date. Whether a detected range is accepted
// is then up to Validate and the declared type.
func IsRange(value string) bool {
	low, high, ok := ParseRange(value)
	if !ok {
		return false
	}
	for _, side := range []string{low, high} {
		if side == "" {
			continue
		}
		if !decimalPattern.MatchString(side) && !isValidDate(side) {
			return false
		}
	}
	return true
}

func isValid(d Descriptor, value string) bool {
	if strings.Contains(value, ",") && d.Type != TypeGeometry {
		if !d.Type.IsRangeCapable() {
			return false
		}
		return isValidRange(d, value)
	}
	return isValidScalar(d, value)
}

func isValidRange(d Descriptor, value string) bool {
	low, high, ok := ParseRange(value)
	if !ok {
		return false
	}
	for _, side := range []string{low, high} {
		if side != "" && !isValidScalar(d, side) {
			return false
		}
	}
	return true
}

func isValidScalar(d Descriptor, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	switch d.Type {
	case TypeUUID:
		return isValidUUID(value)
	case TypeInteger:
		if !integerPattern.MatchString(value) {
			return false
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		return inBounds(d, float64(n))
	case TypeDouble:
		if !decimalPattern.MatchString(value) {
			return false
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return inBounds(d, f)
	case TypeBoolean:
		return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
	case TypeDate:
		return isValidDate(value)
	case TypeEnum:
		for _, member := range d.Enum {
			if strings.EqualFold(member, value) {
				return true
			}
		}
		return false
	case TypeCountry:
		return vocabulary.IsISOCountryCode(value)
	case TypeGeometry:
		return isValidGeometry(value)
	case TypeString:
		return true
	}
	return false
}

// isValidUUID accepts the canonical hyphenated form and the bare 32-hex-digit
// form, case-insensitively, but none of the urn/braced variants uuid.Parse
// would otherwise allow.
func isValidUUID(value string) bool {
	if len(value) != 36 && len(value) != 32 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func inBounds(d Descriptor, v float64) bool {
	if d.Min != nil && v < *d.Min {
		return false
	}
	if d.Max != nil && v > *d.Max {
		return false
	}
	return true
}
