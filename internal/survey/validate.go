package survey

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationKind classifies why a steps-per-day value was rejected.
type ValidationKind string

const (
	ValidationEmpty      ValidationKind = "empty"
	ValidationNonNumeric ValidationKind = "non_numeric"
	ValidationNegative   ValidationKind = "negative"
	ValidationOutOfRange ValidationKind = "out_of_range"
)

// ValidationError is returned by ParseStepsPerDay.
type ValidationError struct {
	Kind  ValidationKind
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationEmpty:
		return "steps per day is required"
	case ValidationNegative:
		return fmt.Sprintf("steps per day cannot be negative: %q", e.Value)
	case ValidationOutOfRange:
		return fmt.Sprintf("steps per day is too large: %q", e.Value)
	default:
		return fmt.Sprintf("steps per day must be a whole number: %q", e.Value)
	}
}

// groupedDigits matches thousands grouping with a single separator used
// consistently, such as "5,000" or "1_250_000".
var groupedDigits = regexp.MustCompile(`^-?[0-9]{1,3}(?:(?:,[0-9]{3})+|(?:_[0-9]{3})+)$`)

// ParseStepsPerDay interprets the raw steps-per-day text as a count.
// Surrounding whitespace and well-formed thousands grouping with ',' or '_'
// are accepted, so "5,000" parses as 5000 but "5,00" does not.
func ParseStepsPerDay(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, &ValidationError{Kind: ValidationEmpty, Value: raw}
	}
	if strings.ContainsAny(v, ",_") {
		if !groupedDigits.MatchString(v) {
			return 0, &ValidationError{Kind: ValidationNonNumeric, Value: raw}
		}
		v = strings.NewReplacer(",", "", "_", "").Replace(v)
	}
	n, err := strconv.Atoi(v)
	switch {
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(v, "-") {
			return 0, &ValidationError{Kind: ValidationNegative, Value: raw}
		}
		return 0, &ValidationError{Kind: ValidationOutOfRange, Value: raw}
	case err != nil:
		return 0, &ValidationError{Kind: ValidationNonNumeric, Value: raw}
	case n < 0:
		return 0, &ValidationError{Kind: ValidationNegative, Value: raw}
	}
	return n, nil
}
