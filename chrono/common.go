package chrono

import (
	"errors"
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/safemath"
)

var (
	// ErrInvalidField is returned when a field value lies outside its valid
	// range at construction or adjustment time (e.g. month 13).
	ErrInvalidField = errors.New("field value out of valid range")

	// ErrUnsupportedField is returned when a field is queried or adjusted on
	// a type that does not support it.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrDivideByZero is returned when an amount is divided by zero.
	ErrDivideByZero = errors.New("division by zero")
)

// ErrArithmeticOverflow is re-exported from safemath so that callers matching
// error kinds only need this package.
var ErrArithmeticOverflow = safemath.ErrArithmeticOverflow

// formatYear renders a proleptic year in ISO form: padded to four digits,
// with an explicit sign outside the 0000..9999 range.
func formatYear(year int64) string {
	switch {
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	case year > 9999:
		return fmt.Sprintf("+%d", year)
	default:
		return fmt.Sprintf("%04d", year)
	}
}
