package chrono

import (
	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// Month is a month-of-year in the ISO calendar, January (1) to December (12).
type Month int32

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BuildMonth is a factory method for Month. It returns ErrInvalidField if the
// value is outside [1, 12].
func BuildMonth(value int32) (Month, error) {
	if err := MonthOfYear.CheckValid(int64(value)); err != nil {
		return 0, err
	}

	return Month(value), nil
}

// Value returns the month number, January being 1.
func (m Month) Value() int32 {
	return int32(m)
}

// Length returns the number of days in this month for a common or leap year.
func (m Month) Length(leapYear bool) int32 {
	switch m {
	case February:
		if leapYear {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// Plus returns the month the given number of months after this one, wrapping
// around the year in either direction.
func (m Month) Plus(months int64) Month {
	shifted := safemath.FloorModInt64(int64(m)-1+safemath.FloorModInt64(months, 12), 12)

	return Month(shifted + 1)
}

// Minus returns the month the given number of months before this one.
func (m Month) Minus(months int64) Month {
	return m.Plus(-(months % 12))
}

func (m Month) String() string {
	if m < January || m > December {
		return "InvalidMonth"
	}

	return monthNames[m-1]
}
