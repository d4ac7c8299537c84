// Package chronology implements the proleptic ISO calendar conversion rules.
//
// All functions are pure and stateless: leap-year and month-length rules,
// epoch-month and epoch-day conversions relative to 1970-01, and the era
// resolution with its boundary at proleptic year 1. Arithmetic that could
// overflow routes through safemath and surfaces
// safemath.ErrArithmeticOverflow, it never wraps.
package chronology

import (
	"github.com/chronoval/calendrical-go/chrono/safemath"
)

const (
	// MinYear is the minimum supported proleptic year.
	MinYear = -999_999_999

	// MaxYear is the maximum supported proleptic year.
	MaxYear = 999_999_999

	// epochYear anchors epoch-month and epoch-day counts at 1970-01-01.
	epochYear = 1970

	monthsPerYear = 12

	// daysPerCycle is the number of days in a full 400-year Gregorian cycle.
	daysPerCycle = 146_097

	// days0000To1970 is the number of days from year zero to the 1970 epoch
	// (5 full 400-year cycles minus the days from 1970 to year 2000).
	days0000To1970 = daysPerCycle*5 - (30*365 + 7)
)

// IsLeapYear reports whether the given proleptic year is a leap year under
// ISO rules: divisible by 4 and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LengthOfMonth returns the number of days in the given month of the given
// proleptic year, with February 29 days in leap years.
//
// The month must be in [1,12]; callers validate before conversion.
func LengthOfMonth(year int64, month int32) int32 {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// LengthOfYear returns 366 for leap years and 365 otherwise.
func LengthOfYear(year int64) int32 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// EpochMonth returns the number of whole months between 1970-01 and the given
// year and month: (year - 1970) * 12 + (month - 1).
func EpochMonth(year int64, month int32) (int64, error) {
	years, err := safemath.SubtractInt64(year, epochYear)
	if err != nil {
		return 0, err
	}

	months, err := safemath.MultiplyInt64(years, monthsPerYear)
	if err != nil {
		return 0, err
	}

	return safemath.AddInt64(months, int64(month-1))
}

// YearMonthOfEpochMonth is the inverse of EpochMonth. It recovers the
// proleptic year and month using floor division, so negative epoch months
// resolve to the correct year instead of truncating towards zero.
func YearMonthOfEpochMonth(epochMonth int64) (year int64, month int32) {
	year = safemath.FloorDivInt64(epochMonth, monthsPerYear) + epochYear
	month = int32(safemath.FloorModInt64(epochMonth, monthsPerYear)) + 1

	return year, month
}

// EraOf resolves the two-valued ISO era for a proleptic year: 1 (CE) for
// years >= 1 and 0 (BCE) for years <= 0. The boundary sits at year 1, not year 0.
func EraOf(year int64) int64 {
	if year >= 1 {
		return 1
	}
	return 0
}

// YearOfEra converts a proleptic year into its year-of-era value:
// the year itself within CE, 1 - year within BCE (year 0 is year 1 BCE).
func YearOfEra(year int64) int64 {
	if year >= 1 {
		return year
	}
	return 1 - year
}

// ProlepticYear recovers the proleptic year from an era and a year-of-era,
// inverting YearOfEra/EraOf.
func ProlepticYear(era, yearOfEra int64) int64 {
	if era == 1 {
		return yearOfEra
	}
	return 1 - yearOfEra
}

// EpochDay returns the number of days between 1970-01-01 and the given date.
//
// The computation counts days from year zero (365 per year plus the
// accumulated leap days), adds the days contributed by the months of the
// final year, and shifts to the 1970 epoch.
func EpochDay(year int64, month, day int32) int64 {
	total := 365 * year
	if year >= 0 {
		total += (year+3)/4 - (year+99)/100 + (year+399)/400
	} else {
		total -= year/-4 - year/-100 + year/-400
	}

	total += int64((367*month - 362) / monthsPerYear)
	total += int64(day - 1)

	if month > 2 {
		total--
		if !IsLeapYear(year) {
			total--
		}
	}

	return total - days0000To1970
}

// DateOfEpochDay is the inverse of EpochDay. It recovers the proleptic year,
// month and day by aligning the day count to March 1st of year zero, where
// the leap day falls at the end of the cycle and the month pattern repeats
// cleanly every 153 days per 5 months.
func DateOfEpochDay(epochDay int64) (year int64, month, day int32) {
	zeroDay := epochDay + days0000To1970
	// Shift so the cycle starts 0000-03-01, putting the leap day last.
	zeroDay -= 60

	var adjust int64
	if zeroDay < 0 {
		// Negative day counts borrow whole 400-year cycles to keep the
		// estimate arithmetic on non-negative numbers.
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay -= adjustCycles * daysPerCycle
	}

	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust

	marchDoy0 := int32(doyEst)
	marchMonth0 := (marchDoy0*5 + 2) / 153

	month = (marchMonth0+2)%monthsPerYear + 1
	day = marchDoy0 - (marchMonth0*306+5)/10 + 1
	year = yearEst + int64(marchMonth0/10)

	return year, month, day
}

// DateOfDayOfYear resolves a one-based ordinal day within a year into its
// month and day-of-month. The ordinal must not exceed LengthOfYear.
func DateOfDayOfYear(year int64, dayOfYear int32) (month, day int32) {
	month = 1
	remaining := dayOfYear
	for {
		monthLen := LengthOfMonth(year, month)
		if remaining <= monthLen {
			return month, remaining
		}
		remaining -= monthLen
		month++
	}
}

// DayOfYear returns the one-based ordinal day within the year for a date.
func DayOfYear(year int64, month, day int32) int32 {
	firstDayOfMonth := int32(0)
	for m := int32(1); m < month; m++ {
		firstDayOfMonth += LengthOfMonth(year, m)
	}

	return firstDayOfMonth + day
}
