package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/chronology"
	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// YearMonth is an immutable year and month pair in the proleptic ISO
// calendar, such as 2008-06.
//
// It should only be constructed with the supplied factory methods:
//   - BuildYearMonth
//   - YearMonthOfEpochMonth
//
// Mutating operations return a new validated instance, or the SAME instance
// when the operation would not change the value.
type YearMonth struct {
	year  int32
	month Month
}

// BuildYearMonth is a factory method for YearMonth.
//
// Returns ErrInvalidField if the month is outside [1, 12] or the year is
// outside the supported proleptic range.
func BuildYearMonth(year int64, month int32) (*YearMonth, error) {
	if err := Year.CheckValid(year); err != nil {
		return nil, err
	}

	if err := MonthOfYear.CheckValid(int64(month)); err != nil {
		return nil, err
	}

	return &YearMonth{year: int32(year), month: Month(month)}, nil
}

// YearMonthOfEpochMonth is a factory method for YearMonth from a count of
// whole months relative to 1970-01. Negative epoch months resolve with floor
// semantics, so -1 is 1969-12.
func YearMonthOfEpochMonth(epochMonth int64) (*YearMonth, error) {
	if err := EpochMonth.CheckValid(epochMonth); err != nil {
		return nil, err
	}

	year, month := chronology.YearMonthOfEpochMonth(epochMonth)

	return BuildYearMonth(year, month)
}

// Year returns the proleptic year.
func (ym *YearMonth) Year() int64 {
	return int64(ym.year)
}

// Month returns the month-of-year.
func (ym *YearMonth) Month() Month {
	return ym.month
}

// LengthOfMonth returns the number of days in this year-month, taking leap
// years into account.
func (ym *YearMonth) LengthOfMonth() int32 {
	return chronology.LengthOfMonth(int64(ym.year), ym.month.Value())
}

// IsLeapYear reports whether the year is a leap year under ISO rules.
func (ym *YearMonth) IsLeapYear() bool {
	return chronology.IsLeapYear(int64(ym.year))
}

// WithYear returns this YearMonth with the year changed. If the year equals
// the current one, the same instance is returned.
func (ym *YearMonth) WithYear(year int64) (*YearMonth, error) {
	if year == int64(ym.year) {
		return ym, nil
	}

	return BuildYearMonth(year, ym.month.Value())
}

// WithMonth returns this YearMonth with the month changed. If the month
// equals the current one, the same instance is returned.
func (ym *YearMonth) WithMonth(month int32) (*YearMonth, error) {
	if month == ym.month.Value() {
		return ym, nil
	}

	return BuildYearMonth(int64(ym.year), month)
}

// PlusMonths returns this YearMonth with the given number of months added,
// may be negative. Adding zero months returns the same instance.
//
// The calculation converts to an epoch-month count, adds with overflow
// checking and converts back, so it carries across year boundaries.
func (ym *YearMonth) PlusMonths(months int64) (*YearMonth, error) {
	if months == 0 {
		return ym, nil
	}

	epochMonth, err := chronology.EpochMonth(int64(ym.year), ym.month.Value())
	if err != nil {
		return nil, err
	}

	shifted, err := safemath.AddInt64(epochMonth, months)
	if err != nil {
		return nil, err
	}

	return YearMonthOfEpochMonth(shifted)
}

// MinusMonths returns this YearMonth with the given number of months
// subtracted. Subtracting zero months returns the same instance.
func (ym *YearMonth) MinusMonths(months int64) (*YearMonth, error) {
	if months == 0 {
		return ym, nil
	}

	negated, err := safemath.NegateInt64(months)
	if err != nil {
		return nil, err
	}

	return ym.PlusMonths(negated)
}

// PlusYears returns this YearMonth with the given number of years added.
// Adding zero years returns the same instance.
func (ym *YearMonth) PlusYears(years int64) (*YearMonth, error) {
	if years == 0 {
		return ym, nil
	}

	shifted, err := safemath.AddInt64(int64(ym.year), years)
	if err != nil {
		return nil, err
	}

	return BuildYearMonth(shifted, ym.month.Value())
}

// MinusYears returns this YearMonth with the given number of years
// subtracted. Subtracting zero years returns the same instance.
func (ym *YearMonth) MinusYears(years int64) (*YearMonth, error) {
	if years == 0 {
		return ym, nil
	}

	negated, err := safemath.NegateInt64(years)
	if err != nil {
		return nil, err
	}

	return ym.PlusYears(negated)
}

// Compare orders two YearMonth values lexicographically by year, then month.
// The order is total and consistent with Equal.
func (ym *YearMonth) Compare(other *YearMonth) int {
	if ym.year != other.year {
		if ym.year < other.year {
			return -1
		}
		return 1
	}

	if ym.month != other.month {
		if ym.month < other.month {
			return -1
		}
		return 1
	}

	return 0
}

// IsBefore reports whether this YearMonth is strictly before the other.
func (ym *YearMonth) IsBefore(other *YearMonth) bool {
	return ym.Compare(other) < 0
}

// IsAfter reports whether this YearMonth is strictly after the other.
func (ym *YearMonth) IsAfter(other *YearMonth) bool {
	return ym.Compare(other) > 0
}

// Equal reports whether both values represent the same year and month.
func (ym *YearMonth) Equal(other *YearMonth) bool {
	return ym.Compare(other) == 0
}

// IsSupported reports whether the field can be queried on a YearMonth.
// The supported set is Era, YearOfEra, Year, MonthOfYear and EpochMonth.
func (ym *YearMonth) IsSupported(field Field) bool {
	switch field {
	case Era, YearOfEra, Year, MonthOfYear, EpochMonth:
		return true
	default:
		return false
	}
}

// Long returns the value of the given field under ISO semantics, or
// ErrUnsupportedField for fields a YearMonth cannot represent, such as
// DayOfMonth.
func (ym *YearMonth) Long(field Field) (int64, error) {
	switch field {
	case Era:
		return chronology.EraOf(int64(ym.year)), nil
	case YearOfEra:
		return chronology.YearOfEra(int64(ym.year)), nil
	case Year:
		return int64(ym.year), nil
	case MonthOfYear:
		return int64(ym.month), nil
	case EpochMonth:
		return chronology.EpochMonth(int64(ym.year), ym.month.Value())
	default:
		return 0, fmt.Errorf("%s on YearMonth: %w", field.Name(), ErrUnsupportedField)
	}
}

// WithField returns this YearMonth with the given field set to the given
// value. Setting a field to its current value returns the same instance.
func (ym *YearMonth) WithField(field Field, value int64) (Temporal, error) {
	if !ym.IsSupported(field) {
		return nil, fmt.Errorf("%s on YearMonth: %w", field.Name(), ErrUnsupportedField)
	}

	if err := field.CheckValid(value); err != nil {
		return nil, err
	}

	current, err := ym.Long(field)
	if err != nil {
		return nil, err
	}

	if value == current {
		return ym, nil
	}

	switch field {
	case Era:
		// Flipping the era mirrors the year across the era boundary,
		// keeping the year-of-era constant.
		return ym.WithYear(1 - int64(ym.year))
	case YearOfEra:
		return ym.WithYear(chronology.ProlepticYear(chronology.EraOf(int64(ym.year)), value))
	case Year:
		return ym.WithYear(value)
	case MonthOfYear:
		return ym.WithMonth(int32(value))
	default: // EpochMonth
		return ym.PlusMonths(value - current)
	}
}

// AdjustInto adjusts the target to carry this YearMonth's year and month by
// setting its EpochMonth field. Targets with a day-of-month resolve an
// invalid day by clamping to the new month's length. If the target already
// carries this year and month, it is returned unchanged.
func (ym *YearMonth) AdjustInto(target Temporal) (Temporal, error) {
	if !target.IsSupported(EpochMonth) {
		return nil, fmt.Errorf("adjusting EpochMonth into %T: %w", target, ErrUnsupportedField)
	}

	current, err := target.Long(EpochMonth)
	if err != nil {
		return nil, err
	}

	epochMonth, err := ym.Long(EpochMonth)
	if err != nil {
		return nil, err
	}

	if current == epochMonth {
		return target, nil
	}

	return target.WithField(EpochMonth, epochMonth)
}

// String returns the ISO representation, such as "2008-06".
func (ym *YearMonth) String() string {
	return fmt.Sprintf("%s-%02d", formatYear(int64(ym.year)), ym.month.Value())
}
