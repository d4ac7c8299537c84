package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/chronology"
	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// LocalDate is an immutable date without a time zone in the proleptic ISO
// calendar, such as 2008-06-30.
//
// It should only be constructed with the supplied factory methods:
//   - BuildLocalDate
//   - LocalDateOfEpochDay
//
// LocalDate is the canonical "full date" target for Adjusters: both YearMonth
// and LocalDate can adjust into it through the Temporal protocol.
type LocalDate struct {
	year  int32
	month Month
	day   int32
}

// BuildLocalDate is a factory method for LocalDate.
//
// Returns ErrInvalidField if any field is outside its standalone range, or if
// the day does not exist in the given month and year (e.g. February 30, or
// February 29 in a common year).
func BuildLocalDate(year int64, month, day int32) (*LocalDate, error) {
	if err := Year.CheckValid(year); err != nil {
		return nil, err
	}

	if err := MonthOfYear.CheckValid(int64(month)); err != nil {
		return nil, err
	}

	if err := DayOfMonth.CheckValid(int64(day)); err != nil {
		return nil, err
	}

	if monthLen := chronology.LengthOfMonth(year, month); day > monthLen {
		return nil, fmt.Errorf("day %d does not exist in %s %s: %w",
			day, Month(month), formatYear(year), ErrInvalidField)
	}

	return &LocalDate{year: int32(year), month: Month(month), day: day}, nil
}

// LocalDateOfEpochDay is a factory method for LocalDate from a count of whole
// days relative to 1970-01-01.
func LocalDateOfEpochDay(epochDay int64) (*LocalDate, error) {
	if err := EpochDay.CheckValid(epochDay); err != nil {
		return nil, err
	}

	year, month, day := chronology.DateOfEpochDay(epochDay)

	return BuildLocalDate(year, month, day)
}

// Year returns the proleptic year.
func (d *LocalDate) Year() int64 {
	return int64(d.year)
}

// Month returns the month-of-year.
func (d *LocalDate) Month() Month {
	return d.month
}

// Day returns the day-of-month.
func (d *LocalDate) Day() int32 {
	return d.day
}

// EpochDay returns the number of whole days between 1970-01-01 and this date.
func (d *LocalDate) EpochDay() int64 {
	return chronology.EpochDay(int64(d.year), d.month.Value(), d.day)
}

// YearMonth returns the year and month of this date as a YearMonth.
func (d *LocalDate) YearMonth() *YearMonth {
	return &YearMonth{year: d.year, month: d.month}
}

// WithYear returns this date with the year changed, clamping the day to the
// month's length in the new year where necessary (February 29 becomes
// February 28 in a common year). An unchanged year returns the same instance.
func (d *LocalDate) WithYear(year int64) (*LocalDate, error) {
	if year == int64(d.year) {
		return d, nil
	}

	if err := Year.CheckValid(year); err != nil {
		return nil, err
	}

	return BuildLocalDate(year, d.month.Value(), clampDay(d.day, year, d.month.Value()))
}

// WithMonth returns this date with the month changed, clamping the day to the
// new month's length where necessary. An unchanged month returns the same
// instance.
func (d *LocalDate) WithMonth(month int32) (*LocalDate, error) {
	if month == d.month.Value() {
		return d, nil
	}

	if err := MonthOfYear.CheckValid(int64(month)); err != nil {
		return nil, err
	}

	return BuildLocalDate(int64(d.year), month, clampDay(d.day, int64(d.year), month))
}

// WithDay returns this date with the day-of-month changed, validated against
// the month's length. An unchanged day returns the same instance.
func (d *LocalDate) WithDay(day int32) (*LocalDate, error) {
	if day == d.day {
		return d, nil
	}

	return BuildLocalDate(int64(d.year), d.month.Value(), day)
}

// PlusMonths returns this date with the given number of months added, may be
// negative. A day-of-month that does not exist in the resulting month is
// clamped to the last valid day, so 2008-01-31 plus one month is 2008-02-29.
// Adding zero months returns the same instance.
func (d *LocalDate) PlusMonths(months int64) (*LocalDate, error) {
	if months == 0 {
		return d, nil
	}

	epochMonth, err := chronology.EpochMonth(int64(d.year), d.month.Value())
	if err != nil {
		return nil, err
	}

	shifted, err := safemath.AddInt64(epochMonth, months)
	if err != nil {
		return nil, err
	}

	if err = EpochMonth.CheckValid(shifted); err != nil {
		return nil, err
	}

	year, month := chronology.YearMonthOfEpochMonth(shifted)

	return BuildLocalDate(year, month, clampDay(d.day, year, month))
}

// PlusYears returns this date with the given number of years added, clamping
// February 29 to February 28 where the resulting year is a common year.
// Adding zero years returns the same instance.
func (d *LocalDate) PlusYears(years int64) (*LocalDate, error) {
	if years == 0 {
		return d, nil
	}

	shifted, err := safemath.AddInt64(int64(d.year), years)
	if err != nil {
		return nil, err
	}

	if err = Year.CheckValid(shifted); err != nil {
		return nil, err
	}

	return BuildLocalDate(shifted, d.month.Value(), clampDay(d.day, shifted, d.month.Value()))
}

// PlusDays returns this date with the given number of days added, carrying
// across month and year boundaries via the epoch-day count. Adding zero days
// returns the same instance.
func (d *LocalDate) PlusDays(days int64) (*LocalDate, error) {
	if days == 0 {
		return d, nil
	}

	shifted, err := safemath.AddInt64(d.EpochDay(), days)
	if err != nil {
		return nil, err
	}

	return LocalDateOfEpochDay(shifted)
}

// MinusDays returns this date with the given number of days subtracted.
// Subtracting zero days returns the same instance.
func (d *LocalDate) MinusDays(days int64) (*LocalDate, error) {
	if days == 0 {
		return d, nil
	}

	negated, err := safemath.NegateInt64(days)
	if err != nil {
		return nil, err
	}

	return d.PlusDays(negated)
}

// Compare orders two dates lexicographically by year, month, then day.
// The order is total and consistent with Equal.
func (d *LocalDate) Compare(other *LocalDate) int {
	if d.year != other.year {
		if d.year < other.year {
			return -1
		}
		return 1
	}

	if d.month != other.month {
		if d.month < other.month {
			return -1
		}
		return 1
	}

	if d.day != other.day {
		if d.day < other.day {
			return -1
		}
		return 1
	}

	return 0
}

// IsBefore reports whether this date is strictly before the other.
func (d *LocalDate) IsBefore(other *LocalDate) bool {
	return d.Compare(other) < 0
}

// IsAfter reports whether this date is strictly after the other.
func (d *LocalDate) IsAfter(other *LocalDate) bool {
	return d.Compare(other) > 0
}

// Equal reports whether both values represent the same date.
func (d *LocalDate) Equal(other *LocalDate) bool {
	return d.Compare(other) == 0
}

// IsSupported reports whether the field can be queried on a LocalDate.
// A LocalDate supports the full date-based field set.
func (d *LocalDate) IsSupported(field Field) bool {
	switch field {
	case Era, YearOfEra, Year, MonthOfYear, EpochMonth, DayOfMonth, DayOfYear, EpochDay:
		return true
	default:
		return false
	}
}

// Long returns the value of the given field under ISO semantics, or
// ErrUnsupportedField for fields a LocalDate cannot represent.
func (d *LocalDate) Long(field Field) (int64, error) {
	switch field {
	case Era:
		return chronology.EraOf(int64(d.year)), nil
	case YearOfEra:
		return chronology.YearOfEra(int64(d.year)), nil
	case Year:
		return int64(d.year), nil
	case MonthOfYear:
		return int64(d.month), nil
	case EpochMonth:
		return chronology.EpochMonth(int64(d.year), d.month.Value())
	case DayOfMonth:
		return int64(d.day), nil
	case DayOfYear:
		return int64(chronology.DayOfYear(int64(d.year), d.month.Value(), d.day)), nil
	case EpochDay:
		return d.EpochDay(), nil
	default:
		return 0, fmt.Errorf("%s on LocalDate: %w", field.Name(), ErrUnsupportedField)
	}
}

// WithField returns this date with the given field set to the given value.
// Setting a field to its current value returns the same instance. Fields that
// rewrite the month (EpochMonth, Year, Era, YearOfEra) clamp the day to the
// resulting month's length.
func (d *LocalDate) WithField(field Field, value int64) (Temporal, error) {
	if !d.IsSupported(field) {
		return nil, fmt.Errorf("%s on LocalDate: %w", field.Name(), ErrUnsupportedField)
	}

	if err := field.CheckValid(value); err != nil {
		return nil, err
	}

	current, err := d.Long(field)
	if err != nil {
		return nil, err
	}

	if value == current {
		return d, nil
	}

	switch field {
	case Era:
		return d.WithYear(1 - int64(d.year))
	case YearOfEra:
		return d.WithYear(chronology.ProlepticYear(chronology.EraOf(int64(d.year)), value))
	case Year:
		return d.WithYear(value)
	case MonthOfYear:
		return d.WithMonth(int32(value))
	case EpochMonth:
		return d.PlusMonths(value - current)
	case DayOfMonth:
		return d.WithDay(int32(value))
	case DayOfYear:
		if value > int64(chronology.LengthOfYear(int64(d.year))) {
			return nil, fmt.Errorf("day-of-year %d does not exist in %s: %w",
				value, formatYear(int64(d.year)), ErrInvalidField)
		}
		month, day := chronology.DateOfDayOfYear(int64(d.year), int32(value))
		return BuildLocalDate(int64(d.year), month, day)
	default: // EpochDay
		return LocalDateOfEpochDay(value)
	}
}

// AdjustInto adjusts the target to carry this date by setting its EpochDay
// field. If the target already carries this date, it is returned unchanged.
func (d *LocalDate) AdjustInto(target Temporal) (Temporal, error) {
	if !target.IsSupported(EpochDay) {
		return nil, fmt.Errorf("adjusting EpochDay into %T: %w", target, ErrUnsupportedField)
	}

	current, err := target.Long(EpochDay)
	if err != nil {
		return nil, err
	}

	epochDay := d.EpochDay()
	if current == epochDay {
		return target, nil
	}

	return target.WithField(EpochDay, epochDay)
}

// String returns the ISO representation, such as "2008-06-30".
func (d *LocalDate) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(int64(d.year)), d.month.Value(), d.day)
}

// clampDay resolves a day-of-month against the length of the target month,
// keeping valid days and clamping overshooting ones to the last valid day.
func clampDay(day int32, year int64, month int32) int32 {
	if monthLen := chronology.LengthOfMonth(year, month); day > monthLen {
		return monthLen
	}

	return day
}
