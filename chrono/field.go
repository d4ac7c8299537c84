package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/chronology"
)

// Field describes one calendrical quantity: a name, a closed valid range,
// a base unit, and whether the field is date-based.
//
// The supported fields form a fixed, closed set declared as package variables
// (Era, Year, MonthOfYear, ...). Fields are comparable values, so they can be
// matched with == and used in switch statements.
//
// A Field only knows its standalone range. Whether a raw value is valid in
// combination with other fields (e.g. day 30 in February) is decided by the
// conversion engine in the chronology package, not here.
type Field struct {
	name      string
	baseUnit  string
	min       int64
	max       int64
	dateBased bool
}

// The supported field set.
var (
	// Era partitions the proleptic year axis at year 1: 1 is CE, 0 is BCE.
	Era = Field{name: "Era", baseUnit: "eras", min: 0, max: 1, dateBased: true}

	// YearOfEra counts years within an era, starting at 1.
	YearOfEra = Field{name: "YearOfEra", baseUnit: "years", min: 1, max: chronology.MaxYear + 1, dateBased: true}

	// Year is the proleptic ISO year.
	Year = Field{name: "Year", baseUnit: "years", min: chronology.MinYear, max: chronology.MaxYear, dateBased: true}

	// MonthOfYear counts months within a year, 1 (January) to 12 (December).
	MonthOfYear = Field{name: "MonthOfYear", baseUnit: "months", min: 1, max: 12, dateBased: true}

	// EpochMonth counts whole months relative to 1970-01.
	EpochMonth = Field{
		name:      "EpochMonth",
		baseUnit:  "months",
		min:       (chronology.MinYear - 1970) * 12,
		max:       (chronology.MaxYear-1970)*12 + 11,
		dateBased: true,
	}

	// DayOfMonth counts days within a month, 1 to 31.
	DayOfMonth = Field{name: "DayOfMonth", baseUnit: "days", min: 1, max: 31, dateBased: true}

	// DayOfYear counts days within a year, 1 to 366.
	DayOfYear = Field{name: "DayOfYear", baseUnit: "days", min: 1, max: 366, dateBased: true}

	// EpochDay counts whole days relative to 1970-01-01.
	EpochDay = Field{
		name:      "EpochDay",
		baseUnit:  "days",
		min:       chronology.EpochDay(chronology.MinYear, 1, 1),
		max:       chronology.EpochDay(chronology.MaxYear, 12, 31),
		dateBased: true,
	}
)

// Name returns the field's name.
func (f Field) Name() string {
	return f.name
}

// BaseUnit returns the human unit the field is measured in, e.g. "months".
func (f Field) BaseUnit() string {
	return f.baseUnit
}

// Range returns the closed valid range [min, max] for the field.
func (f Field) Range() (min int64, max int64) {
	return f.min, f.max
}

// IsDateBased reports whether the field is part of the date vocabulary.
func (f Field) IsDateBased() bool {
	return f.dateBased
}

// CheckValid returns ErrInvalidField if the given raw value lies outside the
// field's standalone range.
func (f Field) CheckValid(value int64) error {
	if value < f.min || value > f.max {
		return fmt.Errorf("%s %d outside range [%d, %d]: %w", f.name, value, f.min, f.max, ErrInvalidField)
	}

	return nil
}

// String returns the field's name.
func (f Field) String() string {
	return f.name
}
