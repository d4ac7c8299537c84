package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// ZeroPeriod is the canonical zero-length period. The factories return this
// singleton whenever all three components are zero, so callers may compare
// against it by identity.
var ZeroPeriod = &Period{}

// Period is an immutable amount of time made of years, months and days.
//
// The three components are independently significant and are NEVER normalized
// against each other: a period of 13 months stays 13 months, it is not folded
// into one year and one month. Equality is field-wise.
type Period struct {
	years  int32
	months int32
	days   int32
}

// PeriodOf is a factory method for Period from years, months and days, each
// of which may be negative. A period of zero length is the ZeroPeriod
// singleton.
func PeriodOf(years, months, days int32) *Period {
	if years == 0 && months == 0 && days == 0 {
		return ZeroPeriod
	}

	return &Period{years: years, months: months, days: days}
}

// PeriodOfDays is a factory method for a days-only Period.
func PeriodOfDays(days int32) *Period {
	return PeriodOf(0, 0, days)
}

// Years returns the years component.
func (p *Period) Years() int32 {
	return p.years
}

// Months returns the months component.
func (p *Period) Months() int32 {
	return p.months
}

// Days returns the days component.
func (p *Period) Days() int32 {
	return p.days
}

// IsZero reports whether all three components are zero.
func (p *Period) IsZero() bool {
	return p.years == 0 && p.months == 0 && p.days == 0
}

// Equal reports field-wise equality: each component must match.
func (p *Period) Equal(other *Period) bool {
	return p.years == other.years && p.months == other.months && p.days == other.days
}

// Plus returns a Period with each component of the other period added to the
// matching component of this one, without any normalization. Adding
// ZeroPeriod returns the same instance.
func (p *Period) Plus(other *Period) (*Period, error) {
	if other.IsZero() {
		return p, nil
	}

	years, err := safemath.AddInt32(p.years, other.years)
	if err != nil {
		return nil, err
	}

	months, err := safemath.AddInt32(p.months, other.months)
	if err != nil {
		return nil, err
	}

	days, err := safemath.AddInt32(p.days, other.days)
	if err != nil {
		return nil, err
	}

	return PeriodOf(years, months, days), nil
}

// Minus returns a Period with each component of the other period subtracted
// from the matching component of this one. Subtracting ZeroPeriod returns the
// same instance.
func (p *Period) Minus(other *Period) (*Period, error) {
	if other.IsZero() {
		return p, nil
	}

	negated, err := other.Negated()
	if err != nil {
		return nil, err
	}

	return p.Plus(negated)
}

// Negated returns a Period with every component negated.
func (p *Period) Negated() (*Period, error) {
	years, err := safemath.NegateInt32(p.years)
	if err != nil {
		return nil, err
	}

	months, err := safemath.NegateInt32(p.months)
	if err != nil {
		return nil, err
	}

	days, err := safemath.NegateInt32(p.days)
	if err != nil {
		return nil, err
	}

	return PeriodOf(years, months, days), nil
}

// String returns the ISO-8601 representation, such as "P1Y2M3D". Components
// that are zero are omitted; the zero period renders as "P0D".
func (p *Period) String() string {
	if p.IsZero() {
		return "P0D"
	}

	out := "P"
	if p.years != 0 {
		out += fmt.Sprintf("%dY", p.years)
	}
	if p.months != 0 {
		out += fmt.Sprintf("%dM", p.months)
	}
	if p.days != 0 {
		out += fmt.Sprintf("%dD", p.days)
	}

	return out
}
