package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// ZeroSeconds is the canonical zero amount of seconds. SecondsOf returns this
// singleton whenever the count is zero, so callers may compare against it by
// identity.
var ZeroSeconds = &Seconds{}

// Seconds is an immutable amount holding only a number of seconds. It is a
// type-safe way of carrying a count of seconds through an application.
//
// Mutating operations return a new instance; an operation that would not
// change the count returns the SAME instance.
type Seconds struct {
	count int32
}

// SecondsOf is a factory method for Seconds. A count of zero returns the
// ZeroSeconds singleton.
func SecondsOf(count int32) *Seconds {
	if count == 0 {
		return ZeroSeconds
	}

	return &Seconds{count: count}
}

// Count returns the number of seconds held in this amount.
func (s *Seconds) Count() int32 {
	return s.count
}

// Plus returns this amount with the given number of seconds added, may be
// negative. Adding zero returns the same instance.
func (s *Seconds) Plus(count int32) (*Seconds, error) {
	if count == 0 {
		return s, nil
	}

	sum, err := safemath.AddInt32(s.count, count)
	if err != nil {
		return nil, err
	}

	return SecondsOf(sum), nil
}

// PlusSeconds returns this amount with the other amount added.
func (s *Seconds) PlusSeconds(other *Seconds) (*Seconds, error) {
	return s.Plus(other.count)
}

// Minus returns this amount with the given number of seconds subtracted.
// Subtracting zero returns the same instance.
func (s *Seconds) Minus(count int32) (*Seconds, error) {
	if count == 0 {
		return s, nil
	}

	diff, err := safemath.SubtractInt32(s.count, count)
	if err != nil {
		return nil, err
	}

	return SecondsOf(diff), nil
}

// MinusSeconds returns this amount with the other amount subtracted.
func (s *Seconds) MinusSeconds(other *Seconds) (*Seconds, error) {
	return s.Minus(other.count)
}

// MultipliedBy returns this amount multiplied by the given scalar, may be
// negative.
func (s *Seconds) MultipliedBy(scalar int32) (*Seconds, error) {
	product, err := safemath.MultiplyInt32(s.count, scalar)
	if err != nil {
		return nil, err
	}

	return SecondsOf(product), nil
}

// DividedBy returns this amount divided by the given divisor using integer
// division truncating towards zero, so 3 divided by 2 is 1. A divisor of one
// returns the same instance; a divisor of zero returns ErrDivideByZero.
func (s *Seconds) DividedBy(divisor int32) (*Seconds, error) {
	if divisor == 1 {
		return s, nil
	}

	if divisor == 0 {
		return nil, fmt.Errorf("%s / 0: %w", s, ErrDivideByZero)
	}

	// MinInt32 / -1 has no int32 representation.
	if divisor == -1 {
		return s.Negated()
	}

	return SecondsOf(s.count / divisor), nil
}

// Negated returns this amount with the count negated.
func (s *Seconds) Negated() (*Seconds, error) {
	negated, err := safemath.NegateInt32(s.count)
	if err != nil {
		return nil, err
	}

	return SecondsOf(negated), nil
}

// Compare orders two amounts by their signed count.
func (s *Seconds) Compare(other *Seconds) int {
	switch {
	case s.count < other.count:
		return -1
	case s.count > other.count:
		return 1
	default:
		return 0
	}
}

// IsGreaterThan reports whether this amount is strictly greater than the other.
func (s *Seconds) IsGreaterThan(other *Seconds) bool {
	return s.Compare(other) > 0
}

// IsLessThan reports whether this amount is strictly less than the other.
func (s *Seconds) IsLessThan(other *Seconds) bool {
	return s.Compare(other) < 0
}

// Equal reports whether both amounts hold the same count.
func (s *Seconds) Equal(other *Seconds) bool {
	return s.count == other.count
}

// String returns the ISO-8601 duration literal, such as "PT5S". The literal
// is for display only; parsing it back is a collaborator's responsibility.
func (s *Seconds) String() string {
	return fmt.Sprintf("PT%dS", s.count)
}
