package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// ZeroMinutes is the canonical zero amount of minutes.
var ZeroMinutes = &Minutes{}

// Minutes is an immutable amount holding only a number of minutes.
// It behaves exactly like Seconds, including the zero singleton and the
// same-instance guarantee for no-op operations.
type Minutes struct {
	count int32
}

// MinutesOf is a factory method for Minutes. A count of zero returns the
// ZeroMinutes singleton.
func MinutesOf(count int32) *Minutes {
	if count == 0 {
		return ZeroMinutes
	}

	return &Minutes{count: count}
}

// Count returns the number of minutes held in this amount.
func (m *Minutes) Count() int32 {
	return m.count
}

// Plus returns this amount with the given number of minutes added.
func (m *Minutes) Plus(count int32) (*Minutes, error) {
	if count == 0 {
		return m, nil
	}

	sum, err := safemath.AddInt32(m.count, count)
	if err != nil {
		return nil, err
	}

	return MinutesOf(sum), nil
}

// PlusMinutes returns this amount with the other amount added.
func (m *Minutes) PlusMinutes(other *Minutes) (*Minutes, error) {
	return m.Plus(other.count)
}

// Minus returns this amount with the given number of minutes subtracted.
func (m *Minutes) Minus(count int32) (*Minutes, error) {
	if count == 0 {
		return m, nil
	}

	diff, err := safemath.SubtractInt32(m.count, count)
	if err != nil {
		return nil, err
	}

	return MinutesOf(diff), nil
}

// MinusMinutes returns this amount with the other amount subtracted.
func (m *Minutes) MinusMinutes(other *Minutes) (*Minutes, error) {
	return m.Minus(other.count)
}

// MultipliedBy returns this amount multiplied by the given scalar.
func (m *Minutes) MultipliedBy(scalar int32) (*Minutes, error) {
	product, err := safemath.MultiplyInt32(m.count, scalar)
	if err != nil {
		return nil, err
	}

	return MinutesOf(product), nil
}

// DividedBy returns this amount divided by the given divisor, truncating
// towards zero. A divisor of one returns the same instance.
func (m *Minutes) DividedBy(divisor int32) (*Minutes, error) {
	if divisor == 1 {
		return m, nil
	}

	if divisor == 0 {
		return nil, fmt.Errorf("%s / 0: %w", m, ErrDivideByZero)
	}

	if divisor == -1 {
		return m.Negated()
	}

	return MinutesOf(m.count / divisor), nil
}

// Negated returns this amount with the count negated.
func (m *Minutes) Negated() (*Minutes, error) {
	negated, err := safemath.NegateInt32(m.count)
	if err != nil {
		return nil, err
	}

	return MinutesOf(negated), nil
}

// Compare orders two amounts by their signed count.
func (m *Minutes) Compare(other *Minutes) int {
	switch {
	case m.count < other.count:
		return -1
	case m.count > other.count:
		return 1
	default:
		return 0
	}
}

// IsGreaterThan reports whether this amount is strictly greater than the other.
func (m *Minutes) IsGreaterThan(other *Minutes) bool {
	return m.Compare(other) > 0
}

// IsLessThan reports whether this amount is strictly less than the other.
func (m *Minutes) IsLessThan(other *Minutes) bool {
	return m.Compare(other) < 0
}

// Equal reports whether both amounts hold the same count.
func (m *Minutes) Equal(other *Minutes) bool {
	return m.count == other.count
}

// String returns the ISO-8601 duration literal, such as "PT5M".
func (m *Minutes) String() string {
	return fmt.Sprintf("PT%dM", m.count)
}
