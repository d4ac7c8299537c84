package chrono

import (
	"fmt"

	"github.com/chronoval/calendrical-go/chrono/safemath"
)

// ZeroHours is the canonical zero amount of hours.
var ZeroHours = &Hours{}

// Hours is an immutable amount holding only a number of hours.
type Hours struct {
	count int32
}

// HoursOf is a factory method for Hours. A count of zero returns the
// ZeroHours singleton.
func HoursOf(count int32) *Hours {
	if count == 0 {
		return ZeroHours
	}

	return &Hours{count: count}
}

// Count returns the number of hours held in this amount.
func (h *Hours) Count() int32 {
	return h.count
}

// Plus returns this amount with the given number of hours added.
func (h *Hours) Plus(count int32) (*Hours, error) {
	if count == 0 {
		return h, nil
	}

	sum, err := safemath.AddInt32(h.count, count)
	if err != nil {
		return nil, err
	}

	return HoursOf(sum), nil
}

// PlusHours returns this amount with the other amount added.
func (h *Hours) PlusHours(other *Hours) (*Hours, error) {
	return h.Plus(other.count)
}

// Minus returns this amount with the given number of hours subtracted.
func (h *Hours) Minus(count int32) (*Hours, error) {
	if count == 0 {
		return h, nil
	}

	diff, err := safemath.SubtractInt32(h.count, count)
	if err != nil {
		return nil, err
	}

	return HoursOf(diff), nil
}

// MinusHours returns this amount with the other amount subtracted.
func (h *Hours) MinusHours(other *Hours) (*Hours, error) {
	return h.Minus(other.count)
}

// MultipliedBy returns this amount multiplied by the given scalar.
func (h *Hours) MultipliedBy(scalar int32) (*Hours, error) {
	product, err := safemath.MultiplyInt32(h.count, scalar)
	if err != nil {
		return nil, err
	}

	return HoursOf(product), nil
}

// DividedBy returns this amount divided by the given divisor, truncating
// towards zero. A divisor of one returns the same instance.
func (h *Hours) DividedBy(divisor int32) (*Hours, error) {
	if divisor == 1 {
		return h, nil
	}

	if divisor == 0 {
		return nil, fmt.Errorf("%s / 0: %w", h, ErrDivideByZero)
	}

	if divisor == -1 {
		return h.Negated()
	}

	return HoursOf(h.count / divisor), nil
}

// Negated returns this amount with the count negated.
func (h *Hours) Negated() (*Hours, error) {
	negated, err := safemath.NegateInt32(h.count)
	if err != nil {
		return nil, err
	}

	return HoursOf(negated), nil
}

// Compare orders two amounts by their signed count.
func (h *Hours) Compare(other *Hours) int {
	switch {
	case h.count < other.count:
		return -1
	case h.count > other.count:
		return 1
	default:
		return 0
	}
}

// IsGreaterThan reports whether this amount is strictly greater than the other.
func (h *Hours) IsGreaterThan(other *Hours) bool {
	return h.Compare(other) > 0
}

// IsLessThan reports whether this amount is strictly less than the other.
func (h *Hours) IsLessThan(other *Hours) bool {
	return h.Compare(other) < 0
}

// Equal reports whether both amounts hold the same count.
func (h *Hours) Equal(other *Hours) bool {
	return h.count == other.count
}

// String returns the ISO-8601 duration literal, such as "PT5H".
func (h *Hours) String() string {
	return fmt.Sprintf("PT%dH", h.count)
}
