// Package safemath provides overflow-checked arithmetic on fixed-width
// signed integers.
//
// Every value type in the calendrical library routes its arithmetic through
// this package. Operations never wrap silently: whenever the mathematical
// result does not fit the target width, ErrArithmeticOverflow is returned.
package safemath

import (
	"errors"
	"fmt"
	"math"
)

// ErrArithmeticOverflow is returned when the mathematical result of an
// operation does not fit the target integer width.
var ErrArithmeticOverflow = errors.New("arithmetic operation overflows")

// AddInt32 returns a + b, or ErrArithmeticOverflow if the sum does not fit an int32.
func AddInt32(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrArithmeticOverflow)
	}

	return int32(sum), nil
}

// AddInt64 returns a + b, or ErrArithmeticOverflow if the sum does not fit an int64.
func AddInt64(a, b int64) (int64, error) {
	sum := a + b
	// Overflow occurred iff both operands share a sign the sum does not.
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrArithmeticOverflow)
	}

	return sum, nil
}

// SubtractInt32 returns a - b, or ErrArithmeticOverflow if the difference does not fit an int32.
func SubtractInt32(a, b int32) (int32, error) {
	diff := int64(a) - int64(b)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrArithmeticOverflow)
	}

	return int32(diff), nil
}

// SubtractInt64 returns a - b, or ErrArithmeticOverflow if the difference does not fit an int64.
func SubtractInt64(a, b int64) (int64, error) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrArithmeticOverflow)
	}

	return diff, nil
}

// MultiplyInt32 returns a * b, or ErrArithmeticOverflow if the product does not fit an int32.
func MultiplyInt32(a, b int32) (int32, error) {
	product := int64(a) * int64(b)
	if product < math.MinInt32 || product > math.MaxInt32 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrArithmeticOverflow)
	}

	return int32(product), nil
}

// MultiplyInt64 returns a * b, or ErrArithmeticOverflow if the product does not fit an int64.
func MultiplyInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	// MinInt64 * -1 would panic on the division check below.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrArithmeticOverflow)
	}

	product := a * b
	if product/b != a {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrArithmeticOverflow)
	}

	return product, nil
}

// NegateInt32 returns -a, or ErrArithmeticOverflow for math.MinInt32
// which has no positive int32 counterpart.
func NegateInt32(a int32) (int32, error) {
	if a == math.MinInt32 {
		return 0, fmt.Errorf("-(%d): %w", a, ErrArithmeticOverflow)
	}

	return -a, nil
}

// NegateInt64 returns -a, or ErrArithmeticOverflow for math.MinInt64.
func NegateInt64(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("-(%d): %w", a, ErrArithmeticOverflow)
	}

	return -a, nil
}

// ToInt32Exact narrows an int64 to an int32, or returns ErrArithmeticOverflow
// if the value does not fit.
func ToInt32Exact(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%d does not fit an int32: %w", v, ErrArithmeticOverflow)
	}

	return int32(v), nil
}

// FloorDivInt64 returns the floor of a / b, rounding towards negative infinity.
//
// This differs from Go's native division which truncates towards zero:
// FloorDivInt64(-1, 12) is -1 where -1/12 is 0. The conversion engine relies
// on floor semantics to map negative epoch values correctly.
func FloorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// FloorModInt64 returns the floor modulus of a and b, always carrying the
// sign of b. Pairs with FloorDivInt64 so that a == FloorDivInt64(a,b)*b + FloorModInt64(a,b).
func FloorModInt64(a, b int64) int64 {
	return a - FloorDivInt64(a, b)*b
}
