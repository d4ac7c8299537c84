// Package chrono provides immutable calendrical value types for the
// proleptic ISO calendar, together with a generic field-query protocol.
//
// This package defines the fundamental value types and the capability
// interfaces that let generic code query and adjust any calendrical type
// uniformly, without knowing its concrete shape.
//
// Key types:
//   - Field: a named, range-bounded, unit-bearing calendrical quantity
//   - Accessor / Temporal / Adjuster: the field-query and adjustment protocol
//   - YearMonth, LocalDate: date-like value types
//   - Period: a (years, months, days) amount, never normalized
//   - Seconds, Minutes, Hours: single-unit amounts
//
// All value types are immutable and created only through factory functions.
// Mutating operations return a new instance, or the SAME instance when the
// operation is a no-op; callers may rely on that reference identity.
// Canonical zero values (ZeroPeriod, ZeroSeconds, ...) are process-wide
// singletons which the factories return whenever the value is zero.
//
// Common usage pattern:
//
//	ym, err := chrono.BuildYearMonth(2008, 6)
//	if err != nil {
//		// handle error
//	}
//
//	next, err := ym.PlusMonths(7) // 2009-01
//
//	em, err := ym.Long(chrono.EpochMonth) // (2008-1970)*12 + 5
//
// Arithmetic is overflow-checked everywhere: results that do not fit their
// integer width surface safemath.ErrArithmeticOverflow, they never wrap.
package chrono
