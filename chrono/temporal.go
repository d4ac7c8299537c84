package chrono

// Accessor is implemented by any calendrical type that can report the values
// of standardized fields. External collaborators (formatting, persistence)
// depend only on this protocol, never on concrete value-type internals.
type Accessor interface {
	// IsSupported reports whether the field can be queried on this type.
	IsSupported(field Field) bool

	// Long returns the value of the field under ISO semantics, or
	// ErrUnsupportedField when IsSupported(field) is false.
	Long(field Field) (int64, error)
}

// Temporal is an Accessor whose fields can be adjusted. Adjustments return a
// new instance; a no-change adjustment returns the SAME instance, not merely
// an equal copy. Callers may rely on that reference identity.
type Temporal interface {
	Accessor

	// WithField returns a copy of this temporal with the given field set to
	// the given value. It returns ErrInvalidField for out-of-range values and
	// ErrUnsupportedField for fields the type cannot represent.
	WithField(field Field, value int64) (Temporal, error)
}

var (
	_ Temporal = (*YearMonth)(nil)
	_ Adjuster = (*YearMonth)(nil)
	_ Temporal = (*LocalDate)(nil)
	_ Adjuster = (*LocalDate)(nil)
)

// Adjuster adjusts an arbitrary Temporal to carry this adjuster's own fields,
// leaving all other fields untouched.
type Adjuster interface {
	// AdjustInto returns the target with exactly the adjuster's fields
	// overwritten. If nothing would change, the original target is returned
	// unchanged. Returns ErrUnsupportedField if the target cannot represent
	// the adjuster's fields.
	AdjustInto(target Temporal) (Temporal, error)
}
