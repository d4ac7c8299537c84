// Package sqlconv adapts the calendrical value types to database/sql.
//
// Each wrapper implements driver.Valuer and sql.Scanner so values can be
// written to and read from SQL columns. Column forms are the canonical
// String() representations ("2008-06", "P1Y2M3D") or a plain integer count
// for single-unit amounts. Scanning always reconstructs through the
// validating chrono factories; a corrupt column surfaces the factory's error
// instead of producing an invalid value.
//
// The wrappers follow the database/sql Null* convention: a SQL NULL scans to
// Valid == false, and a wrapper with Valid == false stores SQL NULL.
package sqlconv

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chronoval/calendrical-go/chrono"
)

// ErrUnsupportedColumnType is returned when a column value has a Go type the
// wrapper cannot scan from.
var ErrUnsupportedColumnType = errors.New("unsupported column type")

var (
	_ driver.Valuer = NullYearMonth{}
	_ sql.Scanner   = (*NullYearMonth)(nil)
	_ driver.Valuer = NullPeriod{}
	_ sql.Scanner   = (*NullPeriod)(nil)
	_ driver.Valuer = NullSeconds{}
	_ sql.Scanner   = (*NullSeconds)(nil)
)

// NullYearMonth wraps a *chrono.YearMonth for SQL text columns such as "2008-06".
type NullYearMonth struct {
	YearMonth *chrono.YearMonth
	Valid     bool
}

// Value stores the canonical text form, or NULL when not valid.
func (n NullYearMonth) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.YearMonth.String(), nil
}

// Scan parses a text column through the validating factory.
func (n *NullYearMonth) Scan(src any) error {
	if src == nil {
		n.YearMonth, n.Valid = nil, false
		return nil
	}

	text, err := columnText(src)
	if err != nil {
		return err
	}

	ym, err := parseYearMonth(text)
	if err != nil {
		return err
	}

	n.YearMonth, n.Valid = ym, true

	return nil
}

// NullPeriod wraps a *chrono.Period for SQL text columns such as "P1Y2M3D".
type NullPeriod struct {
	Period *chrono.Period
	Valid  bool
}

// Value stores the canonical text form, or NULL when not valid.
func (n NullPeriod) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.Period.String(), nil
}

// Scan parses a text column. A zero-length period scans to the
// chrono.ZeroPeriod singleton.
func (n *NullPeriod) Scan(src any) error {
	if src == nil {
		n.Period, n.Valid = nil, false
		return nil
	}

	text, err := columnText(src)
	if err != nil {
		return err
	}

	p, err := parsePeriod(text)
	if err != nil {
		return err
	}

	n.Period, n.Valid = p, true

	return nil
}

// NullSeconds wraps a *chrono.Seconds for SQL integer columns.
type NullSeconds struct {
	Seconds *chrono.Seconds
	Valid   bool
}

// Value stores the plain count, or NULL when not valid.
func (n NullSeconds) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return int64(n.Seconds.Count()), nil
}

// Scan reads an integer column. A zero count scans to the chrono.ZeroSeconds
// singleton.
func (n *NullSeconds) Scan(src any) error {
	if src == nil {
		n.Seconds, n.Valid = nil, false
		return nil
	}

	count, err := columnInt64(src)
	if err != nil {
		return err
	}

	narrowed, err := toInt32(count)
	if err != nil {
		return err
	}

	n.Seconds, n.Valid = chrono.SecondsOf(narrowed), true

	return nil
}

// columnText normalizes the Go types SQL drivers deliver for text columns.
func columnText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%T: %w", src, ErrUnsupportedColumnType)
	}
}

// columnInt64 normalizes the Go types SQL drivers deliver for integer columns.
func columnInt64(src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("%T: %w", src, ErrUnsupportedColumnType)
	}
}

func toInt32(v int64) (int32, error) {
	narrowed := int32(v)
	if int64(narrowed) != v {
		return 0, fmt.Errorf("%d does not fit an int32 column value: %w", v, chrono.ErrArithmeticOverflow)
	}

	return narrowed, nil
}

// parseYearMonth parses the canonical "2008-06" column form, including
// negative ("-0004-12") and explicitly signed five-digit years.
func parseYearMonth(text string) (*chrono.YearMonth, error) {
	body := strings.TrimPrefix(text, "+")
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}

	yearPart, monthPart, found := strings.Cut(body, "-")
	if !found {
		return nil, fmt.Errorf("year-month column %q is malformed: %w", text, chrono.ErrInvalidField)
	}

	year, err := strconv.ParseInt(yearPart, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("year-month column %q is malformed: %w", text, chrono.ErrInvalidField)
	}
	if negative {
		year = -year
	}

	month, err := strconv.ParseInt(monthPart, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("year-month column %q is malformed: %w", text, chrono.ErrInvalidField)
	}

	return chrono.BuildYearMonth(year, int32(month))
}

// parsePeriod parses the canonical "P1Y2M3D" column form with any subset of
// the three components present; "P0D" is the zero period.
func parsePeriod(text string) (*chrono.Period, error) {
	body, hadPrefix := strings.CutPrefix(text, "P")
	if !hadPrefix || body == "" {
		return nil, fmt.Errorf("period column %q is malformed: %w", text, chrono.ErrInvalidField)
	}

	var years, months, days int32
	for _, part := range []struct {
		designator string
		target     *int32
	}{
		{"Y", &years},
		{"M", &months},
		{"D", &days},
	} {
		component, rest, found := strings.Cut(body, part.designator)
		if !found {
			continue
		}

		value, err := strconv.ParseInt(component, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("period column %q is malformed: %w", text, chrono.ErrInvalidField)
		}

		*part.target = int32(value)
		body = rest
	}

	if body != "" {
		return nil, fmt.Errorf("period column %q is malformed: %w", text, chrono.ErrInvalidField)
	}

	return chrono.PeriodOf(years, months, days), nil
}
