// Package codec provides the byte-level serialized form of the calendrical
// value types.
//
// Values marshal to small JSON envelopes. Reconstruction always routes
// through the validating factories of the chrono package, so a byte stream
// can never bypass the invariants normal construction enforces, and zero
// amounts deserialize to their canonical singletons (unmarshalling a zero
// Seconds returns chrono.ZeroSeconds itself, not an equal copy).
package codec

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/chronoval/calendrical-go/chrono"
)

// ErrInvalidEnvelopeJSON is returned when a serialized form is not a valid
// envelope for the requested value type.
var ErrInvalidEnvelopeJSON = errors.New("serialized envelope json is not valid")

var json = jsoniter.ConfigFastest

type yearMonthEnvelope struct {
	Year  int64 `json:"year"`
	Month int32 `json:"month"`
}

type localDateEnvelope struct {
	Year  int64 `json:"year"`
	Month int32 `json:"month"`
	Day   int32 `json:"day"`
}

type periodEnvelope struct {
	Years  int32 `json:"years"`
	Months int32 `json:"months"`
	Days   int32 `json:"days"`
}

type amountEnvelope struct {
	Count int32 `json:"count"`
}

// MarshalYearMonth serializes a YearMonth to its JSON envelope.
func MarshalYearMonth(ym *chrono.YearMonth) ([]byte, error) {
	return json.Marshal(yearMonthEnvelope{Year: ym.Year(), Month: ym.Month().Value()})
}

// UnmarshalYearMonth reconstructs a YearMonth from its JSON envelope through
// the validating factory, so invalid envelopes surface chrono.ErrInvalidField.
func UnmarshalYearMonth(data []byte) (*chrono.YearMonth, error) {
	var envelope yearMonthEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.BuildYearMonth(envelope.Year, envelope.Month)
}

// MarshalLocalDate serializes a LocalDate to its JSON envelope.
func MarshalLocalDate(d *chrono.LocalDate) ([]byte, error) {
	return json.Marshal(localDateEnvelope{Year: d.Year(), Month: d.Month().Value(), Day: d.Day()})
}

// UnmarshalLocalDate reconstructs a LocalDate from its JSON envelope through
// the validating factory, re-checking calendar validity such as leap days.
func UnmarshalLocalDate(data []byte) (*chrono.LocalDate, error) {
	var envelope localDateEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.BuildLocalDate(envelope.Year, envelope.Month, envelope.Day)
}

// MarshalPeriod serializes a Period to its JSON envelope.
func MarshalPeriod(p *chrono.Period) ([]byte, error) {
	return json.Marshal(periodEnvelope{Years: p.Years(), Months: p.Months(), Days: p.Days()})
}

// UnmarshalPeriod reconstructs a Period from its JSON envelope. A zero-length
// envelope yields the chrono.ZeroPeriod singleton.
func UnmarshalPeriod(data []byte) (*chrono.Period, error) {
	var envelope periodEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.PeriodOf(envelope.Years, envelope.Months, envelope.Days), nil
}

// MarshalSeconds serializes a Seconds amount to its JSON envelope.
func MarshalSeconds(s *chrono.Seconds) ([]byte, error) {
	return json.Marshal(amountEnvelope{Count: s.Count()})
}

// UnmarshalSeconds reconstructs a Seconds amount. A zero count yields the
// chrono.ZeroSeconds singleton.
func UnmarshalSeconds(data []byte) (*chrono.Seconds, error) {
	var envelope amountEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.SecondsOf(envelope.Count), nil
}

// MarshalMinutes serializes a Minutes amount to its JSON envelope.
func MarshalMinutes(m *chrono.Minutes) ([]byte, error) {
	return json.Marshal(amountEnvelope{Count: m.Count()})
}

// UnmarshalMinutes reconstructs a Minutes amount. A zero count yields the
// chrono.ZeroMinutes singleton.
func UnmarshalMinutes(data []byte) (*chrono.Minutes, error) {
	var envelope amountEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.MinutesOf(envelope.Count), nil
}

// MarshalHours serializes an Hours amount to its JSON envelope.
func MarshalHours(h *chrono.Hours) ([]byte, error) {
	return json.Marshal(amountEnvelope{Count: h.Count()})
}

// UnmarshalHours reconstructs an Hours amount. A zero count yields the
// chrono.ZeroHours singleton.
func UnmarshalHours(data []byte) (*chrono.Hours, error) {
	var envelope amountEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelopeJSON, err)
	}

	return chrono.HoursOf(envelope.Count), nil
}
