package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoval/calendrical-go/chrono"
	"github.com/chronoval/calendrical-go/chrono/codec"
	"github.com/chronoval/calendrical-go/testutil"
)

func Test_YearMonth_RoundTripsThroughItsEnvelope(t *testing.T) {
	original := testutil.GivenYearMonth(t, 2008, 6)

	data, err := codec.MarshalYearMonth(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"year": 2008, "month": 6}`, string(data))

	restored, err := codec.UnmarshalYearMonth(data)
	require.NoError(t, err)
	assert.True(t, restored.Equal(original))
}

func Test_UnmarshalYearMonth_RejectsInvalidEnvelopes(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{name: "not json", input: `{"year": 2008,`, expectedErr: codec.ErrInvalidEnvelopeJSON},
		{name: "month out of range", input: `{"year": 2008, "month": 13}`, expectedErr: chrono.ErrInvalidField},
		{name: "year out of range", input: `{"year": 1000000000, "month": 1}`, expectedErr: chrono.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restored, err := codec.UnmarshalYearMonth([]byte(tt.input))

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, restored)
		})
	}
}

func Test_LocalDate_RoundTripsThroughItsEnvelope(t *testing.T) {
	original := testutil.GivenLocalDate(t, 2008, 2, 29)

	data, err := codec.MarshalLocalDate(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"year": 2008, "month": 2, "day": 29}`, string(data))

	restored, err := codec.UnmarshalLocalDate(data)
	require.NoError(t, err)
	assert.True(t, restored.Equal(original))
}

func Test_UnmarshalLocalDate_ReValidatesCalendarRules(t *testing.T) {
	// A leap day in a common year is well-formed JSON but not a valid date.
	restored, err := codec.UnmarshalLocalDate([]byte(`{"year": 2007, "month": 2, "day": 29}`))

	assert.ErrorIs(t, err, chrono.ErrInvalidField)
	assert.Nil(t, restored)
}

func Test_Period_RoundTripsThroughItsEnvelope(t *testing.T) {
	original := chrono.PeriodOf(1, 2, 3)

	data, err := codec.MarshalPeriod(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"years": 1, "months": 2, "days": 3}`, string(data))

	restored, err := codec.UnmarshalPeriod(data)
	require.NoError(t, err)
	assert.True(t, restored.Equal(original))
}

func Test_UnmarshalPeriod_ZeroYieldsTheSingleton(t *testing.T) {
	data, err := codec.MarshalPeriod(chrono.ZeroPeriod)
	require.NoError(t, err)

	restored, err := codec.UnmarshalPeriod(data)

	require.NoError(t, err)
	assert.Same(t, chrono.ZeroPeriod, restored)
}

func Test_Seconds_RoundTripsThroughItsEnvelope(t *testing.T) {
	original := chrono.SecondsOf(90)

	data, err := codec.MarshalSeconds(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 90}`, string(data))

	restored, err := codec.UnmarshalSeconds(data)
	require.NoError(t, err)
	assert.True(t, restored.Equal(original))
}

func Test_UnmarshalAmounts_ZeroYieldsTheSingletons(t *testing.T) {
	seconds, err := codec.UnmarshalSeconds([]byte(`{"count": 0}`))
	require.NoError(t, err)
	assert.Same(t, chrono.ZeroSeconds, seconds)

	minutes, err := codec.UnmarshalMinutes([]byte(`{"count": 0}`))
	require.NoError(t, err)
	assert.Same(t, chrono.ZeroMinutes, minutes)

	hours, err := codec.UnmarshalHours([]byte(`{"count": 0}`))
	require.NoError(t, err)
	assert.Same(t, chrono.ZeroHours, hours)
}

func Test_MinutesAndHours_RoundTripThroughTheirEnvelopes(t *testing.T) {
	minutes, err := codec.MarshalMinutes(chrono.MinutesOf(45))
	require.NoError(t, err)

	restoredMinutes, err := codec.UnmarshalMinutes(minutes)
	require.NoError(t, err)
	assert.Equal(t, int32(45), restoredMinutes.Count())

	hours, err := codec.MarshalHours(chrono.HoursOf(-3))
	require.NoError(t, err)

	restoredHours, err := codec.UnmarshalHours(hours)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), restoredHours.Count())
}
