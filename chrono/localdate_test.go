package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoval/calendrical-go/chrono"
	"github.com/chronoval/calendrical-go/testutil"
)

func Test_BuildLocalDate_ValidatesAcrossFields(t *testing.T) {
	tests := []struct {
		name        string
		year        int64
		month       int32
		day         int32
		expectedErr error
	}{
		{name: "valid", year: 2008, month: 6, day: 30, expectedErr: nil},
		{name: "leap day in leap year", year: 2008, month: 2, day: 29, expectedErr: nil},
		{name: "leap day in common year", year: 2007, month: 2, day: 29, expectedErr: chrono.ErrInvalidField},
		{name: "day 31 in a 30 day month", year: 2008, month: 6, day: 31, expectedErr: chrono.ErrInvalidField},
		{name: "day zero", year: 2008, month: 6, day: 0, expectedErr: chrono.ErrInvalidField},
		{name: "day 32", year: 2008, month: 1, day: 32, expectedErr: chrono.ErrInvalidField},
		{name: "month 13", year: 2008, month: 13, day: 1, expectedErr: chrono.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := chrono.BuildLocalDate(tt.year, tt.month, tt.day)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, date)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.year, date.Year())
			assert.Equal(t, tt.month, date.Month().Value())
			assert.Equal(t, tt.day, date.Day())
		})
	}
}

func Test_LocalDateOfEpochDay_InvertsEpochDay(t *testing.T) {
	for _, epochDay := range []int64{-719528, -1, 0, 1, 10957, 19723} {
		date, err := chrono.LocalDateOfEpochDay(epochDay)
		require.NoError(t, err)

		assert.Equal(t, epochDay, date.EpochDay())
	}
}

func Test_LocalDate_With_ReturnsSameInstanceForNoOp(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)

	sameYear, err := date.WithYear(2008)
	require.NoError(t, err)
	assert.Same(t, date, sameYear)

	sameMonth, err := date.WithMonth(6)
	require.NoError(t, err)
	assert.Same(t, date, sameMonth)

	sameDay, err := date.WithDay(30)
	require.NoError(t, err)
	assert.Same(t, date, sameDay)

	samePlus, err := date.PlusDays(0)
	require.NoError(t, err)
	assert.Same(t, date, samePlus)
}

func Test_LocalDate_With_ClampsTheDay(t *testing.T) {
	leapDay := testutil.GivenLocalDate(t, 2008, 2, 29)

	commonYear, err := leapDay.WithYear(2007)
	require.NoError(t, err)
	assert.Equal(t, "2007-02-28", commonYear.String())

	endOfJanuary := testutil.GivenLocalDate(t, 2008, 1, 31)

	june, err := endOfJanuary.WithMonth(6)
	require.NoError(t, err)
	assert.Equal(t, "2008-06-30", june.String())
}

func Test_LocalDate_PlusMonths_ClampsTheDay(t *testing.T) {
	tests := []struct {
		name     string
		year     int64
		month    int32
		day      int32
		months   int64
		expected string
	}{
		{name: "into shorter month", year: 2008, month: 1, day: 31, months: 1, expected: "2008-02-29"},
		{name: "into shorter month common year", year: 2007, month: 1, day: 31, months: 1, expected: "2007-02-28"},
		{name: "day survives", year: 2008, month: 1, day: 28, months: 1, expected: "2008-02-28"},
		{name: "across year boundary", year: 2008, month: 11, day: 30, months: 3, expected: "2009-02-28"},
		{name: "backwards", year: 2008, month: 3, day: 31, months: -1, expected: "2008-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := testutil.GivenLocalDate(t, tt.year, tt.month, tt.day)

			shifted, err := date.PlusMonths(tt.months)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, shifted.String())
		})
	}
}

func Test_LocalDate_PlusDays_CarriesAcrossBoundaries(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 2, 28)

	next, err := date.PlusDays(1)
	require.NoError(t, err)
	assert.Equal(t, "2008-02-29", next.String())

	next, err = next.PlusDays(1)
	require.NoError(t, err)
	assert.Equal(t, "2008-03-01", next.String())

	previous, err := date.MinusDays(59)
	require.NoError(t, err)
	assert.Equal(t, "2007-12-31", previous.String())
}

func Test_LocalDate_Comparisons_FormATotalOrder(t *testing.T) {
	ordered := []*chrono.LocalDate{
		testutil.GivenLocalDate(t, 0, 12, 31),
		testutil.GivenLocalDate(t, 1, 1, 1),
		testutil.GivenLocalDate(t, 2008, 6, 29),
		testutil.GivenLocalDate(t, 2008, 6, 30),
		testutil.GivenLocalDate(t, 2008, 7, 1),
		testutil.GivenLocalDate(t, 2009, 1, 1),
	}

	for i, a := range ordered {
		for j, b := range ordered {
			switch {
			case i < j:
				assert.True(t, a.IsBefore(b), "%s < %s", a, b)
				assert.False(t, a.Equal(b), "%s < %s", a, b)
			case i > j:
				assert.True(t, a.IsAfter(b), "%s > %s", a, b)
			default:
				assert.True(t, a.Equal(b), "%s == %s", a, b)
			}
		}
	}
}

func Test_LocalDate_Long_AnswersAllDateFields(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)

	tests := []struct {
		field    chrono.Field
		expected int64
	}{
		{field: chrono.Era, expected: 1},
		{field: chrono.YearOfEra, expected: 2008},
		{field: chrono.Year, expected: 2008},
		{field: chrono.MonthOfYear, expected: 6},
		{field: chrono.EpochMonth, expected: (2008-1970)*12 + 5},
		{field: chrono.DayOfMonth, expected: 30},
		{field: chrono.DayOfYear, expected: 182},
		{field: chrono.EpochDay, expected: date.EpochDay()},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name(), func(t *testing.T) {
			assert.True(t, date.IsSupported(tt.field))

			value, err := date.Long(tt.field)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func Test_LocalDate_WithField(t *testing.T) {
	tests := []struct {
		name     string
		field    chrono.Field
		value    int64
		expected string
	}{
		{name: "year clamps leap day", field: chrono.Year, value: 2007, expected: "2007-02-28"},
		{name: "month", field: chrono.MonthOfYear, value: 6, expected: "2008-06-29"},
		{name: "day", field: chrono.DayOfMonth, value: 1, expected: "2008-02-01"},
		{name: "day of year", field: chrono.DayOfYear, value: 1, expected: "2008-01-01"},
		{name: "epoch day", field: chrono.EpochDay, value: 0, expected: "1970-01-01"},
		{name: "era flip", field: chrono.Era, value: 0, expected: "-2007-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := testutil.GivenLocalDate(t, 2008, 2, 29)

			adjusted, err := date.WithField(tt.field, tt.value)
			require.NoError(t, err)

			result, ok := adjusted.(*chrono.LocalDate)
			require.True(t, ok)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func Test_LocalDate_WithField_SameValueReturnsSameInstance(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)

	for _, field := range []chrono.Field{chrono.Year, chrono.MonthOfYear, chrono.DayOfMonth, chrono.DayOfYear, chrono.EpochDay} {
		current, err := date.Long(field)
		require.NoError(t, err)

		adjusted, err := date.WithField(field, current)
		require.NoError(t, err)
		assert.Same(t, date, adjusted, field.Name())
	}
}

func Test_LocalDate_WithField_RejectsNonexistentDays(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2007, 6, 15)

	_, err := date.WithField(chrono.DayOfYear, 366)
	assert.ErrorIs(t, err, chrono.ErrInvalidField)

	_, err = date.WithField(chrono.DayOfMonth, 31)
	assert.ErrorIs(t, err, chrono.ErrInvalidField)
}

func Test_LocalDate_AdjustInto_SetsTheEpochDay(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)
	target := testutil.GivenLocalDate(t, 2007, 1, 1)

	adjusted, err := date.AdjustInto(target)
	require.NoError(t, err)

	result, ok := adjusted.(*chrono.LocalDate)
	require.True(t, ok)
	assert.True(t, result.Equal(date))

	same, err := date.AdjustInto(result)
	require.NoError(t, err)
	assert.Same(t, result, same)
}

func Test_LocalDate_AdjustInto_RejectsTargetsWithoutEpochDay(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)
	ym := testutil.GivenYearMonth(t, 2007, 1)

	_, err := date.AdjustInto(ym)

	assert.ErrorIs(t, err, chrono.ErrUnsupportedField)
}

func Test_LocalDate_YearMonth(t *testing.T) {
	date := testutil.GivenLocalDate(t, 2008, 6, 30)

	ym := date.YearMonth()

	assert.Equal(t, "2008-06", ym.String())
}

func Test_LocalDate_String(t *testing.T) {
	tests := []struct {
		year     int64
		month    int32
		day      int32
		expected string
	}{
		{year: 2008, month: 6, day: 30, expected: "2008-06-30"},
		{year: 2008, month: 12, day: 1, expected: "2008-12-01"},
		{year: 0, month: 1, day: 1, expected: "0000-01-01"},
		{year: -1, month: 12, day: 31, expected: "-0001-12-31"},
	}

	for _, tt := range tests {
		date := testutil.GivenLocalDate(t, tt.year, tt.month, tt.day)

		assert.Equal(t, tt.expected, date.String())
	}
}
