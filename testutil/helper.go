// Package testutil provides shared helpers for arranging calendrical test data.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronoval/calendrical-go/chrono"
)

// GivenYearMonth builds a YearMonth, failing the test on invalid input.
func GivenYearMonth(t testing.TB, year int64, month int32) *chrono.YearMonth {
	t.Helper()

	ym, err := chrono.BuildYearMonth(year, month)
	require.NoError(t, err, "error in arranging test data")

	return ym
}

// GivenLocalDate builds a LocalDate, failing the test on invalid input.
func GivenLocalDate(t testing.TB, year int64, month, day int32) *chrono.LocalDate {
	t.Helper()

	date, err := chrono.BuildLocalDate(year, month, day)
	require.NoError(t, err, "error in arranging test data")

	return date
}
