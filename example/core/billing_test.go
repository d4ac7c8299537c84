package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoval/calendrical-go/chrono"
	"github.com/chronoval/calendrical-go/example/core"
	"github.com/chronoval/calendrical-go/testutil"
)

func Test_BillingMonths_CarriesAcrossTheYearBoundary(t *testing.T) {
	first := testutil.GivenYearMonth(t, 2008, 11)

	months, err := core.BillingMonths(first, 3)

	require.NoError(t, err)
	require.Len(t, months, 3)
	assert.Equal(t, "2008-11", months[0].String())
	assert.Equal(t, "2008-12", months[1].String())
	assert.Equal(t, "2009-01", months[2].String())
}

func Test_BillingMonths_FirstCycleIsTheScheduleStartItself(t *testing.T) {
	first := testutil.GivenYearMonth(t, 2008, 11)

	months, err := core.BillingMonths(first, 1)

	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Same(t, first, months[0])
}

func Test_BillingMonths_RejectsEmptySchedules(t *testing.T) {
	first := testutil.GivenYearMonth(t, 2008, 11)

	for _, cycles := range []int{0, -1} {
		months, err := core.BillingMonths(first, cycles)

		assert.ErrorIs(t, err, core.ErrNoBillingCycles)
		assert.Nil(t, months)
	}
}

func Test_TrialEnd_AppliesThePeriodComponentWise(t *testing.T) {
	tests := []struct {
		name     string
		start    [3]int32
		trial    *chrono.Period
		expected string
	}{
		{name: "days only", start: [3]int32{2008, 6, 15}, trial: chrono.PeriodOfDays(14), expected: "2008-06-29"},
		{name: "months clamp the day", start: [3]int32{2008, 1, 31}, trial: chrono.PeriodOf(0, 1, 0), expected: "2008-02-29"},
		{name: "days after clamping", start: [3]int32{2008, 1, 31}, trial: chrono.PeriodOf(0, 1, 1), expected: "2008-03-01"},
		{name: "full period", start: [3]int32{2008, 10, 31}, trial: chrono.PeriodOf(1, 1, 3), expected: "2009-12-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := testutil.GivenLocalDate(t, int64(tt.start[0]), tt.start[1], tt.start[2])

			end, err := core.TrialEnd(start, tt.trial)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, end.String())
		})
	}
}

func Test_TrialEnd_ZeroTrialReturnsTheStartItself(t *testing.T) {
	start := testutil.GivenLocalDate(t, 2008, 6, 15)

	end, err := core.TrialEnd(start, chrono.ZeroPeriod)

	require.NoError(t, err)
	assert.Same(t, start, end)
}

func Test_GraceWindow_ScalesThePerCycleAllowance(t *testing.T) {
	window, err := core.GraceWindow(chrono.SecondsOf(3600), 3)

	require.NoError(t, err)
	assert.Equal(t, int32(10800), window.Count())
}

func Test_AlignToBillingMonth_ClampsTheDueDay(t *testing.T) {
	billingMonth := testutil.GivenYearMonth(t, 2009, 2)
	dueDate := testutil.GivenLocalDate(t, 2009, 1, 31)

	aligned, err := core.AlignToBillingMonth(billingMonth, dueDate)

	require.NoError(t, err)
	assert.Equal(t, "2009-02-28", aligned.String())
}

func Test_AlignToBillingMonth_LeavesMatchingDueDatesAlone(t *testing.T) {
	billingMonth := testutil.GivenYearMonth(t, 2009, 2)
	dueDate := testutil.GivenLocalDate(t, 2009, 2, 10)

	aligned, err := core.AlignToBillingMonth(billingMonth, dueDate)

	require.NoError(t, err)
	assert.Same(t, dueDate, aligned)
}
