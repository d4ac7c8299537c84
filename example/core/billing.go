package core

import (
	"errors"

	"github.com/chronoval/calendrical-go/chrono"
)

var ErrNoBillingCycles = errors.New("a schedule needs at least one billing cycle")

// BillingMonths returns the months a subscription bills in, starting with the
// first billing month and advancing one month per cycle. Month arithmetic
// carries across year boundaries, so a schedule starting 2008-11 with three
// cycles bills in 2008-11, 2008-12 and 2009-01.
func BillingMonths(first *chrono.YearMonth, cycles int) ([]*chrono.YearMonth, error) {
	if cycles < 1 {
		return nil, ErrNoBillingCycles
	}

	months := make([]*chrono.YearMonth, 0, cycles)
	for i := 0; i < cycles; i++ {
		month, err := first.PlusMonths(int64(i))
		if err != nil {
			return nil, err
		}

		months = append(months, month)
	}

	return months, nil
}

// TrialEnd applies a trial period to a start date, component by component:
// years first, then months (clamping the day where the target month is
// shorter), then days.
func TrialEnd(start *chrono.LocalDate, trial *chrono.Period) (*chrono.LocalDate, error) {
	afterYears, err := start.PlusYears(int64(trial.Years()))
	if err != nil {
		return nil, err
	}

	afterMonths, err := afterYears.PlusMonths(int64(trial.Months()))
	if err != nil {
		return nil, err
	}

	return afterMonths.PlusDays(int64(trial.Days()))
}

// GraceWindow scales the per-cycle grace allowance by the number of billed
// cycles, giving the total window a customer can be late across the schedule.
func GraceWindow(perCycle *chrono.Seconds, cycles int32) (*chrono.Seconds, error) {
	return perCycle.MultipliedBy(cycles)
}

// AlignToBillingMonth moves a payment due date into the schedule's billing
// month, clamping the day-of-month where the billing month is shorter.
// A due date already in the billing month is returned unchanged.
func AlignToBillingMonth(billingMonth *chrono.YearMonth, dueDate *chrono.LocalDate) (*chrono.LocalDate, error) {
	adjusted, err := billingMonth.AdjustInto(dueDate)
	if err != nil {
		return nil, err
	}

	aligned, ok := adjusted.(*chrono.LocalDate)
	if !ok {
		// AdjustInto preserves the target's concrete type.
		return nil, errors.New("adjusted due date is not a date")
	}

	return aligned, nil
}
