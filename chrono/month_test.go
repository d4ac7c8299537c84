package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoval/calendrical-go/chrono"
)

func Test_BuildMonth_ValidatesItsValue(t *testing.T) {
	month, err := chrono.BuildMonth(6)
	require.NoError(t, err)
	assert.Equal(t, chrono.June, month)

	_, err = chrono.BuildMonth(0)
	assert.ErrorIs(t, err, chrono.ErrInvalidField)

	_, err = chrono.BuildMonth(13)
	assert.ErrorIs(t, err, chrono.ErrInvalidField)
}

func Test_Month_Plus_WrapsAroundTheYear(t *testing.T) {
	tests := []struct {
		name     string
		month    chrono.Month
		months   int64
		expected chrono.Month
	}{
		{name: "no wrap", month: chrono.June, months: 1, expected: chrono.July},
		{name: "wrap forward", month: chrono.December, months: 1, expected: chrono.January},
		{name: "wrap backward", month: chrono.January, months: -1, expected: chrono.December},
		{name: "full year", month: chrono.June, months: 12, expected: chrono.June},
		{name: "many years", month: chrono.June, months: 25, expected: chrono.July},
		{name: "large negative", month: chrono.June, months: -25, expected: chrono.May},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.month.Plus(tt.months))
		})
	}
}

func Test_Month_Minus_IsInverseOfPlus(t *testing.T) {
	for m := chrono.January; m <= chrono.December; m++ {
		for _, months := range []int64{0, 1, 5, 12, 13, 100} {
			assert.Equal(t, m, m.Plus(months).Minus(months), "%s +- %d", m, months)
		}
	}
}

func Test_Month_Length(t *testing.T) {
	assert.Equal(t, int32(29), chrono.February.Length(true))
	assert.Equal(t, int32(28), chrono.February.Length(false))
	assert.Equal(t, int32(30), chrono.June.Length(false))
	assert.Equal(t, int32(31), chrono.July.Length(false))
}

func Test_Month_String(t *testing.T) {
	assert.Equal(t, "January", chrono.January.String())
	assert.Equal(t, "December", chrono.December.String())
	assert.Equal(t, "InvalidMonth", chrono.Month(0).String())
}
