package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodsFor_MidYear(t *testing.T) {
	periods := PeriodsFor(date(2024, time.June, 15))

	assert.Equal(t, date(2024, time.June, 1), periods.CurrentMonth.Start)
	assert.Equal(t, date(2024, time.June, 30), periods.CurrentMonth.End)
	assert.Equal(t, date(2024, time.May, 1), periods.LastMonth.Start)
	assert.Equal(t, date(2024, time.May, 31), periods.LastMonth.End)
	assert.Equal(t, date(2024, time.January, 1), periods.CurrentYear.Start)
	assert.Equal(t, date(2024, time.December, 31), periods.CurrentYear.End)
}

func TestPeriodsFor_JanuaryRollsBackToDecember(t *testing.T) {
	periods := PeriodsFor(date(2024, time.January, 15))

	assert.Equal(t, date(2024, time.January, 1), periods.CurrentMonth.Start)
	assert.Equal(t, date(2024, time.January, 31), periods.CurrentMonth.End)
	assert.Equal(t, date(2023, time.December, 1), periods.LastMonth.Start)
	assert.Equal(t, date(2023, time.December, 31), periods.LastMonth.End)
	assert.Equal(t, date(2024, time.January, 1), periods.CurrentYear.Start)
	assert.Equal(t, date(2024, time.December, 31), periods.CurrentYear.End)
}

func TestPeriodsFor_LeapFebruary(t *testing.T) {
	periods := PeriodsFor(date(2024, time.March, 15))

	assert.Equal(t, date(2024, time.February, 1), periods.LastMonth.Start)
	assert.Equal(t, date(2024, time.February, 29), periods.LastMonth.End)
}

func TestPeriodsFor_NonLeapFebruary(t *testing.T) {
	periods := PeriodsFor(date(2023, time.March, 10))

	assert.Equal(t, date(2023, time.February, 28), periods.LastMonth.End)
}

func TestPeriodsFor_MonthLengths(t *testing.T) {
	testCases := []struct {
		name    string
		now     time.Time
		lastDay time.Time
	}{
		{"thirty one days", date(2024, time.July, 4), date(2024, time.July, 31)},
		{"thirty days", date(2024, time.April, 4), date(2024, time.April, 30)},
		{"december", date(2024, time.December, 25), date(2024, time.December, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			periods := PeriodsFor(tc.now)
			assert.Equal(t, tc.lastDay, periods.CurrentMonth.End)
		})
	}
}

func TestPeriodsFor_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	assert.NoError(t, err)

	periods := PeriodsFor(time.Date(2024, time.June, 15, 12, 0, 0, 0, loc))

	assert.Equal(t, loc, periods.CurrentMonth.Start.Location())
	assert.Equal(t, loc, periods.LastMonth.Start.Location())
}

func TestCalendarPeriods_Validate(t *testing.T) {
	periods := PeriodsFor(date(2024, time.January, 15))
	assert.NoError(t, periods.Validate())

	periods.LastMonth.End = periods.LastMonth.Start.AddDate(0, 0, -5)
	assert.Error(t, periods.Validate())
}
