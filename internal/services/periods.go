package services

import (
	"time"

	"fintrack/internal/models"
)

// CalendarPeriods holds the three date ranges every statistics computation
// is scoped to. All three are derived from the same reference instant.
type CalendarPeriods struct {
	CurrentMonth models.Period
	LastMonth    models.Period
	CurrentYear  models.Period
}

// PeriodsFor computes the calendar periods relative to the given reference
// instant. The clock is injected so periods stay deterministic under test;
// nothing in this package reads the system clock directly.
func PeriodsFor(now time.Time) CalendarPeriods {
	year, month, _ := now.Date()

	return CalendarPeriods{
		CurrentMonth: monthPeriod(year, month, now.Location()),
		// time.Date normalizes month 0 to December of the previous year,
		// which covers the January rollover
		LastMonth:   monthPeriod(year, month-1, now.Location()),
		CurrentYear: yearPeriod(year, now.Location()),
	}
}

// monthPeriod returns the first through last calendar day of the month
func monthPeriod(year int, month time.Month, loc *time.Location) models.Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)
	return models.Period{Start: start, End: end}
}

// yearPeriod returns January 1 through December 31 of the year
func yearPeriod(year int, loc *time.Location) models.Period {
	return models.Period{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
	}
}

// Validate checks all three periods for well-formedness. A malformed period
// here is a programming error, surfaced before any query is issued.
func (p CalendarPeriods) Validate() error {
	for _, period := range []models.Period{p.CurrentMonth, p.LastMonth, p.CurrentYear} {
		if err := period.Validate(); err != nil {
			return err
		}
	}
	return nil
}
