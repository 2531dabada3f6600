package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Validate(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Period{Start: start, End: end}.Validate())
	// single-day period is well formed
	assert.NoError(t, Period{Start: start, End: start}.Validate())

	err := Period{Start: end, End: start}.Validate()
	assert.ErrorIs(t, err, ErrMalformedPeriod)
}

func TestPeriod_String(t *testing.T) {
	period := Period{
		Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-06-01..2024-06-30", period.String())
}
