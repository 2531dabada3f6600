package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPeriod indicates a period whose start lies after its end.
// Such a period is a caller programming error, never a runtime condition.
var ErrMalformedPeriod = errors.New("period start must not be after end")

// Period is a closed calendar date range [Start, End] used to scope an
// aggregate query. Both bounds are day-granularity dates; End is the last
// day included in the range.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate returns ErrMalformedPeriod when the range has negative length
func (p Period) Validate() error {
	if p.Start.After(p.End) {
		return fmt.Errorf("%w: %s > %s", ErrMalformedPeriod,
			p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	}
	return nil
}

// String renders the period as "YYYY-MM-DD..YYYY-MM-DD" for logs
func (p Period) String() string {
	return p.Start.Format("2006-01-02") + ".." + p.End.Format("2006-01-02")
}
