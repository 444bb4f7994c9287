package chrono

import (
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD layout the stats pages filter on.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of days, End is always after Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("end date: %w", err)
	}
	if !endDate.After(startDate) {
		return DateRange{}, fmt.Errorf("end date %s must be later than start date %s", end, start)
	}
	return DateRange{Start: startDate, End: endDate}, nil
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
