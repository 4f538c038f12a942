package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

// ErrInvalidDate is returned for dates that are not formatted YYYY-MM-DD
var ErrInvalidDate = errors.New("invalid date")

// IsValidationError reports whether err was caused by bad request input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, domain.ErrInvalidRange)
}

// ParseRange resolves the requested dates into an inclusive range in loc.
// A missing end defaults to today and a missing start to defaultDays before end.
func ParseRange(start, end string, now time.Time, loc *time.Location, defaultDays int) (domain.DateRange, error) {
	endDate := now.In(loc)
	if end != "" {
		d, err := time.ParseInLocation(time.DateOnly, end, loc)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: end %q must be YYYY-MM-DD", ErrInvalidDate, end)
		}
		endDate = d
	}

	startDate := endDate.AddDate(0, 0, -defaultDays)
	if start != "" {
		d, err := time.ParseInLocation(time.DateOnly, start, loc)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: start %q must be YYYY-MM-DD", ErrInvalidDate, start)
		}
		startDate = d
	}

	return domain.NewDayRange(startDate, endDate, loc)
}
