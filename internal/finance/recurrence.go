package finance

import (
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
)

// NextRecurrenceDate computes the date one recurrence period after
// fromDate, zero-padded YYYY-MM-DD. Monthly and yearly advances use
// native calendar normalization: when the source day does not exist in
// the target month (Jan 31, Feb 29) the result rolls forward into the
// following month instead of clamping to the last valid day. The mobile
// and web clients compute recurrence dates the same way, so this
// rollover is pinned behavior.
func NextRecurrenceDate(fromDate string, frequency domain.Frequency) string {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return fromDate
	}

	var next time.Time
	switch frequency {
	case domain.FrequencyDaily:
		next = from.AddDate(0, 0, 1)
	case domain.FrequencyWeekly:
		next = from.AddDate(0, 0, 7)
	case domain.FrequencyBiweekly:
		next = from.AddDate(0, 0, 14)
	case domain.FrequencyYearly:
		next = from.AddDate(1, 0, 0)
	default: // monthly
		next = from.AddDate(0, 1, 0)
	}
	return next.Format(dateLayout)
}
