package reports

import (
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
)

// DateRange returns the [start, end] window for a preset relative to now.
// The custom preset needs startStr and endStr as YYYY-MM-DD; the end day is
// included in full. Unknown presets fall back to the coming week.
func DateRange(preset, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch preset {
	case DateRangeDaily:
		return today, endOfDay(today), nil
	case DateRangeMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	case DateRangeYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond), nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, apperror.InvalidInput("start_date and end_date are required for a custom range")
		}
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.InvalidInput("invalid start_date, use YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.InvalidInput("invalid end_date, use YYYY-MM-DD")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, apperror.InvalidInput("start_date must not be after end_date")
		}
		return start, endOfDay(end), nil
	default:
		// today plus the next six days
		return today, endOfDay(today.AddDate(0, 0, 6)), nil
	}
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Nanosecond)
}
