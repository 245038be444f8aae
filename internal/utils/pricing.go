package utils

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// FormatDate renders a time as a yyyy-mm-dd string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RentalDays returns the number of billable days between start and end.
// Partial days round up; end must be after start for a positive result.
func RentalDays(start, end time.Time) int32 {
	hours := end.Sub(start).Hours()
	return int32(math.Ceil(hours / 24))
}

// RentalPriceCents computes the total price for a rental period at the
// vehicle's daily rate. Prices are always derived here, never taken from
// client input.
func RentalPriceCents(start, end time.Time, dailyRateCents int32) int32 {
	return RentalDays(start, end) * dailyRateCents
}
