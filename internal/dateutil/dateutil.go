package dateutil

import (
	"fmt"
	"time"
)

// DayFormat is the layout for calendar-day identifiers. Identifiers in this
// format compare chronologically under ordinary string ordering.
const DayFormat = "2006-01-02"

// Today returns the calendar-day identifier for the current local date.
func Today() string {
	return time.Now().Format(DayFormat)
}

// IsToday reports whether dayID refers to the current local calendar day.
func IsToday(dayID string) bool {
	return dayID == Today()
}

// IsValidDay reports whether dayID is a well-formed calendar-day identifier.
func IsValidDay(dayID string) bool {
	_, err := time.ParseInLocation(DayFormat, dayID, time.Local)
	return err == nil
}

// AddDays returns the day identifier n whole calendar days after dayID
// (n may be negative). Day arithmetic uses AddDate so month and year
// boundaries and DST transitions cannot shift the result.
func AddDays(dayID string, n int) (string, error) {
	t, err := time.ParseInLocation(DayFormat, dayID, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid day identifier %q: %w", dayID, err)
	}
	return t.AddDate(0, 0, n).Format(DayFormat), nil
}

// DayRange returns n day identifiers ending at and including today,
// oldest first. n <= 0 yields an empty slice.
func DayRange(n int) []string {
	return dayRangeEnding(time.Now(), n)
}

// DayRangeFrom is DayRange anchored at an arbitrary end day instead of today.
func DayRangeFrom(end string, n int) ([]string, error) {
	t, err := time.ParseInLocation(DayFormat, end, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid day identifier %q: %w", end, err)
	}
	return dayRangeEnding(t, n), nil
}

func dayRangeEnding(end time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = end.AddDate(0, 0, i-n+1).Format(DayFormat)
	}
	return days
}
