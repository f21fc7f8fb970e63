package scheduling

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for times of day
	TimeLayout = "15:04"
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
// Values past 24:00 are allowed so that end-of-window arithmetic never wraps.
type TimeOfDay int

// Working hours of the crews
const (
	WorkStart TimeOfDay = 8 * 60
	WorkEnd   TimeOfDay = 22 * 60
)

// NewTimeOfDay builds a TimeOfDay from hours and minutes
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses an "HH:MM" string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// AddHours returns the time of day n hours later
func (t TimeOfDay) AddHours(n int) TimeOfDay {
	return t + TimeOfDay(n*60)
}

// Add returns the time of day shifted by d, truncated to whole minutes
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// On anchors the time of day to the calendar day of day
func (t TimeOfDay) On(day time.Time) time.Time {
	return StartOfDay(day).Add(time.Duration(t) * time.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDate parses a "YYYY-MM-DD" date into midnight UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns [midnight, next midnight) for the day of t
func DayBounds(t time.Time) Interval {
	start := StartOfDay(t)
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}
