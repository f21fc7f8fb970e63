package scheduling

import "time"

// Interval is the half-open range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval of length d starting at start
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Expand widens the interval by buffer on both ends
func (i Interval) Expand(buffer time.Duration) Interval {
	return Interval{Start: i.Start.Add(-buffer), End: i.End.Add(buffer)}
}

// Overlaps reports whether the two half-open intervals share any instant
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Conflicts reports whether i collides with an existing commitment once the
// existing side is widened by buffer. The edges of i itself stay exact.
func (i Interval) Conflicts(existing Interval, buffer time.Duration) bool {
	return i.Overlaps(existing.Expand(buffer))
}
