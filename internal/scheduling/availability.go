package scheduling

import (
	"fmt"
	"time"
)

const (
	// Buffer is the mandatory rest/travel time kept clear on both sides of an
	// existing commitment
	Buffer = 30 * time.Minute
	// SlotStep is the granularity of the free slot listing
	SlotStep = 30 * time.Minute
)

// AllowedDurations lists the bookable durations in hours, shortest first
var AllowedDurations = []int{2, 4}

// Commitment is a booking as seen by the engine: when it happens and who is on it
type Commitment struct {
	ID            uint
	Interval      Interval
	CrewMemberIDs []uint
}

// Slot is a bookable (start, duration) combination
type Slot struct {
	Start         TimeOfDay
	DurationHours int
}

// String renders the slot as "HH:MM (Nh)"
func (s Slot) String() string {
	return fmt.Sprintf("%s (%dh)", s.Start, s.DurationHours)
}

// FormatWindow renders an exact window as "HH:MM - HH:MM"
func FormatWindow(start TimeOfDay, hours int) string {
	return fmt.Sprintf("%s - %s", start, start.AddHours(hours))
}

// IsFree reports whether a crew member holding the existing commitments can
// take [start, start+hours) on day. The window must lie within working hours,
// and no existing commitment may come within Buffer of it.
func IsFree(existing []Interval, day time.Time, start TimeOfDay, hours int) bool {
	end := start.AddHours(hours)
	if start < WorkStart || end > WorkEnd {
		return false
	}

	candidate := Interval{Start: start.On(day), End: end.On(day)}
	for _, e := range existing {
		if candidate.Conflicts(e, Buffer) {
			return false
		}
	}
	return true
}

// ListFreeSlots scans the working day in SlotStep increments and returns every
// start where a 2h and/or 4h booking would be free, ordered by start and then
// by duration. Entries overlap on purpose: this is a menu of options for
// display, not a partition of the free time.
func ListFreeSlots(existing []Interval, day time.Time) []Slot {
	slots := make([]Slot, 0)
	shortest := AllowedDurations[0]
	for start := WorkStart; start.AddHours(shortest) <= WorkEnd; start = start.Add(SlotStep) {
		for _, hours := range AllowedDurations {
			if start.AddHours(hours) > WorkEnd {
				continue
			}
			if IsFree(existing, day, start, hours) {
				slots = append(slots, Slot{Start: start, DurationHours: hours})
			}
		}
	}
	return slots
}

// FormatSlots renders slots with Slot.String
func FormatSlots(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

// IntervalsByCrewMember groups commitment intervals per crew member
func IntervalsByCrewMember(commitments []Commitment) map[uint][]Interval {
	byCrew := make(map[uint][]Interval)
	for _, c := range commitments {
		for _, id := range c.CrewMemberIDs {
			byCrew[id] = append(byCrew[id], c.Interval)
		}
	}
	return byCrew
}

// SearchWindow is the range an existing commitment must intersect to collide
// with candidate. Repositories use it to batch the conflict lookup.
func SearchWindow(candidate Interval) Interval {
	return candidate.Expand(Buffer)
}

// BusyCrewMembers marks every crew member holding a commitment that conflicts
// with candidate. The commitment whose ID equals exclude is ignored, which
// lets a booking be moved over its own previous slot; pass 0 to exclude nothing.
func BusyCrewMembers(commitments []Commitment, candidate Interval, exclude uint) map[uint]bool {
	busy := make(map[uint]bool)
	for _, c := range commitments {
		if exclude != 0 && c.ID == exclude {
			continue
		}
		if !candidate.Conflicts(c.Interval, Buffer) {
			continue
		}
		for _, id := range c.CrewMemberIDs {
			busy[id] = true
		}
	}
	return busy
}
