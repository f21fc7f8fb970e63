package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Thursday
var testDay = time.Date(2023, 11, 23, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2023, 11, 23, hour, minute, 0, 0, time.UTC)
}

func TestIntervalConflicts(t *testing.T) {
	existing := Interval{Start: at(10, 0), End: at(12, 0)}

	testCases := []struct {
		name      string
		candidate Interval
		expected  bool
	}{
		{"ends exactly at buffered start", Interval{Start: at(7, 30), End: at(9, 30)}, false},
		{"ends inside pre-booking buffer", Interval{Start: at(7, 45), End: at(9, 45)}, true},
		{"starts exactly at buffered end", Interval{Start: at(12, 30), End: at(14, 30)}, false},
		{"starts inside post-booking buffer", Interval{Start: at(12, 15), End: at(14, 15)}, true},
		{"fully inside", Interval{Start: at(10, 30), End: at(11, 30)}, true},
		{"fully covering", Interval{Start: at(9, 0), End: at(13, 0)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.candidate.Conflicts(existing, Buffer))
		})
	}
}

func TestIntervalOverlapsIsHalfOpen(t *testing.T) {
	a := Interval{Start: at(8, 0), End: at(10, 0)}
	b := Interval{Start: at(10, 0), End: at(12, 0)}

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
	assert.True(t, a.Expand(time.Minute).Overlaps(b))
	assert.Equal(t, 2*time.Hour, a.Duration())
}

// For every existing [s,e) and candidate [s2,e2) inside working hours, IsFree
// must be false exactly when s2 < e+30m and e2 > s-30m.
func TestIsFreeBufferSymmetry(t *testing.T) {
	for existingStart := WorkStart; existingStart.AddHours(2) <= WorkEnd; existingStart = existingStart.Add(15 * time.Minute) {
		existing := Interval{Start: existingStart.On(testDay), End: existingStart.AddHours(2).On(testDay)}
		for _, hours := range AllowedDurations {
			for start := WorkStart; start.AddHours(hours) <= WorkEnd; start = start.Add(15 * time.Minute) {
				s2 := start.On(testDay)
				e2 := start.AddHours(hours).On(testDay)
				expectedConflict := s2.Before(existing.End.Add(Buffer)) && e2.After(existing.Start.Add(-Buffer))

				free := IsFree([]Interval{existing}, testDay, start, hours)
				if free == expectedConflict {
					t.Fatalf("existing %s-%s, candidate %s (%dh): free=%v, expected conflict=%v",
						existingStart, existingStart.AddHours(2), start, hours, free, expectedConflict)
				}
			}
		}
	}
}

func TestIsFreeWorkHoursBound(t *testing.T) {
	testCases := []struct {
		name  string
		start TimeOfDay
		hours int
	}{
		{"starts before opening", NewTimeOfDay(7, 30), 2},
		{"starts at midnight", NewTimeOfDay(0, 0), 2},
		{"ends after closing", NewTimeOfDay(20, 30), 2},
		{"four hours past closing", NewTimeOfDay(21, 0), 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsFree(nil, testDay, tc.start, tc.hours))
		})
	}

	t.Run("window touching both bounds is free", func(t *testing.T) {
		assert.True(t, IsFree(nil, testDay, WorkStart, 2))
		assert.True(t, IsFree(nil, testDay, NewTimeOfDay(20, 0), 2))
		assert.True(t, IsFree(nil, testDay, NewTimeOfDay(18, 0), 4))
	})
}

func TestIsFreeBufferedOverlap(t *testing.T) {
	existing := []Interval{{Start: at(9, 30), End: at(11, 30)}}

	// buffered window [09:00,12:00) overlaps [10:00,12:00)
	assert.False(t, IsFree(existing, testDay, NewTimeOfDay(10, 0), 2))
	assert.True(t, IsFree(existing, testDay, NewTimeOfDay(12, 0), 2))
	assert.False(t, IsFree(existing, testDay, NewTimeOfDay(11, 45), 2))
}

func TestListFreeSlotsEmptyDay(t *testing.T) {
	slots := ListFreeSlots(nil, testDay)

	// 2h starts 08:00..20:00 and 4h starts 08:00..18:00 in 30 minute steps
	require.Len(t, slots, 25+21)
	assert.Equal(t, "08:00 (2h)", slots[0].String())
	assert.Equal(t, "08:00 (4h)", slots[1].String())
	assert.Equal(t, "08:30 (2h)", slots[2].String())
	assert.Equal(t, "20:00 (2h)", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		ordered := prev.Start < cur.Start || (prev.Start == cur.Start && prev.DurationHours < cur.DurationHours)
		assert.True(t, ordered, "slot %s must come before %s", prev, cur)
	}
}

func TestListFreeSlotsAroundCommitment(t *testing.T) {
	existing := []Interval{{Start: at(10, 0), End: at(12, 0)}}

	slots := ListFreeSlots(existing, testDay)

	require.NotEmpty(t, slots)
	assert.Equal(t, "12:30 (2h)", slots[0].String())
	assert.Equal(t, "12:30 (4h)", slots[1].String())
	for _, s := range slots {
		assert.True(t, IsFree(existing, testDay, s.Start, s.DurationHours))
		assert.GreaterOrEqual(t, int(s.Start), int(NewTimeOfDay(12, 30)))
	}
	assert.Len(t, slots, 16+12)
}

func TestListFreeSlotsFullyBooked(t *testing.T) {
	existing := []Interval{{Start: at(8, 0), End: at(22, 0)}}

	assert.Empty(t, ListFreeSlots(existing, testDay))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "10:00 - 12:00", FormatWindow(NewTimeOfDay(10, 0), 2))
	assert.Equal(t, "18:00 - 22:00", FormatWindow(NewTimeOfDay(18, 0), 4))
	assert.Equal(t, []string{"08:00 (2h)", "09:30 (4h)"}, FormatSlots([]Slot{
		{Start: NewTimeOfDay(8, 0), DurationHours: 2},
		{Start: NewTimeOfDay(9, 30), DurationHours: 4},
	}))
}

func TestBusyCrewMembers(t *testing.T) {
	commitments := []Commitment{
		{ID: 1, Interval: Interval{Start: at(9, 0), End: at(13, 0)}, CrewMemberIDs: []uint{1, 2}},
		{ID: 2, Interval: Interval{Start: at(16, 0), End: at(18, 0)}, CrewMemberIDs: []uint{3}},
	}
	candidate := NewInterval(at(10, 0), 2*time.Hour)

	t.Run("marks crew of conflicting commitments only", func(t *testing.T) {
		busy := BusyCrewMembers(commitments, candidate, 0)
		assert.Equal(t, map[uint]bool{1: true, 2: true}, busy)
	})

	t.Run("excluded commitment does not block", func(t *testing.T) {
		busy := BusyCrewMembers(commitments, candidate, 1)
		assert.Empty(t, busy)
	})

	t.Run("search window covers the buffer", func(t *testing.T) {
		window := SearchWindow(candidate)
		assert.Equal(t, at(9, 30), window.Start)
		assert.Equal(t, at(12, 30), window.End)
	})
}

func TestIntervalsByCrewMember(t *testing.T) {
	first := Interval{Start: at(9, 0), End: at(11, 0)}
	second := Interval{Start: at(14, 0), End: at(16, 0)}
	byCrew := IntervalsByCrewMember([]Commitment{
		{ID: 1, Interval: first, CrewMemberIDs: []uint{1, 2}},
		{ID: 2, Interval: second, CrewMemberIDs: []uint{2}},
	})

	assert.Equal(t, []Interval{first}, byCrew[1])
	assert.Equal(t, []Interval{first, second}, byCrew[2])
	assert.Empty(t, byCrew[3])
}
