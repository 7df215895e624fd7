package slot

import (
	"sort"
	"time"
)

type slotKey struct {
	start TimeOfDay
	end   TimeOfDay
}

// Materialize expands weekly patterns into concrete per-day slots for every
// date in [from, to] (inclusive). Patterns sharing the exact
// (doctor, date, start, end) tuple are capacity-additive duplicates and
// collapse into one slot; the output never contains two slots with the same
// (date, start, end). Days with no applicable pattern yield a DaySchedule
// with zero slots rather than being skipped, so callers can tell "nothing
// configured" apart from "fully booked".
func Materialize(patterns []Pattern, from, to time.Time) []DaySchedule {
	start := DateOf(from)
	end := DateOf(to)

	var days []DaySchedule
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, materializeDay(patterns, d))
	}
	return days
}

func materializeDay(patterns []Pattern, date time.Time) DaySchedule {
	groups := make(map[slotKey]*Slot)

	for _, p := range patterns {
		if !p.AppliesOn(date) {
			continue
		}
		key := slotKey{start: p.Start, end: p.End}
		s, ok := groups[key]
		if !ok {
			s = &Slot{
				DoctorID: p.DoctorID,
				Date:     date,
				Start:    p.Start,
				End:      p.End,
				Type:     p.Type,
			}
			groups[key] = s
		}
		s.Capacity += p.Capacity
		s.PatternIDs = append(s.PatternIDs, p.ID)

		// A closed block wins over a bookable one for the same range:
		// the calendar must not offer a span the doctor marked off.
		if !p.Type.Bookable() {
			s.Type = p.Type
		}
	}

	slots := make([]Slot, 0, len(groups))
	for _, s := range groups {
		slots = append(slots, *s)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].End < slots[j].End
	})

	return DaySchedule{Date: date, Slots: slots}
}

// CoveringPatterns returns the active bookable patterns whose block fully
// contains [start, end) on the given date. The booking path uses this to
// decide whether a requested interval is inside offered availability and
// what its aggregate capacity is.
func CoveringPatterns(patterns []Pattern, date time.Time, start, end TimeOfDay) []Pattern {
	var out []Pattern
	for _, p := range patterns {
		if !p.AppliesOn(date) || !p.Type.Bookable() {
			continue
		}
		if p.Start <= start && end <= p.End {
			out = append(out, p)
		}
	}
	return out
}

// AggregateCapacity sums max-patients capacity across merged patterns.
func AggregateCapacity(patterns []Pattern) int {
	total := 0
	for _, p := range patterns {
		total += p.Capacity
	}
	return total
}
