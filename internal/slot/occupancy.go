package slot

import "time"

// Overlay cross-references booked visits against materialized day
// schedules. A visit occupies the slot of the same date whose [Start, End)
// contains its start time; its occupant entry is appended and the slot's
// booked count incremented. Visits that match no slot (the schedule changed
// after they were booked) are retained as orphans on their day.
//
// Cancelled visits must be filtered out by the caller before overlaying.
func Overlay(days []DaySchedule, visits []Visit) []DaySchedule {
	byDate := make(map[int64]*DaySchedule, len(days))
	for i := range days {
		byDate[days[i].Date.Unix()] = &days[i]
	}

	for _, v := range visits {
		occ := Occupant{
			VisitID:         v.ID,
			PatientID:       v.PatientID,
			Start:           v.Start,
			DurationMinutes: v.DurationMinutes,
		}

		day, ok := byDate[DateOf(v.Date).Unix()]
		if !ok {
			// Visit outside the queried range; nothing to overlay.
			continue
		}

		placed := false
		for i := range day.Slots {
			if day.Slots[i].Contains(v.Start) {
				day.Slots[i].Booked++
				day.Slots[i].Occupants = append(day.Slots[i].Occupants, occ)
				placed = true
				break
			}
		}
		if !placed {
			day.Orphans = append(day.Orphans, occ)
		}
	}

	return days
}

// Resolve is the full pipeline: materialize patterns over [from, to] and
// overlay the given visits.
func Resolve(patterns []Pattern, visits []Visit, from, to time.Time) []DaySchedule {
	return Overlay(Materialize(patterns, from, to), visits)
}
