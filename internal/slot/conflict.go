package slot

import "github.com/google/uuid"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// ConflictingVisit returns the first non-excluded visit whose interval
// overlaps [start, start+duration). exclude is the id of the caller's own
// prior reservation when rescheduling; pass uuid.Nil otherwise.
func ConflictingVisit(visits []Visit, start TimeOfDay, durationMinutes int, exclude uuid.UUID) *Visit {
	end := start.Add(durationMinutes)
	for i := range visits {
		if visits[i].ID == exclude {
			continue
		}
		if Overlaps(visits[i].Start, visits[i].End(), start, end) {
			return &visits[i]
		}
	}
	return nil
}

// InputBlock is one time block of a batch availability submission, before
// persistence.
type InputBlock struct {
	DayOfWeek int
	Start     TimeOfDay
	End       TimeOfDay
}

// FirstOverlappingInput returns the indexes of the first pair of blocks in
// a single submission that intersect on the same weekday, or (-1, -1) when
// the batch is internally consistent. Duplicate blocks already persisted
// are merged by the materializer; blocks inside one submission overlapping
// each other are a user error rejected up front.
func FirstOverlappingInput(blocks []InputBlock) (int, int) {
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if normalizeWeekday(blocks[i].DayOfWeek) != normalizeWeekday(blocks[j].DayOfWeek) {
				continue
			}
			if Overlaps(blocks[i].Start, blocks[i].End, blocks[j].Start, blocks[j].End) {
				return i, j
			}
		}
	}
	return -1, -1
}

func normalizeWeekday(d int) int {
	if d == 7 {
		return 0
	}
	return d
}
