package slot

import (
	"testing"

	"github.com/google/uuid"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "10:00", "10:30", "10:00", "10:30", true},
		{"partial overlap", "10:00", "10:30", "10:15", "10:45", true},
		{"contained", "10:00", "11:00", "10:15", "10:30", true},
		{"adjacent after", "10:00", "10:30", "10:30", "11:00", false},
		{"adjacent before", "10:30", "11:00", "10:00", "10:30", false},
		{"disjoint", "09:00", "09:30", "10:00", "10:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				MustTimeOfDay(tt.aStart), MustTimeOfDay(tt.aEnd),
				MustTimeOfDay(tt.bStart), MustTimeOfDay(tt.bEnd),
			)
			if got != tt.want {
				t.Errorf("Overlaps(%s–%s, %s–%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestConflictingVisit(t *testing.T) {
	doctor := uuid.New()
	existing := visitAt(doctor, "2024-01-08", "10:00", 30)

	t.Run("overlapping request conflicts", func(t *testing.T) {
		hit := ConflictingVisit([]Visit{existing}, MustTimeOfDay("10:15"), 30, uuid.Nil)
		if hit == nil {
			t.Fatal("expected conflict for 10:15–10:45 against 10:00–10:30")
		}
		if hit.ID != existing.ID {
			t.Error("conflict does not reference the blocking visit")
		}
	})

	t.Run("adjacent request passes", func(t *testing.T) {
		if hit := ConflictingVisit([]Visit{existing}, MustTimeOfDay("10:30"), 30, uuid.Nil); hit != nil {
			t.Errorf("adjacent booking flagged as conflict with visit at %s", hit.Start)
		}
	})

	t.Run("own reservation excluded on reschedule", func(t *testing.T) {
		if hit := ConflictingVisit([]Visit{existing}, MustTimeOfDay("10:00"), 30, existing.ID); hit != nil {
			t.Error("reschedule must not conflict with the visit's own prior reservation")
		}
	})
}

func TestFirstOverlappingInput(t *testing.T) {
	block := func(dow int, start, end string) InputBlock {
		return InputBlock{DayOfWeek: dow, Start: MustTimeOfDay(start), End: MustTimeOfDay(end)}
	}

	tests := []struct {
		name    string
		blocks  []InputBlock
		overlap bool
	}{
		{
			"disjoint same day",
			[]InputBlock{block(1, "09:00", "12:00"), block(1, "13:00", "17:00")},
			false,
		},
		{
			"overlap same day",
			[]InputBlock{block(1, "09:00", "12:00"), block(1, "11:00", "14:00")},
			true,
		},
		{
			"same range different days",
			[]InputBlock{block(1, "09:00", "12:00"), block(2, "09:00", "12:00")},
			false,
		},
		{
			"sunday alias collides",
			[]InputBlock{block(0, "09:00", "12:00"), block(7, "10:00", "11:00")},
			true,
		},
		{
			"adjacent blocks",
			[]InputBlock{block(3, "09:00", "10:00"), block(3, "10:00", "11:00")},
			false,
		},
		{"single block", []InputBlock{block(1, "09:00", "12:00")}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, j := FirstOverlappingInput(tt.blocks)
			if got := i >= 0 && j >= 0; got != tt.overlap {
				t.Errorf("overlap = %v (pair %d,%d), want %v", got, i, j, tt.overlap)
			}
		})
	}
}
