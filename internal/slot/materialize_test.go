package slot

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklyPattern(doctor uuid.UUID, dow int, start, end string, capacity int) Pattern {
	return Pattern{
		ID:            uuid.New(),
		DoctorID:      doctor,
		DayOfWeek:     dow,
		Start:         MustTimeOfDay(start),
		End:           MustTimeOfDay(end),
		Capacity:      capacity,
		Type:          PatternRegular,
		EffectiveFrom: date(2024, 1, 1),
		Active:        true,
	}
}

func allSlots(days []DaySchedule) []Slot {
	var out []Slot
	for _, d := range days {
		out = append(out, d.Slots...)
	}
	return out
}

func TestMaterialize_WeekdayRoundTrip(t *testing.T) {
	doctor := uuid.New()
	// Monday 09:00–12:00, effective from 2024-01-01, open-ended.
	p := weeklyPattern(doctor, 1, "09:00", "12:00", 3)

	days := Materialize([]Pattern{p}, date(2024, 1, 1), date(2024, 1, 31))

	for _, d := range days {
		if d.Date.Weekday() == time.Monday {
			if len(d.Slots) != 1 {
				t.Fatalf("%s: expected 1 slot on Monday, got %d", d.Date.Format("2006-01-02"), len(d.Slots))
			}
			s := d.Slots[0]
			if s.Start != MustTimeOfDay("09:00") || s.End != MustTimeOfDay("12:00") {
				t.Errorf("%s: slot range = %s–%s", d.Date.Format("2006-01-02"), s.Start, s.End)
			}
		} else if len(d.Slots) != 0 {
			t.Errorf("%s (%s): expected no slots, got %d", d.Date.Format("2006-01-02"), d.Date.Weekday(), len(d.Slots))
		}
	}

	// January 2024 has five Mondays.
	mondays := 0
	for _, s := range allSlots(days) {
		if s.Date.Weekday() == time.Monday {
			mondays++
		}
	}
	if mondays != 5 {
		t.Errorf("expected 5 Monday slots, got %d", mondays)
	}
}

func TestMaterialize_MergesDuplicatesAdditively(t *testing.T) {
	doctor := uuid.New()
	// Two identical Monday submissions, a user-error duplicate.
	p1 := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	p2 := weeklyPattern(doctor, 1, "09:00", "10:00", 1)

	days := Materialize([]Pattern{p1, p2}, date(2024, 1, 8), date(2024, 1, 8)) // a Monday
	slots := allSlots(days)

	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 merged slot, got %d", len(slots))
	}
	if slots[0].Capacity != 2 {
		t.Errorf("aggregate capacity = %d, want 2", slots[0].Capacity)
	}
	if len(slots[0].PatternIDs) != 2 {
		t.Errorf("merged slot references %d patterns, want 2", len(slots[0].PatternIDs))
	}
}

func TestMaterialize_NoDoubleEmission(t *testing.T) {
	doctor := uuid.New()
	patterns := []Pattern{
		weeklyPattern(doctor, 1, "09:00", "10:00", 1),
		weeklyPattern(doctor, 1, "09:00", "10:00", 2),
		weeklyPattern(doctor, 1, "10:00", "11:00", 1),
		weeklyPattern(doctor, 3, "14:00", "16:00", 1),
	}

	days := Materialize(patterns, date(2024, 1, 1), date(2024, 2, 29))

	seen := map[string]bool{}
	for _, s := range allSlots(days) {
		key := s.Date.Format("2006-01-02") + s.Start.String() + s.End.String()
		if seen[key] {
			t.Fatalf("duplicate slot emitted: %s %s–%s", s.Date.Format("2006-01-02"), s.Start, s.End)
		}
		seen[key] = true
	}
}

func TestMaterialize_EffectiveRangeBoundary(t *testing.T) {
	doctor := uuid.New()
	until := date(2024, 3, 31) // a Sunday
	p := weeklyPattern(doctor, 0, "10:00", "11:00", 1)
	p.EffectiveUntil = &until

	tests := []struct {
		name  string
		day   time.Time
		slots int
	}{
		{"on effective_until", date(2024, 3, 31), 1},
		{"after effective_until", date(2024, 4, 7), 0},
		{"before effective_from", date(2023, 12, 31), 0},
		{"on effective_from weekday mismatch", date(2024, 1, 1), 0},
		{"first covered sunday", date(2024, 1, 7), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Materialize([]Pattern{p}, tt.day, tt.day)
			if got := len(allSlots(days)); got != tt.slots {
				t.Errorf("slots on %s = %d, want %d", tt.day.Format("2006-01-02"), got, tt.slots)
			}
		})
	}
}

func TestMaterialize_SundayAcceptsBothConventions(t *testing.T) {
	doctor := uuid.New()
	sunday := date(2024, 1, 7)

	for _, dow := range []int{0, 7} {
		p := weeklyPattern(doctor, dow, "08:00", "09:00", 1)
		days := Materialize([]Pattern{p}, sunday, sunday)
		if len(allSlots(days)) != 1 {
			t.Errorf("day_of_week=%d: expected a Sunday slot", dow)
		}
	}
}

func TestMaterialize_BreakBlocksAreMarkersNotOffers(t *testing.T) {
	doctor := uuid.New()
	work := weeklyPattern(doctor, 1, "09:00", "12:00", 2)
	lunch := weeklyPattern(doctor, 1, "12:00", "13:00", 0)
	lunch.Type = PatternBreak

	days := Materialize([]Pattern{work, lunch}, date(2024, 1, 8), date(2024, 1, 8))
	slots := allSlots(days)
	if len(slots) != 2 {
		t.Fatalf("expected work + break slots, got %d", len(slots))
	}

	var breakSlot *Slot
	for i := range slots {
		if slots[i].Type == PatternBreak {
			breakSlot = &slots[i]
		}
	}
	if breakSlot == nil {
		t.Fatal("break block was suppressed instead of emitted as a marker")
	}
	if breakSlot.Available() {
		t.Error("break block must never be offered for booking")
	}
}

func TestMaterialize_ClosedBlockWinsOverDuplicateBookable(t *testing.T) {
	doctor := uuid.New()
	open := weeklyPattern(doctor, 2, "09:00", "10:00", 1)
	closed := weeklyPattern(doctor, 2, "09:00", "10:00", 0)
	closed.Type = PatternUnavailable

	days := Materialize([]Pattern{open, closed}, date(2024, 1, 9), date(2024, 1, 9))
	slots := allSlots(days)
	if len(slots) != 1 {
		t.Fatalf("expected 1 merged slot, got %d", len(slots))
	}
	if slots[0].Type != PatternUnavailable {
		t.Errorf("merged slot type = %s, want unavailable", slots[0].Type)
	}
	if slots[0].Available() {
		t.Error("slot marked unavailable must not be bookable")
	}
}

func TestMaterialize_InactivePatternIgnored(t *testing.T) {
	doctor := uuid.New()
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	p.Active = false

	days := Materialize([]Pattern{p}, date(2024, 1, 8), date(2024, 1, 8))
	if len(allSlots(days)) != 0 {
		t.Error("inactive pattern must not materialize")
	}
}

func TestMaterialize_EmptyScheduleEmitsDays(t *testing.T) {
	days := Materialize(nil, date(2024, 1, 1), date(2024, 1, 3))
	if len(days) != 3 {
		t.Fatalf("expected 3 day entries, got %d", len(days))
	}
	for _, d := range days {
		if len(d.Slots) != 0 {
			t.Errorf("%s: expected zero slots", d.Date.Format("2006-01-02"))
		}
	}
}

func TestCoveringPatterns(t *testing.T) {
	doctor := uuid.New()
	monday := date(2024, 1, 8)
	work := weeklyPattern(doctor, 1, "09:00", "12:00", 2)
	lunch := weeklyPattern(doctor, 1, "12:00", "13:00", 0)
	lunch.Type = PatternBreak

	patterns := []Pattern{work, lunch}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"inside block", "09:30", "10:00", 1},
		{"exact block", "09:00", "12:00", 1},
		{"spills past end", "11:30", "12:30", 0},
		{"inside break only", "12:00", "12:30", 0},
		{"before opening", "08:00", "08:30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoveringPatterns(patterns, monday, MustTimeOfDay(tt.start), MustTimeOfDay(tt.end))
			if len(got) != tt.want {
				t.Errorf("covering patterns = %d, want %d", len(got), tt.want)
			}
		})
	}
}
