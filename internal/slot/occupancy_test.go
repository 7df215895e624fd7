package slot

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func visitAt(doctor uuid.UUID, day, start string, minutes int) Visit {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return Visit{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		DoctorID:        doctor,
		Date:            d,
		Start:           MustTimeOfDay(start),
		DurationMinutes: minutes,
	}
}

func TestOverlay_CountsOccupancy(t *testing.T) {
	doctor := uuid.New()
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 2)
	monday := date(2024, 1, 8)

	visits := []Visit{
		visitAt(doctor, "2024-01-08", "09:00", 30),
		visitAt(doctor, "2024-01-08", "09:30", 30),
	}

	days := Resolve([]Pattern{p}, visits, monday, monday)
	slots := allSlots(days)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}

	s := slots[0]
	if s.Booked != 2 {
		t.Errorf("booked = %d, want 2", s.Booked)
	}
	if s.Available() {
		t.Error("slot at capacity must not be available")
	}
	if len(s.Occupants) != 2 {
		t.Errorf("occupants = %d, want 2", len(s.Occupants))
	}
}

func TestOverlay_PartialOccupancyStaysAvailable(t *testing.T) {
	doctor := uuid.New()
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 2)
	monday := date(2024, 1, 8)

	days := Resolve([]Pattern{p}, []Visit{visitAt(doctor, "2024-01-08", "09:00", 30)}, monday, monday)
	s := allSlots(days)[0]

	if s.Booked != 1 {
		t.Fatalf("booked = %d, want 1", s.Booked)
	}
	if !s.Available() {
		t.Error("partially booked slot must remain available")
	}
}

func TestOverlay_OrphanedOccupantRetained(t *testing.T) {
	doctor := uuid.New()
	// Schedule changed: the only block is 09:00–10:00 but a visit exists
	// at 14:00 from before the change.
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	monday := date(2024, 1, 8)
	stranded := visitAt(doctor, "2024-01-08", "14:00", 30)

	days := Resolve([]Pattern{p}, []Visit{stranded}, monday, monday)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}

	d := days[0]
	if d.Slots[0].Booked != 0 {
		t.Errorf("unrelated slot booked = %d, want 0", d.Slots[0].Booked)
	}
	if len(d.Orphans) != 1 {
		t.Fatalf("orphans = %d, want 1 (booked visit must never be hidden)", len(d.Orphans))
	}
	if d.Orphans[0].VisitID != stranded.ID {
		t.Error("orphan does not reference the stranded visit")
	}
}

func TestOverlay_VisitLandsInContainingSlotOnly(t *testing.T) {
	doctor := uuid.New()
	morning := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	late := weeklyPattern(doctor, 1, "10:00", "11:00", 1)
	monday := date(2024, 1, 8)

	// 10:00 sits on the boundary: end is exclusive, so it belongs to the
	// second block.
	days := Resolve([]Pattern{morning, late}, []Visit{visitAt(doctor, "2024-01-08", "10:00", 30)}, monday, monday)
	slots := allSlots(days)

	if slots[0].Booked != 0 {
		t.Errorf("morning slot booked = %d, want 0", slots[0].Booked)
	}
	if slots[1].Booked != 1 {
		t.Errorf("late slot booked = %d, want 1", slots[1].Booked)
	}
}

func TestOverlay_VisitOutsideRangeIgnored(t *testing.T) {
	doctor := uuid.New()
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	monday := date(2024, 1, 8)

	days := Resolve([]Pattern{p}, []Visit{visitAt(doctor, "2024-01-15", "09:00", 30)}, monday, monday)
	d := days[0]
	if d.Slots[0].Booked != 0 || len(d.Orphans) != 0 {
		t.Error("visit outside the queried range must not affect the schedule")
	}
}

func TestOverlay_CancellationFreesCapacity(t *testing.T) {
	doctor := uuid.New()
	p := weeklyPattern(doctor, 1, "09:00", "10:00", 1)
	monday := date(2024, 1, 8)
	v := visitAt(doctor, "2024-01-08", "09:00", 30)

	before := allSlots(Resolve([]Pattern{p}, []Visit{v}, monday, monday))
	if len(before) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(before))
	}
	if before[0].Available() {
		t.Fatal("capacity-1 slot with one visit must be full")
	}

	// Cancelled visits are filtered out of the overlay input, so the day
	// resolves without the visit. The same slot must come back available
	// and no new slot record may appear.
	after := allSlots(Resolve([]Pattern{p}, nil, monday, monday))
	if len(after) != 1 {
		t.Fatalf("expected 1 slot after cancellation, got %d", len(after))
	}

	s := after[0]
	if !s.Date.Equal(before[0].Date) || s.Start != before[0].Start || s.End != before[0].End {
		t.Errorf("slot identity changed: got (%v %s-%s), want (%v %s-%s)",
			s.Date, s.Start, s.End, before[0].Date, before[0].Start, before[0].End)
	}
	if s.Booked != 0 {
		t.Errorf("booked = %d, want 0", s.Booked)
	}
	if !s.Available() {
		t.Error("cancellation must restore availability")
	}
}
