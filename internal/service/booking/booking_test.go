package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

func mondayPattern(doctor uuid.UUID, start, end string, capacity int) slot.Pattern {
	return slot.Pattern{
		ID:            uuid.New(),
		DoctorID:      doctor,
		DayOfWeek:     1,
		Start:         slot.MustTimeOfDay(start),
		End:           slot.MustTimeOfDay(end),
		Capacity:      capacity,
		Type:          slot.PatternRegular,
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

func dayVisit(doctor uuid.UUID, start string, minutes int) slot.Visit {
	return slot.Visit{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		DoctorID:        doctor,
		Date:            time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Start:           slot.MustTimeOfDay(start),
		DurationMinutes: minutes,
	}
}

func TestChooseSlot_RejectsDoctorOverlap(t *testing.T) {
	doctor := uuid.New()
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	// Duplicate blocks merge to one slot with capacity 2, so raw capacity
	// alone would admit the second booking.
	patterns := []slot.Pattern{
		mondayPattern(doctor, "09:00", "10:00", 1),
		mondayPattern(doctor, "09:00", "10:00", 1),
	}
	visits := []slot.Visit{dayVisit(doctor, "09:00", 30)}

	_, err := chooseSlot(patterns, visits, monday, slot.MustTimeOfDay("09:15"), 30)
	if !errors.Is(err, ErrVisitOverlap) {
		t.Fatalf("overlapping booking: err = %v, want ErrVisitOverlap", err)
	}
}

func TestChooseSlot_AdjacentVisitAccepted(t *testing.T) {
	doctor := uuid.New()
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	patterns := []slot.Pattern{
		mondayPattern(doctor, "09:00", "10:00", 1),
		mondayPattern(doctor, "09:00", "10:00", 1),
	}
	visits := []slot.Visit{dayVisit(doctor, "09:00", 30)}

	s, err := chooseSlot(patterns, visits, monday, slot.MustTimeOfDay("09:30"), 30)
	if err != nil {
		t.Fatalf("adjacent booking: err = %v, want nil", err)
	}
	if s.Capacity != 2 {
		t.Errorf("merged capacity = %d, want 2", s.Capacity)
	}
}

func TestChooseSlot_CapacityExhausted(t *testing.T) {
	doctor := uuid.New()
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	patterns := []slot.Pattern{mondayPattern(doctor, "09:00", "10:00", 1)}
	// The existing visit does not overlap the request, so the slot's
	// spent capacity is the only thing blocking it.
	visits := []slot.Visit{dayVisit(doctor, "09:00", 30)}

	_, err := chooseSlot(patterns, visits, monday, slot.MustTimeOfDay("09:30"), 30)
	if !errors.Is(err, ErrCapacityExhausted) {
		t.Fatalf("full slot: err = %v, want ErrCapacityExhausted", err)
	}
}

func TestChooseSlot_OutsideAvailability(t *testing.T) {
	doctor := uuid.New()
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	patterns := []slot.Pattern{mondayPattern(doctor, "09:00", "10:00", 1)}

	_, err := chooseSlot(patterns, nil, monday, slot.MustTimeOfDay("14:00"), 30)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("uncovered time: err = %v, want ErrOutsideAvailability", err)
	}

	// Spilling past the block's end is not a capacity problem either.
	_, err = chooseSlot(patterns, nil, monday, slot.MustTimeOfDay("09:45"), 30)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("spilling interval: err = %v, want ErrOutsideAvailability", err)
	}
}

func TestChooseSlot_BreakBlockNotBookable(t *testing.T) {
	doctor := uuid.New()
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	lunch := mondayPattern(doctor, "12:00", "13:00", 1)
	lunch.Type = slot.PatternBreak

	_, err := chooseSlot([]slot.Pattern{lunch}, nil, monday, slot.MustTimeOfDay("12:00"), 30)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("break block: err = %v, want ErrOutsideAvailability", err)
	}
}
