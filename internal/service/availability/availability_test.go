package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/actor"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

func block(day int, start, end string) PatternInput {
	return PatternInput{
		DayOfWeek:     day,
		Start:         slot.MustTimeOfDay(start),
		End:           slot.MustTimeOfDay(end),
		Type:          slot.PatternRegular,
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateBatch(t *testing.T) {
	until := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	badRange := block(1, "09:00", "12:00")
	badRange.EffectiveUntil = &until

	cases := []struct {
		name    string
		blocks  []PatternInput
		wantErr error
	}{
		{"empty batch is fine", nil, nil},
		{"single block", []PatternInput{block(1, "09:00", "12:00")}, nil},
		{
			"adjacent blocks same day",
			[]PatternInput{block(1, "09:00", "12:00"), block(1, "12:00", "15:00")},
			nil,
		},
		{
			"same hours different days",
			[]PatternInput{block(1, "09:00", "12:00"), block(2, "09:00", "12:00")},
			nil,
		},
		{
			"overlap same day",
			[]PatternInput{block(1, "09:00", "12:00"), block(1, "11:00", "14:00")},
			ErrOverlappingBlocks,
		},
		{
			"sunday alias collision",
			[]PatternInput{block(0, "09:00", "12:00"), block(7, "10:00", "11:00")},
			ErrOverlappingBlocks,
		},
		{"end before start", []PatternInput{block(1, "12:00", "09:00")}, ErrInvalidTimeRange},
		{"zero length block", []PatternInput{block(1, "09:00", "09:00")}, ErrInvalidTimeRange},
		{"day of week out of range", []PatternInput{block(8, "09:00", "12:00")}, ErrInvalidDayOfWeek},
		{"effective_until before effective_from", []PatternInput{badRange}, ErrInvalidEffectiveRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBatch(tc.blocks)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("validateBatch() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	svc := &availabilityService{}
	doctor := uuid.New()
	other := uuid.New()

	cases := []struct {
		name    string
		act     actor.Actor
		wantErr error
	}{
		{"admin manages anyone", actor.Actor{MemberID: other, Role: actor.RoleAdmin}, nil},
		{"manager manages anyone", actor.Actor{MemberID: other, Role: actor.RoleManager}, nil},
		{"doctor manages own schedule", actor.Actor{MemberID: doctor, Role: actor.RoleDoctor}, nil},
		{"doctor blocked from others", actor.Actor{MemberID: other, Role: actor.RoleDoctor}, ErrNotScheduleOwner},
		{"receptionist blocked", actor.Actor{MemberID: other, Role: actor.RoleReceptionist}, ErrNotScheduleOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.authorize(tc.act, doctor); !errors.Is(err, tc.wantErr) {
				t.Fatalf("authorize() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
