package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/config"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateRange(t *testing.T) {
	svc := &scheduleService{cfg: config.SchedulingConfig{MaxRangeDays: 31}}

	cases := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{"single day", "2024-01-08", "2024-01-08", nil},
		{"full month", "2024-01-01", "2024-01-31", nil},
		{"reversed", "2024-01-08", "2024-01-07", ErrInvalidRange},
		{"too wide", "2024-01-01", "2024-02-01", ErrRangeTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.validateRange(day(tc.from), day(tc.to))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("validateRange(%s, %s) = %v, want %v", tc.from, tc.to, err, tc.wantErr)
			}
		})
	}
}

func TestValidateRangeDefaultCap(t *testing.T) {
	svc := &scheduleService{}
	if err := svc.validateRange(day("2024-01-01"), day("2024-03-31")); err != nil {
		t.Fatalf("91-day range under default cap: %v", err)
	}
	if err := svc.validateRange(day("2024-01-01"), day("2024-06-30")); !errors.Is(err, ErrRangeTooLarge) {
		t.Fatalf("half-year range should exceed default cap, got %v", err)
	}
}

func TestScheduleKeyIsStable(t *testing.T) {
	clinic := uuid.MustParse("0191e8a0-0000-7000-8000-000000000001")
	doctor := uuid.MustParse("0191e8a0-0000-7000-8000-000000000002")

	got := scheduleKey(clinic, doctor, day("2024-01-08"), day("2024-01-14"))
	want := "schedule:0191e8a0-0000-7000-8000-000000000001:0191e8a0-0000-7000-8000-000000000002:2024-01-08:2024-01-14"
	if got != want {
		t.Fatalf("scheduleKey = %q, want %q", got, want)
	}

	if !keyMatchesDoctorPattern(got, clinic, doctor) {
		t.Fatal("invalidation pattern does not cover the read key")
	}
}

// keyMatchesDoctorPattern mirrors the glob used by cache.invalidate.
func keyMatchesDoctorPattern(key string, clinic, doctor uuid.UUID) bool {
	prefix := "schedule:" + clinic.String() + ":" + doctor.String() + ":"
	return len(key) > len(prefix) && key[:len(prefix)] == prefix
}
