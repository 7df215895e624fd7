package handler

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/booking"
)

func TestMapVisitErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"visit not found", booking.ErrVisitNotFound, fiber.StatusNotFound},
		{"overlap", booking.ErrVisitOverlap, fiber.StatusConflict},
		{"wrapped overlap", fmt.Errorf("%w: doctor is booked 09:00-09:30", booking.ErrVisitOverlap), fiber.StatusConflict},
		{"capacity exhausted", booking.ErrCapacityExhausted, fiber.StatusConflict},
		{"visit number collision", booking.ErrVisitNumberConflict, fiber.StatusConflict},
		{"outside availability", booking.ErrOutsideAvailability, fiber.StatusBadRequest},
		{"forbidden", booking.ErrForbidden, fiber.StatusForbidden},
		{"already cancelled", booking.ErrAlreadyCancelled, fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error { return mapVisitError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("test request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestPatternBlockValidation(t *testing.T) {
	base := patternBlockBody{
		DayOfWeek:     1,
		StartTime:     "09:00",
		EndTime:       "12:00",
		MaxPatients:   2,
		EffectiveFrom: "2024-01-01",
	}

	t.Run("known types accepted", func(t *testing.T) {
		for _, pt := range []string{"regular", "special", "break", "unavailable"} {
			b := base
			b.Type = pt
			if _, err := b.toInput(); err != nil {
				t.Errorf("pattern_type %q: unexpected error %v", pt, err)
			}
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		b := base
		b.Type = "vacation"
		if _, err := b.toInput(); err == nil {
			t.Error("unknown pattern_type must be rejected before persistence")
		}
	})

	t.Run("malformed start time rejected", func(t *testing.T) {
		b := base
		b.StartTime = "9am"
		if _, err := b.toInput(); err == nil {
			t.Error("malformed start_time must be rejected")
		}
	})

	t.Run("malformed effective date rejected", func(t *testing.T) {
		b := base
		b.EffectiveFrom = "01/01/2024"
		if _, err := b.toInput(); err == nil {
			t.Error("malformed effective_from must be rejected")
		}
	})
}
