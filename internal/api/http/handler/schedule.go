package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/schedule"
)

type ScheduleHandler struct {
	svc schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrRangeTooLarge):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /schedule/doctors/:doctorID?from=2026-01-05&to=2026-01-11
func (h *ScheduleHandler) Doctor(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	doctorID, valid := parseUUIDParam(c, "doctorID")
	if !valid {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from, parsed := parseDate(q.From)
	if !parsed {
		return badRequest(c, "invalid from date")
	}
	to, parsed := parseDate(q.To)
	if !parsed {
		return badRequest(c, "invalid to date")
	}

	days, err := h.svc.Doctor(c.Context(), clinicID, doctorID, from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{"days": days})
}

// GET /schedule/clinic?date=2026-01-05
func (h *ScheduleHandler) Clinic(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Date string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	date, parsed := parseDate(q.Date)
	if !parsed {
		return badRequest(c, "invalid date")
	}

	doctors, err := h.svc.Clinic(c.Context(), clinicID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{"date": q.Date, "doctors": doctors})
}
