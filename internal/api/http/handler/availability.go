package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/availability"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrPatternNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrInvalidTimeRange),
		errors.Is(err, availability.ErrInvalidEffectiveRange),
		errors.Is(err, availability.ErrInvalidDayOfWeek):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrOverlappingBlocks):
		return conflict(c, err.Error())
	case errors.Is(err, availability.ErrPatternInUse):
		return conflict(c, err.Error())
	case errors.Is(err, availability.ErrNotScheduleOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

type patternBlockBody struct {
	DayOfWeek       int     `json:"day_of_week"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"slot_duration_minutes"`
	BufferMinutes   int     `json:"buffer_minutes"`
	MaxPatients     int     `json:"max_patients_per_slot"`
	Type            string  `json:"pattern_type"`
	EffectiveFrom   string  `json:"effective_from"`
	EffectiveUntil  *string `json:"effective_until"`
	Notes           *string `json:"notes"`
}

func (b patternBlockBody) toInput() (availability.PatternInput, error) {
	start, err := slot.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return availability.PatternInput{}, errors.New("invalid start_time")
	}
	end, err := slot.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return availability.PatternInput{}, errors.New("invalid end_time")
	}
	in := availability.PatternInput{
		DayOfWeek:       b.DayOfWeek,
		Start:           start,
		End:             end,
		DurationMinutes: b.DurationMinutes,
		BufferMinutes:   b.BufferMinutes,
		MaxPatients:     b.MaxPatients,
		Type:            slot.PatternRegular,
		Notes:           b.Notes,
	}
	if b.Type != "" {
		in.Type = slot.PatternType(b.Type)
		if !in.Type.Valid() {
			return availability.PatternInput{}, errors.New("invalid pattern_type")
		}
	}
	if b.EffectiveFrom != "" {
		from, parsed := parseDate(b.EffectiveFrom)
		if !parsed {
			return availability.PatternInput{}, errors.New("invalid effective_from")
		}
		in.EffectiveFrom = from
	}
	if b.EffectiveUntil != nil {
		until, parsed := parseDate(*b.EffectiveUntil)
		if !parsed {
			return availability.PatternInput{}, errors.New("invalid effective_until")
		}
		in.EffectiveUntil = &until
	}
	return in, nil
}

// POST /doctors/:doctorID/availability
func (h *AvailabilityHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	doctorID, valid := parseUUIDParam(c, "doctorID")
	if !valid {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Blocks []patternBlockBody `json:"blocks"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Blocks) == 0 {
		return badRequest(c, "blocks must not be empty")
	}

	blocks := make([]availability.PatternInput, 0, len(body.Blocks))
	for _, b := range body.Blocks {
		in, err := b.toInput()
		if err != nil {
			return badRequest(c, err.Error())
		}
		blocks = append(blocks, in)
	}

	patterns, err := h.svc.Create(c.Context(), clinicID, act, doctorID, blocks)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return created(c, fiber.Map{"patterns": patterns})
}

// PATCH /availability/:id
func (h *AvailabilityHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	patternID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid pattern id")
	}

	var body struct {
		StartTime       *string `json:"start_time"`
		EndTime         *string `json:"end_time"`
		DurationMinutes *int    `json:"slot_duration_minutes"`
		BufferMinutes   *int    `json:"buffer_minutes"`
		MaxPatients     *int    `json:"max_patients_per_slot"`
		Type            *string `json:"pattern_type"`
		EffectiveUntil  *string `json:"effective_until"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := availability.UpdatePatternRequest{
		DurationMinutes: body.DurationMinutes,
		BufferMinutes:   body.BufferMinutes,
		MaxPatients:     body.MaxPatients,
		Notes:           body.Notes,
	}
	if body.StartTime != nil {
		t, err := slot.ParseTimeOfDay(*body.StartTime)
		if err != nil {
			return badRequest(c, "invalid start_time")
		}
		req.Start = &t
	}
	if body.EndTime != nil {
		t, err := slot.ParseTimeOfDay(*body.EndTime)
		if err != nil {
			return badRequest(c, "invalid end_time")
		}
		req.End = &t
	}
	if body.Type != nil {
		pt := slot.PatternType(*body.Type)
		if !pt.Valid() {
			return badRequest(c, "invalid pattern_type")
		}
		req.Type = &pt
	}
	if body.EffectiveUntil != nil {
		until, parsed := parseDate(*body.EffectiveUntil)
		if !parsed {
			return badRequest(c, "invalid effective_until")
		}
		req.EffectiveUntil = &until
	}

	pattern, err := h.svc.Update(c.Context(), clinicID, act, patternID, req)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, fiber.Map{"pattern": pattern})
}

// PATCH /availability/:id/deactivate
func (h *AvailabilityHandler) Deactivate(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	patternID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid pattern id")
	}

	pattern, err := h.svc.Deactivate(c.Context(), clinicID, act, patternID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, fiber.Map{"pattern": pattern})
}

// DELETE /availability/:id
func (h *AvailabilityHandler) Delete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	patternID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid pattern id")
	}

	if err := h.svc.Delete(c.Context(), clinicID, act, patternID); err != nil {
		return mapAvailabilityError(c, err)
	}

	return noContent(c)
}

// GET /doctors/:doctorID/availability
func (h *AvailabilityHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	doctorID, valid := parseUUIDParam(c, "doctorID")
	if !valid {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		DayOfWeek  *int `query:"day_of_week"`
		ActiveOnly bool `query:"active_only"`
	}
	_ = c.Bind().Query(&q)

	patterns, err := h.svc.List(c.Context(), clinicID, availability.ListFilter{
		DoctorID:   doctorID,
		DayOfWeek:  q.DayOfWeek,
		ActiveOnly: q.ActiveOnly,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, fiber.Map{"patterns": patterns})
}

// GET /availability/:id
func (h *AvailabilityHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	patternID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid pattern id")
	}

	pattern, err := h.svc.Get(c.Context(), clinicID, patternID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, fiber.Map{"pattern": pattern})
}
