package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/booking"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

type VisitHandler struct {
	svc booking.Service
}

func NewVisitHandler(svc booking.Service) *VisitHandler {
	return &VisitHandler{svc: svc}
}

func mapVisitError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrVisitNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrOutsideAvailability):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrCapacityExhausted),
		errors.Is(err, booking.ErrVisitOverlap),
		errors.Is(err, booking.ErrVisitNumberConflict),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrAlreadyStarted),
		errors.Is(err, booking.ErrNotReschedulable):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /visits
func (h *VisitHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := booking.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		from, parsed := parseDate(q.From)
		if !parsed {
			return badRequest(c, "invalid from date")
		}
		req.From = &from
	}
	if q.To != "" {
		to, parsed := parseDate(q.To)
		if !parsed {
			return badRequest(c, "invalid to date")
		}
		req.To = &to
	}

	visits, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, fiber.Map{"visits": visits})
}

// GET /visits/:id
func (h *VisitHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	visitID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid visit id")
	}

	visit, err := h.svc.GetByID(c.Context(), clinicID, visitID)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, fiber.Map{"visit": visit})
}

// POST /visits
func (h *VisitHandler) Book(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DoctorID        string  `json:"doctor_id"`
		PatientID       string  `json:"patient_id"`
		Date            string  `json:"visit_date"`
		StartTime       string  `json:"start_time"`
		DurationMinutes int     `json:"duration_minutes"`
		ConsultationFee int64   `json:"consultation_fee"`
		ChiefComplaint  *string `json:"chief_complaint"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	date, parsed := parseDate(body.Date)
	if !parsed {
		return badRequest(c, "invalid visit_date")
	}
	start, err := slot.ParseTimeOfDay(body.StartTime)
	if err != nil {
		return badRequest(c, "invalid start_time")
	}

	visit, err := h.svc.Book(c.Context(), clinicID, act, booking.BookRequest{
		DoctorID:        doctorID,
		PatientID:       patientID,
		Date:            date,
		Start:           start,
		DurationMinutes: body.DurationMinutes,
		ConsultationFee: body.ConsultationFee,
		ChiefComplaint:  body.ChiefComplaint,
	})
	if err != nil {
		return mapVisitError(c, err)
	}

	return created(c, fiber.Map{"visit": visit})
}

// PATCH /visits/:id/reschedule
func (h *VisitHandler) Reschedule(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	visitID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid visit id")
	}

	var body struct {
		Date            string `json:"visit_date"`
		StartTime       string `json:"start_time"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	date, parsed := parseDate(body.Date)
	if !parsed {
		return badRequest(c, "invalid visit_date")
	}
	start, err := slot.ParseTimeOfDay(body.StartTime)
	if err != nil {
		return badRequest(c, "invalid start_time")
	}

	visit, err := h.svc.Reschedule(c.Context(), clinicID, act, visitID, booking.RescheduleRequest{
		Date:            date,
		Start:           start,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, fiber.Map{"visit": visit})
}

// PATCH /visits/:id/cancel
func (h *VisitHandler) Cancel(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	visitID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid visit id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), clinicID, act, visitID, booking.CancelRequest{Reason: body.Reason}); err != nil {
		return mapVisitError(c, err)
	}

	return noContent(c)
}

// PATCH /visits/:id/start
func (h *VisitHandler) Start(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	visitID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid visit id")
	}

	visit, err := h.svc.Start(c.Context(), clinicID, act, visitID)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, fiber.Map{"visit": visit})
}

// PATCH /visits/:id/complete
func (h *VisitHandler) Complete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	act, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	visitID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid visit id")
	}

	var body struct {
		ClinicalNotes *string `json:"clinical_notes"`
		MarkPaid      bool    `json:"mark_paid"`
	}
	_ = c.Bind().JSON(&body)

	visit, err := h.svc.Complete(c.Context(), clinicID, act, visitID, booking.CompleteRequest{
		ClinicalNotes: body.ClinicalNotes,
		MarkPaid:      body.MarkPaid,
	})
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, fiber.Map{"visit": visit})
}
