package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrDuplicatePhone):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type patientBody struct {
	FullName    string  `json:"full_name"`
	Phone       *string `json:"phone"`
	FileNumber  *string `json:"file_number"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Notes       *string `json:"notes"`
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), clinicID, patient.ListRequest{
		Search:  q.Search,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	patientID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), clinicID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"patient": p})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" {
		return badRequest(c, "full_name is required")
	}

	req := patient.CreateRequest{
		FullName:   body.FullName,
		Phone:      body.Phone,
		FileNumber: body.FileNumber,
		Gender:     body.Gender,
		Notes:      body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, parsed := parseDate(*body.DateOfBirth)
		if !parsed {
			return badRequest(c, "invalid date_of_birth")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Create(c.Context(), clinicID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, fiber.Map{"patient": p})
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	patientID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FullName    *string `json:"full_name"`
		Phone       *string `json:"phone"`
		FileNumber  *string `json:"file_number"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FullName:   body.FullName,
		Phone:      body.Phone,
		FileNumber: body.FileNumber,
		Gender:     body.Gender,
		Notes:      body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, parsed := parseDate(*body.DateOfBirth)
		if !parsed {
			return badRequest(c, "invalid date_of_birth")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Update(c.Context(), clinicID, patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"patient": p})
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	patientID, valid := parseUUIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), clinicID, patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
