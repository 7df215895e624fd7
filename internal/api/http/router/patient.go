package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/handler"
	"github.com/Andyrulz/clinicmanagement-sub000/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, clinicHeader)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Get("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)
	patients.Patch("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	patients.Delete("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)
}
