package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/handler"
	"github.com/Andyrulz/clinicmanagement-sub000/pkg/authorize"
)

func (r *Router) registerVisitRoutes(
	api fiber.Router,
	vh *handler.VisitHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	visits := api.Group("/visits", authRequired, clinicHeader)

	visits.Get("/", requirePerm(authorize.ResourceVisit, authorize.ActionList), vh.List)
	visits.Get("/:id", requirePerm(authorize.ResourceVisit, authorize.ActionRead), vh.Get)
	visits.Post("/", requirePerm(authorize.ResourceVisit, authorize.ActionExecute), vh.Book)

	visits.Patch("/:id/reschedule", requirePerm(authorize.ResourceVisit, authorize.ActionExecute), vh.Reschedule)
	visits.Patch("/:id/cancel", requirePerm(authorize.ResourceVisit, authorize.ActionExecute), vh.Cancel)
	visits.Patch("/:id/start", requirePerm(authorize.ResourceVisit, authorize.ActionExecute), vh.Start)
	visits.Patch("/:id/complete", requirePerm(authorize.ResourceVisit, authorize.ActionExecute), vh.Complete)
}
