package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/handler"
	"github.com/Andyrulz/clinicmanagement-sub000/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sched := api.Group("/schedule", authRequired, clinicHeader)

	sched.Get("/doctors/:doctorID", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.Doctor)
	sched.Get("/clinic", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.Clinic)
}
