package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/handler"
	"github.com/Andyrulz/clinicmanagement-sub000/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := api.Group("/doctors", authRequired, clinicHeader)
	doctors.Get("/:doctorID/availability", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionRead), ah.List)
	doctors.Post("/:doctorID/availability", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionCreate), ah.Create)

	patterns := api.Group("/availability", authRequired, clinicHeader)
	patterns.Get("/:id", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionRead), ah.Get)
	patterns.Patch("/:id", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionUpdate), ah.Update)
	patterns.Patch("/:id/deactivate", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionUpdate), ah.Deactivate)
	patterns.Delete("/:id", requirePerm(authorize.ResourceAvailabilityPattern, authorize.ActionDelete), ah.Delete)
}
