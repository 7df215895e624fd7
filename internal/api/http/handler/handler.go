package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/actor"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/middleware"
)

// ---------------------------------------------------------------------------
// Locals helpers
// ---------------------------------------------------------------------------

func clinicIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsClinicID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func memberIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsMemberID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

// actorFromLocals assembles the acting clinic member from the tenant
// middleware's Locals. Fails when the request did not pass ClinicHeader.
func actorFromLocals(c fiber.Ctx) (actor.Actor, bool) {
	memberID, ok := memberIDFromLocals(c)
	if !ok {
		return actor.Actor{}, false
	}
	userID, ok := middleware.UserIDFromFiber(c)
	if !ok {
		return actor.Actor{}, false
	}
	role, hasKey := c.Locals(middleware.LocalsMemberRole).(string)
	if !hasKey || role == "" {
		return actor.Actor{}, false
	}
	return actor.Actor{
		MemberID: memberID,
		UserID:   userID,
		Role:     actor.Role(role),
	}, true
}

// ---------------------------------------------------------------------------
// Param / query parsing
// ---------------------------------------------------------------------------

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// parseDate accepts calendar dates as "2006-01-02".
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, s)
	return t, err == nil
}
