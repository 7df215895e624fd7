package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	// HeaderUserID carries the authenticated user identity resolved by
	// the API gateway in front of this service. The service trusts it;
	// the gateway strips any client-supplied value.
	HeaderUserID = "X-User-ID"

	LocalsUserID = "user_id"
)

// AuthRequired resolves the gateway identity header and stores the user id
// in Locals for downstream middleware and handlers.
func AuthRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get(HeaderUserID)
		if idStr == "" {
			return fiber.ErrUnauthorized
		}

		userID, err := uuid.Parse(idStr)
		if err != nil || userID == uuid.Nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalsUserID, userID.String())
		return c.Next()
	}
}

// UserIDFromFiber retrieves the authenticated user id from Fiber locals.
func UserIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocalsUserID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}
