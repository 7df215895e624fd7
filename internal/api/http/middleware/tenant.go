package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entclinic "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinic"
	entmember "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
)

const (
	HeaderClinicID = "X-Clinic-ID"

	LocalsMemberRole = "member_role"
	LocalsMemberID   = "member_id"
)

// ClinicHeader reads the clinic ID from the X-Clinic-ID header. Every
// clinic-scoped route goes through it: it validates the clinic is active
// and that the authenticated user is an active member, then stores the
// tenant context in Locals for RBAC and handlers.
func ClinicHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get(HeaderClinicID)
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic-ID header is required")
		}

		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Clinic-ID value")
		}

		// Verify clinic exists and is active
		exists, err := db.Clinic.Query().
			Where(entclinic.ID(clinicID), entclinic.IsActive(true), entclinic.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		// Require authenticated user to be an active member
		userID, ok := UserIDFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		m, err := db.ClinicMember.Query().
			Where(
				entmember.ClinicID(clinicID),
				entmember.UserID(userID),
				entmember.IsActive(true),
			).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsClinicID, clinicID.String())
		c.Locals(LocalsMemberRole, string(m.Role))
		c.Locals(LocalsMemberID, m.ID.String())

		return c.Next()
	}
}
