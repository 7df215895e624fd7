// Package actor carries the identity making a scheduling call. Every core
// operation takes the actor explicitly instead of reading ambient session
// state, so services stay testable without a simulated session.
package actor

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// Actor is the resolved clinic member performing a request.
type Actor struct {
	MemberID uuid.UUID
	UserID   uuid.UUID
	Role     Role
}

// CanManageSchedules reports whether the actor may mutate any doctor's
// availability. Doctors may still mutate their own (checked per call).
func (a Actor) CanManageSchedules() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// CanBook reports whether the actor may create or move visits.
func (a Actor) CanBook() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager || a.Role == RoleReceptionist || a.Role == RoleDoctor
}
