package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ctxKeySubject is the context key for the authenticated principal.
type ctxKeySubject struct{}

// WithUserID stores the authenticated user id in the context. The HTTP
// auth middleware calls this after resolving the gateway identity headers.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeySubject{}, userID)
}

// SubjectFromContext extracts the GroupSubject (user ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return GroupSubject(userID.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (e.g., behind the auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	v := ctx.Value(ctxKeySubject{})
	if v == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return userID, nil
}

// DomainFromResource determines the appropriate domain for a request.
// Clinic-scoped requests enforce inside clinic:<uuid>; everything else is sys.
func DomainFromResource(clinicID *string) Domain {
	if clinicID != nil && *clinicID != "" {
		return ClinicDomain(*clinicID)
	}
	return DomainSys
}
