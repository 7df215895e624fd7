// Package events defines the NATS subjects the scheduling core publishes.
// Workers (cache invalidation, SMS reminders) subscribe to these.
package events

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	// Payload for all visit subjects is the visit id as a string.
	SubjectVisitCreated   = "clinic.visit.created.%s"   // clinic_id
	SubjectVisitCancelled = "clinic.visit.cancelled.%s" // clinic_id
	SubjectVisitMoved     = "clinic.visit.moved.%s"     // clinic_id

	// Payload is the doctor (clinic member) id whose schedule changed.
	SubjectScheduleChanged = "clinic.schedule.changed.%s" // clinic_id
)

// Publish fires an event, tolerating a nil connection (events disabled) and
// logging failures instead of propagating them: event delivery is advisory
// and must never fail a booking that already committed.
func Publish(nc *nats.Conn, subjectFmt string, clinicID, payload uuid.UUID) {
	if nc == nil {
		return
	}
	subject := fmt.Sprintf(subjectFmt, clinicID)
	if err := nc.Publish(subject, []byte(payload.String())); err != nil {
		slog.Warn("event publish failed", "subject", subject, "err", err)
	}
}
