package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Visit is a booked consultation between a doctor and a patient. Rows are
// never hard-deleted; cancellation is a status transition so the clinical
// history stays intact.
type Visit struct {
	ent.Schema
}

func (Visit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		AuditedMixin{},
	}
}

func (Visit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("visit_number").
			MaxLen(30).
			NotEmpty().
			Comment("Human-readable sequential number, unique per clinic"),

		field.Time("visit_date").
			Comment("Calendar date of the visit (time part is midnight UTC)"),

		field.Int16("visit_time").
			Min(0).
			Max(1439).
			Comment("Start of the visit, minutes since midnight"),

		field.Int("duration_minutes").
			Default(30).
			Min(1),

		field.Enum("status").
			Values("scheduled", "in_progress", "completed", "cancelled").
			Default("scheduled"),

		field.Int64("consultation_fee").
			Default(0),

		field.Enum("payment_status").
			Values("unpaid", "paid", "waived").
			Default("unpaid"),

		field.Text("chief_complaint").
			Optional().
			Nillable(),

		field.Text("clinical_notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Visit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "visit_number").Unique(),
		index.Fields("clinic_id", "doctor_id", "visit_date"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("doctor_id", "status", "visit_date"),
	}
}
