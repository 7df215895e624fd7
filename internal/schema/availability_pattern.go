package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilityPattern is one recurring weekly working block of a doctor.
// Clock times are stored as minutes since midnight; the service layer
// converts to/from "HH:MM" at the API boundary.
type AvailabilityPattern struct {
	ent.Schema
}

func (AvailabilityPattern) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		AuditedMixin{},
	}
}

func (AvailabilityPattern) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(7).
			Comment("0=Sunday, 1=Monday … 6=Saturday; 7 accepted as Sunday alias"),

		field.Int16("start_minute").
			Min(0).
			Max(1439).
			Comment("Block start, minutes since midnight"),

		field.Int16("end_minute").
			Min(1).
			Max(1440).
			Comment("Block end (exclusive), minutes since midnight"),

		field.Int("slot_duration_minutes").
			Default(30).
			Comment("Advisory; the block is one bookable unit, not subdivided"),

		field.Int("buffer_minutes").
			Default(0).
			Comment("Advisory gap between consultations"),

		field.Int("max_patients").
			Default(1).
			Min(0).
			Comment("Concurrent capacity of the block (max_patients_per_slot)"),

		field.Enum("availability_type").
			Values("regular", "special", "break", "unavailable").
			Default("regular"),

		field.Time("effective_from").
			Comment("Pattern takes effect from this date (inclusive)"),

		field.Time("effective_until").
			Optional().
			Nillable().
			Comment("Pattern expires after this date (inclusive); nil = no expiry"),

		field.Bool("is_active").
			Default(true).
			Comment("Soft-delete flag; replaced patterns are deactivated, not removed"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (AvailabilityPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "doctor_id", "day_of_week", "is_active"),
		index.Fields("clinic_id"),
	}
}
