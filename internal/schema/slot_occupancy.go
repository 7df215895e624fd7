package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SlotOccupancy links a visit to the availability pattern whose block it
// consumes. It is written in the same transaction as the visit, so the two
// rows are always observed together. Cancellation sets released_at instead
// of deleting the row, which keeps a full reservation history and makes
// "future bookings reference this pattern" checks cheap.
type SlotOccupancy struct {
	ent.Schema
}

func (SlotOccupancy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SlotOccupancy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("visit_id", uuid.UUID{}).
			Unique().
			Comment("FK → visits.id; one active reservation per visit"),

		field.UUID("pattern_id", uuid.UUID{}).
			Comment("FK → availability_patterns.id"),

		field.Time("slot_date").
			Comment("Calendar date of the occupied slot"),

		field.Int16("slot_start_minute").
			Comment("Start of the materialized block the visit sits in"),

		field.Int16("slot_end_minute").
			Comment("End of the materialized block the visit sits in"),

		field.Time("released_at").
			Optional().
			Nillable().
			Comment("Set when the visit is cancelled; frees the capacity unit"),
	}
}

func (SlotOccupancy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_id", "slot_date"),
		index.Fields("clinic_id", "slot_date"),
	}
}
