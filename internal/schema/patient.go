package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a per-clinic patient directory record. The scheduling core
// only reads it (lookup by id, search by name/phone).
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("full_name").
			MaxLen(255).
			NotEmpty(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164-normalized phone number"),

		field.String("file_number").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("Internal file/case number assigned by the clinic"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "full_name"),
		index.Fields("clinic_id", "phone"),
		index.Fields("clinic_id", "file_number"),
	}
}
