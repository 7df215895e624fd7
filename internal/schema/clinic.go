package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Clinic is the tenant. Every other row in the system is scoped by clinic_id.
// ---------------------------------------------------------------------------

type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the clinic"),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}

// ---------------------------------------------------------------------------
// ClinicMember links a user to a clinic with a role. Doctors are members with the
// doctor role; doctor_id fields elsewhere reference clinic_members.id.
// ---------------------------------------------------------------------------

type ClinicMember struct {
	ent.Schema
}

func (ClinicMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (ClinicMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Identity of the user, issued by the upstream gateway"),

		field.String("display_name").
			MaxLen(255).
			NotEmpty(),

		field.Enum("role").
			Values("admin", "manager", "doctor", "receptionist").
			Comment("Role of this user in the clinic"),

		field.String("specialization").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Doctor specialization; empty for non-doctor members"),

		field.Bool("is_active").Default(true),

		field.Time("joined_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ClinicMember) Indexes() []ent.Index {
	return []ent.Index{
		// A user can only have one membership record per clinic
		index.Fields("clinic_id", "user_id").Unique(),
		index.Fields("clinic_id", "role"),
		index.Fields("user_id"),
	}
}
