// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilityPatternsColumns holds the columns for the "availability_patterns" table.
	AvailabilityPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt16},
		{Name: "end_minute", Type: field.TypeInt16},
		{Name: "slot_duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "buffer_minutes", Type: field.TypeInt, Default: 0},
		{Name: "max_patients", Type: field.TypeInt, Default: 1},
		{Name: "availability_type", Type: field.TypeEnum, Enums: []string{"regular", "special", "break", "unavailable"}, Default: "regular"},
		{Name: "effective_from", Type: field.TypeTime},
		{Name: "effective_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AvailabilityPatternsTable holds the schema information for the "availability_patterns" table.
	AvailabilityPatternsTable = &schema.Table{
		Name:       "availability_patterns",
		Columns:    AvailabilityPatternsColumns,
		PrimaryKey: []*schema.Column{AvailabilityPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilitypattern_clinic_id_doctor_id_day_of_week_is_active",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityPatternsColumns[5], AvailabilityPatternsColumns[6], AvailabilityPatternsColumns[7], AvailabilityPatternsColumns[16]},
			},
			{
				Name:    "availabilitypattern_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityPatternsColumns[5]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[5]},
			},
		},
	}
	// ClinicMembersColumns holds the columns for the "clinic_members" table.
	ClinicMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "manager", "doctor", "receptionist"}},
		{Name: "specialization", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "joined_at", Type: field.TypeTime},
	}
	// ClinicMembersTable holds the schema information for the "clinic_members" table.
	ClinicMembersTable = &schema.Table{
		Name:       "clinic_members",
		Columns:    ClinicMembersColumns,
		PrimaryKey: []*schema.Column{ClinicMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinicmember_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ClinicMembersColumns[1], ClinicMembersColumns[2]},
			},
			{
				Name:    "clinicmember_clinic_id_role",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[1], ClinicMembersColumns[4]},
			},
			{
				Name:    "clinicmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[2]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "file_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id_full_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[5]},
			},
			{
				Name:    "patient_clinic_id_phone",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[6]},
			},
			{
				Name:    "patient_clinic_id_file_number",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[7]},
			},
		},
	}
	// SlotOccupanciesColumns holds the columns for the "slot_occupancies" table.
	SlotOccupanciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "visit_id", Type: field.TypeUUID, Unique: true},
		{Name: "pattern_id", Type: field.TypeUUID},
		{Name: "slot_date", Type: field.TypeTime},
		{Name: "slot_start_minute", Type: field.TypeInt16},
		{Name: "slot_end_minute", Type: field.TypeInt16},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
	}
	// SlotOccupanciesTable holds the schema information for the "slot_occupancies" table.
	SlotOccupanciesTable = &schema.Table{
		Name:       "slot_occupancies",
		Columns:    SlotOccupanciesColumns,
		PrimaryKey: []*schema.Column{SlotOccupanciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slotoccupancy_pattern_id_slot_date",
				Unique:  false,
				Columns: []*schema.Column{SlotOccupanciesColumns[5], SlotOccupanciesColumns[6]},
			},
			{
				Name:    "slotoccupancy_clinic_id_slot_date",
				Unique:  false,
				Columns: []*schema.Column{SlotOccupanciesColumns[3], SlotOccupanciesColumns[6]},
			},
		},
	}
	// VisitsColumns holds the columns for the "visits" table.
	VisitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "visit_number", Type: field.TypeString, Size: 30},
		{Name: "visit_date", Type: field.TypeTime},
		{Name: "visit_time", Type: field.TypeInt16},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "in_progress", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "consultation_fee", Type: field.TypeInt64, Default: 0},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"unpaid", "paid", "waived"}, Default: "unpaid"},
		{Name: "chief_complaint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "clinical_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// VisitsTable holds the schema information for the "visits" table.
	VisitsTable = &schema.Table{
		Name:       "visits",
		Columns:    VisitsColumns,
		PrimaryKey: []*schema.Column{VisitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "visit_clinic_id_visit_number",
				Unique:  true,
				Columns: []*schema.Column{VisitsColumns[5], VisitsColumns[8]},
			},
			{
				Name:    "visit_clinic_id_doctor_id_visit_date",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[5], VisitsColumns[6], VisitsColumns[9]},
			},
			{
				Name:    "visit_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[5], VisitsColumns[7]},
			},
			{
				Name:    "visit_doctor_id_status_visit_date",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[6], VisitsColumns[12], VisitsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilityPatternsTable,
		ClinicsTable,
		ClinicMembersTable,
		PatientsTable,
		SlotOccupanciesTable,
		VisitsTable,
	}
)

func init() {
}
