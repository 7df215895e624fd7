// Code generated by ent, DO NOT EDIT.

package availabilitypattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the availabilitypattern type in the database.
	Label = "availability_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldDayOfWeek holds the string denoting the day_of_week field in the database.
	FieldDayOfWeek = "day_of_week"
	// FieldStartMinute holds the string denoting the start_minute field in the database.
	FieldStartMinute = "start_minute"
	// FieldEndMinute holds the string denoting the end_minute field in the database.
	FieldEndMinute = "end_minute"
	// FieldSlotDurationMinutes holds the string denoting the slot_duration_minutes field in the database.
	FieldSlotDurationMinutes = "slot_duration_minutes"
	// FieldBufferMinutes holds the string denoting the buffer_minutes field in the database.
	FieldBufferMinutes = "buffer_minutes"
	// FieldMaxPatients holds the string denoting the max_patients field in the database.
	FieldMaxPatients = "max_patients"
	// FieldAvailabilityType holds the string denoting the availability_type field in the database.
	FieldAvailabilityType = "availability_type"
	// FieldEffectiveFrom holds the string denoting the effective_from field in the database.
	FieldEffectiveFrom = "effective_from"
	// FieldEffectiveUntil holds the string denoting the effective_until field in the database.
	FieldEffectiveUntil = "effective_until"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the availabilitypattern in the database.
	Table = "availability_patterns"
)

// Columns holds all SQL columns for availabilitypattern fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldClinicID,
	FieldDoctorID,
	FieldDayOfWeek,
	FieldStartMinute,
	FieldEndMinute,
	FieldSlotDurationMinutes,
	FieldBufferMinutes,
	FieldMaxPatients,
	FieldAvailabilityType,
	FieldEffectiveFrom,
	FieldEffectiveUntil,
	FieldIsActive,
	FieldNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	DayOfWeekValidator func(int8) error
	// StartMinuteValidator is a validator for the "start_minute" field. It is called by the builders before save.
	StartMinuteValidator func(int16) error
	// EndMinuteValidator is a validator for the "end_minute" field. It is called by the builders before save.
	EndMinuteValidator func(int16) error
	// DefaultSlotDurationMinutes holds the default value on creation for the "slot_duration_minutes" field.
	DefaultSlotDurationMinutes int
	// DefaultBufferMinutes holds the default value on creation for the "buffer_minutes" field.
	DefaultBufferMinutes int
	// DefaultMaxPatients holds the default value on creation for the "max_patients" field.
	DefaultMaxPatients int
	// MaxPatientsValidator is a validator for the "max_patients" field. It is called by the builders before save.
	MaxPatientsValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AvailabilityType defines the type for the "availability_type" enum field.
type AvailabilityType string

// AvailabilityTypeRegular is the default value of the AvailabilityType enum.
const DefaultAvailabilityType = AvailabilityTypeRegular

// AvailabilityType values.
const (
	AvailabilityTypeRegular     AvailabilityType = "regular"
	AvailabilityTypeSpecial     AvailabilityType = "special"
	AvailabilityTypeBreak       AvailabilityType = "break"
	AvailabilityTypeUnavailable AvailabilityType = "unavailable"
)

func (at AvailabilityType) String() string {
	return string(at)
}

// AvailabilityTypeValidator is a validator for the "availability_type" field enum values. It is called by the builders before save.
func AvailabilityTypeValidator(at AvailabilityType) error {
	switch at {
	case AvailabilityTypeRegular, AvailabilityTypeSpecial, AvailabilityTypeBreak, AvailabilityTypeUnavailable:
		return nil
	default:
		return fmt.Errorf("availabilitypattern: invalid enum value for availability_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the AvailabilityPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByDayOfWeek orders the results by the day_of_week field.
func ByDayOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayOfWeek, opts...).ToFunc()
}

// ByStartMinute orders the results by the start_minute field.
func ByStartMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartMinute, opts...).ToFunc()
}

// ByEndMinute orders the results by the end_minute field.
func ByEndMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndMinute, opts...).ToFunc()
}

// BySlotDurationMinutes orders the results by the slot_duration_minutes field.
func BySlotDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotDurationMinutes, opts...).ToFunc()
}

// ByBufferMinutes orders the results by the buffer_minutes field.
func ByBufferMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferMinutes, opts...).ToFunc()
}

// ByMaxPatients orders the results by the max_patients field.
func ByMaxPatients(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPatients, opts...).ToFunc()
}

// ByAvailabilityType orders the results by the availability_type field.
func ByAvailabilityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailabilityType, opts...).ToFunc()
}

// ByEffectiveFrom orders the results by the effective_from field.
func ByEffectiveFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveFrom, opts...).ToFunc()
}

// ByEffectiveUntil orders the results by the effective_until field.
func ByEffectiveUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveUntil, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
