// Code generated by ent, DO NOT EDIT.

package slotoccupancy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the slotoccupancy type in the database.
	Label = "slot_occupancy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldVisitID holds the string denoting the visit_id field in the database.
	FieldVisitID = "visit_id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldSlotDate holds the string denoting the slot_date field in the database.
	FieldSlotDate = "slot_date"
	// FieldSlotStartMinute holds the string denoting the slot_start_minute field in the database.
	FieldSlotStartMinute = "slot_start_minute"
	// FieldSlotEndMinute holds the string denoting the slot_end_minute field in the database.
	FieldSlotEndMinute = "slot_end_minute"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// Table holds the table name of the slotoccupancy in the database.
	Table = "slot_occupancies"
)

// Columns holds all SQL columns for slotoccupancy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldVisitID,
	FieldPatternID,
	FieldSlotDate,
	FieldSlotStartMinute,
	FieldSlotEndMinute,
	FieldReleasedAt,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SlotOccupancy queries.
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

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByVisitID orders the results by the visit_id field.
func ByVisitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// BySlotDate orders the results by the slot_date field.
func BySlotDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotDate, opts...).ToFunc()
}

// BySlotStartMinute orders the results by the slot_start_minute field.
func BySlotStartMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotStartMinute, opts...).ToFunc()
}

// BySlotEndMinute orders the results by the slot_end_minute field.
func BySlotEndMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotEndMinute, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}
