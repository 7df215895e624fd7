// Code generated by ent, DO NOT EDIT.

package slotoccupancy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldClinicID, v))
}

// VisitID applies equality check predicate on the "visit_id" field. It's identical to VisitIDEQ.
func VisitID(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldVisitID, v))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldPatternID, v))
}

// SlotDate applies equality check predicate on the "slot_date" field. It's identical to SlotDateEQ.
func SlotDate(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotDate, v))
}

// SlotStartMinute applies equality check predicate on the "slot_start_minute" field. It's identical to SlotStartMinuteEQ.
func SlotStartMinute(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotStartMinute, v))
}

// SlotEndMinute applies equality check predicate on the "slot_end_minute" field. It's identical to SlotEndMinuteEQ.
func SlotEndMinute(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotEndMinute, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldReleasedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldClinicID, v))
}

// VisitIDEQ applies the EQ predicate on the "visit_id" field.
func VisitIDEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldVisitID, v))
}

// VisitIDNEQ applies the NEQ predicate on the "visit_id" field.
func VisitIDNEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldVisitID, v))
}

// VisitIDIn applies the In predicate on the "visit_id" field.
func VisitIDIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldVisitID, vs...))
}

// VisitIDNotIn applies the NotIn predicate on the "visit_id" field.
func VisitIDNotIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldVisitID, vs...))
}

// VisitIDGT applies the GT predicate on the "visit_id" field.
func VisitIDGT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldVisitID, v))
}

// VisitIDGTE applies the GTE predicate on the "visit_id" field.
func VisitIDGTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldVisitID, v))
}

// VisitIDLT applies the LT predicate on the "visit_id" field.
func VisitIDLT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldVisitID, v))
}

// VisitIDLTE applies the LTE predicate on the "visit_id" field.
func VisitIDLTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldVisitID, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v uuid.UUID) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldPatternID, v))
}

// SlotDateEQ applies the EQ predicate on the "slot_date" field.
func SlotDateEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotDate, v))
}

// SlotDateNEQ applies the NEQ predicate on the "slot_date" field.
func SlotDateNEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldSlotDate, v))
}

// SlotDateIn applies the In predicate on the "slot_date" field.
func SlotDateIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldSlotDate, vs...))
}

// SlotDateNotIn applies the NotIn predicate on the "slot_date" field.
func SlotDateNotIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldSlotDate, vs...))
}

// SlotDateGT applies the GT predicate on the "slot_date" field.
func SlotDateGT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldSlotDate, v))
}

// SlotDateGTE applies the GTE predicate on the "slot_date" field.
func SlotDateGTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldSlotDate, v))
}

// SlotDateLT applies the LT predicate on the "slot_date" field.
func SlotDateLT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldSlotDate, v))
}

// SlotDateLTE applies the LTE predicate on the "slot_date" field.
func SlotDateLTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldSlotDate, v))
}

// SlotStartMinuteEQ applies the EQ predicate on the "slot_start_minute" field.
func SlotStartMinuteEQ(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotStartMinute, v))
}

// SlotStartMinuteNEQ applies the NEQ predicate on the "slot_start_minute" field.
func SlotStartMinuteNEQ(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldSlotStartMinute, v))
}

// SlotStartMinuteIn applies the In predicate on the "slot_start_minute" field.
func SlotStartMinuteIn(vs ...int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldSlotStartMinute, vs...))
}

// SlotStartMinuteNotIn applies the NotIn predicate on the "slot_start_minute" field.
func SlotStartMinuteNotIn(vs ...int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldSlotStartMinute, vs...))
}

// SlotStartMinuteGT applies the GT predicate on the "slot_start_minute" field.
func SlotStartMinuteGT(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldSlotStartMinute, v))
}

// SlotStartMinuteGTE applies the GTE predicate on the "slot_start_minute" field.
func SlotStartMinuteGTE(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldSlotStartMinute, v))
}

// SlotStartMinuteLT applies the LT predicate on the "slot_start_minute" field.
func SlotStartMinuteLT(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldSlotStartMinute, v))
}

// SlotStartMinuteLTE applies the LTE predicate on the "slot_start_minute" field.
func SlotStartMinuteLTE(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldSlotStartMinute, v))
}

// SlotEndMinuteEQ applies the EQ predicate on the "slot_end_minute" field.
func SlotEndMinuteEQ(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldSlotEndMinute, v))
}

// SlotEndMinuteNEQ applies the NEQ predicate on the "slot_end_minute" field.
func SlotEndMinuteNEQ(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldSlotEndMinute, v))
}

// SlotEndMinuteIn applies the In predicate on the "slot_end_minute" field.
func SlotEndMinuteIn(vs ...int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldSlotEndMinute, vs...))
}

// SlotEndMinuteNotIn applies the NotIn predicate on the "slot_end_minute" field.
func SlotEndMinuteNotIn(vs ...int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldSlotEndMinute, vs...))
}

// SlotEndMinuteGT applies the GT predicate on the "slot_end_minute" field.
func SlotEndMinuteGT(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldSlotEndMinute, v))
}

// SlotEndMinuteGTE applies the GTE predicate on the "slot_end_minute" field.
func SlotEndMinuteGTE(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldSlotEndMinute, v))
}

// SlotEndMinuteLT applies the LT predicate on the "slot_end_minute" field.
func SlotEndMinuteLT(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldSlotEndMinute, v))
}

// SlotEndMinuteLTE applies the LTE predicate on the "slot_end_minute" field.
func SlotEndMinuteLTE(v int16) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldSlotEndMinute, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.FieldNotNull(FieldReleasedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlotOccupancy) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlotOccupancy) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlotOccupancy) predicate.SlotOccupancy {
	return predicate.SlotOccupancy(sql.NotPredicates(p))
}
