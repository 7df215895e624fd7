// Code generated by ent, DO NOT EDIT.

package availabilitypattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldUpdatedBy, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldClinicID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldDoctorID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldStartMinute, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEndMinute, v))
}

// SlotDurationMinutes applies equality check predicate on the "slot_duration_minutes" field. It's identical to SlotDurationMinutesEQ.
func SlotDurationMinutes(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldSlotDurationMinutes, v))
}

// BufferMinutes applies equality check predicate on the "buffer_minutes" field. It's identical to BufferMinutesEQ.
func BufferMinutes(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldBufferMinutes, v))
}

// MaxPatients applies equality check predicate on the "max_patients" field. It's identical to MaxPatientsEQ.
func MaxPatients(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldMaxPatients, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveUntil applies equality check predicate on the "effective_until" field. It's identical to EffectiveUntilEQ.
func EffectiveUntil(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEffectiveUntil, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldIsActive, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotNull(FieldCreatedBy))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotNull(FieldUpdatedBy))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldClinicID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldDoctorID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldStartMinute, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int16) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldEndMinute, v))
}

// SlotDurationMinutesEQ applies the EQ predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesNEQ applies the NEQ predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesNEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesIn applies the In predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldSlotDurationMinutes, vs...))
}

// SlotDurationMinutesNotIn applies the NotIn predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesNotIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldSlotDurationMinutes, vs...))
}

// SlotDurationMinutesGT applies the GT predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesGT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesGTE applies the GTE predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesGTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesLT applies the LT predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesLT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesLTE applies the LTE predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesLTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldSlotDurationMinutes, v))
}

// BufferMinutesEQ applies the EQ predicate on the "buffer_minutes" field.
func BufferMinutesEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldBufferMinutes, v))
}

// BufferMinutesNEQ applies the NEQ predicate on the "buffer_minutes" field.
func BufferMinutesNEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldBufferMinutes, v))
}

// BufferMinutesIn applies the In predicate on the "buffer_minutes" field.
func BufferMinutesIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldBufferMinutes, vs...))
}

// BufferMinutesNotIn applies the NotIn predicate on the "buffer_minutes" field.
func BufferMinutesNotIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldBufferMinutes, vs...))
}

// BufferMinutesGT applies the GT predicate on the "buffer_minutes" field.
func BufferMinutesGT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldBufferMinutes, v))
}

// BufferMinutesGTE applies the GTE predicate on the "buffer_minutes" field.
func BufferMinutesGTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldBufferMinutes, v))
}

// BufferMinutesLT applies the LT predicate on the "buffer_minutes" field.
func BufferMinutesLT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldBufferMinutes, v))
}

// BufferMinutesLTE applies the LTE predicate on the "buffer_minutes" field.
func BufferMinutesLTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldBufferMinutes, v))
}

// MaxPatientsEQ applies the EQ predicate on the "max_patients" field.
func MaxPatientsEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldMaxPatients, v))
}

// MaxPatientsNEQ applies the NEQ predicate on the "max_patients" field.
func MaxPatientsNEQ(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldMaxPatients, v))
}

// MaxPatientsIn applies the In predicate on the "max_patients" field.
func MaxPatientsIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldMaxPatients, vs...))
}

// MaxPatientsNotIn applies the NotIn predicate on the "max_patients" field.
func MaxPatientsNotIn(vs ...int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldMaxPatients, vs...))
}

// MaxPatientsGT applies the GT predicate on the "max_patients" field.
func MaxPatientsGT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldMaxPatients, v))
}

// MaxPatientsGTE applies the GTE predicate on the "max_patients" field.
func MaxPatientsGTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldMaxPatients, v))
}

// MaxPatientsLT applies the LT predicate on the "max_patients" field.
func MaxPatientsLT(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldMaxPatients, v))
}

// MaxPatientsLTE applies the LTE predicate on the "max_patients" field.
func MaxPatientsLTE(v int) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldMaxPatients, v))
}

// AvailabilityTypeEQ applies the EQ predicate on the "availability_type" field.
func AvailabilityTypeEQ(v AvailabilityType) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldAvailabilityType, v))
}

// AvailabilityTypeNEQ applies the NEQ predicate on the "availability_type" field.
func AvailabilityTypeNEQ(v AvailabilityType) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldAvailabilityType, v))
}

// AvailabilityTypeIn applies the In predicate on the "availability_type" field.
func AvailabilityTypeIn(vs ...AvailabilityType) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldAvailabilityType, vs...))
}

// AvailabilityTypeNotIn applies the NotIn predicate on the "availability_type" field.
func AvailabilityTypeNotIn(vs ...AvailabilityType) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldAvailabilityType, vs...))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldEffectiveFrom, v))
}

// EffectiveUntilEQ applies the EQ predicate on the "effective_until" field.
func EffectiveUntilEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldEffectiveUntil, v))
}

// EffectiveUntilNEQ applies the NEQ predicate on the "effective_until" field.
func EffectiveUntilNEQ(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldEffectiveUntil, v))
}

// EffectiveUntilIn applies the In predicate on the "effective_until" field.
func EffectiveUntilIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldEffectiveUntil, vs...))
}

// EffectiveUntilNotIn applies the NotIn predicate on the "effective_until" field.
func EffectiveUntilNotIn(vs ...time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldEffectiveUntil, vs...))
}

// EffectiveUntilGT applies the GT predicate on the "effective_until" field.
func EffectiveUntilGT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldEffectiveUntil, v))
}

// EffectiveUntilGTE applies the GTE predicate on the "effective_until" field.
func EffectiveUntilGTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldEffectiveUntil, v))
}

// EffectiveUntilLT applies the LT predicate on the "effective_until" field.
func EffectiveUntilLT(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldEffectiveUntil, v))
}

// EffectiveUntilLTE applies the LTE predicate on the "effective_until" field.
func EffectiveUntilLTE(v time.Time) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldEffectiveUntil, v))
}

// EffectiveUntilIsNil applies the IsNil predicate on the "effective_until" field.
func EffectiveUntilIsNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIsNull(FieldEffectiveUntil))
}

// EffectiveUntilNotNil applies the NotNil predicate on the "effective_until" field.
func EffectiveUntilNotNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotNull(FieldEffectiveUntil))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldIsActive, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilityPattern) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilityPattern) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilityPattern) predicate.AvailabilityPattern {
	return predicate.AvailabilityPattern(sql.NotPredicates(p))
}
