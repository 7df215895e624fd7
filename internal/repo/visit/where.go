// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedBy, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDoctorID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPatientID, v))
}

// VisitNumber applies equality check predicate on the "visit_number" field. It's identical to VisitNumberEQ.
func VisitNumber(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitNumber, v))
}

// VisitDate applies equality check predicate on the "visit_date" field. It's identical to VisitDateEQ.
func VisitDate(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitDate, v))
}

// VisitTime applies equality check predicate on the "visit_time" field. It's identical to VisitTimeEQ.
func VisitTime(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitTime, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDurationMinutes, v))
}

// ConsultationFee applies equality check predicate on the "consultation_fee" field. It's identical to ConsultationFeeEQ.
func ConsultationFee(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldConsultationFee, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldChiefComplaint, v))
}

// ClinicalNotes applies equality check predicate on the "clinical_notes" field. It's identical to ClinicalNotesEQ.
func ClinicalNotes(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicalNotes, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCancellationReason, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCancelledAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldCreatedBy))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldUpdatedBy))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldClinicID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldDoctorID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldPatientID, v))
}

// VisitNumberEQ applies the EQ predicate on the "visit_number" field.
func VisitNumberEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitNumber, v))
}

// VisitNumberNEQ applies the NEQ predicate on the "visit_number" field.
func VisitNumberNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitNumber, v))
}

// VisitNumberIn applies the In predicate on the "visit_number" field.
func VisitNumberIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitNumber, vs...))
}

// VisitNumberNotIn applies the NotIn predicate on the "visit_number" field.
func VisitNumberNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitNumber, vs...))
}

// VisitNumberGT applies the GT predicate on the "visit_number" field.
func VisitNumberGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitNumber, v))
}

// VisitNumberGTE applies the GTE predicate on the "visit_number" field.
func VisitNumberGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitNumber, v))
}

// VisitNumberLT applies the LT predicate on the "visit_number" field.
func VisitNumberLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitNumber, v))
}

// VisitNumberLTE applies the LTE predicate on the "visit_number" field.
func VisitNumberLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitNumber, v))
}

// VisitNumberContains applies the Contains predicate on the "visit_number" field.
func VisitNumberContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldVisitNumber, v))
}

// VisitNumberHasPrefix applies the HasPrefix predicate on the "visit_number" field.
func VisitNumberHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldVisitNumber, v))
}

// VisitNumberHasSuffix applies the HasSuffix predicate on the "visit_number" field.
func VisitNumberHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldVisitNumber, v))
}

// VisitNumberEqualFold applies the EqualFold predicate on the "visit_number" field.
func VisitNumberEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldVisitNumber, v))
}

// VisitNumberContainsFold applies the ContainsFold predicate on the "visit_number" field.
func VisitNumberContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldVisitNumber, v))
}

// VisitDateEQ applies the EQ predicate on the "visit_date" field.
func VisitDateEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitDate, v))
}

// VisitDateNEQ applies the NEQ predicate on the "visit_date" field.
func VisitDateNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitDate, v))
}

// VisitDateIn applies the In predicate on the "visit_date" field.
func VisitDateIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitDate, vs...))
}

// VisitDateNotIn applies the NotIn predicate on the "visit_date" field.
func VisitDateNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitDate, vs...))
}

// VisitDateGT applies the GT predicate on the "visit_date" field.
func VisitDateGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitDate, v))
}

// VisitDateGTE applies the GTE predicate on the "visit_date" field.
func VisitDateGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitDate, v))
}

// VisitDateLT applies the LT predicate on the "visit_date" field.
func VisitDateLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitDate, v))
}

// VisitDateLTE applies the LTE predicate on the "visit_date" field.
func VisitDateLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitDate, v))
}

// VisitTimeEQ applies the EQ predicate on the "visit_time" field.
func VisitTimeEQ(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitTime, v))
}

// VisitTimeNEQ applies the NEQ predicate on the "visit_time" field.
func VisitTimeNEQ(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitTime, v))
}

// VisitTimeIn applies the In predicate on the "visit_time" field.
func VisitTimeIn(vs ...int16) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitTime, vs...))
}

// VisitTimeNotIn applies the NotIn predicate on the "visit_time" field.
func VisitTimeNotIn(vs ...int16) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitTime, vs...))
}

// VisitTimeGT applies the GT predicate on the "visit_time" field.
func VisitTimeGT(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitTime, v))
}

// VisitTimeGTE applies the GTE predicate on the "visit_time" field.
func VisitTimeGTE(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitTime, v))
}

// VisitTimeLT applies the LT predicate on the "visit_time" field.
func VisitTimeLT(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitTime, v))
}

// VisitTimeLTE applies the LTE predicate on the "visit_time" field.
func VisitTimeLTE(v int16) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitTime, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldDurationMinutes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldStatus, vs...))
}

// ConsultationFeeEQ applies the EQ predicate on the "consultation_fee" field.
func ConsultationFeeEQ(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldConsultationFee, v))
}

// ConsultationFeeNEQ applies the NEQ predicate on the "consultation_fee" field.
func ConsultationFeeNEQ(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldConsultationFee, v))
}

// ConsultationFeeIn applies the In predicate on the "consultation_fee" field.
func ConsultationFeeIn(vs ...int64) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldConsultationFee, vs...))
}

// ConsultationFeeNotIn applies the NotIn predicate on the "consultation_fee" field.
func ConsultationFeeNotIn(vs ...int64) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldConsultationFee, vs...))
}

// ConsultationFeeGT applies the GT predicate on the "consultation_fee" field.
func ConsultationFeeGT(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldConsultationFee, v))
}

// ConsultationFeeGTE applies the GTE predicate on the "consultation_fee" field.
func ConsultationFeeGTE(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldConsultationFee, v))
}

// ConsultationFeeLT applies the LT predicate on the "consultation_fee" field.
func ConsultationFeeLT(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldConsultationFee, v))
}

// ConsultationFeeLTE applies the LTE predicate on the "consultation_fee" field.
func ConsultationFeeLTE(v int64) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldConsultationFee, v))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintIsNil applies the IsNil predicate on the "chief_complaint" field.
func ChiefComplaintIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldChiefComplaint))
}

// ChiefComplaintNotNil applies the NotNil predicate on the "chief_complaint" field.
func ChiefComplaintNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldChiefComplaint))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// ClinicalNotesEQ applies the EQ predicate on the "clinical_notes" field.
func ClinicalNotesEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicalNotes, v))
}

// ClinicalNotesNEQ applies the NEQ predicate on the "clinical_notes" field.
func ClinicalNotesNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldClinicalNotes, v))
}

// ClinicalNotesIn applies the In predicate on the "clinical_notes" field.
func ClinicalNotesIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldClinicalNotes, vs...))
}

// ClinicalNotesNotIn applies the NotIn predicate on the "clinical_notes" field.
func ClinicalNotesNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldClinicalNotes, vs...))
}

// ClinicalNotesGT applies the GT predicate on the "clinical_notes" field.
func ClinicalNotesGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldClinicalNotes, v))
}

// ClinicalNotesGTE applies the GTE predicate on the "clinical_notes" field.
func ClinicalNotesGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldClinicalNotes, v))
}

// ClinicalNotesLT applies the LT predicate on the "clinical_notes" field.
func ClinicalNotesLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldClinicalNotes, v))
}

// ClinicalNotesLTE applies the LTE predicate on the "clinical_notes" field.
func ClinicalNotesLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldClinicalNotes, v))
}

// ClinicalNotesContains applies the Contains predicate on the "clinical_notes" field.
func ClinicalNotesContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldClinicalNotes, v))
}

// ClinicalNotesHasPrefix applies the HasPrefix predicate on the "clinical_notes" field.
func ClinicalNotesHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldClinicalNotes, v))
}

// ClinicalNotesHasSuffix applies the HasSuffix predicate on the "clinical_notes" field.
func ClinicalNotesHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldClinicalNotes, v))
}

// ClinicalNotesIsNil applies the IsNil predicate on the "clinical_notes" field.
func ClinicalNotesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldClinicalNotes))
}

// ClinicalNotesNotNil applies the NotNil predicate on the "clinical_notes" field.
func ClinicalNotesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldClinicalNotes))
}

// ClinicalNotesEqualFold applies the EqualFold predicate on the "clinical_notes" field.
func ClinicalNotesEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldClinicalNotes, v))
}

// ClinicalNotesContainsFold applies the ContainsFold predicate on the "clinical_notes" field.
func ClinicalNotesContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldClinicalNotes, v))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldCancelledAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.NotPredicates(p))
}
