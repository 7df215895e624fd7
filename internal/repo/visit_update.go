// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/google/uuid"
)

// VisitUpdate is the builder for updating Visit entities.
type VisitUpdate struct {
	config
	hooks    []Hook
	mutation *VisitMutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdate) Where(ps ...predicate.Visit) *VisitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdate) SetUpdatedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *VisitUpdate) SetCreatedBy(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableCreatedBy(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *VisitUpdate) ClearCreatedBy() *VisitUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *VisitUpdate) SetUpdatedBy(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableUpdatedBy(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *VisitUpdate) ClearUpdatedBy() *VisitUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VisitUpdate) SetClinicID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableClinicID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *VisitUpdate) SetDoctorID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableDoctorID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VisitUpdate) SetPatientID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePatientID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitNumber sets the "visit_number" field.
func (_u *VisitUpdate) SetVisitNumber(v string) *VisitUpdate {
	_u.mutation.SetVisitNumber(v)
	return _u
}

// SetNillableVisitNumber sets the "visit_number" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitNumber(v *string) *VisitUpdate {
	if v != nil {
		_u.SetVisitNumber(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *VisitUpdate) SetVisitDate(v time.Time) *VisitUpdate {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitDate(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetVisitTime sets the "visit_time" field.
func (_u *VisitUpdate) SetVisitTime(v int16) *VisitUpdate {
	_u.mutation.ResetVisitTime()
	_u.mutation.SetVisitTime(v)
	return _u
}

// SetNillableVisitTime sets the "visit_time" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitTime(v *int16) *VisitUpdate {
	if v != nil {
		_u.SetVisitTime(*v)
	}
	return _u
}

// AddVisitTime adds value to the "visit_time" field.
func (_u *VisitUpdate) AddVisitTime(v int16) *VisitUpdate {
	_u.mutation.AddVisitTime(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *VisitUpdate) SetDurationMinutes(v int) *VisitUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableDurationMinutes(v *int) *VisitUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *VisitUpdate) AddDurationMinutes(v int) *VisitUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VisitUpdate) SetStatus(v visit.Status) *VisitUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableStatus(v *visit.Status) *VisitUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *VisitUpdate) SetConsultationFee(v int64) *VisitUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableConsultationFee(v *int64) *VisitUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *VisitUpdate) AddConsultationFee(v int64) *VisitUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *VisitUpdate) SetPaymentStatus(v visit.PaymentStatus) *VisitUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePaymentStatus(v *visit.PaymentStatus) *VisitUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *VisitUpdate) SetChiefComplaint(v string) *VisitUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableChiefComplaint(v *string) *VisitUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *VisitUpdate) ClearChiefComplaint() *VisitUpdate {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetClinicalNotes sets the "clinical_notes" field.
func (_u *VisitUpdate) SetClinicalNotes(v string) *VisitUpdate {
	_u.mutation.SetClinicalNotes(v)
	return _u
}

// SetNillableClinicalNotes sets the "clinical_notes" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableClinicalNotes(v *string) *VisitUpdate {
	if v != nil {
		_u.SetClinicalNotes(*v)
	}
	return _u
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (_u *VisitUpdate) ClearClinicalNotes() *VisitUpdate {
	_u.mutation.ClearClinicalNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *VisitUpdate) SetCancellationReason(v string) *VisitUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableCancellationReason(v *string) *VisitUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *VisitUpdate) ClearCancellationReason() *VisitUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *VisitUpdate) SetCancelledAt(v time.Time) *VisitUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableCancelledAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *VisitUpdate) ClearCancelledAt() *VisitUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VisitUpdate) SetCompletedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableCompletedAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VisitUpdate) ClearCompletedAt() *VisitUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdate) Mutation() *VisitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdate) check() error {
	if v, ok := _u.mutation.VisitNumber(); ok {
		if err := visit.VisitNumberValidator(v); err != nil {
			return &ValidationError{Name: "visit_number", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitTime(); ok {
		if err := visit.VisitTimeValidator(v); err != nil {
			return &ValidationError{Name: "visit_time", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := visit.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Visit.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := visit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Visit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := visit.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Visit.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(visit.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(visit.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(visit.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(visit.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(visit.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(visit.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitNumber(); ok {
		_spec.SetField(visit.FieldVisitNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitTime(); ok {
		_spec.SetField(visit.FieldVisitTime, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedVisitTime(); ok {
		_spec.AddField(visit.FieldVisitTime, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(visit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(visit.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(visit.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(visit.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(visit.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.ClinicalNotes(); ok {
		_spec.SetField(visit.FieldClinicalNotes, field.TypeString, value)
	}
	if _u.mutation.ClinicalNotesCleared() {
		_spec.ClearField(visit.FieldClinicalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(visit.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(visit.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(visit.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(visit.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(visit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(visit.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitUpdateOne is the builder for updating a single Visit entity.
type VisitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdateOne) SetUpdatedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *VisitUpdateOne) SetCreatedBy(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *VisitUpdateOne) ClearCreatedBy() *VisitUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *VisitUpdateOne) SetUpdatedBy(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableUpdatedBy(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *VisitUpdateOne) ClearUpdatedBy() *VisitUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VisitUpdateOne) SetClinicID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableClinicID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *VisitUpdateOne) SetDoctorID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableDoctorID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VisitUpdateOne) SetPatientID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePatientID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitNumber sets the "visit_number" field.
func (_u *VisitUpdateOne) SetVisitNumber(v string) *VisitUpdateOne {
	_u.mutation.SetVisitNumber(v)
	return _u
}

// SetNillableVisitNumber sets the "visit_number" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitNumber(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitNumber(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *VisitUpdateOne) SetVisitDate(v time.Time) *VisitUpdateOne {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitDate(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetVisitTime sets the "visit_time" field.
func (_u *VisitUpdateOne) SetVisitTime(v int16) *VisitUpdateOne {
	_u.mutation.ResetVisitTime()
	_u.mutation.SetVisitTime(v)
	return _u
}

// SetNillableVisitTime sets the "visit_time" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitTime(v *int16) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitTime(*v)
	}
	return _u
}

// AddVisitTime adds value to the "visit_time" field.
func (_u *VisitUpdateOne) AddVisitTime(v int16) *VisitUpdateOne {
	_u.mutation.AddVisitTime(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *VisitUpdateOne) SetDurationMinutes(v int) *VisitUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableDurationMinutes(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *VisitUpdateOne) AddDurationMinutes(v int) *VisitUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VisitUpdateOne) SetStatus(v visit.Status) *VisitUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableStatus(v *visit.Status) *VisitUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *VisitUpdateOne) SetConsultationFee(v int64) *VisitUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableConsultationFee(v *int64) *VisitUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *VisitUpdateOne) AddConsultationFee(v int64) *VisitUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *VisitUpdateOne) SetPaymentStatus(v visit.PaymentStatus) *VisitUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePaymentStatus(v *visit.PaymentStatus) *VisitUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *VisitUpdateOne) SetChiefComplaint(v string) *VisitUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableChiefComplaint(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *VisitUpdateOne) ClearChiefComplaint() *VisitUpdateOne {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetClinicalNotes sets the "clinical_notes" field.
func (_u *VisitUpdateOne) SetClinicalNotes(v string) *VisitUpdateOne {
	_u.mutation.SetClinicalNotes(v)
	return _u
}

// SetNillableClinicalNotes sets the "clinical_notes" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableClinicalNotes(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetClinicalNotes(*v)
	}
	return _u
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (_u *VisitUpdateOne) ClearClinicalNotes() *VisitUpdateOne {
	_u.mutation.ClearClinicalNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *VisitUpdateOne) SetCancellationReason(v string) *VisitUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableCancellationReason(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *VisitUpdateOne) ClearCancellationReason() *VisitUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *VisitUpdateOne) SetCancelledAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableCancelledAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *VisitUpdateOne) ClearCancelledAt() *VisitUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VisitUpdateOne) SetCompletedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableCompletedAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VisitUpdateOne) ClearCompletedAt() *VisitUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdateOne) Mutation() *VisitMutation {
	return _u.mutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdateOne) Where(ps ...predicate.Visit) *VisitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitUpdateOne) Select(field string, fields ...string) *VisitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visit entity.
func (_u *VisitUpdateOne) Save(ctx context.Context) (*Visit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdateOne) SaveX(ctx context.Context) *Visit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdateOne) check() error {
	if v, ok := _u.mutation.VisitNumber(); ok {
		if err := visit.VisitNumberValidator(v); err != nil {
			return &ValidationError{Name: "visit_number", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitTime(); ok {
		if err := visit.VisitTimeValidator(v); err != nil {
			return &ValidationError{Name: "visit_time", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := visit.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Visit.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := visit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Visit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := visit.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Visit.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitUpdateOne) sqlSave(ctx context.Context) (_node *Visit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Visit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visit.FieldID)
		for _, f := range fields {
			if !visit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != visit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(visit.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(visit.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(visit.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(visit.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(visit.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(visit.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitNumber(); ok {
		_spec.SetField(visit.FieldVisitNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitTime(); ok {
		_spec.SetField(visit.FieldVisitTime, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedVisitTime(); ok {
		_spec.AddField(visit.FieldVisitTime, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(visit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(visit.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(visit.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(visit.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(visit.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.ClinicalNotes(); ok {
		_spec.SetField(visit.FieldClinicalNotes, field.TypeString, value)
	}
	if _u.mutation.ClinicalNotesCleared() {
		_spec.ClearField(visit.FieldClinicalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(visit.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(visit.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(visit.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(visit.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(visit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(visit.FieldCompletedAt, field.TypeTime)
	}
	_node = &Visit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
