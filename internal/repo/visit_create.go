// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/google/uuid"
)

// VisitCreate is the builder for creating a Visit entity.
type VisitCreate struct {
	config
	mutation *VisitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitCreate) SetCreatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCreatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VisitCreate) SetUpdatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableUpdatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *VisitCreate) SetCreatedBy(v uuid.UUID) *VisitCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCreatedBy(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *VisitCreate) SetUpdatedBy(v uuid.UUID) *VisitCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *VisitCreate) SetNillableUpdatedBy(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *VisitCreate) SetClinicID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *VisitCreate) SetDoctorID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *VisitCreate) SetPatientID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVisitNumber sets the "visit_number" field.
func (_c *VisitCreate) SetVisitNumber(v string) *VisitCreate {
	_c.mutation.SetVisitNumber(v)
	return _c
}

// SetVisitDate sets the "visit_date" field.
func (_c *VisitCreate) SetVisitDate(v time.Time) *VisitCreate {
	_c.mutation.SetVisitDate(v)
	return _c
}

// SetVisitTime sets the "visit_time" field.
func (_c *VisitCreate) SetVisitTime(v int16) *VisitCreate {
	_c.mutation.SetVisitTime(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *VisitCreate) SetDurationMinutes(v int) *VisitCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *VisitCreate) SetNillableDurationMinutes(v *int) *VisitCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VisitCreate) SetStatus(v visit.Status) *VisitCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VisitCreate) SetNillableStatus(v *visit.Status) *VisitCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *VisitCreate) SetConsultationFee(v int64) *VisitCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_c *VisitCreate) SetNillableConsultationFee(v *int64) *VisitCreate {
	if v != nil {
		_c.SetConsultationFee(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *VisitCreate) SetPaymentStatus(v visit.PaymentStatus) *VisitCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *VisitCreate) SetNillablePaymentStatus(v *visit.PaymentStatus) *VisitCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *VisitCreate) SetChiefComplaint(v string) *VisitCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_c *VisitCreate) SetNillableChiefComplaint(v *string) *VisitCreate {
	if v != nil {
		_c.SetChiefComplaint(*v)
	}
	return _c
}

// SetClinicalNotes sets the "clinical_notes" field.
func (_c *VisitCreate) SetClinicalNotes(v string) *VisitCreate {
	_c.mutation.SetClinicalNotes(v)
	return _c
}

// SetNillableClinicalNotes sets the "clinical_notes" field if the given value is not nil.
func (_c *VisitCreate) SetNillableClinicalNotes(v *string) *VisitCreate {
	if v != nil {
		_c.SetClinicalNotes(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *VisitCreate) SetCancellationReason(v string) *VisitCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCancellationReason(v *string) *VisitCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *VisitCreate) SetCancelledAt(v time.Time) *VisitCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCancelledAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *VisitCreate) SetCompletedAt(v time.Time) *VisitCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCompletedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitCreate) SetID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitCreate) SetNillableID(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VisitMutation object of the builder.
func (_c *VisitCreate) Mutation() *VisitMutation {
	return _c.mutation
}

// Save creates the Visit in the database.
func (_c *VisitCreate) Save(ctx context.Context) (*Visit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitCreate) SaveX(ctx context.Context) *Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := visit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := visit.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := visit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		v := visit.DefaultConsultationFee
		_c.mutation.SetConsultationFee(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := visit.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Visit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Visit.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Visit.clinic_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Visit.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Visit.patient_id"`)}
	}
	if _, ok := _c.mutation.VisitNumber(); !ok {
		return &ValidationError{Name: "visit_number", err: errors.New(`repo: missing required field "Visit.visit_number"`)}
	}
	if v, ok := _c.mutation.VisitNumber(); ok {
		if err := visit.VisitNumberValidator(v); err != nil {
			return &ValidationError{Name: "visit_number", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VisitDate(); !ok {
		return &ValidationError{Name: "visit_date", err: errors.New(`repo: missing required field "Visit.visit_date"`)}
	}
	if _, ok := _c.mutation.VisitTime(); !ok {
		return &ValidationError{Name: "visit_time", err: errors.New(`repo: missing required field "Visit.visit_time"`)}
	}
	if v, ok := _c.mutation.VisitTime(); ok {
		if err := visit.VisitTimeValidator(v); err != nil {
			return &ValidationError{Name: "visit_time", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Visit.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := visit.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Visit.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Visit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := visit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Visit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Visit.consultation_fee"`)}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`repo: missing required field "Visit.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := visit.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Visit.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_c *VisitCreate) sqlSave(ctx context.Context) (*Visit, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VisitCreate) createSpec() (*Visit, *sqlgraph.CreateSpec) {
	var (
		_node = &Visit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visit.Table, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(visit.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(visit.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(visit.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(visit.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.VisitNumber(); ok {
		_spec.SetField(visit.FieldVisitNumber, field.TypeString, value)
		_node.VisitNumber = value
	}
	if value, ok := _c.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
		_node.VisitDate = value
	}
	if value, ok := _c.mutation.VisitTime(); ok {
		_spec.SetField(visit.FieldVisitTime, field.TypeInt16, value)
		_node.VisitTime = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(visit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(visit.FieldConsultationFee, field.TypeInt64, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(visit.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = &value
	}
	if value, ok := _c.mutation.ClinicalNotes(); ok {
		_spec.SetField(visit.FieldClinicalNotes, field.TypeString, value)
		_node.ClinicalNotes = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(visit.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(visit.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(visit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Visit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitCreate) OnConflict(opts ...sql.ConflictOption) *VisitUpsertOne {
	_c.conflict = opts
	return &VisitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitCreate) OnConflictColumns(columns ...string) *VisitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitUpsertOne{
		create: _c,
	}
}

type (
	// VisitUpsertOne is the builder for "upsert"-ing
	//  one Visit node.
	VisitUpsertOne struct {
		create *VisitCreate
	}

	// VisitUpsert is the "OnConflict" setter.
	VisitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsert) SetUpdatedAt(v time.Time) *VisitUpsert {
	u.Set(visit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsert) UpdateUpdatedAt() *VisitUpsert {
	u.SetExcluded(visit.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *VisitUpsert) SetCreatedBy(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *VisitUpsert) UpdateCreatedBy() *VisitUpsert {
	u.SetExcluded(visit.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *VisitUpsert) ClearCreatedBy() *VisitUpsert {
	u.SetNull(visit.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *VisitUpsert) SetUpdatedBy(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *VisitUpsert) UpdateUpdatedBy() *VisitUpsert {
	u.SetExcluded(visit.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *VisitUpsert) ClearUpdatedBy() *VisitUpsert {
	u.SetNull(visit.FieldUpdatedBy)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsert) SetClinicID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdateClinicID() *VisitUpsert {
	u.SetExcluded(visit.FieldClinicID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *VisitUpsert) SetDoctorID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdateDoctorID() *VisitUpsert {
	u.SetExcluded(visit.FieldDoctorID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsert) SetPatientID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePatientID() *VisitUpsert {
	u.SetExcluded(visit.FieldPatientID)
	return u
}

// SetVisitNumber sets the "visit_number" field.
func (u *VisitUpsert) SetVisitNumber(v string) *VisitUpsert {
	u.Set(visit.FieldVisitNumber, v)
	return u
}

// UpdateVisitNumber sets the "visit_number" field to the value that was provided on create.
func (u *VisitUpsert) UpdateVisitNumber() *VisitUpsert {
	u.SetExcluded(visit.FieldVisitNumber)
	return u
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsert) SetVisitDate(v time.Time) *VisitUpsert {
	u.Set(visit.FieldVisitDate, v)
	return u
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsert) UpdateVisitDate() *VisitUpsert {
	u.SetExcluded(visit.FieldVisitDate)
	return u
}

// SetVisitTime sets the "visit_time" field.
func (u *VisitUpsert) SetVisitTime(v int16) *VisitUpsert {
	u.Set(visit.FieldVisitTime, v)
	return u
}

// UpdateVisitTime sets the "visit_time" field to the value that was provided on create.
func (u *VisitUpsert) UpdateVisitTime() *VisitUpsert {
	u.SetExcluded(visit.FieldVisitTime)
	return u
}

// AddVisitTime adds v to the "visit_time" field.
func (u *VisitUpsert) AddVisitTime(v int16) *VisitUpsert {
	u.Add(visit.FieldVisitTime, v)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *VisitUpsert) SetDurationMinutes(v int) *VisitUpsert {
	u.Set(visit.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *VisitUpsert) UpdateDurationMinutes() *VisitUpsert {
	u.SetExcluded(visit.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *VisitUpsert) AddDurationMinutes(v int) *VisitUpsert {
	u.Add(visit.FieldDurationMinutes, v)
	return u
}

// SetStatus sets the "status" field.
func (u *VisitUpsert) SetStatus(v visit.Status) *VisitUpsert {
	u.Set(visit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VisitUpsert) UpdateStatus() *VisitUpsert {
	u.SetExcluded(visit.FieldStatus)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *VisitUpsert) SetConsultationFee(v int64) *VisitUpsert {
	u.Set(visit.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *VisitUpsert) UpdateConsultationFee() *VisitUpsert {
	u.SetExcluded(visit.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *VisitUpsert) AddConsultationFee(v int64) *VisitUpsert {
	u.Add(visit.FieldConsultationFee, v)
	return u
}

// SetPaymentStatus sets the "payment_status" field.
func (u *VisitUpsert) SetPaymentStatus(v visit.PaymentStatus) *VisitUpsert {
	u.Set(visit.FieldPaymentStatus, v)
	return u
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePaymentStatus() *VisitUpsert {
	u.SetExcluded(visit.FieldPaymentStatus)
	return u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsert) SetChiefComplaint(v string) *VisitUpsert {
	u.Set(visit.FieldChiefComplaint, v)
	return u
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsert) UpdateChiefComplaint() *VisitUpsert {
	u.SetExcluded(visit.FieldChiefComplaint)
	return u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsert) ClearChiefComplaint() *VisitUpsert {
	u.SetNull(visit.FieldChiefComplaint)
	return u
}

// SetClinicalNotes sets the "clinical_notes" field.
func (u *VisitUpsert) SetClinicalNotes(v string) *VisitUpsert {
	u.Set(visit.FieldClinicalNotes, v)
	return u
}

// UpdateClinicalNotes sets the "clinical_notes" field to the value that was provided on create.
func (u *VisitUpsert) UpdateClinicalNotes() *VisitUpsert {
	u.SetExcluded(visit.FieldClinicalNotes)
	return u
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (u *VisitUpsert) ClearClinicalNotes() *VisitUpsert {
	u.SetNull(visit.FieldClinicalNotes)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *VisitUpsert) SetCancellationReason(v string) *VisitUpsert {
	u.Set(visit.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *VisitUpsert) UpdateCancellationReason() *VisitUpsert {
	u.SetExcluded(visit.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *VisitUpsert) ClearCancellationReason() *VisitUpsert {
	u.SetNull(visit.FieldCancellationReason)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *VisitUpsert) SetCancelledAt(v time.Time) *VisitUpsert {
	u.Set(visit.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *VisitUpsert) UpdateCancelledAt() *VisitUpsert {
	u.SetExcluded(visit.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *VisitUpsert) ClearCancelledAt() *VisitUpsert {
	u.SetNull(visit.FieldCancelledAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *VisitUpsert) SetCompletedAt(v time.Time) *VisitUpsert {
	u.Set(visit.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *VisitUpsert) UpdateCompletedAt() *VisitUpsert {
	u.SetExcluded(visit.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *VisitUpsert) ClearCompletedAt() *VisitUpsert {
	u.SetNull(visit.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitUpsertOne) UpdateNewValues() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(visit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(visit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VisitUpsertOne) Ignore() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitUpsertOne) DoNothing() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitCreate.OnConflict
// documentation for more info.
func (u *VisitUpsertOne) Update(set func(*VisitUpsert)) *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsertOne) SetUpdatedAt(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateUpdatedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *VisitUpsertOne) SetCreatedBy(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateCreatedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *VisitUpsertOne) ClearCreatedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *VisitUpsertOne) SetUpdatedBy(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateUpdatedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *VisitUpsertOne) ClearUpdatedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsertOne) SetClinicID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateClinicID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *VisitUpsertOne) SetDoctorID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateDoctorID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateDoctorID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsertOne) SetPatientID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePatientID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitNumber sets the "visit_number" field.
func (u *VisitUpsertOne) SetVisitNumber(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitNumber(v)
	})
}

// UpdateVisitNumber sets the "visit_number" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateVisitNumber() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitNumber()
	})
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsertOne) SetVisitDate(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitDate(v)
	})
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateVisitDate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitDate()
	})
}

// SetVisitTime sets the "visit_time" field.
func (u *VisitUpsertOne) SetVisitTime(v int16) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitTime(v)
	})
}

// AddVisitTime adds v to the "visit_time" field.
func (u *VisitUpsertOne) AddVisitTime(v int16) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddVisitTime(v)
	})
}

// UpdateVisitTime sets the "visit_time" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateVisitTime() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *VisitUpsertOne) SetDurationMinutes(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *VisitUpsertOne) AddDurationMinutes(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateDurationMinutes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *VisitUpsertOne) SetStatus(v visit.Status) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateStatus() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateStatus()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *VisitUpsertOne) SetConsultationFee(v int64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *VisitUpsertOne) AddConsultationFee(v int64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateConsultationFee() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *VisitUpsertOne) SetPaymentStatus(v visit.PaymentStatus) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePaymentStatus() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsertOne) SetChiefComplaint(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateChiefComplaint() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsertOne) ClearChiefComplaint() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetClinicalNotes sets the "clinical_notes" field.
func (u *VisitUpsertOne) SetClinicalNotes(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicalNotes(v)
	})
}

// UpdateClinicalNotes sets the "clinical_notes" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateClinicalNotes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicalNotes()
	})
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (u *VisitUpsertOne) ClearClinicalNotes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearClinicalNotes()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *VisitUpsertOne) SetCancellationReason(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateCancellationReason() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *VisitUpsertOne) ClearCancellationReason() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCancellationReason()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *VisitUpsertOne) SetCancelledAt(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateCancelledAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *VisitUpsertOne) ClearCancelledAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *VisitUpsertOne) SetCompletedAt(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateCompletedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *VisitUpsertOne) ClearCompletedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *VisitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VisitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VisitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VisitUpsertOne.ID is not supported by MySQL driver. Use VisitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VisitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VisitCreateBulk is the builder for creating many Visit entities in bulk.
type VisitCreateBulk struct {
	config
	err      error
	builders []*VisitCreate
	conflict []sql.ConflictOption
}

// Save creates the Visit entities in the database.
func (_c *VisitCreateBulk) Save(ctx context.Context) ([]*Visit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Visit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VisitCreateBulk) SaveX(ctx context.Context) []*Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Visit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitCreateBulk) OnConflict(opts ...sql.ConflictOption) *VisitUpsertBulk {
	_c.conflict = opts
	return &VisitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitCreateBulk) OnConflictColumns(columns ...string) *VisitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitUpsertBulk{
		create: _c,
	}
}

// VisitUpsertBulk is the builder for "upsert"-ing
// a bulk of Visit nodes.
type VisitUpsertBulk struct {
	create *VisitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitUpsertBulk) UpdateNewValues() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(visit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(visit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VisitUpsertBulk) Ignore() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitUpsertBulk) DoNothing() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitCreateBulk.OnConflict
// documentation for more info.
func (u *VisitUpsertBulk) Update(set func(*VisitUpsert)) *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsertBulk) SetUpdatedAt(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateUpdatedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *VisitUpsertBulk) SetCreatedBy(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateCreatedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *VisitUpsertBulk) ClearCreatedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *VisitUpsertBulk) SetUpdatedBy(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateUpdatedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *VisitUpsertBulk) ClearUpdatedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsertBulk) SetClinicID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateClinicID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *VisitUpsertBulk) SetDoctorID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateDoctorID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateDoctorID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsertBulk) SetPatientID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePatientID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitNumber sets the "visit_number" field.
func (u *VisitUpsertBulk) SetVisitNumber(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitNumber(v)
	})
}

// UpdateVisitNumber sets the "visit_number" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateVisitNumber() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitNumber()
	})
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsertBulk) SetVisitDate(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitDate(v)
	})
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateVisitDate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitDate()
	})
}

// SetVisitTime sets the "visit_time" field.
func (u *VisitUpsertBulk) SetVisitTime(v int16) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitTime(v)
	})
}

// AddVisitTime adds v to the "visit_time" field.
func (u *VisitUpsertBulk) AddVisitTime(v int16) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddVisitTime(v)
	})
}

// UpdateVisitTime sets the "visit_time" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateVisitTime() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *VisitUpsertBulk) SetDurationMinutes(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *VisitUpsertBulk) AddDurationMinutes(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateDurationMinutes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *VisitUpsertBulk) SetStatus(v visit.Status) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateStatus() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateStatus()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *VisitUpsertBulk) SetConsultationFee(v int64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *VisitUpsertBulk) AddConsultationFee(v int64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateConsultationFee() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *VisitUpsertBulk) SetPaymentStatus(v visit.PaymentStatus) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePaymentStatus() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsertBulk) SetChiefComplaint(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateChiefComplaint() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsertBulk) ClearChiefComplaint() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetClinicalNotes sets the "clinical_notes" field.
func (u *VisitUpsertBulk) SetClinicalNotes(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicalNotes(v)
	})
}

// UpdateClinicalNotes sets the "clinical_notes" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateClinicalNotes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicalNotes()
	})
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (u *VisitUpsertBulk) ClearClinicalNotes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearClinicalNotes()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *VisitUpsertBulk) SetCancellationReason(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateCancellationReason() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *VisitUpsertBulk) ClearCancellationReason() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCancellationReason()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *VisitUpsertBulk) SetCancelledAt(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateCancelledAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *VisitUpsertBulk) ClearCancelledAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *VisitUpsertBulk) SetCompletedAt(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateCompletedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *VisitUpsertBulk) ClearCompletedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *VisitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VisitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VisitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
