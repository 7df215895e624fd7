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
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/google/uuid"
)

// AvailabilityPatternCreate is the builder for creating a AvailabilityPattern entity.
type AvailabilityPatternCreate struct {
	config
	mutation *AvailabilityPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityPatternCreate) SetCreatedAt(v time.Time) *AvailabilityPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityPatternCreate) SetUpdatedAt(v time.Time) *AvailabilityPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AvailabilityPatternCreate) SetCreatedBy(v uuid.UUID) *AvailabilityPatternCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableCreatedBy(v *uuid.UUID) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *AvailabilityPatternCreate) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableUpdatedBy(v *uuid.UUID) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AvailabilityPatternCreate) SetClinicID(v uuid.UUID) *AvailabilityPatternCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AvailabilityPatternCreate) SetDoctorID(v uuid.UUID) *AvailabilityPatternCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *AvailabilityPatternCreate) SetDayOfWeek(v int8) *AvailabilityPatternCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *AvailabilityPatternCreate) SetStartMinute(v int16) *AvailabilityPatternCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetEndMinute sets the "end_minute" field.
func (_c *AvailabilityPatternCreate) SetEndMinute(v int16) *AvailabilityPatternCreate {
	_c.mutation.SetEndMinute(v)
	return _c
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_c *AvailabilityPatternCreate) SetSlotDurationMinutes(v int) *AvailabilityPatternCreate {
	_c.mutation.SetSlotDurationMinutes(v)
	return _c
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableSlotDurationMinutes(v *int) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetSlotDurationMinutes(*v)
	}
	return _c
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_c *AvailabilityPatternCreate) SetBufferMinutes(v int) *AvailabilityPatternCreate {
	_c.mutation.SetBufferMinutes(v)
	return _c
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableBufferMinutes(v *int) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetBufferMinutes(*v)
	}
	return _c
}

// SetMaxPatients sets the "max_patients" field.
func (_c *AvailabilityPatternCreate) SetMaxPatients(v int) *AvailabilityPatternCreate {
	_c.mutation.SetMaxPatients(v)
	return _c
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableMaxPatients(v *int) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetMaxPatients(*v)
	}
	return _c
}

// SetAvailabilityType sets the "availability_type" field.
func (_c *AvailabilityPatternCreate) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternCreate {
	_c.mutation.SetAvailabilityType(v)
	return _c
}

// SetNillableAvailabilityType sets the "availability_type" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableAvailabilityType(v *availabilitypattern.AvailabilityType) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetAvailabilityType(*v)
	}
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *AvailabilityPatternCreate) SetEffectiveFrom(v time.Time) *AvailabilityPatternCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetEffectiveUntil sets the "effective_until" field.
func (_c *AvailabilityPatternCreate) SetEffectiveUntil(v time.Time) *AvailabilityPatternCreate {
	_c.mutation.SetEffectiveUntil(v)
	return _c
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableEffectiveUntil(v *time.Time) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetEffectiveUntil(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AvailabilityPatternCreate) SetIsActive(v bool) *AvailabilityPatternCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableIsActive(v *bool) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AvailabilityPatternCreate) SetNotes(v string) *AvailabilityPatternCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableNotes(v *string) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityPatternCreate) SetID(v uuid.UUID) *AvailabilityPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityPatternCreate) SetNillableID(v *uuid.UUID) *AvailabilityPatternCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityPatternMutation object of the builder.
func (_c *AvailabilityPatternCreate) Mutation() *AvailabilityPatternMutation {
	return _c.mutation
}

// Save creates the AvailabilityPattern in the database.
func (_c *AvailabilityPatternCreate) Save(ctx context.Context) (*AvailabilityPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityPatternCreate) SaveX(ctx context.Context) *AvailabilityPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityPatternCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilitypattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilitypattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SlotDurationMinutes(); !ok {
		v := availabilitypattern.DefaultSlotDurationMinutes
		_c.mutation.SetSlotDurationMinutes(v)
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		v := availabilitypattern.DefaultBufferMinutes
		_c.mutation.SetBufferMinutes(v)
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		v := availabilitypattern.DefaultMaxPatients
		_c.mutation.SetMaxPatients(v)
	}
	if _, ok := _c.mutation.AvailabilityType(); !ok {
		v := availabilitypattern.DefaultAvailabilityType
		_c.mutation.SetAvailabilityType(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := availabilitypattern.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilitypattern.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityPatternCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityPattern.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "AvailabilityPattern.clinic_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "AvailabilityPattern.doctor_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "AvailabilityPattern.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := availabilitypattern.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "AvailabilityPattern.start_minute"`)}
	}
	if v, ok := _c.mutation.StartMinute(); ok {
		if err := availabilitypattern.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.start_minute": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndMinute(); !ok {
		return &ValidationError{Name: "end_minute", err: errors.New(`repo: missing required field "AvailabilityPattern.end_minute"`)}
	}
	if v, ok := _c.mutation.EndMinute(); ok {
		if err := availabilitypattern.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.end_minute": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotDurationMinutes(); !ok {
		return &ValidationError{Name: "slot_duration_minutes", err: errors.New(`repo: missing required field "AvailabilityPattern.slot_duration_minutes"`)}
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		return &ValidationError{Name: "buffer_minutes", err: errors.New(`repo: missing required field "AvailabilityPattern.buffer_minutes"`)}
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		return &ValidationError{Name: "max_patients", err: errors.New(`repo: missing required field "AvailabilityPattern.max_patients"`)}
	}
	if v, ok := _c.mutation.MaxPatients(); ok {
		if err := availabilitypattern.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.max_patients": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvailabilityType(); !ok {
		return &ValidationError{Name: "availability_type", err: errors.New(`repo: missing required field "AvailabilityPattern.availability_type"`)}
	}
	if v, ok := _c.mutation.AvailabilityType(); ok {
		if err := availabilitypattern.AvailabilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "availability_type", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.availability_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EffectiveFrom(); !ok {
		return &ValidationError{Name: "effective_from", err: errors.New(`repo: missing required field "AvailabilityPattern.effective_from"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "AvailabilityPattern.is_active"`)}
	}
	return nil
}

func (_c *AvailabilityPatternCreate) sqlSave(ctx context.Context) (*AvailabilityPattern, error) {
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

func (_c *AvailabilityPatternCreate) createSpec() (*AvailabilityPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilitypattern.Table, sqlgraph.NewFieldSpec(availabilitypattern.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilitypattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilitypattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(availabilitypattern.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(availabilitypattern.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilitypattern.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(availabilitypattern.FieldStartMinute, field.TypeInt16, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.EndMinute(); ok {
		_spec.SetField(availabilitypattern.FieldEndMinute, field.TypeInt16, value)
		_node.EndMinute = value
	}
	if value, ok := _c.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldSlotDurationMinutes, field.TypeInt, value)
		_node.SlotDurationMinutes = value
	}
	if value, ok := _c.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldBufferMinutes, field.TypeInt, value)
		_node.BufferMinutes = value
	}
	if value, ok := _c.mutation.MaxPatients(); ok {
		_spec.SetField(availabilitypattern.FieldMaxPatients, field.TypeInt, value)
		_node.MaxPatients = value
	}
	if value, ok := _c.mutation.AvailabilityType(); ok {
		_spec.SetField(availabilitypattern.FieldAvailabilityType, field.TypeEnum, value)
		_node.AvailabilityType = value
	}
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = value
	}
	if value, ok := _c.mutation.EffectiveUntil(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveUntil, field.TypeTime, value)
		_node.EffectiveUntil = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(availabilitypattern.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(availabilitypattern.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AvailabilityPattern.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityPatternUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityPatternCreate) OnConflict(opts ...sql.ConflictOption) *AvailabilityPatternUpsertOne {
	_c.conflict = opts
	return &AvailabilityPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityPatternCreate) OnConflictColumns(columns ...string) *AvailabilityPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityPatternUpsertOne{
		create: _c,
	}
}

type (
	// AvailabilityPatternUpsertOne is the builder for "upsert"-ing
	//  one AvailabilityPattern node.
	AvailabilityPatternUpsertOne struct {
		create *AvailabilityPatternCreate
	}

	// AvailabilityPatternUpsert is the "OnConflict" setter.
	AvailabilityPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityPatternUpsert) SetUpdatedAt(v time.Time) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateUpdatedAt() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *AvailabilityPatternUpsert) SetCreatedBy(v uuid.UUID) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateCreatedBy() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AvailabilityPatternUpsert) ClearCreatedBy() *AvailabilityPatternUpsert {
	u.SetNull(availabilitypattern.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *AvailabilityPatternUpsert) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateUpdatedBy() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *AvailabilityPatternUpsert) ClearUpdatedBy() *AvailabilityPatternUpsert {
	u.SetNull(availabilitypattern.FieldUpdatedBy)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityPatternUpsert) SetClinicID(v uuid.UUID) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateClinicID() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldClinicID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityPatternUpsert) SetDoctorID(v uuid.UUID) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateDoctorID() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldDoctorID)
	return u
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityPatternUpsert) SetDayOfWeek(v int8) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldDayOfWeek, v)
	return u
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateDayOfWeek() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldDayOfWeek)
	return u
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityPatternUpsert) AddDayOfWeek(v int8) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldDayOfWeek, v)
	return u
}

// SetStartMinute sets the "start_minute" field.
func (u *AvailabilityPatternUpsert) SetStartMinute(v int16) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldStartMinute, v)
	return u
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateStartMinute() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldStartMinute)
	return u
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AvailabilityPatternUpsert) AddStartMinute(v int16) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldStartMinute, v)
	return u
}

// SetEndMinute sets the "end_minute" field.
func (u *AvailabilityPatternUpsert) SetEndMinute(v int16) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldEndMinute, v)
	return u
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateEndMinute() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldEndMinute)
	return u
}

// AddEndMinute adds v to the "end_minute" field.
func (u *AvailabilityPatternUpsert) AddEndMinute(v int16) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldEndMinute, v)
	return u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsert) SetSlotDurationMinutes(v int) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldSlotDurationMinutes, v)
	return u
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateSlotDurationMinutes() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldSlotDurationMinutes)
	return u
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsert) AddSlotDurationMinutes(v int) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldSlotDurationMinutes, v)
	return u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *AvailabilityPatternUpsert) SetBufferMinutes(v int) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldBufferMinutes, v)
	return u
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateBufferMinutes() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldBufferMinutes)
	return u
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *AvailabilityPatternUpsert) AddBufferMinutes(v int) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldBufferMinutes, v)
	return u
}

// SetMaxPatients sets the "max_patients" field.
func (u *AvailabilityPatternUpsert) SetMaxPatients(v int) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldMaxPatients, v)
	return u
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateMaxPatients() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldMaxPatients)
	return u
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *AvailabilityPatternUpsert) AddMaxPatients(v int) *AvailabilityPatternUpsert {
	u.Add(availabilitypattern.FieldMaxPatients, v)
	return u
}

// SetAvailabilityType sets the "availability_type" field.
func (u *AvailabilityPatternUpsert) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldAvailabilityType, v)
	return u
}

// UpdateAvailabilityType sets the "availability_type" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateAvailabilityType() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldAvailabilityType)
	return u
}

// SetEffectiveFrom sets the "effective_from" field.
func (u *AvailabilityPatternUpsert) SetEffectiveFrom(v time.Time) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldEffectiveFrom, v)
	return u
}

// UpdateEffectiveFrom sets the "effective_from" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateEffectiveFrom() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldEffectiveFrom)
	return u
}

// SetEffectiveUntil sets the "effective_until" field.
func (u *AvailabilityPatternUpsert) SetEffectiveUntil(v time.Time) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldEffectiveUntil, v)
	return u
}

// UpdateEffectiveUntil sets the "effective_until" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateEffectiveUntil() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldEffectiveUntil)
	return u
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (u *AvailabilityPatternUpsert) ClearEffectiveUntil() *AvailabilityPatternUpsert {
	u.SetNull(availabilitypattern.FieldEffectiveUntil)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityPatternUpsert) SetIsActive(v bool) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateIsActive() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldIsActive)
	return u
}

// SetNotes sets the "notes" field.
func (u *AvailabilityPatternUpsert) SetNotes(v string) *AvailabilityPatternUpsert {
	u.Set(availabilitypattern.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsert) UpdateNotes() *AvailabilityPatternUpsert {
	u.SetExcluded(availabilitypattern.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *AvailabilityPatternUpsert) ClearNotes() *AvailabilityPatternUpsert {
	u.SetNull(availabilitypattern.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilitypattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityPatternUpsertOne) UpdateNewValues() *AvailabilityPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(availabilitypattern.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(availabilitypattern.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AvailabilityPatternUpsertOne) Ignore() *AvailabilityPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityPatternUpsertOne) DoNothing() *AvailabilityPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityPatternCreate.OnConflict
// documentation for more info.
func (u *AvailabilityPatternUpsertOne) Update(set func(*AvailabilityPatternUpsert)) *AvailabilityPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityPatternUpsertOne) SetUpdatedAt(v time.Time) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateUpdatedAt() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AvailabilityPatternUpsertOne) SetCreatedBy(v uuid.UUID) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateCreatedBy() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AvailabilityPatternUpsertOne) ClearCreatedBy() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *AvailabilityPatternUpsertOne) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateUpdatedBy() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *AvailabilityPatternUpsertOne) ClearUpdatedBy() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityPatternUpsertOne) SetClinicID(v uuid.UUID) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateClinicID() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityPatternUpsertOne) SetDoctorID(v uuid.UUID) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateDoctorID() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityPatternUpsertOne) SetDayOfWeek(v int8) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityPatternUpsertOne) AddDayOfWeek(v int8) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateDayOfWeek() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *AvailabilityPatternUpsertOne) SetStartMinute(v int16) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AvailabilityPatternUpsertOne) AddStartMinute(v int16) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateStartMinute() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateStartMinute()
	})
}

// SetEndMinute sets the "end_minute" field.
func (u *AvailabilityPatternUpsertOne) SetEndMinute(v int16) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEndMinute(v)
	})
}

// AddEndMinute adds v to the "end_minute" field.
func (u *AvailabilityPatternUpsertOne) AddEndMinute(v int16) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddEndMinute(v)
	})
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateEndMinute() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEndMinute()
	})
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsertOne) SetSlotDurationMinutes(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetSlotDurationMinutes(v)
	})
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsertOne) AddSlotDurationMinutes(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddSlotDurationMinutes(v)
	})
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateSlotDurationMinutes() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateSlotDurationMinutes()
	})
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *AvailabilityPatternUpsertOne) SetBufferMinutes(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetBufferMinutes(v)
	})
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *AvailabilityPatternUpsertOne) AddBufferMinutes(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddBufferMinutes(v)
	})
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateBufferMinutes() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateBufferMinutes()
	})
}

// SetMaxPatients sets the "max_patients" field.
func (u *AvailabilityPatternUpsertOne) SetMaxPatients(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetMaxPatients(v)
	})
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *AvailabilityPatternUpsertOne) AddMaxPatients(v int) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddMaxPatients(v)
	})
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateMaxPatients() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateMaxPatients()
	})
}

// SetAvailabilityType sets the "availability_type" field.
func (u *AvailabilityPatternUpsertOne) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetAvailabilityType(v)
	})
}

// UpdateAvailabilityType sets the "availability_type" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateAvailabilityType() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateAvailabilityType()
	})
}

// SetEffectiveFrom sets the "effective_from" field.
func (u *AvailabilityPatternUpsertOne) SetEffectiveFrom(v time.Time) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEffectiveFrom(v)
	})
}

// UpdateEffectiveFrom sets the "effective_from" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateEffectiveFrom() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEffectiveFrom()
	})
}

// SetEffectiveUntil sets the "effective_until" field.
func (u *AvailabilityPatternUpsertOne) SetEffectiveUntil(v time.Time) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEffectiveUntil(v)
	})
}

// UpdateEffectiveUntil sets the "effective_until" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateEffectiveUntil() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEffectiveUntil()
	})
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (u *AvailabilityPatternUpsertOne) ClearEffectiveUntil() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearEffectiveUntil()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityPatternUpsertOne) SetIsActive(v bool) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateIsActive() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateIsActive()
	})
}

// SetNotes sets the "notes" field.
func (u *AvailabilityPatternUpsertOne) SetNotes(v string) *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertOne) UpdateNotes() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *AvailabilityPatternUpsertOne) ClearNotes() *AvailabilityPatternUpsertOne {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *AvailabilityPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AvailabilityPatternUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AvailabilityPatternUpsertOne.ID is not supported by MySQL driver. Use AvailabilityPatternUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AvailabilityPatternUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AvailabilityPatternCreateBulk is the builder for creating many AvailabilityPattern entities in bulk.
type AvailabilityPatternCreateBulk struct {
	config
	err      error
	builders []*AvailabilityPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the AvailabilityPattern entities in the database.
func (_c *AvailabilityPatternCreateBulk) Save(ctx context.Context) ([]*AvailabilityPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityPatternMutation)
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
func (_c *AvailabilityPatternCreateBulk) SaveX(ctx context.Context) []*AvailabilityPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AvailabilityPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityPatternUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *AvailabilityPatternUpsertBulk {
	_c.conflict = opts
	return &AvailabilityPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityPatternCreateBulk) OnConflictColumns(columns ...string) *AvailabilityPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityPatternUpsertBulk{
		create: _c,
	}
}

// AvailabilityPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of AvailabilityPattern nodes.
type AvailabilityPatternUpsertBulk struct {
	create *AvailabilityPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilitypattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityPatternUpsertBulk) UpdateNewValues() *AvailabilityPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(availabilitypattern.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(availabilitypattern.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AvailabilityPatternUpsertBulk) Ignore() *AvailabilityPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityPatternUpsertBulk) DoNothing() *AvailabilityPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityPatternCreateBulk.OnConflict
// documentation for more info.
func (u *AvailabilityPatternUpsertBulk) Update(set func(*AvailabilityPatternUpsert)) *AvailabilityPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityPatternUpsertBulk) SetUpdatedAt(v time.Time) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateUpdatedAt() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AvailabilityPatternUpsertBulk) SetCreatedBy(v uuid.UUID) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateCreatedBy() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AvailabilityPatternUpsertBulk) ClearCreatedBy() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *AvailabilityPatternUpsertBulk) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateUpdatedBy() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *AvailabilityPatternUpsertBulk) ClearUpdatedBy() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityPatternUpsertBulk) SetClinicID(v uuid.UUID) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateClinicID() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityPatternUpsertBulk) SetDoctorID(v uuid.UUID) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateDoctorID() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityPatternUpsertBulk) SetDayOfWeek(v int8) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityPatternUpsertBulk) AddDayOfWeek(v int8) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateDayOfWeek() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *AvailabilityPatternUpsertBulk) SetStartMinute(v int16) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AvailabilityPatternUpsertBulk) AddStartMinute(v int16) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateStartMinute() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateStartMinute()
	})
}

// SetEndMinute sets the "end_minute" field.
func (u *AvailabilityPatternUpsertBulk) SetEndMinute(v int16) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEndMinute(v)
	})
}

// AddEndMinute adds v to the "end_minute" field.
func (u *AvailabilityPatternUpsertBulk) AddEndMinute(v int16) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddEndMinute(v)
	})
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateEndMinute() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEndMinute()
	})
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsertBulk) SetSlotDurationMinutes(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetSlotDurationMinutes(v)
	})
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityPatternUpsertBulk) AddSlotDurationMinutes(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddSlotDurationMinutes(v)
	})
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateSlotDurationMinutes() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateSlotDurationMinutes()
	})
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *AvailabilityPatternUpsertBulk) SetBufferMinutes(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetBufferMinutes(v)
	})
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *AvailabilityPatternUpsertBulk) AddBufferMinutes(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddBufferMinutes(v)
	})
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateBufferMinutes() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateBufferMinutes()
	})
}

// SetMaxPatients sets the "max_patients" field.
func (u *AvailabilityPatternUpsertBulk) SetMaxPatients(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetMaxPatients(v)
	})
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *AvailabilityPatternUpsertBulk) AddMaxPatients(v int) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.AddMaxPatients(v)
	})
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateMaxPatients() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateMaxPatients()
	})
}

// SetAvailabilityType sets the "availability_type" field.
func (u *AvailabilityPatternUpsertBulk) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetAvailabilityType(v)
	})
}

// UpdateAvailabilityType sets the "availability_type" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateAvailabilityType() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateAvailabilityType()
	})
}

// SetEffectiveFrom sets the "effective_from" field.
func (u *AvailabilityPatternUpsertBulk) SetEffectiveFrom(v time.Time) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEffectiveFrom(v)
	})
}

// UpdateEffectiveFrom sets the "effective_from" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateEffectiveFrom() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEffectiveFrom()
	})
}

// SetEffectiveUntil sets the "effective_until" field.
func (u *AvailabilityPatternUpsertBulk) SetEffectiveUntil(v time.Time) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetEffectiveUntil(v)
	})
}

// UpdateEffectiveUntil sets the "effective_until" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateEffectiveUntil() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateEffectiveUntil()
	})
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (u *AvailabilityPatternUpsertBulk) ClearEffectiveUntil() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearEffectiveUntil()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityPatternUpsertBulk) SetIsActive(v bool) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateIsActive() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateIsActive()
	})
}

// SetNotes sets the "notes" field.
func (u *AvailabilityPatternUpsertBulk) SetNotes(v string) *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *AvailabilityPatternUpsertBulk) UpdateNotes() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *AvailabilityPatternUpsertBulk) ClearNotes() *AvailabilityPatternUpsertBulk {
	return u.Update(func(s *AvailabilityPatternUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *AvailabilityPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AvailabilityPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
