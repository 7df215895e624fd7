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
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityPatternUpdate is the builder for updating AvailabilityPattern entities.
type AvailabilityPatternUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityPatternMutation
}

// Where appends a list predicates to the AvailabilityPatternUpdate builder.
func (_u *AvailabilityPatternUpdate) Where(ps ...predicate.AvailabilityPattern) *AvailabilityPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityPatternUpdate) SetUpdatedAt(v time.Time) *AvailabilityPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AvailabilityPatternUpdate) SetCreatedBy(v uuid.UUID) *AvailabilityPatternUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableCreatedBy(v *uuid.UUID) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AvailabilityPatternUpdate) ClearCreatedBy() *AvailabilityPatternUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *AvailabilityPatternUpdate) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableUpdatedBy(v *uuid.UUID) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *AvailabilityPatternUpdate) ClearUpdatedBy() *AvailabilityPatternUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AvailabilityPatternUpdate) SetClinicID(v uuid.UUID) *AvailabilityPatternUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableClinicID(v *uuid.UUID) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilityPatternUpdate) SetDoctorID(v uuid.UUID) *AvailabilityPatternUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableDoctorID(v *uuid.UUID) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityPatternUpdate) SetDayOfWeek(v int8) *AvailabilityPatternUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableDayOfWeek(v *int8) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityPatternUpdate) AddDayOfWeek(v int8) *AvailabilityPatternUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityPatternUpdate) SetStartMinute(v int16) *AvailabilityPatternUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableStartMinute(v *int16) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityPatternUpdate) AddStartMinute(v int16) *AvailabilityPatternUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AvailabilityPatternUpdate) SetEndMinute(v int16) *AvailabilityPatternUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableEndMinute(v *int16) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AvailabilityPatternUpdate) AddEndMinute(v int16) *AvailabilityPatternUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_u *AvailabilityPatternUpdate) SetSlotDurationMinutes(v int) *AvailabilityPatternUpdate {
	_u.mutation.ResetSlotDurationMinutes()
	_u.mutation.SetSlotDurationMinutes(v)
	return _u
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableSlotDurationMinutes(v *int) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetSlotDurationMinutes(*v)
	}
	return _u
}

// AddSlotDurationMinutes adds value to the "slot_duration_minutes" field.
func (_u *AvailabilityPatternUpdate) AddSlotDurationMinutes(v int) *AvailabilityPatternUpdate {
	_u.mutation.AddSlotDurationMinutes(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *AvailabilityPatternUpdate) SetBufferMinutes(v int) *AvailabilityPatternUpdate {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableBufferMinutes(v *int) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *AvailabilityPatternUpdate) AddBufferMinutes(v int) *AvailabilityPatternUpdate {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *AvailabilityPatternUpdate) SetMaxPatients(v int) *AvailabilityPatternUpdate {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableMaxPatients(v *int) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *AvailabilityPatternUpdate) AddMaxPatients(v int) *AvailabilityPatternUpdate {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetAvailabilityType sets the "availability_type" field.
func (_u *AvailabilityPatternUpdate) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternUpdate {
	_u.mutation.SetAvailabilityType(v)
	return _u
}

// SetNillableAvailabilityType sets the "availability_type" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableAvailabilityType(v *availabilitypattern.AvailabilityType) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetAvailabilityType(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *AvailabilityPatternUpdate) SetEffectiveFrom(v time.Time) *AvailabilityPatternUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableEffectiveFrom(v *time.Time) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveUntil sets the "effective_until" field.
func (_u *AvailabilityPatternUpdate) SetEffectiveUntil(v time.Time) *AvailabilityPatternUpdate {
	_u.mutation.SetEffectiveUntil(v)
	return _u
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableEffectiveUntil(v *time.Time) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetEffectiveUntil(*v)
	}
	return _u
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (_u *AvailabilityPatternUpdate) ClearEffectiveUntil() *AvailabilityPatternUpdate {
	_u.mutation.ClearEffectiveUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityPatternUpdate) SetIsActive(v bool) *AvailabilityPatternUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableIsActive(v *bool) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AvailabilityPatternUpdate) SetNotes(v string) *AvailabilityPatternUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdate) SetNillableNotes(v *string) *AvailabilityPatternUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AvailabilityPatternUpdate) ClearNotes() *AvailabilityPatternUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AvailabilityPatternMutation object of the builder.
func (_u *AvailabilityPatternUpdate) Mutation() *AvailabilityPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilitypattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityPatternUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilitypattern.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := availabilitypattern.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := availabilitypattern.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.end_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := availabilitypattern.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.max_patients": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvailabilityType(); ok {
		if err := availabilitypattern.AvailabilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "availability_type", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.availability_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilitypattern.Table, availabilitypattern.Columns, sqlgraph.NewFieldSpec(availabilitypattern.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilitypattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(availabilitypattern.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(availabilitypattern.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(availabilitypattern.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(availabilitypattern.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilitypattern.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilitypattern.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilitypattern.FieldStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilitypattern.FieldStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(availabilitypattern.FieldEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(availabilitypattern.FieldEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotDurationMinutes(); ok {
		_spec.AddField(availabilitypattern.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(availabilitypattern.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(availabilitypattern.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(availabilitypattern.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailabilityType(); ok {
		_spec.SetField(availabilitypattern.FieldAvailabilityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveUntil(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveUntil, field.TypeTime, value)
	}
	if _u.mutation.EffectiveUntilCleared() {
		_spec.ClearField(availabilitypattern.FieldEffectiveUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilitypattern.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(availabilitypattern.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(availabilitypattern.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilitypattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityPatternUpdateOne is the builder for updating a single AvailabilityPattern entity.
type AvailabilityPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityPatternMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityPatternUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AvailabilityPatternUpdateOne) SetCreatedBy(v uuid.UUID) *AvailabilityPatternUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AvailabilityPatternUpdateOne) ClearCreatedBy() *AvailabilityPatternUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *AvailabilityPatternUpdateOne) SetUpdatedBy(v uuid.UUID) *AvailabilityPatternUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableUpdatedBy(v *uuid.UUID) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *AvailabilityPatternUpdateOne) ClearUpdatedBy() *AvailabilityPatternUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AvailabilityPatternUpdateOne) SetClinicID(v uuid.UUID) *AvailabilityPatternUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableClinicID(v *uuid.UUID) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilityPatternUpdateOne) SetDoctorID(v uuid.UUID) *AvailabilityPatternUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityPatternUpdateOne) SetDayOfWeek(v int8) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableDayOfWeek(v *int8) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityPatternUpdateOne) AddDayOfWeek(v int8) *AvailabilityPatternUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityPatternUpdateOne) SetStartMinute(v int16) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableStartMinute(v *int16) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityPatternUpdateOne) AddStartMinute(v int16) *AvailabilityPatternUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AvailabilityPatternUpdateOne) SetEndMinute(v int16) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableEndMinute(v *int16) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AvailabilityPatternUpdateOne) AddEndMinute(v int16) *AvailabilityPatternUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_u *AvailabilityPatternUpdateOne) SetSlotDurationMinutes(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetSlotDurationMinutes()
	_u.mutation.SetSlotDurationMinutes(v)
	return _u
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableSlotDurationMinutes(v *int) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetSlotDurationMinutes(*v)
	}
	return _u
}

// AddSlotDurationMinutes adds value to the "slot_duration_minutes" field.
func (_u *AvailabilityPatternUpdateOne) AddSlotDurationMinutes(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.AddSlotDurationMinutes(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *AvailabilityPatternUpdateOne) SetBufferMinutes(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableBufferMinutes(v *int) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *AvailabilityPatternUpdateOne) AddBufferMinutes(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *AvailabilityPatternUpdateOne) SetMaxPatients(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableMaxPatients(v *int) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *AvailabilityPatternUpdateOne) AddMaxPatients(v int) *AvailabilityPatternUpdateOne {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetAvailabilityType sets the "availability_type" field.
func (_u *AvailabilityPatternUpdateOne) SetAvailabilityType(v availabilitypattern.AvailabilityType) *AvailabilityPatternUpdateOne {
	_u.mutation.SetAvailabilityType(v)
	return _u
}

// SetNillableAvailabilityType sets the "availability_type" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableAvailabilityType(v *availabilitypattern.AvailabilityType) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetAvailabilityType(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *AvailabilityPatternUpdateOne) SetEffectiveFrom(v time.Time) *AvailabilityPatternUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableEffectiveFrom(v *time.Time) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveUntil sets the "effective_until" field.
func (_u *AvailabilityPatternUpdateOne) SetEffectiveUntil(v time.Time) *AvailabilityPatternUpdateOne {
	_u.mutation.SetEffectiveUntil(v)
	return _u
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableEffectiveUntil(v *time.Time) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetEffectiveUntil(*v)
	}
	return _u
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (_u *AvailabilityPatternUpdateOne) ClearEffectiveUntil() *AvailabilityPatternUpdateOne {
	_u.mutation.ClearEffectiveUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityPatternUpdateOne) SetIsActive(v bool) *AvailabilityPatternUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableIsActive(v *bool) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AvailabilityPatternUpdateOne) SetNotes(v string) *AvailabilityPatternUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AvailabilityPatternUpdateOne) SetNillableNotes(v *string) *AvailabilityPatternUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AvailabilityPatternUpdateOne) ClearNotes() *AvailabilityPatternUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AvailabilityPatternMutation object of the builder.
func (_u *AvailabilityPatternUpdateOne) Mutation() *AvailabilityPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityPatternUpdate builder.
func (_u *AvailabilityPatternUpdateOne) Where(ps ...predicate.AvailabilityPattern) *AvailabilityPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityPatternUpdateOne) Select(field string, fields ...string) *AvailabilityPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityPattern entity.
func (_u *AvailabilityPatternUpdateOne) Save(ctx context.Context) (*AvailabilityPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityPatternUpdateOne) SaveX(ctx context.Context) *AvailabilityPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilitypattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityPatternUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilitypattern.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := availabilitypattern.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := availabilitypattern.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.end_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := availabilitypattern.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.max_patients": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvailabilityType(); ok {
		if err := availabilitypattern.AvailabilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "availability_type", err: fmt.Errorf(`repo: validator failed for field "AvailabilityPattern.availability_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityPatternUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilitypattern.Table, availabilitypattern.Columns, sqlgraph.NewFieldSpec(availabilitypattern.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilitypattern.FieldID)
		for _, f := range fields {
			if !availabilitypattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilitypattern.FieldID {
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
		_spec.SetField(availabilitypattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(availabilitypattern.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(availabilitypattern.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(availabilitypattern.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(availabilitypattern.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(availabilitypattern.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilitypattern.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilitypattern.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilitypattern.FieldStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilitypattern.FieldStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(availabilitypattern.FieldEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(availabilitypattern.FieldEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotDurationMinutes(); ok {
		_spec.AddField(availabilitypattern.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(availabilitypattern.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(availabilitypattern.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(availabilitypattern.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(availabilitypattern.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailabilityType(); ok {
		_spec.SetField(availabilitypattern.FieldAvailabilityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveUntil(); ok {
		_spec.SetField(availabilitypattern.FieldEffectiveUntil, field.TypeTime, value)
	}
	if _u.mutation.EffectiveUntilCleared() {
		_spec.ClearField(availabilitypattern.FieldEffectiveUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilitypattern.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(availabilitypattern.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(availabilitypattern.FieldNotes, field.TypeString)
	}
	_node = &AvailabilityPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilitypattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
