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
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/google/uuid"
)

// SlotOccupancyUpdate is the builder for updating SlotOccupancy entities.
type SlotOccupancyUpdate struct {
	config
	hooks    []Hook
	mutation *SlotOccupancyMutation
}

// Where appends a list predicates to the SlotOccupancyUpdate builder.
func (_u *SlotOccupancyUpdate) Where(ps ...predicate.SlotOccupancy) *SlotOccupancyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlotOccupancyUpdate) SetUpdatedAt(v time.Time) *SlotOccupancyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SlotOccupancyUpdate) SetClinicID(v uuid.UUID) *SlotOccupancyUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableClinicID(v *uuid.UUID) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *SlotOccupancyUpdate) SetVisitID(v uuid.UUID) *SlotOccupancyUpdate {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableVisitID(v *uuid.UUID) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// SetPatternID sets the "pattern_id" field.
func (_u *SlotOccupancyUpdate) SetPatternID(v uuid.UUID) *SlotOccupancyUpdate {
	_u.mutation.SetPatternID(v)
	return _u
}

// SetNillablePatternID sets the "pattern_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillablePatternID(v *uuid.UUID) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetPatternID(*v)
	}
	return _u
}

// SetSlotDate sets the "slot_date" field.
func (_u *SlotOccupancyUpdate) SetSlotDate(v time.Time) *SlotOccupancyUpdate {
	_u.mutation.SetSlotDate(v)
	return _u
}

// SetNillableSlotDate sets the "slot_date" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableSlotDate(v *time.Time) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetSlotDate(*v)
	}
	return _u
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (_u *SlotOccupancyUpdate) SetSlotStartMinute(v int16) *SlotOccupancyUpdate {
	_u.mutation.ResetSlotStartMinute()
	_u.mutation.SetSlotStartMinute(v)
	return _u
}

// SetNillableSlotStartMinute sets the "slot_start_minute" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableSlotStartMinute(v *int16) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetSlotStartMinute(*v)
	}
	return _u
}

// AddSlotStartMinute adds value to the "slot_start_minute" field.
func (_u *SlotOccupancyUpdate) AddSlotStartMinute(v int16) *SlotOccupancyUpdate {
	_u.mutation.AddSlotStartMinute(v)
	return _u
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (_u *SlotOccupancyUpdate) SetSlotEndMinute(v int16) *SlotOccupancyUpdate {
	_u.mutation.ResetSlotEndMinute()
	_u.mutation.SetSlotEndMinute(v)
	return _u
}

// SetNillableSlotEndMinute sets the "slot_end_minute" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableSlotEndMinute(v *int16) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetSlotEndMinute(*v)
	}
	return _u
}

// AddSlotEndMinute adds value to the "slot_end_minute" field.
func (_u *SlotOccupancyUpdate) AddSlotEndMinute(v int16) *SlotOccupancyUpdate {
	_u.mutation.AddSlotEndMinute(v)
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *SlotOccupancyUpdate) SetReleasedAt(v time.Time) *SlotOccupancyUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *SlotOccupancyUpdate) SetNillableReleasedAt(v *time.Time) *SlotOccupancyUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *SlotOccupancyUpdate) ClearReleasedAt() *SlotOccupancyUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the SlotOccupancyMutation object of the builder.
func (_u *SlotOccupancyUpdate) Mutation() *SlotOccupancyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlotOccupancyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlotOccupancyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlotOccupancyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlotOccupancyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlotOccupancyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slotoccupancy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlotOccupancyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slotoccupancy.Table, slotoccupancy.Columns, sqlgraph.NewFieldSpec(slotoccupancy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slotoccupancy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(slotoccupancy.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(slotoccupancy.FieldVisitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatternID(); ok {
		_spec.SetField(slotoccupancy.FieldPatternID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SlotDate(); ok {
		_spec.SetField(slotoccupancy.FieldSlotDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SlotStartMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedSlotStartMinute(); ok {
		_spec.AddField(slotoccupancy.FieldSlotStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.SlotEndMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedSlotEndMinute(); ok {
		_spec.AddField(slotoccupancy.FieldSlotEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(slotoccupancy.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(slotoccupancy.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slotoccupancy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlotOccupancyUpdateOne is the builder for updating a single SlotOccupancy entity.
type SlotOccupancyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlotOccupancyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlotOccupancyUpdateOne) SetUpdatedAt(v time.Time) *SlotOccupancyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SlotOccupancyUpdateOne) SetClinicID(v uuid.UUID) *SlotOccupancyUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableClinicID(v *uuid.UUID) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *SlotOccupancyUpdateOne) SetVisitID(v uuid.UUID) *SlotOccupancyUpdateOne {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableVisitID(v *uuid.UUID) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// SetPatternID sets the "pattern_id" field.
func (_u *SlotOccupancyUpdateOne) SetPatternID(v uuid.UUID) *SlotOccupancyUpdateOne {
	_u.mutation.SetPatternID(v)
	return _u
}

// SetNillablePatternID sets the "pattern_id" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillablePatternID(v *uuid.UUID) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetPatternID(*v)
	}
	return _u
}

// SetSlotDate sets the "slot_date" field.
func (_u *SlotOccupancyUpdateOne) SetSlotDate(v time.Time) *SlotOccupancyUpdateOne {
	_u.mutation.SetSlotDate(v)
	return _u
}

// SetNillableSlotDate sets the "slot_date" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableSlotDate(v *time.Time) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetSlotDate(*v)
	}
	return _u
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (_u *SlotOccupancyUpdateOne) SetSlotStartMinute(v int16) *SlotOccupancyUpdateOne {
	_u.mutation.ResetSlotStartMinute()
	_u.mutation.SetSlotStartMinute(v)
	return _u
}

// SetNillableSlotStartMinute sets the "slot_start_minute" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableSlotStartMinute(v *int16) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetSlotStartMinute(*v)
	}
	return _u
}

// AddSlotStartMinute adds value to the "slot_start_minute" field.
func (_u *SlotOccupancyUpdateOne) AddSlotStartMinute(v int16) *SlotOccupancyUpdateOne {
	_u.mutation.AddSlotStartMinute(v)
	return _u
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (_u *SlotOccupancyUpdateOne) SetSlotEndMinute(v int16) *SlotOccupancyUpdateOne {
	_u.mutation.ResetSlotEndMinute()
	_u.mutation.SetSlotEndMinute(v)
	return _u
}

// SetNillableSlotEndMinute sets the "slot_end_minute" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableSlotEndMinute(v *int16) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetSlotEndMinute(*v)
	}
	return _u
}

// AddSlotEndMinute adds value to the "slot_end_minute" field.
func (_u *SlotOccupancyUpdateOne) AddSlotEndMinute(v int16) *SlotOccupancyUpdateOne {
	_u.mutation.AddSlotEndMinute(v)
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *SlotOccupancyUpdateOne) SetReleasedAt(v time.Time) *SlotOccupancyUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *SlotOccupancyUpdateOne) SetNillableReleasedAt(v *time.Time) *SlotOccupancyUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *SlotOccupancyUpdateOne) ClearReleasedAt() *SlotOccupancyUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the SlotOccupancyMutation object of the builder.
func (_u *SlotOccupancyUpdateOne) Mutation() *SlotOccupancyMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlotOccupancyUpdate builder.
func (_u *SlotOccupancyUpdateOne) Where(ps ...predicate.SlotOccupancy) *SlotOccupancyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlotOccupancyUpdateOne) Select(field string, fields ...string) *SlotOccupancyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SlotOccupancy entity.
func (_u *SlotOccupancyUpdateOne) Save(ctx context.Context) (*SlotOccupancy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlotOccupancyUpdateOne) SaveX(ctx context.Context) *SlotOccupancy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlotOccupancyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlotOccupancyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlotOccupancyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slotoccupancy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlotOccupancyUpdateOne) sqlSave(ctx context.Context) (_node *SlotOccupancy, err error) {
	_spec := sqlgraph.NewUpdateSpec(slotoccupancy.Table, slotoccupancy.Columns, sqlgraph.NewFieldSpec(slotoccupancy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SlotOccupancy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slotoccupancy.FieldID)
		for _, f := range fields {
			if !slotoccupancy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != slotoccupancy.FieldID {
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
		_spec.SetField(slotoccupancy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(slotoccupancy.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(slotoccupancy.FieldVisitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatternID(); ok {
		_spec.SetField(slotoccupancy.FieldPatternID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SlotDate(); ok {
		_spec.SetField(slotoccupancy.FieldSlotDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SlotStartMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedSlotStartMinute(); ok {
		_spec.AddField(slotoccupancy.FieldSlotStartMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.SlotEndMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.AddedSlotEndMinute(); ok {
		_spec.AddField(slotoccupancy.FieldSlotEndMinute, field.TypeInt16, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(slotoccupancy.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(slotoccupancy.FieldReleasedAt, field.TypeTime)
	}
	_node = &SlotOccupancy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slotoccupancy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
