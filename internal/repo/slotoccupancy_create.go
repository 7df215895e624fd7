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
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/google/uuid"
)

// SlotOccupancyCreate is the builder for creating a SlotOccupancy entity.
type SlotOccupancyCreate struct {
	config
	mutation *SlotOccupancyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlotOccupancyCreate) SetCreatedAt(v time.Time) *SlotOccupancyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlotOccupancyCreate) SetNillableCreatedAt(v *time.Time) *SlotOccupancyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlotOccupancyCreate) SetUpdatedAt(v time.Time) *SlotOccupancyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlotOccupancyCreate) SetNillableUpdatedAt(v *time.Time) *SlotOccupancyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *SlotOccupancyCreate) SetClinicID(v uuid.UUID) *SlotOccupancyCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetVisitID sets the "visit_id" field.
func (_c *SlotOccupancyCreate) SetVisitID(v uuid.UUID) *SlotOccupancyCreate {
	_c.mutation.SetVisitID(v)
	return _c
}

// SetPatternID sets the "pattern_id" field.
func (_c *SlotOccupancyCreate) SetPatternID(v uuid.UUID) *SlotOccupancyCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetSlotDate sets the "slot_date" field.
func (_c *SlotOccupancyCreate) SetSlotDate(v time.Time) *SlotOccupancyCreate {
	_c.mutation.SetSlotDate(v)
	return _c
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (_c *SlotOccupancyCreate) SetSlotStartMinute(v int16) *SlotOccupancyCreate {
	_c.mutation.SetSlotStartMinute(v)
	return _c
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (_c *SlotOccupancyCreate) SetSlotEndMinute(v int16) *SlotOccupancyCreate {
	_c.mutation.SetSlotEndMinute(v)
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *SlotOccupancyCreate) SetReleasedAt(v time.Time) *SlotOccupancyCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *SlotOccupancyCreate) SetNillableReleasedAt(v *time.Time) *SlotOccupancyCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlotOccupancyCreate) SetID(v uuid.UUID) *SlotOccupancyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SlotOccupancyCreate) SetNillableID(v *uuid.UUID) *SlotOccupancyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SlotOccupancyMutation object of the builder.
func (_c *SlotOccupancyCreate) Mutation() *SlotOccupancyMutation {
	return _c.mutation
}

// Save creates the SlotOccupancy in the database.
func (_c *SlotOccupancyCreate) Save(ctx context.Context) (*SlotOccupancy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlotOccupancyCreate) SaveX(ctx context.Context) *SlotOccupancy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlotOccupancyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlotOccupancyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlotOccupancyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slotoccupancy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slotoccupancy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := slotoccupancy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlotOccupancyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SlotOccupancy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SlotOccupancy.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "SlotOccupancy.clinic_id"`)}
	}
	if _, ok := _c.mutation.VisitID(); !ok {
		return &ValidationError{Name: "visit_id", err: errors.New(`repo: missing required field "SlotOccupancy.visit_id"`)}
	}
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`repo: missing required field "SlotOccupancy.pattern_id"`)}
	}
	if _, ok := _c.mutation.SlotDate(); !ok {
		return &ValidationError{Name: "slot_date", err: errors.New(`repo: missing required field "SlotOccupancy.slot_date"`)}
	}
	if _, ok := _c.mutation.SlotStartMinute(); !ok {
		return &ValidationError{Name: "slot_start_minute", err: errors.New(`repo: missing required field "SlotOccupancy.slot_start_minute"`)}
	}
	if _, ok := _c.mutation.SlotEndMinute(); !ok {
		return &ValidationError{Name: "slot_end_minute", err: errors.New(`repo: missing required field "SlotOccupancy.slot_end_minute"`)}
	}
	return nil
}

func (_c *SlotOccupancyCreate) sqlSave(ctx context.Context) (*SlotOccupancy, error) {
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

func (_c *SlotOccupancyCreate) createSpec() (*SlotOccupancy, *sqlgraph.CreateSpec) {
	var (
		_node = &SlotOccupancy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slotoccupancy.Table, sqlgraph.NewFieldSpec(slotoccupancy.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slotoccupancy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slotoccupancy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(slotoccupancy.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.VisitID(); ok {
		_spec.SetField(slotoccupancy.FieldVisitID, field.TypeUUID, value)
		_node.VisitID = value
	}
	if value, ok := _c.mutation.PatternID(); ok {
		_spec.SetField(slotoccupancy.FieldPatternID, field.TypeUUID, value)
		_node.PatternID = value
	}
	if value, ok := _c.mutation.SlotDate(); ok {
		_spec.SetField(slotoccupancy.FieldSlotDate, field.TypeTime, value)
		_node.SlotDate = value
	}
	if value, ok := _c.mutation.SlotStartMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotStartMinute, field.TypeInt16, value)
		_node.SlotStartMinute = value
	}
	if value, ok := _c.mutation.SlotEndMinute(); ok {
		_spec.SetField(slotoccupancy.FieldSlotEndMinute, field.TypeInt16, value)
		_node.SlotEndMinute = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(slotoccupancy.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlotOccupancy.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlotOccupancyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SlotOccupancyCreate) OnConflict(opts ...sql.ConflictOption) *SlotOccupancyUpsertOne {
	_c.conflict = opts
	return &SlotOccupancyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlotOccupancyCreate) OnConflictColumns(columns ...string) *SlotOccupancyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlotOccupancyUpsertOne{
		create: _c,
	}
}

type (
	// SlotOccupancyUpsertOne is the builder for "upsert"-ing
	//  one SlotOccupancy node.
	SlotOccupancyUpsertOne struct {
		create *SlotOccupancyCreate
	}

	// SlotOccupancyUpsert is the "OnConflict" setter.
	SlotOccupancyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotOccupancyUpsert) SetUpdatedAt(v time.Time) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateUpdatedAt() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *SlotOccupancyUpsert) SetClinicID(v uuid.UUID) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateClinicID() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldClinicID)
	return u
}

// SetVisitID sets the "visit_id" field.
func (u *SlotOccupancyUpsert) SetVisitID(v uuid.UUID) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldVisitID, v)
	return u
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateVisitID() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldVisitID)
	return u
}

// SetPatternID sets the "pattern_id" field.
func (u *SlotOccupancyUpsert) SetPatternID(v uuid.UUID) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldPatternID, v)
	return u
}

// UpdatePatternID sets the "pattern_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdatePatternID() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldPatternID)
	return u
}

// SetSlotDate sets the "slot_date" field.
func (u *SlotOccupancyUpsert) SetSlotDate(v time.Time) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldSlotDate, v)
	return u
}

// UpdateSlotDate sets the "slot_date" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateSlotDate() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldSlotDate)
	return u
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (u *SlotOccupancyUpsert) SetSlotStartMinute(v int16) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldSlotStartMinute, v)
	return u
}

// UpdateSlotStartMinute sets the "slot_start_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateSlotStartMinute() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldSlotStartMinute)
	return u
}

// AddSlotStartMinute adds v to the "slot_start_minute" field.
func (u *SlotOccupancyUpsert) AddSlotStartMinute(v int16) *SlotOccupancyUpsert {
	u.Add(slotoccupancy.FieldSlotStartMinute, v)
	return u
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (u *SlotOccupancyUpsert) SetSlotEndMinute(v int16) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldSlotEndMinute, v)
	return u
}

// UpdateSlotEndMinute sets the "slot_end_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateSlotEndMinute() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldSlotEndMinute)
	return u
}

// AddSlotEndMinute adds v to the "slot_end_minute" field.
func (u *SlotOccupancyUpsert) AddSlotEndMinute(v int16) *SlotOccupancyUpsert {
	u.Add(slotoccupancy.FieldSlotEndMinute, v)
	return u
}

// SetReleasedAt sets the "released_at" field.
func (u *SlotOccupancyUpsert) SetReleasedAt(v time.Time) *SlotOccupancyUpsert {
	u.Set(slotoccupancy.FieldReleasedAt, v)
	return u
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsert) UpdateReleasedAt() *SlotOccupancyUpsert {
	u.SetExcluded(slotoccupancy.FieldReleasedAt)
	return u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *SlotOccupancyUpsert) ClearReleasedAt() *SlotOccupancyUpsert {
	u.SetNull(slotoccupancy.FieldReleasedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slotoccupancy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SlotOccupancyUpsertOne) UpdateNewValues() *SlotOccupancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(slotoccupancy.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slotoccupancy.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlotOccupancyUpsertOne) Ignore() *SlotOccupancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlotOccupancyUpsertOne) DoNothing() *SlotOccupancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlotOccupancyCreate.OnConflict
// documentation for more info.
func (u *SlotOccupancyUpsertOne) Update(set func(*SlotOccupancyUpsert)) *SlotOccupancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlotOccupancyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotOccupancyUpsertOne) SetUpdatedAt(v time.Time) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateUpdatedAt() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SlotOccupancyUpsertOne) SetClinicID(v uuid.UUID) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateClinicID() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateClinicID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *SlotOccupancyUpsertOne) SetVisitID(v uuid.UUID) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateVisitID() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateVisitID()
	})
}

// SetPatternID sets the "pattern_id" field.
func (u *SlotOccupancyUpsertOne) SetPatternID(v uuid.UUID) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetPatternID(v)
	})
}

// UpdatePatternID sets the "pattern_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdatePatternID() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdatePatternID()
	})
}

// SetSlotDate sets the "slot_date" field.
func (u *SlotOccupancyUpsertOne) SetSlotDate(v time.Time) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotDate(v)
	})
}

// UpdateSlotDate sets the "slot_date" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateSlotDate() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotDate()
	})
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (u *SlotOccupancyUpsertOne) SetSlotStartMinute(v int16) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotStartMinute(v)
	})
}

// AddSlotStartMinute adds v to the "slot_start_minute" field.
func (u *SlotOccupancyUpsertOne) AddSlotStartMinute(v int16) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.AddSlotStartMinute(v)
	})
}

// UpdateSlotStartMinute sets the "slot_start_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateSlotStartMinute() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotStartMinute()
	})
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (u *SlotOccupancyUpsertOne) SetSlotEndMinute(v int16) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotEndMinute(v)
	})
}

// AddSlotEndMinute adds v to the "slot_end_minute" field.
func (u *SlotOccupancyUpsertOne) AddSlotEndMinute(v int16) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.AddSlotEndMinute(v)
	})
}

// UpdateSlotEndMinute sets the "slot_end_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateSlotEndMinute() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotEndMinute()
	})
}

// SetReleasedAt sets the "released_at" field.
func (u *SlotOccupancyUpsertOne) SetReleasedAt(v time.Time) *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetReleasedAt(v)
	})
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsertOne) UpdateReleasedAt() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateReleasedAt()
	})
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *SlotOccupancyUpsertOne) ClearReleasedAt() *SlotOccupancyUpsertOne {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.ClearReleasedAt()
	})
}

// Exec executes the query.
func (u *SlotOccupancyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SlotOccupancyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlotOccupancyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlotOccupancyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SlotOccupancyUpsertOne.ID is not supported by MySQL driver. Use SlotOccupancyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlotOccupancyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlotOccupancyCreateBulk is the builder for creating many SlotOccupancy entities in bulk.
type SlotOccupancyCreateBulk struct {
	config
	err      error
	builders []*SlotOccupancyCreate
	conflict []sql.ConflictOption
}

// Save creates the SlotOccupancy entities in the database.
func (_c *SlotOccupancyCreateBulk) Save(ctx context.Context) ([]*SlotOccupancy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SlotOccupancy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlotOccupancyMutation)
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
func (_c *SlotOccupancyCreateBulk) SaveX(ctx context.Context) []*SlotOccupancy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlotOccupancyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlotOccupancyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlotOccupancy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlotOccupancyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SlotOccupancyCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlotOccupancyUpsertBulk {
	_c.conflict = opts
	return &SlotOccupancyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlotOccupancyCreateBulk) OnConflictColumns(columns ...string) *SlotOccupancyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlotOccupancyUpsertBulk{
		create: _c,
	}
}

// SlotOccupancyUpsertBulk is the builder for "upsert"-ing
// a bulk of SlotOccupancy nodes.
type SlotOccupancyUpsertBulk struct {
	create *SlotOccupancyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slotoccupancy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SlotOccupancyUpsertBulk) UpdateNewValues() *SlotOccupancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(slotoccupancy.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slotoccupancy.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlotOccupancy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlotOccupancyUpsertBulk) Ignore() *SlotOccupancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlotOccupancyUpsertBulk) DoNothing() *SlotOccupancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlotOccupancyCreateBulk.OnConflict
// documentation for more info.
func (u *SlotOccupancyUpsertBulk) Update(set func(*SlotOccupancyUpsert)) *SlotOccupancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlotOccupancyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlotOccupancyUpsertBulk) SetUpdatedAt(v time.Time) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateUpdatedAt() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SlotOccupancyUpsertBulk) SetClinicID(v uuid.UUID) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateClinicID() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateClinicID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *SlotOccupancyUpsertBulk) SetVisitID(v uuid.UUID) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateVisitID() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateVisitID()
	})
}

// SetPatternID sets the "pattern_id" field.
func (u *SlotOccupancyUpsertBulk) SetPatternID(v uuid.UUID) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetPatternID(v)
	})
}

// UpdatePatternID sets the "pattern_id" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdatePatternID() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdatePatternID()
	})
}

// SetSlotDate sets the "slot_date" field.
func (u *SlotOccupancyUpsertBulk) SetSlotDate(v time.Time) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotDate(v)
	})
}

// UpdateSlotDate sets the "slot_date" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateSlotDate() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotDate()
	})
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (u *SlotOccupancyUpsertBulk) SetSlotStartMinute(v int16) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotStartMinute(v)
	})
}

// AddSlotStartMinute adds v to the "slot_start_minute" field.
func (u *SlotOccupancyUpsertBulk) AddSlotStartMinute(v int16) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.AddSlotStartMinute(v)
	})
}

// UpdateSlotStartMinute sets the "slot_start_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateSlotStartMinute() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotStartMinute()
	})
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (u *SlotOccupancyUpsertBulk) SetSlotEndMinute(v int16) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetSlotEndMinute(v)
	})
}

// AddSlotEndMinute adds v to the "slot_end_minute" field.
func (u *SlotOccupancyUpsertBulk) AddSlotEndMinute(v int16) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.AddSlotEndMinute(v)
	})
}

// UpdateSlotEndMinute sets the "slot_end_minute" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateSlotEndMinute() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateSlotEndMinute()
	})
}

// SetReleasedAt sets the "released_at" field.
func (u *SlotOccupancyUpsertBulk) SetReleasedAt(v time.Time) *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.SetReleasedAt(v)
	})
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *SlotOccupancyUpsertBulk) UpdateReleasedAt() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.UpdateReleasedAt()
	})
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *SlotOccupancyUpsertBulk) ClearReleasedAt() *SlotOccupancyUpsertBulk {
	return u.Update(func(s *SlotOccupancyUpsert) {
		s.ClearReleasedAt()
	})
}

// Exec executes the query.
func (u *SlotOccupancyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SlotOccupancyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SlotOccupancyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlotOccupancyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
