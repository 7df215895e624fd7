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
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	"github.com/google/uuid"
)

// ClinicMemberCreate is the builder for creating a ClinicMember entity.
type ClinicMemberCreate struct {
	config
	mutation *ClinicMemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClinicID sets the "clinic_id" field.
func (_c *ClinicMemberCreate) SetClinicID(v uuid.UUID) *ClinicMemberCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ClinicMemberCreate) SetUserID(v uuid.UUID) *ClinicMemberCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ClinicMemberCreate) SetDisplayName(v string) *ClinicMemberCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ClinicMemberCreate) SetRole(v clinicmember.Role) *ClinicMemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *ClinicMemberCreate) SetSpecialization(v string) *ClinicMemberCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_c *ClinicMemberCreate) SetNillableSpecialization(v *string) *ClinicMemberCreate {
	if v != nil {
		_c.SetSpecialization(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ClinicMemberCreate) SetIsActive(v bool) *ClinicMemberCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ClinicMemberCreate) SetNillableIsActive(v *bool) *ClinicMemberCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *ClinicMemberCreate) SetJoinedAt(v time.Time) *ClinicMemberCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *ClinicMemberCreate) SetNillableJoinedAt(v *time.Time) *ClinicMemberCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicMemberCreate) SetID(v uuid.UUID) *ClinicMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicMemberCreate) SetNillableID(v *uuid.UUID) *ClinicMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClinicMemberMutation object of the builder.
func (_c *ClinicMemberCreate) Mutation() *ClinicMemberMutation {
	return _c.mutation
}

// Save creates the ClinicMember in the database.
func (_c *ClinicMemberCreate) Save(ctx context.Context) (*ClinicMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicMemberCreate) SaveX(ctx context.Context) *ClinicMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicMemberCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := clinicmember.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := clinicmember.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicmember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicMemberCreate) check() error {
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ClinicMember.clinic_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "ClinicMember.user_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`repo: missing required field "ClinicMember.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := clinicmember.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "ClinicMember.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := clinicmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialization(); ok {
		if err := clinicmember.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.specialization": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ClinicMember.is_active"`)}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`repo: missing required field "ClinicMember.joined_at"`)}
	}
	return nil
}

func (_c *ClinicMemberCreate) sqlSave(ctx context.Context) (*ClinicMember, error) {
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

func (_c *ClinicMemberCreate) createSpec() (*ClinicMember, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicmember.Table, sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(clinicmember.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(clinicmember.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(clinicmember.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(clinicmember.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(clinicmember.FieldSpecialization, field.TypeString, value)
		_node.Specialization = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(clinicmember.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(clinicmember.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicMember.Create().
//		SetClinicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicMemberUpsert) {
//			SetClinicID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicMemberCreate) OnConflict(opts ...sql.ConflictOption) *ClinicMemberUpsertOne {
	_c.conflict = opts
	return &ClinicMemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicMemberCreate) OnConflictColumns(columns ...string) *ClinicMemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicMemberUpsertOne{
		create: _c,
	}
}

type (
	// ClinicMemberUpsertOne is the builder for "upsert"-ing
	//  one ClinicMember node.
	ClinicMemberUpsertOne struct {
		create *ClinicMemberCreate
	}

	// ClinicMemberUpsert is the "OnConflict" setter.
	ClinicMemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMemberUpsert) SetClinicID(v uuid.UUID) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateClinicID() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldClinicID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ClinicMemberUpsert) SetUserID(v uuid.UUID) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateUserID() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldUserID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *ClinicMemberUpsert) SetDisplayName(v string) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateDisplayName() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldDisplayName)
	return u
}

// SetRole sets the "role" field.
func (u *ClinicMemberUpsert) SetRole(v clinicmember.Role) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateRole() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldRole)
	return u
}

// SetSpecialization sets the "specialization" field.
func (u *ClinicMemberUpsert) SetSpecialization(v string) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldSpecialization, v)
	return u
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateSpecialization() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldSpecialization)
	return u
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *ClinicMemberUpsert) ClearSpecialization() *ClinicMemberUpsert {
	u.SetNull(clinicmember.FieldSpecialization)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ClinicMemberUpsert) SetIsActive(v bool) *ClinicMemberUpsert {
	u.Set(clinicmember.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicMemberUpsert) UpdateIsActive() *ClinicMemberUpsert {
	u.SetExcluded(clinicmember.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicmember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicMemberUpsertOne) UpdateNewValues() *ClinicMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinicmember.FieldID)
		}
		if _, exists := u.create.mutation.JoinedAt(); exists {
			s.SetIgnore(clinicmember.FieldJoinedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicMemberUpsertOne) Ignore() *ClinicMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicMemberUpsertOne) DoNothing() *ClinicMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicMemberCreate.OnConflict
// documentation for more info.
func (u *ClinicMemberUpsertOne) Update(set func(*ClinicMemberUpsert)) *ClinicMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMemberUpsertOne) SetClinicID(v uuid.UUID) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateClinicID() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClinicMemberUpsertOne) SetUserID(v uuid.UUID) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateUserID() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ClinicMemberUpsertOne) SetDisplayName(v string) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateDisplayName() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateDisplayName()
	})
}

// SetRole sets the "role" field.
func (u *ClinicMemberUpsertOne) SetRole(v clinicmember.Role) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateRole() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateRole()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *ClinicMemberUpsertOne) SetSpecialization(v string) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateSpecialization() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateSpecialization()
	})
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *ClinicMemberUpsertOne) ClearSpecialization() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.ClearSpecialization()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicMemberUpsertOne) SetIsActive(v bool) *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicMemberUpsertOne) UpdateIsActive() *ClinicMemberUpsertOne {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClinicMemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicMemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicMemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicMemberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicMemberUpsertOne.ID is not supported by MySQL driver. Use ClinicMemberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicMemberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicMemberCreateBulk is the builder for creating many ClinicMember entities in bulk.
type ClinicMemberCreateBulk struct {
	config
	err      error
	builders []*ClinicMemberCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicMember entities in the database.
func (_c *ClinicMemberCreateBulk) Save(ctx context.Context) ([]*ClinicMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMemberMutation)
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
func (_c *ClinicMemberCreateBulk) SaveX(ctx context.Context) []*ClinicMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicMember.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicMemberUpsert) {
//			SetClinicID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicMemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicMemberUpsertBulk {
	_c.conflict = opts
	return &ClinicMemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicMemberCreateBulk) OnConflictColumns(columns ...string) *ClinicMemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicMemberUpsertBulk{
		create: _c,
	}
}

// ClinicMemberUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicMember nodes.
type ClinicMemberUpsertBulk struct {
	create *ClinicMemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicmember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicMemberUpsertBulk) UpdateNewValues() *ClinicMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinicmember.FieldID)
			}
			if _, exists := b.mutation.JoinedAt(); exists {
				s.SetIgnore(clinicmember.FieldJoinedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicMember.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicMemberUpsertBulk) Ignore() *ClinicMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicMemberUpsertBulk) DoNothing() *ClinicMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicMemberCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicMemberUpsertBulk) Update(set func(*ClinicMemberUpsert)) *ClinicMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMemberUpsertBulk) SetClinicID(v uuid.UUID) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateClinicID() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClinicMemberUpsertBulk) SetUserID(v uuid.UUID) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateUserID() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ClinicMemberUpsertBulk) SetDisplayName(v string) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateDisplayName() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateDisplayName()
	})
}

// SetRole sets the "role" field.
func (u *ClinicMemberUpsertBulk) SetRole(v clinicmember.Role) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateRole() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateRole()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *ClinicMemberUpsertBulk) SetSpecialization(v string) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateSpecialization() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateSpecialization()
	})
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *ClinicMemberUpsertBulk) ClearSpecialization() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.ClearSpecialization()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicMemberUpsertBulk) SetIsActive(v bool) *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicMemberUpsertBulk) UpdateIsActive() *ClinicMemberUpsertBulk {
	return u.Update(func(s *ClinicMemberUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClinicMemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicMemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicMemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicMemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
