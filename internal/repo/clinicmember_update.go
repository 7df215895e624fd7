// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/google/uuid"
)

// ClinicMemberUpdate is the builder for updating ClinicMember entities.
type ClinicMemberUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMemberMutation
}

// Where appends a list predicates to the ClinicMemberUpdate builder.
func (_u *ClinicMemberUpdate) Where(ps ...predicate.ClinicMember) *ClinicMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicMemberUpdate) SetClinicID(v uuid.UUID) *ClinicMemberUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableClinicID(v *uuid.UUID) *ClinicMemberUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ClinicMemberUpdate) SetUserID(v uuid.UUID) *ClinicMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableUserID(v *uuid.UUID) *ClinicMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ClinicMemberUpdate) SetDisplayName(v string) *ClinicMemberUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableDisplayName(v *string) *ClinicMemberUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ClinicMemberUpdate) SetRole(v clinicmember.Role) *ClinicMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableRole(v *clinicmember.Role) *ClinicMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ClinicMemberUpdate) SetSpecialization(v string) *ClinicMemberUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableSpecialization(v *string) *ClinicMemberUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *ClinicMemberUpdate) ClearSpecialization() *ClinicMemberUpdate {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicMemberUpdate) SetIsActive(v bool) *ClinicMemberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicMemberUpdate) SetNillableIsActive(v *bool) *ClinicMemberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClinicMemberMutation object of the builder.
func (_u *ClinicMemberUpdate) Mutation() *ClinicMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicMemberUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := clinicmember.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := clinicmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := clinicmember.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicmember.Table, clinicmember.Columns, sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(clinicmember.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(clinicmember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(clinicmember.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(clinicmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(clinicmember.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(clinicmember.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinicmember.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicMemberUpdateOne is the builder for updating a single ClinicMember entity.
type ClinicMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMemberMutation
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicMemberUpdateOne) SetClinicID(v uuid.UUID) *ClinicMemberUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableClinicID(v *uuid.UUID) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ClinicMemberUpdateOne) SetUserID(v uuid.UUID) *ClinicMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableUserID(v *uuid.UUID) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ClinicMemberUpdateOne) SetDisplayName(v string) *ClinicMemberUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableDisplayName(v *string) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ClinicMemberUpdateOne) SetRole(v clinicmember.Role) *ClinicMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableRole(v *clinicmember.Role) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ClinicMemberUpdateOne) SetSpecialization(v string) *ClinicMemberUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableSpecialization(v *string) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *ClinicMemberUpdateOne) ClearSpecialization() *ClinicMemberUpdateOne {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicMemberUpdateOne) SetIsActive(v bool) *ClinicMemberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicMemberUpdateOne) SetNillableIsActive(v *bool) *ClinicMemberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClinicMemberMutation object of the builder.
func (_u *ClinicMemberUpdateOne) Mutation() *ClinicMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClinicMemberUpdate builder.
func (_u *ClinicMemberUpdateOne) Where(ps ...predicate.ClinicMember) *ClinicMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicMemberUpdateOne) Select(field string, fields ...string) *ClinicMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicMember entity.
func (_u *ClinicMemberUpdateOne) Save(ctx context.Context) (*ClinicMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicMemberUpdateOne) SaveX(ctx context.Context) *ClinicMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicMemberUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := clinicmember.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := clinicmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := clinicmember.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "ClinicMember.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicMemberUpdateOne) sqlSave(ctx context.Context) (_node *ClinicMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicmember.Table, clinicmember.Columns, sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicmember.FieldID)
		for _, f := range fields {
			if !clinicmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinicmember.FieldID {
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
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(clinicmember.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(clinicmember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(clinicmember.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(clinicmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(clinicmember.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(clinicmember.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinicmember.FieldIsActive, field.TypeBool, value)
	}
	_node = &ClinicMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
