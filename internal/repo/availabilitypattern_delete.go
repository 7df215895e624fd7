// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
)

// AvailabilityPatternDelete is the builder for deleting a AvailabilityPattern entity.
type AvailabilityPatternDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilityPatternMutation
}

// Where appends a list predicates to the AvailabilityPatternDelete builder.
func (_d *AvailabilityPatternDelete) Where(ps ...predicate.AvailabilityPattern) *AvailabilityPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilityPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilityPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilitypattern.Table, sqlgraph.NewFieldSpec(availabilitypattern.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AvailabilityPatternDeleteOne is the builder for deleting a single AvailabilityPattern entity.
type AvailabilityPatternDeleteOne struct {
	_d *AvailabilityPatternDelete
}

// Where appends a list predicates to the AvailabilityPatternDelete builder.
func (_d *AvailabilityPatternDeleteOne) Where(ps ...predicate.AvailabilityPattern) *AvailabilityPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilityPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilitypattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
