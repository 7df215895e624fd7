// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
)

// SlotOccupancyDelete is the builder for deleting a SlotOccupancy entity.
type SlotOccupancyDelete struct {
	config
	hooks    []Hook
	mutation *SlotOccupancyMutation
}

// Where appends a list predicates to the SlotOccupancyDelete builder.
func (_d *SlotOccupancyDelete) Where(ps ...predicate.SlotOccupancy) *SlotOccupancyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SlotOccupancyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SlotOccupancyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SlotOccupancyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(slotoccupancy.Table, sqlgraph.NewFieldSpec(slotoccupancy.FieldID, field.TypeUUID))
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

// SlotOccupancyDeleteOne is the builder for deleting a single SlotOccupancy entity.
type SlotOccupancyDeleteOne struct {
	_d *SlotOccupancyDelete
}

// Where appends a list predicates to the SlotOccupancyDelete builder.
func (_d *SlotOccupancyDeleteOne) Where(ps ...predicate.SlotOccupancy) *SlotOccupancyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SlotOccupancyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{slotoccupancy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SlotOccupancyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
