// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinic"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAvailabilityPattern = "AvailabilityPattern"
	TypeClinic              = "Clinic"
	TypeClinicMember        = "ClinicMember"
	TypePatient             = "Patient"
	TypeSlotOccupancy       = "SlotOccupancy"
	TypeVisit               = "Visit"
)

// AvailabilityPatternMutation represents an operation that mutates the AvailabilityPattern nodes in the graph.
type AvailabilityPatternMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	created_by               *uuid.UUID
	updated_by               *uuid.UUID
	clinic_id                *uuid.UUID
	doctor_id                *uuid.UUID
	day_of_week              *int8
	addday_of_week           *int8
	start_minute             *int16
	addstart_minute          *int16
	end_minute               *int16
	addend_minute            *int16
	slot_duration_minutes    *int
	addslot_duration_minutes *int
	buffer_minutes           *int
	addbuffer_minutes        *int
	max_patients             *int
	addmax_patients          *int
	availability_type        *availabilitypattern.AvailabilityType
	effective_from           *time.Time
	effective_until          *time.Time
	is_active                *bool
	notes                    *string
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*AvailabilityPattern, error)
	predicates               []predicate.AvailabilityPattern
}

var _ ent.Mutation = (*AvailabilityPatternMutation)(nil)

// availabilitypatternOption allows management of the mutation configuration using functional options.
type availabilitypatternOption func(*AvailabilityPatternMutation)

// newAvailabilityPatternMutation creates new mutation for the AvailabilityPattern entity.
func newAvailabilityPatternMutation(c config, op Op, opts ...availabilitypatternOption) *AvailabilityPatternMutation {
	m := &AvailabilityPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeAvailabilityPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAvailabilityPatternID sets the ID field of the mutation.
func withAvailabilityPatternID(id uuid.UUID) availabilitypatternOption {
	return func(m *AvailabilityPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *AvailabilityPattern
		)
		m.oldValue = func(ctx context.Context) (*AvailabilityPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AvailabilityPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAvailabilityPattern sets the old AvailabilityPattern of the mutation.
func withAvailabilityPattern(node *AvailabilityPattern) availabilitypatternOption {
	return func(m *AvailabilityPatternMutation) {
		m.oldValue = func(context.Context) (*AvailabilityPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AvailabilityPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AvailabilityPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AvailabilityPattern entities.
func (m *AvailabilityPatternMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AvailabilityPatternMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AvailabilityPatternMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AvailabilityPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AvailabilityPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AvailabilityPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AvailabilityPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AvailabilityPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AvailabilityPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AvailabilityPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *AvailabilityPatternMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AvailabilityPatternMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *AvailabilityPatternMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[availabilitypattern.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *AvailabilityPatternMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[availabilitypattern.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AvailabilityPatternMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, availabilitypattern.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *AvailabilityPatternMutation) SetUpdatedBy(u uuid.UUID) {
	m.updated_by = &u
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *AvailabilityPatternMutation) UpdatedBy() (r uuid.UUID, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldUpdatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *AvailabilityPatternMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[availabilitypattern.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *AvailabilityPatternMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[availabilitypattern.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *AvailabilityPatternMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, availabilitypattern.FieldUpdatedBy)
}

// SetClinicID sets the "clinic_id" field.
func (m *AvailabilityPatternMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *AvailabilityPatternMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *AvailabilityPatternMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AvailabilityPatternMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AvailabilityPatternMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AvailabilityPatternMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDayOfWeek sets the "day_of_week" field.
func (m *AvailabilityPatternMutation) SetDayOfWeek(i int8) {
	m.day_of_week = &i
	m.addday_of_week = nil
}

// DayOfWeek returns the value of the "day_of_week" field in the mutation.
func (m *AvailabilityPatternMutation) DayOfWeek() (r int8, exists bool) {
	v := m.day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfWeek returns the old "day_of_week" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldDayOfWeek(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfWeek: %w", err)
	}
	return oldValue.DayOfWeek, nil
}

// AddDayOfWeek adds i to the "day_of_week" field.
func (m *AvailabilityPatternMutation) AddDayOfWeek(i int8) {
	if m.addday_of_week != nil {
		*m.addday_of_week += i
	} else {
		m.addday_of_week = &i
	}
}

// AddedDayOfWeek returns the value that was added to the "day_of_week" field in this mutation.
func (m *AvailabilityPatternMutation) AddedDayOfWeek() (r int8, exists bool) {
	v := m.addday_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayOfWeek resets all changes to the "day_of_week" field.
func (m *AvailabilityPatternMutation) ResetDayOfWeek() {
	m.day_of_week = nil
	m.addday_of_week = nil
}

// SetStartMinute sets the "start_minute" field.
func (m *AvailabilityPatternMutation) SetStartMinute(i int16) {
	m.start_minute = &i
	m.addstart_minute = nil
}

// StartMinute returns the value of the "start_minute" field in the mutation.
func (m *AvailabilityPatternMutation) StartMinute() (r int16, exists bool) {
	v := m.start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMinute returns the old "start_minute" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldStartMinute(ctx context.Context) (v int16, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMinute: %w", err)
	}
	return oldValue.StartMinute, nil
}

// AddStartMinute adds i to the "start_minute" field.
func (m *AvailabilityPatternMutation) AddStartMinute(i int16) {
	if m.addstart_minute != nil {
		*m.addstart_minute += i
	} else {
		m.addstart_minute = &i
	}
}

// AddedStartMinute returns the value that was added to the "start_minute" field in this mutation.
func (m *AvailabilityPatternMutation) AddedStartMinute() (r int16, exists bool) {
	v := m.addstart_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMinute resets all changes to the "start_minute" field.
func (m *AvailabilityPatternMutation) ResetStartMinute() {
	m.start_minute = nil
	m.addstart_minute = nil
}

// SetEndMinute sets the "end_minute" field.
func (m *AvailabilityPatternMutation) SetEndMinute(i int16) {
	m.end_minute = &i
	m.addend_minute = nil
}

// EndMinute returns the value of the "end_minute" field in the mutation.
func (m *AvailabilityPatternMutation) EndMinute() (r int16, exists bool) {
	v := m.end_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldEndMinute returns the old "end_minute" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldEndMinute(ctx context.Context) (v int16, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndMinute: %w", err)
	}
	return oldValue.EndMinute, nil
}

// AddEndMinute adds i to the "end_minute" field.
func (m *AvailabilityPatternMutation) AddEndMinute(i int16) {
	if m.addend_minute != nil {
		*m.addend_minute += i
	} else {
		m.addend_minute = &i
	}
}

// AddedEndMinute returns the value that was added to the "end_minute" field in this mutation.
func (m *AvailabilityPatternMutation) AddedEndMinute() (r int16, exists bool) {
	v := m.addend_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndMinute resets all changes to the "end_minute" field.
func (m *AvailabilityPatternMutation) ResetEndMinute() {
	m.end_minute = nil
	m.addend_minute = nil
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (m *AvailabilityPatternMutation) SetSlotDurationMinutes(i int) {
	m.slot_duration_minutes = &i
	m.addslot_duration_minutes = nil
}

// SlotDurationMinutes returns the value of the "slot_duration_minutes" field in the mutation.
func (m *AvailabilityPatternMutation) SlotDurationMinutes() (r int, exists bool) {
	v := m.slot_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotDurationMinutes returns the old "slot_duration_minutes" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldSlotDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotDurationMinutes: %w", err)
	}
	return oldValue.SlotDurationMinutes, nil
}

// AddSlotDurationMinutes adds i to the "slot_duration_minutes" field.
func (m *AvailabilityPatternMutation) AddSlotDurationMinutes(i int) {
	if m.addslot_duration_minutes != nil {
		*m.addslot_duration_minutes += i
	} else {
		m.addslot_duration_minutes = &i
	}
}

// AddedSlotDurationMinutes returns the value that was added to the "slot_duration_minutes" field in this mutation.
func (m *AvailabilityPatternMutation) AddedSlotDurationMinutes() (r int, exists bool) {
	v := m.addslot_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotDurationMinutes resets all changes to the "slot_duration_minutes" field.
func (m *AvailabilityPatternMutation) ResetSlotDurationMinutes() {
	m.slot_duration_minutes = nil
	m.addslot_duration_minutes = nil
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (m *AvailabilityPatternMutation) SetBufferMinutes(i int) {
	m.buffer_minutes = &i
	m.addbuffer_minutes = nil
}

// BufferMinutes returns the value of the "buffer_minutes" field in the mutation.
func (m *AvailabilityPatternMutation) BufferMinutes() (r int, exists bool) {
	v := m.buffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBufferMinutes returns the old "buffer_minutes" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldBufferMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBufferMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBufferMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBufferMinutes: %w", err)
	}
	return oldValue.BufferMinutes, nil
}

// AddBufferMinutes adds i to the "buffer_minutes" field.
func (m *AvailabilityPatternMutation) AddBufferMinutes(i int) {
	if m.addbuffer_minutes != nil {
		*m.addbuffer_minutes += i
	} else {
		m.addbuffer_minutes = &i
	}
}

// AddedBufferMinutes returns the value that was added to the "buffer_minutes" field in this mutation.
func (m *AvailabilityPatternMutation) AddedBufferMinutes() (r int, exists bool) {
	v := m.addbuffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBufferMinutes resets all changes to the "buffer_minutes" field.
func (m *AvailabilityPatternMutation) ResetBufferMinutes() {
	m.buffer_minutes = nil
	m.addbuffer_minutes = nil
}

// SetMaxPatients sets the "max_patients" field.
func (m *AvailabilityPatternMutation) SetMaxPatients(i int) {
	m.max_patients = &i
	m.addmax_patients = nil
}

// MaxPatients returns the value of the "max_patients" field in the mutation.
func (m *AvailabilityPatternMutation) MaxPatients() (r int, exists bool) {
	v := m.max_patients
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxPatients returns the old "max_patients" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldMaxPatients(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxPatients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxPatients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxPatients: %w", err)
	}
	return oldValue.MaxPatients, nil
}

// AddMaxPatients adds i to the "max_patients" field.
func (m *AvailabilityPatternMutation) AddMaxPatients(i int) {
	if m.addmax_patients != nil {
		*m.addmax_patients += i
	} else {
		m.addmax_patients = &i
	}
}

// AddedMaxPatients returns the value that was added to the "max_patients" field in this mutation.
func (m *AvailabilityPatternMutation) AddedMaxPatients() (r int, exists bool) {
	v := m.addmax_patients
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxPatients resets all changes to the "max_patients" field.
func (m *AvailabilityPatternMutation) ResetMaxPatients() {
	m.max_patients = nil
	m.addmax_patients = nil
}

// SetAvailabilityType sets the "availability_type" field.
func (m *AvailabilityPatternMutation) SetAvailabilityType(at availabilitypattern.AvailabilityType) {
	m.availability_type = &at
}

// AvailabilityType returns the value of the "availability_type" field in the mutation.
func (m *AvailabilityPatternMutation) AvailabilityType() (r availabilitypattern.AvailabilityType, exists bool) {
	v := m.availability_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailabilityType returns the old "availability_type" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldAvailabilityType(ctx context.Context) (v availabilitypattern.AvailabilityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailabilityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailabilityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailabilityType: %w", err)
	}
	return oldValue.AvailabilityType, nil
}

// ResetAvailabilityType resets all changes to the "availability_type" field.
func (m *AvailabilityPatternMutation) ResetAvailabilityType() {
	m.availability_type = nil
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *AvailabilityPatternMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *AvailabilityPatternMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldEffectiveFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *AvailabilityPatternMutation) ResetEffectiveFrom() {
	m.effective_from = nil
}

// SetEffectiveUntil sets the "effective_until" field.
func (m *AvailabilityPatternMutation) SetEffectiveUntil(t time.Time) {
	m.effective_until = &t
}

// EffectiveUntil returns the value of the "effective_until" field in the mutation.
func (m *AvailabilityPatternMutation) EffectiveUntil() (r time.Time, exists bool) {
	v := m.effective_until
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveUntil returns the old "effective_until" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldEffectiveUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveUntil: %w", err)
	}
	return oldValue.EffectiveUntil, nil
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (m *AvailabilityPatternMutation) ClearEffectiveUntil() {
	m.effective_until = nil
	m.clearedFields[availabilitypattern.FieldEffectiveUntil] = struct{}{}
}

// EffectiveUntilCleared returns if the "effective_until" field was cleared in this mutation.
func (m *AvailabilityPatternMutation) EffectiveUntilCleared() bool {
	_, ok := m.clearedFields[availabilitypattern.FieldEffectiveUntil]
	return ok
}

// ResetEffectiveUntil resets all changes to the "effective_until" field.
func (m *AvailabilityPatternMutation) ResetEffectiveUntil() {
	m.effective_until = nil
	delete(m.clearedFields, availabilitypattern.FieldEffectiveUntil)
}

// SetIsActive sets the "is_active" field.
func (m *AvailabilityPatternMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AvailabilityPatternMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AvailabilityPatternMutation) ResetIsActive() {
	m.is_active = nil
}

// SetNotes sets the "notes" field.
func (m *AvailabilityPatternMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AvailabilityPatternMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the AvailabilityPattern entity.
// If the AvailabilityPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityPatternMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AvailabilityPatternMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[availabilitypattern.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AvailabilityPatternMutation) NotesCleared() bool {
	_, ok := m.clearedFields[availabilitypattern.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AvailabilityPatternMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, availabilitypattern.FieldNotes)
}

// Where appends a list predicates to the AvailabilityPatternMutation builder.
func (m *AvailabilityPatternMutation) Where(ps ...predicate.AvailabilityPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AvailabilityPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AvailabilityPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AvailabilityPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AvailabilityPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AvailabilityPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AvailabilityPattern).
func (m *AvailabilityPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AvailabilityPatternMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, availabilitypattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, availabilitypattern.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, availabilitypattern.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, availabilitypattern.FieldUpdatedBy)
	}
	if m.clinic_id != nil {
		fields = append(fields, availabilitypattern.FieldClinicID)
	}
	if m.doctor_id != nil {
		fields = append(fields, availabilitypattern.FieldDoctorID)
	}
	if m.day_of_week != nil {
		fields = append(fields, availabilitypattern.FieldDayOfWeek)
	}
	if m.start_minute != nil {
		fields = append(fields, availabilitypattern.FieldStartMinute)
	}
	if m.end_minute != nil {
		fields = append(fields, availabilitypattern.FieldEndMinute)
	}
	if m.slot_duration_minutes != nil {
		fields = append(fields, availabilitypattern.FieldSlotDurationMinutes)
	}
	if m.buffer_minutes != nil {
		fields = append(fields, availabilitypattern.FieldBufferMinutes)
	}
	if m.max_patients != nil {
		fields = append(fields, availabilitypattern.FieldMaxPatients)
	}
	if m.availability_type != nil {
		fields = append(fields, availabilitypattern.FieldAvailabilityType)
	}
	if m.effective_from != nil {
		fields = append(fields, availabilitypattern.FieldEffectiveFrom)
	}
	if m.effective_until != nil {
		fields = append(fields, availabilitypattern.FieldEffectiveUntil)
	}
	if m.is_active != nil {
		fields = append(fields, availabilitypattern.FieldIsActive)
	}
	if m.notes != nil {
		fields = append(fields, availabilitypattern.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AvailabilityPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case availabilitypattern.FieldCreatedAt:
		return m.CreatedAt()
	case availabilitypattern.FieldUpdatedAt:
		return m.UpdatedAt()
	case availabilitypattern.FieldCreatedBy:
		return m.CreatedBy()
	case availabilitypattern.FieldUpdatedBy:
		return m.UpdatedBy()
	case availabilitypattern.FieldClinicID:
		return m.ClinicID()
	case availabilitypattern.FieldDoctorID:
		return m.DoctorID()
	case availabilitypattern.FieldDayOfWeek:
		return m.DayOfWeek()
	case availabilitypattern.FieldStartMinute:
		return m.StartMinute()
	case availabilitypattern.FieldEndMinute:
		return m.EndMinute()
	case availabilitypattern.FieldSlotDurationMinutes:
		return m.SlotDurationMinutes()
	case availabilitypattern.FieldBufferMinutes:
		return m.BufferMinutes()
	case availabilitypattern.FieldMaxPatients:
		return m.MaxPatients()
	case availabilitypattern.FieldAvailabilityType:
		return m.AvailabilityType()
	case availabilitypattern.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case availabilitypattern.FieldEffectiveUntil:
		return m.EffectiveUntil()
	case availabilitypattern.FieldIsActive:
		return m.IsActive()
	case availabilitypattern.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AvailabilityPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case availabilitypattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case availabilitypattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case availabilitypattern.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case availabilitypattern.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case availabilitypattern.FieldClinicID:
		return m.OldClinicID(ctx)
	case availabilitypattern.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case availabilitypattern.FieldDayOfWeek:
		return m.OldDayOfWeek(ctx)
	case availabilitypattern.FieldStartMinute:
		return m.OldStartMinute(ctx)
	case availabilitypattern.FieldEndMinute:
		return m.OldEndMinute(ctx)
	case availabilitypattern.FieldSlotDurationMinutes:
		return m.OldSlotDurationMinutes(ctx)
	case availabilitypattern.FieldBufferMinutes:
		return m.OldBufferMinutes(ctx)
	case availabilitypattern.FieldMaxPatients:
		return m.OldMaxPatients(ctx)
	case availabilitypattern.FieldAvailabilityType:
		return m.OldAvailabilityType(ctx)
	case availabilitypattern.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case availabilitypattern.FieldEffectiveUntil:
		return m.OldEffectiveUntil(ctx)
	case availabilitypattern.FieldIsActive:
		return m.OldIsActive(ctx)
	case availabilitypattern.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown AvailabilityPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case availabilitypattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case availabilitypattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case availabilitypattern.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case availabilitypattern.FieldUpdatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case availabilitypattern.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case availabilitypattern.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case availabilitypattern.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfWeek(v)
		return nil
	case availabilitypattern.FieldStartMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMinute(v)
		return nil
	case availabilitypattern.FieldEndMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndMinute(v)
		return nil
	case availabilitypattern.FieldSlotDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotDurationMinutes(v)
		return nil
	case availabilitypattern.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBufferMinutes(v)
		return nil
	case availabilitypattern.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxPatients(v)
		return nil
	case availabilitypattern.FieldAvailabilityType:
		v, ok := value.(availabilitypattern.AvailabilityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailabilityType(v)
		return nil
	case availabilitypattern.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case availabilitypattern.FieldEffectiveUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveUntil(v)
		return nil
	case availabilitypattern.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case availabilitypattern.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AvailabilityPatternMutation) AddedFields() []string {
	var fields []string
	if m.addday_of_week != nil {
		fields = append(fields, availabilitypattern.FieldDayOfWeek)
	}
	if m.addstart_minute != nil {
		fields = append(fields, availabilitypattern.FieldStartMinute)
	}
	if m.addend_minute != nil {
		fields = append(fields, availabilitypattern.FieldEndMinute)
	}
	if m.addslot_duration_minutes != nil {
		fields = append(fields, availabilitypattern.FieldSlotDurationMinutes)
	}
	if m.addbuffer_minutes != nil {
		fields = append(fields, availabilitypattern.FieldBufferMinutes)
	}
	if m.addmax_patients != nil {
		fields = append(fields, availabilitypattern.FieldMaxPatients)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AvailabilityPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case availabilitypattern.FieldDayOfWeek:
		return m.AddedDayOfWeek()
	case availabilitypattern.FieldStartMinute:
		return m.AddedStartMinute()
	case availabilitypattern.FieldEndMinute:
		return m.AddedEndMinute()
	case availabilitypattern.FieldSlotDurationMinutes:
		return m.AddedSlotDurationMinutes()
	case availabilitypattern.FieldBufferMinutes:
		return m.AddedBufferMinutes()
	case availabilitypattern.FieldMaxPatients:
		return m.AddedMaxPatients()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case availabilitypattern.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfWeek(v)
		return nil
	case availabilitypattern.FieldStartMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMinute(v)
		return nil
	case availabilitypattern.FieldEndMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndMinute(v)
		return nil
	case availabilitypattern.FieldSlotDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotDurationMinutes(v)
		return nil
	case availabilitypattern.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBufferMinutes(v)
		return nil
	case availabilitypattern.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxPatients(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AvailabilityPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(availabilitypattern.FieldCreatedBy) {
		fields = append(fields, availabilitypattern.FieldCreatedBy)
	}
	if m.FieldCleared(availabilitypattern.FieldUpdatedBy) {
		fields = append(fields, availabilitypattern.FieldUpdatedBy)
	}
	if m.FieldCleared(availabilitypattern.FieldEffectiveUntil) {
		fields = append(fields, availabilitypattern.FieldEffectiveUntil)
	}
	if m.FieldCleared(availabilitypattern.FieldNotes) {
		fields = append(fields, availabilitypattern.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AvailabilityPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AvailabilityPatternMutation) ClearField(name string) error {
	switch name {
	case availabilitypattern.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case availabilitypattern.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case availabilitypattern.FieldEffectiveUntil:
		m.ClearEffectiveUntil()
		return nil
	case availabilitypattern.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AvailabilityPatternMutation) ResetField(name string) error {
	switch name {
	case availabilitypattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case availabilitypattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case availabilitypattern.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case availabilitypattern.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case availabilitypattern.FieldClinicID:
		m.ResetClinicID()
		return nil
	case availabilitypattern.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case availabilitypattern.FieldDayOfWeek:
		m.ResetDayOfWeek()
		return nil
	case availabilitypattern.FieldStartMinute:
		m.ResetStartMinute()
		return nil
	case availabilitypattern.FieldEndMinute:
		m.ResetEndMinute()
		return nil
	case availabilitypattern.FieldSlotDurationMinutes:
		m.ResetSlotDurationMinutes()
		return nil
	case availabilitypattern.FieldBufferMinutes:
		m.ResetBufferMinutes()
		return nil
	case availabilitypattern.FieldMaxPatients:
		m.ResetMaxPatients()
		return nil
	case availabilitypattern.FieldAvailabilityType:
		m.ResetAvailabilityType()
		return nil
	case availabilitypattern.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case availabilitypattern.FieldEffectiveUntil:
		m.ResetEffectiveUntil()
		return nil
	case availabilitypattern.FieldIsActive:
		m.ResetIsActive()
		return nil
	case availabilitypattern.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AvailabilityPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AvailabilityPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AvailabilityPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AvailabilityPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AvailabilityPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AvailabilityPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AvailabilityPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AvailabilityPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityPattern edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	name          *string
	slug          *string
	phone         *string
	address       *string
	city          *string
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Clinic, error)
	predicates    []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id uuid.UUID) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clinic.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clinic.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clinic.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *ClinicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClinicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClinicMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ClinicMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ClinicMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ClinicMutation) ResetSlug() {
	m.slug = nil
}

// SetPhone sets the "phone" field.
func (m *ClinicMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClinicMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClinicMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[clinic.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClinicMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[clinic.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClinicMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, clinic.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *ClinicMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ClinicMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ClinicMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[clinic.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ClinicMutation) AddressCleared() bool {
	_, ok := m.clearedFields[clinic.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ClinicMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, clinic.FieldAddress)
}

// SetCity sets the "city" field.
func (m *ClinicMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ClinicMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ClinicMutation) ClearCity() {
	m.city = nil
	m.clearedFields[clinic.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ClinicMutation) CityCleared() bool {
	_, ok := m.clearedFields[clinic.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ClinicMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, clinic.FieldCity)
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, clinic.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, clinic.FieldSlug)
	}
	if m.phone != nil {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, clinic.FieldCity)
	}
	if m.is_active != nil {
		fields = append(fields, clinic.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinic.FieldDeletedAt:
		return m.DeletedAt()
	case clinic.FieldName:
		return m.Name()
	case clinic.FieldSlug:
		return m.Slug()
	case clinic.FieldPhone:
		return m.Phone()
	case clinic.FieldAddress:
		return m.Address()
	case clinic.FieldCity:
		return m.City()
	case clinic.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinic.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clinic.FieldName:
		return m.OldName(ctx)
	case clinic.FieldSlug:
		return m.OldSlug(ctx)
	case clinic.FieldPhone:
		return m.OldPhone(ctx)
	case clinic.FieldAddress:
		return m.OldAddress(ctx)
	case clinic.FieldCity:
		return m.OldCity(ctx)
	case clinic.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinic.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clinic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clinic.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case clinic.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clinic.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case clinic.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case clinic.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldDeletedAt) {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.FieldCleared(clinic.FieldPhone) {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.FieldCleared(clinic.FieldAddress) {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.FieldCleared(clinic.FieldCity) {
		fields = append(fields, clinic.FieldCity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clinic.FieldPhone:
		m.ClearPhone()
		return nil
	case clinic.FieldAddress:
		m.ClearAddress()
		return nil
	case clinic.FieldCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinic.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clinic.FieldName:
		m.ResetName()
		return nil
	case clinic.FieldSlug:
		m.ResetSlug()
		return nil
	case clinic.FieldPhone:
		m.ResetPhone()
		return nil
	case clinic.FieldAddress:
		m.ResetAddress()
		return nil
	case clinic.FieldCity:
		m.ResetCity()
		return nil
	case clinic.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// ClinicMemberMutation represents an operation that mutates the ClinicMember nodes in the graph.
type ClinicMemberMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	clinic_id      *uuid.UUID
	user_id        *uuid.UUID
	display_name   *string
	role           *clinicmember.Role
	specialization *string
	is_active      *bool
	joined_at      *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ClinicMember, error)
	predicates     []predicate.ClinicMember
}

var _ ent.Mutation = (*ClinicMemberMutation)(nil)

// clinicmemberOption allows management of the mutation configuration using functional options.
type clinicmemberOption func(*ClinicMemberMutation)

// newClinicMemberMutation creates new mutation for the ClinicMember entity.
func newClinicMemberMutation(c config, op Op, opts ...clinicmemberOption) *ClinicMemberMutation {
	m := &ClinicMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicMemberID sets the ID field of the mutation.
func withClinicMemberID(id uuid.UUID) clinicmemberOption {
	return func(m *ClinicMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicMember
		)
		m.oldValue = func(ctx context.Context) (*ClinicMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicMember sets the old ClinicMember of the mutation.
func withClinicMember(node *ClinicMember) clinicmemberOption {
	return func(m *ClinicMemberMutation) {
		m.oldValue = func(context.Context) (*ClinicMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicMember entities.
func (m *ClinicMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicMemberMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicMemberMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicMemberMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ClinicMemberMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ClinicMemberMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ClinicMemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ClinicMemberMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ClinicMemberMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ClinicMemberMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetRole sets the "role" field.
func (m *ClinicMemberMutation) SetRole(c clinicmember.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ClinicMemberMutation) Role() (r clinicmember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldRole(ctx context.Context) (v clinicmember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ClinicMemberMutation) ResetRole() {
	m.role = nil
}

// SetSpecialization sets the "specialization" field.
func (m *ClinicMemberMutation) SetSpecialization(s string) {
	m.specialization = &s
}

// Specialization returns the value of the "specialization" field in the mutation.
func (m *ClinicMemberMutation) Specialization() (r string, exists bool) {
	v := m.specialization
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialization returns the old "specialization" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldSpecialization(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialization: %w", err)
	}
	return oldValue.Specialization, nil
}

// ClearSpecialization clears the value of the "specialization" field.
func (m *ClinicMemberMutation) ClearSpecialization() {
	m.specialization = nil
	m.clearedFields[clinicmember.FieldSpecialization] = struct{}{}
}

// SpecializationCleared returns if the "specialization" field was cleared in this mutation.
func (m *ClinicMemberMutation) SpecializationCleared() bool {
	_, ok := m.clearedFields[clinicmember.FieldSpecialization]
	return ok
}

// ResetSpecialization resets all changes to the "specialization" field.
func (m *ClinicMemberMutation) ResetSpecialization() {
	m.specialization = nil
	delete(m.clearedFields, clinicmember.FieldSpecialization)
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMemberMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMemberMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMemberMutation) ResetIsActive() {
	m.is_active = nil
}

// SetJoinedAt sets the "joined_at" field.
func (m *ClinicMemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *ClinicMemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *ClinicMemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// Where appends a list predicates to the ClinicMemberMutation builder.
func (m *ClinicMemberMutation) Where(ps ...predicate.ClinicMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicMember).
func (m *ClinicMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMemberMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.clinic_id != nil {
		fields = append(fields, clinicmember.FieldClinicID)
	}
	if m.user_id != nil {
		fields = append(fields, clinicmember.FieldUserID)
	}
	if m.display_name != nil {
		fields = append(fields, clinicmember.FieldDisplayName)
	}
	if m.role != nil {
		fields = append(fields, clinicmember.FieldRole)
	}
	if m.specialization != nil {
		fields = append(fields, clinicmember.FieldSpecialization)
	}
	if m.is_active != nil {
		fields = append(fields, clinicmember.FieldIsActive)
	}
	if m.joined_at != nil {
		fields = append(fields, clinicmember.FieldJoinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicmember.FieldClinicID:
		return m.ClinicID()
	case clinicmember.FieldUserID:
		return m.UserID()
	case clinicmember.FieldDisplayName:
		return m.DisplayName()
	case clinicmember.FieldRole:
		return m.Role()
	case clinicmember.FieldSpecialization:
		return m.Specialization()
	case clinicmember.FieldIsActive:
		return m.IsActive()
	case clinicmember.FieldJoinedAt:
		return m.JoinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicmember.FieldClinicID:
		return m.OldClinicID(ctx)
	case clinicmember.FieldUserID:
		return m.OldUserID(ctx)
	case clinicmember.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case clinicmember.FieldRole:
		return m.OldRole(ctx)
	case clinicmember.FieldSpecialization:
		return m.OldSpecialization(ctx)
	case clinicmember.FieldIsActive:
		return m.OldIsActive(ctx)
	case clinicmember.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicmember.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case clinicmember.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case clinicmember.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case clinicmember.FieldRole:
		v, ok := value.(clinicmember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case clinicmember.FieldSpecialization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialization(v)
		return nil
	case clinicmember.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case clinicmember.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicmember.FieldSpecialization) {
		fields = append(fields, clinicmember.FieldSpecialization)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMemberMutation) ClearField(name string) error {
	switch name {
	case clinicmember.FieldSpecialization:
		m.ClearSpecialization()
		return nil
	}
	return fmt.Errorf("unknown ClinicMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMemberMutation) ResetField(name string) error {
	switch name {
	case clinicmember.FieldClinicID:
		m.ResetClinicID()
		return nil
	case clinicmember.FieldUserID:
		m.ResetUserID()
		return nil
	case clinicmember.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case clinicmember.FieldRole:
		m.ResetRole()
		return nil
	case clinicmember.FieldSpecialization:
		m.ResetSpecialization()
		return nil
	case clinicmember.FieldIsActive:
		m.ResetIsActive()
		return nil
	case clinicmember.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	}
	return fmt.Errorf("unknown ClinicMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClinicMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClinicMember edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	clinic_id     *uuid.UUID
	full_name     *string
	phone         *string
	file_number   *string
	date_of_birth *time.Time
	gender        *patient.Gender
	notes         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Patient, error)
	predicates    []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patient.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patient.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *PatientMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *PatientMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *PatientMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetFullName sets the "full_name" field.
func (m *PatientMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *PatientMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *PatientMutation) ResetFullName() {
	m.full_name = nil
}

// SetPhone sets the "phone" field.
func (m *PatientMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PatientMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *PatientMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[patient.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *PatientMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *PatientMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, patient.FieldPhone)
}

// SetFileNumber sets the "file_number" field.
func (m *PatientMutation) SetFileNumber(s string) {
	m.file_number = &s
}

// FileNumber returns the value of the "file_number" field in the mutation.
func (m *PatientMutation) FileNumber() (r string, exists bool) {
	v := m.file_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFileNumber returns the old "file_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFileNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileNumber: %w", err)
	}
	return oldValue.FileNumber, nil
}

// ClearFileNumber clears the value of the "file_number" field.
func (m *PatientMutation) ClearFileNumber() {
	m.file_number = nil
	m.clearedFields[patient.FieldFileNumber] = struct{}{}
}

// FileNumberCleared returns if the "file_number" field was cleared in this mutation.
func (m *PatientMutation) FileNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldFileNumber]
	return ok
}

// ResetFileNumber resets all changes to the "file_number" field.
func (m *PatientMutation) ResetFileNumber() {
	m.file_number = nil
	delete(m.clearedFields, patient.FieldFileNumber)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *PatientMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[patient.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *PatientMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[patient.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, patient.FieldDateOfBirth)
}

// SetGender sets the "gender" field.
func (m *PatientMutation) SetGender(pa patient.Gender) {
	m.gender = &pa
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientMutation) Gender() (r patient.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGender(ctx context.Context) (v *patient.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PatientMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[patient.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PatientMutation) GenderCleared() bool {
	_, ok := m.clearedFields[patient.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, patient.FieldGender)
}

// SetNotes sets the "notes" field.
func (m *PatientMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PatientMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PatientMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[patient.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PatientMutation) NotesCleared() bool {
	_, ok := m.clearedFields[patient.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PatientMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, patient.FieldNotes)
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, patient.FieldClinicID)
	}
	if m.full_name != nil {
		fields = append(fields, patient.FieldFullName)
	}
	if m.phone != nil {
		fields = append(fields, patient.FieldPhone)
	}
	if m.file_number != nil {
		fields = append(fields, patient.FieldFileNumber)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, patient.FieldGender)
	}
	if m.notes != nil {
		fields = append(fields, patient.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldDeletedAt:
		return m.DeletedAt()
	case patient.FieldClinicID:
		return m.ClinicID()
	case patient.FieldFullName:
		return m.FullName()
	case patient.FieldPhone:
		return m.Phone()
	case patient.FieldFileNumber:
		return m.FileNumber()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldGender:
		return m.Gender()
	case patient.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patient.FieldClinicID:
		return m.OldClinicID(ctx)
	case patient.FieldFullName:
		return m.OldFullName(ctx)
	case patient.FieldPhone:
		return m.OldPhone(ctx)
	case patient.FieldFileNumber:
		return m.OldFileNumber(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldGender:
		return m.OldGender(ctx)
	case patient.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patient.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case patient.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case patient.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case patient.FieldFileNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileNumber(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldGender:
		v, ok := value.(patient.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patient.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDeletedAt) {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.FieldCleared(patient.FieldPhone) {
		fields = append(fields, patient.FieldPhone)
	}
	if m.FieldCleared(patient.FieldFileNumber) {
		fields = append(fields, patient.FieldFileNumber)
	}
	if m.FieldCleared(patient.FieldDateOfBirth) {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.FieldCleared(patient.FieldGender) {
		fields = append(fields, patient.FieldGender)
	}
	if m.FieldCleared(patient.FieldNotes) {
		fields = append(fields, patient.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patient.FieldPhone:
		m.ClearPhone()
		return nil
	case patient.FieldFileNumber:
		m.ClearFileNumber()
		return nil
	case patient.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ClearGender()
		return nil
	case patient.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patient.FieldClinicID:
		m.ResetClinicID()
		return nil
	case patient.FieldFullName:
		m.ResetFullName()
		return nil
	case patient.FieldPhone:
		m.ResetPhone()
		return nil
	case patient.FieldFileNumber:
		m.ResetFileNumber()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ResetGender()
		return nil
	case patient.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Patient edge %s", name)
}

// SlotOccupancyMutation represents an operation that mutates the SlotOccupancy nodes in the graph.
type SlotOccupancyMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	clinic_id            *uuid.UUID
	visit_id             *uuid.UUID
	pattern_id           *uuid.UUID
	slot_date            *time.Time
	slot_start_minute    *int16
	addslot_start_minute *int16
	slot_end_minute      *int16
	addslot_end_minute   *int16
	released_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SlotOccupancy, error)
	predicates           []predicate.SlotOccupancy
}

var _ ent.Mutation = (*SlotOccupancyMutation)(nil)

// slotoccupancyOption allows management of the mutation configuration using functional options.
type slotoccupancyOption func(*SlotOccupancyMutation)

// newSlotOccupancyMutation creates new mutation for the SlotOccupancy entity.
func newSlotOccupancyMutation(c config, op Op, opts ...slotoccupancyOption) *SlotOccupancyMutation {
	m := &SlotOccupancyMutation{
		config:        c,
		op:            op,
		typ:           TypeSlotOccupancy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlotOccupancyID sets the ID field of the mutation.
func withSlotOccupancyID(id uuid.UUID) slotoccupancyOption {
	return func(m *SlotOccupancyMutation) {
		var (
			err   error
			once  sync.Once
			value *SlotOccupancy
		)
		m.oldValue = func(ctx context.Context) (*SlotOccupancy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SlotOccupancy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlotOccupancy sets the old SlotOccupancy of the mutation.
func withSlotOccupancy(node *SlotOccupancy) slotoccupancyOption {
	return func(m *SlotOccupancyMutation) {
		m.oldValue = func(context.Context) (*SlotOccupancy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlotOccupancyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlotOccupancyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SlotOccupancy entities.
func (m *SlotOccupancyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlotOccupancyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlotOccupancyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SlotOccupancy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SlotOccupancyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlotOccupancyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlotOccupancyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlotOccupancyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlotOccupancyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlotOccupancyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *SlotOccupancyMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *SlotOccupancyMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *SlotOccupancyMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetVisitID sets the "visit_id" field.
func (m *SlotOccupancyMutation) SetVisitID(u uuid.UUID) {
	m.visit_id = &u
}

// VisitID returns the value of the "visit_id" field in the mutation.
func (m *SlotOccupancyMutation) VisitID() (r uuid.UUID, exists bool) {
	v := m.visit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitID returns the old "visit_id" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldVisitID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitID: %w", err)
	}
	return oldValue.VisitID, nil
}

// ResetVisitID resets all changes to the "visit_id" field.
func (m *SlotOccupancyMutation) ResetVisitID() {
	m.visit_id = nil
}

// SetPatternID sets the "pattern_id" field.
func (m *SlotOccupancyMutation) SetPatternID(u uuid.UUID) {
	m.pattern_id = &u
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *SlotOccupancyMutation) PatternID() (r uuid.UUID, exists bool) {
	v := m.pattern_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldPatternID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *SlotOccupancyMutation) ResetPatternID() {
	m.pattern_id = nil
}

// SetSlotDate sets the "slot_date" field.
func (m *SlotOccupancyMutation) SetSlotDate(t time.Time) {
	m.slot_date = &t
}

// SlotDate returns the value of the "slot_date" field in the mutation.
func (m *SlotOccupancyMutation) SlotDate() (r time.Time, exists bool) {
	v := m.slot_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotDate returns the old "slot_date" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldSlotDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotDate: %w", err)
	}
	return oldValue.SlotDate, nil
}

// ResetSlotDate resets all changes to the "slot_date" field.
func (m *SlotOccupancyMutation) ResetSlotDate() {
	m.slot_date = nil
}

// SetSlotStartMinute sets the "slot_start_minute" field.
func (m *SlotOccupancyMutation) SetSlotStartMinute(i int16) {
	m.slot_start_minute = &i
	m.addslot_start_minute = nil
}

// SlotStartMinute returns the value of the "slot_start_minute" field in the mutation.
func (m *SlotOccupancyMutation) SlotStartMinute() (r int16, exists bool) {
	v := m.slot_start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotStartMinute returns the old "slot_start_minute" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldSlotStartMinute(ctx context.Context) (v int16, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotStartMinute: %w", err)
	}
	return oldValue.SlotStartMinute, nil
}

// AddSlotStartMinute adds i to the "slot_start_minute" field.
func (m *SlotOccupancyMutation) AddSlotStartMinute(i int16) {
	if m.addslot_start_minute != nil {
		*m.addslot_start_minute += i
	} else {
		m.addslot_start_minute = &i
	}
}

// AddedSlotStartMinute returns the value that was added to the "slot_start_minute" field in this mutation.
func (m *SlotOccupancyMutation) AddedSlotStartMinute() (r int16, exists bool) {
	v := m.addslot_start_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotStartMinute resets all changes to the "slot_start_minute" field.
func (m *SlotOccupancyMutation) ResetSlotStartMinute() {
	m.slot_start_minute = nil
	m.addslot_start_minute = nil
}

// SetSlotEndMinute sets the "slot_end_minute" field.
func (m *SlotOccupancyMutation) SetSlotEndMinute(i int16) {
	m.slot_end_minute = &i
	m.addslot_end_minute = nil
}

// SlotEndMinute returns the value of the "slot_end_minute" field in the mutation.
func (m *SlotOccupancyMutation) SlotEndMinute() (r int16, exists bool) {
	v := m.slot_end_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotEndMinute returns the old "slot_end_minute" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldSlotEndMinute(ctx context.Context) (v int16, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotEndMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotEndMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotEndMinute: %w", err)
	}
	return oldValue.SlotEndMinute, nil
}

// AddSlotEndMinute adds i to the "slot_end_minute" field.
func (m *SlotOccupancyMutation) AddSlotEndMinute(i int16) {
	if m.addslot_end_minute != nil {
		*m.addslot_end_minute += i
	} else {
		m.addslot_end_minute = &i
	}
}

// AddedSlotEndMinute returns the value that was added to the "slot_end_minute" field in this mutation.
func (m *SlotOccupancyMutation) AddedSlotEndMinute() (r int16, exists bool) {
	v := m.addslot_end_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotEndMinute resets all changes to the "slot_end_minute" field.
func (m *SlotOccupancyMutation) ResetSlotEndMinute() {
	m.slot_end_minute = nil
	m.addslot_end_minute = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *SlotOccupancyMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *SlotOccupancyMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the SlotOccupancy entity.
// If the SlotOccupancy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlotOccupancyMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *SlotOccupancyMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[slotoccupancy.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *SlotOccupancyMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[slotoccupancy.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *SlotOccupancyMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, slotoccupancy.FieldReleasedAt)
}

// Where appends a list predicates to the SlotOccupancyMutation builder.
func (m *SlotOccupancyMutation) Where(ps ...predicate.SlotOccupancy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlotOccupancyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlotOccupancyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SlotOccupancy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlotOccupancyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlotOccupancyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SlotOccupancy).
func (m *SlotOccupancyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlotOccupancyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, slotoccupancy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slotoccupancy.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, slotoccupancy.FieldClinicID)
	}
	if m.visit_id != nil {
		fields = append(fields, slotoccupancy.FieldVisitID)
	}
	if m.pattern_id != nil {
		fields = append(fields, slotoccupancy.FieldPatternID)
	}
	if m.slot_date != nil {
		fields = append(fields, slotoccupancy.FieldSlotDate)
	}
	if m.slot_start_minute != nil {
		fields = append(fields, slotoccupancy.FieldSlotStartMinute)
	}
	if m.slot_end_minute != nil {
		fields = append(fields, slotoccupancy.FieldSlotEndMinute)
	}
	if m.released_at != nil {
		fields = append(fields, slotoccupancy.FieldReleasedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlotOccupancyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slotoccupancy.FieldCreatedAt:
		return m.CreatedAt()
	case slotoccupancy.FieldUpdatedAt:
		return m.UpdatedAt()
	case slotoccupancy.FieldClinicID:
		return m.ClinicID()
	case slotoccupancy.FieldVisitID:
		return m.VisitID()
	case slotoccupancy.FieldPatternID:
		return m.PatternID()
	case slotoccupancy.FieldSlotDate:
		return m.SlotDate()
	case slotoccupancy.FieldSlotStartMinute:
		return m.SlotStartMinute()
	case slotoccupancy.FieldSlotEndMinute:
		return m.SlotEndMinute()
	case slotoccupancy.FieldReleasedAt:
		return m.ReleasedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlotOccupancyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slotoccupancy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slotoccupancy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case slotoccupancy.FieldClinicID:
		return m.OldClinicID(ctx)
	case slotoccupancy.FieldVisitID:
		return m.OldVisitID(ctx)
	case slotoccupancy.FieldPatternID:
		return m.OldPatternID(ctx)
	case slotoccupancy.FieldSlotDate:
		return m.OldSlotDate(ctx)
	case slotoccupancy.FieldSlotStartMinute:
		return m.OldSlotStartMinute(ctx)
	case slotoccupancy.FieldSlotEndMinute:
		return m.OldSlotEndMinute(ctx)
	case slotoccupancy.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SlotOccupancy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlotOccupancyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slotoccupancy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slotoccupancy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case slotoccupancy.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case slotoccupancy.FieldVisitID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitID(v)
		return nil
	case slotoccupancy.FieldPatternID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case slotoccupancy.FieldSlotDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotDate(v)
		return nil
	case slotoccupancy.FieldSlotStartMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotStartMinute(v)
		return nil
	case slotoccupancy.FieldSlotEndMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotEndMinute(v)
		return nil
	case slotoccupancy.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SlotOccupancy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlotOccupancyMutation) AddedFields() []string {
	var fields []string
	if m.addslot_start_minute != nil {
		fields = append(fields, slotoccupancy.FieldSlotStartMinute)
	}
	if m.addslot_end_minute != nil {
		fields = append(fields, slotoccupancy.FieldSlotEndMinute)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlotOccupancyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slotoccupancy.FieldSlotStartMinute:
		return m.AddedSlotStartMinute()
	case slotoccupancy.FieldSlotEndMinute:
		return m.AddedSlotEndMinute()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlotOccupancyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slotoccupancy.FieldSlotStartMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotStartMinute(v)
		return nil
	case slotoccupancy.FieldSlotEndMinute:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotEndMinute(v)
		return nil
	}
	return fmt.Errorf("unknown SlotOccupancy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlotOccupancyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slotoccupancy.FieldReleasedAt) {
		fields = append(fields, slotoccupancy.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlotOccupancyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlotOccupancyMutation) ClearField(name string) error {
	switch name {
	case slotoccupancy.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown SlotOccupancy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlotOccupancyMutation) ResetField(name string) error {
	switch name {
	case slotoccupancy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slotoccupancy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case slotoccupancy.FieldClinicID:
		m.ResetClinicID()
		return nil
	case slotoccupancy.FieldVisitID:
		m.ResetVisitID()
		return nil
	case slotoccupancy.FieldPatternID:
		m.ResetPatternID()
		return nil
	case slotoccupancy.FieldSlotDate:
		m.ResetSlotDate()
		return nil
	case slotoccupancy.FieldSlotStartMinute:
		m.ResetSlotStartMinute()
		return nil
	case slotoccupancy.FieldSlotEndMinute:
		m.ResetSlotEndMinute()
		return nil
	case slotoccupancy.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown SlotOccupancy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlotOccupancyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlotOccupancyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlotOccupancyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlotOccupancyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlotOccupancyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlotOccupancyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlotOccupancyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SlotOccupancy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlotOccupancyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SlotOccupancy edge %s", name)
}

// VisitMutation represents an operation that mutates the Visit nodes in the graph.
type VisitMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	created_by          *uuid.UUID
	updated_by          *uuid.UUID
	clinic_id           *uuid.UUID
	doctor_id           *uuid.UUID
	patient_id          *uuid.UUID
	visit_number        *string
	visit_date          *time.Time
	visit_time          *int16
	addvisit_time       *int16
	duration_minutes    *int
	addduration_minutes *int
	status              *visit.Status
	consultation_fee    *int64
	addconsultation_fee *int64
	payment_status      *visit.PaymentStatus
	chief_complaint     *string
	clinical_notes      *string
	cancellation_reason *string
	cancelled_at        *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Visit, error)
	predicates          []predicate.Visit
}

var _ ent.Mutation = (*VisitMutation)(nil)

// visitOption allows management of the mutation configuration using functional options.
type visitOption func(*VisitMutation)

// newVisitMutation creates new mutation for the Visit entity.
func newVisitMutation(c config, op Op, opts ...visitOption) *VisitMutation {
	m := &VisitMutation{
		config:        c,
		op:            op,
		typ:           TypeVisit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVisitID sets the ID field of the mutation.
func withVisitID(id uuid.UUID) visitOption {
	return func(m *VisitMutation) {
		var (
			err   error
			once  sync.Once
			value *Visit
		)
		m.oldValue = func(ctx context.Context) (*Visit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Visit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVisit sets the old Visit of the mutation.
func withVisit(node *Visit) visitOption {
	return func(m *VisitMutation) {
		m.oldValue = func(context.Context) (*Visit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VisitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VisitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Visit entities.
func (m *VisitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VisitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VisitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Visit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VisitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VisitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VisitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VisitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VisitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VisitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *VisitMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *VisitMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *VisitMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[visit.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *VisitMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[visit.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *VisitMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, visit.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *VisitMutation) SetUpdatedBy(u uuid.UUID) {
	m.updated_by = &u
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *VisitMutation) UpdatedBy() (r uuid.UUID, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldUpdatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *VisitMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[visit.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *VisitMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[visit.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *VisitMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, visit.FieldUpdatedBy)
}

// SetClinicID sets the "clinic_id" field.
func (m *VisitMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *VisitMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *VisitMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *VisitMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *VisitMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *VisitMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *VisitMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *VisitMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *VisitMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetVisitNumber sets the "visit_number" field.
func (m *VisitMutation) SetVisitNumber(s string) {
	m.visit_number = &s
}

// VisitNumber returns the value of the "visit_number" field in the mutation.
func (m *VisitMutation) VisitNumber() (r string, exists bool) {
	v := m.visit_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitNumber returns the old "visit_number" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldVisitNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitNumber: %w", err)
	}
	return oldValue.VisitNumber, nil
}

// ResetVisitNumber resets all changes to the "visit_number" field.
func (m *VisitMutation) ResetVisitNumber() {
	m.visit_number = nil
}

// SetVisitDate sets the "visit_date" field.
func (m *VisitMutation) SetVisitDate(t time.Time) {
	m.visit_date = &t
}

// VisitDate returns the value of the "visit_date" field in the mutation.
func (m *VisitMutation) VisitDate() (r time.Time, exists bool) {
	v := m.visit_date
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitDate returns the old "visit_date" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldVisitDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitDate: %w", err)
	}
	return oldValue.VisitDate, nil
}

// ResetVisitDate resets all changes to the "visit_date" field.
func (m *VisitMutation) ResetVisitDate() {
	m.visit_date = nil
}

// SetVisitTime sets the "visit_time" field.
func (m *VisitMutation) SetVisitTime(i int16) {
	m.visit_time = &i
	m.addvisit_time = nil
}

// VisitTime returns the value of the "visit_time" field in the mutation.
func (m *VisitMutation) VisitTime() (r int16, exists bool) {
	v := m.visit_time
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitTime returns the old "visit_time" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldVisitTime(ctx context.Context) (v int16, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitTime: %w", err)
	}
	return oldValue.VisitTime, nil
}

// AddVisitTime adds i to the "visit_time" field.
func (m *VisitMutation) AddVisitTime(i int16) {
	if m.addvisit_time != nil {
		*m.addvisit_time += i
	} else {
		m.addvisit_time = &i
	}
}

// AddedVisitTime returns the value that was added to the "visit_time" field in this mutation.
func (m *VisitMutation) AddedVisitTime() (r int16, exists bool) {
	v := m.addvisit_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitTime resets all changes to the "visit_time" field.
func (m *VisitMutation) ResetVisitTime() {
	m.visit_time = nil
	m.addvisit_time = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *VisitMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *VisitMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *VisitMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *VisitMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *VisitMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetStatus sets the "status" field.
func (m *VisitMutation) SetStatus(v visit.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VisitMutation) Status() (r visit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldStatus(ctx context.Context) (v visit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VisitMutation) ResetStatus() {
	m.status = nil
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *VisitMutation) SetConsultationFee(i int64) {
	m.consultation_fee = &i
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *VisitMutation) ConsultationFee() (r int64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldConsultationFee(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds i to the "consultation_fee" field.
func (m *VisitMutation) AddConsultationFee(i int64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += i
	} else {
		m.addconsultation_fee = &i
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *VisitMutation) AddedConsultationFee() (r int64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *VisitMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *VisitMutation) SetPaymentStatus(vs visit.PaymentStatus) {
	m.payment_status = &vs
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *VisitMutation) PaymentStatus() (r visit.PaymentStatus, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldPaymentStatus(ctx context.Context) (v visit.PaymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *VisitMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetChiefComplaint sets the "chief_complaint" field.
func (m *VisitMutation) SetChiefComplaint(s string) {
	m.chief_complaint = &s
}

// ChiefComplaint returns the value of the "chief_complaint" field in the mutation.
func (m *VisitMutation) ChiefComplaint() (r string, exists bool) {
	v := m.chief_complaint
	if v == nil {
		return
	}
	return *v, true
}

// OldChiefComplaint returns the old "chief_complaint" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldChiefComplaint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChiefComplaint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChiefComplaint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChiefComplaint: %w", err)
	}
	return oldValue.ChiefComplaint, nil
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (m *VisitMutation) ClearChiefComplaint() {
	m.chief_complaint = nil
	m.clearedFields[visit.FieldChiefComplaint] = struct{}{}
}

// ChiefComplaintCleared returns if the "chief_complaint" field was cleared in this mutation.
func (m *VisitMutation) ChiefComplaintCleared() bool {
	_, ok := m.clearedFields[visit.FieldChiefComplaint]
	return ok
}

// ResetChiefComplaint resets all changes to the "chief_complaint" field.
func (m *VisitMutation) ResetChiefComplaint() {
	m.chief_complaint = nil
	delete(m.clearedFields, visit.FieldChiefComplaint)
}

// SetClinicalNotes sets the "clinical_notes" field.
func (m *VisitMutation) SetClinicalNotes(s string) {
	m.clinical_notes = &s
}

// ClinicalNotes returns the value of the "clinical_notes" field in the mutation.
func (m *VisitMutation) ClinicalNotes() (r string, exists bool) {
	v := m.clinical_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicalNotes returns the old "clinical_notes" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldClinicalNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicalNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicalNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicalNotes: %w", err)
	}
	return oldValue.ClinicalNotes, nil
}

// ClearClinicalNotes clears the value of the "clinical_notes" field.
func (m *VisitMutation) ClearClinicalNotes() {
	m.clinical_notes = nil
	m.clearedFields[visit.FieldClinicalNotes] = struct{}{}
}

// ClinicalNotesCleared returns if the "clinical_notes" field was cleared in this mutation.
func (m *VisitMutation) ClinicalNotesCleared() bool {
	_, ok := m.clearedFields[visit.FieldClinicalNotes]
	return ok
}

// ResetClinicalNotes resets all changes to the "clinical_notes" field.
func (m *VisitMutation) ResetClinicalNotes() {
	m.clinical_notes = nil
	delete(m.clearedFields, visit.FieldClinicalNotes)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *VisitMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *VisitMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *VisitMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[visit.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *VisitMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[visit.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *VisitMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, visit.FieldCancellationReason)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *VisitMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *VisitMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *VisitMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[visit.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *VisitMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[visit.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *VisitMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, visit.FieldCancelledAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *VisitMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *VisitMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *VisitMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[visit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *VisitMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[visit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *VisitMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, visit.FieldCompletedAt)
}

// Where appends a list predicates to the VisitMutation builder.
func (m *VisitMutation) Where(ps ...predicate.Visit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VisitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VisitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Visit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VisitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VisitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Visit).
func (m *VisitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VisitMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.created_at != nil {
		fields = append(fields, visit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, visit.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, visit.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, visit.FieldUpdatedBy)
	}
	if m.clinic_id != nil {
		fields = append(fields, visit.FieldClinicID)
	}
	if m.doctor_id != nil {
		fields = append(fields, visit.FieldDoctorID)
	}
	if m.patient_id != nil {
		fields = append(fields, visit.FieldPatientID)
	}
	if m.visit_number != nil {
		fields = append(fields, visit.FieldVisitNumber)
	}
	if m.visit_date != nil {
		fields = append(fields, visit.FieldVisitDate)
	}
	if m.visit_time != nil {
		fields = append(fields, visit.FieldVisitTime)
	}
	if m.duration_minutes != nil {
		fields = append(fields, visit.FieldDurationMinutes)
	}
	if m.status != nil {
		fields = append(fields, visit.FieldStatus)
	}
	if m.consultation_fee != nil {
		fields = append(fields, visit.FieldConsultationFee)
	}
	if m.payment_status != nil {
		fields = append(fields, visit.FieldPaymentStatus)
	}
	if m.chief_complaint != nil {
		fields = append(fields, visit.FieldChiefComplaint)
	}
	if m.clinical_notes != nil {
		fields = append(fields, visit.FieldClinicalNotes)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, visit.FieldCancellationReason)
	}
	if m.cancelled_at != nil {
		fields = append(fields, visit.FieldCancelledAt)
	}
	if m.completed_at != nil {
		fields = append(fields, visit.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VisitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case visit.FieldCreatedAt:
		return m.CreatedAt()
	case visit.FieldUpdatedAt:
		return m.UpdatedAt()
	case visit.FieldCreatedBy:
		return m.CreatedBy()
	case visit.FieldUpdatedBy:
		return m.UpdatedBy()
	case visit.FieldClinicID:
		return m.ClinicID()
	case visit.FieldDoctorID:
		return m.DoctorID()
	case visit.FieldPatientID:
		return m.PatientID()
	case visit.FieldVisitNumber:
		return m.VisitNumber()
	case visit.FieldVisitDate:
		return m.VisitDate()
	case visit.FieldVisitTime:
		return m.VisitTime()
	case visit.FieldDurationMinutes:
		return m.DurationMinutes()
	case visit.FieldStatus:
		return m.Status()
	case visit.FieldConsultationFee:
		return m.ConsultationFee()
	case visit.FieldPaymentStatus:
		return m.PaymentStatus()
	case visit.FieldChiefComplaint:
		return m.ChiefComplaint()
	case visit.FieldClinicalNotes:
		return m.ClinicalNotes()
	case visit.FieldCancellationReason:
		return m.CancellationReason()
	case visit.FieldCancelledAt:
		return m.CancelledAt()
	case visit.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VisitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case visit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case visit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case visit.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case visit.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case visit.FieldClinicID:
		return m.OldClinicID(ctx)
	case visit.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case visit.FieldPatientID:
		return m.OldPatientID(ctx)
	case visit.FieldVisitNumber:
		return m.OldVisitNumber(ctx)
	case visit.FieldVisitDate:
		return m.OldVisitDate(ctx)
	case visit.FieldVisitTime:
		return m.OldVisitTime(ctx)
	case visit.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case visit.FieldStatus:
		return m.OldStatus(ctx)
	case visit.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case visit.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case visit.FieldChiefComplaint:
		return m.OldChiefComplaint(ctx)
	case visit.FieldClinicalNotes:
		return m.OldClinicalNotes(ctx)
	case visit.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case visit.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case visit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Visit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case visit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case visit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case visit.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case visit.FieldUpdatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case visit.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case visit.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case visit.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case visit.FieldVisitNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitNumber(v)
		return nil
	case visit.FieldVisitDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitDate(v)
		return nil
	case visit.FieldVisitTime:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitTime(v)
		return nil
	case visit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case visit.FieldStatus:
		v, ok := value.(visit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case visit.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case visit.FieldPaymentStatus:
		v, ok := value.(visit.PaymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case visit.FieldChiefComplaint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChiefComplaint(v)
		return nil
	case visit.FieldClinicalNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicalNotes(v)
		return nil
	case visit.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case visit.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case visit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Visit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VisitMutation) AddedFields() []string {
	var fields []string
	if m.addvisit_time != nil {
		fields = append(fields, visit.FieldVisitTime)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, visit.FieldDurationMinutes)
	}
	if m.addconsultation_fee != nil {
		fields = append(fields, visit.FieldConsultationFee)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VisitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case visit.FieldVisitTime:
		return m.AddedVisitTime()
	case visit.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case visit.FieldConsultationFee:
		return m.AddedConsultationFee()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case visit.FieldVisitTime:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitTime(v)
		return nil
	case visit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case visit.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	}
	return fmt.Errorf("unknown Visit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VisitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(visit.FieldCreatedBy) {
		fields = append(fields, visit.FieldCreatedBy)
	}
	if m.FieldCleared(visit.FieldUpdatedBy) {
		fields = append(fields, visit.FieldUpdatedBy)
	}
	if m.FieldCleared(visit.FieldChiefComplaint) {
		fields = append(fields, visit.FieldChiefComplaint)
	}
	if m.FieldCleared(visit.FieldClinicalNotes) {
		fields = append(fields, visit.FieldClinicalNotes)
	}
	if m.FieldCleared(visit.FieldCancellationReason) {
		fields = append(fields, visit.FieldCancellationReason)
	}
	if m.FieldCleared(visit.FieldCancelledAt) {
		fields = append(fields, visit.FieldCancelledAt)
	}
	if m.FieldCleared(visit.FieldCompletedAt) {
		fields = append(fields, visit.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VisitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VisitMutation) ClearField(name string) error {
	switch name {
	case visit.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case visit.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case visit.FieldChiefComplaint:
		m.ClearChiefComplaint()
		return nil
	case visit.FieldClinicalNotes:
		m.ClearClinicalNotes()
		return nil
	case visit.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case visit.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case visit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Visit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VisitMutation) ResetField(name string) error {
	switch name {
	case visit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case visit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case visit.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case visit.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case visit.FieldClinicID:
		m.ResetClinicID()
		return nil
	case visit.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case visit.FieldPatientID:
		m.ResetPatientID()
		return nil
	case visit.FieldVisitNumber:
		m.ResetVisitNumber()
		return nil
	case visit.FieldVisitDate:
		m.ResetVisitDate()
		return nil
	case visit.FieldVisitTime:
		m.ResetVisitTime()
		return nil
	case visit.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case visit.FieldStatus:
		m.ResetStatus()
		return nil
	case visit.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case visit.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case visit.FieldChiefComplaint:
		m.ResetChiefComplaint()
		return nil
	case visit.FieldClinicalNotes:
		m.ResetClinicalNotes()
		return nil
	case visit.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case visit.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case visit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Visit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VisitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VisitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VisitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VisitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VisitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VisitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VisitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Visit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VisitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Visit edge %s", name)
}
