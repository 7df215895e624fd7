// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/google/uuid"
)

// SlotOccupancy is the model entity for the SlotOccupancy schema.
type SlotOccupancy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → visits.id; one active reservation per visit
	VisitID uuid.UUID `json:"visit_id,omitempty"`
	// FK → availability_patterns.id
	PatternID uuid.UUID `json:"pattern_id,omitempty"`
	// Calendar date of the occupied slot
	SlotDate time.Time `json:"slot_date,omitempty"`
	// Start of the materialized block the visit sits in
	SlotStartMinute int16 `json:"slot_start_minute,omitempty"`
	// End of the materialized block the visit sits in
	SlotEndMinute int16 `json:"slot_end_minute,omitempty"`
	// Set when the visit is cancelled; frees the capacity unit
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlotOccupancy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slotoccupancy.FieldSlotStartMinute, slotoccupancy.FieldSlotEndMinute:
			values[i] = new(sql.NullInt64)
		case slotoccupancy.FieldCreatedAt, slotoccupancy.FieldUpdatedAt, slotoccupancy.FieldSlotDate, slotoccupancy.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		case slotoccupancy.FieldID, slotoccupancy.FieldClinicID, slotoccupancy.FieldVisitID, slotoccupancy.FieldPatternID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlotOccupancy fields.
func (_m *SlotOccupancy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slotoccupancy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case slotoccupancy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slotoccupancy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case slotoccupancy.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case slotoccupancy.FieldVisitID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field visit_id", values[i])
			} else if value != nil {
				_m.VisitID = *value
			}
		case slotoccupancy.FieldPatternID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value != nil {
				_m.PatternID = *value
			}
		case slotoccupancy.FieldSlotDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field slot_date", values[i])
			} else if value.Valid {
				_m.SlotDate = value.Time
			}
		case slotoccupancy.FieldSlotStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_start_minute", values[i])
			} else if value.Valid {
				_m.SlotStartMinute = int16(value.Int64)
			}
		case slotoccupancy.FieldSlotEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_end_minute", values[i])
			} else if value.Valid {
				_m.SlotEndMinute = int16(value.Int64)
			}
		case slotoccupancy.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SlotOccupancy.
// This includes values selected through modifiers, order, etc.
func (_m *SlotOccupancy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SlotOccupancy.
// Note that you need to call SlotOccupancy.Unwrap() before calling this method if this SlotOccupancy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SlotOccupancy) Update() *SlotOccupancyUpdateOne {
	return NewSlotOccupancyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SlotOccupancy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SlotOccupancy) Unwrap() *SlotOccupancy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SlotOccupancy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SlotOccupancy) String() string {
	var builder strings.Builder
	builder.WriteString("SlotOccupancy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("visit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitID))
	builder.WriteString(", ")
	builder.WriteString("pattern_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternID))
	builder.WriteString(", ")
	builder.WriteString("slot_date=")
	builder.WriteString(_m.SlotDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("slot_start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotStartMinute))
	builder.WriteString(", ")
	builder.WriteString("slot_end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotEndMinute))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SlotOccupancies is a parsable slice of SlotOccupancy.
type SlotOccupancies []*SlotOccupancy
