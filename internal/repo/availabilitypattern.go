// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/google/uuid"
)

// AvailabilityPattern is the model entity for the AvailabilityPattern schema.
type AvailabilityPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinic_members.id
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	// FK → clinic_members.id
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → clinic_members.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// 0=Sunday, 1=Monday … 6=Saturday; 7 accepted as Sunday alias
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// Block start, minutes since midnight
	StartMinute int16 `json:"start_minute,omitempty"`
	// Block end (exclusive), minutes since midnight
	EndMinute int16 `json:"end_minute,omitempty"`
	// Advisory; the block is one bookable unit, not subdivided
	SlotDurationMinutes int `json:"slot_duration_minutes,omitempty"`
	// Advisory gap between consultations
	BufferMinutes int `json:"buffer_minutes,omitempty"`
	// Concurrent capacity of the block (max_patients_per_slot)
	MaxPatients int `json:"max_patients,omitempty"`
	// AvailabilityType holds the value of the "availability_type" field.
	AvailabilityType availabilitypattern.AvailabilityType `json:"availability_type,omitempty"`
	// Pattern takes effect from this date (inclusive)
	EffectiveFrom time.Time `json:"effective_from,omitempty"`
	// Pattern expires after this date (inclusive); nil = no expiry
	EffectiveUntil *time.Time `json:"effective_until,omitempty"`
	// Soft-delete flag; replaced patterns are deactivated, not removed
	IsActive bool `json:"is_active,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        *string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilitypattern.FieldCreatedBy, availabilitypattern.FieldUpdatedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case availabilitypattern.FieldIsActive:
			values[i] = new(sql.NullBool)
		case availabilitypattern.FieldDayOfWeek, availabilitypattern.FieldStartMinute, availabilitypattern.FieldEndMinute, availabilitypattern.FieldSlotDurationMinutes, availabilitypattern.FieldBufferMinutes, availabilitypattern.FieldMaxPatients:
			values[i] = new(sql.NullInt64)
		case availabilitypattern.FieldAvailabilityType, availabilitypattern.FieldNotes:
			values[i] = new(sql.NullString)
		case availabilitypattern.FieldCreatedAt, availabilitypattern.FieldUpdatedAt, availabilitypattern.FieldEffectiveFrom, availabilitypattern.FieldEffectiveUntil:
			values[i] = new(sql.NullTime)
		case availabilitypattern.FieldID, availabilitypattern.FieldClinicID, availabilitypattern.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityPattern fields.
func (_m *AvailabilityPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilitypattern.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilitypattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilitypattern.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilitypattern.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(uuid.UUID)
				*_m.CreatedBy = *value.S.(*uuid.UUID)
			}
		case availabilitypattern.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = new(uuid.UUID)
				*_m.UpdatedBy = *value.S.(*uuid.UUID)
			}
		case availabilitypattern.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case availabilitypattern.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case availabilitypattern.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case availabilitypattern.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int16(value.Int64)
			}
		case availabilitypattern.FieldEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_minute", values[i])
			} else if value.Valid {
				_m.EndMinute = int16(value.Int64)
			}
		case availabilitypattern.FieldSlotDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_duration_minutes", values[i])
			} else if value.Valid {
				_m.SlotDurationMinutes = int(value.Int64)
			}
		case availabilitypattern.FieldBufferMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_minutes", values[i])
			} else if value.Valid {
				_m.BufferMinutes = int(value.Int64)
			}
		case availabilitypattern.FieldMaxPatients:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_patients", values[i])
			} else if value.Valid {
				_m.MaxPatients = int(value.Int64)
			}
		case availabilitypattern.FieldAvailabilityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field availability_type", values[i])
			} else if value.Valid {
				_m.AvailabilityType = availabilitypattern.AvailabilityType(value.String)
			}
		case availabilitypattern.FieldEffectiveFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_from", values[i])
			} else if value.Valid {
				_m.EffectiveFrom = value.Time
			}
		case availabilitypattern.FieldEffectiveUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_until", values[i])
			} else if value.Valid {
				_m.EffectiveUntil = new(time.Time)
				*_m.EffectiveUntil = value.Time
			}
		case availabilitypattern.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case availabilitypattern.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityPattern.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilityPattern.
// Note that you need to call AvailabilityPattern.Unwrap() before calling this method if this AvailabilityPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityPattern) Update() *AvailabilityPatternUpdateOne {
	return NewAvailabilityPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityPattern) Unwrap() *AvailabilityPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityPattern) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UpdatedBy; v != nil {
		builder.WriteString("updated_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMinute))
	builder.WriteString(", ")
	builder.WriteString("slot_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("buffer_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BufferMinutes))
	builder.WriteString(", ")
	builder.WriteString("max_patients=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPatients))
	builder.WriteString(", ")
	builder.WriteString("availability_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvailabilityType))
	builder.WriteString(", ")
	builder.WriteString("effective_from=")
	builder.WriteString(_m.EffectiveFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EffectiveUntil; v != nil {
		builder.WriteString("effective_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityPatterns is a parsable slice of AvailabilityPattern.
type AvailabilityPatterns []*AvailabilityPattern
