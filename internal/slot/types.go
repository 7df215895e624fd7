package slot

import (
	"time"

	"github.com/google/uuid"
)

// PatternType categorizes a weekly availability block.
type PatternType string

const (
	PatternRegular     PatternType = "regular"
	PatternSpecial     PatternType = "special"
	PatternBreak       PatternType = "break"
	PatternUnavailable PatternType = "unavailable"
)

// Bookable reports whether visits may be booked into blocks of this type.
// break and unavailable blocks are still materialized so the calendar can
// show why a period is closed, but they never accept bookings.
func (t PatternType) Bookable() bool {
	return t != PatternBreak && t != PatternUnavailable
}

// Valid reports whether t is one of the stored pattern kinds.
func (t PatternType) Valid() bool {
	switch t {
	case PatternRegular, PatternSpecial, PatternBreak, PatternUnavailable:
		return true
	}
	return false
}

// Pattern is one recurring weekly working block of a doctor, already
// normalized out of its storage shape.
type Pattern struct {
	ID       uuid.UUID
	DoctorID uuid.UUID

	// DayOfWeek uses 0=Sunday … 6=Saturday. 7 is accepted as an alias
	// for Sunday since some callers use the ISO convention.
	DayOfWeek int

	Start TimeOfDay
	End   TimeOfDay

	// DurationMinutes and BufferMinutes are advisory: the whole
	// Start–End span is one bookable block with Capacity concurrent
	// occupants, it is not subdivided into fixed-length sub-slots.
	DurationMinutes int
	BufferMinutes   int

	// Capacity is the maximum number of patients booked into the block
	// at the same time (max_patients_per_slot).
	Capacity int

	Type PatternType

	EffectiveFrom  time.Time
	EffectiveUntil *time.Time // inclusive; nil = open-ended
	Active         bool
}

// Weekday returns the pattern's day of week normalized to 0–6.
func (p Pattern) Weekday() int {
	if p.DayOfWeek == 7 {
		return 0
	}
	return p.DayOfWeek
}

// AppliesOn reports whether the pattern covers calendar date d.
func (p Pattern) AppliesOn(d time.Time) bool {
	if !p.Active {
		return false
	}
	day := DateOf(d)
	if p.Weekday() != int(day.Weekday()) {
		return false
	}
	if day.Before(DateOf(p.EffectiveFrom)) {
		return false
	}
	if p.EffectiveUntil != nil && day.After(DateOf(*p.EffectiveUntil)) {
		return false
	}
	return true
}

// Visit is the occupancy-relevant projection of a booked visit.
type Visit struct {
	ID              uuid.UUID
	PatientID       uuid.UUID
	DoctorID        uuid.UUID
	Date            time.Time
	Start           TimeOfDay
	DurationMinutes int
}

// End returns the exclusive end of the visit's interval.
func (v Visit) End() TimeOfDay {
	return v.Start.Add(v.DurationMinutes)
}

// Occupant is one visit consuming a unit of slot capacity, shaped for
// calendar drill-down.
type Occupant struct {
	VisitID         uuid.UUID `json:"visit_id"`
	PatientID       uuid.UUID `json:"patient_id"`
	Start           TimeOfDay `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Slot is a date-concrete bookable block materialized from one or more
// patterns. Duplicate patterns for the same (doctor, date, start, end)
// merge into a single slot with summed capacity.
type Slot struct {
	DoctorID uuid.UUID   `json:"doctor_id"`
	Date     time.Time   `json:"date"`
	Start    TimeOfDay   `json:"start"`
	End      TimeOfDay   `json:"end"`
	Type     PatternType `json:"type"`

	// PatternIDs are the source patterns merged into this slot.
	PatternIDs []uuid.UUID `json:"pattern_ids"`

	Capacity  int        `json:"capacity"`
	Booked    int        `json:"booked"`
	Occupants []Occupant `json:"occupants,omitempty"`
}

// Contains reports whether clock time t falls in [Start, End).
func (s Slot) Contains(t TimeOfDay) bool {
	return t >= s.Start && t < s.End
}

// Available reports whether one more visit can be booked into the slot.
func (s Slot) Available() bool {
	return s.Type.Bookable() && s.Booked < s.Capacity
}

// DaySchedule is the resolved calendar for one doctor-day: merged slots
// with occupancy applied, plus any orphaned occupants whose visit time no
// longer matches a materialized slot. Orphans are kept so a real booked
// appointment is never silently hidden after a schedule change.
type DaySchedule struct {
	Date    time.Time  `json:"date"`
	Slots   []Slot     `json:"slots"`
	Orphans []Occupant `json:"orphans,omitempty"`
}
