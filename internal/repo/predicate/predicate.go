// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilityPattern is the predicate function for availabilitypattern builders.
type AvailabilityPattern func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// ClinicMember is the predicate function for clinicmember builders.
type ClinicMember func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// SlotOccupancy is the predicate function for slotoccupancy builders.
type SlotOccupancy func(*sql.Selector)

// Visit is the predicate function for visit builders.
type Visit func(*sql.Selector)
