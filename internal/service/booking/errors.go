package booking

import "errors"

var (
	ErrVisitNotFound       = errors.New("visit not found")
	ErrPatientNotFound     = errors.New("patient not found in this clinic")
	ErrOutsideAvailability = errors.New("requested time is outside the doctor's availability")
	ErrCapacityExhausted   = errors.New("the slot has no remaining capacity")
	ErrVisitOverlap        = errors.New("requested time overlaps an existing visit")
	ErrVisitNumberConflict = errors.New("visit number was taken by a concurrent booking, retry")
	ErrAlreadyCancelled    = errors.New("visit is already cancelled")
	ErrAlreadyCompleted    = errors.New("visit is already completed")
	ErrAlreadyStarted      = errors.New("visit is already in progress")
	ErrNotReschedulable    = errors.New("only scheduled visits can be rescheduled")
	ErrForbidden           = errors.New("actor is not allowed to manage visits")
)
