package schedule

import "errors"

var (
	ErrInvalidRange   = errors.New("to date must not precede from date")
	ErrRangeTooLarge  = errors.New("requested range exceeds the configured maximum")
	ErrDoctorNotFound = errors.New("doctor not found in this clinic")
)
