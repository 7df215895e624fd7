package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrDuplicatePhone  = errors.New("a patient with this phone number already exists in this clinic")
	ErrInvalidPhone    = errors.New("phone number could not be parsed")
)
