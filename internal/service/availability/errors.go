package availability

import "errors"

var (
	ErrPatternNotFound       = errors.New("availability pattern not found")
	ErrInvalidTimeRange      = errors.New("end time must be after start time")
	ErrInvalidEffectiveRange = errors.New("effective_until must not precede effective_from")
	ErrInvalidDayOfWeek      = errors.New("day_of_week must be between 0 and 7")
	ErrOverlappingBlocks     = errors.New("submitted time blocks overlap each other")
	ErrPatternInUse          = errors.New("availability pattern has future bookings and cannot be deleted")
	ErrNotScheduleOwner      = errors.New("only the owning doctor or a clinic admin/manager may modify this schedule")
	ErrDoctorNotFound        = errors.New("doctor not found in this clinic")
)
