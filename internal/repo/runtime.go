// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinic"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilitypatternMixin := schema.AvailabilityPattern{}.Mixin()
	availabilitypatternMixinFields0 := availabilitypatternMixin[0].Fields()
	_ = availabilitypatternMixinFields0
	availabilitypatternMixinFields1 := availabilitypatternMixin[1].Fields()
	_ = availabilitypatternMixinFields1
	availabilitypatternFields := schema.AvailabilityPattern{}.Fields()
	_ = availabilitypatternFields
	// availabilitypatternDescCreatedAt is the schema descriptor for created_at field.
	availabilitypatternDescCreatedAt := availabilitypatternMixinFields1[0].Descriptor()
	// availabilitypattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilitypattern.DefaultCreatedAt = availabilitypatternDescCreatedAt.Default.(func() time.Time)
	// availabilitypatternDescUpdatedAt is the schema descriptor for updated_at field.
	availabilitypatternDescUpdatedAt := availabilitypatternMixinFields1[1].Descriptor()
	// availabilitypattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilitypattern.DefaultUpdatedAt = availabilitypatternDescUpdatedAt.Default.(func() time.Time)
	// availabilitypattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilitypattern.UpdateDefaultUpdatedAt = availabilitypatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilitypatternDescDayOfWeek is the schema descriptor for day_of_week field.
	availabilitypatternDescDayOfWeek := availabilitypatternFields[2].Descriptor()
	// availabilitypattern.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	availabilitypattern.DayOfWeekValidator = func() func(int8) error {
		validators := availabilitypatternDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilitypatternDescStartMinute is the schema descriptor for start_minute field.
	availabilitypatternDescStartMinute := availabilitypatternFields[3].Descriptor()
	// availabilitypattern.StartMinuteValidator is a validator for the "start_minute" field. It is called by the builders before save.
	availabilitypattern.StartMinuteValidator = func() func(int16) error {
		validators := availabilitypatternDescStartMinute.Validators
		fns := [...]func(int16) error{
			validators[0].(func(int16) error),
			validators[1].(func(int16) error),
		}
		return func(start_minute int16) error {
			for _, fn := range fns {
				if err := fn(start_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilitypatternDescEndMinute is the schema descriptor for end_minute field.
	availabilitypatternDescEndMinute := availabilitypatternFields[4].Descriptor()
	// availabilitypattern.EndMinuteValidator is a validator for the "end_minute" field. It is called by the builders before save.
	availabilitypattern.EndMinuteValidator = func() func(int16) error {
		validators := availabilitypatternDescEndMinute.Validators
		fns := [...]func(int16) error{
			validators[0].(func(int16) error),
			validators[1].(func(int16) error),
		}
		return func(end_minute int16) error {
			for _, fn := range fns {
				if err := fn(end_minute); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilitypatternDescSlotDurationMinutes is the schema descriptor for slot_duration_minutes field.
	availabilitypatternDescSlotDurationMinutes := availabilitypatternFields[5].Descriptor()
	// availabilitypattern.DefaultSlotDurationMinutes holds the default value on creation for the slot_duration_minutes field.
	availabilitypattern.DefaultSlotDurationMinutes = availabilitypatternDescSlotDurationMinutes.Default.(int)
	// availabilitypatternDescBufferMinutes is the schema descriptor for buffer_minutes field.
	availabilitypatternDescBufferMinutes := availabilitypatternFields[6].Descriptor()
	// availabilitypattern.DefaultBufferMinutes holds the default value on creation for the buffer_minutes field.
	availabilitypattern.DefaultBufferMinutes = availabilitypatternDescBufferMinutes.Default.(int)
	// availabilitypatternDescMaxPatients is the schema descriptor for max_patients field.
	availabilitypatternDescMaxPatients := availabilitypatternFields[7].Descriptor()
	// availabilitypattern.DefaultMaxPatients holds the default value on creation for the max_patients field.
	availabilitypattern.DefaultMaxPatients = availabilitypatternDescMaxPatients.Default.(int)
	// availabilitypattern.MaxPatientsValidator is a validator for the "max_patients" field. It is called by the builders before save.
	availabilitypattern.MaxPatientsValidator = availabilitypatternDescMaxPatients.Validators[0].(func(int) error)
	// availabilitypatternDescIsActive is the schema descriptor for is_active field.
	availabilitypatternDescIsActive := availabilitypatternFields[11].Descriptor()
	// availabilitypattern.DefaultIsActive holds the default value on creation for the is_active field.
	availabilitypattern.DefaultIsActive = availabilitypatternDescIsActive.Default.(bool)
	// availabilitypatternDescID is the schema descriptor for id field.
	availabilitypatternDescID := availabilitypatternMixinFields0[0].Descriptor()
	// availabilitypattern.DefaultID holds the default value on creation for the id field.
	availabilitypattern.DefaultID = availabilitypatternDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[2].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[4].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[5].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	clinicmemberMixin := schema.ClinicMember{}.Mixin()
	clinicmemberMixinFields0 := clinicmemberMixin[0].Fields()
	_ = clinicmemberMixinFields0
	clinicmemberFields := schema.ClinicMember{}.Fields()
	_ = clinicmemberFields
	// clinicmemberDescDisplayName is the schema descriptor for display_name field.
	clinicmemberDescDisplayName := clinicmemberFields[2].Descriptor()
	// clinicmember.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	clinicmember.DisplayNameValidator = func() func(string) error {
		validators := clinicmemberDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicmemberDescSpecialization is the schema descriptor for specialization field.
	clinicmemberDescSpecialization := clinicmemberFields[4].Descriptor()
	// clinicmember.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	clinicmember.SpecializationValidator = clinicmemberDescSpecialization.Validators[0].(func(string) error)
	// clinicmemberDescIsActive is the schema descriptor for is_active field.
	clinicmemberDescIsActive := clinicmemberFields[5].Descriptor()
	// clinicmember.DefaultIsActive holds the default value on creation for the is_active field.
	clinicmember.DefaultIsActive = clinicmemberDescIsActive.Default.(bool)
	// clinicmemberDescJoinedAt is the schema descriptor for joined_at field.
	clinicmemberDescJoinedAt := clinicmemberFields[6].Descriptor()
	// clinicmember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	clinicmember.DefaultJoinedAt = clinicmemberDescJoinedAt.Default.(func() time.Time)
	// clinicmemberDescID is the schema descriptor for id field.
	clinicmemberDescID := clinicmemberMixinFields0[0].Descriptor()
	// clinicmember.DefaultID holds the default value on creation for the id field.
	clinicmember.DefaultID = clinicmemberDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFullName is the schema descriptor for full_name field.
	patientDescFullName := patientFields[1].Descriptor()
	// patient.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	patient.FullNameValidator = func() func(string) error {
		validators := patientDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[2].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescFileNumber is the schema descriptor for file_number field.
	patientDescFileNumber := patientFields[3].Descriptor()
	// patient.FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	patient.FileNumberValidator = patientDescFileNumber.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	slotoccupancyMixin := schema.SlotOccupancy{}.Mixin()
	slotoccupancyMixinFields0 := slotoccupancyMixin[0].Fields()
	_ = slotoccupancyMixinFields0
	slotoccupancyMixinFields1 := slotoccupancyMixin[1].Fields()
	_ = slotoccupancyMixinFields1
	slotoccupancyFields := schema.SlotOccupancy{}.Fields()
	_ = slotoccupancyFields
	// slotoccupancyDescCreatedAt is the schema descriptor for created_at field.
	slotoccupancyDescCreatedAt := slotoccupancyMixinFields1[0].Descriptor()
	// slotoccupancy.DefaultCreatedAt holds the default value on creation for the created_at field.
	slotoccupancy.DefaultCreatedAt = slotoccupancyDescCreatedAt.Default.(func() time.Time)
	// slotoccupancyDescUpdatedAt is the schema descriptor for updated_at field.
	slotoccupancyDescUpdatedAt := slotoccupancyMixinFields1[1].Descriptor()
	// slotoccupancy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slotoccupancy.DefaultUpdatedAt = slotoccupancyDescUpdatedAt.Default.(func() time.Time)
	// slotoccupancy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slotoccupancy.UpdateDefaultUpdatedAt = slotoccupancyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// slotoccupancyDescID is the schema descriptor for id field.
	slotoccupancyDescID := slotoccupancyMixinFields0[0].Descriptor()
	// slotoccupancy.DefaultID holds the default value on creation for the id field.
	slotoccupancy.DefaultID = slotoccupancyDescID.Default.(func() uuid.UUID)
	visitMixin := schema.Visit{}.Mixin()
	visitMixinFields0 := visitMixin[0].Fields()
	_ = visitMixinFields0
	visitMixinFields1 := visitMixin[1].Fields()
	_ = visitMixinFields1
	visitFields := schema.Visit{}.Fields()
	_ = visitFields
	// visitDescCreatedAt is the schema descriptor for created_at field.
	visitDescCreatedAt := visitMixinFields1[0].Descriptor()
	// visit.DefaultCreatedAt holds the default value on creation for the created_at field.
	visit.DefaultCreatedAt = visitDescCreatedAt.Default.(func() time.Time)
	// visitDescUpdatedAt is the schema descriptor for updated_at field.
	visitDescUpdatedAt := visitMixinFields1[1].Descriptor()
	// visit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visit.DefaultUpdatedAt = visitDescUpdatedAt.Default.(func() time.Time)
	// visit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visit.UpdateDefaultUpdatedAt = visitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// visitDescVisitNumber is the schema descriptor for visit_number field.
	visitDescVisitNumber := visitFields[3].Descriptor()
	// visit.VisitNumberValidator is a validator for the "visit_number" field. It is called by the builders before save.
	visit.VisitNumberValidator = func() func(string) error {
		validators := visitDescVisitNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(visit_number string) error {
			for _, fn := range fns {
				if err := fn(visit_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitDescVisitTime is the schema descriptor for visit_time field.
	visitDescVisitTime := visitFields[5].Descriptor()
	// visit.VisitTimeValidator is a validator for the "visit_time" field. It is called by the builders before save.
	visit.VisitTimeValidator = func() func(int16) error {
		validators := visitDescVisitTime.Validators
		fns := [...]func(int16) error{
			validators[0].(func(int16) error),
			validators[1].(func(int16) error),
		}
		return func(visit_time int16) error {
			for _, fn := range fns {
				if err := fn(visit_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitDescDurationMinutes is the schema descriptor for duration_minutes field.
	visitDescDurationMinutes := visitFields[6].Descriptor()
	// visit.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	visit.DefaultDurationMinutes = visitDescDurationMinutes.Default.(int)
	// visit.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	visit.DurationMinutesValidator = visitDescDurationMinutes.Validators[0].(func(int) error)
	// visitDescConsultationFee is the schema descriptor for consultation_fee field.
	visitDescConsultationFee := visitFields[8].Descriptor()
	// visit.DefaultConsultationFee holds the default value on creation for the consultation_fee field.
	visit.DefaultConsultationFee = visitDescConsultationFee.Default.(int64)
	// visitDescID is the schema descriptor for id field.
	visitDescID := visitMixinFields0[0].Descriptor()
	// visit.DefaultID holds the default value on creation for the id field.
	visit.DefaultID = visitDescID.Default.(func() uuid.UUID)
}
