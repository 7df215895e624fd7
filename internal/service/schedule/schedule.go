package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Andyrulz/clinicmanagement-sub000/config"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entpattern "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	entmember "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	entvisit "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

// DoctorDay is one doctor's resolved calendar day inside a clinic-wide view.
type DoctorDay struct {
	DoctorID uuid.UUID        `json:"doctor_id"`
	Name     string           `json:"name"`
	Schedule slot.DaySchedule `json:"schedule"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Doctor resolves the calendar of one doctor over [from, to]
	// (dates inclusive): weekly patterns materialized to concrete
	// slots with live occupancy overlaid.
	Doctor(ctx context.Context, clinicID, doctorID uuid.UUID, from, to time.Time) ([]slot.DaySchedule, error)

	// Clinic resolves a single day for every active doctor of the clinic.
	Clinic(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]DoctorDay, error)

	// Invalidate drops cached schedules for one doctor.
	Invalidate(ctx context.Context, clinicID, doctorID uuid.UUID)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db    *repo.Client
	cache *cache
	cfg   config.SchedulingConfig
}

func New(db *repo.Client, rdb *goredis.Client, cfg config.SchedulingConfig) Service {
	s := &scheduleService{db: db, cfg: cfg}
	if cfg.CacheEnabled && rdb != nil {
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		s.cache = &cache{rdb: rdb, ttl: ttl}
	}
	return s
}

func (s *scheduleService) Doctor(ctx context.Context, clinicID, doctorID uuid.UUID, from, to time.Time) ([]slot.DaySchedule, error) {
	from, to = slot.DateOf(from), slot.DateOf(to)
	if err := s.validateRange(from, to); err != nil {
		return nil, err
	}

	key := scheduleKey(clinicID, doctorID, from, to)
	if days, ok := s.cache.get(ctx, key); ok {
		return days, nil
	}

	days, err := s.resolve(ctx, clinicID, doctorID, from, to)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, key, days)
	return days, nil
}

func (s *scheduleService) Clinic(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]DoctorDay, error) {
	doctors, err := s.db.ClinicMember.Query().
		Where(
			entmember.ClinicID(clinicID),
			entmember.RoleEQ(entmember.RoleDoctor),
			entmember.IsActive(true),
		).
		Order(entmember.ByDisplayName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	out := make([]DoctorDay, 0, len(doctors))
	for _, d := range doctors {
		days, err := s.Doctor(ctx, clinicID, d.ID, date, date)
		if err != nil {
			return nil, err
		}
		dd := DoctorDay{DoctorID: d.ID, Name: d.DisplayName}
		if len(days) > 0 {
			dd.Schedule = days[0]
		} else {
			dd.Schedule = slot.DaySchedule{Date: slot.DateOf(date)}
		}
		out = append(out, dd)
	}
	return out, nil
}

func (s *scheduleService) Invalidate(ctx context.Context, clinicID, doctorID uuid.UUID) {
	s.cache.invalidate(ctx, clinicID, doctorID)
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

func (s *scheduleService) resolve(ctx context.Context, clinicID, doctorID uuid.UUID, from, to time.Time) ([]slot.DaySchedule, error) {
	rows, err := s.db.AvailabilityPattern.Query().
		Where(
			entpattern.ClinicID(clinicID),
			entpattern.DoctorID(doctorID),
			entpattern.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patterns: %w", err)
	}

	visits, err := s.db.Visit.Query().
		Where(
			entvisit.ClinicID(clinicID),
			entvisit.DoctorID(doctorID),
			entvisit.StatusNEQ(entvisit.StatusCancelled),
			entvisit.VisitDateGTE(from),
			entvisit.VisitDateLTE(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load visits: %w", err)
	}

	return slot.Resolve(mapPatterns(rows), mapVisits(visits), from, to), nil
}

func (s *scheduleService) validateRange(from, to time.Time) error {
	if to.Before(from) {
		return ErrInvalidRange
	}
	maxDays := s.cfg.MaxRangeDays
	if maxDays <= 0 {
		maxDays = 92
	}
	if int(to.Sub(from).Hours()/24)+1 > maxDays {
		return ErrRangeTooLarge
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func mapPatterns(rows []*repo.AvailabilityPattern) []slot.Pattern {
	out := make([]slot.Pattern, len(rows))
	for i, r := range rows {
		out[i] = slot.Pattern{
			ID:              r.ID,
			DoctorID:        r.DoctorID,
			DayOfWeek:       int(r.DayOfWeek),
			Start:           slot.TimeOfDay(r.StartMinute),
			End:             slot.TimeOfDay(r.EndMinute),
			DurationMinutes: r.SlotDurationMinutes,
			BufferMinutes:   r.BufferMinutes,
			Capacity:        r.MaxPatients,
			Type:            slot.PatternType(r.AvailabilityType),
			EffectiveFrom:   r.EffectiveFrom,
			EffectiveUntil:  r.EffectiveUntil,
			Active:          r.IsActive,
		}
	}
	return out
}

func mapVisits(rows []*repo.Visit) []slot.Visit {
	out := make([]slot.Visit, len(rows))
	for i, r := range rows {
		out[i] = slot.Visit{
			ID:              r.ID,
			PatientID:       r.PatientID,
			DoctorID:        r.DoctorID,
			Date:            r.VisitDate,
			Start:           slot.TimeOfDay(r.VisitTime),
			DurationMinutes: r.DurationMinutes,
		}
	}
	return out
}
