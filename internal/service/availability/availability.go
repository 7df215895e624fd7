package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/actor"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/events"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entpattern "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	entmember "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	entoccupancy "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// PatternInput is one weekly time block of a batch submission. Start and End
// arrive as "HH:MM" strings at the HTTP boundary and are parsed before the
// service sees them.
type PatternInput struct {
	DayOfWeek       int
	Start           slot.TimeOfDay
	End             slot.TimeOfDay
	DurationMinutes int
	BufferMinutes   int
	MaxPatients     int
	Type            slot.PatternType
	EffectiveFrom   time.Time
	EffectiveUntil  *time.Time
	Notes           *string
}

// UpdatePatternRequest carries the mutable fields of an existing pattern.
// Nil pointers leave the stored value untouched.
type UpdatePatternRequest struct {
	Start           *slot.TimeOfDay
	End             *slot.TimeOfDay
	DurationMinutes *int
	BufferMinutes   *int
	MaxPatients     *int
	Type            *slot.PatternType
	EffectiveUntil  *time.Time
	Notes           *string
}

// ListFilter narrows a pattern listing. Zero values mean "no filter".
type ListFilter struct {
	DoctorID   uuid.UUID
	DayOfWeek  *int
	ActiveOnly bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create replaces nothing: it appends the submitted blocks as new
	// patterns in one transaction. The batch must be internally
	// conflict-free; blocks overlapping already stored patterns are
	// allowed and merged additively at materialization time.
	Create(ctx context.Context, clinicID uuid.UUID, act actor.Actor, doctorID uuid.UUID, blocks []PatternInput) ([]*repo.AvailabilityPattern, error)

	Update(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID, req UpdatePatternRequest) (*repo.AvailabilityPattern, error)

	// Deactivate soft-deletes a pattern: future materialization stops,
	// existing visits keep their reservations.
	Deactivate(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID) (*repo.AvailabilityPattern, error)

	// Delete removes a pattern permanently. It fails with ErrPatternInUse
	// while any unreleased future reservation still points at the pattern.
	Delete(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID) error

	List(ctx context.Context, clinicID uuid.UUID, filter ListFilter) ([]*repo.AvailabilityPattern, error)

	Get(ctx context.Context, clinicID, patternID uuid.UUID) (*repo.AvailabilityPattern, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &availabilityService{db: db, nc: nc}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *availabilityService) Create(ctx context.Context, clinicID uuid.UUID, act actor.Actor, doctorID uuid.UUID, blocks []PatternInput) ([]*repo.AvailabilityPattern, error) {
	if err := s.authorize(act, doctorID); err != nil {
		return nil, err
	}
	if err := validateBatch(blocks); err != nil {
		return nil, err
	}
	if err := s.requireDoctor(ctx, clinicID, doctorID); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	created := make([]*repo.AvailabilityPattern, 0, len(blocks))
	for _, b := range blocks {
		c := tx.AvailabilityPattern.Create().
			SetClinicID(clinicID).
			SetDoctorID(doctorID).
			SetDayOfWeek(int8(b.DayOfWeek)).
			SetStartMinute(int16(b.Start)).
			SetEndMinute(int16(b.End)).
			SetAvailabilityType(entpattern.AvailabilityType(b.Type)).
			SetEffectiveFrom(slot.DateOf(b.EffectiveFrom)).
			SetCreatedBy(act.MemberID)

		if b.DurationMinutes > 0 {
			c = c.SetSlotDurationMinutes(b.DurationMinutes)
		}
		if b.BufferMinutes > 0 {
			c = c.SetBufferMinutes(b.BufferMinutes)
		}
		if b.MaxPatients > 0 {
			c = c.SetMaxPatients(b.MaxPatients)
		}
		if b.EffectiveUntil != nil {
			c = c.SetEffectiveUntil(slot.DateOf(*b.EffectiveUntil))
		}
		if b.Notes != nil {
			c = c.SetNotes(*b.Notes)
		}

		p, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create pattern: %w", err)
		}
		created = append(created, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit patterns: %w", err)
	}

	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, doctorID)
	return created, nil
}

// ---------------------------------------------------------------------------
// Update / Deactivate / Delete
// ---------------------------------------------------------------------------

func (s *availabilityService) Update(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID, req UpdatePatternRequest) (*repo.AvailabilityPattern, error) {
	p, err := s.owned(ctx, clinicID, act, patternID)
	if err != nil {
		return nil, err
	}

	start := slot.TimeOfDay(p.StartMinute)
	end := slot.TimeOfDay(p.EndMinute)
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	if end <= start {
		return nil, ErrInvalidTimeRange
	}
	if req.EffectiveUntil != nil && slot.DateOf(*req.EffectiveUntil).Before(slot.DateOf(p.EffectiveFrom)) {
		return nil, ErrInvalidEffectiveRange
	}

	u := s.db.AvailabilityPattern.UpdateOne(p).
		SetStartMinute(int16(start)).
		SetEndMinute(int16(end)).
		SetUpdatedBy(act.MemberID)

	if req.DurationMinutes != nil {
		u = u.SetSlotDurationMinutes(*req.DurationMinutes)
	}
	if req.BufferMinutes != nil {
		u = u.SetBufferMinutes(*req.BufferMinutes)
	}
	if req.MaxPatients != nil {
		u = u.SetMaxPatients(*req.MaxPatients)
	}
	if req.Type != nil {
		u = u.SetAvailabilityType(entpattern.AvailabilityType(*req.Type))
	}
	if req.EffectiveUntil != nil {
		u = u.SetEffectiveUntil(slot.DateOf(*req.EffectiveUntil))
	}
	if req.Notes != nil {
		u = u.SetNotes(*req.Notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update pattern: %w", err)
	}

	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, p.DoctorID)
	return updated, nil
}

func (s *availabilityService) Deactivate(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID) (*repo.AvailabilityPattern, error) {
	p, err := s.owned(ctx, clinicID, act, patternID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.AvailabilityPattern.UpdateOne(p).
		SetIsActive(false).
		SetUpdatedBy(act.MemberID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("deactivate pattern: %w", err)
	}

	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, p.DoctorID)
	return updated, nil
}

func (s *availabilityService) Delete(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID) error {
	p, err := s.owned(ctx, clinicID, act, patternID)
	if err != nil {
		return err
	}

	// A pattern with live future reservations cannot disappear: the
	// occupancy rows would lose the block they were counted against.
	// Deactivate instead, or cancel the visits first.
	inUse, err := s.db.SlotOccupancy.Query().
		Where(
			entoccupancy.PatternID(patternID),
			entoccupancy.ReleasedAtIsNil(),
			entoccupancy.SlotDateGTE(slot.DateOf(time.Now().UTC())),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check pattern reservations: %w", err)
	}
	if inUse {
		return ErrPatternInUse
	}

	if err := s.db.AvailabilityPattern.DeleteOne(p).Exec(ctx); err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}

	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, p.DoctorID)
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *availabilityService) List(ctx context.Context, clinicID uuid.UUID, filter ListFilter) ([]*repo.AvailabilityPattern, error) {
	q := s.db.AvailabilityPattern.Query().
		Where(entpattern.ClinicID(clinicID))

	if filter.DoctorID != uuid.Nil {
		q = q.Where(entpattern.DoctorID(filter.DoctorID))
	}
	if filter.DayOfWeek != nil {
		q = q.Where(entpattern.DayOfWeek(int8(*filter.DayOfWeek)))
	}
	if filter.ActiveOnly {
		q = q.Where(entpattern.IsActive(true))
	}

	patterns, err := q.
		Order(entpattern.ByDayOfWeek(), entpattern.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	return patterns, nil
}

func (s *availabilityService) Get(ctx context.Context, clinicID, patternID uuid.UUID) (*repo.AvailabilityPattern, error) {
	p, err := s.db.AvailabilityPattern.Query().
		Where(entpattern.ID(patternID), entpattern.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatternNotFound
		}
		return nil, fmt.Errorf("get pattern: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *availabilityService) authorize(act actor.Actor, doctorID uuid.UUID) error {
	if act.CanManageSchedules() || act.MemberID == doctorID {
		return nil
	}
	return ErrNotScheduleOwner
}

// owned loads a pattern scoped to the clinic and enforces that the actor is
// allowed to mutate it.
func (s *availabilityService) owned(ctx context.Context, clinicID uuid.UUID, act actor.Actor, patternID uuid.UUID) (*repo.AvailabilityPattern, error) {
	p, err := s.Get(ctx, clinicID, patternID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(act, p.DoctorID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *availabilityService) requireDoctor(ctx context.Context, clinicID, doctorID uuid.UUID) error {
	exists, err := s.db.ClinicMember.Query().
		Where(
			entmember.ID(doctorID),
			entmember.ClinicID(clinicID),
			entmember.RoleEQ(entmember.RoleDoctor),
			entmember.IsActive(true),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !exists {
		return ErrDoctorNotFound
	}
	return nil
}

func validateBatch(blocks []PatternInput) error {
	if len(blocks) == 0 {
		return nil
	}
	inputs := make([]slot.InputBlock, len(blocks))
	for i, b := range blocks {
		if b.DayOfWeek < 0 || b.DayOfWeek > 7 {
			return ErrInvalidDayOfWeek
		}
		if b.End <= b.Start {
			return ErrInvalidTimeRange
		}
		if b.EffectiveUntil != nil && slot.DateOf(*b.EffectiveUntil).Before(slot.DateOf(b.EffectiveFrom)) {
			return ErrInvalidEffectiveRange
		}
		inputs[i] = slot.InputBlock{DayOfWeek: b.DayOfWeek, Start: b.Start, End: b.End}
	}
	if i, j := slot.FirstOverlappingInput(inputs); i >= 0 {
		return fmt.Errorf("%w: blocks %d and %d", ErrOverlappingBlocks, i, j)
	}
	return nil
}
