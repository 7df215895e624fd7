package booking

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/actor"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/events"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entpattern "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	entpatient "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/patient"
	entoccupancy "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	entvisit "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	DoctorID        uuid.UUID
	PatientID       uuid.UUID
	Date            time.Time
	Start           slot.TimeOfDay
	DurationMinutes int
	ConsultationFee int64
	ChiefComplaint  *string
}

type RescheduleRequest struct {
	Date            time.Time
	Start           slot.TimeOfDay
	DurationMinutes int
}

type CancelRequest struct {
	Reason *string
}

type CompleteRequest struct {
	ClinicalNotes *string
	MarkPaid      bool
}

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Visit, error)
	GetByID(ctx context.Context, clinicID, visitID uuid.UUID) (*repo.Visit, error)

	// Book atomically reserves a capacity unit in the doctor's schedule
	// and creates the visit. Concurrent bookings for the same doctor
	// serialize on the doctor's pattern rows, so capacity can never be
	// oversubscribed.
	Book(ctx context.Context, clinicID uuid.UUID, act actor.Actor, req BookRequest) (*repo.Visit, error)

	// Reschedule moves a scheduled visit to a new slot under the same
	// conflict rules as Book. The old capacity unit is freed in the
	// same transaction.
	Reschedule(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req RescheduleRequest) (*repo.Visit, error)

	// Cancel frees the visit's capacity unit. The visit row is kept.
	Cancel(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req CancelRequest) error

	// Start marks a scheduled visit as in progress.
	Start(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID) (*repo.Visit, error)

	// Complete closes a scheduled or in-progress visit.
	Complete(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req CompleteRequest) (*repo.Visit, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &bookingService{db: db, nc: nc}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *bookingService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Visit, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Visit.Query().
		Where(entvisit.ClinicID(clinicID))

	if req.DoctorID != nil {
		q = q.Where(entvisit.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entvisit.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entvisit.StatusEQ(entvisit.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entvisit.VisitDateGTE(slot.DateOf(*req.From)))
	}
	if req.To != nil {
		q = q.Where(entvisit.VisitDateLTE(slot.DateOf(*req.To)))
	}

	visits, err := q.
		Order(entvisit.ByVisitDate(sql.OrderDesc()), entvisit.ByVisitTime()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return visits, nil
}

func (s *bookingService) GetByID(ctx context.Context, clinicID, visitID uuid.UUID) (*repo.Visit, error) {
	v, err := s.db.Visit.Query().
		Where(entvisit.ID(visitID), entvisit.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVisitNotFound
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Book
// ---------------------------------------------------------------------------

func (s *bookingService) Book(ctx context.Context, clinicID uuid.UUID, act actor.Actor, req BookRequest) (*repo.Visit, error) {
	if !act.CanBook() {
		return nil, ErrForbidden
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 30
	}
	date := slot.DateOf(req.Date)

	patientOK, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.ClinicID(clinicID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !patientOK {
		return nil, ErrPatientNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	target, err := s.placeInSlot(ctx, tx, clinicID, req.DoctorID, date, req.Start, req.DurationMinutes, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if err := s.checkPatientConflict(ctx, tx, clinicID, req.PatientID, date, req.Start, req.DurationMinutes, uuid.Nil); err != nil {
		return nil, err
	}

	number, err := nextVisitNumber(ctx, tx, clinicID, date)
	if err != nil {
		return nil, err
	}

	c := tx.Visit.Create().
		SetClinicID(clinicID).
		SetDoctorID(req.DoctorID).
		SetPatientID(req.PatientID).
		SetVisitNumber(number).
		SetVisitDate(date).
		SetVisitTime(int16(req.Start)).
		SetDurationMinutes(req.DurationMinutes).
		SetConsultationFee(req.ConsultationFee).
		SetCreatedBy(act.MemberID)

	if req.ChiefComplaint != nil {
		c = c.SetChiefComplaint(*req.ChiefComplaint)
	}

	v, err := c.Save(ctx)
	if err != nil {
		// Bookings for different doctors hold disjoint pattern locks, so
		// two of them can compute the same sequential number. The
		// (clinic_id, visit_number) unique index catches the loser.
		if repo.IsConstraintError(err) {
			return nil, ErrVisitNumberConflict
		}
		return nil, fmt.Errorf("create visit: %w", err)
	}

	_, err = tx.SlotOccupancy.Create().
		SetClinicID(clinicID).
		SetVisitID(v.ID).
		SetPatternID(target.PatternIDs[0]).
		SetSlotDate(date).
		SetSlotStartMinute(int16(target.Start)).
		SetSlotEndMinute(int16(target.End)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	events.Publish(s.nc, events.SubjectVisitCreated, clinicID, v.ID)
	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, req.DoctorID)
	return v, nil
}

// ---------------------------------------------------------------------------
// Reschedule
// ---------------------------------------------------------------------------

func (s *bookingService) Reschedule(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req RescheduleRequest) (*repo.Visit, error) {
	if !act.CanBook() {
		return nil, ErrForbidden
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 30
	}
	date := slot.DateOf(req.Date)

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	v, err := tx.Visit.Query().
		Where(entvisit.ID(visitID), entvisit.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVisitNotFound
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	if v.Status != entvisit.StatusScheduled {
		return nil, ErrNotReschedulable
	}

	target, err := s.placeInSlot(ctx, tx, clinicID, v.DoctorID, date, req.Start, req.DurationMinutes, v.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkPatientConflict(ctx, tx, clinicID, v.PatientID, date, req.Start, req.DurationMinutes, v.ID); err != nil {
		return nil, err
	}

	updated, err := tx.Visit.UpdateOne(v).
		SetVisitDate(date).
		SetVisitTime(int16(req.Start)).
		SetDurationMinutes(req.DurationMinutes).
		SetUpdatedBy(act.MemberID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("move visit: %w", err)
	}

	// The occupancy row moves with its visit instead of being
	// released and recreated, so each visit keeps exactly one row.
	n, err := tx.SlotOccupancy.Update().
		Where(entoccupancy.VisitID(v.ID), entoccupancy.ReleasedAtIsNil()).
		SetPatternID(target.PatternIDs[0]).
		SetSlotDate(date).
		SetSlotStartMinute(int16(target.Start)).
		SetSlotEndMinute(int16(target.End)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("move reservation: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("move reservation: no active reservation for visit %s", v.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", err)
	}

	events.Publish(s.nc, events.SubjectVisitMoved, clinicID, v.ID)
	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, v.DoctorID)
	return updated, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (s *bookingService) Cancel(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req CancelRequest) error {
	if !act.CanBook() {
		return ErrForbidden
	}

	v, err := s.GetByID(ctx, clinicID, visitID)
	if err != nil {
		return err
	}
	switch v.Status {
	case entvisit.StatusCancelled:
		return ErrAlreadyCancelled
	case entvisit.StatusCompleted:
		return ErrAlreadyCompleted
	}

	now := time.Now().UTC()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	upd := tx.Visit.UpdateOne(v).
		SetStatus(entvisit.StatusCancelled).
		SetCancelledAt(now).
		SetUpdatedBy(act.MemberID)
	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel visit: %w", err)
	}

	// Releasing instead of deleting keeps the reservation history.
	_, err = tx.SlotOccupancy.Update().
		Where(entoccupancy.VisitID(v.ID), entoccupancy.ReleasedAtIsNil()).
		SetReleasedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cancellation: %w", err)
	}

	events.Publish(s.nc, events.SubjectVisitCancelled, clinicID, v.ID)
	events.Publish(s.nc, events.SubjectScheduleChanged, clinicID, v.DoctorID)
	return nil
}

func (s *bookingService) Start(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID) (*repo.Visit, error) {
	if !act.CanBook() {
		return nil, ErrForbidden
	}

	v, err := s.GetByID(ctx, clinicID, visitID)
	if err != nil {
		return nil, err
	}
	switch v.Status {
	case entvisit.StatusInProgress:
		return nil, ErrAlreadyStarted
	case entvisit.StatusCompleted:
		return nil, ErrAlreadyCompleted
	case entvisit.StatusCancelled:
		return nil, ErrAlreadyCancelled
	}

	updated, err := s.db.Visit.UpdateOne(v).
		SetStatus(entvisit.StatusInProgress).
		SetUpdatedBy(act.MemberID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("start visit: %w", err)
	}
	return updated, nil
}

func (s *bookingService) Complete(ctx context.Context, clinicID uuid.UUID, act actor.Actor, visitID uuid.UUID, req CompleteRequest) (*repo.Visit, error) {
	if !act.CanBook() {
		return nil, ErrForbidden
	}

	v, err := s.GetByID(ctx, clinicID, visitID)
	if err != nil {
		return nil, err
	}
	switch v.Status {
	case entvisit.StatusCompleted:
		return nil, ErrAlreadyCompleted
	case entvisit.StatusCancelled:
		return nil, ErrAlreadyCancelled
	}

	upd := s.db.Visit.UpdateOne(v).
		SetStatus(entvisit.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		SetUpdatedBy(act.MemberID)
	if req.ClinicalNotes != nil {
		upd = upd.SetClinicalNotes(*req.ClinicalNotes)
	}
	if req.MarkPaid {
		upd = upd.SetPaymentStatus(entvisit.PaymentStatusPaid)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete visit: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Conflict resolution
// ---------------------------------------------------------------------------

// placeInSlot locks the doctor's pattern rows, materializes the requested
// day inside the transaction and picks the slot the visit lands in. Row
// locks make concurrent bookings for the same doctor run one at a time, so
// the capacity check cannot race.
func (s *bookingService) placeInSlot(ctx context.Context, tx *repo.Tx, clinicID, doctorID uuid.UUID, date time.Time, start slot.TimeOfDay, durationMinutes int, exclude uuid.UUID) (*slot.Slot, error) {
	rows, err := tx.AvailabilityPattern.Query().
		Where(
			entpattern.ClinicID(clinicID),
			entpattern.DoctorID(doctorID),
			entpattern.IsActive(true),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock patterns: %w", err)
	}

	visitRows, err := tx.Visit.Query().
		Where(
			entvisit.ClinicID(clinicID),
			entvisit.DoctorID(doctorID),
			entvisit.VisitDate(date),
			entvisit.StatusNEQ(entvisit.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load day visits: %w", err)
	}

	patterns := make([]slot.Pattern, len(rows))
	for i, r := range rows {
		patterns[i] = slot.Pattern{
			ID:             r.ID,
			DoctorID:       r.DoctorID,
			DayOfWeek:      int(r.DayOfWeek),
			Start:          slot.TimeOfDay(r.StartMinute),
			End:            slot.TimeOfDay(r.EndMinute),
			Capacity:       r.MaxPatients,
			Type:           slot.PatternType(r.AvailabilityType),
			EffectiveFrom:  r.EffectiveFrom,
			EffectiveUntil: r.EffectiveUntil,
			Active:         r.IsActive,
		}
	}

	visits := make([]slot.Visit, 0, len(visitRows))
	for _, r := range visitRows {
		if r.ID == exclude {
			continue
		}
		visits = append(visits, slot.Visit{
			ID:              r.ID,
			PatientID:       r.PatientID,
			DoctorID:        r.DoctorID,
			Date:            r.VisitDate,
			Start:           slot.TimeOfDay(r.VisitTime),
			DurationMinutes: r.DurationMinutes,
		})
	}

	return chooseSlot(patterns, visits, date, start, durationMinutes)
}

// chooseSlot applies the booking conflict rules to an already loaded
// doctor-day: the requested interval must not overlap any of the doctor's
// existing visits, an active bookable slot must cover it, and that slot
// must have capacity left. visits must already exclude the caller's own
// reservation when rescheduling.
func chooseSlot(patterns []slot.Pattern, visits []slot.Visit, date time.Time, start slot.TimeOfDay, durationMinutes int) (*slot.Slot, error) {
	if c := slot.ConflictingVisit(visits, start, durationMinutes, uuid.Nil); c != nil {
		return nil, fmt.Errorf("%w: doctor is booked %s-%s", ErrVisitOverlap, c.Start, c.End())
	}

	days := slot.Resolve(patterns, visits, date, date)
	if len(days) == 0 {
		return nil, ErrOutsideAvailability
	}

	end := start.Add(durationMinutes)
	covered := false
	for i := range days[0].Slots {
		sl := &days[0].Slots[i]
		if !sl.Contains(start) || end > sl.End || !sl.Type.Bookable() {
			continue
		}
		covered = true
		if sl.Available() {
			return sl, nil
		}
	}
	if covered {
		return nil, ErrCapacityExhausted
	}
	return nil, ErrOutsideAvailability
}

// checkPatientConflict rejects a booking when the patient already has a
// non-cancelled visit overlapping the requested interval, with any doctor.
func (s *bookingService) checkPatientConflict(ctx context.Context, tx *repo.Tx, clinicID, patientID uuid.UUID, date time.Time, start slot.TimeOfDay, durationMinutes int, exclude uuid.UUID) error {
	rows, err := tx.Visit.Query().
		Where(
			entvisit.ClinicID(clinicID),
			entvisit.PatientID(patientID),
			entvisit.VisitDate(date),
			entvisit.StatusNEQ(entvisit.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load patient visits: %w", err)
	}

	visits := make([]slot.Visit, len(rows))
	for i, r := range rows {
		visits[i] = slot.Visit{
			ID:              r.ID,
			Start:           slot.TimeOfDay(r.VisitTime),
			DurationMinutes: r.DurationMinutes,
		}
	}
	if c := slot.ConflictingVisit(visits, start, durationMinutes, exclude); c != nil {
		return fmt.Errorf("%w: visit %s", ErrVisitOverlap, c.ID)
	}
	return nil
}
