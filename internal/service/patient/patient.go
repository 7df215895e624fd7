package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entpatient "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/predicate"
)

// defaultRegion resolves national-format phone numbers. Clinics outside
// this region can still register patients with full international numbers.
const defaultRegion = "IR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	FullName    string
	Phone       *string
	FileNumber  *string
	DateOfBirth *time.Time
	Gender      *string
	Notes       *string
}

type UpdateRequest struct {
	FullName    *string
	Phone       *string
	FileNumber  *string
	DateOfBirth *time.Time
	Gender      *string
	Notes       *string
}

type ListRequest struct {
	// Search matches against name, phone and file number.
	Search  string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Create(ctx context.Context, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, clinicID, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(
			entpatient.ID(patientID),
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Patient.Query().
		Where(
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		)

	if req.Search != "" {
		search := req.Search
		// A search that parses as a phone number also matches its
		// normalized form, so "0912..." finds "+98912...".
		or := []predicate.Patient{
			entpatient.FullNameContainsFold(search),
			entpatient.PhoneContainsFold(search),
			entpatient.FileNumberContainsFold(search),
		}
		if normalized, err := normalizePhone(search, defaultRegion); err == nil {
			or = append(or, entpatient.Phone(normalized))
		}
		q = q.Where(entpatient.Or(or...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	offset := (req.Page - 1) * req.PerPage
	patients, err := q.
		Order(entpatient.ByFullName(), entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *patientService) Create(ctx context.Context, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error) {
	c := s.db.Patient.Create().
		SetClinicID(clinicID).
		SetFullName(req.FullName)

	if req.Phone != nil && *req.Phone != "" {
		phone, err := normalizePhone(*req.Phone, defaultRegion)
		if err != nil {
			return nil, err
		}
		if err := s.checkDuplicatePhone(ctx, clinicID, phone, uuid.Nil); err != nil {
			return nil, err
		}
		c = c.SetPhone(phone)
	}
	if req.FileNumber != nil {
		c = c.SetFileNumber(*req.FileNumber)
	}
	if req.DateOfBirth != nil {
		c = c.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		c = c.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Notes != nil {
		c = c.SetNotes(*req.Notes)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)
	if req.FullName != nil {
		u = u.SetFullName(*req.FullName)
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			u = u.ClearPhone()
		} else {
			phone, err := normalizePhone(*req.Phone, defaultRegion)
			if err != nil {
				return nil, err
			}
			if err := s.checkDuplicatePhone(ctx, clinicID, phone, patientID); err != nil {
				return nil, err
			}
			u = u.SetPhone(phone)
		}
	}
	if req.FileNumber != nil {
		u = u.SetFileNumber(*req.FileNumber)
	}
	if req.DateOfBirth != nil {
		u = u.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		u = u.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Notes != nil {
		u = u.SetNotes(*req.Notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

func (s *patientService) Delete(ctx context.Context, clinicID, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return err
	}
	// Soft delete: visit history keeps referencing the patient row.
	return s.db.Patient.UpdateOne(p).
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx)
}

func (s *patientService) checkDuplicatePhone(ctx context.Context, clinicID uuid.UUID, phone string, exclude uuid.UUID) error {
	q := s.db.Patient.Query().
		Where(
			entpatient.ClinicID(clinicID),
			entpatient.Phone(phone),
			entpatient.DeletedAtIsNil(),
		)
	if exclude != uuid.Nil {
		q = q.Where(entpatient.IDNEQ(exclude))
	}
	exists, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check phone: %w", err)
	}
	if exists {
		return ErrDuplicatePhone
	}
	return nil
}
