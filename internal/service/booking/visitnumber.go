package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entvisit "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
)

// nextVisitNumber issues the clinic's next human-readable visit number,
// sequential per calendar year ("V2026-00042"). Callers hold the doctor's
// pattern row locks, so same-doctor races are serialized; the unique
// (clinic_id, visit_number) index catches the rest.
func nextVisitNumber(ctx context.Context, tx *repo.Tx, clinicID uuid.UUID, visitDate time.Time) (string, error) {
	year := visitDate.Year()
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	n, err := tx.Visit.Query().
		Where(
			entvisit.ClinicID(clinicID),
			entvisit.VisitDateGTE(yearStart),
			entvisit.VisitDateLT(yearEnd),
		).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count visits: %w", err)
	}
	return fmt.Sprintf("V%d-%05d", year, n+1), nil
}
