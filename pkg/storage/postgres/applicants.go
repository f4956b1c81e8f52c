package postgres

import (
	"context"
	"fmt"
	"intake/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// ApplicantByNationalID returns the applicant registered under nationalID, or nil.
func (p *PgSQL) ApplicantByNationalID(ctx context.Context, nationalID string) (*domain.Applicant, error) {
	var row PgApplicant
	found, err := p.Builder.From(applicantsTable).
		Where(goqu.I("dni").Eq(nationalID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch applicant by national id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreApplicantIfAbsent inserts the applicant with ON CONFLICT DO NOTHING so
// that concurrent callers racing on the same national ID cannot both insert.
// It returns nil when the row already existed.
func (p *PgSQL) StoreApplicantIfAbsent(ctx context.Context, applicant domain.Applicant) (*domain.Applicant, error) {
	var in, out PgApplicant
	in.FromDomain(applicant)

	inserted, err := p.Builder.Insert(applicantsTable).
		Rows(in).
		OnConflict(goqu.DoNothing()).
		Returning(&PgApplicant{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, mapError(err, "could not store applicant into pg")
	}
	if !inserted {
		return nil, nil
	}

	return out.ToDomain(), nil
}
