// Package registry implements the applicant registry: one applicant per
// national identifier, created on first sight and never overwritten.
package registry

import (
	"context"
	"errors"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("intake/internal/registry") //nolint: gochecknoglobals

type registry struct {
	storage storage.ApplicantStorage
}

// ResolveOrCreate looks the applicant up by national ID and inserts it when
// missing. The insert uses the store's atomic insert-if-absent primitive, so
// two callers racing on an unseen national ID end up with the same applicant;
// the loser re-reads the winner's row. Any uniqueness violation that still
// reaches this point is reported as a store failure.
func (r registry) ResolveOrCreate(ctx context.Context, name, nationalID string) (domain.ApplicantID, error) {
	ctx, span := tracer.Start(ctx, "registry.ResolveOrCreate")
	defer span.End()

	id, err := r.resolveOrCreate(ctx, name, nationalID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not resolve applicant")

		return 0, err
	}
	span.SetAttributes(attribute.Int64("applicant.id", int64(id)))

	return id, nil
}

func (r registry) resolveOrCreate(ctx context.Context, name, nationalID string) (domain.ApplicantID, error) {
	if nationalID == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "national id is required")
	}
	if name == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	existing, err := r.storage.ApplicantByNationalID(ctx, nationalID)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not look up applicant")
	}
	if existing != nil {
		return existing.ID, nil
	}

	created, err := r.storage.StoreApplicantIfAbsent(ctx, domain.Applicant{Name: name, NationalID: nationalID})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			logger.Warn(ctx, "concurrent applicant insert lost", zap.Error(err))
		}

		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not store applicant")
	}
	if created != nil {
		logger.Info(ctx, "applicant created", zap.Int64("applicantId", int64(created.ID)))

		return created.ID, nil
	}

	// another request inserted the applicant between our lookup and insert
	existing, err = r.storage.ApplicantByNationalID(ctx, nationalID)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not look up applicant")
	}
	if existing == nil {
		return 0, serrors.With(serrors.ErrStoreFailure, "applicant vanished after conflicting insert")
	}

	return existing.ID, nil
}

// New creates a Registry backed by the given store.
func New(storage storage.ApplicantStorage) Registry {
	return &registry{storage: storage}
}
