// Package ingest implements the document ingestion pipeline: resolve the
// applicant, then record the uploaded document in the pending review state.
package ingest

import (
	"context"
	"intake/internal/registry"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer trace.Tracer = otel.Tracer("intake/internal/ingest") //nolint: gochecknoglobals

type pipeline struct {
	registry registry.Registry
	storage  storage.DocumentStorage
}

// Validate reports the first missing field of req as a bad request.
func (req Request) Validate() error {
	switch {
	case req.BlobLocator == "":
		return serrors.With(serrors.ErrBadRequest, "document file is required")
	case req.Name == "":
		return serrors.With(serrors.ErrBadRequest, "name is required")
	case req.NationalID == "":
		return serrors.With(serrors.ErrBadRequest, "national id is required")
	case req.DocumentType == "":
		return serrors.With(serrors.ErrBadRequest, "document type is required")
	}

	return nil
}

// Ingest resolves (or creates) the applicant and inserts a new pending
// document for it. The two steps are separate statements; the document insert
// comes last, so a failed resolution never leaves a document behind. Every
// call creates a new document, even for identical input.
func (p pipeline) Ingest(ctx context.Context, req Request) (domain.DocumentID, error) {
	ctx, span := tracer.Start(ctx, "ingest.Ingest", trace.WithAttributes(
		attribute.String("document.type", req.DocumentType),
	))
	defer span.End()

	id, err := p.ingest(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not ingest document")

		return 0, err
	}
	span.SetAttributes(attribute.Int64("document.id", int64(id)))

	return id, nil
}

func (p pipeline) ingest(ctx context.Context, req Request) (domain.DocumentID, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	applicantID, err := p.registry.ResolveOrCreate(ctx, req.Name, req.NationalID)
	if err != nil {
		return 0, err //nolint: wrapcheck
	}

	doc, err := p.storage.StoreDocument(ctx, domain.Document{
		ApplicantID: applicantID,
		Type:        req.DocumentType,
		BlobLocator: req.BlobLocator,
		State:       domain.ReviewStatePending,
	})
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not store document")
	}

	logger.Info(ctx, "document ingested",
		zap.Int64("documentId", int64(doc.ID)),
		zap.Int64("applicantId", int64(applicantID)),
		zap.String("documentType", doc.Type))

	return doc.ID, nil
}

// New creates a Pipeline resolving applicants through r and storing documents in s.
func New(r registry.Registry, s storage.DocumentStorage) Pipeline {
	return &pipeline{
		registry: r,
		storage:  s,
	}
}
