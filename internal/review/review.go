// Package review implements the document review workflow.
package review

import (
	"context"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"

	"go.uber.org/zap"
)

type workflow struct {
	storage storage.DocumentStorage
}

func (w workflow) ListAll(ctx context.Context) ([]domain.DocumentRecord, error) {
	records, err := w.storage.DocumentRecords(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStoreFailure, err, "could not list documents")
	}

	return records, nil
}

// SetReviewState accepts any state label; there is no closed set of states.
// An unknown document is reported as not found rather than ignored.
func (w workflow) SetReviewState(ctx context.Context,
	id domain.DocumentID,
	state domain.ReviewState) (*domain.Document, error) {
	doc, err := w.storage.UpdateDocumentState(ctx, id, state)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStoreFailure, err, "could not update document state")
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	logger.Info(ctx, "document review state changed",
		zap.Int64("documentId", int64(doc.ID)),
		zap.String("state", string(doc.State)))

	return doc, nil
}

// New creates a Workflow backed by the given store.
func New(storage storage.DocumentStorage) Workflow {
	return &workflow{storage: storage}
}
