package review

import (
	"context"
	"intake/pkg/domain"
)

// Workflow lets reviewers list submitted documents and record their decisions.
//
//go:generate mockgen -package mockreview -source=interface.go -destination=mock/mockreview.go *
type Workflow interface {
	// ListAll returns every document joined with its applicant, ordered by
	// document ID. Callers must not depend on the order.
	ListAll(ctx context.Context) ([]domain.DocumentRecord, error)
	// SetReviewState overwrites the review state of a document verbatim and
	// returns the updated document.
	SetReviewState(ctx context.Context, ID domain.DocumentID, state domain.ReviewState) (*domain.Document, error)
}
