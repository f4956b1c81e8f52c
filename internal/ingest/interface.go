package ingest

import (
	"context"
	"intake/pkg/domain"
)

// Request carries the applicant metadata of an upload together with the
// locator of the file the boundary layer already wrote to the blob store.
type Request struct {
	Name         string
	NationalID   string
	DocumentType string
	BlobLocator  string
}

// Pipeline turns an uploaded file into a pending document of a deduplicated
// applicant.
//
//go:generate mockgen -package mockingest -source=interface.go -destination=mock/mockingest.go *
type Pipeline interface {
	Ingest(ctx context.Context, req Request) (domain.DocumentID, error)
}
