package registry

import (
	"context"
	"intake/pkg/domain"
)

// Registry owns the identity of applicants and deduplicates them by national ID.
//
//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	// ResolveOrCreate returns the ID of the applicant registered under
	// nationalID, creating it with name when none exists. name is ignored when
	// the applicant already exists.
	ResolveOrCreate(ctx context.Context, name, nationalID string) (domain.ApplicantID, error)
}
