// Package storage defines the persistence interfaces the intake service relies on.
// The relational store is the sole owner of applicants, documents and
// credentials; components receive a Storage handle at construction time and
// keep no authoritative state of their own between requests.
//
// Lookups that find nothing return a nil record and a nil error. Uniqueness
// violations are reported as ErrDuplicate; every other failure is returned
// wrapped.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"intake/pkg/domain"

	"github.com/riverqueue/river"
)

// ApplicantStorage persists applicants keyed by national identifier.
type ApplicantStorage interface {
	// ApplicantByNationalID returns the applicant with the given national ID,
	// or nil when none exists.
	ApplicantByNationalID(ctx context.Context, nationalID string) (*domain.Applicant, error)
	// StoreApplicantIfAbsent atomically inserts the applicant unless one with
	// the same national ID already exists. It returns nil when nothing was
	// inserted; it never overwrites an existing row.
	StoreApplicantIfAbsent(ctx context.Context, applicant domain.Applicant) (*domain.Applicant, error)
}

// DocumentStorage persists documents and exposes the reviewer listing.
type DocumentStorage interface {
	// StoreDocument inserts a new document. ID and SubmittedAt are generated
	// by the store.
	StoreDocument(ctx context.Context, document domain.Document) (*domain.Document, error)
	// DocumentRecords returns every document joined with its applicant,
	// ordered by document ID ascending.
	DocumentRecords(ctx context.Context) ([]domain.DocumentRecord, error)
	// UpdateDocumentState overwrites the review state of a document and
	// returns the updated row, or nil when no such document exists.
	UpdateDocumentState(ctx context.Context, ID domain.DocumentID, state domain.ReviewState) (*domain.Document, error)
}

// CredentialStorage persists administrative credentials.
type CredentialStorage interface {
	// CredentialByUsername returns the credential for username, or nil.
	CredentialByUsername(ctx context.Context, username string) (*domain.Credential, error)
	// StoreCredential inserts a new credential. A taken username yields
	// ErrDuplicate.
	StoreCredential(ctx context.Context, credential domain.Credential) (*domain.Credential, error)
}

// JobStorage enqueues background jobs in the same database.
type JobStorage interface {
	// AddJob enqueues a job. It reports false when the job was skipped as a
	// duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage groups every domain capability of the store.
type AllStorage interface {
	ApplicantStorage
	DocumentStorage
	CredentialStorage
	JobStorage
}

// Storage is the storage handle owning the connection pool. Every method is a
// single statement relying on the store's per-statement atomicity.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
