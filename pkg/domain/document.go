package domain

import "time"

// DocumentID uniquely identifies an uploaded document.
type DocumentID int64

// ReviewState is a caller supplied label tracking a document's approval progress.
// Only ReviewStatePending is assigned by the system; any other value is accepted
// verbatim when the state is updated.
type ReviewState string

const (
	// ReviewStatePending is the state of every document at creation time.
	ReviewStatePending ReviewState = "pending"
	// ReviewStateApproved is the conventional label for an accepted document.
	ReviewStateApproved ReviewState = "approved"
	// ReviewStateRejected is the conventional label for a refused document.
	ReviewStateRejected ReviewState = "rejected"
)

// Document is one uploaded artifact tied to exactly one applicant.
type Document struct {
	// ID is the store generated identifier.
	ID DocumentID `json:"id"`
	// ApplicantID references the owning applicant.
	ApplicantID ApplicantID `json:"applicantId"`
	// Type is a free-form category such as "ID" or "PASSPORT".
	Type string `json:"documentType"`
	// BlobLocator is the opaque reference returned by the blob store.
	BlobLocator string `json:"blobLocator"`
	// State is the current review state.
	State ReviewState `json:"state"`
	// SubmittedAt is set by the store on creation and never changes.
	SubmittedAt time.Time `json:"submittedAt"`
}

// DocumentRecord is a document joined with its owning applicant, as shown to
// reviewers.
type DocumentRecord struct {
	ID            DocumentID  `json:"id"`
	ApplicantName string      `json:"applicantName"`
	NationalID    string      `json:"nationalId"`
	Type          string      `json:"documentType"`
	BlobLocator   string      `json:"blobLocator"`
	State         ReviewState `json:"state"`
	SubmittedAt   time.Time   `json:"submittedAt"`
}
