package domain

// ApplicantID uniquely identifies an applicant. It is generated by the store
// when the applicant is first seen.
type ApplicantID int64

// Applicant is a natural person, deduplicated by NationalID.
// An applicant is created on the first upload that references an unseen
// national identifier and is never mutated afterwards.
type Applicant struct {
	// ID is the store generated identifier.
	ID ApplicantID `json:"id"`
	// Name is the display name supplied on creation.
	Name string `json:"name"`
	// NationalID is the natural key used for deduplication. At most one
	// applicant exists per national identifier.
	NationalID string `json:"nationalId"`
}
