package postgres

import (
	"intake/pkg/domain"
	"time"
)

// Table and column names follow the schema the service was first deployed
// with; see migrations/.
const (
	applicantsTable  = "postulantes"
	documentsTable   = "documentos"
	credentialsTable = "users"
)

type PgApplicant struct {
	ID         int64  `db:"id"     goqu:"skipinsert"`
	Name       string `db:"nombre"`
	NationalID string `db:"dni"`
}

func (p *PgApplicant) ToDomain() *domain.Applicant {
	return &domain.Applicant{
		ID:         domain.ApplicantID(p.ID),
		Name:       p.Name,
		NationalID: p.NationalID,
	}
}

func (p *PgApplicant) FromDomain(applicant domain.Applicant) {
	*p = PgApplicant{
		ID:         int64(applicant.ID),
		Name:       applicant.Name,
		NationalID: applicant.NationalID,
	}
}

type PgDocument struct {
	ID          int64     `db:"id"             goqu:"skipinsert"`
	ApplicantID int64     `db:"postulante_id"`
	Type        string    `db:"tipo_documento"`
	BlobLocator string    `db:"archivo_url"`
	State       string    `db:"estado"`
	SubmittedAt time.Time `db:"fecha_subida"   goqu:"skipinsert"`
}

func (p *PgDocument) ToDomain() *domain.Document {
	return &domain.Document{
		ID:          domain.DocumentID(p.ID),
		ApplicantID: domain.ApplicantID(p.ApplicantID),
		Type:        p.Type,
		BlobLocator: p.BlobLocator,
		State:       domain.ReviewState(p.State),
		SubmittedAt: p.SubmittedAt,
	}
}

func (p *PgDocument) FromDomain(document domain.Document) {
	*p = PgDocument{
		ID:          int64(document.ID),
		ApplicantID: int64(document.ApplicantID),
		Type:        document.Type,
		BlobLocator: document.BlobLocator,
		State:       string(document.State),
		SubmittedAt: document.SubmittedAt,
	}
}

// PgDocumentRecord is the row shape of the documents/applicants join.
type PgDocumentRecord struct {
	ID            int64     `db:"id"`
	ApplicantName string    `db:"nombre"`
	NationalID    string    `db:"dni"`
	Type          string    `db:"tipo_documento"`
	BlobLocator   string    `db:"archivo_url"`
	State         string    `db:"estado"`
	SubmittedAt   time.Time `db:"fecha_subida"`
}

func (p *PgDocumentRecord) ToDomain() domain.DocumentRecord {
	return domain.DocumentRecord{
		ID:            domain.DocumentID(p.ID),
		ApplicantName: p.ApplicantName,
		NationalID:    p.NationalID,
		Type:          p.Type,
		BlobLocator:   p.BlobLocator,
		State:         domain.ReviewState(p.State),
		SubmittedAt:   p.SubmittedAt,
	}
}

type PgCredential struct {
	ID           int64  `db:"id"       goqu:"skipinsert"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
}

func (p *PgCredential) ToDomain() *domain.Credential {
	return &domain.Credential{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
	}
}

func (p *PgCredential) FromDomain(credential domain.Credential) {
	*p = PgCredential{
		ID:           int64(credential.ID),
		Username:     credential.Username,
		PasswordHash: credential.PasswordHash,
	}
}
