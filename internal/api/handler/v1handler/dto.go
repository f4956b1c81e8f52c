package v1handler

import (
	"intake/pkg/domain"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Error is the body of every failed request.
type Error struct {
	Code    string
	Message string
}

func (r Error) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

type UploadDocumentResponse struct {
	Message    string
	DocumentID domain.DocumentID
}

func (r UploadDocumentResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("message")
	e.Str(r.Message)
	e.FieldStart("documentId")
	e.Int64(int64(r.DocumentID))
	e.ObjEnd()
}

// DocumentRecord is a document joined with its applicant as shown to reviewers.
type DocumentRecord domain.DocumentRecord

func (r DocumentRecord) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(r.ID))
	e.FieldStart("applicantName")
	e.Str(r.ApplicantName)
	e.FieldStart("nationalId")
	e.Str(r.NationalID)
	e.FieldStart("documentType")
	e.Str(r.Type)
	e.FieldStart("blobLocator")
	e.Str(r.BlobLocator)
	e.FieldStart("state")
	e.Str(string(r.State))
	e.FieldStart("submittedAt")
	e.Str(r.SubmittedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

type DocumentRecordList []domain.DocumentRecord

func (l DocumentRecordList) Encode(e *jx.Encoder) {
	e.ArrStart()
	for i := range l {
		DocumentRecord(l[i]).Encode(e)
	}
	e.ArrEnd()
}

type Document domain.Document

func (r Document) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(r.ID))
	e.FieldStart("applicantId")
	e.Int64(int64(r.ApplicantID))
	e.FieldStart("documentType")
	e.Str(r.Type)
	e.FieldStart("blobLocator")
	e.Str(r.BlobLocator)
	e.FieldStart("state")
	e.Str(string(r.State))
	e.FieldStart("submittedAt")
	e.Str(r.SubmittedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

// SetDocumentStateRequest accepts newState and, for older clients, estado.
type SetDocumentStateRequest struct {
	NewState string
}

func (r *SetDocumentStateRequest) Decode(d *jx.Decoder) error {
	var legacy string
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "newState":
			r.NewState, err = decodeString(d)
		case "estado":
			legacy, err = decodeString(d)
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "decode SetDocumentStateRequest")
	}

	if r.NewState == "" {
		r.NewState = legacy
	}

	return nil
}

// CredentialsRequest is the body of registration and login.
type CredentialsRequest struct {
	Username string
	Password string
}

func (r *CredentialsRequest) Decode(d *jx.Decoder) error {
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "username":
			r.Username, err = decodeString(d)
		case "password":
			r.Password, err = decodeString(d)
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "decode CredentialsRequest")
	}

	return nil
}

type UserResponse struct {
	Message string
	UserID  domain.UserID
}

func (r UserResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("message")
	e.Str(r.Message)
	e.FieldStart("userId")
	e.Int64(int64(r.UserID))
	e.ObjEnd()
}

// decodeString reads a string value, treating null as empty.
func decodeString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null() //nolint: wrapcheck
	}

	return d.Str() //nolint: wrapcheck
}

// decoder is implemented by every request DTO.
type decoder interface {
	Decode(d *jx.Decoder) error
}

func decodeBody(r io.Reader, v decoder) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read body")
	}
	if len(b) == 0 {
		return errors.New("empty body")
	}

	return v.Decode(jx.DecodeBytes(b))
}
