package v1handler_test

import (
	"bytes"
	"context"
	"errors"
	"intake/internal/api/handler/v1handler"
	"intake/internal/ingest"
	"intake/pkg/domain"
	"intake/pkg/serrors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadRequest(t *testing.T, fields map[string]string, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(v1handler.DocumentFormField, fileName)
		require.NoError(t, err)
		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func validFields() map[string]string {
	return map[string]string{
		"name":         "Bob",
		"nationalId":   "DNI1",
		"documentType": "ID",
	}
}

func TestUploadDocument_Success(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	gomock.InOrder(
		deps.blobs.EXPECT().Put(gomock.Any(), "dni.pdf", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, content io.Reader) (string, error) {
				b, err := io.ReadAll(content)
				require.NoError(t, err)
				require.Equal(t, "%PDF-1.7", string(b))

				return "uploads/1-abc-dni.pdf", nil
			}),
		deps.ingest.EXPECT().Ingest(gomock.Any(), ingest.Request{
			Name:         "Bob",
			NationalID:   "DNI1",
			DocumentType: "ID",
			BlobLocator:  "uploads/1-abc-dni.pdf",
		}).Return(domain.DocumentID(1), nil),
	)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, validFields(), "dni.pdf", "%PDF-1.7"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"document uploaded","documentId":1}`, rec.Body.String())
}

func TestUploadDocument_LegacyFieldNames(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.blobs.EXPECT().Put(gomock.Any(), "dni.pdf", gomock.Any()).Return("uploads/x", nil)
	deps.ingest.EXPECT().Ingest(gomock.Any(), ingest.Request{
		Name:         "Ana",
		NationalID:   "123",
		DocumentType: "DNI",
		BlobLocator:  "uploads/x",
	}).Return(domain.DocumentID(2), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, map[string]string{
		"nombre":         "Ana",
		"dni":            "123",
		"tipo_documento": "DNI",
	}, "dni.pdf", "x"))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadDocument_MissingFile(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, validFields(), "", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, message := decodeError(t, rec)
	require.Equal(t, "BAD_REQUEST", code)
	require.Equal(t, "document file is required", message)
}

func TestUploadDocument_MissingMetadataWritesNothing(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	fields := validFields()
	delete(fields, "nationalId")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, fields, "dni.pdf", "x"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadDocument_NotMultipart(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadDocument_TooLarge(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{MaxUploadBytes: 64})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, validFields(), "dni.pdf", strings.Repeat("x", 1024)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	require.Equal(t, "BAD_REQUEST", code)
}

func TestUploadDocument_IngestFailureDiscardsBlob(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.blobs.EXPECT().Put(gomock.Any(), "dni.pdf", gomock.Any()).Return("uploads/1-abc-dni.pdf", nil)
	deps.ingest.EXPECT().Ingest(gomock.Any(), gomock.Any()).
		Return(domain.DocumentID(0), serrors.Wrap(serrors.ErrStoreFailure, errors.New("db down"), "could not store document"))
	deps.sweeper.EXPECT().Discard(gomock.Any(), "uploads/1-abc-dni.pdf").Return(nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, validFields(), "dni.pdf", "x"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "db down")
}

func TestUploadDocument_BlobFailure(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.blobs.EXPECT().Put(gomock.Any(), "dni.pdf", gomock.Any()).Return("", errors.New("disk full"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, validFields(), "dni.pdf", "x"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "disk full")
}

func TestListDocuments(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	submitted := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	deps.review.EXPECT().ListAll(gomock.Any()).Return([]domain.DocumentRecord{
		{
			ID:            1,
			ApplicantName: "Bob",
			NationalID:    "DNI1",
			Type:          "ID",
			BlobLocator:   "uploads/a.pdf",
			State:         domain.ReviewStatePending,
			SubmittedAt:   submitted,
		},
	}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{
		"id": 1,
		"applicantName": "Bob",
		"nationalId": "DNI1",
		"documentType": "ID",
		"blobLocator": "uploads/a.pdf",
		"state": "pending",
		"submittedAt": "2024-06-10T12:00:00Z"
	}]`, rec.Body.String())
}

func TestListDocuments_Empty(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.review.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDocuments_StoreFailure(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.review.EXPECT().ListAll(gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrStoreFailure, errors.New("timeout"), "could not list documents"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSetDocumentState(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "newState", body: `{"newState":"approved"}`},
		{name: "legacy estado", body: `{"estado":"approved"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, srv := newTestServer(t, v1handler.Options{})

			deps.review.EXPECT().SetReviewState(gomock.Any(), domain.DocumentID(1), domain.ReviewStateApproved).
				Return(&domain.Document{
					ID:          1,
					ApplicantID: 1,
					Type:        "ID",
					BlobLocator: "uploads/a.pdf",
					State:       domain.ReviewStateApproved,
					SubmittedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
				}, nil)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/documents/1", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{
				"id": 1,
				"applicantId": 1,
				"documentType": "ID",
				"blobLocator": "uploads/a.pdf",
				"state": "approved",
				"submittedAt": "2024-06-10T12:00:00Z"
			}`, rec.Body.String())
		})
	}
}

func TestSetDocumentState_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
		ID   domain.DocumentID
	}{
		{name: "unknown id", path: "/api/documents/999", ID: 999},
		{name: "zero id", path: "/api/documents/0", ID: 0},
		{name: "negative id", path: "/api/documents/-1", ID: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, srv := newTestServer(t, v1handler.Options{})

			deps.review.EXPECT().SetReviewState(gomock.Any(), tt.ID, domain.ReviewStateRejected).
				Return(nil, serrors.With(serrors.ErrNotFound, "document not found"))

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(`{"newState":"rejected"}`)))

			require.Equal(t, http.StatusNotFound, rec.Code)
			code, message := decodeError(t, rec)
			require.Equal(t, "NOT_FOUND", code)
			require.Equal(t, "document not found", message)
		})
	}
}

func TestSetDocumentState_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "non numeric id", path: "/api/documents/abc", body: `{"newState":"approved"}`},
		{name: "empty body", path: "/api/documents/1", body: ``},
		{name: "malformed json", path: "/api/documents/1", body: `{"newState":`},
		{name: "missing state", path: "/api/documents/1", body: `{}`},
		{name: "non string state", path: "/api/documents/1", body: `{"newState":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newTestServer(t, v1handler.Options{})

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
