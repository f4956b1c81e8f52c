package v1handler

import (
	"errors"
	"intake/internal/ingest"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	// multipartMemory is the part of a multipart form kept in memory; the rest
	// spills to temporary files.
	multipartMemory = 8 << 20

	// DocumentFormField is the multipart field carrying the uploaded file.
	DocumentFormField = "document"
)

// formValue returns the first non-empty value among the given field names.
func formValue(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}

	return ""
}

// UploadDocument stores the uploaded file and ingests it as a pending document.
// When ingestion fails after the file was written, the blob is handed to the
// sweeper.
func (h Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "document is too large")))

			return
		}
		h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form")))

		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	req := ingest.Request{
		Name:         formValue(r, "name", "nombre"),
		NationalID:   formValue(r, "nationalId", "dni"),
		DocumentType: formValue(r, "documentType", "tipo_documento"),
	}

	file, header, err := r.FormFile(DocumentFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.writeError(ctx, w, h.NewError(ctx, serrors.With(serrors.ErrBadRequest, "document file is required")))

			return
		}
		h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "invalid document file")))

		return
	}
	defer file.Close()

	// reject incomplete metadata before anything is written
	req.BlobLocator = header.Filename
	if err := req.Validate(); err != nil {
		h.writeError(ctx, w, h.NewError(ctx, err))

		return
	}

	locator, err := h.deps.Blobs.Put(ctx, header.Filename, file)
	if err != nil {
		h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrInternal, err, "could not store document file")))

		return
	}
	req.BlobLocator = locator

	ID, err := h.deps.Ingest.Ingest(ctx, req)
	if err != nil {
		if discardErr := h.deps.Sweeper.Discard(ctx, locator); discardErr != nil {
			logger.Error(ctx, "could not schedule orphaned blob discard",
				zap.String("locator", locator), zap.Error(discardErr))
		}
		h.writeError(ctx, w, h.NewError(ctx, err))

		return
	}

	writeJSON(ctx, w, http.StatusOK, UploadDocumentResponse{
		Message:    "document uploaded",
		DocumentID: ID,
	})
}

// ListDocuments returns every document joined with its applicant.
func (h Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.deps.Review.ListAll(ctx)
	if err != nil {
		h.writeError(ctx, w, h.NewError(ctx, err))

		return
	}

	writeJSON(ctx, w, http.StatusOK, DocumentRecordList(records))
}

// SetDocumentState records a reviewer's decision on a document.
func (h Handler) SetDocumentState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(ctx, w, h.NewError(ctx, serrors.With(serrors.ErrBadRequest, "invalid document id")))

		return
	}

	var req SetDocumentStateRequest
	if err := decodeBody(r.Body, &req); err != nil {
		h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")))

		return
	}
	if req.NewState == "" {
		h.writeError(ctx, w, h.NewError(ctx, serrors.With(serrors.ErrBadRequest, "newState is required")))

		return
	}

	doc, err := h.deps.Review.SetReviewState(ctx, domain.DocumentID(ID), domain.ReviewState(req.NewState))
	if err != nil {
		h.writeError(ctx, w, h.NewError(ctx, err))

		return
	}

	writeJSON(ctx, w, http.StatusOK, Document(*doc))
}
