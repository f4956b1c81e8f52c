package v1handler

import (
	"context"
	"errors"
	"intake/internal/config"
	"intake/internal/credential"
	"intake/internal/ingest"
	"intake/internal/review"
	"intake/internal/sweeper"
	"intake/pkg/blob"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps upload bodies when no limit is configured.
const DefaultMaxUploadBytes int64 = 32 << 20

// Deps are the components the v1 API dispatches to.
type Deps struct {
	Ingest      ingest.Pipeline
	Review      review.Workflow
	Credentials credential.Store
	Blobs       blob.Store
	Sweeper     sweeper.Sweeper
}

type Options struct {
	// MaxUploadBytes caps the size of an upload request body.
	MaxUploadBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return &Handler{
		deps:    deps,
		options: options,
	}
}

// Register mounts the v1 routes on mux.
func (h Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/documents/upload", h.UploadDocument)
	mux.HandleFunc("GET /api/documents", h.ListDocuments)
	mux.HandleFunc("PUT /api/documents/{id}", h.SetDocumentState)
	mux.HandleFunc("POST /api/users", h.RegisterUser)
	mux.HandleFunc("POST /api/login", h.Login)
}

// ErrorStatusCode is an error response together with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// NewError maps err to an HTTP status and a client safe body. Store and
// internal failures are logged with their cause and answered with a generic
// message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	var message string
	var semanticErr *serrors.Error
	if errors.As(err, &semanticErr) {
		message = semanticErr.Message()
	}

	var status int
	switch kind {
	case serrors.ErrBadRequest, serrors.ErrConflict, serrors.ErrInvalidCredentials:
		status = http.StatusBadRequest
	case serrors.ErrNotFound:
		status = http.StatusNotFound
		if message == "" {
			message = "resource not found"
		}
	case serrors.ErrStoreFailure:
		status = http.StatusInternalServerError
		message = "storage unavailable"
	default:
		kind = serrors.ErrInternal
		status = http.StatusInternalServerError
		message = "internal error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	if message == "" {
		message = kind.Error()
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, res *ErrorStatusCode) {
	writeJSON(ctx, w, res.StatusCode, res.Response)
}

// encodable is implemented by every response DTO.
type encodable interface {
	Encode(e *jx.Encoder)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body encodable) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	body.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
