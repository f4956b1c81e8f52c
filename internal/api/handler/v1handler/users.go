package v1handler

import (
	"intake/pkg/serrors"
	"net/http"
)

func (h Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (*CredentialsRequest, bool) {
	ctx := r.Context()

	var req CredentialsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		h.writeError(ctx, w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")))

		return nil, false
	}
	if req.Username == "" || req.Password == "" {
		h.writeError(ctx, w, h.NewError(ctx, serrors.With(serrors.ErrBadRequest, "username and password are required")))

		return nil, false
	}

	return &req, true
}

// RegisterUser creates an administrative account.
func (h Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	ID, err := h.deps.Credentials.Register(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(ctx, w, h.NewError(ctx, err))

		return
	}

	writeJSON(ctx, w, http.StatusCreated, UserResponse{
		Message: "user created",
		UserID:  ID,
	})
}

// Login verifies a username and password. An unknown username is reported
// as a bad request, like a wrong password.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	ID, err := h.deps.Credentials.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		res := h.NewError(ctx, err)
		if res.StatusCode == http.StatusNotFound {
			res.StatusCode = http.StatusBadRequest
		}
		h.writeError(ctx, w, res)

		return
	}

	writeJSON(ctx, w, http.StatusOK, UserResponse{
		Message: "login successful",
		UserID:  ID,
	})
}
