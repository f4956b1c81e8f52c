package v1handler_test

import (
	"errors"
	"intake/internal/api/handler/v1handler"
	"intake/pkg/domain"
	"intake/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterUser(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.credentials.EXPECT().Register(gomock.Any(), "alice", "pw1").Return(domain.UserID(1), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"username":"alice","password":"pw1"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"user created","userId":1}`, rec.Body.String())
}

func TestRegisterUser_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "taken", err: serrors.With(serrors.ErrConflict, "username already exists"), status: 400, code: "CONFLICT"},
		{name: "store", err: serrors.Wrap(serrors.ErrStoreFailure, errors.New("down"), "x"), status: 500, code: "STORE_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, srv := newTestServer(t, v1handler.Options{})

			deps.credentials.EXPECT().Register(gomock.Any(), "alice", "pw2").Return(domain.UserID(0), tt.err)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users",
				strings.NewReader(`{"username":"alice","password":"pw2"}`)))

			require.Equal(t, tt.status, rec.Code)
			code, _ := decodeError(t, rec)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestCredentials_MissingFields(t *testing.T) {
	bodies := []string{
		`{"username":"alice"}`,
		`{"password":"pw"}`,
		`{"username":"","password":"pw"}`,
		`{"username":null,"password":"pw"}`,
		`not json`,
		``,
	}

	for _, path := range []string{"/api/users", "/api/login"} {
		for _, body := range bodies {
			t.Run(path+" "+body, func(t *testing.T) {
				_, srv := newTestServer(t, v1handler.Options{})

				rec := httptest.NewRecorder()
				srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

				require.Equal(t, http.StatusBadRequest, rec.Code)
				code, _ := decodeError(t, rec)
				require.Equal(t, "BAD_REQUEST", code)
			})
		}
	}
}

func TestLogin(t *testing.T) {
	deps, srv := newTestServer(t, v1handler.Options{})

	deps.credentials.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(domain.UserID(1), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"alice","password":"pw1","remember":true}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"login successful","userId":1}`, rec.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unknown user", err: serrors.With(serrors.ErrNotFound, "user not found"), status: 400, code: "NOT_FOUND"},
		{name: "wrong password", err: serrors.With(serrors.ErrInvalidCredentials, "incorrect password"), status: 400, code: "INVALID_CREDENTIALS"},
		{name: "store", err: serrors.Wrap(serrors.ErrStoreFailure, errors.New("down"), "x"), status: 500, code: "STORE_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, srv := newTestServer(t, v1handler.Options{})

			deps.credentials.EXPECT().Authenticate(gomock.Any(), "alice", "pw").Return(domain.UserID(0), tt.err)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login",
				strings.NewReader(`{"username":"alice","password":"pw"}`)))

			require.Equal(t, tt.status, rec.Code)
			code, _ := decodeError(t, rec)
			require.Equal(t, tt.code, code)
		})
	}
}
