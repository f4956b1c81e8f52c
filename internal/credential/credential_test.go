package credential_test

import (
	"context"
	"errors"
	"fmt"
	"intake/internal/credential"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"
	mockstorage "intake/pkg/storage/mock"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// memCredentials is an in-memory CredentialStorage enforcing unique usernames.
type memCredentials struct {
	rows []domain.Credential
}

func (m *memCredentials) CredentialByUsername(_ context.Context, username string) (*domain.Credential, error) {
	for i := range m.rows {
		if m.rows[i].Username == username {
			c := m.rows[i]

			return &c, nil
		}
	}

	return nil, nil
}

func (m *memCredentials) StoreCredential(_ context.Context, c domain.Credential) (*domain.Credential, error) {
	for i := range m.rows {
		if m.rows[i].Username == c.Username {
			return nil, storage.ErrDuplicate
		}
	}
	c.ID = domain.UserID(len(m.rows) + 1)
	m.rows = append(m.rows, c)

	return &c, nil
}

func newMemStore() (*memCredentials, credential.Store) {
	st := &memCredentials{}

	return st, credential.New(st, credential.Options{Cost: bcrypt.MinCost})
}

func TestStore_RegisterThenAuthenticate(t *testing.T) {
	_, s := newMemStore()
	ctx := context.Background()

	id, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, domain.UserID(1), id)

	got, err := s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = s.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, serrors.ErrInvalidCredentials)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestStore_Authenticate_UnknownUser(t *testing.T) {
	_, s := newMemStore()

	_, err := s.Authenticate(context.Background(), "ghost", "pw")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStore_Register_Conflict(t *testing.T) {
	st, s := newMemStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	hash := st.rows[0].PasswordHash

	_, err = s.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, serrors.ErrConflict)

	require.Len(t, st.rows, 1)
	require.Equal(t, hash, st.rows[0].PasswordHash, "existing credential must be unchanged")

	_, err = s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
}

func TestStore_Register_SaltsHashes(t *testing.T) {
	st, s := newMemStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "same-password")
	require.NoError(t, err)
	_, err = s.Register(ctx, "bob", "same-password")
	require.NoError(t, err)

	require.NotEqual(t, st.rows[0].PasswordHash, st.rows[1].PasswordHash)
	for _, row := range st.rows {
		require.NotContains(t, row.PasswordHash, "same-password")
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("same-password")))
	}
}

func TestStore_Register_DefaultCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "unset", cost: 0, want: credential.DefaultCost},
		{name: "too high", cost: bcrypt.MaxCost + 1, want: credential.DefaultCost},
		{name: "explicit", cost: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &memCredentials{}
			s := credential.New(st, credential.Options{Cost: tt.cost})

			_, err := s.Register(context.Background(), "alice", "pw1")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(st.rows[0].PasswordHash))
			require.NoError(t, err)
			require.Equal(t, tt.want, cost)
		})
	}
}

func TestStore_InvalidInput(t *testing.T) {
	_, s := newMemStore()
	ctx := context.Background()

	for _, c := range [][2]string{{"", "pw"}, {"alice", ""}, {"", ""}} {
		_, err := s.Register(ctx, c[0], c[1])
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, err = s.Authenticate(ctx, c[0], c[1])
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}

	_, err := s.Register(ctx, "alice", strings.Repeat("x", 73))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestStore_Register_RaceOnUniqueConstraint(t *testing.T) {
	st := mockstorage.NewMockCredentialStorage(gomock.NewController(t))
	s := credential.New(st, credential.Options{Cost: bcrypt.MinCost})

	st.EXPECT().CredentialByUsername(gomock.Any(), "alice").Return(nil, nil)
	st.EXPECT().StoreCredential(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not store credential into pg: %w", storage.ErrDuplicate))

	_, err := s.Register(context.Background(), "alice", "pw1")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestStore_StoreFailures(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("register lookup", func(t *testing.T) {
		st := mockstorage.NewMockCredentialStorage(gomock.NewController(t))
		s := credential.New(st, credential.Options{Cost: bcrypt.MinCost})
		st.EXPECT().CredentialByUsername(gomock.Any(), "alice").Return(nil, boom)

		_, err := s.Register(context.Background(), "alice", "pw1")
		require.ErrorIs(t, err, serrors.ErrStoreFailure)
	})

	t.Run("register insert", func(t *testing.T) {
		st := mockstorage.NewMockCredentialStorage(gomock.NewController(t))
		s := credential.New(st, credential.Options{Cost: bcrypt.MinCost})
		st.EXPECT().CredentialByUsername(gomock.Any(), "alice").Return(nil, nil)
		st.EXPECT().StoreCredential(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := s.Register(context.Background(), "alice", "pw1")
		require.ErrorIs(t, err, serrors.ErrStoreFailure)
	})

	t.Run("authenticate lookup", func(t *testing.T) {
		st := mockstorage.NewMockCredentialStorage(gomock.NewController(t))
		s := credential.New(st, credential.Options{Cost: bcrypt.MinCost})
		st.EXPECT().CredentialByUsername(gomock.Any(), "alice").Return(nil, boom)

		_, err := s.Authenticate(context.Background(), "alice", "pw1")
		require.ErrorIs(t, err, serrors.ErrStoreFailure)
	})
}
