// Package credential implements the credential store for administrative users.
// Passwords are hashed with bcrypt, which salts every hash and embeds salt and
// cost in the stored value; the raw password is never stored or logged.
package credential

import (
	"context"
	"errors"
	"intake/internal/config"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// Options configure password hashing.
type Options struct {
	// Cost is the bcrypt work factor. Values outside bcrypt's accepted range
	// fall back to DefaultCost.
	Cost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Cost: cfg.Auth.BcryptCost,
	}
}

type store struct {
	options Options
	storage storage.CredentialStorage
}

// Register fails with a conflict when username is taken, including when a
// concurrent registration wins the race to the uniqueness constraint.
func (s store) Register(ctx context.Context, username, password string) (domain.UserID, error) {
	if username == "" || password == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "username and password are required")
	}

	existing, err := s.storage.CredentialByUsername(ctx, username)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not look up user")
	}
	if existing != nil {
		return 0, serrors.With(serrors.ErrConflict, "username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.options.Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, serrors.With(serrors.ErrBadRequest, "password is too long")
		}

		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	created, err := s.storage.StoreCredential(ctx, domain.Credential{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return 0, serrors.Wrap(serrors.ErrConflict, err, "username already exists")
		}

		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not store user")
	}

	logger.Info(ctx, "user registered", zap.Int64("userId", int64(created.ID)), zap.String("username", username))

	return created.ID, nil
}

// Authenticate distinguishes an unknown username (not found) from a wrong
// password (invalid credentials).
func (s store) Authenticate(ctx context.Context, username, password string) (domain.UserID, error) {
	if username == "" || password == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "username and password are required")
	}

	cred, err := s.storage.CredentialByUsername(ctx, username)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreFailure, err, "could not look up user")
	}
	if cred == nil {
		return 0, serrors.With(serrors.ErrNotFound, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return 0, serrors.With(serrors.ErrInvalidCredentials, "incorrect password")
		}

		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not verify password")
	}

	return cred.ID, nil
}

// New creates a Store backed by the given credential storage.
func New(storage storage.CredentialStorage, options Options) Store {
	if options.Cost < bcrypt.MinCost || options.Cost > bcrypt.MaxCost {
		options.Cost = DefaultCost
	}

	return &store{
		options: options,
		storage: storage,
	}
}
