package credential

import (
	"context"
	"intake/pkg/domain"
)

// Store registers administrative accounts and verifies their passwords.
//
//go:generate mockgen -package mockcredential -source=interface.go -destination=mock/mockcredential.go *
type Store interface {
	// Register creates an account and returns its ID.
	Register(ctx context.Context, username, password string) (domain.UserID, error)
	// Authenticate checks password against the stored hash of username and
	// returns the account ID on success.
	Authenticate(ctx context.Context, username, password string) (domain.UserID, error)
}
