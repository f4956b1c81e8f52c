package postgres

import (
	"context"
	"fmt"
	"intake/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// CredentialByUsername returns the credential for username, or nil.
func (p *PgSQL) CredentialByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	var row PgCredential
	found, err := p.Builder.From(credentialsTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch credential by username: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreCredential inserts a credential. A taken username results in
// storage.ErrDuplicate.
func (p *PgSQL) StoreCredential(ctx context.Context, credential domain.Credential) (*domain.Credential, error) {
	var in, out PgCredential
	in.FromDomain(credential)

	if _, err := p.Builder.Insert(credentialsTable).
		Rows(in).
		Returning(&PgCredential{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, mapError(err, "could not store credential into pg")
	}

	return out.ToDomain(), nil
}
