package postgres

import (
	"context"
	"fmt"
	"intake/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// StoreDocument inserts a document; id and fecha_subida are filled by the database.
func (p *PgSQL) StoreDocument(ctx context.Context, document domain.Document) (*domain.Document, error) {
	var in, out PgDocument
	in.FromDomain(document)

	if _, err := p.Builder.Insert(documentsTable).
		Rows(in).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, mapError(err, "could not store document into pg")
	}

	return out.ToDomain(), nil
}

// DocumentRecords returns all documents joined with their applicants, ordered
// by document id.
func (p *PgSQL) DocumentRecords(ctx context.Context) ([]domain.DocumentRecord, error) {
	var rows []PgDocumentRecord
	if err := p.Builder.From(goqu.T(documentsTable).As("d")).
		Join(goqu.T(applicantsTable).As("p"), goqu.On(goqu.I("d.postulante_id").Eq(goqu.I("p.id")))).
		Select(
			goqu.I("d.id"),
			goqu.I("p.nombre"),
			goqu.I("p.dni"),
			goqu.I("d.tipo_documento"),
			goqu.I("d.archivo_url"),
			goqu.I("d.estado"),
			goqu.I("d.fecha_subida"),
		).
		Order(goqu.I("d.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch document records from pg: %w", err)
	}

	out := make([]domain.DocumentRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// UpdateDocumentState sets estado for the given document and returns the
// updated row, or nil when the document does not exist.
func (p *PgSQL) UpdateDocumentState(ctx context.Context,
	id domain.DocumentID,
	state domain.ReviewState) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{"estado": string(state)}).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update document state in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
