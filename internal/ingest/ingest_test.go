package ingest_test

import (
	"context"
	"errors"
	"intake/internal/ingest"
	mockregistry "intake/internal/registry/mock"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	mockstorage "intake/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestPipeline(t *testing.T) (*mockregistry.MockRegistry, *mockstorage.MockDocumentStorage, ingest.Pipeline) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)
	st := mockstorage.NewMockDocumentStorage(ctrl)

	return reg, st, ingest.New(reg, st)
}

func validRequest() ingest.Request {
	return ingest.Request{
		Name:         "Bob",
		NationalID:   "DNI1",
		DocumentType: "ID",
		BlobLocator:  "uploads/1718000000000-1b4e28ba-dni.pdf",
	}
}

func TestPipeline_Ingest_CreatesPendingDocument(t *testing.T) {
	reg, st, p := newTestPipeline(t)
	req := validRequest()

	gomock.InOrder(
		reg.EXPECT().ResolveOrCreate(gomock.Any(), "Bob", "DNI1").Return(domain.ApplicantID(1), nil),
		st.EXPECT().StoreDocument(gomock.Any(), domain.Document{
			ApplicantID: 1,
			Type:        "ID",
			BlobLocator: req.BlobLocator,
			State:       domain.ReviewStatePending,
		}).Return(&domain.Document{ID: 1, ApplicantID: 1, State: domain.ReviewStatePending}, nil),
	)

	id, err := p.Ingest(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, domain.DocumentID(1), id)
}

func TestPipeline_Ingest_RepeatedUploadsCreateNewDocuments(t *testing.T) {
	reg, st, p := newTestPipeline(t)

	reg.EXPECT().ResolveOrCreate(gomock.Any(), gomock.Any(), "DNI1").Return(domain.ApplicantID(1), nil).Times(2)

	var nextID domain.DocumentID
	st.EXPECT().StoreDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Document) (*domain.Document, error) {
			require.Equal(t, domain.ApplicantID(1), d.ApplicantID)
			nextID++
			d.ID = nextID

			return &d, nil
		},
	).Times(2)

	first, err := p.Ingest(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Bob2"
	req.DocumentType = "PASS"
	second, err := p.Ingest(context.Background(), req)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestPipeline_Ingest_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ingest.Request)
	}{
		{name: "no file", mutate: func(r *ingest.Request) { r.BlobLocator = "" }},
		{name: "no name", mutate: func(r *ingest.Request) { r.Name = "" }},
		{name: "no national id", mutate: func(r *ingest.Request) { r.NationalID = "" }},
		{name: "no document type", mutate: func(r *ingest.Request) { r.DocumentType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// neither the registry nor the store may be touched
			_, _, p := newTestPipeline(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := p.Ingest(context.Background(), req)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestPipeline_Ingest_RegistryFailureSkipsDocumentInsert(t *testing.T) {
	reg, _, p := newTestPipeline(t)

	regErr := serrors.Wrap(serrors.ErrStoreFailure, errors.New("connection refused"), "could not look up applicant")
	reg.EXPECT().ResolveOrCreate(gomock.Any(), "Bob", "DNI1").Return(domain.ApplicantID(0), regErr)

	_, err := p.Ingest(context.Background(), validRequest())
	require.ErrorIs(t, err, serrors.ErrStoreFailure)
}

func TestPipeline_Ingest_DocumentInsertFailure(t *testing.T) {
	reg, st, p := newTestPipeline(t)

	reg.EXPECT().ResolveOrCreate(gomock.Any(), "Bob", "DNI1").Return(domain.ApplicantID(1), nil)
	st.EXPECT().StoreDocument(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := p.Ingest(context.Background(), validRequest())
	require.ErrorIs(t, err, serrors.ErrStoreFailure)
}
