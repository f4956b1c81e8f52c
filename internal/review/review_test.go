package review_test

import (
	"context"
	"errors"
	"intake/internal/review"
	"intake/pkg/domain"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	mockstorage "intake/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestWorkflow(t *testing.T) (*mockstorage.MockDocumentStorage, review.Workflow) {
	t.Helper()

	st := mockstorage.NewMockDocumentStorage(gomock.NewController(t))

	return st, review.New(st)
}

func TestWorkflow_ListAll(t *testing.T) {
	st, w := newTestWorkflow(t)

	records := []domain.DocumentRecord{
		{ID: 1, ApplicantName: "Bob", NationalID: "DNI1", Type: "ID", State: domain.ReviewStatePending, SubmittedAt: time.Now()},
		{ID: 2, ApplicantName: "Bob", NationalID: "DNI1", Type: "PASS", State: domain.ReviewStateApproved, SubmittedAt: time.Now()},
	}
	st.EXPECT().DocumentRecords(gomock.Any()).Return(records, nil)

	got, err := w.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestWorkflow_ListAll_StoreFailure(t *testing.T) {
	st, w := newTestWorkflow(t)
	st.EXPECT().DocumentRecords(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := w.ListAll(context.Background())
	require.ErrorIs(t, err, serrors.ErrStoreFailure)
}

func TestWorkflow_SetReviewState(t *testing.T) {
	st, w := newTestWorkflow(t)

	st.EXPECT().UpdateDocumentState(gomock.Any(), domain.DocumentID(2), domain.ReviewStateApproved).
		Return(&domain.Document{ID: 2, ApplicantID: 1, State: domain.ReviewStateApproved}, nil)

	doc, err := w.SetReviewState(context.Background(), 2, domain.ReviewStateApproved)
	require.NoError(t, err)
	require.Equal(t, domain.DocumentID(2), doc.ID)
	require.Equal(t, domain.ReviewStateApproved, doc.State)
}

func TestWorkflow_SetReviewState_FreeFormState(t *testing.T) {
	st, w := newTestWorkflow(t)

	st.EXPECT().UpdateDocumentState(gomock.Any(), domain.DocumentID(2), domain.ReviewState("en revisión")).
		Return(&domain.Document{ID: 2, State: "en revisión"}, nil)

	doc, err := w.SetReviewState(context.Background(), 2, "en revisión")
	require.NoError(t, err)
	require.Equal(t, domain.ReviewState("en revisión"), doc.State)
}

func TestWorkflow_SetReviewState_NotFound(t *testing.T) {
	st, w := newTestWorkflow(t)
	st.EXPECT().UpdateDocumentState(gomock.Any(), domain.DocumentID(99), domain.ReviewStateApproved).Return(nil, nil)

	_, err := w.SetReviewState(context.Background(), 99, domain.ReviewStateApproved)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestWorkflow_SetReviewState_StoreFailure(t *testing.T) {
	st, w := newTestWorkflow(t)
	st.EXPECT().UpdateDocumentState(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := w.SetReviewState(context.Background(), 1, domain.ReviewStateRejected)
	require.ErrorIs(t, err, serrors.ErrStoreFailure)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}
