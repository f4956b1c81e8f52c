package worker_test

import (
	"context"
	"errors"
	"intake/internal/sweeper"
	"intake/internal/worker"
	"intake/pkg/blob/fsblob"
	mockblob "intake/pkg/blob/mock"
	"intake/pkg/logger"
	"os"
	"strings"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, locator string) *river.Job[sweeper.DiscardBlobArgs] {
	return &river.Job[sweeper.DiscardBlobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   sweeper.DiscardBlobArgs{Locator: locator},
	}
}

func TestDiscardBlobWorker_Work_Success(t *testing.T) {
	blobs := mockblob.NewMockStore(gomock.NewController(t))
	w := worker.NewDiscardBlobWorker(blobs)

	blobs.EXPECT().Delete(gomock.Any(), "uploads/a.pdf").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "uploads/a.pdf")))
}

func TestDiscardBlobWorker_Work_DeleteErrorRetries(t *testing.T) {
	blobs := mockblob.NewMockStore(gomock.NewController(t))
	w := worker.NewDiscardBlobWorker(blobs)

	blobs.EXPECT().Delete(gomock.Any(), "uploads/a.pdf").Return(errors.New("permission denied"))

	err := w.Work(context.Background(), makeJob(2, "uploads/a.pdf"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "a failed delete must be retried")
}

func TestDiscardBlobWorker_Work_EmptyLocatorCancels(t *testing.T) {
	blobs := mockblob.NewMockStore(gomock.NewController(t))
	w := worker.NewDiscardBlobWorker(blobs)

	err := w.Work(context.Background(), makeJob(3, ""))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDiscardBlobWorker_Work_RemovesFile(t *testing.T) {
	ctx := context.Background()
	blobs, err := fsblob.New(t.TempDir())
	require.NoError(t, err)

	locator, err := blobs.Put(ctx, "cv.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	w := worker.NewDiscardBlobWorker(blobs)
	require.NoError(t, w.Work(ctx, makeJob(4, locator)))

	_, err = os.Stat(locator)
	require.ErrorIs(t, err, os.ErrNotExist)

	// running the job again after a retry is harmless
	require.NoError(t, w.Work(ctx, makeJob(4, locator)))
}

func TestWorkers_RegistersDiscardWorker(t *testing.T) {
	blobs := mockblob.NewMockStore(gomock.NewController(t))

	require.NotNil(t, worker.Workers(blobs))
}
