package async

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
	"github.com/rcmkit/contract-analyzer/internal/pipeline"
	"github.com/rcmkit/contract-analyzer/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// emptyRepo answers not-found for everything, so a worker picking up a job
// drops it cleanly.
type emptyRepo struct{ begins atomic.Int64 }

func (r *emptyRepo) Create(context.Context, *repository.CreateContractParams) (*entity.Contract, error) {
	return nil, common.ErrNotFound
}
func (r *emptyRepo) GetByID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, common.ErrNotFound
}
func (r *emptyRepo) List(context.Context, repository.ListContractsParams) (*entity.ContractPage, error) {
	return nil, common.ErrNotFound
}
func (r *emptyRepo) Delete(context.Context, uuid.UUID) error { return common.ErrNotFound }
func (r *emptyRepo) Stats(context.Context) (*entity.DashboardStats, error) {
	return nil, common.ErrNotFound
}
func (r *emptyRepo) BeginProcessing(context.Context, uuid.UUID, uuid.UUID) error {
	r.begins.Add(1)
	return common.ErrNotFound
}
func (r *emptyRepo) CompleteAnalysis(context.Context, *repository.CompleteAnalysisParams) (*entity.Analysis, error) {
	return nil, common.ErrConflict
}
func (r *emptyRepo) FailAnalysis(context.Context, uuid.UUID, uuid.UUID, string) error {
	return common.ErrConflict
}

func TestAnalyzerQueue_DispatchesJobs(t *testing.T) {
	repo := &emptyRepo{}
	analyzer := pipeline.NewAnalyzer(testLogger(), pipeline.Config{}, repo, nil, nil, nil)
	q := NewAnalyzerQueue(analyzer, testLogger(), WithWorkers(2), WithQueueSize(4))

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{ContractID: uuid.New(), SubmittedAt: time.Now()}))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, int64(3), repo.begins.Load(), "each queued job reaches a worker exactly once")
}

func TestAnalyzerQueue_EnqueueAfterShutdown(t *testing.T) {
	q := NewAnalyzerQueue(nil, testLogger(), WithWorkers(1), WithQueueSize(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{ContractID: uuid.New(), SubmittedAt: time.Now()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestAnalyzerQueue_ShutdownIdempotent(t *testing.T) {
	q := NewAnalyzerQueue(nil, testLogger(), WithWorkers(2))

	q.Shutdown(context.Background())
	require.NotPanics(t, func() { q.Shutdown(context.Background()) })
}

func TestAnalyzerQueue_Options(t *testing.T) {
	q := NewAnalyzerQueue(nil, testLogger(),
		WithWorkers(8),
		WithQueueSize(16),
		WithJobTimeout(time.Second),
	)
	defer q.Shutdown(context.Background())

	assert.Equal(t, 8, q.workers)
	assert.Equal(t, 16, cap(q.ch))
	assert.Equal(t, time.Second, q.timeout)
}

func TestAnalyzerQueue_IgnoresNonPositiveOptions(t *testing.T) {
	q := NewAnalyzerQueue(nil, testLogger(),
		WithWorkers(0),
		WithQueueSize(-1),
		WithJobTimeout(0),
	)
	defer q.Shutdown(context.Background())

	assert.Equal(t, 4, q.workers)
	assert.Equal(t, 256, cap(q.ch))
	assert.Equal(t, 5*time.Minute, q.timeout)
}
