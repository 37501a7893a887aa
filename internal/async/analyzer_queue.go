package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/rcmkit/contract-analyzer/internal/pipeline"
)

// ErrQueueClosed is returned by Enqueue after Shutdown has begun.
var ErrQueueClosed = errors.New("queue is shutting down")

// AnalyzerQueue feeds analysis jobs to a fixed pool of workers. One job is
// one analysis attempt; the per-contract mutual exclusion lives in the
// store's compare-and-set, not here.
type AnalyzerQueue struct {
	analyzer *pipeline.Analyzer
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*AnalyzerQueue)

func WithWorkers(n int) Option {
	return func(q *AnalyzerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AnalyzerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *AnalyzerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAnalyzerQueue(analyzer *pipeline.Analyzer, logger *slog.Logger, opts ...Option) *AnalyzerQueue {
	q := &AnalyzerQueue{
		analyzer: analyzer,
		logger:   logger,
		workers:  4,
		timeout:  5 * time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AnalyzerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.analyzer.ProcessJob(ctx, job.ContractID, job.AttemptID)
					cancel()

					if err != nil {
						q.logger.Error("analysis attempt failed", "worker_id", workerID, "contract_id", job.ContractID, "error", err)
					} else {
						q.logger.Info("analysis attempt finished", "worker_id", workerID, "contract_id", job.ContractID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *AnalyzerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "contract_id", job.ContractID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued contract for analysis", "contract_id", job.ContractID)
	default:
		q.logger.Warn("queue full, applying backpressure", "contract_id", job.ContractID)
		q.ch <- job
	}
	return nil
}

func (q *AnalyzerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
