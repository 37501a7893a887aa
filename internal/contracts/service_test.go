package contracts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/async"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
	"github.com/rcmkit/contract-analyzer/internal/pipeline"
	"github.com/rcmkit/contract-analyzer/internal/repository"
	"github.com/rcmkit/contract-analyzer/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memRepo struct {
	mu        sync.Mutex
	contracts map[uuid.UUID]*entity.Contract
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{contracts: map[uuid.UUID]*entity.Contract{}}
}

func (r *memRepo) Create(_ context.Context, params *repository.CreateContractParams) (*entity.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	c := &entity.Contract{
		ID:               uuid.New(),
		Filename:         params.Filename,
		OriginalFilename: params.OriginalFilename,
		FileType:         params.FileType,
		FileSize:         params.FileSize,
		StorageKey:       params.StorageKey,
		Status:           constants.StatusUploaded,
		UploadedAt:       time.Now(),
	}
	r.contracts[c.ID] = c
	return c, nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, params repository.ListContractsParams) (*entity.ContractPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Contract
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return &entity.ContractPage{Contracts: out, Total: len(out), Page: params.Page, PageSize: params.PageSize}, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.contracts, id)
	return nil
}

func (r *memRepo) Stats(context.Context) (*entity.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &entity.DashboardStats{TotalContracts: len(r.contracts)}, nil
}

func (r *memRepo) BeginProcessing(_ context.Context, id, attemptID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return common.ErrNotFound
	}
	if c.Status == constants.StatusProcessing {
		return common.ErrConflict
	}
	c.Status = constants.StatusProcessing
	c.AttemptID = &attemptID
	return nil
}

func (r *memRepo) CompleteAnalysis(context.Context, *repository.CompleteAnalysisParams) (*entity.Analysis, error) {
	panic("not used")
}

func (r *memRepo) FailAnalysis(context.Context, uuid.UUID, uuid.UUID, string) error {
	panic("not used")
}

type memAnalyses struct {
	current map[uuid.UUID]*entity.Analysis
}

func (a *memAnalyses) GetByID(_ context.Context, id uuid.UUID) (*entity.Analysis, error) {
	return nil, common.ErrNotFound
}
func (a *memAnalyses) CurrentForContract(_ context.Context, contractID uuid.UUID) (*entity.Analysis, error) {
	return a.current[contractID], nil
}
func (a *memAnalyses) ListForContract(context.Context, uuid.UUID) ([]*entity.Analysis, error) {
	return nil, nil
}
func (a *memAnalyses) FieldsForAnalysis(context.Context, uuid.UUID) ([]*entity.ExtractedField, error) {
	return nil, nil
}

type memBlobs struct {
	data   map[string][]byte
	putErr error
}

func (b *memBlobs) Put(_ context.Context, key string, data []byte, _ string) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.data[key] = data
	return nil
}
func (b *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	d, ok := b.data[key]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return d, nil
}
func (b *memBlobs) Delete(_ context.Context, key string) error {
	if _, ok := b.data[key]; !ok {
		return storage.ErrBlobNotFound
	}
	delete(b.data, key)
	return nil
}

type memQueue struct {
	mu   sync.Mutex
	jobs []async.Job
	err  error
}

func (q *memQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}
func (q *memQueue) Shutdown(context.Context) {}

func newTestService(repo *memRepo, analyses *memAnalyses, blobs *memBlobs, queue *memQueue) *Service {
	analyzer := pipeline.NewAnalyzer(testLogger(), pipeline.Config{}, repo, blobs, nil, nil)
	return NewService(testLogger(), 1024, repo, analyses, blobs, queue, analyzer)
}

func validPDFUpload() UploadRequest {
	return UploadRequest{
		Filename:    "acme-msa.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7 content"),
	}
}

func TestUpload_CreatesRecordBlobAndJob(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)

	assert.Equal(t, constants.StatusUploaded, contract.Status)
	assert.Equal(t, "acme-msa.pdf", contract.OriginalFilename)
	assert.Equal(t, constants.FileTypePDF, contract.FileType)
	assert.Equal(t, int64(16), contract.FileSize)
	assert.NotEqual(t, contract.OriginalFilename, contract.Filename, "stored name is generated, not caller-controlled")

	assert.Contains(t, blobs.data, contract.StorageKey)
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, contract.ID, queue.jobs[0].ContractID)
	assert.Nil(t, queue.jobs[0].AttemptID, "upload jobs claim their attempt in the worker")
}

func TestUpload_ValidationFailureLeavesNoState(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	_, err := svc.Upload(context.Background(), UploadRequest{Filename: "notes.txt", Data: []byte("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	assert.Empty(t, repo.contracts)
	assert.Empty(t, blobs.data)
	assert.Empty(t, queue.jobs)
}

func TestUpload_CreateFailureRollsBackBlob(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = common.ErrDatabase
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	_, err := svc.Upload(context.Background(), validPDFUpload())
	require.Error(t, err)

	assert.Empty(t, blobs.data, "failed intake leaves no orphaned blob")
	assert.Empty(t, queue.jobs)
}

func TestDelete_RemovesRecordAndBlob(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), contract.ID))

	assert.Empty(t, repo.contracts)
	assert.Empty(t, blobs.data)

	err = svc.Delete(context.Background(), contract.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestReanalyze_QueuesPreClaimedAttempt(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)
	repo.contracts[contract.ID].Status = constants.StatusFailed
	queue.jobs = nil

	got, err := svc.Reanalyze(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessing, got.Status)

	require.Len(t, queue.jobs, 1)
	require.NotNil(t, queue.jobs[0].AttemptID, "reanalyze claims the attempt before queueing")
}

func TestReanalyze_ConflictWhileProcessing(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)
	repo.contracts[contract.ID].Status = constants.StatusProcessing
	queue.jobs = nil

	_, err = svc.Reanalyze(context.Background(), contract.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
	assert.Empty(t, queue.jobs, "rejected reanalysis queues nothing")
}

func TestReanalyze_ConcurrentRequestsAdmitOne(t *testing.T) {
	repo := newMemRepo()
	blobs := &memBlobs{data: map[string][]byte{}}
	queue := &memQueue{}
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, blobs, queue)

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)
	repo.contracts[contract.ID].Status = constants.StatusFailed
	queue.jobs = nil

	const callers = 16
	results := make(chan error, callers)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			_, err := svc.Reanalyze(context.Background(), contract.ID)
			results <- err
		}()
	}
	start.Done()

	var won, conflicts int
	for i := 0; i < callers; i++ {
		err := <-results
		switch {
		case err == nil:
			won++
		case errors.Is(err, common.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent reanalysis wins the claim")
	assert.Equal(t, callers-1, conflicts)
	require.Len(t, queue.jobs, 1, "only the winning request queues a job")
	require.NotNil(t, queue.jobs[0].AttemptID)
}

func TestReanalyze_UnknownContract(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}, &memBlobs{data: map[string][]byte{}}, &memQueue{})

	_, err := svc.Reanalyze(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGet_IncludesCurrentAnalysis(t *testing.T) {
	repo := newMemRepo()
	analyses := &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}
	svc := newTestService(repo, analyses, &memBlobs{data: map[string][]byte{}}, &memQueue{})

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)

	// not analyzed yet
	got, err := svc.Get(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Analysis)

	analyses.current[contract.ID] = &entity.Analysis{ID: uuid.New(), ContractID: contract.ID}
	got, err = svc.Get(context.Background(), contract.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Analysis)
	assert.Equal(t, contract.ID, got.Analysis.ContractID)
}

func TestFields_NoAnalysisChecksContractExists(t *testing.T) {
	repo := newMemRepo()
	analyses := &memAnalyses{current: map[uuid.UUID]*entity.Analysis{}}
	svc := newTestService(repo, analyses, &memBlobs{data: map[string][]byte{}}, &memQueue{})

	_, err := svc.Fields(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))

	contract, err := svc.Upload(context.Background(), validPDFUpload())
	require.NoError(t, err)

	fields, err := svc.Fields(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Nil(t, fields)
}
