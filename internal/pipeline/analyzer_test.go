package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
	"github.com/rcmkit/contract-analyzer/internal/extract"
	"github.com/rcmkit/contract-analyzer/internal/llm"
	"github.com/rcmkit/contract-analyzer/internal/repository"
	"github.com/rcmkit/contract-analyzer/internal/storage"
)

// fakeContractRepo holds a single contract and enforces the attempt protocol
// the way the real store does: guarded status transitions keyed on the
// attempt token.
type fakeContractRepo struct {
	mu        sync.Mutex
	contract  *entity.Contract
	analysis  *repository.CompleteAnalysisParams
	failedMsg string
}

func newFakeRepo(status constants.ContractStatus) (*fakeContractRepo, uuid.UUID) {
	id := uuid.New()
	return &fakeContractRepo{
		contract: &entity.Contract{
			ID:               id,
			OriginalFilename: "msa.pdf",
			FileType:         constants.FileTypePDF,
			StorageKey:       "blob-key",
			Status:           status,
		},
	}, id
}

func (r *fakeContractRepo) Create(context.Context, *repository.CreateContractParams) (*entity.Contract, error) {
	panic("not used")
}

func (r *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.contract == nil || r.contract.ID != id {
		return nil, common.ErrNotFound
	}
	c := *r.contract
	return &c, nil
}

func (r *fakeContractRepo) List(context.Context, repository.ListContractsParams) (*entity.ContractPage, error) {
	panic("not used")
}

func (r *fakeContractRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contract = nil
	return nil
}

func (r *fakeContractRepo) Stats(context.Context) (*entity.DashboardStats, error) {
	panic("not used")
}

func (r *fakeContractRepo) BeginProcessing(_ context.Context, id, attemptID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.contract == nil || r.contract.ID != id {
		return common.ErrNotFound
	}
	if r.contract.Status == constants.StatusProcessing {
		return common.ErrConflict
	}
	r.contract.Status = constants.StatusProcessing
	r.contract.AttemptID = &attemptID
	return nil
}

func (r *fakeContractRepo) CompleteAnalysis(_ context.Context, params *repository.CompleteAnalysisParams) (*entity.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(params.ContractID, params.AttemptID); err != nil {
		return nil, err
	}
	r.contract.Status = constants.StatusCompleted
	r.contract.AttemptID = nil
	r.analysis = params
	return &entity.Analysis{
		ID:               uuid.New(),
		ContractID:       params.ContractID,
		PromptTokens:     params.PromptTokens,
		CompletionTokens: params.CompletionTokens,
	}, nil
}

func (r *fakeContractRepo) FailAnalysis(_ context.Context, id, attemptID uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(id, attemptID); err != nil {
		return err
	}
	r.contract.Status = constants.StatusFailed
	r.contract.AttemptID = nil
	r.failedMsg = message
	return nil
}

func (r *fakeContractRepo) guard(id, attemptID uuid.UUID) error {
	if r.contract == nil || r.contract.ID != id {
		return common.ErrConflict
	}
	if r.contract.Status != constants.StatusProcessing {
		return common.ErrConflict
	}
	if r.contract.AttemptID == nil || *r.contract.AttemptID != attemptID {
		return common.ErrConflict
	}
	return nil
}

func (r *fakeContractRepo) status() constants.ContractStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contract.Status
}

type fakeBlobs struct{ data map[string][]byte }

func (b *fakeBlobs) Put(_ context.Context, key string, data []byte, _ string) error {
	b.data[key] = data
	return nil
}
func (b *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	d, ok := b.data[key]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return d, nil
}
func (b *fakeBlobs) Delete(_ context.Context, key string) error {
	delete(b.data, key)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(context.Context, []byte, constants.FileType) (extract.Result, error) {
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: f.text, Pages: 1}, nil
}

// fakeLLM replays a scripted sequence of outcomes, one per call.
type fakeLLM struct {
	mu     sync.Mutex
	script []error // nil entry means success
	output string
	calls  int
}

func (f *fakeLLM) AnalyzeContract(context.Context, llm.AnalyzeRequest) (llm.AnalyzeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	if f.calls < len(f.script) {
		err = f.script[f.calls]
	}
	f.calls++
	if err != nil {
		return llm.AnalyzeResult{}, err
	}
	return llm.AnalyzeResult{
		RawOutput:        f.output,
		ModelName:        "claude-opus-4-5-20251101",
		PromptTokens:     1200,
		CompletionTokens: 300,
	}, nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const goodOutput = `{"vendor_information": {"vendor_name": "Acme RCM"}}`

func transientErr() error {
	return &llm.ServiceError{StatusCode: 429, Transient: true, Err: errors.New("rate limited")}
}

func permanentErr() error {
	return &llm.ServiceError{StatusCode: 400, Transient: false, Err: errors.New("bad request")}
}

func newTestAnalyzer(repo *fakeContractRepo, blobs *fakeBlobs, ex *fakeExtractor, ai *fakeLLM) *Analyzer {
	return NewAnalyzer(nil, Config{
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
		LLMTimeout:  time.Second,
	}, repo, blobs, ex, ai)
}

func TestProcessJob_HappyPath(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{output: goodOutput}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	require.NoError(t, a.ProcessJob(context.Background(), id, nil))

	assert.Equal(t, constants.StatusCompleted, repo.status())
	require.NotNil(t, repo.analysis)
	assert.Equal(t, "contract text", repo.analysis.RawText)
	assert.Equal(t, 1200, repo.analysis.PromptTokens)
	assert.NotEmpty(t, repo.analysis.Fields)
	assert.Equal(t, 1, ai.callCount())
}

func TestProcessJob_ExtractionFailure(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("scanned")}}
	ex := &fakeExtractor{err: &extract.ExtractionError{Reason: extract.ReasonNoText, Err: errors.New("image-only document")}}
	ai := &fakeLLM{output: goodOutput}
	a := newTestAnalyzer(repo, blobs, ex, ai)

	err := a.ProcessJob(context.Background(), id, nil)
	require.Error(t, err)

	assert.Equal(t, constants.StatusFailed, repo.status())
	assert.Contains(t, repo.failedMsg, "Document parsing failed")
	assert.Zero(t, ai.callCount(), "the AI service is never called when extraction fails")
}

func TestProcessJob_TransientRetriesExhausted(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{script: []error{transientErr(), transientErr(), transientErr()}}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	err := a.ProcessJob(context.Background(), id, nil)
	require.Error(t, err)

	assert.Equal(t, constants.StatusFailed, repo.status())
	assert.Nil(t, repo.analysis, "no analysis row after a failed attempt")
	assert.Contains(t, repo.failedMsg, "Analysis failed")
	assert.Equal(t, 3, ai.callCount())
}

func TestProcessJob_TransientThenSuccess(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusFailed)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{script: []error{transientErr(), nil}, output: goodOutput}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	require.NoError(t, a.ProcessJob(context.Background(), id, nil))

	assert.Equal(t, constants.StatusCompleted, repo.status())
	assert.Equal(t, 2, ai.callCount())
}

func TestProcessJob_PermanentErrorNoRetry(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{script: []error{permanentErr()}}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	err := a.ProcessJob(context.Background(), id, nil)
	require.Error(t, err)

	assert.Equal(t, constants.StatusFailed, repo.status())
	assert.Equal(t, 1, ai.callCount(), "permanent errors are not retried")
}

func TestProcessJob_MalformedModelOutput(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{output: "sorry, I cannot help with that"}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	err := a.ProcessJob(context.Background(), id, nil)
	require.Error(t, err)

	assert.Equal(t, constants.StatusFailed, repo.status())
	assert.Contains(t, repo.failedMsg, "Analysis failed")
	assert.Equal(t, 1, ai.callCount(), "schema failures are deterministic, never retried")
}

func TestProcessJob_AlreadyProcessing(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusProcessing)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{output: goodOutput}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	// an upload job racing an in-flight attempt drops out cleanly
	require.NoError(t, a.ProcessJob(context.Background(), id, nil))
	assert.Zero(t, ai.callCount())
	assert.Equal(t, constants.StatusProcessing, repo.status())
}

func TestProcessJob_ContractGone(t *testing.T) {
	repo, _ := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{}}
	ai := &fakeLLM{output: goodOutput}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	// job refers to a contract that no longer exists
	require.NoError(t, a.ProcessJob(context.Background(), uuid.New(), nil))
	assert.Zero(t, ai.callCount())
}

func TestRun_DeleteMidFlightDropsWrite(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	blobs := &fakeBlobs{data: map[string][]byte{"blob-key": []byte("%PDF")}}
	ai := &fakeLLM{output: goodOutput}
	a := newTestAnalyzer(repo, blobs, &fakeExtractor{text: "contract text"}, ai)

	attemptID, err := a.Begin(context.Background(), id)
	require.NoError(t, err)

	// contract deleted while the attempt is in flight
	require.NoError(t, repo.Delete(context.Background(), id))

	// the late completion write is a clean no-op
	require.NoError(t, a.Run(context.Background(), id, attemptID))
	assert.Nil(t, repo.analysis)
}

func TestBegin_ConcurrentClaimsAdmitOne(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusCompleted)
	a := newTestAnalyzer(repo, &fakeBlobs{data: map[string][]byte{}}, &fakeExtractor{}, &fakeLLM{})

	const attempts = 16
	results := make(chan error, attempts)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < attempts; i++ {
		go func() {
			start.Wait()
			_, err := a.Begin(context.Background(), id)
			results <- err
		}()
	}
	start.Done()

	var won, conflicts int
	for i := 0; i < attempts; i++ {
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
	assert.Equal(t, 1, won, "exactly one concurrent claim wins")
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, constants.StatusProcessing, repo.status())
}

func TestBegin_Conflict(t *testing.T) {
	repo, id := newFakeRepo(constants.StatusUploaded)
	a := newTestAnalyzer(repo, &fakeBlobs{data: map[string][]byte{}}, &fakeExtractor{}, &fakeLLM{})

	_, err := a.Begin(context.Background(), id)
	require.NoError(t, err)

	_, err = a.Begin(context.Background(), id)
	assert.True(t, errors.Is(err, common.ErrConflict))
}
