package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/extract"
	"github.com/rcmkit/contract-analyzer/internal/llm"
	"github.com/rcmkit/contract-analyzer/internal/repository"
	"github.com/rcmkit/contract-analyzer/internal/storage"
)

// Config holds retry and timeout policy for analysis attempts.
type Config struct {
	MaxAttempts int           // AI-service calls per analysis attempt (default 3)
	BackoffBase time.Duration // first retry delay, doubled per retry (default 1s)
	LLMTimeout  time.Duration // per-call bound on the AI service (default 60s)
}

// Analyzer drives one contract from processing to a terminal state:
// blob fetch, text extraction, AI call with bounded retry, schema
// normalization, and the atomic completion write.
type Analyzer struct {
	Logger    *slog.Logger
	Cfg       Config
	Contracts repository.ContractRepository
	Blobs     storage.BlobStore
	Extractor extract.TextExtractor
	LLM       llm.ContractAnalyzer
}

func NewAnalyzer(
	logger *slog.Logger,
	cfg Config,
	contracts repository.ContractRepository,
	blobs storage.BlobStore,
	extractor extract.TextExtractor,
	analyzer llm.ContractAnalyzer,
) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 60 * time.Second
	}
	return &Analyzer{
		Logger:    logger,
		Cfg:       cfg,
		Contracts: contracts,
		Blobs:     blobs,
		Extractor: extractor,
		LLM:       analyzer,
	}
}

// Begin claims the contract for a fresh analysis attempt via the store's
// compare-and-set. common.ErrConflict means an attempt is already in flight
// and the caller must reject, not queue.
func (a *Analyzer) Begin(ctx context.Context, contractID uuid.UUID) (uuid.UUID, error) {
	attemptID := uuid.New()
	if err := a.Contracts.BeginProcessing(ctx, contractID, attemptID); err != nil {
		return uuid.Nil, err
	}
	return attemptID, nil
}

// ProcessJob is the worker entrypoint. Jobs enqueued at upload time carry no
// attempt token yet; the worker claims one here. Reanalyze jobs arrive
// pre-claimed so the rejection was synchronous to the caller.
func (a *Analyzer) ProcessJob(ctx context.Context, contractID uuid.UUID, attemptID *uuid.UUID) error {
	var token uuid.UUID
	if attemptID != nil {
		token = *attemptID
	} else {
		var err error
		token, err = a.Begin(ctx, contractID)
		if err != nil {
			if errors.Is(err, common.ErrConflict) || errors.Is(err, common.ErrNotFound) {
				a.Logger.Warn("pipeline.claim.skipped", "contract_id", contractID, "reason", err)
				return nil
			}
			return err
		}
	}
	return a.Run(ctx, contractID, token)
}

// Run executes one claimed analysis attempt end to end. Every terminal
// failure path writes status=failed with a user-facing message before
// returning; the returned error is for the worker's log only.
func (a *Analyzer) Run(ctx context.Context, contractID, attemptID uuid.UUID) error {
	start := time.Now()
	log := a.Logger.With("contract_id", contractID, "attempt_id", attemptID)

	contract, err := a.Contracts.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Warn("pipeline.contract_gone")
			return nil
		}
		return a.fail(ctx, log, contractID, attemptID, fmt.Errorf("load contract: %w", err))
	}

	data, err := a.Blobs.Get(ctx, contract.StorageKey)
	if err != nil {
		return a.fail(ctx, log, contractID, attemptID, fmt.Errorf("read stored document: %w", err))
	}

	res, err := a.Extractor.Extract(ctx, data, contract.FileType)
	if err != nil {
		return a.fail(ctx, log, contractID, attemptID, err)
	}
	log.Info("pipeline.extract.ok", "pages", res.Pages, "text_len", len(res.Text))

	result, err := a.callWithRetry(ctx, log, llm.AnalyzeRequest{
		DocumentText: res.Text,
		FilenameHint: contract.OriginalFilename,
	})
	if err != nil {
		return a.fail(ctx, log, contractID, attemptID, err)
	}

	structured, err := llm.ParseAndNormalize([]byte(result.RawOutput))
	if err != nil {
		return a.fail(ctx, log, contractID, attemptID, err)
	}

	extractedJSON, err := json.Marshal(structured)
	if err != nil {
		return a.fail(ctx, log, contractID, attemptID, fmt.Errorf("encode structured data: %w", err))
	}

	analysis, err := a.Contracts.CompleteAnalysis(ctx, &repository.CompleteAnalysisParams{
		ContractID:       contractID,
		AttemptID:        attemptID,
		RawText:          res.Text,
		ExtractedJSON:    extractedJSON,
		ModelName:        result.ModelName,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		Fields:           llm.Flatten(structured),
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			// the contract was deleted or the attempt superseded; nothing to write
			log.Warn("pipeline.complete.dropped")
			return nil
		}
		return a.fail(ctx, log, contractID, attemptID, fmt.Errorf("persist analysis: %w", err))
	}

	log.Info("pipeline.completed",
		"analysis_id", analysis.ID,
		"prompt_tokens", analysis.PromptTokens,
		"completion_tokens", analysis.CompletionTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// callWithRetry invokes the AI service, retrying transient failures with
// exponential backoff. Extraction and schema errors never come through
// here: they are deterministic and handled terminally by the caller.
func (a *Analyzer) callWithRetry(ctx context.Context, log *slog.Logger, req llm.AnalyzeRequest) (llm.AnalyzeResult, error) {
	var lastErr error
	for attempt := 1; attempt <= a.Cfg.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, a.Cfg.LLMTimeout)
		result, err := a.LLM.AnalyzeContract(callCtx, req)
		cancel()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !llm.IsTransient(err) {
			log.Error("pipeline.llm.permanent_error", "call", attempt, "error", err)
			return llm.AnalyzeResult{}, err
		}
		log.Warn("pipeline.llm.transient_error", "call", attempt, "max", a.Cfg.MaxAttempts, "error", err)

		if attempt == a.Cfg.MaxAttempts {
			break
		}
		delay := a.Cfg.BackoffBase << (attempt - 1)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return llm.AnalyzeResult{}, ctx.Err()
		}
	}
	return llm.AnalyzeResult{}, fmt.Errorf("ai service unavailable after %d attempts: %w", a.Cfg.MaxAttempts, lastErr)
}

// fail records the terminal failure on the contract. A conflict here means
// the contract vanished or the attempt was superseded, which is a clean
// no-op per the attempt protocol.
func (a *Analyzer) fail(ctx context.Context, log *slog.Logger, contractID, attemptID uuid.UUID, cause error) error {
	msg := userMessage(cause)
	if err := a.Contracts.FailAnalysis(ctx, contractID, attemptID, msg); err != nil {
		if errors.Is(err, common.ErrConflict) {
			log.Warn("pipeline.fail.dropped", "cause", cause)
			return nil
		}
		log.Error("pipeline.fail.write_error", "cause", cause, "error", err)
		return err
	}
	log.Error("pipeline.failed", "error", msg)
	return cause
}

// userMessage renders the classified error as the message stored on the
// contract for end users.
func userMessage(err error) string {
	var exErr *extract.ExtractionError
	if errors.As(err, &exErr) {
		return fmt.Sprintf("Document parsing failed: %v", exErr)
	}
	var schemaErr *llm.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Sprintf("Analysis failed: %v", schemaErr)
	}
	return fmt.Sprintf("Analysis failed: %v", err)
}
