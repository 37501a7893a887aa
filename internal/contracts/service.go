package contracts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/async"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
	"github.com/rcmkit/contract-analyzer/internal/pipeline"
	"github.com/rcmkit/contract-analyzer/internal/repository"
	"github.com/rcmkit/contract-analyzer/internal/storage"
)

// ContractWithAnalysis pairs a contract with its current analysis, when one
// exists.
type ContractWithAnalysis struct {
	*entity.Contract
	Analysis *entity.Analysis `json:"analysis,omitempty"`
}

// Service exposes the contract operations consumed by the API layer:
// upload, retrieval, listing, deletion, and re-analysis. Uploads and
// reanalyze calls return as soon as the record state is settled; analysis
// itself runs on the worker queue.
type Service struct {
	logger      *slog.Logger
	maxFileSize int64
	contracts   repository.ContractRepository
	analyses    repository.AnalysisRepository
	blobs       storage.BlobStore
	queue       async.Queue
	analyzer    *pipeline.Analyzer
}

func NewService(
	logger *slog.Logger,
	maxFileSize int64,
	contracts repository.ContractRepository,
	analyses repository.AnalysisRepository,
	blobs storage.BlobStore,
	queue async.Queue,
	analyzer *pipeline.Analyzer,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:      logger,
		maxFileSize: maxFileSize,
		contracts:   contracts,
		analyses:    analyses,
		blobs:       blobs,
		queue:       queue,
		analyzer:    analyzer,
	}
}

// Upload validates the file, stores its bytes, creates the contract record
// in status uploaded, and queues the first analysis attempt. It returns once
// the record exists; callers observe progress by polling status.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*entity.Contract, error) {
	fileType, err := validateUpload(req, s.maxFileSize)
	if err != nil {
		s.logger.Warn("upload rejected", "filename", req.Filename, "error", err)
		return nil, err
	}

	storedName := fmt.Sprintf("%s.%s", uuid.New(), constants.NormalizeExt(string(fileType)))
	if err := s.blobs.Put(ctx, storedName, req.Data, req.ContentType); err != nil {
		return nil, common.WrapError(err, "store document")
	}

	contract, err := s.contracts.Create(ctx, &repository.CreateContractParams{
		Filename:         storedName,
		OriginalFilename: req.Filename,
		FileType:         fileType,
		FileSize:         int64(len(req.Data)),
		StorageKey:       storedName,
	})
	if err != nil {
		// roll the blob back so a failed intake leaves no side effects
		if derr := s.blobs.Delete(ctx, storedName); derr != nil {
			s.logger.Error("orphaned blob after failed create", "key", storedName, "error", derr)
		}
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		ContractID:  contract.ID,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("failed to queue analysis", "contract_id", contract.ID, "error", err)
	}

	s.logger.Info("contract uploaded", "contract_id", contract.ID, "filename", req.Filename, "size", contract.FileSize)
	return contract, nil
}

// Get returns the contract and, when completed, its current analysis. The
// stored structured data carries explicit nulls for fields the document did
// not contain, so consumers can tell "not analyzed" from "not present".
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ContractWithAnalysis, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	analysis, err := s.analyses.CurrentForContract(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ContractWithAnalysis{Contract: contract, Analysis: analysis}, nil
}

// GetAnalysis returns one analysis row by its own id, current or superseded.
func (s *Service) GetAnalysis(ctx context.Context, id uuid.UUID) (*entity.Analysis, error) {
	return s.analyses.GetByID(ctx, id)
}

// ListAnalyses returns all analysis passes for a contract, newest first.
func (s *Service) ListAnalyses(ctx context.Context, contractID uuid.UUID) ([]*entity.Analysis, error) {
	if _, err := s.contracts.GetByID(ctx, contractID); err != nil {
		return nil, err
	}
	return s.analyses.ListForContract(ctx, contractID)
}

// List returns one page of contracts, newest uploads first.
func (s *Service) List(ctx context.Context, page, pageSize int, status constants.ContractStatus) (*entity.ContractPage, error) {
	return s.contracts.List(ctx, repository.ListContractsParams{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
}

// Delete removes the contract, its analyses and fields (cascade), and the
// backing blob. An in-flight attempt's eventual write no-ops against the
// missing row.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, contract.StorageKey); err != nil && !errors.Is(err, storage.ErrBlobNotFound) {
		// the record is gone; the blob is orphaned but harmless
		s.logger.Error("failed to delete blob", "contract_id", id, "key", contract.StorageKey, "error", err)
	}
	return nil
}

// Reanalyze claims a fresh attempt on a completed or failed contract and
// queues it. A contract already processing is rejected here, synchronously,
// with common.ErrConflict.
func (s *Service) Reanalyze(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	attemptID, err := s.analyzer.Begin(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(ctx, async.Job{
		ContractID:  id,
		AttemptID:   &attemptID,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("failed to queue reanalysis", "contract_id", id, "error", err)
		return nil, err
	}
	s.logger.Info("reanalysis queued", "contract_id", id, "attempt_id", attemptID)
	return s.contracts.GetByID(ctx, id)
}

// Fields returns the flattened extracted fields of a contract's current
// analysis.
func (s *Service) Fields(ctx context.Context, contractID uuid.UUID) ([]*entity.ExtractedField, error) {
	analysis, err := s.analyses.CurrentForContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		if _, err := s.contracts.GetByID(ctx, contractID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return s.analyses.FieldsForAnalysis(ctx, analysis.ID)
}

// Stats summarizes stored contracts for the dashboard.
func (s *Service) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	return s.contracts.Stats(ctx)
}
