package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/gen/ent"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/contract"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
	"github.com/rcmkit/contract-analyzer/internal/llm"
)

// CreateContractParams wraps parameters for creating a contract record.
type CreateContractParams struct {
	Filename         string
	OriginalFilename string
	FileType         constants.FileType
	FileSize         int64
	StorageKey       string
}

// ListContractsParams selects one page of contracts.
type ListContractsParams struct {
	Page     int
	PageSize int
	Status   constants.ContractStatus // optional filter
}

// CompleteAnalysisParams carries everything the completion write persists
// atomically: the analysis row, its flattened fields, and the status flip.
type CompleteAnalysisParams struct {
	ContractID       uuid.UUID
	AttemptID        uuid.UUID
	RawText          string
	ExtractedJSON    json.RawMessage
	ModelName        string
	PromptTokens     int
	CompletionTokens int
	Fields           []llm.FieldEntry
}

// ContractRepository is the durable record of contracts and their analyses.
//
// BeginProcessing, CompleteAnalysis and FailAnalysis enforce the attempt
// protocol: entry into processing is a compare-and-set guarded by status,
// and the finishing writes only commit while the contract is still in
// processing under the same attempt token.
type ContractRepository interface {
	Create(ctx context.Context, params *CreateContractParams) (*entity.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	List(ctx context.Context, params ListContractsParams) (*entity.ContractPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*entity.DashboardStats, error)

	BeginProcessing(ctx context.Context, id, attemptID uuid.UUID) error
	CompleteAnalysis(ctx context.Context, params *CompleteAnalysisParams) (*entity.Analysis, error)
	FailAnalysis(ctx context.Context, id, attemptID uuid.UUID, message string) error
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{client: client, logger: logger}
}

func (r *contractRepository) Create(ctx context.Context, params *CreateContractParams) (*entity.Contract, error) {
	row, err := r.client.Contract.
		Create().
		SetFilename(params.Filename).
		SetOriginalFilename(params.OriginalFilename).
		SetFileType(string(params.FileType)).
		SetFileSize(params.FileSize).
		SetStorageKey(params.StorageKey).
		SetStatus(string(constants.StatusUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract", "filename", params.OriginalFilename, "error", err)
		return nil, common.WrapError(err, "create contract")
	}
	r.logger.Info("contract created", "contract_id", row.ID, "filename", params.OriginalFilename)
	return toContract(row), nil
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get contract")
	}
	return toContract(row), nil
}

func (r *contractRepository) List(ctx context.Context, params ListContractsParams) (*entity.ContractPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 10
	}

	q := r.client.Contract.Query()
	if params.Status != "" {
		q = q.Where(contract.StatusEQ(string(params.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, common.WrapError(err, "count contracts")
	}

	rows, err := q.
		Order(ent.Desc(contract.FieldUploadedAt)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "error", err)
		return nil, common.WrapError(err, "list contracts")
	}

	out := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		out[i] = toContract(row)
	}
	return &entity.ContractPage{
		Contracts:  out,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: (total + params.PageSize - 1) / params.PageSize,
	}, nil
}

func (r *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// analyses and extracted fields go with the contract via FK cascade
	err := r.client.Contract.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete contract", "contract_id", id, "error", err)
		return common.WrapError(err, "delete contract")
	}
	r.logger.Info("contract deleted", "contract_id", id)
	return nil
}

func (r *contractRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	total, err := r.client.Contract.Query().Count(ctx)
	if err != nil {
		return nil, common.WrapError(err, "count contracts")
	}
	byStatus := func(s constants.ContractStatus) (int, error) {
		return r.client.Contract.Query().Where(contract.StatusEQ(string(s))).Count(ctx)
	}
	completed, err := byStatus(constants.StatusCompleted)
	if err != nil {
		return nil, common.WrapError(err, "count completed")
	}
	failed, err := byStatus(constants.StatusFailed)
	if err != nil {
		return nil, common.WrapError(err, "count failed")
	}
	var size []struct {
		Sum int64 `json:"sum"`
	}
	err = r.client.Contract.Query().
		Aggregate(ent.Sum(contract.FieldFileSize)).
		Scan(ctx, &size)
	if err != nil {
		return nil, common.WrapError(err, "sum storage")
	}
	stats := &entity.DashboardStats{
		TotalContracts:     total,
		CompletedContracts: completed,
		FailedContracts:    failed,
		PendingContracts:   total - completed - failed,
	}
	if len(size) > 0 {
		stats.TotalStorageBytes = size[0].Sum
	}
	return stats, nil
}

// BeginProcessing flips uploaded/completed/failed -> processing as a
// compare-and-set. Zero affected rows means either the contract is gone
// (ErrNotFound) or another attempt is already in flight (ErrConflict).
func (r *contractRepository) BeginProcessing(ctx context.Context, id, attemptID uuid.UUID) error {
	n, err := r.client.Contract.
		Update().
		Where(
			contract.IDEQ(id),
			contract.StatusIn(
				string(constants.StatusUploaded),
				string(constants.StatusCompleted),
				string(constants.StatusFailed),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		SetAttemptID(attemptID).
		SetProcessingStartedAt(time.Now().UTC()).
		ClearErrorMessage().
		ClearProcessingCompletedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("begin processing failed", "contract_id", id, "error", err)
		return common.WrapError(err, "begin processing")
	}
	if n == 0 {
		exists, err := r.client.Contract.Query().Where(contract.IDEQ(id)).Exist(ctx)
		if err != nil {
			return common.WrapError(err, "begin processing")
		}
		if !exists {
			return common.ErrNotFound
		}
		r.logger.Warn("analysis already in progress", "contract_id", id)
		return common.ErrConflict
	}
	r.logger.Info("contract processing", "contract_id", id, "attempt_id", attemptID)
	return nil
}

// CompleteAnalysis persists the analysis, its flattened fields, and the
// completed status in one transaction. The status flip is guarded by the
// attempt token so a late write from a superseded attempt (or one racing a
// delete) commits nothing.
func (r *contractRepository) CompleteAnalysis(ctx context.Context, params *CompleteAnalysisParams) (*entity.Analysis, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin tx")
	}

	result, err := r.completeInTx(ctx, tx, params)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "contract_id", params.ContractID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit analysis")
	}
	r.logger.Info("analysis persisted",
		"contract_id", params.ContractID,
		"analysis_id", result.ID,
		"fields", len(params.Fields),
	)
	return result, nil
}

func (r *contractRepository) completeInTx(ctx context.Context, tx *ent.Tx, params *CompleteAnalysisParams) (*entity.Analysis, error) {
	n, err := tx.Contract.
		Update().
		Where(
			contract.IDEQ(params.ContractID),
			contract.StatusEQ(string(constants.StatusProcessing)),
			contract.AttemptIDEQ(params.AttemptID),
		).
		SetStatus(string(constants.StatusCompleted)).
		ClearAttemptID().
		ClearErrorMessage().
		SetProcessingCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "complete contract")
	}
	if n == 0 {
		// contract deleted mid-flight or attempt superseded; drop the result
		return nil, common.ErrConflict
	}

	// supersede the previous current analysis; the row itself is retained
	_, err = tx.Analysis.
		Update().
		Where(analysis.ContractIDEQ(params.ContractID), analysis.IsCurrent(true)).
		SetIsCurrent(false).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "supersede analysis")
	}

	row, err := tx.Analysis.
		Create().
		SetContractID(params.ContractID).
		SetRawText(params.RawText).
		SetExtractedJSON(params.ExtractedJSON).
		SetModelName(params.ModelName).
		SetPromptTokens(params.PromptTokens).
		SetCompletionTokens(params.CompletionTokens).
		SetIsCurrent(true).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "create analysis")
	}

	if len(params.Fields) > 0 {
		builders := make([]*ent.ExtractedFieldCreate, len(params.Fields))
		for i, f := range params.Fields {
			builders[i] = tx.ExtractedField.
				Create().
				SetAnalysisID(row.ID).
				SetCategory(f.Category).
				SetFieldName(f.FieldName).
				SetFieldValue(f.Value).
				SetFieldType(f.Type)
		}
		if _, err := tx.ExtractedField.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, common.WrapError(err, "create extracted fields")
		}
	}
	return toAnalysis(row), nil
}

// FailAnalysis records a terminal failure. Same guard as CompleteAnalysis:
// only the owning attempt may move the contract out of processing.
func (r *contractRepository) FailAnalysis(ctx context.Context, id, attemptID uuid.UUID, message string) error {
	n, err := r.client.Contract.
		Update().
		Where(
			contract.IDEQ(id),
			contract.StatusEQ(string(constants.StatusProcessing)),
			contract.AttemptIDEQ(attemptID),
		).
		SetStatus(string(constants.StatusFailed)).
		ClearAttemptID().
		SetErrorMessage(message).
		SetProcessingCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("fail analysis write failed", "contract_id", id, "error", err)
		return common.WrapError(err, "fail analysis")
	}
	if n == 0 {
		// nothing to do: contract deleted or attempt superseded
		r.logger.Warn("stale failure write dropped", "contract_id", id, "attempt_id", attemptID)
		return common.ErrConflict
	}
	r.logger.Warn("contract failed", "contract_id", id, "error", message)
	return nil
}
