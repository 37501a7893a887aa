package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/gen/ent"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/extractedfield"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/entity"
)

// AnalysisRepository reads persisted analyses and their flattened fields.
// Writes happen only through ContractRepository.CompleteAnalysis.
type AnalysisRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Analysis, error)
	// CurrentForContract returns nil (no error) when the contract has no
	// completed analysis yet.
	CurrentForContract(ctx context.Context, contractID uuid.UUID) (*entity.Analysis, error)
	ListForContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Analysis, error)
	FieldsForAnalysis(ctx context.Context, analysisID uuid.UUID) ([]*entity.ExtractedField, error)
}

type analysisRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAnalysisRepository(client *ent.Client, logger *slog.Logger) AnalysisRepository {
	return &analysisRepository{client: client, logger: logger}
}

func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Analysis, error) {
	row, err := r.client.Analysis.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get analysis")
	}
	return toAnalysis(row), nil
}

func (r *analysisRepository) CurrentForContract(ctx context.Context, contractID uuid.UUID) (*entity.Analysis, error) {
	row, err := r.client.Analysis.
		Query().
		Where(analysis.ContractIDEQ(contractID), analysis.IsCurrent(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to load current analysis", "contract_id", contractID, "error", err)
		return nil, common.WrapError(err, "current analysis")
	}
	return toAnalysis(row), nil
}

func (r *analysisRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Analysis, error) {
	rows, err := r.client.Analysis.
		Query().
		Where(analysis.ContractIDEQ(contractID)).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list analyses")
	}
	out := make([]*entity.Analysis, len(rows))
	for i, row := range rows {
		out[i] = toAnalysis(row)
	}
	return out, nil
}

func (r *analysisRepository) FieldsForAnalysis(ctx context.Context, analysisID uuid.UUID) ([]*entity.ExtractedField, error) {
	rows, err := r.client.ExtractedField.
		Query().
		Where(extractedfield.AnalysisIDEQ(analysisID)).
		Order(ent.Asc(extractedfield.FieldCategory), ent.Asc(extractedfield.FieldFieldName)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list extracted fields")
	}
	out := make([]*entity.ExtractedField, len(rows))
	for i, row := range rows {
		out[i] = toExtractedField(row)
	}
	return out, nil
}
