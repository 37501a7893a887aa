package repository

import (
	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/gen/ent"
	"github.com/rcmkit/contract-analyzer/internal/entity"
)

func toContract(row *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:                    row.ID,
		Filename:              row.Filename,
		OriginalFilename:      row.OriginalFilename,
		FileType:              constants.FileType(row.FileType),
		FileSize:              row.FileSize,
		StorageKey:            row.StorageKey,
		Status:                constants.ContractStatus(row.Status),
		AttemptID:             row.AttemptID,
		ErrorMessage:          row.ErrorMessage,
		UploadedAt:            row.UploadedAt,
		ProcessingStartedAt:   row.ProcessingStartedAt,
		ProcessingCompletedAt: row.ProcessingCompletedAt,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}

func toAnalysis(row *ent.Analysis) *entity.Analysis {
	return &entity.Analysis{
		ID:               row.ID,
		ContractID:       row.ContractID,
		RawText:          row.RawText,
		ExtractedData:    row.ExtractedJSON,
		ModelName:        row.ModelName,
		PromptTokens:     row.PromptTokens,
		CompletionTokens: row.CompletionTokens,
		IsCurrent:        row.IsCurrent,
		CreatedAt:        row.CreatedAt,
	}
}

func toExtractedField(row *ent.ExtractedField) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:         row.ID,
		AnalysisID: row.AnalysisID,
		Category:   row.Category,
		FieldName:  row.FieldName,
		FieldValue: row.FieldValue,
		FieldType:  row.FieldType,
		CreatedAt:  row.CreatedAt,
	}
}
