// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/db/ent/schema"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/contract"
	"github.com/rcmkit/contract-analyzer/gen/ent/extractedfield"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescModelName is the schema descriptor for model_name field.
	analysisDescModelName := analysisFields[4].Descriptor()
	// analysis.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	analysis.ModelNameValidator = analysisDescModelName.Validators[0].(func(string) error)
	// analysisDescPromptTokens is the schema descriptor for prompt_tokens field.
	analysisDescPromptTokens := analysisFields[5].Descriptor()
	// analysis.PromptTokensValidator is a validator for the "prompt_tokens" field. It is called by the builders before save.
	analysis.PromptTokensValidator = analysisDescPromptTokens.Validators[0].(func(int) error)
	// analysisDescCompletionTokens is the schema descriptor for completion_tokens field.
	analysisDescCompletionTokens := analysisFields[6].Descriptor()
	// analysis.CompletionTokensValidator is a validator for the "completion_tokens" field. It is called by the builders before save.
	analysis.CompletionTokensValidator = analysisDescCompletionTokens.Validators[0].(func(int) error)
	// analysisDescIsCurrent is the schema descriptor for is_current field.
	analysisDescIsCurrent := analysisFields[7].Descriptor()
	// analysis.DefaultIsCurrent holds the default value on creation for the is_current field.
	analysis.DefaultIsCurrent = analysisDescIsCurrent.Default.(bool)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[8].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	// analysisDescID is the schema descriptor for id field.
	analysisDescID := analysisFields[0].Descriptor()
	// analysis.DefaultID holds the default value on creation for the id field.
	analysis.DefaultID = analysisDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescFilename is the schema descriptor for filename field.
	contractDescFilename := contractFields[1].Descriptor()
	// contract.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	contract.FilenameValidator = contractDescFilename.Validators[0].(func(string) error)
	// contractDescOriginalFilename is the schema descriptor for original_filename field.
	contractDescOriginalFilename := contractFields[2].Descriptor()
	// contract.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	contract.OriginalFilenameValidator = contractDescOriginalFilename.Validators[0].(func(string) error)
	// contractDescFileType is the schema descriptor for file_type field.
	contractDescFileType := contractFields[3].Descriptor()
	// contract.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	contract.FileTypeValidator = func() func(string) error {
		validators := contractDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescFileSize is the schema descriptor for file_size field.
	contractDescFileSize := contractFields[4].Descriptor()
	// contract.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	contract.FileSizeValidator = contractDescFileSize.Validators[0].(func(int64) error)
	// contractDescStorageKey is the schema descriptor for storage_key field.
	contractDescStorageKey := contractFields[5].Descriptor()
	// contract.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	contract.StorageKeyValidator = contractDescStorageKey.Validators[0].(func(string) error)
	// contractDescStatus is the schema descriptor for status field.
	contractDescStatus := contractFields[6].Descriptor()
	// contract.DefaultStatus holds the default value on creation for the status field.
	contract.DefaultStatus = contractDescStatus.Default.(string)
	// contract.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	contract.StatusValidator = contractDescStatus.Validators[0].(func(string) error)
	// contractDescUploadedAt is the schema descriptor for uploaded_at field.
	contractDescUploadedAt := contractFields[9].Descriptor()
	// contract.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	contract.DefaultUploadedAt = contractDescUploadedAt.Default.(func() time.Time)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[12].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[13].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescCategory is the schema descriptor for category field.
	extractedfieldDescCategory := extractedfieldFields[2].Descriptor()
	// extractedfield.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	extractedfield.CategoryValidator = extractedfieldDescCategory.Validators[0].(func(string) error)
	// extractedfieldDescFieldName is the schema descriptor for field_name field.
	extractedfieldDescFieldName := extractedfieldFields[3].Descriptor()
	// extractedfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractedfield.FieldNameValidator = extractedfieldDescFieldName.Validators[0].(func(string) error)
	// extractedfieldDescFieldType is the schema descriptor for field_type field.
	extractedfieldDescFieldType := extractedfieldFields[5].Descriptor()
	// extractedfield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	extractedfield.FieldTypeValidator = func() func(string) error {
		validators := extractedfieldDescFieldType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_type string) error {
			for _, fn := range fns {
				if err := fn(field_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractedfieldDescCreatedAt is the schema descriptor for created_at field.
	extractedfieldDescCreatedAt := extractedfieldFields[6].Descriptor()
	// extractedfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedfield.DefaultCreatedAt = extractedfieldDescCreatedAt.Default.(func() time.Time)
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
}
