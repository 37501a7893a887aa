// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/contract"
	"github.com/rcmkit/contract-analyzer/gen/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ContractUpdate) SetFilename(v string) *ContractUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFilename(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ContractUpdate) SetOriginalFilename(v string) *ContractUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableOriginalFilename(v *string) *ContractUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ContractUpdate) SetFileType(v string) *ContractUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFileType(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ContractUpdate) SetFileSize(v int64) *ContractUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFileSize(v *int64) *ContractUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ContractUpdate) AddFileSize(v int64) *ContractUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ContractUpdate) SetStorageKey(v string) *ContractUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStorageKey(v *string) *ContractUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractUpdate) SetStatus(v string) *ContractUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStatus(v *string) *ContractUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ContractUpdate) SetAttemptID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAttemptID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (_u *ContractUpdate) ClearAttemptID() *ContractUpdate {
	_u.mutation.ClearAttemptID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ContractUpdate) SetErrorMessage(v string) *ContractUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableErrorMessage(v *string) *ContractUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ContractUpdate) ClearErrorMessage() *ContractUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ContractUpdate) SetProcessingStartedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProcessingStartedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ContractUpdate) ClearProcessingStartedAt() *ContractUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *ContractUpdate) SetProcessingCompletedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProcessingCompletedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *ContractUpdate) ClearProcessingCompletedAt() *ContractUpdate {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *ContractUpdate) AddAnalysisIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *ContractUpdate) AddAnalyses(v ...*Analysis) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *ContractUpdate) ClearAnalyses() *ContractUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *ContractUpdate) RemoveAnalysisIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *ContractUpdate) RemoveAnalyses(v ...*Analysis) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := contract.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Contract.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := contract.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Contract.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := contract.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Contract.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := contract.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Contract.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := contract.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "Contract.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contract.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contract.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(contract.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(contract.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(contract.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(contract.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(contract.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(contract.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contract.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(contract.FieldAttemptID, field.TypeUUID, value)
	}
	if _u.mutation.AttemptIDCleared() {
		_spec.ClearField(contract.FieldAttemptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(contract.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(contract.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(contract.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(contract.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(contract.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(contract.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetFilename sets the "filename" field.
func (_u *ContractUpdateOne) SetFilename(v string) *ContractUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFilename(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ContractUpdateOne) SetOriginalFilename(v string) *ContractUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOriginalFilename(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ContractUpdateOne) SetFileType(v string) *ContractUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFileType(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ContractUpdateOne) SetFileSize(v int64) *ContractUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFileSize(v *int64) *ContractUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ContractUpdateOne) AddFileSize(v int64) *ContractUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ContractUpdateOne) SetStorageKey(v string) *ContractUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStorageKey(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractUpdateOne) SetStatus(v string) *ContractUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStatus(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ContractUpdateOne) SetAttemptID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAttemptID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (_u *ContractUpdateOne) ClearAttemptID() *ContractUpdateOne {
	_u.mutation.ClearAttemptID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ContractUpdateOne) SetErrorMessage(v string) *ContractUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableErrorMessage(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ContractUpdateOne) ClearErrorMessage() *ContractUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ContractUpdateOne) SetProcessingStartedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ContractUpdateOne) ClearProcessingStartedAt() *ContractUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *ContractUpdateOne) SetProcessingCompletedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProcessingCompletedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *ContractUpdateOne) ClearProcessingCompletedAt() *ContractUpdateOne {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *ContractUpdateOne) AddAnalysisIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *ContractUpdateOne) AddAnalyses(v ...*Analysis) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *ContractUpdateOne) ClearAnalyses() *ContractUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *ContractUpdateOne) RemoveAnalysisIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *ContractUpdateOne) RemoveAnalyses(v ...*Analysis) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := contract.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Contract.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := contract.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Contract.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := contract.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Contract.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := contract.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Contract.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := contract.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "Contract.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contract.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contract.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(contract.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(contract.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(contract.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(contract.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(contract.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(contract.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contract.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(contract.FieldAttemptID, field.TypeUUID, value)
	}
	if _u.mutation.AttemptIDCleared() {
		_spec.ClearField(contract.FieldAttemptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(contract.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(contract.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(contract.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(contract.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(contract.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(contract.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AnalysesTable,
			Columns: []string{contract.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
