// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/contract"
	"github.com/rcmkit/contract-analyzer/gen/ent/extractedfield"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *AnalysisCreate) SetContractID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *AnalysisCreate) SetRawText(v string) *AnalysisCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *AnalysisCreate) SetExtractedJSON(v json.RawMessage) *AnalysisCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *AnalysisCreate) SetModelName(v string) *AnalysisCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *AnalysisCreate) SetPromptTokens(v int) *AnalysisCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *AnalysisCreate) SetCompletionTokens(v int) *AnalysisCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *AnalysisCreate) SetIsCurrent(v bool) *AnalysisCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableIsCurrent(v *bool) *AnalysisCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableID(v *uuid.UUID) *AnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *AnalysisCreate) SetContract(v *Contract) *AnalysisCreate {
	return _c.SetContractID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_c *AnalysisCreate) AddFieldIDs(ids ...uuid.UUID) *AnalysisCreate {
	_c.mutation.AddFieldIDs(ids...)
	return _c
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_c *AnalysisCreate) AddFields(v ...*ExtractedField) *AnalysisCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldIDs(ids...)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := analysis.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Analysis.contract_id"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Analysis.raw_text"`)}
	}
	if _, ok := _c.mutation.ExtractedJSON(); !ok {
		return &ValidationError{Name: "extracted_json", err: errors.New(`ent: missing required field "Analysis.extracted_json"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "Analysis.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := analysis.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Analysis.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "Analysis.prompt_tokens"`)}
	}
	if v, ok := _c.mutation.PromptTokens(); ok {
		if err := analysis.PromptTokensValidator(v); err != nil {
			return &ValidationError{Name: "prompt_tokens", err: fmt.Errorf(`ent: validator failed for field "Analysis.prompt_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "Analysis.completion_tokens"`)}
	}
	if v, ok := _c.mutation.CompletionTokens(); ok {
		if err := analysis.CompletionTokensValidator(v); err != nil {
			return &ValidationError{Name: "completion_tokens", err: fmt.Errorf(`ent: validator failed for field "Analysis.completion_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "Analysis.is_current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Analysis.contract"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(analysis.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(analysis.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(analysis.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(analysis.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(analysis.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(analysis.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.ContractTable,
			Columns: []string{analysis.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.FieldsTable,
			Columns: []string{analysis.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
