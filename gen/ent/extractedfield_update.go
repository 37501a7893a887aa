// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/extractedfield"
	"github.com/rcmkit/contract-analyzer/gen/ent/predicate"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *ExtractedFieldUpdate) SetAnalysisID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableAnalysisID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedFieldUpdate) SetCategory(v string) *ExtractedFieldUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableCategory(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdate) SetFieldName(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldName(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldValue sets the "field_value" field.
func (_u *ExtractedFieldUpdate) SetFieldValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldValue(v)
	return _u
}

// SetNillableFieldValue sets the "field_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldValue(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractedFieldUpdate) SetFieldType(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldType(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *ExtractedFieldUpdate) SetAnalysis(v *Analysis) *ExtractedFieldUpdate {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *ExtractedFieldUpdate) ClearAnalysis() *ExtractedFieldUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := extractedfield.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractedfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_type": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.analysis"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldValue(); ok {
		_spec.SetField(extractedfield.FieldFieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractedfield.FieldFieldType, field.TypeString, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.AnalysisTable,
			Columns: []string{extractedfield.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.AnalysisTable,
			Columns: []string{extractedfield.AnalysisColumn},
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
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *ExtractedFieldUpdateOne) SetAnalysisID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableAnalysisID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedFieldUpdateOne) SetCategory(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableCategory(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdateOne) SetFieldName(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldName(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldValue sets the "field_value" field.
func (_u *ExtractedFieldUpdateOne) SetFieldValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldValue(v)
	return _u
}

// SetNillableFieldValue sets the "field_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldValue(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractedFieldUpdateOne) SetFieldType(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldType(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *ExtractedFieldUpdateOne) SetAnalysis(v *Analysis) *ExtractedFieldUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *ExtractedFieldUpdateOne) ClearAnalysis() *ExtractedFieldUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := extractedfield.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractedfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_type": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.analysis"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldValue(); ok {
		_spec.SetField(extractedfield.FieldFieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractedfield.FieldFieldType, field.TypeString, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.AnalysisTable,
			Columns: []string{extractedfield.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.AnalysisTable,
			Columns: []string{extractedfield.AnalysisColumn},
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
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
