// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
)

// SpeakerSegmentUpdate is the builder for updating SpeakerSegment entities.
type SpeakerSegmentUpdate struct {
	config
	hooks    []Hook
	mutation *SpeakerSegmentMutation
}

// Where appends a list predicates to the SpeakerSegmentUpdate builder.
func (_u *SpeakerSegmentUpdate) Where(ps ...predicate.SpeakerSegment) *SpeakerSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMaterialID sets the "material_id" field.
func (_u *SpeakerSegmentUpdate) SetMaterialID(v int) *SpeakerSegmentUpdate {
	_u.mutation.SetMaterialID(v)
	return _u
}

// SetNillableMaterialID sets the "material_id" field if the given value is not nil.
func (_u *SpeakerSegmentUpdate) SetNillableMaterialID(v *int) *SpeakerSegmentUpdate {
	if v != nil {
		_u.SetMaterialID(*v)
	}
	return _u
}

// SetSpeakerLabel sets the "speaker_label" field.
func (_u *SpeakerSegmentUpdate) SetSpeakerLabel(v string) *SpeakerSegmentUpdate {
	_u.mutation.SetSpeakerLabel(v)
	return _u
}

// SetNillableSpeakerLabel sets the "speaker_label" field if the given value is not nil.
func (_u *SpeakerSegmentUpdate) SetNillableSpeakerLabel(v *string) *SpeakerSegmentUpdate {
	if v != nil {
		_u.SetSpeakerLabel(*v)
	}
	return _u
}

// ClearSpeakerLabel clears the value of the "speaker_label" field.
func (_u *SpeakerSegmentUpdate) ClearSpeakerLabel() *SpeakerSegmentUpdate {
	_u.mutation.ClearSpeakerLabel()
	return _u
}

// SetStartTimeSeconds sets the "start_time_seconds" field.
func (_u *SpeakerSegmentUpdate) SetStartTimeSeconds(v float64) *SpeakerSegmentUpdate {
	_u.mutation.ResetStartTimeSeconds()
	_u.mutation.SetStartTimeSeconds(v)
	return _u
}

// SetNillableStartTimeSeconds sets the "start_time_seconds" field if the given value is not nil.
func (_u *SpeakerSegmentUpdate) SetNillableStartTimeSeconds(v *float64) *SpeakerSegmentUpdate {
	if v != nil {
		_u.SetStartTimeSeconds(*v)
	}
	return _u
}

// AddStartTimeSeconds adds value to the "start_time_seconds" field.
func (_u *SpeakerSegmentUpdate) AddStartTimeSeconds(v float64) *SpeakerSegmentUpdate {
	_u.mutation.AddStartTimeSeconds(v)
	return _u
}

// SetEndTimeSeconds sets the "end_time_seconds" field.
func (_u *SpeakerSegmentUpdate) SetEndTimeSeconds(v float64) *SpeakerSegmentUpdate {
	_u.mutation.ResetEndTimeSeconds()
	_u.mutation.SetEndTimeSeconds(v)
	return _u
}

// SetNillableEndTimeSeconds sets the "end_time_seconds" field if the given value is not nil.
func (_u *SpeakerSegmentUpdate) SetNillableEndTimeSeconds(v *float64) *SpeakerSegmentUpdate {
	if v != nil {
		_u.SetEndTimeSeconds(*v)
	}
	return _u
}

// AddEndTimeSeconds adds value to the "end_time_seconds" field.
func (_u *SpeakerSegmentUpdate) AddEndTimeSeconds(v float64) *SpeakerSegmentUpdate {
	_u.mutation.AddEndTimeSeconds(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SpeakerSegmentUpdate) SetText(v string) *SpeakerSegmentUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SpeakerSegmentUpdate) SetNillableText(v *string) *SpeakerSegmentUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetMaterial sets the "material" edge to the SourceMaterial entity.
func (_u *SpeakerSegmentUpdate) SetMaterial(v *SourceMaterial) *SpeakerSegmentUpdate {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the SpeakerSegmentMutation object of the builder.
func (_u *SpeakerSegmentUpdate) Mutation() *SpeakerSegmentMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the SourceMaterial entity.
func (_u *SpeakerSegmentUpdate) ClearMaterial() *SpeakerSegmentUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpeakerSegmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeakerSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpeakerSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeakerSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeakerSegmentUpdate) check() error {
	if v, ok := _u.mutation.SpeakerLabel(); ok {
		if err := speakersegment.SpeakerLabelValidator(v); err != nil {
			return &ValidationError{Name: "speaker_label", err: fmt.Errorf(`ent: validator failed for field "SpeakerSegment.speaker_label": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpeakerSegment.material"`)
	}
	return nil
}

func (_u *SpeakerSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speakersegment.Table, speakersegment.Columns, sqlgraph.NewFieldSpec(speakersegment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SpeakerLabel(); ok {
		_spec.SetField(speakersegment.FieldSpeakerLabel, field.TypeString, value)
	}
	if _u.mutation.SpeakerLabelCleared() {
		_spec.ClearField(speakersegment.FieldSpeakerLabel, field.TypeString)
	}
	if value, ok := _u.mutation.StartTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldStartTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTimeSeconds(); ok {
		_spec.AddField(speakersegment.FieldStartTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldEndTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTimeSeconds(); ok {
		_spec.AddField(speakersegment.FieldEndTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(speakersegment.FieldText, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   speakersegment.MaterialTable,
			Columns: []string{speakersegment.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   speakersegment.MaterialTable,
			Columns: []string{speakersegment.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speakersegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpeakerSegmentUpdateOne is the builder for updating a single SpeakerSegment entity.
type SpeakerSegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpeakerSegmentMutation
}

// SetMaterialID sets the "material_id" field.
func (_u *SpeakerSegmentUpdateOne) SetMaterialID(v int) *SpeakerSegmentUpdateOne {
	_u.mutation.SetMaterialID(v)
	return _u
}

// SetNillableMaterialID sets the "material_id" field if the given value is not nil.
func (_u *SpeakerSegmentUpdateOne) SetNillableMaterialID(v *int) *SpeakerSegmentUpdateOne {
	if v != nil {
		_u.SetMaterialID(*v)
	}
	return _u
}

// SetSpeakerLabel sets the "speaker_label" field.
func (_u *SpeakerSegmentUpdateOne) SetSpeakerLabel(v string) *SpeakerSegmentUpdateOne {
	_u.mutation.SetSpeakerLabel(v)
	return _u
}

// SetNillableSpeakerLabel sets the "speaker_label" field if the given value is not nil.
func (_u *SpeakerSegmentUpdateOne) SetNillableSpeakerLabel(v *string) *SpeakerSegmentUpdateOne {
	if v != nil {
		_u.SetSpeakerLabel(*v)
	}
	return _u
}

// ClearSpeakerLabel clears the value of the "speaker_label" field.
func (_u *SpeakerSegmentUpdateOne) ClearSpeakerLabel() *SpeakerSegmentUpdateOne {
	_u.mutation.ClearSpeakerLabel()
	return _u
}

// SetStartTimeSeconds sets the "start_time_seconds" field.
func (_u *SpeakerSegmentUpdateOne) SetStartTimeSeconds(v float64) *SpeakerSegmentUpdateOne {
	_u.mutation.ResetStartTimeSeconds()
	_u.mutation.SetStartTimeSeconds(v)
	return _u
}

// SetNillableStartTimeSeconds sets the "start_time_seconds" field if the given value is not nil.
func (_u *SpeakerSegmentUpdateOne) SetNillableStartTimeSeconds(v *float64) *SpeakerSegmentUpdateOne {
	if v != nil {
		_u.SetStartTimeSeconds(*v)
	}
	return _u
}

// AddStartTimeSeconds adds value to the "start_time_seconds" field.
func (_u *SpeakerSegmentUpdateOne) AddStartTimeSeconds(v float64) *SpeakerSegmentUpdateOne {
	_u.mutation.AddStartTimeSeconds(v)
	return _u
}

// SetEndTimeSeconds sets the "end_time_seconds" field.
func (_u *SpeakerSegmentUpdateOne) SetEndTimeSeconds(v float64) *SpeakerSegmentUpdateOne {
	_u.mutation.ResetEndTimeSeconds()
	_u.mutation.SetEndTimeSeconds(v)
	return _u
}

// SetNillableEndTimeSeconds sets the "end_time_seconds" field if the given value is not nil.
func (_u *SpeakerSegmentUpdateOne) SetNillableEndTimeSeconds(v *float64) *SpeakerSegmentUpdateOne {
	if v != nil {
		_u.SetEndTimeSeconds(*v)
	}
	return _u
}

// AddEndTimeSeconds adds value to the "end_time_seconds" field.
func (_u *SpeakerSegmentUpdateOne) AddEndTimeSeconds(v float64) *SpeakerSegmentUpdateOne {
	_u.mutation.AddEndTimeSeconds(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SpeakerSegmentUpdateOne) SetText(v string) *SpeakerSegmentUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SpeakerSegmentUpdateOne) SetNillableText(v *string) *SpeakerSegmentUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetMaterial sets the "material" edge to the SourceMaterial entity.
func (_u *SpeakerSegmentUpdateOne) SetMaterial(v *SourceMaterial) *SpeakerSegmentUpdateOne {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the SpeakerSegmentMutation object of the builder.
func (_u *SpeakerSegmentUpdateOne) Mutation() *SpeakerSegmentMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the SourceMaterial entity.
func (_u *SpeakerSegmentUpdateOne) ClearMaterial() *SpeakerSegmentUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// Where appends a list predicates to the SpeakerSegmentUpdate builder.
func (_u *SpeakerSegmentUpdateOne) Where(ps ...predicate.SpeakerSegment) *SpeakerSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpeakerSegmentUpdateOne) Select(field string, fields ...string) *SpeakerSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpeakerSegment entity.
func (_u *SpeakerSegmentUpdateOne) Save(ctx context.Context) (*SpeakerSegment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeakerSegmentUpdateOne) SaveX(ctx context.Context) *SpeakerSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpeakerSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeakerSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeakerSegmentUpdateOne) check() error {
	if v, ok := _u.mutation.SpeakerLabel(); ok {
		if err := speakersegment.SpeakerLabelValidator(v); err != nil {
			return &ValidationError{Name: "speaker_label", err: fmt.Errorf(`ent: validator failed for field "SpeakerSegment.speaker_label": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpeakerSegment.material"`)
	}
	return nil
}

func (_u *SpeakerSegmentUpdateOne) sqlSave(ctx context.Context) (_node *SpeakerSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speakersegment.Table, speakersegment.Columns, sqlgraph.NewFieldSpec(speakersegment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpeakerSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, speakersegment.FieldID)
		for _, f := range fields {
			if !speakersegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != speakersegment.FieldID {
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
	if value, ok := _u.mutation.SpeakerLabel(); ok {
		_spec.SetField(speakersegment.FieldSpeakerLabel, field.TypeString, value)
	}
	if _u.mutation.SpeakerLabelCleared() {
		_spec.ClearField(speakersegment.FieldSpeakerLabel, field.TypeString)
	}
	if value, ok := _u.mutation.StartTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldStartTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTimeSeconds(); ok {
		_spec.AddField(speakersegment.FieldStartTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldEndTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTimeSeconds(); ok {
		_spec.AddField(speakersegment.FieldEndTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(speakersegment.FieldText, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   speakersegment.MaterialTable,
			Columns: []string{speakersegment.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   speakersegment.MaterialTable,
			Columns: []string{speakersegment.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SpeakerSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speakersegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
