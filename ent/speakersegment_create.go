// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
)

// SpeakerSegmentCreate is the builder for creating a SpeakerSegment entity.
type SpeakerSegmentCreate struct {
	config
	mutation *SpeakerSegmentMutation
	hooks    []Hook
}

// SetMaterialID sets the "material_id" field.
func (_c *SpeakerSegmentCreate) SetMaterialID(v int) *SpeakerSegmentCreate {
	_c.mutation.SetMaterialID(v)
	return _c
}

// SetSpeakerLabel sets the "speaker_label" field.
func (_c *SpeakerSegmentCreate) SetSpeakerLabel(v string) *SpeakerSegmentCreate {
	_c.mutation.SetSpeakerLabel(v)
	return _c
}

// SetNillableSpeakerLabel sets the "speaker_label" field if the given value is not nil.
func (_c *SpeakerSegmentCreate) SetNillableSpeakerLabel(v *string) *SpeakerSegmentCreate {
	if v != nil {
		_c.SetSpeakerLabel(*v)
	}
	return _c
}

// SetStartTimeSeconds sets the "start_time_seconds" field.
func (_c *SpeakerSegmentCreate) SetStartTimeSeconds(v float64) *SpeakerSegmentCreate {
	_c.mutation.SetStartTimeSeconds(v)
	return _c
}

// SetEndTimeSeconds sets the "end_time_seconds" field.
func (_c *SpeakerSegmentCreate) SetEndTimeSeconds(v float64) *SpeakerSegmentCreate {
	_c.mutation.SetEndTimeSeconds(v)
	return _c
}

// SetText sets the "text" field.
func (_c *SpeakerSegmentCreate) SetText(v string) *SpeakerSegmentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetMaterial sets the "material" edge to the SourceMaterial entity.
func (_c *SpeakerSegmentCreate) SetMaterial(v *SourceMaterial) *SpeakerSegmentCreate {
	return _c.SetMaterialID(v.ID)
}

// Mutation returns the SpeakerSegmentMutation object of the builder.
func (_c *SpeakerSegmentCreate) Mutation() *SpeakerSegmentMutation {
	return _c.mutation
}

// Save creates the SpeakerSegment in the database.
func (_c *SpeakerSegmentCreate) Save(ctx context.Context) (*SpeakerSegment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpeakerSegmentCreate) SaveX(ctx context.Context) *SpeakerSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeakerSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeakerSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpeakerSegmentCreate) check() error {
	if _, ok := _c.mutation.MaterialID(); !ok {
		return &ValidationError{Name: "material_id", err: errors.New(`ent: missing required field "SpeakerSegment.material_id"`)}
	}
	if v, ok := _c.mutation.SpeakerLabel(); ok {
		if err := speakersegment.SpeakerLabelValidator(v); err != nil {
			return &ValidationError{Name: "speaker_label", err: fmt.Errorf(`ent: validator failed for field "SpeakerSegment.speaker_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTimeSeconds(); !ok {
		return &ValidationError{Name: "start_time_seconds", err: errors.New(`ent: missing required field "SpeakerSegment.start_time_seconds"`)}
	}
	if _, ok := _c.mutation.EndTimeSeconds(); !ok {
		return &ValidationError{Name: "end_time_seconds", err: errors.New(`ent: missing required field "SpeakerSegment.end_time_seconds"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "SpeakerSegment.text"`)}
	}
	if len(_c.mutation.MaterialIDs()) == 0 {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required edge "SpeakerSegment.material"`)}
	}
	return nil
}

func (_c *SpeakerSegmentCreate) sqlSave(ctx context.Context) (*SpeakerSegment, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpeakerSegmentCreate) createSpec() (*SpeakerSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &SpeakerSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(speakersegment.Table, sqlgraph.NewFieldSpec(speakersegment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SpeakerLabel(); ok {
		_spec.SetField(speakersegment.FieldSpeakerLabel, field.TypeString, value)
		_node.SpeakerLabel = &value
	}
	if value, ok := _c.mutation.StartTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldStartTimeSeconds, field.TypeFloat64, value)
		_node.StartTimeSeconds = value
	}
	if value, ok := _c.mutation.EndTimeSeconds(); ok {
		_spec.SetField(speakersegment.FieldEndTimeSeconds, field.TypeFloat64, value)
		_node.EndTimeSeconds = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(speakersegment.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if nodes := _c.mutation.MaterialIDs(); len(nodes) > 0 {
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
		_node.MaterialID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpeakerSegmentCreateBulk is the builder for creating many SpeakerSegment entities in bulk.
type SpeakerSegmentCreateBulk struct {
	config
	err      error
	builders []*SpeakerSegmentCreate
}

// Save creates the SpeakerSegment entities in the database.
func (_c *SpeakerSegmentCreateBulk) Save(ctx context.Context) ([]*SpeakerSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpeakerSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpeakerSegmentMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SpeakerSegmentCreateBulk) SaveX(ctx context.Context) []*SpeakerSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeakerSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeakerSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
