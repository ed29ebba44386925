// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SourceMaterialCreate is the builder for creating a SourceMaterial entity.
type SourceMaterialCreate struct {
	config
	mutation *SourceMaterialMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *SourceMaterialCreate) SetJobID(v int) *SourceMaterialCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *SourceMaterialCreate) SetSourceType(v string) *SourceMaterialCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *SourceMaterialCreate) SetOriginalFilename(v string) *SourceMaterialCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_c *SourceMaterialCreate) SetNillableOriginalFilename(v *string) *SourceMaterialCreate {
	if v != nil {
		_c.SetOriginalFilename(*v)
	}
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *SourceMaterialCreate) SetStoragePath(v string) *SourceMaterialCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *SourceMaterialCreate) SetFileSizeBytes(v int64) *SourceMaterialCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *SourceMaterialCreate) SetNillableFileSizeBytes(v *int64) *SourceMaterialCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SourceMaterialCreate) SetStatus(v sourcematerial.Status) *SourceMaterialCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SourceMaterialCreate) SetNillableStatus(v *sourcematerial.Status) *SourceMaterialCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIndividualSummary sets the "individual_summary" field.
func (_c *SourceMaterialCreate) SetIndividualSummary(v string) *SourceMaterialCreate {
	_c.mutation.SetIndividualSummary(v)
	return _c
}

// SetNillableIndividualSummary sets the "individual_summary" field if the given value is not nil.
func (_c *SourceMaterialCreate) SetNillableIndividualSummary(v *string) *SourceMaterialCreate {
	if v != nil {
		_c.SetIndividualSummary(*v)
	}
	return _c
}

// SetOutputArtifacts sets the "output_artifacts" field.
func (_c *SourceMaterialCreate) SetOutputArtifacts(v map[string]interface{}) *SourceMaterialCreate {
	_c.mutation.SetOutputArtifacts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceMaterialCreate) SetCreatedAt(v time.Time) *SourceMaterialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceMaterialCreate) SetNillableCreatedAt(v *time.Time) *SourceMaterialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_c *SourceMaterialCreate) SetJob(v *SummaryJob) *SourceMaterialCreate {
	return _c.SetJobID(v.ID)
}

// AddSpeakerSegmentIDs adds the "speaker_segments" edge to the SpeakerSegment entity by IDs.
func (_c *SourceMaterialCreate) AddSpeakerSegmentIDs(ids ...int) *SourceMaterialCreate {
	_c.mutation.AddSpeakerSegmentIDs(ids...)
	return _c
}

// AddSpeakerSegments adds the "speaker_segments" edges to the SpeakerSegment entity.
func (_c *SourceMaterialCreate) AddSpeakerSegments(v ...*SpeakerSegment) *SourceMaterialCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpeakerSegmentIDs(ids...)
}

// Mutation returns the SourceMaterialMutation object of the builder.
func (_c *SourceMaterialCreate) Mutation() *SourceMaterialMutation {
	return _c.mutation
}

// Save creates the SourceMaterial in the database.
func (_c *SourceMaterialCreate) Save(ctx context.Context) (*SourceMaterial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceMaterialCreate) SaveX(ctx context.Context) *SourceMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceMaterialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceMaterialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceMaterialCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sourcematerial.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sourcematerial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceMaterialCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "SourceMaterial.job_id"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "SourceMaterial.source_type"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := sourcematerial.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "SourceMaterial.storage_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SourceMaterial.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sourcematerial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SourceMaterial.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "SourceMaterial.job"`)}
	}
	return nil
}

func (_c *SourceMaterialCreate) sqlSave(ctx context.Context) (*SourceMaterial, error) {
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

func (_c *SourceMaterialCreate) createSpec() (*SourceMaterial, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceMaterial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcematerial.Table, sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(sourcematerial.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(sourcematerial.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = &value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(sourcematerial.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(sourcematerial.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sourcematerial.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IndividualSummary(); ok {
		_spec.SetField(sourcematerial.FieldIndividualSummary, field.TypeString, value)
		_node.IndividualSummary = &value
	}
	if value, ok := _c.mutation.OutputArtifacts(); ok {
		_spec.SetField(sourcematerial.FieldOutputArtifacts, field.TypeJSON, value)
		_node.OutputArtifacts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sourcematerial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcematerial.JobTable,
			Columns: []string{sourcematerial.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summaryjob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpeakerSegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcematerial.SpeakerSegmentsTable,
			Columns: []string{sourcematerial.SpeakerSegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(speakersegment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceMaterialCreateBulk is the builder for creating many SourceMaterial entities in bulk.
type SourceMaterialCreateBulk struct {
	config
	err      error
	builders []*SourceMaterialCreate
}

// Save creates the SourceMaterial entities in the database.
func (_c *SourceMaterialCreateBulk) Save(ctx context.Context) ([]*SourceMaterial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceMaterial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMaterialMutation)
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
func (_c *SourceMaterialCreateBulk) SaveX(ctx context.Context) []*SourceMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceMaterialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceMaterialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
