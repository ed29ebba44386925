// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SummaryJobCreate is the builder for creating a SummaryJob entity.
type SummaryJobCreate struct {
	config
	mutation *SummaryJobMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *SummaryJobCreate) SetSubjectID(v int) *SummaryJobCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableSubjectID(v *int) *SummaryJobCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SummaryJobCreate) SetTitle(v string) *SummaryJobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SummaryJobCreate) SetStatus(v summaryjob.Status) *SummaryJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableStatus(v *summaryjob.Status) *SummaryJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFinalSummary sets the "final_summary" field.
func (_c *SummaryJobCreate) SetFinalSummary(v string) *SummaryJobCreate {
	_c.mutation.SetFinalSummary(v)
	return _c
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableFinalSummary(v *string) *SummaryJobCreate {
	if v != nil {
		_c.SetFinalSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SummaryJobCreate) SetErrorMessage(v string) *SummaryJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableErrorMessage(v *string) *SummaryJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryJobCreate) SetCreatedAt(v time.Time) *SummaryJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableCreatedAt(v *time.Time) *SummaryJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SummaryJobCreate) SetStartedAt(v time.Time) *SummaryJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableStartedAt(v *time.Time) *SummaryJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SummaryJobCreate) SetCompletedAt(v time.Time) *SummaryJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SummaryJobCreate) SetNillableCompletedAt(v *time.Time) *SummaryJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *SummaryJobCreate) SetSubject(v *Subject) *SummaryJobCreate {
	return _c.SetSubjectID(v.ID)
}

// AddSourceMaterialIDs adds the "source_materials" edge to the SourceMaterial entity by IDs.
func (_c *SummaryJobCreate) AddSourceMaterialIDs(ids ...int) *SummaryJobCreate {
	_c.mutation.AddSourceMaterialIDs(ids...)
	return _c
}

// AddSourceMaterials adds the "source_materials" edges to the SourceMaterial entity.
func (_c *SummaryJobCreate) AddSourceMaterials(v ...*SourceMaterial) *SummaryJobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceMaterialIDs(ids...)
}

// AddStageLogIDs adds the "stage_logs" edge to the JobStageLog entity by IDs.
func (_c *SummaryJobCreate) AddStageLogIDs(ids ...int) *SummaryJobCreate {
	_c.mutation.AddStageLogIDs(ids...)
	return _c
}

// AddStageLogs adds the "stage_logs" edges to the JobStageLog entity.
func (_c *SummaryJobCreate) AddStageLogs(v ...*JobStageLog) *SummaryJobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageLogIDs(ids...)
}

// Mutation returns the SummaryJobMutation object of the builder.
func (_c *SummaryJobCreate) Mutation() *SummaryJobMutation {
	return _c.mutation
}

// Save creates the SummaryJob in the database.
func (_c *SummaryJobCreate) Save(ctx context.Context) (*SummaryJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryJobCreate) SaveX(ctx context.Context) *SummaryJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := summaryjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summaryjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryJobCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SummaryJob.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := summaryjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SummaryJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := summaryjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SummaryJob.created_at"`)}
	}
	return nil
}

func (_c *SummaryJobCreate) sqlSave(ctx context.Context) (*SummaryJob, error) {
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

func (_c *SummaryJobCreate) createSpec() (*SummaryJob, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summaryjob.Table, sqlgraph.NewFieldSpec(summaryjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(summaryjob.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(summaryjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FinalSummary(); ok {
		_spec.SetField(summaryjob.FieldFinalSummary, field.TypeString, value)
		_node.FinalSummary = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summaryjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(summaryjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(summaryjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summaryjob.SubjectTable,
			Columns: []string{summaryjob.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceMaterialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   summaryjob.SourceMaterialsTable,
			Columns: []string{summaryjob.SourceMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   summaryjob.StageLogsTable,
			Columns: []string{summaryjob.StageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobstagelog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummaryJobCreateBulk is the builder for creating many SummaryJob entities in bulk.
type SummaryJobCreateBulk struct {
	config
	err      error
	builders []*SummaryJobCreate
}

// Save creates the SummaryJob entities in the database.
func (_c *SummaryJobCreateBulk) Save(ctx context.Context) ([]*SummaryJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryJobMutation)
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
func (_c *SummaryJobCreateBulk) SaveX(ctx context.Context) []*SummaryJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
