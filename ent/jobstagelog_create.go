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
	"github.com/recapd/recapd/ent/summaryjob"
)

// JobStageLogCreate is the builder for creating a JobStageLog entity.
type JobStageLogCreate struct {
	config
	mutation *JobStageLogMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobStageLogCreate) SetJobID(v int) *JobStageLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *JobStageLogCreate) SetStageName(v string) *JobStageLogCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobStageLogCreate) SetStatus(v jobstagelog.Status) *JobStageLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobStageLogCreate) SetNillableStatus(v *jobstagelog.Status) *JobStageLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *JobStageLogCreate) SetStartTime(v time.Time) *JobStageLogCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *JobStageLogCreate) SetNillableStartTime(v *time.Time) *JobStageLogCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *JobStageLogCreate) SetEndTime(v time.Time) *JobStageLogCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *JobStageLogCreate) SetNillableEndTime(v *time.Time) *JobStageLogCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_c *JobStageLogCreate) SetJob(v *SummaryJob) *JobStageLogCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobStageLogMutation object of the builder.
func (_c *JobStageLogCreate) Mutation() *JobStageLogMutation {
	return _c.mutation
}

// Save creates the JobStageLog in the database.
func (_c *JobStageLogCreate) Save(ctx context.Context) (*JobStageLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobStageLogCreate) SaveX(ctx context.Context) *JobStageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobStageLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobStageLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobStageLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobstagelog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobStageLogCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobStageLog.job_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "JobStageLog.stage_name"`)}
	}
	if v, ok := _c.mutation.StageName(); ok {
		if err := jobstagelog.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.stage_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobStageLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobstagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.status": %w`, err)}
		}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobStageLog.job"`)}
	}
	return nil
}

func (_c *JobStageLogCreate) sqlSave(ctx context.Context) (*JobStageLog, error) {
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

func (_c *JobStageLogCreate) createSpec() (*JobStageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &JobStageLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobstagelog.Table, sqlgraph.NewFieldSpec(jobstagelog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(jobstagelog.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobstagelog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(jobstagelog.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(jobstagelog.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobstagelog.JobTable,
			Columns: []string{jobstagelog.JobColumn},
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
	return _node, _spec
}

// JobStageLogCreateBulk is the builder for creating many JobStageLog entities in bulk.
type JobStageLogCreateBulk struct {
	config
	err      error
	builders []*JobStageLogCreate
}

// Save creates the JobStageLog entities in the database.
func (_c *JobStageLogCreateBulk) Save(ctx context.Context) ([]*JobStageLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobStageLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobStageLogMutation)
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
func (_c *JobStageLogCreateBulk) SaveX(ctx context.Context) []*JobStageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobStageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobStageLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
