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
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/summaryjob"
)

// JobStageLogUpdate is the builder for updating JobStageLog entities.
type JobStageLogUpdate struct {
	config
	hooks    []Hook
	mutation *JobStageLogMutation
}

// Where appends a list predicates to the JobStageLogUpdate builder.
func (_u *JobStageLogUpdate) Where(ps ...predicate.JobStageLog) *JobStageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobStageLogUpdate) SetJobID(v int) *JobStageLogUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobStageLogUpdate) SetNillableJobID(v *int) *JobStageLogUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *JobStageLogUpdate) SetStageName(v string) *JobStageLogUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *JobStageLogUpdate) SetNillableStageName(v *string) *JobStageLogUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobStageLogUpdate) SetStatus(v jobstagelog.Status) *JobStageLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobStageLogUpdate) SetNillableStatus(v *jobstagelog.Status) *JobStageLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobStageLogUpdate) SetStartTime(v time.Time) *JobStageLogUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobStageLogUpdate) SetNillableStartTime(v *time.Time) *JobStageLogUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobStageLogUpdate) ClearStartTime() *JobStageLogUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *JobStageLogUpdate) SetEndTime(v time.Time) *JobStageLogUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *JobStageLogUpdate) SetNillableEndTime(v *time.Time) *JobStageLogUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *JobStageLogUpdate) ClearEndTime() *JobStageLogUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_u *JobStageLogUpdate) SetJob(v *SummaryJob) *JobStageLogUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobStageLogMutation object of the builder.
func (_u *JobStageLogUpdate) Mutation() *JobStageLogMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (_u *JobStageLogUpdate) ClearJob() *JobStageLogUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobStageLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobStageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobStageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobStageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobStageLogUpdate) check() error {
	if v, ok := _u.mutation.StageName(); ok {
		if err := jobstagelog.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.stage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobstagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStageLog.job"`)
	}
	return nil
}

func (_u *JobStageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstagelog.Table, jobstagelog.Columns, sqlgraph.NewFieldSpec(jobstagelog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(jobstagelog.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobstagelog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(jobstagelog.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(jobstagelog.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(jobstagelog.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(jobstagelog.FieldEndTime, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobStageLogUpdateOne is the builder for updating a single JobStageLog entity.
type JobStageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobStageLogMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobStageLogUpdateOne) SetJobID(v int) *JobStageLogUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobStageLogUpdateOne) SetNillableJobID(v *int) *JobStageLogUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *JobStageLogUpdateOne) SetStageName(v string) *JobStageLogUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *JobStageLogUpdateOne) SetNillableStageName(v *string) *JobStageLogUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobStageLogUpdateOne) SetStatus(v jobstagelog.Status) *JobStageLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobStageLogUpdateOne) SetNillableStatus(v *jobstagelog.Status) *JobStageLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobStageLogUpdateOne) SetStartTime(v time.Time) *JobStageLogUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobStageLogUpdateOne) SetNillableStartTime(v *time.Time) *JobStageLogUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobStageLogUpdateOne) ClearStartTime() *JobStageLogUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *JobStageLogUpdateOne) SetEndTime(v time.Time) *JobStageLogUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *JobStageLogUpdateOne) SetNillableEndTime(v *time.Time) *JobStageLogUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *JobStageLogUpdateOne) ClearEndTime() *JobStageLogUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_u *JobStageLogUpdateOne) SetJob(v *SummaryJob) *JobStageLogUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobStageLogMutation object of the builder.
func (_u *JobStageLogUpdateOne) Mutation() *JobStageLogMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (_u *JobStageLogUpdateOne) ClearJob() *JobStageLogUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobStageLogUpdate builder.
func (_u *JobStageLogUpdateOne) Where(ps ...predicate.JobStageLog) *JobStageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobStageLogUpdateOne) Select(field string, fields ...string) *JobStageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobStageLog entity.
func (_u *JobStageLogUpdateOne) Save(ctx context.Context) (*JobStageLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobStageLogUpdateOne) SaveX(ctx context.Context) *JobStageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobStageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobStageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobStageLogUpdateOne) check() error {
	if v, ok := _u.mutation.StageName(); ok {
		if err := jobstagelog.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.stage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobstagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStageLog.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStageLog.job"`)
	}
	return nil
}

func (_u *JobStageLogUpdateOne) sqlSave(ctx context.Context) (_node *JobStageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstagelog.Table, jobstagelog.Columns, sqlgraph.NewFieldSpec(jobstagelog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobStageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobstagelog.FieldID)
		for _, f := range fields {
			if !jobstagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobstagelog.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(jobstagelog.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobstagelog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(jobstagelog.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(jobstagelog.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(jobstagelog.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(jobstagelog.FieldEndTime, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobStageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
