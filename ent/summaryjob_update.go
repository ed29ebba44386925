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
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SummaryJobUpdate is the builder for updating SummaryJob entities.
type SummaryJobUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryJobMutation
}

// Where appends a list predicates to the SummaryJobUpdate builder.
func (_u *SummaryJobUpdate) Where(ps ...predicate.SummaryJob) *SummaryJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SummaryJobUpdate) SetSubjectID(v int) *SummaryJobUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableSubjectID(v *int) *SummaryJobUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *SummaryJobUpdate) ClearSubjectID() *SummaryJobUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SummaryJobUpdate) SetTitle(v string) *SummaryJobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableTitle(v *string) *SummaryJobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SummaryJobUpdate) SetStatus(v summaryjob.Status) *SummaryJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableStatus(v *summaryjob.Status) *SummaryJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *SummaryJobUpdate) SetFinalSummary(v string) *SummaryJobUpdate {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableFinalSummary(v *string) *SummaryJobUpdate {
	if v != nil {
		_u.SetFinalSummary(*v)
	}
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *SummaryJobUpdate) ClearFinalSummary() *SummaryJobUpdate {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SummaryJobUpdate) SetErrorMessage(v string) *SummaryJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableErrorMessage(v *string) *SummaryJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SummaryJobUpdate) ClearErrorMessage() *SummaryJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SummaryJobUpdate) SetStartedAt(v time.Time) *SummaryJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableStartedAt(v *time.Time) *SummaryJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SummaryJobUpdate) ClearStartedAt() *SummaryJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SummaryJobUpdate) SetCompletedAt(v time.Time) *SummaryJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SummaryJobUpdate) SetNillableCompletedAt(v *time.Time) *SummaryJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SummaryJobUpdate) ClearCompletedAt() *SummaryJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *SummaryJobUpdate) SetSubject(v *Subject) *SummaryJobUpdate {
	return _u.SetSubjectID(v.ID)
}

// AddSourceMaterialIDs adds the "source_materials" edge to the SourceMaterial entity by IDs.
func (_u *SummaryJobUpdate) AddSourceMaterialIDs(ids ...int) *SummaryJobUpdate {
	_u.mutation.AddSourceMaterialIDs(ids...)
	return _u
}

// AddSourceMaterials adds the "source_materials" edges to the SourceMaterial entity.
func (_u *SummaryJobUpdate) AddSourceMaterials(v ...*SourceMaterial) *SummaryJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceMaterialIDs(ids...)
}

// AddStageLogIDs adds the "stage_logs" edge to the JobStageLog entity by IDs.
func (_u *SummaryJobUpdate) AddStageLogIDs(ids ...int) *SummaryJobUpdate {
	_u.mutation.AddStageLogIDs(ids...)
	return _u
}

// AddStageLogs adds the "stage_logs" edges to the JobStageLog entity.
func (_u *SummaryJobUpdate) AddStageLogs(v ...*JobStageLog) *SummaryJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageLogIDs(ids...)
}

// Mutation returns the SummaryJobMutation object of the builder.
func (_u *SummaryJobUpdate) Mutation() *SummaryJobMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *SummaryJobUpdate) ClearSubject() *SummaryJobUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearSourceMaterials clears all "source_materials" edges to the SourceMaterial entity.
func (_u *SummaryJobUpdate) ClearSourceMaterials() *SummaryJobUpdate {
	_u.mutation.ClearSourceMaterials()
	return _u
}

// RemoveSourceMaterialIDs removes the "source_materials" edge to SourceMaterial entities by IDs.
func (_u *SummaryJobUpdate) RemoveSourceMaterialIDs(ids ...int) *SummaryJobUpdate {
	_u.mutation.RemoveSourceMaterialIDs(ids...)
	return _u
}

// RemoveSourceMaterials removes "source_materials" edges to SourceMaterial entities.
func (_u *SummaryJobUpdate) RemoveSourceMaterials(v ...*SourceMaterial) *SummaryJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceMaterialIDs(ids...)
}

// ClearStageLogs clears all "stage_logs" edges to the JobStageLog entity.
func (_u *SummaryJobUpdate) ClearStageLogs() *SummaryJobUpdate {
	_u.mutation.ClearStageLogs()
	return _u
}

// RemoveStageLogIDs removes the "stage_logs" edge to JobStageLog entities by IDs.
func (_u *SummaryJobUpdate) RemoveStageLogIDs(ids ...int) *SummaryJobUpdate {
	_u.mutation.RemoveStageLogIDs(ids...)
	return _u
}

// RemoveStageLogs removes "stage_logs" edges to JobStageLog entities.
func (_u *SummaryJobUpdate) RemoveStageLogs(v ...*JobStageLog) *SummaryJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryJobUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := summaryjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := summaryjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summaryjob.Table, summaryjob.Columns, sqlgraph.NewFieldSpec(summaryjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(summaryjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(summaryjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(summaryjob.FieldFinalSummary, field.TypeString, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(summaryjob.FieldFinalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(summaryjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(summaryjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(summaryjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(summaryjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(summaryjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceMaterialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceMaterialsIDs(); len(nodes) > 0 && !_u.mutation.SourceMaterialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceMaterialsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageLogsIDs(); len(nodes) > 0 && !_u.mutation.StageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryJobUpdateOne is the builder for updating a single SummaryJob entity.
type SummaryJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryJobMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *SummaryJobUpdateOne) SetSubjectID(v int) *SummaryJobUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableSubjectID(v *int) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *SummaryJobUpdateOne) ClearSubjectID() *SummaryJobUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SummaryJobUpdateOne) SetTitle(v string) *SummaryJobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableTitle(v *string) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SummaryJobUpdateOne) SetStatus(v summaryjob.Status) *SummaryJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableStatus(v *summaryjob.Status) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *SummaryJobUpdateOne) SetFinalSummary(v string) *SummaryJobUpdateOne {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// SetNillableFinalSummary sets the "final_summary" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableFinalSummary(v *string) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetFinalSummary(*v)
	}
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *SummaryJobUpdateOne) ClearFinalSummary() *SummaryJobUpdateOne {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SummaryJobUpdateOne) SetErrorMessage(v string) *SummaryJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableErrorMessage(v *string) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SummaryJobUpdateOne) ClearErrorMessage() *SummaryJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SummaryJobUpdateOne) SetStartedAt(v time.Time) *SummaryJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableStartedAt(v *time.Time) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SummaryJobUpdateOne) ClearStartedAt() *SummaryJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SummaryJobUpdateOne) SetCompletedAt(v time.Time) *SummaryJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SummaryJobUpdateOne) SetNillableCompletedAt(v *time.Time) *SummaryJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SummaryJobUpdateOne) ClearCompletedAt() *SummaryJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *SummaryJobUpdateOne) SetSubject(v *Subject) *SummaryJobUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// AddSourceMaterialIDs adds the "source_materials" edge to the SourceMaterial entity by IDs.
func (_u *SummaryJobUpdateOne) AddSourceMaterialIDs(ids ...int) *SummaryJobUpdateOne {
	_u.mutation.AddSourceMaterialIDs(ids...)
	return _u
}

// AddSourceMaterials adds the "source_materials" edges to the SourceMaterial entity.
func (_u *SummaryJobUpdateOne) AddSourceMaterials(v ...*SourceMaterial) *SummaryJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceMaterialIDs(ids...)
}

// AddStageLogIDs adds the "stage_logs" edge to the JobStageLog entity by IDs.
func (_u *SummaryJobUpdateOne) AddStageLogIDs(ids ...int) *SummaryJobUpdateOne {
	_u.mutation.AddStageLogIDs(ids...)
	return _u
}

// AddStageLogs adds the "stage_logs" edges to the JobStageLog entity.
func (_u *SummaryJobUpdateOne) AddStageLogs(v ...*JobStageLog) *SummaryJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageLogIDs(ids...)
}

// Mutation returns the SummaryJobMutation object of the builder.
func (_u *SummaryJobUpdateOne) Mutation() *SummaryJobMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *SummaryJobUpdateOne) ClearSubject() *SummaryJobUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearSourceMaterials clears all "source_materials" edges to the SourceMaterial entity.
func (_u *SummaryJobUpdateOne) ClearSourceMaterials() *SummaryJobUpdateOne {
	_u.mutation.ClearSourceMaterials()
	return _u
}

// RemoveSourceMaterialIDs removes the "source_materials" edge to SourceMaterial entities by IDs.
func (_u *SummaryJobUpdateOne) RemoveSourceMaterialIDs(ids ...int) *SummaryJobUpdateOne {
	_u.mutation.RemoveSourceMaterialIDs(ids...)
	return _u
}

// RemoveSourceMaterials removes "source_materials" edges to SourceMaterial entities.
func (_u *SummaryJobUpdateOne) RemoveSourceMaterials(v ...*SourceMaterial) *SummaryJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceMaterialIDs(ids...)
}

// ClearStageLogs clears all "stage_logs" edges to the JobStageLog entity.
func (_u *SummaryJobUpdateOne) ClearStageLogs() *SummaryJobUpdateOne {
	_u.mutation.ClearStageLogs()
	return _u
}

// RemoveStageLogIDs removes the "stage_logs" edge to JobStageLog entities by IDs.
func (_u *SummaryJobUpdateOne) RemoveStageLogIDs(ids ...int) *SummaryJobUpdateOne {
	_u.mutation.RemoveStageLogIDs(ids...)
	return _u
}

// RemoveStageLogs removes "stage_logs" edges to JobStageLog entities.
func (_u *SummaryJobUpdateOne) RemoveStageLogs(v ...*JobStageLog) *SummaryJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageLogIDs(ids...)
}

// Where appends a list predicates to the SummaryJobUpdate builder.
func (_u *SummaryJobUpdateOne) Where(ps ...predicate.SummaryJob) *SummaryJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryJobUpdateOne) Select(field string, fields ...string) *SummaryJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryJob entity.
func (_u *SummaryJobUpdateOne) Save(ctx context.Context) (*SummaryJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryJobUpdateOne) SaveX(ctx context.Context) *SummaryJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryJobUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := summaryjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := summaryjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SummaryJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryJobUpdateOne) sqlSave(ctx context.Context) (_node *SummaryJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summaryjob.Table, summaryjob.Columns, sqlgraph.NewFieldSpec(summaryjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summaryjob.FieldID)
		for _, f := range fields {
			if !summaryjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summaryjob.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(summaryjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(summaryjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(summaryjob.FieldFinalSummary, field.TypeString, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(summaryjob.FieldFinalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(summaryjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(summaryjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(summaryjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(summaryjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(summaryjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceMaterialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceMaterialsIDs(); len(nodes) > 0 && !_u.mutation.SourceMaterialsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceMaterialsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageLogsIDs(); len(nodes) > 0 && !_u.mutation.StageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SummaryJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
