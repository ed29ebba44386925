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
	"github.com/recapd/recapd/ent/summaryjob"
)

// SourceMaterialUpdate is the builder for updating SourceMaterial entities.
type SourceMaterialUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMaterialMutation
}

// Where appends a list predicates to the SourceMaterialUpdate builder.
func (_u *SourceMaterialUpdate) Where(ps ...predicate.SourceMaterial) *SourceMaterialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *SourceMaterialUpdate) SetJobID(v int) *SourceMaterialUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableJobID(v *int) *SourceMaterialUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SourceMaterialUpdate) SetSourceType(v string) *SourceMaterialUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableSourceType(v *string) *SourceMaterialUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SourceMaterialUpdate) SetOriginalFilename(v string) *SourceMaterialUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableOriginalFilename(v *string) *SourceMaterialUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *SourceMaterialUpdate) ClearOriginalFilename() *SourceMaterialUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *SourceMaterialUpdate) SetStoragePath(v string) *SourceMaterialUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableStoragePath(v *string) *SourceMaterialUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *SourceMaterialUpdate) SetFileSizeBytes(v int64) *SourceMaterialUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableFileSizeBytes(v *int64) *SourceMaterialUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *SourceMaterialUpdate) AddFileSizeBytes(v int64) *SourceMaterialUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *SourceMaterialUpdate) ClearFileSizeBytes() *SourceMaterialUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceMaterialUpdate) SetStatus(v sourcematerial.Status) *SourceMaterialUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableStatus(v *sourcematerial.Status) *SourceMaterialUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIndividualSummary sets the "individual_summary" field.
func (_u *SourceMaterialUpdate) SetIndividualSummary(v string) *SourceMaterialUpdate {
	_u.mutation.SetIndividualSummary(v)
	return _u
}

// SetNillableIndividualSummary sets the "individual_summary" field if the given value is not nil.
func (_u *SourceMaterialUpdate) SetNillableIndividualSummary(v *string) *SourceMaterialUpdate {
	if v != nil {
		_u.SetIndividualSummary(*v)
	}
	return _u
}

// ClearIndividualSummary clears the value of the "individual_summary" field.
func (_u *SourceMaterialUpdate) ClearIndividualSummary() *SourceMaterialUpdate {
	_u.mutation.ClearIndividualSummary()
	return _u
}

// SetOutputArtifacts sets the "output_artifacts" field.
func (_u *SourceMaterialUpdate) SetOutputArtifacts(v map[string]interface{}) *SourceMaterialUpdate {
	_u.mutation.SetOutputArtifacts(v)
	return _u
}

// ClearOutputArtifacts clears the value of the "output_artifacts" field.
func (_u *SourceMaterialUpdate) ClearOutputArtifacts() *SourceMaterialUpdate {
	_u.mutation.ClearOutputArtifacts()
	return _u
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_u *SourceMaterialUpdate) SetJob(v *SummaryJob) *SourceMaterialUpdate {
	return _u.SetJobID(v.ID)
}

// AddSpeakerSegmentIDs adds the "speaker_segments" edge to the SpeakerSegment entity by IDs.
func (_u *SourceMaterialUpdate) AddSpeakerSegmentIDs(ids ...int) *SourceMaterialUpdate {
	_u.mutation.AddSpeakerSegmentIDs(ids...)
	return _u
}

// AddSpeakerSegments adds the "speaker_segments" edges to the SpeakerSegment entity.
func (_u *SourceMaterialUpdate) AddSpeakerSegments(v ...*SpeakerSegment) *SourceMaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpeakerSegmentIDs(ids...)
}

// Mutation returns the SourceMaterialMutation object of the builder.
func (_u *SourceMaterialUpdate) Mutation() *SourceMaterialMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (_u *SourceMaterialUpdate) ClearJob() *SourceMaterialUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearSpeakerSegments clears all "speaker_segments" edges to the SpeakerSegment entity.
func (_u *SourceMaterialUpdate) ClearSpeakerSegments() *SourceMaterialUpdate {
	_u.mutation.ClearSpeakerSegments()
	return _u
}

// RemoveSpeakerSegmentIDs removes the "speaker_segments" edge to SpeakerSegment entities by IDs.
func (_u *SourceMaterialUpdate) RemoveSpeakerSegmentIDs(ids ...int) *SourceMaterialUpdate {
	_u.mutation.RemoveSpeakerSegmentIDs(ids...)
	return _u
}

// RemoveSpeakerSegments removes "speaker_segments" edges to SpeakerSegment entities.
func (_u *SourceMaterialUpdate) RemoveSpeakerSegments(v ...*SpeakerSegment) *SourceMaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpeakerSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceMaterialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceMaterialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceMaterialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceMaterialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceMaterialUpdate) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := sourcematerial.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcematerial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceMaterial.job"`)
	}
	return nil
}

func (_u *SourceMaterialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcematerial.Table, sourcematerial.Columns, sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(sourcematerial.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(sourcematerial.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(sourcematerial.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(sourcematerial.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(sourcematerial.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(sourcematerial.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(sourcematerial.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcematerial.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IndividualSummary(); ok {
		_spec.SetField(sourcematerial.FieldIndividualSummary, field.TypeString, value)
	}
	if _u.mutation.IndividualSummaryCleared() {
		_spec.ClearField(sourcematerial.FieldIndividualSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OutputArtifacts(); ok {
		_spec.SetField(sourcematerial.FieldOutputArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.OutputArtifactsCleared() {
		_spec.ClearField(sourcematerial.FieldOutputArtifacts, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpeakerSegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpeakerSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SpeakerSegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeakerSegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcematerial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceMaterialUpdateOne is the builder for updating a single SourceMaterial entity.
type SourceMaterialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMaterialMutation
}

// SetJobID sets the "job_id" field.
func (_u *SourceMaterialUpdateOne) SetJobID(v int) *SourceMaterialUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableJobID(v *int) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SourceMaterialUpdateOne) SetSourceType(v string) *SourceMaterialUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableSourceType(v *string) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SourceMaterialUpdateOne) SetOriginalFilename(v string) *SourceMaterialUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableOriginalFilename(v *string) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *SourceMaterialUpdateOne) ClearOriginalFilename() *SourceMaterialUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *SourceMaterialUpdateOne) SetStoragePath(v string) *SourceMaterialUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableStoragePath(v *string) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *SourceMaterialUpdateOne) SetFileSizeBytes(v int64) *SourceMaterialUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableFileSizeBytes(v *int64) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *SourceMaterialUpdateOne) AddFileSizeBytes(v int64) *SourceMaterialUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *SourceMaterialUpdateOne) ClearFileSizeBytes() *SourceMaterialUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceMaterialUpdateOne) SetStatus(v sourcematerial.Status) *SourceMaterialUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableStatus(v *sourcematerial.Status) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIndividualSummary sets the "individual_summary" field.
func (_u *SourceMaterialUpdateOne) SetIndividualSummary(v string) *SourceMaterialUpdateOne {
	_u.mutation.SetIndividualSummary(v)
	return _u
}

// SetNillableIndividualSummary sets the "individual_summary" field if the given value is not nil.
func (_u *SourceMaterialUpdateOne) SetNillableIndividualSummary(v *string) *SourceMaterialUpdateOne {
	if v != nil {
		_u.SetIndividualSummary(*v)
	}
	return _u
}

// ClearIndividualSummary clears the value of the "individual_summary" field.
func (_u *SourceMaterialUpdateOne) ClearIndividualSummary() *SourceMaterialUpdateOne {
	_u.mutation.ClearIndividualSummary()
	return _u
}

// SetOutputArtifacts sets the "output_artifacts" field.
func (_u *SourceMaterialUpdateOne) SetOutputArtifacts(v map[string]interface{}) *SourceMaterialUpdateOne {
	_u.mutation.SetOutputArtifacts(v)
	return _u
}

// ClearOutputArtifacts clears the value of the "output_artifacts" field.
func (_u *SourceMaterialUpdateOne) ClearOutputArtifacts() *SourceMaterialUpdateOne {
	_u.mutation.ClearOutputArtifacts()
	return _u
}

// SetJob sets the "job" edge to the SummaryJob entity.
func (_u *SourceMaterialUpdateOne) SetJob(v *SummaryJob) *SourceMaterialUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddSpeakerSegmentIDs adds the "speaker_segments" edge to the SpeakerSegment entity by IDs.
func (_u *SourceMaterialUpdateOne) AddSpeakerSegmentIDs(ids ...int) *SourceMaterialUpdateOne {
	_u.mutation.AddSpeakerSegmentIDs(ids...)
	return _u
}

// AddSpeakerSegments adds the "speaker_segments" edges to the SpeakerSegment entity.
func (_u *SourceMaterialUpdateOne) AddSpeakerSegments(v ...*SpeakerSegment) *SourceMaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpeakerSegmentIDs(ids...)
}

// Mutation returns the SourceMaterialMutation object of the builder.
func (_u *SourceMaterialUpdateOne) Mutation() *SourceMaterialMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (_u *SourceMaterialUpdateOne) ClearJob() *SourceMaterialUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearSpeakerSegments clears all "speaker_segments" edges to the SpeakerSegment entity.
func (_u *SourceMaterialUpdateOne) ClearSpeakerSegments() *SourceMaterialUpdateOne {
	_u.mutation.ClearSpeakerSegments()
	return _u
}

// RemoveSpeakerSegmentIDs removes the "speaker_segments" edge to SpeakerSegment entities by IDs.
func (_u *SourceMaterialUpdateOne) RemoveSpeakerSegmentIDs(ids ...int) *SourceMaterialUpdateOne {
	_u.mutation.RemoveSpeakerSegmentIDs(ids...)
	return _u
}

// RemoveSpeakerSegments removes "speaker_segments" edges to SpeakerSegment entities.
func (_u *SourceMaterialUpdateOne) RemoveSpeakerSegments(v ...*SpeakerSegment) *SourceMaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpeakerSegmentIDs(ids...)
}

// Where appends a list predicates to the SourceMaterialUpdate builder.
func (_u *SourceMaterialUpdateOne) Where(ps ...predicate.SourceMaterial) *SourceMaterialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceMaterialUpdateOne) Select(field string, fields ...string) *SourceMaterialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceMaterial entity.
func (_u *SourceMaterialUpdateOne) Save(ctx context.Context) (*SourceMaterial, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceMaterialUpdateOne) SaveX(ctx context.Context) *SourceMaterial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceMaterialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceMaterialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceMaterialUpdateOne) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := sourcematerial.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcematerial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceMaterial.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceMaterial.job"`)
	}
	return nil
}

func (_u *SourceMaterialUpdateOne) sqlSave(ctx context.Context) (_node *SourceMaterial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcematerial.Table, sourcematerial.Columns, sqlgraph.NewFieldSpec(sourcematerial.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceMaterial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcematerial.FieldID)
		for _, f := range fields {
			if !sourcematerial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcematerial.FieldID {
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
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(sourcematerial.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(sourcematerial.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(sourcematerial.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(sourcematerial.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(sourcematerial.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(sourcematerial.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(sourcematerial.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcematerial.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IndividualSummary(); ok {
		_spec.SetField(sourcematerial.FieldIndividualSummary, field.TypeString, value)
	}
	if _u.mutation.IndividualSummaryCleared() {
		_spec.ClearField(sourcematerial.FieldIndividualSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OutputArtifacts(); ok {
		_spec.SetField(sourcematerial.FieldOutputArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.OutputArtifactsCleared() {
		_spec.ClearField(sourcematerial.FieldOutputArtifacts, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpeakerSegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpeakerSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SpeakerSegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeakerSegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SourceMaterial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcematerial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
