// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJobStageLog    = "JobStageLog"
	TypeSourceMaterial = "SourceMaterial"
	TypeSpeakerSegment = "SpeakerSegment"
	TypeSubject        = "Subject"
	TypeSummaryJob     = "SummaryJob"
	TypeWorkspace      = "Workspace"
)

// JobStageLogMutation represents an operation that mutates the JobStageLog nodes in the graph.
type JobStageLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	stage_name    *string
	status        *jobstagelog.Status
	start_time    *time.Time
	end_time      *time.Time
	clearedFields map[string]struct{}
	job           *int
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobStageLog, error)
	predicates    []predicate.JobStageLog
}

var _ ent.Mutation = (*JobStageLogMutation)(nil)

// jobstagelogOption allows management of the mutation configuration using functional options.
type jobstagelogOption func(*JobStageLogMutation)

// newJobStageLogMutation creates new mutation for the JobStageLog entity.
func newJobStageLogMutation(c config, op Op, opts ...jobstagelogOption) *JobStageLogMutation {
	m := &JobStageLogMutation{
		config:        c,
		op:            op,
		typ:           TypeJobStageLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobStageLogID sets the ID field of the mutation.
func withJobStageLogID(id int) jobstagelogOption {
	return func(m *JobStageLogMutation) {
		var (
			err   error
			once  sync.Once
			value *JobStageLog
		)
		m.oldValue = func(ctx context.Context) (*JobStageLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobStageLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobStageLog sets the old JobStageLog of the mutation.
func withJobStageLog(node *JobStageLog) jobstagelogOption {
	return func(m *JobStageLogMutation) {
		m.oldValue = func(context.Context) (*JobStageLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobStageLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobStageLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobStageLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobStageLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobStageLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobStageLogMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobStageLogMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobStageLog entity.
// If the JobStageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStageLogMutation) OldJobID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobStageLogMutation) ResetJobID() {
	m.job = nil
}

// SetStageName sets the "stage_name" field.
func (m *JobStageLogMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *JobStageLogMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the JobStageLog entity.
// If the JobStageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStageLogMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *JobStageLogMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStatus sets the "status" field.
func (m *JobStageLogMutation) SetStatus(j jobstagelog.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobStageLogMutation) Status() (r jobstagelog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobStageLog entity.
// If the JobStageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStageLogMutation) OldStatus(ctx context.Context) (v jobstagelog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobStageLogMutation) ResetStatus() {
	m.status = nil
}

// SetStartTime sets the "start_time" field.
func (m *JobStageLogMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *JobStageLogMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the JobStageLog entity.
// If the JobStageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStageLogMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *JobStageLogMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[jobstagelog.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *JobStageLogMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[jobstagelog.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *JobStageLogMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, jobstagelog.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *JobStageLogMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *JobStageLogMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the JobStageLog entity.
// If the JobStageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStageLogMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *JobStageLogMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[jobstagelog.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *JobStageLogMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[jobstagelog.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *JobStageLogMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, jobstagelog.FieldEndTime)
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (m *JobStageLogMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobstagelog.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the SummaryJob entity was cleared.
func (m *JobStageLogMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobStageLogMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobStageLogMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobStageLogMutation builder.
func (m *JobStageLogMutation) Where(ps ...predicate.JobStageLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobStageLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobStageLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobStageLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobStageLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobStageLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobStageLog).
func (m *JobStageLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobStageLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, jobstagelog.FieldJobID)
	}
	if m.stage_name != nil {
		fields = append(fields, jobstagelog.FieldStageName)
	}
	if m.status != nil {
		fields = append(fields, jobstagelog.FieldStatus)
	}
	if m.start_time != nil {
		fields = append(fields, jobstagelog.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, jobstagelog.FieldEndTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobStageLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobstagelog.FieldJobID:
		return m.JobID()
	case jobstagelog.FieldStageName:
		return m.StageName()
	case jobstagelog.FieldStatus:
		return m.Status()
	case jobstagelog.FieldStartTime:
		return m.StartTime()
	case jobstagelog.FieldEndTime:
		return m.EndTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobStageLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobstagelog.FieldJobID:
		return m.OldJobID(ctx)
	case jobstagelog.FieldStageName:
		return m.OldStageName(ctx)
	case jobstagelog.FieldStatus:
		return m.OldStatus(ctx)
	case jobstagelog.FieldStartTime:
		return m.OldStartTime(ctx)
	case jobstagelog.FieldEndTime:
		return m.OldEndTime(ctx)
	}
	return nil, fmt.Errorf("unknown JobStageLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStageLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobstagelog.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobstagelog.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case jobstagelog.FieldStatus:
		v, ok := value.(jobstagelog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobstagelog.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case jobstagelog.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown JobStageLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobStageLogMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobStageLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStageLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobStageLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobStageLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobstagelog.FieldStartTime) {
		fields = append(fields, jobstagelog.FieldStartTime)
	}
	if m.FieldCleared(jobstagelog.FieldEndTime) {
		fields = append(fields, jobstagelog.FieldEndTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobStageLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobStageLogMutation) ClearField(name string) error {
	switch name {
	case jobstagelog.FieldStartTime:
		m.ClearStartTime()
		return nil
	case jobstagelog.FieldEndTime:
		m.ClearEndTime()
		return nil
	}
	return fmt.Errorf("unknown JobStageLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobStageLogMutation) ResetField(name string) error {
	switch name {
	case jobstagelog.FieldJobID:
		m.ResetJobID()
		return nil
	case jobstagelog.FieldStageName:
		m.ResetStageName()
		return nil
	case jobstagelog.FieldStatus:
		m.ResetStatus()
		return nil
	case jobstagelog.FieldStartTime:
		m.ResetStartTime()
		return nil
	case jobstagelog.FieldEndTime:
		m.ResetEndTime()
		return nil
	}
	return fmt.Errorf("unknown JobStageLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobStageLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobstagelog.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobStageLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobstagelog.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobStageLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobStageLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobStageLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobstagelog.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobStageLogMutation) EdgeCleared(name string) bool {
	switch name {
	case jobstagelog.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobStageLogMutation) ClearEdge(name string) error {
	switch name {
	case jobstagelog.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobStageLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobStageLogMutation) ResetEdge(name string) error {
	switch name {
	case jobstagelog.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobStageLog edge %s", name)
}

// SourceMaterialMutation represents an operation that mutates the SourceMaterial nodes in the graph.
type SourceMaterialMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	source_type             *string
	original_filename       *string
	storage_path            *string
	file_size_bytes         *int64
	addfile_size_bytes      *int64
	status                  *sourcematerial.Status
	individual_summary      *string
	output_artifacts        *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	job                     *int
	clearedjob              bool
	speaker_segments        map[int]struct{}
	removedspeaker_segments map[int]struct{}
	clearedspeaker_segments bool
	done                    bool
	oldValue                func(context.Context) (*SourceMaterial, error)
	predicates              []predicate.SourceMaterial
}

var _ ent.Mutation = (*SourceMaterialMutation)(nil)

// sourcematerialOption allows management of the mutation configuration using functional options.
type sourcematerialOption func(*SourceMaterialMutation)

// newSourceMaterialMutation creates new mutation for the SourceMaterial entity.
func newSourceMaterialMutation(c config, op Op, opts ...sourcematerialOption) *SourceMaterialMutation {
	m := &SourceMaterialMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceMaterial,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceMaterialID sets the ID field of the mutation.
func withSourceMaterialID(id int) sourcematerialOption {
	return func(m *SourceMaterialMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceMaterial
		)
		m.oldValue = func(ctx context.Context) (*SourceMaterial, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceMaterial.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceMaterial sets the old SourceMaterial of the mutation.
func withSourceMaterial(node *SourceMaterial) sourcematerialOption {
	return func(m *SourceMaterialMutation) {
		m.oldValue = func(context.Context) (*SourceMaterial, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMaterialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMaterialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMaterialMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMaterialMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceMaterial.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *SourceMaterialMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SourceMaterialMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldJobID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SourceMaterialMutation) ResetJobID() {
	m.job = nil
}

// SetSourceType sets the "source_type" field.
func (m *SourceMaterialMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *SourceMaterialMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *SourceMaterialMutation) ResetSourceType() {
	m.source_type = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *SourceMaterialMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *SourceMaterialMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldOriginalFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *SourceMaterialMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[sourcematerial.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *SourceMaterialMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[sourcematerial.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *SourceMaterialMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, sourcematerial.FieldOriginalFilename)
}

// SetStoragePath sets the "storage_path" field.
func (m *SourceMaterialMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *SourceMaterialMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *SourceMaterialMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *SourceMaterialMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *SourceMaterialMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldFileSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *SourceMaterialMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *SourceMaterialMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *SourceMaterialMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[sourcematerial.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *SourceMaterialMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[sourcematerial.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *SourceMaterialMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, sourcematerial.FieldFileSizeBytes)
}

// SetStatus sets the "status" field.
func (m *SourceMaterialMutation) SetStatus(s sourcematerial.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SourceMaterialMutation) Status() (r sourcematerial.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldStatus(ctx context.Context) (v sourcematerial.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SourceMaterialMutation) ResetStatus() {
	m.status = nil
}

// SetIndividualSummary sets the "individual_summary" field.
func (m *SourceMaterialMutation) SetIndividualSummary(s string) {
	m.individual_summary = &s
}

// IndividualSummary returns the value of the "individual_summary" field in the mutation.
func (m *SourceMaterialMutation) IndividualSummary() (r string, exists bool) {
	v := m.individual_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldIndividualSummary returns the old "individual_summary" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldIndividualSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndividualSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndividualSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndividualSummary: %w", err)
	}
	return oldValue.IndividualSummary, nil
}

// ClearIndividualSummary clears the value of the "individual_summary" field.
func (m *SourceMaterialMutation) ClearIndividualSummary() {
	m.individual_summary = nil
	m.clearedFields[sourcematerial.FieldIndividualSummary] = struct{}{}
}

// IndividualSummaryCleared returns if the "individual_summary" field was cleared in this mutation.
func (m *SourceMaterialMutation) IndividualSummaryCleared() bool {
	_, ok := m.clearedFields[sourcematerial.FieldIndividualSummary]
	return ok
}

// ResetIndividualSummary resets all changes to the "individual_summary" field.
func (m *SourceMaterialMutation) ResetIndividualSummary() {
	m.individual_summary = nil
	delete(m.clearedFields, sourcematerial.FieldIndividualSummary)
}

// SetOutputArtifacts sets the "output_artifacts" field.
func (m *SourceMaterialMutation) SetOutputArtifacts(value map[string]interface{}) {
	m.output_artifacts = &value
}

// OutputArtifacts returns the value of the "output_artifacts" field in the mutation.
func (m *SourceMaterialMutation) OutputArtifacts() (r map[string]interface{}, exists bool) {
	v := m.output_artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputArtifacts returns the old "output_artifacts" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldOutputArtifacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputArtifacts: %w", err)
	}
	return oldValue.OutputArtifacts, nil
}

// ClearOutputArtifacts clears the value of the "output_artifacts" field.
func (m *SourceMaterialMutation) ClearOutputArtifacts() {
	m.output_artifacts = nil
	m.clearedFields[sourcematerial.FieldOutputArtifacts] = struct{}{}
}

// OutputArtifactsCleared returns if the "output_artifacts" field was cleared in this mutation.
func (m *SourceMaterialMutation) OutputArtifactsCleared() bool {
	_, ok := m.clearedFields[sourcematerial.FieldOutputArtifacts]
	return ok
}

// ResetOutputArtifacts resets all changes to the "output_artifacts" field.
func (m *SourceMaterialMutation) ResetOutputArtifacts() {
	m.output_artifacts = nil
	delete(m.clearedFields, sourcematerial.FieldOutputArtifacts)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMaterialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMaterialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SourceMaterial entity.
// If the SourceMaterial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMaterialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceMaterialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the SummaryJob entity.
func (m *SourceMaterialMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[sourcematerial.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the SummaryJob entity was cleared.
func (m *SourceMaterialMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SourceMaterialMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SourceMaterialMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddSpeakerSegmentIDs adds the "speaker_segments" edge to the SpeakerSegment entity by ids.
func (m *SourceMaterialMutation) AddSpeakerSegmentIDs(ids ...int) {
	if m.speaker_segments == nil {
		m.speaker_segments = make(map[int]struct{})
	}
	for i := range ids {
		m.speaker_segments[ids[i]] = struct{}{}
	}
}

// ClearSpeakerSegments clears the "speaker_segments" edge to the SpeakerSegment entity.
func (m *SourceMaterialMutation) ClearSpeakerSegments() {
	m.clearedspeaker_segments = true
}

// SpeakerSegmentsCleared reports if the "speaker_segments" edge to the SpeakerSegment entity was cleared.
func (m *SourceMaterialMutation) SpeakerSegmentsCleared() bool {
	return m.clearedspeaker_segments
}

// RemoveSpeakerSegmentIDs removes the "speaker_segments" edge to the SpeakerSegment entity by IDs.
func (m *SourceMaterialMutation) RemoveSpeakerSegmentIDs(ids ...int) {
	if m.removedspeaker_segments == nil {
		m.removedspeaker_segments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.speaker_segments, ids[i])
		m.removedspeaker_segments[ids[i]] = struct{}{}
	}
}

// RemovedSpeakerSegments returns the removed IDs of the "speaker_segments" edge to the SpeakerSegment entity.
func (m *SourceMaterialMutation) RemovedSpeakerSegmentsIDs() (ids []int) {
	for id := range m.removedspeaker_segments {
		ids = append(ids, id)
	}
	return
}

// SpeakerSegmentsIDs returns the "speaker_segments" edge IDs in the mutation.
func (m *SourceMaterialMutation) SpeakerSegmentsIDs() (ids []int) {
	for id := range m.speaker_segments {
		ids = append(ids, id)
	}
	return
}

// ResetSpeakerSegments resets all changes to the "speaker_segments" edge.
func (m *SourceMaterialMutation) ResetSpeakerSegments() {
	m.speaker_segments = nil
	m.clearedspeaker_segments = false
	m.removedspeaker_segments = nil
}

// Where appends a list predicates to the SourceMaterialMutation builder.
func (m *SourceMaterialMutation) Where(ps ...predicate.SourceMaterial) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMaterialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMaterialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceMaterial, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMaterialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMaterialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceMaterial).
func (m *SourceMaterialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMaterialMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, sourcematerial.FieldJobID)
	}
	if m.source_type != nil {
		fields = append(fields, sourcematerial.FieldSourceType)
	}
	if m.original_filename != nil {
		fields = append(fields, sourcematerial.FieldOriginalFilename)
	}
	if m.storage_path != nil {
		fields = append(fields, sourcematerial.FieldStoragePath)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, sourcematerial.FieldFileSizeBytes)
	}
	if m.status != nil {
		fields = append(fields, sourcematerial.FieldStatus)
	}
	if m.individual_summary != nil {
		fields = append(fields, sourcematerial.FieldIndividualSummary)
	}
	if m.output_artifacts != nil {
		fields = append(fields, sourcematerial.FieldOutputArtifacts)
	}
	if m.created_at != nil {
		fields = append(fields, sourcematerial.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMaterialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcematerial.FieldJobID:
		return m.JobID()
	case sourcematerial.FieldSourceType:
		return m.SourceType()
	case sourcematerial.FieldOriginalFilename:
		return m.OriginalFilename()
	case sourcematerial.FieldStoragePath:
		return m.StoragePath()
	case sourcematerial.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case sourcematerial.FieldStatus:
		return m.Status()
	case sourcematerial.FieldIndividualSummary:
		return m.IndividualSummary()
	case sourcematerial.FieldOutputArtifacts:
		return m.OutputArtifacts()
	case sourcematerial.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMaterialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcematerial.FieldJobID:
		return m.OldJobID(ctx)
	case sourcematerial.FieldSourceType:
		return m.OldSourceType(ctx)
	case sourcematerial.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case sourcematerial.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case sourcematerial.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case sourcematerial.FieldStatus:
		return m.OldStatus(ctx)
	case sourcematerial.FieldIndividualSummary:
		return m.OldIndividualSummary(ctx)
	case sourcematerial.FieldOutputArtifacts:
		return m.OldOutputArtifacts(ctx)
	case sourcematerial.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceMaterial field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMaterialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcematerial.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case sourcematerial.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case sourcematerial.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case sourcematerial.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case sourcematerial.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case sourcematerial.FieldStatus:
		v, ok := value.(sourcematerial.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sourcematerial.FieldIndividualSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndividualSummary(v)
		return nil
	case sourcematerial.FieldOutputArtifacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputArtifacts(v)
		return nil
	case sourcematerial.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMaterialMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size_bytes != nil {
		fields = append(fields, sourcematerial.FieldFileSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMaterialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcematerial.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMaterialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcematerial.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMaterialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourcematerial.FieldOriginalFilename) {
		fields = append(fields, sourcematerial.FieldOriginalFilename)
	}
	if m.FieldCleared(sourcematerial.FieldFileSizeBytes) {
		fields = append(fields, sourcematerial.FieldFileSizeBytes)
	}
	if m.FieldCleared(sourcematerial.FieldIndividualSummary) {
		fields = append(fields, sourcematerial.FieldIndividualSummary)
	}
	if m.FieldCleared(sourcematerial.FieldOutputArtifacts) {
		fields = append(fields, sourcematerial.FieldOutputArtifacts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMaterialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMaterialMutation) ClearField(name string) error {
	switch name {
	case sourcematerial.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case sourcematerial.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	case sourcematerial.FieldIndividualSummary:
		m.ClearIndividualSummary()
		return nil
	case sourcematerial.FieldOutputArtifacts:
		m.ClearOutputArtifacts()
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMaterialMutation) ResetField(name string) error {
	switch name {
	case sourcematerial.FieldJobID:
		m.ResetJobID()
		return nil
	case sourcematerial.FieldSourceType:
		m.ResetSourceType()
		return nil
	case sourcematerial.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case sourcematerial.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case sourcematerial.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case sourcematerial.FieldStatus:
		m.ResetStatus()
		return nil
	case sourcematerial.FieldIndividualSummary:
		m.ResetIndividualSummary()
		return nil
	case sourcematerial.FieldOutputArtifacts:
		m.ResetOutputArtifacts()
		return nil
	case sourcematerial.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMaterialMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, sourcematerial.EdgeJob)
	}
	if m.speaker_segments != nil {
		edges = append(edges, sourcematerial.EdgeSpeakerSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMaterialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcematerial.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case sourcematerial.EdgeSpeakerSegments:
		ids := make([]ent.Value, 0, len(m.speaker_segments))
		for id := range m.speaker_segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMaterialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedspeaker_segments != nil {
		edges = append(edges, sourcematerial.EdgeSpeakerSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMaterialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourcematerial.EdgeSpeakerSegments:
		ids := make([]ent.Value, 0, len(m.removedspeaker_segments))
		for id := range m.removedspeaker_segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMaterialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, sourcematerial.EdgeJob)
	}
	if m.clearedspeaker_segments {
		edges = append(edges, sourcematerial.EdgeSpeakerSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMaterialMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcematerial.EdgeJob:
		return m.clearedjob
	case sourcematerial.EdgeSpeakerSegments:
		return m.clearedspeaker_segments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMaterialMutation) ClearEdge(name string) error {
	switch name {
	case sourcematerial.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMaterialMutation) ResetEdge(name string) error {
	switch name {
	case sourcematerial.EdgeJob:
		m.ResetJob()
		return nil
	case sourcematerial.EdgeSpeakerSegments:
		m.ResetSpeakerSegments()
		return nil
	}
	return fmt.Errorf("unknown SourceMaterial edge %s", name)
}

// SpeakerSegmentMutation represents an operation that mutates the SpeakerSegment nodes in the graph.
type SpeakerSegmentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	speaker_label         *string
	start_time_seconds    *float64
	addstart_time_seconds *float64
	end_time_seconds      *float64
	addend_time_seconds   *float64
	text                  *string
	clearedFields         map[string]struct{}
	material              *int
	clearedmaterial       bool
	done                  bool
	oldValue              func(context.Context) (*SpeakerSegment, error)
	predicates            []predicate.SpeakerSegment
}

var _ ent.Mutation = (*SpeakerSegmentMutation)(nil)

// speakersegmentOption allows management of the mutation configuration using functional options.
type speakersegmentOption func(*SpeakerSegmentMutation)

// newSpeakerSegmentMutation creates new mutation for the SpeakerSegment entity.
func newSpeakerSegmentMutation(c config, op Op, opts ...speakersegmentOption) *SpeakerSegmentMutation {
	m := &SpeakerSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeSpeakerSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpeakerSegmentID sets the ID field of the mutation.
func withSpeakerSegmentID(id int) speakersegmentOption {
	return func(m *SpeakerSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *SpeakerSegment
		)
		m.oldValue = func(ctx context.Context) (*SpeakerSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpeakerSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpeakerSegment sets the old SpeakerSegment of the mutation.
func withSpeakerSegment(node *SpeakerSegment) speakersegmentOption {
	return func(m *SpeakerSegmentMutation) {
		m.oldValue = func(context.Context) (*SpeakerSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpeakerSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpeakerSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpeakerSegmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpeakerSegmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpeakerSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMaterialID sets the "material_id" field.
func (m *SpeakerSegmentMutation) SetMaterialID(i int) {
	m.material = &i
}

// MaterialID returns the value of the "material_id" field in the mutation.
func (m *SpeakerSegmentMutation) MaterialID() (r int, exists bool) {
	v := m.material
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialID returns the old "material_id" field's value of the SpeakerSegment entity.
// If the SpeakerSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakerSegmentMutation) OldMaterialID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialID: %w", err)
	}
	return oldValue.MaterialID, nil
}

// ResetMaterialID resets all changes to the "material_id" field.
func (m *SpeakerSegmentMutation) ResetMaterialID() {
	m.material = nil
}

// SetSpeakerLabel sets the "speaker_label" field.
func (m *SpeakerSegmentMutation) SetSpeakerLabel(s string) {
	m.speaker_label = &s
}

// SpeakerLabel returns the value of the "speaker_label" field in the mutation.
func (m *SpeakerSegmentMutation) SpeakerLabel() (r string, exists bool) {
	v := m.speaker_label
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerLabel returns the old "speaker_label" field's value of the SpeakerSegment entity.
// If the SpeakerSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakerSegmentMutation) OldSpeakerLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerLabel: %w", err)
	}
	return oldValue.SpeakerLabel, nil
}

// ClearSpeakerLabel clears the value of the "speaker_label" field.
func (m *SpeakerSegmentMutation) ClearSpeakerLabel() {
	m.speaker_label = nil
	m.clearedFields[speakersegment.FieldSpeakerLabel] = struct{}{}
}

// SpeakerLabelCleared returns if the "speaker_label" field was cleared in this mutation.
func (m *SpeakerSegmentMutation) SpeakerLabelCleared() bool {
	_, ok := m.clearedFields[speakersegment.FieldSpeakerLabel]
	return ok
}

// ResetSpeakerLabel resets all changes to the "speaker_label" field.
func (m *SpeakerSegmentMutation) ResetSpeakerLabel() {
	m.speaker_label = nil
	delete(m.clearedFields, speakersegment.FieldSpeakerLabel)
}

// SetStartTimeSeconds sets the "start_time_seconds" field.
func (m *SpeakerSegmentMutation) SetStartTimeSeconds(f float64) {
	m.start_time_seconds = &f
	m.addstart_time_seconds = nil
}

// StartTimeSeconds returns the value of the "start_time_seconds" field in the mutation.
func (m *SpeakerSegmentMutation) StartTimeSeconds() (r float64, exists bool) {
	v := m.start_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTimeSeconds returns the old "start_time_seconds" field's value of the SpeakerSegment entity.
// If the SpeakerSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakerSegmentMutation) OldStartTimeSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTimeSeconds: %w", err)
	}
	return oldValue.StartTimeSeconds, nil
}

// AddStartTimeSeconds adds f to the "start_time_seconds" field.
func (m *SpeakerSegmentMutation) AddStartTimeSeconds(f float64) {
	if m.addstart_time_seconds != nil {
		*m.addstart_time_seconds += f
	} else {
		m.addstart_time_seconds = &f
	}
}

// AddedStartTimeSeconds returns the value that was added to the "start_time_seconds" field in this mutation.
func (m *SpeakerSegmentMutation) AddedStartTimeSeconds() (r float64, exists bool) {
	v := m.addstart_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTimeSeconds resets all changes to the "start_time_seconds" field.
func (m *SpeakerSegmentMutation) ResetStartTimeSeconds() {
	m.start_time_seconds = nil
	m.addstart_time_seconds = nil
}

// SetEndTimeSeconds sets the "end_time_seconds" field.
func (m *SpeakerSegmentMutation) SetEndTimeSeconds(f float64) {
	m.end_time_seconds = &f
	m.addend_time_seconds = nil
}

// EndTimeSeconds returns the value of the "end_time_seconds" field in the mutation.
func (m *SpeakerSegmentMutation) EndTimeSeconds() (r float64, exists bool) {
	v := m.end_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTimeSeconds returns the old "end_time_seconds" field's value of the SpeakerSegment entity.
// If the SpeakerSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakerSegmentMutation) OldEndTimeSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTimeSeconds: %w", err)
	}
	return oldValue.EndTimeSeconds, nil
}

// AddEndTimeSeconds adds f to the "end_time_seconds" field.
func (m *SpeakerSegmentMutation) AddEndTimeSeconds(f float64) {
	if m.addend_time_seconds != nil {
		*m.addend_time_seconds += f
	} else {
		m.addend_time_seconds = &f
	}
}

// AddedEndTimeSeconds returns the value that was added to the "end_time_seconds" field in this mutation.
func (m *SpeakerSegmentMutation) AddedEndTimeSeconds() (r float64, exists bool) {
	v := m.addend_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndTimeSeconds resets all changes to the "end_time_seconds" field.
func (m *SpeakerSegmentMutation) ResetEndTimeSeconds() {
	m.end_time_seconds = nil
	m.addend_time_seconds = nil
}

// SetText sets the "text" field.
func (m *SpeakerSegmentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SpeakerSegmentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the SpeakerSegment entity.
// If the SpeakerSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakerSegmentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SpeakerSegmentMutation) ResetText() {
	m.text = nil
}

// ClearMaterial clears the "material" edge to the SourceMaterial entity.
func (m *SpeakerSegmentMutation) ClearMaterial() {
	m.clearedmaterial = true
	m.clearedFields[speakersegment.FieldMaterialID] = struct{}{}
}

// MaterialCleared reports if the "material" edge to the SourceMaterial entity was cleared.
func (m *SpeakerSegmentMutation) MaterialCleared() bool {
	return m.clearedmaterial
}

// MaterialIDs returns the "material" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MaterialID instead. It exists only for internal usage by the builders.
func (m *SpeakerSegmentMutation) MaterialIDs() (ids []int) {
	if id := m.material; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMaterial resets all changes to the "material" edge.
func (m *SpeakerSegmentMutation) ResetMaterial() {
	m.material = nil
	m.clearedmaterial = false
}

// Where appends a list predicates to the SpeakerSegmentMutation builder.
func (m *SpeakerSegmentMutation) Where(ps ...predicate.SpeakerSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpeakerSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpeakerSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpeakerSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpeakerSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpeakerSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpeakerSegment).
func (m *SpeakerSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpeakerSegmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.material != nil {
		fields = append(fields, speakersegment.FieldMaterialID)
	}
	if m.speaker_label != nil {
		fields = append(fields, speakersegment.FieldSpeakerLabel)
	}
	if m.start_time_seconds != nil {
		fields = append(fields, speakersegment.FieldStartTimeSeconds)
	}
	if m.end_time_seconds != nil {
		fields = append(fields, speakersegment.FieldEndTimeSeconds)
	}
	if m.text != nil {
		fields = append(fields, speakersegment.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpeakerSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case speakersegment.FieldMaterialID:
		return m.MaterialID()
	case speakersegment.FieldSpeakerLabel:
		return m.SpeakerLabel()
	case speakersegment.FieldStartTimeSeconds:
		return m.StartTimeSeconds()
	case speakersegment.FieldEndTimeSeconds:
		return m.EndTimeSeconds()
	case speakersegment.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpeakerSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case speakersegment.FieldMaterialID:
		return m.OldMaterialID(ctx)
	case speakersegment.FieldSpeakerLabel:
		return m.OldSpeakerLabel(ctx)
	case speakersegment.FieldStartTimeSeconds:
		return m.OldStartTimeSeconds(ctx)
	case speakersegment.FieldEndTimeSeconds:
		return m.OldEndTimeSeconds(ctx)
	case speakersegment.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown SpeakerSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpeakerSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case speakersegment.FieldMaterialID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialID(v)
		return nil
	case speakersegment.FieldSpeakerLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerLabel(v)
		return nil
	case speakersegment.FieldStartTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTimeSeconds(v)
		return nil
	case speakersegment.FieldEndTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTimeSeconds(v)
		return nil
	case speakersegment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpeakerSegmentMutation) AddedFields() []string {
	var fields []string
	if m.addstart_time_seconds != nil {
		fields = append(fields, speakersegment.FieldStartTimeSeconds)
	}
	if m.addend_time_seconds != nil {
		fields = append(fields, speakersegment.FieldEndTimeSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpeakerSegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case speakersegment.FieldStartTimeSeconds:
		return m.AddedStartTimeSeconds()
	case speakersegment.FieldEndTimeSeconds:
		return m.AddedEndTimeSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpeakerSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case speakersegment.FieldStartTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTimeSeconds(v)
		return nil
	case speakersegment.FieldEndTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpeakerSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(speakersegment.FieldSpeakerLabel) {
		fields = append(fields, speakersegment.FieldSpeakerLabel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpeakerSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpeakerSegmentMutation) ClearField(name string) error {
	switch name {
	case speakersegment.FieldSpeakerLabel:
		m.ClearSpeakerLabel()
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpeakerSegmentMutation) ResetField(name string) error {
	switch name {
	case speakersegment.FieldMaterialID:
		m.ResetMaterialID()
		return nil
	case speakersegment.FieldSpeakerLabel:
		m.ResetSpeakerLabel()
		return nil
	case speakersegment.FieldStartTimeSeconds:
		m.ResetStartTimeSeconds()
		return nil
	case speakersegment.FieldEndTimeSeconds:
		m.ResetEndTimeSeconds()
		return nil
	case speakersegment.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpeakerSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.material != nil {
		edges = append(edges, speakersegment.EdgeMaterial)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpeakerSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case speakersegment.EdgeMaterial:
		if id := m.material; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpeakerSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpeakerSegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpeakerSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmaterial {
		edges = append(edges, speakersegment.EdgeMaterial)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpeakerSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case speakersegment.EdgeMaterial:
		return m.clearedmaterial
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpeakerSegmentMutation) ClearEdge(name string) error {
	switch name {
	case speakersegment.EdgeMaterial:
		m.ClearMaterial()
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpeakerSegmentMutation) ResetEdge(name string) error {
	switch name {
	case speakersegment.EdgeMaterial:
		m.ResetMaterial()
		return nil
	}
	return fmt.Errorf("unknown SpeakerSegment edge %s", name)
}

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	description         *string
	is_korean_only      *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	workspace           *int
	clearedworkspace    bool
	summary_jobs        map[int]struct{}
	removedsummary_jobs map[int]struct{}
	clearedsummary_jobs bool
	done                bool
	oldValue            func(context.Context) (*Subject, error)
	predicates          []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SubjectMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SubjectMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SubjectMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *SubjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SubjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SubjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[subject.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SubjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[subject.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SubjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, subject.FieldDescription)
}

// SetIsKoreanOnly sets the "is_korean_only" field.
func (m *SubjectMutation) SetIsKoreanOnly(b bool) {
	m.is_korean_only = &b
}

// IsKoreanOnly returns the value of the "is_korean_only" field in the mutation.
func (m *SubjectMutation) IsKoreanOnly() (r bool, exists bool) {
	v := m.is_korean_only
	if v == nil {
		return
	}
	return *v, true
}

// OldIsKoreanOnly returns the old "is_korean_only" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldIsKoreanOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsKoreanOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsKoreanOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsKoreanOnly: %w", err)
	}
	return oldValue.IsKoreanOnly, nil
}

// ResetIsKoreanOnly resets all changes to the "is_korean_only" field.
func (m *SubjectMutation) ResetIsKoreanOnly() {
	m.is_korean_only = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *SubjectMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[subject.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *SubjectMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *SubjectMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *SubjectMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddSummaryJobIDs adds the "summary_jobs" edge to the SummaryJob entity by ids.
func (m *SubjectMutation) AddSummaryJobIDs(ids ...int) {
	if m.summary_jobs == nil {
		m.summary_jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.summary_jobs[ids[i]] = struct{}{}
	}
}

// ClearSummaryJobs clears the "summary_jobs" edge to the SummaryJob entity.
func (m *SubjectMutation) ClearSummaryJobs() {
	m.clearedsummary_jobs = true
}

// SummaryJobsCleared reports if the "summary_jobs" edge to the SummaryJob entity was cleared.
func (m *SubjectMutation) SummaryJobsCleared() bool {
	return m.clearedsummary_jobs
}

// RemoveSummaryJobIDs removes the "summary_jobs" edge to the SummaryJob entity by IDs.
func (m *SubjectMutation) RemoveSummaryJobIDs(ids ...int) {
	if m.removedsummary_jobs == nil {
		m.removedsummary_jobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.summary_jobs, ids[i])
		m.removedsummary_jobs[ids[i]] = struct{}{}
	}
}

// RemovedSummaryJobs returns the removed IDs of the "summary_jobs" edge to the SummaryJob entity.
func (m *SubjectMutation) RemovedSummaryJobsIDs() (ids []int) {
	for id := range m.removedsummary_jobs {
		ids = append(ids, id)
	}
	return
}

// SummaryJobsIDs returns the "summary_jobs" edge IDs in the mutation.
func (m *SubjectMutation) SummaryJobsIDs() (ids []int) {
	for id := range m.summary_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetSummaryJobs resets all changes to the "summary_jobs" edge.
func (m *SubjectMutation) ResetSummaryJobs() {
	m.summary_jobs = nil
	m.clearedsummary_jobs = false
	m.removedsummary_jobs = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace != nil {
		fields = append(fields, subject.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, subject.FieldName)
	}
	if m.description != nil {
		fields = append(fields, subject.FieldDescription)
	}
	if m.is_korean_only != nil {
		fields = append(fields, subject.FieldIsKoreanOnly)
	}
	if m.created_at != nil {
		fields = append(fields, subject.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldWorkspaceID:
		return m.WorkspaceID()
	case subject.FieldName:
		return m.Name()
	case subject.FieldDescription:
		return m.Description()
	case subject.FieldIsKoreanOnly:
		return m.IsKoreanOnly()
	case subject.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case subject.FieldName:
		return m.OldName(ctx)
	case subject.FieldDescription:
		return m.OldDescription(ctx)
	case subject.FieldIsKoreanOnly:
		return m.OldIsKoreanOnly(ctx)
	case subject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case subject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subject.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subject.FieldIsKoreanOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsKoreanOnly(v)
		return nil
	case subject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subject.FieldDescription) {
		fields = append(fields, subject.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	switch name {
	case subject.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case subject.FieldName:
		m.ResetName()
		return nil
	case subject.FieldDescription:
		m.ResetDescription()
		return nil
	case subject.FieldIsKoreanOnly:
		m.ResetIsKoreanOnly()
		return nil
	case subject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, subject.EdgeWorkspace)
	}
	if m.summary_jobs != nil {
		edges = append(edges, subject.EdgeSummaryJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case subject.EdgeSummaryJobs:
		ids := make([]ent.Value, 0, len(m.summary_jobs))
		for id := range m.summary_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsummary_jobs != nil {
		edges = append(edges, subject.EdgeSummaryJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeSummaryJobs:
		ids := make([]ent.Value, 0, len(m.removedsummary_jobs))
		for id := range m.removedsummary_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, subject.EdgeWorkspace)
	}
	if m.clearedsummary_jobs {
		edges = append(edges, subject.EdgeSummaryJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	switch name {
	case subject.EdgeWorkspace:
		return m.clearedworkspace
	case subject.EdgeSummaryJobs:
		return m.clearedsummary_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	switch name {
	case subject.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	switch name {
	case subject.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case subject.EdgeSummaryJobs:
		m.ResetSummaryJobs()
		return nil
	}
	return fmt.Errorf("unknown Subject edge %s", name)
}

// SummaryJobMutation represents an operation that mutates the SummaryJob nodes in the graph.
type SummaryJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	title                   *string
	status                  *summaryjob.Status
	final_summary           *string
	error_message           *string
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	subject                 *int
	clearedsubject          bool
	source_materials        map[int]struct{}
	removedsource_materials map[int]struct{}
	clearedsource_materials bool
	stage_logs              map[int]struct{}
	removedstage_logs       map[int]struct{}
	clearedstage_logs       bool
	done                    bool
	oldValue                func(context.Context) (*SummaryJob, error)
	predicates              []predicate.SummaryJob
}

var _ ent.Mutation = (*SummaryJobMutation)(nil)

// summaryjobOption allows management of the mutation configuration using functional options.
type summaryjobOption func(*SummaryJobMutation)

// newSummaryJobMutation creates new mutation for the SummaryJob entity.
func newSummaryJobMutation(c config, op Op, opts ...summaryjobOption) *SummaryJobMutation {
	m := &SummaryJobMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryJobID sets the ID field of the mutation.
func withSummaryJobID(id int) summaryjobOption {
	return func(m *SummaryJobMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryJob
		)
		m.oldValue = func(ctx context.Context) (*SummaryJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryJob sets the old SummaryJob of the mutation.
func withSummaryJob(node *SummaryJob) summaryjobOption {
	return func(m *SummaryJobMutation) {
		m.oldValue = func(context.Context) (*SummaryJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *SummaryJobMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SummaryJobMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldSubjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *SummaryJobMutation) ClearSubjectID() {
	m.subject = nil
	m.clearedFields[summaryjob.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *SummaryJobMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[summaryjob.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SummaryJobMutation) ResetSubjectID() {
	m.subject = nil
	delete(m.clearedFields, summaryjob.FieldSubjectID)
}

// SetTitle sets the "title" field.
func (m *SummaryJobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SummaryJobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SummaryJobMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *SummaryJobMutation) SetStatus(s summaryjob.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SummaryJobMutation) Status() (r summaryjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldStatus(ctx context.Context) (v summaryjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SummaryJobMutation) ResetStatus() {
	m.status = nil
}

// SetFinalSummary sets the "final_summary" field.
func (m *SummaryJobMutation) SetFinalSummary(s string) {
	m.final_summary = &s
}

// FinalSummary returns the value of the "final_summary" field in the mutation.
func (m *SummaryJobMutation) FinalSummary() (r string, exists bool) {
	v := m.final_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSummary returns the old "final_summary" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldFinalSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSummary: %w", err)
	}
	return oldValue.FinalSummary, nil
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (m *SummaryJobMutation) ClearFinalSummary() {
	m.final_summary = nil
	m.clearedFields[summaryjob.FieldFinalSummary] = struct{}{}
}

// FinalSummaryCleared returns if the "final_summary" field was cleared in this mutation.
func (m *SummaryJobMutation) FinalSummaryCleared() bool {
	_, ok := m.clearedFields[summaryjob.FieldFinalSummary]
	return ok
}

// ResetFinalSummary resets all changes to the "final_summary" field.
func (m *SummaryJobMutation) ResetFinalSummary() {
	m.final_summary = nil
	delete(m.clearedFields, summaryjob.FieldFinalSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *SummaryJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SummaryJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SummaryJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[summaryjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SummaryJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[summaryjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SummaryJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, summaryjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SummaryJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SummaryJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SummaryJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[summaryjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SummaryJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[summaryjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SummaryJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, summaryjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SummaryJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SummaryJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SummaryJob entity.
// If the SummaryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SummaryJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[summaryjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SummaryJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[summaryjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SummaryJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, summaryjob.FieldCompletedAt)
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *SummaryJobMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[summaryjob.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *SummaryJobMutation) SubjectCleared() bool {
	return m.SubjectIDCleared() || m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *SummaryJobMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *SummaryJobMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// AddSourceMaterialIDs adds the "source_materials" edge to the SourceMaterial entity by ids.
func (m *SummaryJobMutation) AddSourceMaterialIDs(ids ...int) {
	if m.source_materials == nil {
		m.source_materials = make(map[int]struct{})
	}
	for i := range ids {
		m.source_materials[ids[i]] = struct{}{}
	}
}

// ClearSourceMaterials clears the "source_materials" edge to the SourceMaterial entity.
func (m *SummaryJobMutation) ClearSourceMaterials() {
	m.clearedsource_materials = true
}

// SourceMaterialsCleared reports if the "source_materials" edge to the SourceMaterial entity was cleared.
func (m *SummaryJobMutation) SourceMaterialsCleared() bool {
	return m.clearedsource_materials
}

// RemoveSourceMaterialIDs removes the "source_materials" edge to the SourceMaterial entity by IDs.
func (m *SummaryJobMutation) RemoveSourceMaterialIDs(ids ...int) {
	if m.removedsource_materials == nil {
		m.removedsource_materials = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.source_materials, ids[i])
		m.removedsource_materials[ids[i]] = struct{}{}
	}
}

// RemovedSourceMaterials returns the removed IDs of the "source_materials" edge to the SourceMaterial entity.
func (m *SummaryJobMutation) RemovedSourceMaterialsIDs() (ids []int) {
	for id := range m.removedsource_materials {
		ids = append(ids, id)
	}
	return
}

// SourceMaterialsIDs returns the "source_materials" edge IDs in the mutation.
func (m *SummaryJobMutation) SourceMaterialsIDs() (ids []int) {
	for id := range m.source_materials {
		ids = append(ids, id)
	}
	return
}

// ResetSourceMaterials resets all changes to the "source_materials" edge.
func (m *SummaryJobMutation) ResetSourceMaterials() {
	m.source_materials = nil
	m.clearedsource_materials = false
	m.removedsource_materials = nil
}

// AddStageLogIDs adds the "stage_logs" edge to the JobStageLog entity by ids.
func (m *SummaryJobMutation) AddStageLogIDs(ids ...int) {
	if m.stage_logs == nil {
		m.stage_logs = make(map[int]struct{})
	}
	for i := range ids {
		m.stage_logs[ids[i]] = struct{}{}
	}
}

// ClearStageLogs clears the "stage_logs" edge to the JobStageLog entity.
func (m *SummaryJobMutation) ClearStageLogs() {
	m.clearedstage_logs = true
}

// StageLogsCleared reports if the "stage_logs" edge to the JobStageLog entity was cleared.
func (m *SummaryJobMutation) StageLogsCleared() bool {
	return m.clearedstage_logs
}

// RemoveStageLogIDs removes the "stage_logs" edge to the JobStageLog entity by IDs.
func (m *SummaryJobMutation) RemoveStageLogIDs(ids ...int) {
	if m.removedstage_logs == nil {
		m.removedstage_logs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stage_logs, ids[i])
		m.removedstage_logs[ids[i]] = struct{}{}
	}
}

// RemovedStageLogs returns the removed IDs of the "stage_logs" edge to the JobStageLog entity.
func (m *SummaryJobMutation) RemovedStageLogsIDs() (ids []int) {
	for id := range m.removedstage_logs {
		ids = append(ids, id)
	}
	return
}

// StageLogsIDs returns the "stage_logs" edge IDs in the mutation.
func (m *SummaryJobMutation) StageLogsIDs() (ids []int) {
	for id := range m.stage_logs {
		ids = append(ids, id)
	}
	return
}

// ResetStageLogs resets all changes to the "stage_logs" edge.
func (m *SummaryJobMutation) ResetStageLogs() {
	m.stage_logs = nil
	m.clearedstage_logs = false
	m.removedstage_logs = nil
}

// Where appends a list predicates to the SummaryJobMutation builder.
func (m *SummaryJobMutation) Where(ps ...predicate.SummaryJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryJob).
func (m *SummaryJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.subject != nil {
		fields = append(fields, summaryjob.FieldSubjectID)
	}
	if m.title != nil {
		fields = append(fields, summaryjob.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, summaryjob.FieldStatus)
	}
	if m.final_summary != nil {
		fields = append(fields, summaryjob.FieldFinalSummary)
	}
	if m.error_message != nil {
		fields = append(fields, summaryjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, summaryjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, summaryjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, summaryjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summaryjob.FieldSubjectID:
		return m.SubjectID()
	case summaryjob.FieldTitle:
		return m.Title()
	case summaryjob.FieldStatus:
		return m.Status()
	case summaryjob.FieldFinalSummary:
		return m.FinalSummary()
	case summaryjob.FieldErrorMessage:
		return m.ErrorMessage()
	case summaryjob.FieldCreatedAt:
		return m.CreatedAt()
	case summaryjob.FieldStartedAt:
		return m.StartedAt()
	case summaryjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summaryjob.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case summaryjob.FieldTitle:
		return m.OldTitle(ctx)
	case summaryjob.FieldStatus:
		return m.OldStatus(ctx)
	case summaryjob.FieldFinalSummary:
		return m.OldFinalSummary(ctx)
	case summaryjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case summaryjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case summaryjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case summaryjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summaryjob.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case summaryjob.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case summaryjob.FieldStatus:
		v, ok := value.(summaryjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case summaryjob.FieldFinalSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSummary(v)
		return nil
	case summaryjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case summaryjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case summaryjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case summaryjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryJobMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SummaryJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summaryjob.FieldSubjectID) {
		fields = append(fields, summaryjob.FieldSubjectID)
	}
	if m.FieldCleared(summaryjob.FieldFinalSummary) {
		fields = append(fields, summaryjob.FieldFinalSummary)
	}
	if m.FieldCleared(summaryjob.FieldErrorMessage) {
		fields = append(fields, summaryjob.FieldErrorMessage)
	}
	if m.FieldCleared(summaryjob.FieldStartedAt) {
		fields = append(fields, summaryjob.FieldStartedAt)
	}
	if m.FieldCleared(summaryjob.FieldCompletedAt) {
		fields = append(fields, summaryjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryJobMutation) ClearField(name string) error {
	switch name {
	case summaryjob.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	case summaryjob.FieldFinalSummary:
		m.ClearFinalSummary()
		return nil
	case summaryjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case summaryjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case summaryjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SummaryJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryJobMutation) ResetField(name string) error {
	switch name {
	case summaryjob.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case summaryjob.FieldTitle:
		m.ResetTitle()
		return nil
	case summaryjob.FieldStatus:
		m.ResetStatus()
		return nil
	case summaryjob.FieldFinalSummary:
		m.ResetFinalSummary()
		return nil
	case summaryjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case summaryjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case summaryjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case summaryjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SummaryJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.subject != nil {
		edges = append(edges, summaryjob.EdgeSubject)
	}
	if m.source_materials != nil {
		edges = append(edges, summaryjob.EdgeSourceMaterials)
	}
	if m.stage_logs != nil {
		edges = append(edges, summaryjob.EdgeStageLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summaryjob.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case summaryjob.EdgeSourceMaterials:
		ids := make([]ent.Value, 0, len(m.source_materials))
		for id := range m.source_materials {
			ids = append(ids, id)
		}
		return ids
	case summaryjob.EdgeStageLogs:
		ids := make([]ent.Value, 0, len(m.stage_logs))
		for id := range m.stage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsource_materials != nil {
		edges = append(edges, summaryjob.EdgeSourceMaterials)
	}
	if m.removedstage_logs != nil {
		edges = append(edges, summaryjob.EdgeStageLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case summaryjob.EdgeSourceMaterials:
		ids := make([]ent.Value, 0, len(m.removedsource_materials))
		for id := range m.removedsource_materials {
			ids = append(ids, id)
		}
		return ids
	case summaryjob.EdgeStageLogs:
		ids := make([]ent.Value, 0, len(m.removedstage_logs))
		for id := range m.removedstage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsubject {
		edges = append(edges, summaryjob.EdgeSubject)
	}
	if m.clearedsource_materials {
		edges = append(edges, summaryjob.EdgeSourceMaterials)
	}
	if m.clearedstage_logs {
		edges = append(edges, summaryjob.EdgeStageLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryJobMutation) EdgeCleared(name string) bool {
	switch name {
	case summaryjob.EdgeSubject:
		return m.clearedsubject
	case summaryjob.EdgeSourceMaterials:
		return m.clearedsource_materials
	case summaryjob.EdgeStageLogs:
		return m.clearedstage_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryJobMutation) ClearEdge(name string) error {
	switch name {
	case summaryjob.EdgeSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown SummaryJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryJobMutation) ResetEdge(name string) error {
	switch name {
	case summaryjob.EdgeSubject:
		m.ResetSubject()
		return nil
	case summaryjob.EdgeSourceMaterials:
		m.ResetSourceMaterials()
		return nil
	case summaryjob.EdgeStageLogs:
		m.ResetStageLogs()
		return nil
	}
	return fmt.Errorf("unknown SummaryJob edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	description     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	subjects        map[int]struct{}
	removedsubjects map[int]struct{}
	clearedsubjects bool
	done            bool
	oldValue        func(context.Context) (*Workspace, error)
	predicates      []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id int) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkspaceMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkspaceMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkspaceMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workspace.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkspaceMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workspace.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkspaceMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workspace.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by ids.
func (m *WorkspaceMutation) AddSubjectIDs(ids ...int) {
	if m.subjects == nil {
		m.subjects = make(map[int]struct{})
	}
	for i := range ids {
		m.subjects[ids[i]] = struct{}{}
	}
}

// ClearSubjects clears the "subjects" edge to the Subject entity.
func (m *WorkspaceMutation) ClearSubjects() {
	m.clearedsubjects = true
}

// SubjectsCleared reports if the "subjects" edge to the Subject entity was cleared.
func (m *WorkspaceMutation) SubjectsCleared() bool {
	return m.clearedsubjects
}

// RemoveSubjectIDs removes the "subjects" edge to the Subject entity by IDs.
func (m *WorkspaceMutation) RemoveSubjectIDs(ids ...int) {
	if m.removedsubjects == nil {
		m.removedsubjects = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subjects, ids[i])
		m.removedsubjects[ids[i]] = struct{}{}
	}
}

// RemovedSubjects returns the removed IDs of the "subjects" edge to the Subject entity.
func (m *WorkspaceMutation) RemovedSubjectsIDs() (ids []int) {
	for id := range m.removedsubjects {
		ids = append(ids, id)
	}
	return
}

// SubjectsIDs returns the "subjects" edge IDs in the mutation.
func (m *WorkspaceMutation) SubjectsIDs() (ids []int) {
	for id := range m.subjects {
		ids = append(ids, id)
	}
	return
}

// ResetSubjects resets all changes to the "subjects" edge.
func (m *WorkspaceMutation) ResetSubjects() {
	m.subjects = nil
	m.clearedsubjects = false
	m.removedsubjects = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workspace.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldDescription:
		return m.Description()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldDescription:
		return m.OldDescription(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspace.FieldDescription) {
		fields = append(fields, workspace.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	switch name {
	case workspace.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldDescription:
		m.ResetDescription()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.subjects != nil {
		edges = append(edges, workspace.EdgeSubjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.subjects))
		for id := range m.subjects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsubjects != nil {
		edges = append(edges, workspace.EdgeSubjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.removedsubjects))
		for id := range m.removedsubjects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubjects {
		edges = append(edges, workspace.EdgeSubjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeSubjects:
		return m.clearedsubjects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeSubjects:
		m.ResetSubjects()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
