// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SummaryJobQuery is the builder for querying SummaryJob entities.
type SummaryJobQuery struct {
	config
	ctx                 *QueryContext
	order               []summaryjob.OrderOption
	inters              []Interceptor
	predicates          []predicate.SummaryJob
	withSubject         *SubjectQuery
	withSourceMaterials *SourceMaterialQuery
	withStageLogs       *JobStageLogQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SummaryJobQuery builder.
func (_q *SummaryJobQuery) Where(ps ...predicate.SummaryJob) *SummaryJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SummaryJobQuery) Limit(limit int) *SummaryJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SummaryJobQuery) Offset(offset int) *SummaryJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SummaryJobQuery) Unique(unique bool) *SummaryJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SummaryJobQuery) Order(o ...summaryjob.OrderOption) *SummaryJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubject chains the current query on the "subject" edge.
func (_q *SummaryJobQuery) QuerySubject() *SubjectQuery {
	query := (&SubjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, selector),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summaryjob.SubjectTable, summaryjob.SubjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySourceMaterials chains the current query on the "source_materials" edge.
func (_q *SummaryJobQuery) QuerySourceMaterials() *SourceMaterialQuery {
	query := (&SourceMaterialClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, selector),
			sqlgraph.To(sourcematerial.Table, sourcematerial.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summaryjob.SourceMaterialsTable, summaryjob.SourceMaterialsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStageLogs chains the current query on the "stage_logs" edge.
func (_q *SummaryJobQuery) QueryStageLogs() *JobStageLogQuery {
	query := (&JobStageLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, selector),
			sqlgraph.To(jobstagelog.Table, jobstagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summaryjob.StageLogsTable, summaryjob.StageLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SummaryJob entity from the query.
// Returns a *NotFoundError when no SummaryJob was found.
func (_q *SummaryJobQuery) First(ctx context.Context) (*SummaryJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{summaryjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SummaryJobQuery) FirstX(ctx context.Context) *SummaryJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SummaryJob ID from the query.
// Returns a *NotFoundError when no SummaryJob ID was found.
func (_q *SummaryJobQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{summaryjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SummaryJobQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SummaryJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SummaryJob entity is found.
// Returns a *NotFoundError when no SummaryJob entities are found.
func (_q *SummaryJobQuery) Only(ctx context.Context) (*SummaryJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{summaryjob.Label}
	default:
		return nil, &NotSingularError{summaryjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SummaryJobQuery) OnlyX(ctx context.Context) *SummaryJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SummaryJob ID in the query.
// Returns a *NotSingularError when more than one SummaryJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SummaryJobQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{summaryjob.Label}
	default:
		err = &NotSingularError{summaryjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SummaryJobQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SummaryJobs.
func (_q *SummaryJobQuery) All(ctx context.Context) ([]*SummaryJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SummaryJob, *SummaryJobQuery]()
	return withInterceptors[[]*SummaryJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SummaryJobQuery) AllX(ctx context.Context) []*SummaryJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SummaryJob IDs.
func (_q *SummaryJobQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(summaryjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SummaryJobQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SummaryJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SummaryJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SummaryJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SummaryJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SummaryJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SummaryJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SummaryJobQuery) Clone() *SummaryJobQuery {
	if _q == nil {
		return nil
	}
	return &SummaryJobQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]summaryjob.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.SummaryJob{}, _q.predicates...),
		withSubject:         _q.withSubject.Clone(),
		withSourceMaterials: _q.withSourceMaterials.Clone(),
		withStageLogs:       _q.withStageLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubject tells the query-builder to eager-load the nodes that are connected to
// the "subject" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SummaryJobQuery) WithSubject(opts ...func(*SubjectQuery)) *SummaryJobQuery {
	query := (&SubjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubject = query
	return _q
}

// WithSourceMaterials tells the query-builder to eager-load the nodes that are connected to
// the "source_materials" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SummaryJobQuery) WithSourceMaterials(opts ...func(*SourceMaterialQuery)) *SummaryJobQuery {
	query := (&SourceMaterialClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSourceMaterials = query
	return _q
}

// WithStageLogs tells the query-builder to eager-load the nodes that are connected to
// the "stage_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SummaryJobQuery) WithStageLogs(opts ...func(*JobStageLogQuery)) *SummaryJobQuery {
	query := (&JobStageLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SubjectID int `json:"subject_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SummaryJob.Query().
//		GroupBy(summaryjob.FieldSubjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SummaryJobQuery) GroupBy(field string, fields ...string) *SummaryJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SummaryJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = summaryjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SubjectID int `json:"subject_id,omitempty"`
//	}
//
//	client.SummaryJob.Query().
//		Select(summaryjob.FieldSubjectID).
//		Scan(ctx, &v)
func (_q *SummaryJobQuery) Select(fields ...string) *SummaryJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SummaryJobSelect{SummaryJobQuery: _q}
	sbuild.label = summaryjob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SummaryJobSelect configured with the given aggregations.
func (_q *SummaryJobQuery) Aggregate(fns ...AggregateFunc) *SummaryJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SummaryJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !summaryjob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SummaryJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SummaryJob, error) {
	var (
		nodes       = []*SummaryJob{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withSubject != nil,
			_q.withSourceMaterials != nil,
			_q.withStageLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SummaryJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SummaryJob{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSubject; query != nil {
		if err := _q.loadSubject(ctx, query, nodes, nil,
			func(n *SummaryJob, e *Subject) { n.Edges.Subject = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSourceMaterials; query != nil {
		if err := _q.loadSourceMaterials(ctx, query, nodes,
			func(n *SummaryJob) { n.Edges.SourceMaterials = []*SourceMaterial{} },
			func(n *SummaryJob, e *SourceMaterial) { n.Edges.SourceMaterials = append(n.Edges.SourceMaterials, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStageLogs; query != nil {
		if err := _q.loadStageLogs(ctx, query, nodes,
			func(n *SummaryJob) { n.Edges.StageLogs = []*JobStageLog{} },
			func(n *SummaryJob, e *JobStageLog) { n.Edges.StageLogs = append(n.Edges.StageLogs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SummaryJobQuery) loadSubject(ctx context.Context, query *SubjectQuery, nodes []*SummaryJob, init func(*SummaryJob), assign func(*SummaryJob, *Subject)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SummaryJob)
	for i := range nodes {
		if nodes[i].SubjectID == nil {
			continue
		}
		fk := *nodes[i].SubjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subject.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subject_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SummaryJobQuery) loadSourceMaterials(ctx context.Context, query *SourceMaterialQuery, nodes []*SummaryJob, init func(*SummaryJob), assign func(*SummaryJob, *SourceMaterial)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SummaryJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sourcematerial.FieldJobID)
	}
	query.Where(predicate.SourceMaterial(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(summaryjob.SourceMaterialsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SummaryJobQuery) loadStageLogs(ctx context.Context, query *JobStageLogQuery, nodes []*SummaryJob, init func(*SummaryJob), assign func(*SummaryJob, *JobStageLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SummaryJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(jobstagelog.FieldJobID)
	}
	query.Where(predicate.JobStageLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(summaryjob.StageLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SummaryJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SummaryJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(summaryjob.Table, summaryjob.Columns, sqlgraph.NewFieldSpec(summaryjob.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summaryjob.FieldID)
		for i := range fields {
			if fields[i] != summaryjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSubject != nil {
			_spec.Node.AddColumnOnce(summaryjob.FieldSubjectID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SummaryJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(summaryjob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = summaryjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SummaryJobQuery) ForUpdate(opts ...sql.LockOption) *SummaryJobQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SummaryJobQuery) ForShare(opts ...sql.LockOption) *SummaryJobQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SummaryJobGroupBy is the group-by builder for SummaryJob entities.
type SummaryJobGroupBy struct {
	selector
	build *SummaryJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SummaryJobGroupBy) Aggregate(fns ...AggregateFunc) *SummaryJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SummaryJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryJobQuery, *SummaryJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SummaryJobGroupBy) sqlScan(ctx context.Context, root *SummaryJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SummaryJobSelect is the builder for selecting fields of SummaryJob entities.
type SummaryJobSelect struct {
	*SummaryJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SummaryJobSelect) Aggregate(fns ...AggregateFunc) *SummaryJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SummaryJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryJobQuery, *SummaryJobSelect](ctx, _s.SummaryJobQuery, _s, _s.inters, v)
}

func (_s *SummaryJobSelect) sqlScan(ctx context.Context, root *SummaryJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
