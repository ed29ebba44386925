// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
)

// SpeakerSegmentQuery is the builder for querying SpeakerSegment entities.
type SpeakerSegmentQuery struct {
	config
	ctx          *QueryContext
	order        []speakersegment.OrderOption
	inters       []Interceptor
	predicates   []predicate.SpeakerSegment
	withMaterial *SourceMaterialQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SpeakerSegmentQuery builder.
func (_q *SpeakerSegmentQuery) Where(ps ...predicate.SpeakerSegment) *SpeakerSegmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SpeakerSegmentQuery) Limit(limit int) *SpeakerSegmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SpeakerSegmentQuery) Offset(offset int) *SpeakerSegmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SpeakerSegmentQuery) Unique(unique bool) *SpeakerSegmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SpeakerSegmentQuery) Order(o ...speakersegment.OrderOption) *SpeakerSegmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMaterial chains the current query on the "material" edge.
func (_q *SpeakerSegmentQuery) QueryMaterial() *SourceMaterialQuery {
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
			sqlgraph.From(speakersegment.Table, speakersegment.FieldID, selector),
			sqlgraph.To(sourcematerial.Table, sourcematerial.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, speakersegment.MaterialTable, speakersegment.MaterialColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SpeakerSegment entity from the query.
// Returns a *NotFoundError when no SpeakerSegment was found.
func (_q *SpeakerSegmentQuery) First(ctx context.Context) (*SpeakerSegment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{speakersegment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) FirstX(ctx context.Context) *SpeakerSegment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SpeakerSegment ID from the query.
// Returns a *NotFoundError when no SpeakerSegment ID was found.
func (_q *SpeakerSegmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{speakersegment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SpeakerSegment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SpeakerSegment entity is found.
// Returns a *NotFoundError when no SpeakerSegment entities are found.
func (_q *SpeakerSegmentQuery) Only(ctx context.Context) (*SpeakerSegment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{speakersegment.Label}
	default:
		return nil, &NotSingularError{speakersegment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) OnlyX(ctx context.Context) *SpeakerSegment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SpeakerSegment ID in the query.
// Returns a *NotSingularError when more than one SpeakerSegment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SpeakerSegmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{speakersegment.Label}
	default:
		err = &NotSingularError{speakersegment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SpeakerSegments.
func (_q *SpeakerSegmentQuery) All(ctx context.Context) ([]*SpeakerSegment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SpeakerSegment, *SpeakerSegmentQuery]()
	return withInterceptors[[]*SpeakerSegment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) AllX(ctx context.Context) []*SpeakerSegment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SpeakerSegment IDs.
func (_q *SpeakerSegmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(speakersegment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SpeakerSegmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SpeakerSegmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SpeakerSegmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SpeakerSegmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SpeakerSegmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SpeakerSegmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SpeakerSegmentQuery) Clone() *SpeakerSegmentQuery {
	if _q == nil {
		return nil
	}
	return &SpeakerSegmentQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]speakersegment.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.SpeakerSegment{}, _q.predicates...),
		withMaterial: _q.withMaterial.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMaterial tells the query-builder to eager-load the nodes that are connected to
// the "material" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpeakerSegmentQuery) WithMaterial(opts ...func(*SourceMaterialQuery)) *SpeakerSegmentQuery {
	query := (&SourceMaterialClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMaterial = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MaterialID int `json:"material_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SpeakerSegment.Query().
//		GroupBy(speakersegment.FieldMaterialID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SpeakerSegmentQuery) GroupBy(field string, fields ...string) *SpeakerSegmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SpeakerSegmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = speakersegment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MaterialID int `json:"material_id,omitempty"`
//	}
//
//	client.SpeakerSegment.Query().
//		Select(speakersegment.FieldMaterialID).
//		Scan(ctx, &v)
func (_q *SpeakerSegmentQuery) Select(fields ...string) *SpeakerSegmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SpeakerSegmentSelect{SpeakerSegmentQuery: _q}
	sbuild.label = speakersegment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SpeakerSegmentSelect configured with the given aggregations.
func (_q *SpeakerSegmentQuery) Aggregate(fns ...AggregateFunc) *SpeakerSegmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SpeakerSegmentQuery) prepareQuery(ctx context.Context) error {
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
		if !speakersegment.ValidColumn(f) {
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

func (_q *SpeakerSegmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SpeakerSegment, error) {
	var (
		nodes       = []*SpeakerSegment{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withMaterial != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SpeakerSegment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SpeakerSegment{config: _q.config}
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
	if query := _q.withMaterial; query != nil {
		if err := _q.loadMaterial(ctx, query, nodes, nil,
			func(n *SpeakerSegment, e *SourceMaterial) { n.Edges.Material = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SpeakerSegmentQuery) loadMaterial(ctx context.Context, query *SourceMaterialQuery, nodes []*SpeakerSegment, init func(*SpeakerSegment), assign func(*SpeakerSegment, *SourceMaterial)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SpeakerSegment)
	for i := range nodes {
		fk := nodes[i].MaterialID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(sourcematerial.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "material_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SpeakerSegmentQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *SpeakerSegmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(speakersegment.Table, speakersegment.Columns, sqlgraph.NewFieldSpec(speakersegment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, speakersegment.FieldID)
		for i := range fields {
			if fields[i] != speakersegment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMaterial != nil {
			_spec.Node.AddColumnOnce(speakersegment.FieldMaterialID)
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

func (_q *SpeakerSegmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(speakersegment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = speakersegment.Columns
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
func (_q *SpeakerSegmentQuery) ForUpdate(opts ...sql.LockOption) *SpeakerSegmentQuery {
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
func (_q *SpeakerSegmentQuery) ForShare(opts ...sql.LockOption) *SpeakerSegmentQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SpeakerSegmentGroupBy is the group-by builder for SpeakerSegment entities.
type SpeakerSegmentGroupBy struct {
	selector
	build *SpeakerSegmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SpeakerSegmentGroupBy) Aggregate(fns ...AggregateFunc) *SpeakerSegmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SpeakerSegmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpeakerSegmentQuery, *SpeakerSegmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SpeakerSegmentGroupBy) sqlScan(ctx context.Context, root *SpeakerSegmentQuery, v any) error {
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

// SpeakerSegmentSelect is the builder for selecting fields of SpeakerSegment entities.
type SpeakerSegmentSelect struct {
	*SpeakerSegmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SpeakerSegmentSelect) Aggregate(fns ...AggregateFunc) *SpeakerSegmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SpeakerSegmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpeakerSegmentQuery, *SpeakerSegmentSelect](ctx, _s.SpeakerSegmentQuery, _s, _s.inters, v)
}

func (_s *SpeakerSegmentSelect) sqlScan(ctx context.Context, root *SpeakerSegmentQuery, v any) error {
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
