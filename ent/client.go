// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recapd/recapd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/ent/workspace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// JobStageLog is the client for interacting with the JobStageLog builders.
	JobStageLog *JobStageLogClient
	// SourceMaterial is the client for interacting with the SourceMaterial builders.
	SourceMaterial *SourceMaterialClient
	// SpeakerSegment is the client for interacting with the SpeakerSegment builders.
	SpeakerSegment *SpeakerSegmentClient
	// Subject is the client for interacting with the Subject builders.
	Subject *SubjectClient
	// SummaryJob is the client for interacting with the SummaryJob builders.
	SummaryJob *SummaryJobClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.JobStageLog = NewJobStageLogClient(c.config)
	c.SourceMaterial = NewSourceMaterialClient(c.config)
	c.SpeakerSegment = NewSpeakerSegmentClient(c.config)
	c.Subject = NewSubjectClient(c.config)
	c.SummaryJob = NewSummaryJobClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		JobStageLog:    NewJobStageLogClient(cfg),
		SourceMaterial: NewSourceMaterialClient(cfg),
		SpeakerSegment: NewSpeakerSegmentClient(cfg),
		Subject:        NewSubjectClient(cfg),
		SummaryJob:     NewSummaryJobClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		JobStageLog:    NewJobStageLogClient(cfg),
		SourceMaterial: NewSourceMaterialClient(cfg),
		SpeakerSegment: NewSpeakerSegmentClient(cfg),
		Subject:        NewSubjectClient(cfg),
		SummaryJob:     NewSummaryJobClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		JobStageLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.JobStageLog, c.SourceMaterial, c.SpeakerSegment, c.Subject, c.SummaryJob,
		c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.JobStageLog, c.SourceMaterial, c.SpeakerSegment, c.Subject, c.SummaryJob,
		c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobStageLogMutation:
		return c.JobStageLog.mutate(ctx, m)
	case *SourceMaterialMutation:
		return c.SourceMaterial.mutate(ctx, m)
	case *SpeakerSegmentMutation:
		return c.SpeakerSegment.mutate(ctx, m)
	case *SubjectMutation:
		return c.Subject.mutate(ctx, m)
	case *SummaryJobMutation:
		return c.SummaryJob.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobStageLogClient is a client for the JobStageLog schema.
type JobStageLogClient struct {
	config
}

// NewJobStageLogClient returns a client for the JobStageLog from the given config.
func NewJobStageLogClient(c config) *JobStageLogClient {
	return &JobStageLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobstagelog.Hooks(f(g(h())))`.
func (c *JobStageLogClient) Use(hooks ...Hook) {
	c.hooks.JobStageLog = append(c.hooks.JobStageLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobstagelog.Intercept(f(g(h())))`.
func (c *JobStageLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobStageLog = append(c.inters.JobStageLog, interceptors...)
}

// Create returns a builder for creating a JobStageLog entity.
func (c *JobStageLogClient) Create() *JobStageLogCreate {
	mutation := newJobStageLogMutation(c.config, OpCreate)
	return &JobStageLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobStageLog entities.
func (c *JobStageLogClient) CreateBulk(builders ...*JobStageLogCreate) *JobStageLogCreateBulk {
	return &JobStageLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobStageLogClient) MapCreateBulk(slice any, setFunc func(*JobStageLogCreate, int)) *JobStageLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobStageLogCreateBulk{err: fmt.Errorf("calling to JobStageLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobStageLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobStageLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobStageLog.
func (c *JobStageLogClient) Update() *JobStageLogUpdate {
	mutation := newJobStageLogMutation(c.config, OpUpdate)
	return &JobStageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobStageLogClient) UpdateOne(_m *JobStageLog) *JobStageLogUpdateOne {
	mutation := newJobStageLogMutation(c.config, OpUpdateOne, withJobStageLog(_m))
	return &JobStageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobStageLogClient) UpdateOneID(id int) *JobStageLogUpdateOne {
	mutation := newJobStageLogMutation(c.config, OpUpdateOne, withJobStageLogID(id))
	return &JobStageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobStageLog.
func (c *JobStageLogClient) Delete() *JobStageLogDelete {
	mutation := newJobStageLogMutation(c.config, OpDelete)
	return &JobStageLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobStageLogClient) DeleteOne(_m *JobStageLog) *JobStageLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobStageLogClient) DeleteOneID(id int) *JobStageLogDeleteOne {
	builder := c.Delete().Where(jobstagelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobStageLogDeleteOne{builder}
}

// Query returns a query builder for JobStageLog.
func (c *JobStageLogClient) Query() *JobStageLogQuery {
	return &JobStageLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobStageLog},
		inters: c.Interceptors(),
	}
}

// Get returns a JobStageLog entity by its id.
func (c *JobStageLogClient) Get(ctx context.Context, id int) (*JobStageLog, error) {
	return c.Query().Where(jobstagelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobStageLogClient) GetX(ctx context.Context, id int) *JobStageLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobStageLog.
func (c *JobStageLogClient) QueryJob(_m *JobStageLog) *SummaryJobQuery {
	query := (&SummaryJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstagelog.Table, jobstagelog.FieldID, id),
			sqlgraph.To(summaryjob.Table, summaryjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobstagelog.JobTable, jobstagelog.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobStageLogClient) Hooks() []Hook {
	return c.hooks.JobStageLog
}

// Interceptors returns the client interceptors.
func (c *JobStageLogClient) Interceptors() []Interceptor {
	return c.inters.JobStageLog
}

func (c *JobStageLogClient) mutate(ctx context.Context, m *JobStageLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobStageLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobStageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobStageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobStageLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobStageLog mutation op: %q", m.Op())
	}
}

// SourceMaterialClient is a client for the SourceMaterial schema.
type SourceMaterialClient struct {
	config
}

// NewSourceMaterialClient returns a client for the SourceMaterial from the given config.
func NewSourceMaterialClient(c config) *SourceMaterialClient {
	return &SourceMaterialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcematerial.Hooks(f(g(h())))`.
func (c *SourceMaterialClient) Use(hooks ...Hook) {
	c.hooks.SourceMaterial = append(c.hooks.SourceMaterial, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcematerial.Intercept(f(g(h())))`.
func (c *SourceMaterialClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceMaterial = append(c.inters.SourceMaterial, interceptors...)
}

// Create returns a builder for creating a SourceMaterial entity.
func (c *SourceMaterialClient) Create() *SourceMaterialCreate {
	mutation := newSourceMaterialMutation(c.config, OpCreate)
	return &SourceMaterialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceMaterial entities.
func (c *SourceMaterialClient) CreateBulk(builders ...*SourceMaterialCreate) *SourceMaterialCreateBulk {
	return &SourceMaterialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceMaterialClient) MapCreateBulk(slice any, setFunc func(*SourceMaterialCreate, int)) *SourceMaterialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceMaterialCreateBulk{err: fmt.Errorf("calling to SourceMaterialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceMaterialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceMaterialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceMaterial.
func (c *SourceMaterialClient) Update() *SourceMaterialUpdate {
	mutation := newSourceMaterialMutation(c.config, OpUpdate)
	return &SourceMaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceMaterialClient) UpdateOne(_m *SourceMaterial) *SourceMaterialUpdateOne {
	mutation := newSourceMaterialMutation(c.config, OpUpdateOne, withSourceMaterial(_m))
	return &SourceMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceMaterialClient) UpdateOneID(id int) *SourceMaterialUpdateOne {
	mutation := newSourceMaterialMutation(c.config, OpUpdateOne, withSourceMaterialID(id))
	return &SourceMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceMaterial.
func (c *SourceMaterialClient) Delete() *SourceMaterialDelete {
	mutation := newSourceMaterialMutation(c.config, OpDelete)
	return &SourceMaterialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceMaterialClient) DeleteOne(_m *SourceMaterial) *SourceMaterialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceMaterialClient) DeleteOneID(id int) *SourceMaterialDeleteOne {
	builder := c.Delete().Where(sourcematerial.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceMaterialDeleteOne{builder}
}

// Query returns a query builder for SourceMaterial.
func (c *SourceMaterialClient) Query() *SourceMaterialQuery {
	return &SourceMaterialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceMaterial},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceMaterial entity by its id.
func (c *SourceMaterialClient) Get(ctx context.Context, id int) (*SourceMaterial, error) {
	return c.Query().Where(sourcematerial.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceMaterialClient) GetX(ctx context.Context, id int) *SourceMaterial {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a SourceMaterial.
func (c *SourceMaterialClient) QueryJob(_m *SourceMaterial) *SummaryJobQuery {
	query := (&SummaryJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcematerial.Table, sourcematerial.FieldID, id),
			sqlgraph.To(summaryjob.Table, summaryjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcematerial.JobTable, sourcematerial.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpeakerSegments queries the speaker_segments edge of a SourceMaterial.
func (c *SourceMaterialClient) QuerySpeakerSegments(_m *SourceMaterial) *SpeakerSegmentQuery {
	query := (&SpeakerSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcematerial.Table, sourcematerial.FieldID, id),
			sqlgraph.To(speakersegment.Table, speakersegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcematerial.SpeakerSegmentsTable, sourcematerial.SpeakerSegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceMaterialClient) Hooks() []Hook {
	return c.hooks.SourceMaterial
}

// Interceptors returns the client interceptors.
func (c *SourceMaterialClient) Interceptors() []Interceptor {
	return c.inters.SourceMaterial
}

func (c *SourceMaterialClient) mutate(ctx context.Context, m *SourceMaterialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceMaterialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceMaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceMaterialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceMaterial mutation op: %q", m.Op())
	}
}

// SpeakerSegmentClient is a client for the SpeakerSegment schema.
type SpeakerSegmentClient struct {
	config
}

// NewSpeakerSegmentClient returns a client for the SpeakerSegment from the given config.
func NewSpeakerSegmentClient(c config) *SpeakerSegmentClient {
	return &SpeakerSegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `speakersegment.Hooks(f(g(h())))`.
func (c *SpeakerSegmentClient) Use(hooks ...Hook) {
	c.hooks.SpeakerSegment = append(c.hooks.SpeakerSegment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `speakersegment.Intercept(f(g(h())))`.
func (c *SpeakerSegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpeakerSegment = append(c.inters.SpeakerSegment, interceptors...)
}

// Create returns a builder for creating a SpeakerSegment entity.
func (c *SpeakerSegmentClient) Create() *SpeakerSegmentCreate {
	mutation := newSpeakerSegmentMutation(c.config, OpCreate)
	return &SpeakerSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpeakerSegment entities.
func (c *SpeakerSegmentClient) CreateBulk(builders ...*SpeakerSegmentCreate) *SpeakerSegmentCreateBulk {
	return &SpeakerSegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpeakerSegmentClient) MapCreateBulk(slice any, setFunc func(*SpeakerSegmentCreate, int)) *SpeakerSegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpeakerSegmentCreateBulk{err: fmt.Errorf("calling to SpeakerSegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpeakerSegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpeakerSegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpeakerSegment.
func (c *SpeakerSegmentClient) Update() *SpeakerSegmentUpdate {
	mutation := newSpeakerSegmentMutation(c.config, OpUpdate)
	return &SpeakerSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpeakerSegmentClient) UpdateOne(_m *SpeakerSegment) *SpeakerSegmentUpdateOne {
	mutation := newSpeakerSegmentMutation(c.config, OpUpdateOne, withSpeakerSegment(_m))
	return &SpeakerSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpeakerSegmentClient) UpdateOneID(id int) *SpeakerSegmentUpdateOne {
	mutation := newSpeakerSegmentMutation(c.config, OpUpdateOne, withSpeakerSegmentID(id))
	return &SpeakerSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpeakerSegment.
func (c *SpeakerSegmentClient) Delete() *SpeakerSegmentDelete {
	mutation := newSpeakerSegmentMutation(c.config, OpDelete)
	return &SpeakerSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpeakerSegmentClient) DeleteOne(_m *SpeakerSegment) *SpeakerSegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpeakerSegmentClient) DeleteOneID(id int) *SpeakerSegmentDeleteOne {
	builder := c.Delete().Where(speakersegment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpeakerSegmentDeleteOne{builder}
}

// Query returns a query builder for SpeakerSegment.
func (c *SpeakerSegmentClient) Query() *SpeakerSegmentQuery {
	return &SpeakerSegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpeakerSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a SpeakerSegment entity by its id.
func (c *SpeakerSegmentClient) Get(ctx context.Context, id int) (*SpeakerSegment, error) {
	return c.Query().Where(speakersegment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpeakerSegmentClient) GetX(ctx context.Context, id int) *SpeakerSegment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMaterial queries the material edge of a SpeakerSegment.
func (c *SpeakerSegmentClient) QueryMaterial(_m *SpeakerSegment) *SourceMaterialQuery {
	query := (&SourceMaterialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(speakersegment.Table, speakersegment.FieldID, id),
			sqlgraph.To(sourcematerial.Table, sourcematerial.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, speakersegment.MaterialTable, speakersegment.MaterialColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpeakerSegmentClient) Hooks() []Hook {
	return c.hooks.SpeakerSegment
}

// Interceptors returns the client interceptors.
func (c *SpeakerSegmentClient) Interceptors() []Interceptor {
	return c.inters.SpeakerSegment
}

func (c *SpeakerSegmentClient) mutate(ctx context.Context, m *SpeakerSegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpeakerSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpeakerSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpeakerSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpeakerSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpeakerSegment mutation op: %q", m.Op())
	}
}

// SubjectClient is a client for the Subject schema.
type SubjectClient struct {
	config
}

// NewSubjectClient returns a client for the Subject from the given config.
func NewSubjectClient(c config) *SubjectClient {
	return &SubjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subject.Hooks(f(g(h())))`.
func (c *SubjectClient) Use(hooks ...Hook) {
	c.hooks.Subject = append(c.hooks.Subject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subject.Intercept(f(g(h())))`.
func (c *SubjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subject = append(c.inters.Subject, interceptors...)
}

// Create returns a builder for creating a Subject entity.
func (c *SubjectClient) Create() *SubjectCreate {
	mutation := newSubjectMutation(c.config, OpCreate)
	return &SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subject entities.
func (c *SubjectClient) CreateBulk(builders ...*SubjectCreate) *SubjectCreateBulk {
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectClient) MapCreateBulk(slice any, setFunc func(*SubjectCreate, int)) *SubjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectCreateBulk{err: fmt.Errorf("calling to SubjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subject.
func (c *SubjectClient) Update() *SubjectUpdate {
	mutation := newSubjectMutation(c.config, OpUpdate)
	return &SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectClient) UpdateOne(_m *Subject) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubject(_m))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectClient) UpdateOneID(id int) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubjectID(id))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subject.
func (c *SubjectClient) Delete() *SubjectDelete {
	mutation := newSubjectMutation(c.config, OpDelete)
	return &SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectClient) DeleteOne(_m *Subject) *SubjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectClient) DeleteOneID(id int) *SubjectDeleteOne {
	builder := c.Delete().Where(subject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectDeleteOne{builder}
}

// Query returns a query builder for Subject.
func (c *SubjectClient) Query() *SubjectQuery {
	return &SubjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubject},
		inters: c.Interceptors(),
	}
}

// Get returns a Subject entity by its id.
func (c *SubjectClient) Get(ctx context.Context, id int) (*Subject, error) {
	return c.Query().Where(subject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectClient) GetX(ctx context.Context, id int) *Subject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Subject.
func (c *SubjectClient) QueryWorkspace(_m *Subject) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subject.Table, subject.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subject.WorkspaceTable, subject.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummaryJobs queries the summary_jobs edge of a Subject.
func (c *SubjectClient) QuerySummaryJobs(_m *Subject) *SummaryJobQuery {
	query := (&SummaryJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subject.Table, subject.FieldID, id),
			sqlgraph.To(summaryjob.Table, summaryjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, subject.SummaryJobsTable, subject.SummaryJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubjectClient) Hooks() []Hook {
	return c.hooks.Subject
}

// Interceptors returns the client interceptors.
func (c *SubjectClient) Interceptors() []Interceptor {
	return c.inters.Subject
}

func (c *SubjectClient) mutate(ctx context.Context, m *SubjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subject mutation op: %q", m.Op())
	}
}

// SummaryJobClient is a client for the SummaryJob schema.
type SummaryJobClient struct {
	config
}

// NewSummaryJobClient returns a client for the SummaryJob from the given config.
func NewSummaryJobClient(c config) *SummaryJobClient {
	return &SummaryJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summaryjob.Hooks(f(g(h())))`.
func (c *SummaryJobClient) Use(hooks ...Hook) {
	c.hooks.SummaryJob = append(c.hooks.SummaryJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summaryjob.Intercept(f(g(h())))`.
func (c *SummaryJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryJob = append(c.inters.SummaryJob, interceptors...)
}

// Create returns a builder for creating a SummaryJob entity.
func (c *SummaryJobClient) Create() *SummaryJobCreate {
	mutation := newSummaryJobMutation(c.config, OpCreate)
	return &SummaryJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryJob entities.
func (c *SummaryJobClient) CreateBulk(builders ...*SummaryJobCreate) *SummaryJobCreateBulk {
	return &SummaryJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryJobClient) MapCreateBulk(slice any, setFunc func(*SummaryJobCreate, int)) *SummaryJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryJobCreateBulk{err: fmt.Errorf("calling to SummaryJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryJob.
func (c *SummaryJobClient) Update() *SummaryJobUpdate {
	mutation := newSummaryJobMutation(c.config, OpUpdate)
	return &SummaryJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryJobClient) UpdateOne(_m *SummaryJob) *SummaryJobUpdateOne {
	mutation := newSummaryJobMutation(c.config, OpUpdateOne, withSummaryJob(_m))
	return &SummaryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryJobClient) UpdateOneID(id int) *SummaryJobUpdateOne {
	mutation := newSummaryJobMutation(c.config, OpUpdateOne, withSummaryJobID(id))
	return &SummaryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryJob.
func (c *SummaryJobClient) Delete() *SummaryJobDelete {
	mutation := newSummaryJobMutation(c.config, OpDelete)
	return &SummaryJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryJobClient) DeleteOne(_m *SummaryJob) *SummaryJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryJobClient) DeleteOneID(id int) *SummaryJobDeleteOne {
	builder := c.Delete().Where(summaryjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryJobDeleteOne{builder}
}

// Query returns a query builder for SummaryJob.
func (c *SummaryJobClient) Query() *SummaryJobQuery {
	return &SummaryJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryJob},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryJob entity by its id.
func (c *SummaryJobClient) Get(ctx context.Context, id int) (*SummaryJob, error) {
	return c.Query().Where(summaryjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryJobClient) GetX(ctx context.Context, id int) *SummaryJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubject queries the subject edge of a SummaryJob.
func (c *SummaryJobClient) QuerySubject(_m *SummaryJob) *SubjectQuery {
	query := (&SubjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, id),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summaryjob.SubjectTable, summaryjob.SubjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceMaterials queries the source_materials edge of a SummaryJob.
func (c *SummaryJobClient) QuerySourceMaterials(_m *SummaryJob) *SourceMaterialQuery {
	query := (&SourceMaterialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, id),
			sqlgraph.To(sourcematerial.Table, sourcematerial.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summaryjob.SourceMaterialsTable, summaryjob.SourceMaterialsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageLogs queries the stage_logs edge of a SummaryJob.
func (c *SummaryJobClient) QueryStageLogs(_m *SummaryJob) *JobStageLogQuery {
	query := (&JobStageLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summaryjob.Table, summaryjob.FieldID, id),
			sqlgraph.To(jobstagelog.Table, jobstagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, summaryjob.StageLogsTable, summaryjob.StageLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummaryJobClient) Hooks() []Hook {
	return c.hooks.SummaryJob
}

// Interceptors returns the client interceptors.
func (c *SummaryJobClient) Interceptors() []Interceptor {
	return c.inters.SummaryJob
}

func (c *SummaryJobClient) mutate(ctx context.Context, m *SummaryJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryJob mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id int) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id int) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id int) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id int) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubjects queries the subjects edge of a Workspace.
func (c *WorkspaceClient) QuerySubjects(_m *Workspace) *SubjectQuery {
	query := (&SubjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.SubjectsTable, workspace.SubjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		JobStageLog, SourceMaterial, SpeakerSegment, Subject, SummaryJob,
		Workspace []ent.Hook
	}
	inters struct {
		JobStageLog, SourceMaterial, SpeakerSegment, Subject, SummaryJob,
		Workspace []ent.Interceptor
	}
)
