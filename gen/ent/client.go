// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/gen/ent/processingjob"
	"github.com/propertyops/asset-governor/gen/ent/property"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CommitteeAlert is the client for interacting with the CommitteeAlert builders.
	CommitteeAlert *CommitteeAlertClient
	// ExtractedMetric is the client for interacting with the ExtractedMetric builders.
	ExtractedMetric *ExtractedMetricClient
	// ProcessingJob is the client for interacting with the ProcessingJob builders.
	ProcessingJob *ProcessingJobClient
	// Property is the client for interacting with the Property builders.
	Property *PropertyClient
	// WorkflowLock is the client for interacting with the WorkflowLock builders.
	WorkflowLock *WorkflowLockClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CommitteeAlert = NewCommitteeAlertClient(c.config)
	c.ExtractedMetric = NewExtractedMetricClient(c.config)
	c.ProcessingJob = NewProcessingJobClient(c.config)
	c.Property = NewPropertyClient(c.config)
	c.WorkflowLock = NewWorkflowLockClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		CommitteeAlert:  NewCommitteeAlertClient(cfg),
		ExtractedMetric: NewExtractedMetricClient(cfg),
		ProcessingJob:   NewProcessingJobClient(cfg),
		Property:        NewPropertyClient(cfg),
		WorkflowLock:    NewWorkflowLockClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		CommitteeAlert:  NewCommitteeAlertClient(cfg),
		ExtractedMetric: NewExtractedMetricClient(cfg),
		ProcessingJob:   NewProcessingJobClient(cfg),
		Property:        NewPropertyClient(cfg),
		WorkflowLock:    NewWorkflowLockClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CommitteeAlert.
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
	c.CommitteeAlert.Use(hooks...)
	c.ExtractedMetric.Use(hooks...)
	c.ProcessingJob.Use(hooks...)
	c.Property.Use(hooks...)
	c.WorkflowLock.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CommitteeAlert.Intercept(interceptors...)
	c.ExtractedMetric.Intercept(interceptors...)
	c.ProcessingJob.Intercept(interceptors...)
	c.Property.Intercept(interceptors...)
	c.WorkflowLock.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CommitteeAlertMutation:
		return c.CommitteeAlert.mutate(ctx, m)
	case *ExtractedMetricMutation:
		return c.ExtractedMetric.mutate(ctx, m)
	case *ProcessingJobMutation:
		return c.ProcessingJob.mutate(ctx, m)
	case *PropertyMutation:
		return c.Property.mutate(ctx, m)
	case *WorkflowLockMutation:
		return c.WorkflowLock.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CommitteeAlertClient is a client for the CommitteeAlert schema.
type CommitteeAlertClient struct {
	config
}

// NewCommitteeAlertClient returns a client for the CommitteeAlert from the given config.
func NewCommitteeAlertClient(c config) *CommitteeAlertClient {
	return &CommitteeAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `committeealert.Hooks(f(g(h())))`.
func (c *CommitteeAlertClient) Use(hooks ...Hook) {
	c.hooks.CommitteeAlert = append(c.hooks.CommitteeAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `committeealert.Intercept(f(g(h())))`.
func (c *CommitteeAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommitteeAlert = append(c.inters.CommitteeAlert, interceptors...)
}

// Create returns a builder for creating a CommitteeAlert entity.
func (c *CommitteeAlertClient) Create() *CommitteeAlertCreate {
	mutation := newCommitteeAlertMutation(c.config, OpCreate)
	return &CommitteeAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommitteeAlert entities.
func (c *CommitteeAlertClient) CreateBulk(builders ...*CommitteeAlertCreate) *CommitteeAlertCreateBulk {
	return &CommitteeAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitteeAlertClient) MapCreateBulk(slice any, setFunc func(*CommitteeAlertCreate, int)) *CommitteeAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitteeAlertCreateBulk{err: fmt.Errorf("calling to CommitteeAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitteeAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitteeAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommitteeAlert.
func (c *CommitteeAlertClient) Update() *CommitteeAlertUpdate {
	mutation := newCommitteeAlertMutation(c.config, OpUpdate)
	return &CommitteeAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitteeAlertClient) UpdateOne(_m *CommitteeAlert) *CommitteeAlertUpdateOne {
	mutation := newCommitteeAlertMutation(c.config, OpUpdateOne, withCommitteeAlert(_m))
	return &CommitteeAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitteeAlertClient) UpdateOneID(id uuid.UUID) *CommitteeAlertUpdateOne {
	mutation := newCommitteeAlertMutation(c.config, OpUpdateOne, withCommitteeAlertID(id))
	return &CommitteeAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommitteeAlert.
func (c *CommitteeAlertClient) Delete() *CommitteeAlertDelete {
	mutation := newCommitteeAlertMutation(c.config, OpDelete)
	return &CommitteeAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitteeAlertClient) DeleteOne(_m *CommitteeAlert) *CommitteeAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitteeAlertClient) DeleteOneID(id uuid.UUID) *CommitteeAlertDeleteOne {
	builder := c.Delete().Where(committeealert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitteeAlertDeleteOne{builder}
}

// Query returns a query builder for CommitteeAlert.
func (c *CommitteeAlertClient) Query() *CommitteeAlertQuery {
	return &CommitteeAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitteeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a CommitteeAlert entity by its id.
func (c *CommitteeAlertClient) Get(ctx context.Context, id uuid.UUID) (*CommitteeAlert, error) {
	return c.Query().Where(committeealert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitteeAlertClient) GetX(ctx context.Context, id uuid.UUID) *CommitteeAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLocks queries the locks edge of a CommitteeAlert.
func (c *CommitteeAlertClient) QueryLocks(_m *CommitteeAlert) *WorkflowLockQuery {
	query := (&WorkflowLockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committeealert.Table, committeealert.FieldID, id),
			sqlgraph.To(workflowlock.Table, workflowlock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, committeealert.LocksTable, committeealert.LocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommitteeAlertClient) Hooks() []Hook {
	return c.hooks.CommitteeAlert
}

// Interceptors returns the client interceptors.
func (c *CommitteeAlertClient) Interceptors() []Interceptor {
	return c.inters.CommitteeAlert
}

func (c *CommitteeAlertClient) mutate(ctx context.Context, m *CommitteeAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitteeAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitteeAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitteeAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitteeAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommitteeAlert mutation op: %q", m.Op())
	}
}

// ExtractedMetricClient is a client for the ExtractedMetric schema.
type ExtractedMetricClient struct {
	config
}

// NewExtractedMetricClient returns a client for the ExtractedMetric from the given config.
func NewExtractedMetricClient(c config) *ExtractedMetricClient {
	return &ExtractedMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedmetric.Hooks(f(g(h())))`.
func (c *ExtractedMetricClient) Use(hooks ...Hook) {
	c.hooks.ExtractedMetric = append(c.hooks.ExtractedMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedmetric.Intercept(f(g(h())))`.
func (c *ExtractedMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedMetric = append(c.inters.ExtractedMetric, interceptors...)
}

// Create returns a builder for creating a ExtractedMetric entity.
func (c *ExtractedMetricClient) Create() *ExtractedMetricCreate {
	mutation := newExtractedMetricMutation(c.config, OpCreate)
	return &ExtractedMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedMetric entities.
func (c *ExtractedMetricClient) CreateBulk(builders ...*ExtractedMetricCreate) *ExtractedMetricCreateBulk {
	return &ExtractedMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedMetricClient) MapCreateBulk(slice any, setFunc func(*ExtractedMetricCreate, int)) *ExtractedMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedMetricCreateBulk{err: fmt.Errorf("calling to ExtractedMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedMetric.
func (c *ExtractedMetricClient) Update() *ExtractedMetricUpdate {
	mutation := newExtractedMetricMutation(c.config, OpUpdate)
	return &ExtractedMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedMetricClient) UpdateOne(_m *ExtractedMetric) *ExtractedMetricUpdateOne {
	mutation := newExtractedMetricMutation(c.config, OpUpdateOne, withExtractedMetric(_m))
	return &ExtractedMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedMetricClient) UpdateOneID(id uuid.UUID) *ExtractedMetricUpdateOne {
	mutation := newExtractedMetricMutation(c.config, OpUpdateOne, withExtractedMetricID(id))
	return &ExtractedMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedMetric.
func (c *ExtractedMetricClient) Delete() *ExtractedMetricDelete {
	mutation := newExtractedMetricMutation(c.config, OpDelete)
	return &ExtractedMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedMetricClient) DeleteOne(_m *ExtractedMetric) *ExtractedMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedMetricClient) DeleteOneID(id uuid.UUID) *ExtractedMetricDeleteOne {
	builder := c.Delete().Where(extractedmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedMetricDeleteOne{builder}
}

// Query returns a query builder for ExtractedMetric.
func (c *ExtractedMetricClient) Query() *ExtractedMetricQuery {
	return &ExtractedMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedMetric entity by its id.
func (c *ExtractedMetricClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedMetric, error) {
	return c.Query().Where(extractedmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedMetricClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedMetricClient) Hooks() []Hook {
	return c.hooks.ExtractedMetric
}

// Interceptors returns the client interceptors.
func (c *ExtractedMetricClient) Interceptors() []Interceptor {
	return c.inters.ExtractedMetric
}

func (c *ExtractedMetricClient) mutate(ctx context.Context, m *ExtractedMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedMetric mutation op: %q", m.Op())
	}
}

// ProcessingJobClient is a client for the ProcessingJob schema.
type ProcessingJobClient struct {
	config
}

// NewProcessingJobClient returns a client for the ProcessingJob from the given config.
func NewProcessingJobClient(c config) *ProcessingJobClient {
	return &ProcessingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingjob.Hooks(f(g(h())))`.
func (c *ProcessingJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessingJob = append(c.hooks.ProcessingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingjob.Intercept(f(g(h())))`.
func (c *ProcessingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingJob = append(c.inters.ProcessingJob, interceptors...)
}

// Create returns a builder for creating a ProcessingJob entity.
func (c *ProcessingJobClient) Create() *ProcessingJobCreate {
	mutation := newProcessingJobMutation(c.config, OpCreate)
	return &ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingJob entities.
func (c *ProcessingJobClient) CreateBulk(builders ...*ProcessingJobCreate) *ProcessingJobCreateBulk {
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingJobClient) MapCreateBulk(slice any, setFunc func(*ProcessingJobCreate, int)) *ProcessingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingJobCreateBulk{err: fmt.Errorf("calling to ProcessingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingJob.
func (c *ProcessingJobClient) Update() *ProcessingJobUpdate {
	mutation := newProcessingJobMutation(c.config, OpUpdate)
	return &ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingJobClient) UpdateOne(_m *ProcessingJob) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJob(_m))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingJobClient) UpdateOneID(id uuid.UUID) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJobID(id))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingJob.
func (c *ProcessingJobClient) Delete() *ProcessingJobDelete {
	mutation := newProcessingJobMutation(c.config, OpDelete)
	return &ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingJobClient) DeleteOne(_m *ProcessingJob) *ProcessingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingJobClient) DeleteOneID(id uuid.UUID) *ProcessingJobDeleteOne {
	builder := c.Delete().Where(processingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingJobDeleteOne{builder}
}

// Query returns a query builder for ProcessingJob.
func (c *ProcessingJobClient) Query() *ProcessingJobQuery {
	return &ProcessingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingJob entity by its id.
func (c *ProcessingJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingJob, error) {
	return c.Query().Where(processingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingJobClient) Hooks() []Hook {
	return c.hooks.ProcessingJob
}

// Interceptors returns the client interceptors.
func (c *ProcessingJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessingJob
}

func (c *ProcessingJobClient) mutate(ctx context.Context, m *ProcessingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingJob mutation op: %q", m.Op())
	}
}

// PropertyClient is a client for the Property schema.
type PropertyClient struct {
	config
}

// NewPropertyClient returns a client for the Property from the given config.
func NewPropertyClient(c config) *PropertyClient {
	return &PropertyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `property.Hooks(f(g(h())))`.
func (c *PropertyClient) Use(hooks ...Hook) {
	c.hooks.Property = append(c.hooks.Property, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `property.Intercept(f(g(h())))`.
func (c *PropertyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Property = append(c.inters.Property, interceptors...)
}

// Create returns a builder for creating a Property entity.
func (c *PropertyClient) Create() *PropertyCreate {
	mutation := newPropertyMutation(c.config, OpCreate)
	return &PropertyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Property entities.
func (c *PropertyClient) CreateBulk(builders ...*PropertyCreate) *PropertyCreateBulk {
	return &PropertyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PropertyClient) MapCreateBulk(slice any, setFunc func(*PropertyCreate, int)) *PropertyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PropertyCreateBulk{err: fmt.Errorf("calling to PropertyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PropertyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PropertyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Property.
func (c *PropertyClient) Update() *PropertyUpdate {
	mutation := newPropertyMutation(c.config, OpUpdate)
	return &PropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PropertyClient) UpdateOne(_m *Property) *PropertyUpdateOne {
	mutation := newPropertyMutation(c.config, OpUpdateOne, withProperty(_m))
	return &PropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PropertyClient) UpdateOneID(id uuid.UUID) *PropertyUpdateOne {
	mutation := newPropertyMutation(c.config, OpUpdateOne, withPropertyID(id))
	return &PropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Property.
func (c *PropertyClient) Delete() *PropertyDelete {
	mutation := newPropertyMutation(c.config, OpDelete)
	return &PropertyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PropertyClient) DeleteOne(_m *Property) *PropertyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PropertyClient) DeleteOneID(id uuid.UUID) *PropertyDeleteOne {
	builder := c.Delete().Where(property.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PropertyDeleteOne{builder}
}

// Query returns a query builder for Property.
func (c *PropertyClient) Query() *PropertyQuery {
	return &PropertyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProperty},
		inters: c.Interceptors(),
	}
}

// Get returns a Property entity by its id.
func (c *PropertyClient) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	return c.Query().Where(property.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PropertyClient) GetX(ctx context.Context, id uuid.UUID) *Property {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PropertyClient) Hooks() []Hook {
	return c.hooks.Property
}

// Interceptors returns the client interceptors.
func (c *PropertyClient) Interceptors() []Interceptor {
	return c.inters.Property
}

func (c *PropertyClient) mutate(ctx context.Context, m *PropertyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PropertyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PropertyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Property mutation op: %q", m.Op())
	}
}

// WorkflowLockClient is a client for the WorkflowLock schema.
type WorkflowLockClient struct {
	config
}

// NewWorkflowLockClient returns a client for the WorkflowLock from the given config.
func NewWorkflowLockClient(c config) *WorkflowLockClient {
	return &WorkflowLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowlock.Hooks(f(g(h())))`.
func (c *WorkflowLockClient) Use(hooks ...Hook) {
	c.hooks.WorkflowLock = append(c.hooks.WorkflowLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowlock.Intercept(f(g(h())))`.
func (c *WorkflowLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowLock = append(c.inters.WorkflowLock, interceptors...)
}

// Create returns a builder for creating a WorkflowLock entity.
func (c *WorkflowLockClient) Create() *WorkflowLockCreate {
	mutation := newWorkflowLockMutation(c.config, OpCreate)
	return &WorkflowLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowLock entities.
func (c *WorkflowLockClient) CreateBulk(builders ...*WorkflowLockCreate) *WorkflowLockCreateBulk {
	return &WorkflowLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowLockClient) MapCreateBulk(slice any, setFunc func(*WorkflowLockCreate, int)) *WorkflowLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowLockCreateBulk{err: fmt.Errorf("calling to WorkflowLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowLock.
func (c *WorkflowLockClient) Update() *WorkflowLockUpdate {
	mutation := newWorkflowLockMutation(c.config, OpUpdate)
	return &WorkflowLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowLockClient) UpdateOne(_m *WorkflowLock) *WorkflowLockUpdateOne {
	mutation := newWorkflowLockMutation(c.config, OpUpdateOne, withWorkflowLock(_m))
	return &WorkflowLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowLockClient) UpdateOneID(id uuid.UUID) *WorkflowLockUpdateOne {
	mutation := newWorkflowLockMutation(c.config, OpUpdateOne, withWorkflowLockID(id))
	return &WorkflowLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowLock.
func (c *WorkflowLockClient) Delete() *WorkflowLockDelete {
	mutation := newWorkflowLockMutation(c.config, OpDelete)
	return &WorkflowLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowLockClient) DeleteOne(_m *WorkflowLock) *WorkflowLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowLockClient) DeleteOneID(id uuid.UUID) *WorkflowLockDeleteOne {
	builder := c.Delete().Where(workflowlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowLockDeleteOne{builder}
}

// Query returns a query builder for WorkflowLock.
func (c *WorkflowLockClient) Query() *WorkflowLockQuery {
	return &WorkflowLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowLock},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowLock entity by its id.
func (c *WorkflowLockClient) Get(ctx context.Context, id uuid.UUID) (*WorkflowLock, error) {
	return c.Query().Where(workflowlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowLockClient) GetX(ctx context.Context, id uuid.UUID) *WorkflowLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAlert queries the alert edge of a WorkflowLock.
func (c *WorkflowLockClient) QueryAlert(_m *WorkflowLock) *CommitteeAlertQuery {
	query := (&CommitteeAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowlock.Table, workflowlock.FieldID, id),
			sqlgraph.To(committeealert.Table, committeealert.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowlock.AlertTable, workflowlock.AlertColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowLockClient) Hooks() []Hook {
	return c.hooks.WorkflowLock
}

// Interceptors returns the client interceptors.
func (c *WorkflowLockClient) Interceptors() []Interceptor {
	return c.inters.WorkflowLock
}

func (c *WorkflowLockClient) mutate(ctx context.Context, m *WorkflowLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowLock mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CommitteeAlert, ExtractedMetric, ProcessingJob, Property,
		WorkflowLock []ent.Hook
	}
	inters struct {
		CommitteeAlert, ExtractedMetric, ProcessingJob, Property,
		WorkflowLock []ent.Interceptor
	}
)
