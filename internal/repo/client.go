// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/availabilitypattern"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinic"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/slotoccupancy"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AvailabilityPattern is the client for interacting with the AvailabilityPattern builders.
	AvailabilityPattern *AvailabilityPatternClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// ClinicMember is the client for interacting with the ClinicMember builders.
	ClinicMember *ClinicMemberClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// SlotOccupancy is the client for interacting with the SlotOccupancy builders.
	SlotOccupancy *SlotOccupancyClient
	// Visit is the client for interacting with the Visit builders.
	Visit *VisitClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AvailabilityPattern = NewAvailabilityPatternClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.ClinicMember = NewClinicMemberClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.SlotOccupancy = NewSlotOccupancyClient(c.config)
	c.Visit = NewVisitClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		AvailabilityPattern: NewAvailabilityPatternClient(cfg),
		Clinic:              NewClinicClient(cfg),
		ClinicMember:        NewClinicMemberClient(cfg),
		Patient:             NewPatientClient(cfg),
		SlotOccupancy:       NewSlotOccupancyClient(cfg),
		Visit:               NewVisitClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AvailabilityPattern: NewAvailabilityPatternClient(cfg),
		Clinic:              NewClinicClient(cfg),
		ClinicMember:        NewClinicMemberClient(cfg),
		Patient:             NewPatientClient(cfg),
		SlotOccupancy:       NewSlotOccupancyClient(cfg),
		Visit:               NewVisitClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AvailabilityPattern.
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
		c.AvailabilityPattern, c.Clinic, c.ClinicMember, c.Patient, c.SlotOccupancy,
		c.Visit,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AvailabilityPattern, c.Clinic, c.ClinicMember, c.Patient, c.SlotOccupancy,
		c.Visit,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AvailabilityPatternMutation:
		return c.AvailabilityPattern.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *ClinicMemberMutation:
		return c.ClinicMember.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *SlotOccupancyMutation:
		return c.SlotOccupancy.mutate(ctx, m)
	case *VisitMutation:
		return c.Visit.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AvailabilityPatternClient is a client for the AvailabilityPattern schema.
type AvailabilityPatternClient struct {
	config
}

// NewAvailabilityPatternClient returns a client for the AvailabilityPattern from the given config.
func NewAvailabilityPatternClient(c config) *AvailabilityPatternClient {
	return &AvailabilityPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilitypattern.Hooks(f(g(h())))`.
func (c *AvailabilityPatternClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityPattern = append(c.hooks.AvailabilityPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilitypattern.Intercept(f(g(h())))`.
func (c *AvailabilityPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityPattern = append(c.inters.AvailabilityPattern, interceptors...)
}

// Create returns a builder for creating a AvailabilityPattern entity.
func (c *AvailabilityPatternClient) Create() *AvailabilityPatternCreate {
	mutation := newAvailabilityPatternMutation(c.config, OpCreate)
	return &AvailabilityPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityPattern entities.
func (c *AvailabilityPatternClient) CreateBulk(builders ...*AvailabilityPatternCreate) *AvailabilityPatternCreateBulk {
	return &AvailabilityPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityPatternClient) MapCreateBulk(slice any, setFunc func(*AvailabilityPatternCreate, int)) *AvailabilityPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityPatternCreateBulk{err: fmt.Errorf("calling to AvailabilityPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityPattern.
func (c *AvailabilityPatternClient) Update() *AvailabilityPatternUpdate {
	mutation := newAvailabilityPatternMutation(c.config, OpUpdate)
	return &AvailabilityPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityPatternClient) UpdateOne(_m *AvailabilityPattern) *AvailabilityPatternUpdateOne {
	mutation := newAvailabilityPatternMutation(c.config, OpUpdateOne, withAvailabilityPattern(_m))
	return &AvailabilityPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityPatternClient) UpdateOneID(id uuid.UUID) *AvailabilityPatternUpdateOne {
	mutation := newAvailabilityPatternMutation(c.config, OpUpdateOne, withAvailabilityPatternID(id))
	return &AvailabilityPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityPattern.
func (c *AvailabilityPatternClient) Delete() *AvailabilityPatternDelete {
	mutation := newAvailabilityPatternMutation(c.config, OpDelete)
	return &AvailabilityPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityPatternClient) DeleteOne(_m *AvailabilityPattern) *AvailabilityPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityPatternClient) DeleteOneID(id uuid.UUID) *AvailabilityPatternDeleteOne {
	builder := c.Delete().Where(availabilitypattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityPatternDeleteOne{builder}
}

// Query returns a query builder for AvailabilityPattern.
func (c *AvailabilityPatternClient) Query() *AvailabilityPatternQuery {
	return &AvailabilityPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityPattern entity by its id.
func (c *AvailabilityPatternClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityPattern, error) {
	return c.Query().Where(availabilitypattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityPatternClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityPatternClient) Hooks() []Hook {
	return c.hooks.AvailabilityPattern
}

// Interceptors returns the client interceptors.
func (c *AvailabilityPatternClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityPattern
}

func (c *AvailabilityPatternClient) mutate(ctx context.Context, m *AvailabilityPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityPattern mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id uuid.UUID) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id uuid.UUID) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id uuid.UUID) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Clinic mutation op: %q", m.Op())
	}
}

// ClinicMemberClient is a client for the ClinicMember schema.
type ClinicMemberClient struct {
	config
}

// NewClinicMemberClient returns a client for the ClinicMember from the given config.
func NewClinicMemberClient(c config) *ClinicMemberClient {
	return &ClinicMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicmember.Hooks(f(g(h())))`.
func (c *ClinicMemberClient) Use(hooks ...Hook) {
	c.hooks.ClinicMember = append(c.hooks.ClinicMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicmember.Intercept(f(g(h())))`.
func (c *ClinicMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicMember = append(c.inters.ClinicMember, interceptors...)
}

// Create returns a builder for creating a ClinicMember entity.
func (c *ClinicMemberClient) Create() *ClinicMemberCreate {
	mutation := newClinicMemberMutation(c.config, OpCreate)
	return &ClinicMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicMember entities.
func (c *ClinicMemberClient) CreateBulk(builders ...*ClinicMemberCreate) *ClinicMemberCreateBulk {
	return &ClinicMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicMemberClient) MapCreateBulk(slice any, setFunc func(*ClinicMemberCreate, int)) *ClinicMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicMemberCreateBulk{err: fmt.Errorf("calling to ClinicMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicMember.
func (c *ClinicMemberClient) Update() *ClinicMemberUpdate {
	mutation := newClinicMemberMutation(c.config, OpUpdate)
	return &ClinicMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicMemberClient) UpdateOne(_m *ClinicMember) *ClinicMemberUpdateOne {
	mutation := newClinicMemberMutation(c.config, OpUpdateOne, withClinicMember(_m))
	return &ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicMemberClient) UpdateOneID(id uuid.UUID) *ClinicMemberUpdateOne {
	mutation := newClinicMemberMutation(c.config, OpUpdateOne, withClinicMemberID(id))
	return &ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicMember.
func (c *ClinicMemberClient) Delete() *ClinicMemberDelete {
	mutation := newClinicMemberMutation(c.config, OpDelete)
	return &ClinicMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicMemberClient) DeleteOne(_m *ClinicMember) *ClinicMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicMemberClient) DeleteOneID(id uuid.UUID) *ClinicMemberDeleteOne {
	builder := c.Delete().Where(clinicmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicMemberDeleteOne{builder}
}

// Query returns a query builder for ClinicMember.
func (c *ClinicMemberClient) Query() *ClinicMemberQuery {
	return &ClinicMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicMember},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicMember entity by its id.
func (c *ClinicMemberClient) Get(ctx context.Context, id uuid.UUID) (*ClinicMember, error) {
	return c.Query().Where(clinicmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicMemberClient) GetX(ctx context.Context, id uuid.UUID) *ClinicMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClinicMemberClient) Hooks() []Hook {
	return c.hooks.ClinicMember
}

// Interceptors returns the client interceptors.
func (c *ClinicMemberClient) Interceptors() []Interceptor {
	return c.inters.ClinicMember
}

func (c *ClinicMemberClient) mutate(ctx context.Context, m *ClinicMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicMember mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// SlotOccupancyClient is a client for the SlotOccupancy schema.
type SlotOccupancyClient struct {
	config
}

// NewSlotOccupancyClient returns a client for the SlotOccupancy from the given config.
func NewSlotOccupancyClient(c config) *SlotOccupancyClient {
	return &SlotOccupancyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slotoccupancy.Hooks(f(g(h())))`.
func (c *SlotOccupancyClient) Use(hooks ...Hook) {
	c.hooks.SlotOccupancy = append(c.hooks.SlotOccupancy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slotoccupancy.Intercept(f(g(h())))`.
func (c *SlotOccupancyClient) Intercept(interceptors ...Interceptor) {
	c.inters.SlotOccupancy = append(c.inters.SlotOccupancy, interceptors...)
}

// Create returns a builder for creating a SlotOccupancy entity.
func (c *SlotOccupancyClient) Create() *SlotOccupancyCreate {
	mutation := newSlotOccupancyMutation(c.config, OpCreate)
	return &SlotOccupancyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SlotOccupancy entities.
func (c *SlotOccupancyClient) CreateBulk(builders ...*SlotOccupancyCreate) *SlotOccupancyCreateBulk {
	return &SlotOccupancyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlotOccupancyClient) MapCreateBulk(slice any, setFunc func(*SlotOccupancyCreate, int)) *SlotOccupancyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlotOccupancyCreateBulk{err: fmt.Errorf("calling to SlotOccupancyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlotOccupancyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlotOccupancyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SlotOccupancy.
func (c *SlotOccupancyClient) Update() *SlotOccupancyUpdate {
	mutation := newSlotOccupancyMutation(c.config, OpUpdate)
	return &SlotOccupancyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlotOccupancyClient) UpdateOne(_m *SlotOccupancy) *SlotOccupancyUpdateOne {
	mutation := newSlotOccupancyMutation(c.config, OpUpdateOne, withSlotOccupancy(_m))
	return &SlotOccupancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlotOccupancyClient) UpdateOneID(id uuid.UUID) *SlotOccupancyUpdateOne {
	mutation := newSlotOccupancyMutation(c.config, OpUpdateOne, withSlotOccupancyID(id))
	return &SlotOccupancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SlotOccupancy.
func (c *SlotOccupancyClient) Delete() *SlotOccupancyDelete {
	mutation := newSlotOccupancyMutation(c.config, OpDelete)
	return &SlotOccupancyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlotOccupancyClient) DeleteOne(_m *SlotOccupancy) *SlotOccupancyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlotOccupancyClient) DeleteOneID(id uuid.UUID) *SlotOccupancyDeleteOne {
	builder := c.Delete().Where(slotoccupancy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlotOccupancyDeleteOne{builder}
}

// Query returns a query builder for SlotOccupancy.
func (c *SlotOccupancyClient) Query() *SlotOccupancyQuery {
	return &SlotOccupancyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlotOccupancy},
		inters: c.Interceptors(),
	}
}

// Get returns a SlotOccupancy entity by its id.
func (c *SlotOccupancyClient) Get(ctx context.Context, id uuid.UUID) (*SlotOccupancy, error) {
	return c.Query().Where(slotoccupancy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlotOccupancyClient) GetX(ctx context.Context, id uuid.UUID) *SlotOccupancy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlotOccupancyClient) Hooks() []Hook {
	return c.hooks.SlotOccupancy
}

// Interceptors returns the client interceptors.
func (c *SlotOccupancyClient) Interceptors() []Interceptor {
	return c.inters.SlotOccupancy
}

func (c *SlotOccupancyClient) mutate(ctx context.Context, m *SlotOccupancyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlotOccupancyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlotOccupancyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlotOccupancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlotOccupancyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SlotOccupancy mutation op: %q", m.Op())
	}
}

// VisitClient is a client for the Visit schema.
type VisitClient struct {
	config
}

// NewVisitClient returns a client for the Visit from the given config.
func NewVisitClient(c config) *VisitClient {
	return &VisitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `visit.Hooks(f(g(h())))`.
func (c *VisitClient) Use(hooks ...Hook) {
	c.hooks.Visit = append(c.hooks.Visit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `visit.Intercept(f(g(h())))`.
func (c *VisitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Visit = append(c.inters.Visit, interceptors...)
}

// Create returns a builder for creating a Visit entity.
func (c *VisitClient) Create() *VisitCreate {
	mutation := newVisitMutation(c.config, OpCreate)
	return &VisitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Visit entities.
func (c *VisitClient) CreateBulk(builders ...*VisitCreate) *VisitCreateBulk {
	return &VisitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VisitClient) MapCreateBulk(slice any, setFunc func(*VisitCreate, int)) *VisitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VisitCreateBulk{err: fmt.Errorf("calling to VisitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VisitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VisitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Visit.
func (c *VisitClient) Update() *VisitUpdate {
	mutation := newVisitMutation(c.config, OpUpdate)
	return &VisitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VisitClient) UpdateOne(_m *Visit) *VisitUpdateOne {
	mutation := newVisitMutation(c.config, OpUpdateOne, withVisit(_m))
	return &VisitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VisitClient) UpdateOneID(id uuid.UUID) *VisitUpdateOne {
	mutation := newVisitMutation(c.config, OpUpdateOne, withVisitID(id))
	return &VisitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Visit.
func (c *VisitClient) Delete() *VisitDelete {
	mutation := newVisitMutation(c.config, OpDelete)
	return &VisitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VisitClient) DeleteOne(_m *Visit) *VisitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VisitClient) DeleteOneID(id uuid.UUID) *VisitDeleteOne {
	builder := c.Delete().Where(visit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VisitDeleteOne{builder}
}

// Query returns a query builder for Visit.
func (c *VisitClient) Query() *VisitQuery {
	return &VisitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVisit},
		inters: c.Interceptors(),
	}
}

// Get returns a Visit entity by its id.
func (c *VisitClient) Get(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return c.Query().Where(visit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VisitClient) GetX(ctx context.Context, id uuid.UUID) *Visit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VisitClient) Hooks() []Hook {
	return c.hooks.Visit
}

// Interceptors returns the client interceptors.
func (c *VisitClient) Interceptors() []Interceptor {
	return c.inters.Visit
}

func (c *VisitClient) mutate(ctx context.Context, m *VisitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VisitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VisitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VisitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VisitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Visit mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AvailabilityPattern, Clinic, ClinicMember, Patient, SlotOccupancy,
		Visit []ent.Hook
	}
	inters struct {
		AvailabilityPattern, Clinic, ClinicMember, Patient, SlotOccupancy,
		Visit []ent.Interceptor
	}
)
