// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Foja is the client for interacting with the Foja builders.
	Foja *FojaClient
	// Paciente is the client for interacting with the Paciente builders.
	Paciente *PacienteClient
	// Usuario is the client for interacting with the Usuario builders.
	Usuario *UsuarioClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Foja = NewFojaClient(c.config)
	c.Paciente = NewPacienteClient(c.config)
	c.Usuario = NewUsuarioClient(c.config)
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
		ctx:      ctx,
		config:   cfg,
		Foja:     NewFojaClient(cfg),
		Paciente: NewPacienteClient(cfg),
		Usuario:  NewUsuarioClient(cfg),
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
		ctx:      ctx,
		config:   cfg,
		Foja:     NewFojaClient(cfg),
		Paciente: NewPacienteClient(cfg),
		Usuario:  NewUsuarioClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Foja.
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
	c.Foja.Use(hooks...)
	c.Paciente.Use(hooks...)
	c.Usuario.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Foja.Intercept(interceptors...)
	c.Paciente.Intercept(interceptors...)
	c.Usuario.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FojaMutation:
		return c.Foja.mutate(ctx, m)
	case *PacienteMutation:
		return c.Paciente.mutate(ctx, m)
	case *UsuarioMutation:
		return c.Usuario.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// FojaClient is a client for the Foja schema.
type FojaClient struct {
	config
}

// NewFojaClient returns a client for the Foja from the given config.
func NewFojaClient(c config) *FojaClient {
	return &FojaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `foja.Hooks(f(g(h())))`.
func (c *FojaClient) Use(hooks ...Hook) {
	c.hooks.Foja = append(c.hooks.Foja, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `foja.Intercept(f(g(h())))`.
func (c *FojaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Foja = append(c.inters.Foja, interceptors...)
}

// Create returns a builder for creating a Foja entity.
func (c *FojaClient) Create() *FojaCreate {
	mutation := newFojaMutation(c.config, OpCreate)
	return &FojaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Foja entities.
func (c *FojaClient) CreateBulk(builders ...*FojaCreate) *FojaCreateBulk {
	return &FojaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FojaClient) MapCreateBulk(slice any, setFunc func(*FojaCreate, int)) *FojaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FojaCreateBulk{err: fmt.Errorf("calling to FojaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FojaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FojaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Foja.
func (c *FojaClient) Update() *FojaUpdate {
	mutation := newFojaMutation(c.config, OpUpdate)
	return &FojaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FojaClient) UpdateOne(_m *Foja) *FojaUpdateOne {
	mutation := newFojaMutation(c.config, OpUpdateOne, withFoja(_m))
	return &FojaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FojaClient) UpdateOneID(id uuid.UUID) *FojaUpdateOne {
	mutation := newFojaMutation(c.config, OpUpdateOne, withFojaID(id))
	return &FojaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Foja.
func (c *FojaClient) Delete() *FojaDelete {
	mutation := newFojaMutation(c.config, OpDelete)
	return &FojaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FojaClient) DeleteOne(_m *Foja) *FojaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FojaClient) DeleteOneID(id uuid.UUID) *FojaDeleteOne {
	builder := c.Delete().Where(foja.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FojaDeleteOne{builder}
}

// Query returns a query builder for Foja.
func (c *FojaClient) Query() *FojaQuery {
	return &FojaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFoja},
		inters: c.Interceptors(),
	}
}

// Get returns a Foja entity by its id.
func (c *FojaClient) Get(ctx context.Context, id uuid.UUID) (*Foja, error) {
	return c.Query().Where(foja.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FojaClient) GetX(ctx context.Context, id uuid.UUID) *Foja {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResponsable queries the responsable edge of a Foja.
func (c *FojaClient) QueryResponsable(_m *Foja) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(foja.Table, foja.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, foja.ResponsableTable, foja.ResponsableColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FojaClient) Hooks() []Hook {
	return c.hooks.Foja
}

// Interceptors returns the client interceptors.
func (c *FojaClient) Interceptors() []Interceptor {
	return c.inters.Foja
}

func (c *FojaClient) mutate(ctx context.Context, m *FojaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FojaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FojaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FojaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FojaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Foja mutation op: %q", m.Op())
	}
}

// PacienteClient is a client for the Paciente schema.
type PacienteClient struct {
	config
}

// NewPacienteClient returns a client for the Paciente from the given config.
func NewPacienteClient(c config) *PacienteClient {
	return &PacienteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paciente.Hooks(f(g(h())))`.
func (c *PacienteClient) Use(hooks ...Hook) {
	c.hooks.Paciente = append(c.hooks.Paciente, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paciente.Intercept(f(g(h())))`.
func (c *PacienteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paciente = append(c.inters.Paciente, interceptors...)
}

// Create returns a builder for creating a Paciente entity.
func (c *PacienteClient) Create() *PacienteCreate {
	mutation := newPacienteMutation(c.config, OpCreate)
	return &PacienteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paciente entities.
func (c *PacienteClient) CreateBulk(builders ...*PacienteCreate) *PacienteCreateBulk {
	return &PacienteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PacienteClient) MapCreateBulk(slice any, setFunc func(*PacienteCreate, int)) *PacienteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PacienteCreateBulk{err: fmt.Errorf("calling to PacienteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PacienteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PacienteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paciente.
func (c *PacienteClient) Update() *PacienteUpdate {
	mutation := newPacienteMutation(c.config, OpUpdate)
	return &PacienteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PacienteClient) UpdateOne(_m *Paciente) *PacienteUpdateOne {
	mutation := newPacienteMutation(c.config, OpUpdateOne, withPaciente(_m))
	return &PacienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PacienteClient) UpdateOneID(id uuid.UUID) *PacienteUpdateOne {
	mutation := newPacienteMutation(c.config, OpUpdateOne, withPacienteID(id))
	return &PacienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paciente.
func (c *PacienteClient) Delete() *PacienteDelete {
	mutation := newPacienteMutation(c.config, OpDelete)
	return &PacienteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PacienteClient) DeleteOne(_m *Paciente) *PacienteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PacienteClient) DeleteOneID(id uuid.UUID) *PacienteDeleteOne {
	builder := c.Delete().Where(paciente.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PacienteDeleteOne{builder}
}

// Query returns a query builder for Paciente.
func (c *PacienteClient) Query() *PacienteQuery {
	return &PacienteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaciente},
		inters: c.Interceptors(),
	}
}

// Get returns a Paciente entity by its id.
func (c *PacienteClient) Get(ctx context.Context, id uuid.UUID) (*Paciente, error) {
	return c.Query().Where(paciente.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PacienteClient) GetX(ctx context.Context, id uuid.UUID) *Paciente {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PacienteClient) Hooks() []Hook {
	return c.hooks.Paciente
}

// Interceptors returns the client interceptors.
func (c *PacienteClient) Interceptors() []Interceptor {
	return c.inters.Paciente
}

func (c *PacienteClient) mutate(ctx context.Context, m *PacienteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PacienteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PacienteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PacienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PacienteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Paciente mutation op: %q", m.Op())
	}
}

// UsuarioClient is a client for the Usuario schema.
type UsuarioClient struct {
	config
}

// NewUsuarioClient returns a client for the Usuario from the given config.
func NewUsuarioClient(c config) *UsuarioClient {
	return &UsuarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usuario.Hooks(f(g(h())))`.
func (c *UsuarioClient) Use(hooks ...Hook) {
	c.hooks.Usuario = append(c.hooks.Usuario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usuario.Intercept(f(g(h())))`.
func (c *UsuarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Usuario = append(c.inters.Usuario, interceptors...)
}

// Create returns a builder for creating a Usuario entity.
func (c *UsuarioClient) Create() *UsuarioCreate {
	mutation := newUsuarioMutation(c.config, OpCreate)
	return &UsuarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Usuario entities.
func (c *UsuarioClient) CreateBulk(builders ...*UsuarioCreate) *UsuarioCreateBulk {
	return &UsuarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsuarioClient) MapCreateBulk(slice any, setFunc func(*UsuarioCreate, int)) *UsuarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsuarioCreateBulk{err: fmt.Errorf("calling to UsuarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsuarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsuarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Usuario.
func (c *UsuarioClient) Update() *UsuarioUpdate {
	mutation := newUsuarioMutation(c.config, OpUpdate)
	return &UsuarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsuarioClient) UpdateOne(_m *Usuario) *UsuarioUpdateOne {
	mutation := newUsuarioMutation(c.config, OpUpdateOne, withUsuario(_m))
	return &UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsuarioClient) UpdateOneID(id uuid.UUID) *UsuarioUpdateOne {
	mutation := newUsuarioMutation(c.config, OpUpdateOne, withUsuarioID(id))
	return &UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Usuario.
func (c *UsuarioClient) Delete() *UsuarioDelete {
	mutation := newUsuarioMutation(c.config, OpDelete)
	return &UsuarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsuarioClient) DeleteOne(_m *Usuario) *UsuarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsuarioClient) DeleteOneID(id uuid.UUID) *UsuarioDeleteOne {
	builder := c.Delete().Where(usuario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsuarioDeleteOne{builder}
}

// Query returns a query builder for Usuario.
func (c *UsuarioClient) Query() *UsuarioQuery {
	return &UsuarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsuario},
		inters: c.Interceptors(),
	}
}

// Get returns a Usuario entity by its id.
func (c *UsuarioClient) Get(ctx context.Context, id uuid.UUID) (*Usuario, error) {
	return c.Query().Where(usuario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsuarioClient) GetX(ctx context.Context, id uuid.UUID) *Usuario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsuarioClient) Hooks() []Hook {
	return c.hooks.Usuario
}

// Interceptors returns the client interceptors.
func (c *UsuarioClient) Interceptors() []Interceptor {
	return c.inters.Usuario
}

func (c *UsuarioClient) mutate(ctx context.Context, m *UsuarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsuarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsuarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsuarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Usuario mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Foja, Paciente, Usuario []ent.Hook
	}
	inters struct {
		Foja, Paciente, Usuario []ent.Interceptor
	}
)
