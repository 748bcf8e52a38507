// Package pagesrv composes a find and a count operation into a single
// paginated query, calling only the operations the requested shape needs.
package pagesrv

import (
	"context"
	"errors"
	"fmt"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const OperationName = "pagination"

//go:generate mockery --name OperationRegistry --output ./mocks --outpkg mocks --with-expecter --filename operation_registry.go
type OperationRegistry interface {
	pagedomain.OperationRegistry
}

//go:generate mockery --name Operation --output ./mocks --outpkg mocks --with-expecter --filename operation.go
type Operation interface {
	pagedomain.Operation
}

type options struct {
	log     *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

type Option func(o *options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// Orchestrator is immutable once built and safe for concurrent use.
type Orchestrator struct {
	cfg Config

	find  pagedomain.Operation
	count pagedomain.Operation

	log     *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// NewOrchestrator validates that registry exposes both configured
// operations and returns an orchestrator bound to them.
func NewOrchestrator(registry pagedomain.OperationRegistry, cfg Config, opts ...Option) (*Orchestrator, error) {
	if registry == nil {
		return nil, &pagedomain.ConfigurationError{Err: pagedomain.ErrNilRegistry}
	}

	cfg = cfg.withDefaults()

	count, err := lookup(registry, "countOperation", cfg.CountOperation)
	if err != nil {
		return nil, err
	}
	find, err := lookup(registry, "findOperation", cfg.FindOperation)
	if err != nil {
		return nil, err
	}

	if cfg.PerPage < 0 {
		return nil, &pagedomain.ConfigurationError{
			Option: "perPage",
			Err:    fmt.Errorf("%w: perPage must be >= 1, got %d", pagedomain.ErrInvalidArguments, cfg.PerPage),
		}
	}
	if err := cfg.validateMode(); err != nil {
		return nil, &pagedomain.ConfigurationError{Option: "cursorPageInfo", Err: err}
	}

	o := &options{
		log:    zap.NewNop(),
		tracer: otel.Tracer("github.com/10Narratives/pager/internal/services/pagination"),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Orchestrator{
		cfg:     cfg,
		find:    find,
		count:   count,
		log:     o.log,
		metrics: o.metrics,
		tracer:  o.tracer,
	}, nil
}

func lookup(registry pagedomain.OperationRegistry, option, name string) (pagedomain.Operation, error) {
	if name == "" {
		return nil, &pagedomain.ConfigurationError{Option: option, Err: pagedomain.ErrMissingOption}
	}
	if !registry.HasOperation(name) {
		return nil, &pagedomain.ConfigurationError{Option: option, Operation: name, Err: pagedomain.ErrUnknownOperation}
	}

	op, err := registry.GetOperation(name)
	if err != nil {
		return nil, &pagedomain.ConfigurationError{Option: option, Operation: name, Err: err}
	}
	if op == nil {
		return nil, &pagedomain.ConfigurationError{Option: option, Operation: name, Err: pagedomain.ErrUnknownOperation}
	}
	return op, nil
}

func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Paginate analyzes the requested shape, plans the sub-operation calls,
// runs the needed ones and assembles the combined result.
func (o *Orchestrator) Paginate(ctx context.Context, req *Request) (*pagedomain.Result, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", pagedomain.ErrInvalidArguments)
	}

	plan, err := o.Plan(req)
	if err != nil {
		return nil, err
	}

	return o.Execute(ctx, plan, o.Needs(plan))
}

func (o *Orchestrator) Plan(req *Request) (*pagedomain.Plan, error) {
	return PlanQuery(o.cfg, req)
}

// Needs analyzes the shape of plan under the orchestrator's configuration.
func (o *Orchestrator) Needs(plan *pagedomain.Plan) pagedomain.Needs {
	return analyze(o.effectiveShape(plan), o.cfg.ProbeHasNextPage)
}

func (o *Orchestrator) effectiveShape(plan *pagedomain.Plan) pagedomain.Shape {
	if plan.Cursor && o.cfg.CursorPageInfo == CursorPageInfoSuppress {
		return withoutPageInfo(plan.Shape)
	}
	return plan.Shape
}

// Resolve lets the orchestrator be registered and invoked like any other operation.
func (o *Orchestrator) Resolve(ctx context.Context, params *pagedomain.ResolveParams) (any, error) {
	if params == nil {
		return nil, errors.New("resolve params are nil")
	}
	return o.Paginate(ctx, &Request{
		Args:     params.Args,
		Shape:    params.Projection,
		RawQuery: params.RawQuery,
	})
}

// DeclaredArgs returns page and perPage followed by the arguments of the
// find operation, without the internal skip and limit bounds.
func (o *Orchestrator) DeclaredArgs() []pagedomain.ArgSpec {
	args := []pagedomain.ArgSpec{
		{Name: "page", Type: "Int"},
		{Name: "perPage", Type: "Int"},
	}

	declarer, ok := o.find.(pagedomain.ArgsDeclarer)
	if !ok {
		return args
	}
	for _, a := range declarer.DeclaredArgs() {
		switch a.Name {
		case "skip", "limit", "page", "perPage":
			continue
		}
		args = append(args, a)
	}
	return args
}

func (o *Orchestrator) Descriptor() pagedomain.Descriptor {
	fields := []string{fieldItems, fieldCount}
	for _, f := range pageInfoFields {
		fields = append(fields, fieldPageInfo+"."+f)
	}

	return pagedomain.Descriptor{
		Name:   OperationName,
		Kind:   pagedomain.KindQuery,
		Args:   o.DeclaredArgs(),
		Fields: fields,
	}
}
