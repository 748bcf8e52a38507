package pagesrv

import (
	"context"
	"fmt"
	"time"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type outcome struct {
	records      []pagedomain.Record
	probeHasMore bool
	total        int64
	haveTotal    bool
}

// Execute issues the operations selected by needs and assembles the result.
// Any failure discards whatever the other operation produced.
func (o *Orchestrator) Execute(ctx context.Context, plan *pagedomain.Plan, needs pagedomain.Needs) (*pagedomain.Result, error) {
	log := o.log.With(zap.String("request_id", uuid.NewString()))
	log.Debug("executing pagination plan",
		zap.Bool("needs_items", needs.Items),
		zap.Bool("needs_count", needs.Count),
		zap.Bool("cursor", plan.Cursor),
		zap.Int("current_page", plan.CurrentPage),
		zap.Int("per_page", plan.PerPage),
		zap.Int("skip", plan.FindParams.Args.Skip),
		zap.Int("limit", plan.FindParams.Args.Limit),
	)

	if !needs.Items {
		o.metrics.skip(pagedomain.RoleFind, o.cfg.FindOperation)
	}
	if !needs.Count {
		o.metrics.skip(pagedomain.RoleCount, o.cfg.CountOperation)
	}

	var out outcome
	tasks := make([]func(context.Context) error, 0, 2)
	if needs.Items {
		tasks = append(tasks, func(ctx context.Context) error {
			records, err := o.runFind(ctx, plan.FindParams)
			if err != nil {
				return err
			}
			out.records, out.probeHasMore = trimProbe(records, plan.FindParams.Args.Limit)
			return nil
		})
	}
	if needs.Count {
		tasks = append(tasks, func(ctx context.Context) error {
			total, err := o.runCount(ctx, plan.CountParams)
			if err != nil {
				return err
			}
			out.total, out.haveTotal = total, true
			return nil
		})
	}

	if err := o.run(ctx, tasks); err != nil {
		log.Warn("pagination failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return o.assemble(plan, out), nil
}

func (o *Orchestrator) run(ctx context.Context, tasks []func(context.Context) error) error {
	if o.cfg.Sequential || len(tasks) < 2 {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			return task(gctx)
		})
	}
	return g.Wait()
}

func (o *Orchestrator) runFind(ctx context.Context, params *pagedomain.ResolveParams) ([]pagedomain.Record, error) {
	res, err := o.call(ctx, pagedomain.RoleFind, o.cfg.FindOperation, o.find, params)
	if err != nil {
		return nil, err
	}

	records, err := toRecords(res)
	if err != nil {
		return nil, &pagedomain.UpstreamOperationError{Role: pagedomain.RoleFind, Operation: o.cfg.FindOperation, Err: err}
	}
	return records, nil
}

func (o *Orchestrator) runCount(ctx context.Context, params *pagedomain.ResolveParams) (int64, error) {
	res, err := o.call(ctx, pagedomain.RoleCount, o.cfg.CountOperation, o.count, params)
	if err != nil {
		return 0, err
	}

	total, err := toCount(res)
	if err != nil {
		return 0, &pagedomain.UpstreamOperationError{Role: pagedomain.RoleCount, Operation: o.cfg.CountOperation, Err: err}
	}
	return total, nil
}

func (o *Orchestrator) call(
	ctx context.Context,
	role pagedomain.Role,
	name string,
	op pagedomain.Operation,
	params *pagedomain.ResolveParams,
) (any, error) {
	ctx, span := o.tracer.Start(ctx, "pagination."+string(role), trace.WithAttributes(
		attribute.String("pagination.operation", name),
	))
	defer span.End()

	start := time.Now()
	res, err := op.Resolve(ctx, params)
	o.metrics.observe(role, name, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, &pagedomain.UpstreamOperationError{Role: role, Operation: name, Err: err}
	}
	return res, nil
}

// trimProbe drops the over-fetched record. Its presence means more records
// exist beyond the current page.
func trimProbe(records []pagedomain.Record, limit int) ([]pagedomain.Record, bool) {
	if limit <= 0 || len(records) < limit {
		return records, false
	}
	return records[:limit-1], true
}

func toRecords(v any) ([]pagedomain.Record, error) {
	switch t := v.(type) {
	case nil:
		return []pagedomain.Record{}, nil
	case []pagedomain.Record:
		return t, nil
	case []map[string]any:
		out := make([]pagedomain.Record, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: find returned %T", pagedomain.ErrUnexpectedResult, v)
	}
}

func toCount(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float64:
		if t == float64(int64(t)) {
			return int64(t), nil
		}
	}
	return 0, fmt.Errorf("%w: count returned %T(%v)", pagedomain.ErrUnexpectedResult, v, v)
}
