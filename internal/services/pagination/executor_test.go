package pagesrv_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/10Narratives/pager/internal/registry"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	"github.com/10Narratives/pager/internal/services/pagination/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockedOps struct {
	find  *mocks.Operation
	count *mocks.Operation
	o     *pagesrv.Orchestrator
}

func newMockedOrchestrator(t *testing.T, cfg pagesrv.Config, opts ...pagesrv.Option) mockedOps {
	t.Helper()

	find := mocks.NewOperation(t)
	count := mocks.NewOperation(t)

	reg := registry.New()
	reg.SetOperation("findMany", find)
	reg.SetOperation("count", count)

	cfg.FindOperation = "findMany"
	cfg.CountOperation = "count"

	opts = append([]pagesrv.Option{pagesrv.WithLogger(zaptest.NewLogger(t))}, opts...)
	o, err := pagesrv.NewOrchestrator(reg, cfg, opts...)
	require.NoError(t, err)

	return mockedOps{find: find, count: count, o: o}
}

func records(n int) []pagedomain.Record {
	out := make([]pagedomain.Record, n)
	for i := range out {
		out[i] = pagedomain.Record{"id": i + 1}
	}
	return out
}

func TestPaginate_SkipsCount(t *testing.T) {
	t.Parallel()

	shapes := [][]string{
		{"items.name"},
		{"__typename"},
		{"items.name", "pageInfo.currentPage", "pageInfo.perPage"},
	}

	for _, paths := range shapes {
		t.Run(strings.Join(paths, ","), func(t *testing.T) {
			t.Parallel()

			m := newMockedOrchestrator(t, pagesrv.Config{})
			m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(records(2), nil).Once()

			res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
				Shape: pagedomain.ShapeFromPaths(paths),
			})
			require.NoError(t, err)
			require.Nil(t, res.Count)
			m.count.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestPaginate_SkipsFind(t *testing.T) {
	t.Parallel()

	shapes := [][]string{
		{"count"},
		{"pageInfo.itemCount"},
		{"pageInfo.hasNextPage", "count"},
	}

	for _, paths := range shapes {
		t.Run(strings.Join(paths, ","), func(t *testing.T) {
			t.Parallel()

			m := newMockedOrchestrator(t, pagesrv.Config{})
			m.count.EXPECT().Resolve(mock.Anything, mock.Anything).Return(7, nil).Once()

			res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
				Shape: pagedomain.ShapeFromPaths(paths),
			})
			require.NoError(t, err)
			require.Nil(t, res.Items)
			m.find.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestPaginate_EmptyShape(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{})

	res, err := m.o.Paginate(context.Background(), &pagesrv.Request{})
	require.NoError(t, err)
	require.Equal(t, &pagedomain.Result{}, res)
}

func TestPaginate_ForwardsArguments(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{PerPage: 3})

	filter := pagedomain.Filter{"gender": "m"}
	sort := pagedomain.Sort{{Field: "age", Desc: true}}

	m.find.EXPECT().
		Resolve(mock.Anything, mock.MatchedBy(func(p *pagedomain.ResolveParams) bool {
			return p.Args.Limit == 4 &&
				p.Args.Skip == 3 &&
				p.Args.Filter["gender"] == "m" &&
				len(p.Args.Sort) == 1 &&
				p.Args.Extra["locale"] == "en" &&
				p.Projection.Has("name") &&
				!p.Projection.Has("items")
		})).
		Return(records(4), nil).
		Once()
	m.count.EXPECT().
		Resolve(mock.Anything, mock.MatchedBy(func(p *pagedomain.ResolveParams) bool {
			return p.Args.Filter["gender"] == "m" &&
				p.Args.Sort == nil &&
				p.Args.Limit == 0 &&
				p.Args.Skip == 0 &&
				p.Args.Extra == nil
		})).
		Return(int64(10), nil).
		Once()

	res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
		Args: pagedomain.Args{
			Page:   2,
			Filter: filter,
			Sort:   sort,
			Extra:  map[string]any{"locale": "en"},
		},
		Shape: pagedomain.ShapeFromPaths([]string{"items.name", "count"}),
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	require.Equal(t, int64(10), *res.Count)
}

func TestPaginate_CountGetsEmptyFilter(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{})
	m.count.EXPECT().
		Resolve(mock.Anything, mock.MatchedBy(func(p *pagedomain.ResolveParams) bool {
			return p.Args.Filter != nil && len(p.Args.Filter) == 0
		})).
		Return(0, nil).
		Once()

	res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
		Shape: pagedomain.ShapeFromPaths([]string{"count"}),
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), *res.Count)
}

func TestPaginate_NeverReturnsMoreThanPerPage(t *testing.T) {
	t.Parallel()

	for _, returned := range []int{0, 4, 5, 6, 50} {
		m := newMockedOrchestrator(t, pagesrv.Config{PerPage: 5})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(records(returned), nil).Once()

		res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id"}),
		})
		require.NoError(t, err)
		require.LessOrEqual(t, len(res.Items), 5)
		require.NotNil(t, res.Items)
	}
}

func TestPaginate_UpstreamErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("find fails", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id"}),
		})

		var upErr *pagedomain.UpstreamOperationError
		require.ErrorAs(t, err, &upErr)
		require.Equal(t, pagedomain.RoleFind, upErr.Role)
		require.Equal(t, "findMany", upErr.Operation)
		require.ErrorIs(t, err, boom)
	})

	t.Run("count fails while find succeeds", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(records(1), nil).Maybe()
		m.count.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, boom).Once()

		res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
		})
		require.Nil(t, res)

		var upErr *pagedomain.UpstreamOperationError
		require.ErrorAs(t, err, &upErr)
		require.Equal(t, pagedomain.RoleCount, upErr.Role)
		require.Equal(t, "count", upErr.Operation)
	})

	t.Run("find fails and count waits for cancellation", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, boom).Once()
		m.count.EXPECT().
			Resolve(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *pagedomain.ResolveParams) (any, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}).
			Once()

		_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestPaginate_UnexpectedResults(t *testing.T) {
	t.Parallel()

	t.Run("find returns a scalar", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return("nope", nil).Once()

		_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id"}),
		})
		require.ErrorIs(t, err, pagedomain.ErrUnexpectedResult)
	})

	t.Run("count returns a fraction", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.count.EXPECT().Resolve(mock.Anything, mock.Anything).Return(2.5, nil).Once()

		_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"count"}),
		})
		require.ErrorIs(t, err, pagedomain.ErrUnexpectedResult)
	})

	t.Run("accepted result kinds", func(t *testing.T) {
		t.Parallel()

		m := newMockedOrchestrator(t, pagesrv.Config{})
		m.find.EXPECT().Resolve(mock.Anything, mock.Anything).
			Return([]map[string]any{{"id": 1}}, nil).Once()
		m.count.EXPECT().Resolve(mock.Anything, mock.Anything).Return(float64(4), nil).Once()

		res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
		})
		require.NoError(t, err)
		require.Equal(t, []pagedomain.Record{{"id": 1}}, res.Items)
		require.Equal(t, int64(4), *res.Count)
	})
}

func TestPaginate_CanceledContext(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{})
	m.find.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *pagedomain.ResolveParams) (any, error) {
			return nil, ctx.Err()
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.o.Paginate(ctx, &pagesrv.Request{
		Shape: pagedomain.ShapeFromPaths([]string{"items.id"}),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPaginate_Sequential(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{Sequential: true})

	var order []string
	m.find.EXPECT().Resolve(mock.Anything, mock.Anything).
		Run(func(context.Context, *pagedomain.ResolveParams) { order = append(order, "find") }).
		Return(records(1), nil).Once()
	m.count.EXPECT().Resolve(mock.Anything, mock.Anything).
		Run(func(context.Context, *pagedomain.ResolveParams) { order = append(order, "count") }).
		Return(1, nil).Once()

	_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
		Shape: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"find", "count"}, order)
}

func TestPaginate_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	m := newMockedOrchestrator(t, pagesrv.Config{PerPage: 2})

	var finds, counts atomic.Int32
	m.find.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *pagedomain.ResolveParams) (any, error) {
			finds.Add(1)
			return records(3), nil
		})
	m.count.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *pagedomain.ResolveParams) (any, error) {
			counts.Add(1)
			return 9, nil
		})

	const callers = 16
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			res, err := m.o.Paginate(context.Background(), &pagesrv.Request{
				Args:  pagedomain.Args{Page: 1 + i%3},
				Shape: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
			})
			if err == nil && len(res.Items) != 2 {
				err = errors.New("unexpected page size")
			}
			errs <- err
		}()
	}
	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
	}
	require.EqualValues(t, callers, finds.Load())
	require.EqualValues(t, callers, counts.Load())
}

func TestPaginate_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := pagesrv.NewMetrics(reg)

	m := newMockedOrchestrator(t, pagesrv.Config{}, pagesrv.WithMetrics(metrics))
	m.find.EXPECT().Resolve(mock.Anything, mock.Anything).Return(records(1), nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := m.o.Paginate(context.Background(), &pagesrv.Request{
			Shape: pagedomain.ShapeFromPaths([]string{"items.id"}),
		})
		require.NoError(t, err)
	}

	expected := `
# HELP pager_orchestrator_operation_skipped_total Total number of sub-operation calls avoided because the result was not requested
# TYPE pager_orchestrator_operation_skipped_total counter
pager_orchestrator_operation_skipped_total{operation="count",role="count"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pager_orchestrator_operation_skipped_total"))

	expected = `
# HELP pager_orchestrator_operation_calls_total Total number of sub-operation calls issued
# TYPE pager_orchestrator_operation_calls_total counter
pager_orchestrator_operation_calls_total{operation="findMany",role="find"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pager_orchestrator_operation_calls_total"))
}
