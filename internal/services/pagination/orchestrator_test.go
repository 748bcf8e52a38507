package pagesrv_test

import (
	"context"
	"errors"
	"testing"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/10Narratives/pager/internal/registry"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	"github.com/10Narratives/pager/internal/services/pagination/mocks"
	"github.com/stretchr/testify/require"
)

func TestNewOrchestrator(t *testing.T) {
	t.Parallel()

	noop := pagedomain.OperationFunc(func(context.Context, *pagedomain.ResolveParams) (any, error) {
		return nil, nil
	})
	reg := registry.New()
	reg.SetOperation("findMany", noop)
	reg.SetOperation("count", noop)

	tests := []struct {
		name       string
		registry   pagedomain.OperationRegistry
		cfg        pagesrv.Config
		wantErr    error
		wantOption string
		wantOp     string
	}{
		{
			name:     "error: nil registry",
			registry: nil,
			cfg:      pagesrv.Config{FindOperation: "findMany", CountOperation: "count"},
			wantErr:  pagedomain.ErrNilRegistry,
		},
		{
			name:       "error: empty count operation",
			registry:   reg,
			cfg:        pagesrv.Config{FindOperation: "findMany"},
			wantErr:    pagedomain.ErrMissingOption,
			wantOption: "countOperation",
		},
		{
			name:       "error: unknown count operation",
			registry:   reg,
			cfg:        pagesrv.Config{FindOperation: "findMany", CountOperation: "countDoesNotExists"},
			wantErr:    pagedomain.ErrUnknownOperation,
			wantOption: "countOperation",
			wantOp:     "countDoesNotExists",
		},
		{
			name:       "error: empty find operation",
			registry:   reg,
			cfg:        pagesrv.Config{CountOperation: "count"},
			wantErr:    pagedomain.ErrMissingOption,
			wantOption: "findOperation",
		},
		{
			name:       "error: unknown find operation",
			registry:   reg,
			cfg:        pagesrv.Config{FindOperation: "findManyDoesNotExists", CountOperation: "count"},
			wantErr:    pagedomain.ErrUnknownOperation,
			wantOption: "findOperation",
			wantOp:     "findManyDoesNotExists",
		},
		{
			name:       "error: negative per page",
			registry:   reg,
			cfg:        pagesrv.Config{FindOperation: "findMany", CountOperation: "count", PerPage: -1},
			wantErr:    pagedomain.ErrInvalidArguments,
			wantOption: "perPage",
		},
		{
			name:       "error: unknown cursor mode",
			registry:   reg,
			cfg:        pagesrv.Config{FindOperation: "findMany", CountOperation: "count", CursorPageInfo: "guess"},
			wantOption: "cursorPageInfo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, err := pagesrv.NewOrchestrator(tt.registry, tt.cfg)
			require.Nil(t, o)

			var cfgErr *pagedomain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tt.wantOption, cfgErr.Option)
			require.Equal(t, tt.wantOp, cfgErr.Operation)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantOp != "" {
				require.Contains(t, err.Error(), tt.wantOp)
			}
		})
	}

	t.Run("error: registry lookup fails", func(t *testing.T) {
		t.Parallel()

		lookupErr := errors.New("registry closed")
		mreg := mocks.NewOperationRegistry(t)
		mreg.EXPECT().HasOperation("count").Return(true).Once()
		mreg.EXPECT().GetOperation("count").Return(nil, lookupErr).Once()

		_, err := pagesrv.NewOrchestrator(mreg, pagesrv.Config{FindOperation: "findMany", CountOperation: "count"})
		require.ErrorIs(t, err, lookupErr)
	})

	t.Run("ok: defaults applied", func(t *testing.T) {
		t.Parallel()

		o, err := pagesrv.NewOrchestrator(reg, pagesrv.Config{FindOperation: "findMany", CountOperation: "count"})
		require.NoError(t, err)
		require.Equal(t, pagesrv.DefaultPerPage, o.Config().PerPage)
		require.Equal(t, pagesrv.CursorPageInfoSuppress, o.Config().CursorPageInfo)
	})
}

func TestOrchestrator_Descriptor(t *testing.T) {
	t.Parallel()

	o := usersOrchestrator(t, pagesrv.Config{})
	d := o.Descriptor()

	require.Equal(t, "pagination", d.Name)
	require.Equal(t, pagedomain.KindQuery, d.Kind)

	names := make([]string, 0, len(d.Args))
	for _, a := range d.Args {
		names = append(names, a.Name)
	}
	require.Equal(t, []string{"page", "perPage", "filter", "sort", "first"}, names)
	require.Equal(t, "Int", d.Args[0].Type)
	require.Contains(t, d.Fields, "pageInfo.hasNextPage")
}

func TestOrchestrator_ResolveThroughRegistry(t *testing.T) {
	t.Parallel()

	o := usersOrchestrator(t, pagesrv.Config{PerPage: 5})

	reg := registry.New()
	reg.SetOperation(pagesrv.OperationName, o)

	op, err := reg.GetOperation("pagination")
	require.NoError(t, err)

	res, err := op.Resolve(context.Background(), &pagedomain.ResolveParams{
		Args:       pagedomain.Args{Page: 2},
		Projection: pagedomain.ShapeFromPaths([]string{"items.id", "count"}),
	})
	require.NoError(t, err)

	out, ok := res.(*pagedomain.Result)
	require.True(t, ok)
	require.Len(t, out.Items, 5)
	require.Equal(t, 6, out.Items[0]["id"])
	require.Equal(t, int64(15), *out.Count)

	_, err = o.Resolve(context.Background(), nil)
	require.Error(t, err)
}
