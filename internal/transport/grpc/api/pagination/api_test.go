package paginationapi_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	paginationapi "github.com/10Narratives/pager/internal/transport/grpc/api/pagination"
	"github.com/10Narratives/pager/internal/transport/grpc/api/pagination/mocks"
	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()

	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestServer_Paginate(t *testing.T) {
	t.Parallel()

	t.Run("nil request -> InvalidArgument", func(t *testing.T) {
		t.Parallel()

		srv := paginationapi.NewServer(mocks.NewPaginationService(t))

		got, err := srv.Paginate(context.Background(), nil)
		require.Nil(t, got)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("malformed args -> InvalidArgument", func(t *testing.T) {
		t.Parallel()

		srv := paginationapi.NewServer(mocks.NewPaginationService(t))

		got, err := srv.Paginate(context.Background(), mustStruct(t, map[string]any{
			"args": map[string]any{"page": 1.5},
		}))
		require.Nil(t, got)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("decoded request reaches the service", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewPaginationService(t)
		srv := paginationapi.NewServer(svc)

		count := int64(8)
		hasNext := true
		svc.EXPECT().
			Paginate(mock.Anything, mock.MatchedBy(func(r *pagesrv.Request) bool {
				return r.Args.Page == 2 &&
					r.Args.PerPage == 5 &&
					r.Args.Filter["gender"] == "m" &&
					len(r.Args.Sort) == 1 && r.Args.Sort[0].Desc &&
					r.Args.Extra["locale"] == "en" &&
					r.Shape.Lookup("items", "name") &&
					r.Shape.Lookup("count")
			})).
			Return(&pagedomain.Result{
				Items:    []pagedomain.Record{{"id": 1, "name": "user01"}},
				Count:    &count,
				PageInfo: &pagedomain.PageInfo{HasNextPage: &hasNext},
			}, nil).
			Once()

		got, err := srv.Paginate(context.Background(), mustStruct(t, map[string]any{
			"args": map[string]any{
				"page":    2,
				"perPage": 5,
				"filter":  map[string]any{"gender": "m"},
				"sort":    "age:desc",
				"locale":  "en",
			},
			"projection": map[string]any{"items": map[string]any{"name": true}},
			"fields":     []any{"count"},
		}))
		require.NoError(t, err)

		m := got.AsMap()
		require.Equal(t, float64(8), m["count"])
		require.Equal(t, []any{map[string]any{"id": float64(1), "name": "user01"}}, m["items"])
		require.Equal(t, map[string]any{"hasNextPage": true}, m["pageInfo"])
	})

	t.Run("empty page keeps items", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewPaginationService(t)
		srv := paginationapi.NewServer(svc)
		svc.EXPECT().Paginate(mock.Anything, mock.Anything).
			Return(&pagedomain.Result{Items: []pagedomain.Record{}}, nil).Once()

		got, err := srv.Paginate(context.Background(), &structpb.Struct{})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"items": []any{}}, got.AsMap())
	})

	t.Run("nil result -> Internal", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewPaginationService(t)
		srv := paginationapi.NewServer(svc)
		svc.EXPECT().Paginate(mock.Anything, mock.Anything).Return(nil, nil).Once()

		_, err := srv.Paginate(context.Background(), &structpb.Struct{})
		require.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestServer_PaginateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code codes.Code
	}{
		{err: fmt.Errorf("%w: page", pagedomain.ErrInvalidArguments), code: codes.InvalidArgument},
		{err: &pagedomain.UpstreamOperationError{Role: pagedomain.RoleFind, Operation: "findMany", Err: context.Canceled}, code: codes.Canceled},
		{err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{err: &pagedomain.UpstreamOperationError{Role: pagedomain.RoleCount, Operation: "count", Err: errdefs.ErrNotFound}, code: codes.NotFound},
		{err: errors.Join(errdefs.ErrUnavailable, errors.New("conn refused")), code: codes.Unavailable},
		{err: &pagedomain.ConfigurationError{Err: pagedomain.ErrNilRegistry}, code: codes.FailedPrecondition},
		{err: &pagedomain.UpstreamOperationError{Role: pagedomain.RoleFind, Operation: "findMany", Err: pagedomain.ErrUnexpectedResult}, code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewPaginationService(t)
			srv := paginationapi.NewServer(svc)
			svc.EXPECT().Paginate(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := srv.Paginate(context.Background(), &structpb.Struct{})
			require.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestServer_Describe(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPaginationService(t)
	srv := paginationapi.NewServer(svc)
	svc.EXPECT().Descriptor().Return(pagedomain.Descriptor{
		Name:   "pagination",
		Kind:   pagedomain.KindQuery,
		Args:   []pagedomain.ArgSpec{{Name: "page", Type: "Int"}},
		Fields: []string{"items", "count"},
	}).Once()

	got, err := srv.Describe(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"name":   "pagination",
		"kind":   "query",
		"args":   []any{map[string]any{"name": "page", "type": "Int", "required": false}},
		"fields": []any{"items", "count"},
	}, got.AsMap())
}
