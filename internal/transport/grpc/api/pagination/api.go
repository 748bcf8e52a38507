package paginationapi

import (
	"context"
	"errors"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	grpctr "github.com/10Narratives/pager/internal/transport/grpc"
	"github.com/containerd/errdefs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

//go:generate mockery --name PaginationService --output ./mocks --outpkg mocks --with-expecter --filename pagination_service.go
type PaginationService interface {
	Paginate(ctx context.Context, req *pagesrv.Request) (*pagedomain.Result, error)
	Descriptor() pagedomain.Descriptor
}

type Server struct {
	service PaginationService
}

func NewServer(service PaginationService) *Server {
	return &Server{service: service}
}

func NewRegistration(service PaginationService) grpctr.ServiceRegistration {
	return func(s *grpc.Server) {
		RegisterPaginationServer(s, NewServer(service))
	}
}

func (s *Server) Paginate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}

	req, err := DecodeRequest(in)
	if err != nil {
		return nil, mapDomainErr(err)
	}

	res, err := s.service.Paginate(ctx, req)
	if err != nil {
		return nil, mapDomainErr(err)
	}
	if res == nil {
		return nil, status.Error(codes.Internal, "empty result")
	}

	out, err := EncodeResult(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *Server) Describe(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := EncodeDescriptor(s.service.Descriptor())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())

	case errors.Is(err, pagedomain.ErrInvalidArguments):
		return status.Error(codes.InvalidArgument, err.Error())

	case errdefs.IsNotFound(err),
		errors.Is(err, pagedomain.ErrUnknownOperation):
		return status.Error(codes.NotFound, err.Error())

	case errdefs.IsUnavailable(err):
		return status.Error(codes.Unavailable, err.Error())

	case errors.Is(err, pagedomain.ErrMissingOption),
		errors.Is(err, pagedomain.ErrNilRegistry):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
