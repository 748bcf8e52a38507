package paginationapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName    = "pager.v1.Pagination"
	PaginateMethod = "/pager.v1.Pagination/Paginate"
	DescribeMethod = "/pager.v1.Pagination/Describe"
)

// PaginationServer carries requests and results as google.protobuf.Struct so
// that arbitrary record shapes pass through without generated messages.
type PaginationServer interface {
	Paginate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Describe(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaginationServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Paginate", Handler: paginateHandler},
		{MethodName: "Describe", Handler: describeHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterPaginationServer(s grpc.ServiceRegistrar, srv PaginationServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// PaginateRequest is the Paginate input handed to server interceptors.
// Validate lets the validator interceptor reject malformed arguments before
// the handler runs.
type PaginateRequest struct {
	*structpb.Struct
}

func (r *PaginateRequest) Validate() error {
	_, err := DecodeRequest(r.Struct)
	return err
}

func paginateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaginationServer).Paginate(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PaginateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaginationServer).Paginate(ctx, req.(*PaginateRequest).Struct)
	}
	return interceptor(ctx, &PaginateRequest{Struct: in}, info, handler)
}

func describeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaginationServer).Describe(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DescribeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaginationServer).Describe(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Paginate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PaginateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Describe(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DescribeMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
