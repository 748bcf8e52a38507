package validator

import (
	v "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"google.golang.org/grpc"
)

// NewUnaryServerInterceptor rejects requests whose Validate method fails.
// Messages without one pass through.
func NewUnaryServerInterceptor(opts ...v.Option) grpc.UnaryServerInterceptor {
	return v.UnaryServerInterceptor(opts...)
}
