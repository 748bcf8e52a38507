package recovery

import (
	"context"

	r "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewUnaryServerInterceptor turns a handler panic into codes.Internal and
// logs the panic value with its stack.
func NewUnaryServerInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return r.UnaryServerInterceptor(r.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		log.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	}))
}
