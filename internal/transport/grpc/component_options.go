package grpctr

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type ServiceRegistration func(s *grpc.Server)

type componentOptions struct {
	serverOptions []grpc.ServerOption
	serviceRegs   []ServiceRegistration
	log           *zap.Logger
}

type ComponentOption func(co *componentOptions)

func defaultComponentOptions() *componentOptions {
	return &componentOptions{log: zap.NewNop()}
}

func WithServerOptions(options ...grpc.ServerOption) ComponentOption {
	return func(co *componentOptions) {
		co.serverOptions = append(co.serverOptions, options...)
	}
}

func WithServiceRegistration(regs ...ServiceRegistration) ComponentOption {
	return func(co *componentOptions) {
		co.serviceRegs = append(co.serviceRegs, regs...)
	}
}

func WithLogger(log *zap.Logger) ComponentOption {
	return func(co *componentOptions) {
		co.log = log
	}
}

// HealthRegistration reports every listed service as SERVING.
func HealthRegistration(services ...string) ServiceRegistration {
	healthServer := health.NewServer()
	for _, name := range services {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	return func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, healthServer)
	}
}

func ReflectionRegistration() ServiceRegistration {
	return func(s *grpc.Server) {
		reflection.Register(s)
	}
}
