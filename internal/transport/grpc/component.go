package grpctr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type Component struct {
	address string
	server  *grpc.Server
	log     *zap.Logger

	mu  sync.Mutex
	lis net.Listener
}

func NewComponent(address string, opts ...ComponentOption) *Component {
	options := defaultComponentOptions()
	for _, opt := range opts {
		opt(options)
	}

	server := grpc.NewServer(options.serverOptions...)
	for _, reg := range options.serviceRegs {
		reg(server)
	}

	return &Component{
		address: address,
		server:  server,
		log:     options.log,
	}
}

// Addr returns the bound address once Startup is listening, otherwise the
// configured one.
func (c *Component) Addr() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lis != nil {
		return c.lis.Addr().String()
	}
	return c.address
}

func (c *Component) Startup(ctx context.Context) error {
	lis, err := net.Listen("tcp", c.address)
	if err != nil {
		return fmt.Errorf("cannot listen address %s: %w", c.address, err)
	}
	return c.Serve(ctx, lis)
}

// Serve blocks until lis fails or ctx is done.
func (c *Component) Serve(ctx context.Context, lis net.Listener) error {
	c.mu.Lock()
	c.lis = lis
	c.mu.Unlock()

	c.log.Info("grpc server listening", zap.String("address", lis.Addr().String()))

	channel := make(chan error)
	go func() {
		defer close(channel)
		select {
		case channel <- c.server.Serve(lis):
		case <-ctx.Done():
		}
	}()

	select {
	case err := <-channel:
		return fmt.Errorf("error while serve %s: %w", lis.Addr(), err)
	case <-ctx.Done():
		return nil
	}
}

func (c *Component) Shutdown(ctx context.Context) error {
	channel := make(chan struct{})
	go func() {
		c.server.GracefulStop()
		close(channel)
	}()

	select {
	case <-channel:
		c.log.Info("grpc server stopped")
		return nil
	case <-ctx.Done():
		c.server.Stop()
		return errors.New("shutdown context exceeded")
	}
}
