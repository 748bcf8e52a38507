package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Component serves the registry on /metrics.
type Component struct {
	address string
	server  *http.Server
}

func NewComponent(address string, gatherer prometheus.Gatherer) *Component {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Component{
		address: address,
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (c *Component) Startup(ctx context.Context) error {
	lis, err := net.Listen("tcp", c.address)
	if err != nil {
		return fmt.Errorf("cannot listen address %s: %w", c.address, err)
	}

	channel := make(chan error, 1)
	go func() {
		channel <- c.server.Serve(lis)
	}()

	select {
	case err := <-channel:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error while serve %s: %w", c.address, err)
	case <-ctx.Done():
		return nil
	}
}

func (c *Component) Shutdown(ctx context.Context) error {
	return c.server.Shutdown(ctx)
}

func (c *Component) Handler() http.Handler {
	return c.server.Handler
}
