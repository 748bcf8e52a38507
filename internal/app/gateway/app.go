package gatewayapp

import (
	"context"
	"fmt"

	metricscomp "github.com/10Narratives/pager/internal/app/components/metrics"
	"github.com/10Narratives/pager/internal/registry"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	grpctr "github.com/10Narratives/pager/internal/transport/grpc"
	paginationapi "github.com/10Narratives/pager/internal/transport/grpc/api/pagination"
	"github.com/10Narratives/pager/internal/transport/grpc/interceptors/logging"
	"github.com/10Narratives/pager/internal/transport/grpc/interceptors/recovery"
	"github.com/10Narratives/pager/internal/transport/grpc/interceptors/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type App struct {
	cfg *Config
	log *zap.Logger

	storage       *storage
	registry      *registry.Registry
	orchestrator  *pagesrv.Orchestrator
	grpcServer    *grpctr.Component
	metricsServer *metricscomp.Component
}

func NewApp(cfg *Config, log *zap.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	st, err := newStorage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize storage: %w", err)
	}

	promRegistry := metricscomp.NewRegistry()

	reg := registry.New()
	reg.SetOperation(cfg.Pagination.FindOperation, recordrepo.FindOperation(st.finder))
	reg.SetOperation(cfg.Pagination.CountOperation, recordrepo.CountOperation(st.counter))

	orchestrator, err := pagesrv.NewOrchestrator(reg, cfg.Pagination,
		pagesrv.WithLogger(log.Named("pagination")),
		pagesrv.WithMetrics(pagesrv.NewMetrics(promRegistry)),
	)
	if err != nil {
		st.close()
		return nil, err
	}
	reg.SetOperation(pagesrv.OperationName, orchestrator)

	grpcServer := grpctr.NewComponent(cfg.Server.Grpc.Address,
		grpctr.WithLogger(log),
		grpctr.WithServerOptions(
			grpc.ChainUnaryInterceptor(
				recovery.NewUnaryServerInterceptor(log),
				logging.NewUnaryServerInterceptor(log),
				validator.NewUnaryServerInterceptor(),
			),
		),
		grpctr.WithServiceRegistration(
			grpctr.HealthRegistration(paginationapi.ServiceName),
			grpctr.ReflectionRegistration(),
			paginationapi.NewRegistration(orchestrator),
		),
	)

	var metricsServer *metricscomp.Component
	if cfg.Server.Metrics.Address != "" {
		metricsServer = metricscomp.NewComponent(cfg.Server.Metrics.Address, promRegistry)
	}

	return &App{
		cfg:           cfg,
		log:           log,
		storage:       st,
		registry:      reg,
		orchestrator:  orchestrator,
		grpcServer:    grpcServer,
		metricsServer: metricsServer,
	}, nil
}

// Registry exposes the operations served by the app, the pagination
// operation included.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) Startup(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	if a.storage.ingest != nil {
		a.log.Debug("starting record ingestion")
		if err := a.storage.ingest.Run(ctx); err != nil {
			return err
		}
	}

	errGroup.Go(func() error {
		a.log.Debug("starting gRPC server")
		return a.grpcServer.Startup(ctx)
	})

	if a.metricsServer != nil {
		errGroup.Go(func() error {
			a.log.Debug("starting metrics server", zap.String("address", a.cfg.Server.Metrics.Address))
			return a.metricsServer.Startup(ctx)
		})
	}

	return errGroup.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Debug("stopping gRPC server")
		return a.grpcServer.Shutdown(ctx)
	})

	if a.metricsServer != nil {
		errGroup.Go(func() error {
			a.log.Debug("stopping metrics server")
			defer a.log.Info("metrics server stopped")

			return a.metricsServer.Shutdown(ctx)
		})
	}

	if a.storage.ingest != nil {
		errGroup.Go(func() error {
			a.log.Debug("stopping record ingestion")
			return a.storage.ingest.Stop(ctx)
		})
	}

	err := errGroup.Wait()

	a.log.Debug("closing storage connections")
	a.storage.close()

	return err
}
