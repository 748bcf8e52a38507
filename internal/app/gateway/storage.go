package gatewayapp

import (
	"context"
	"fmt"
	"time"

	natscomp "github.com/10Narratives/pager/internal/app/components/nats"
	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	cachedrepo "github.com/10Narratives/pager/internal/repositories/records/cached"
	kvrepo "github.com/10Narratives/pager/internal/repositories/records/kv"
	memrepo "github.com/10Narratives/pager/internal/repositories/records/memory"
	pgrepo "github.com/10Narratives/pager/internal/repositories/records/postgres"
	natscons "github.com/10Narratives/pager/internal/transport/nats/consumer"
	errorutils "github.com/10Narratives/pager/pkg/errors"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

type recordStore interface {
	recordrepo.Finder
	recordrepo.Counter
	Insert(ctx context.Context, records ...pagedomain.Record) error
}

type storage struct {
	finder  recordrepo.Finder
	counter recordrepo.Counter
	ingest  *natscons.Consumer
	closers []func()
}

func (s *storage) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func newStorage(ctx context.Context, cfg StorageConfig, log *zap.Logger) (*storage, error) {
	st := &storage{}

	var (
		store recordStore
		js    jetstream.JetStream
	)
	switch cfg.Backend {
	case "", BackendMemory:
		store = memrepo.NewStore()

	case BackendKV:
		conn, stream, err := natscomp.NewJetStream(cfg.NATS.URL)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to nats: %w", err)
		}
		st.closers = append(st.closers, conn.Close)
		js = stream

		repo, err := kvrepo.NewRepository(ctx, js, cfg.NATS.Bucket)
		if err != nil {
			st.close()
			return nil, err
		}
		store = repo
		log.Info("connection to key value bucket established", zap.String("bucket", cfg.NATS.Bucket))

	case BackendPostgres:
		pool, err := pgrepo.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, pool.Close)

		repo, err := pgrepo.NewRepository(pool, cfg.Postgres.Table)
		if err != nil {
			st.close()
			return nil, err
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			st.close()
			return nil, err
		}
		store = repo
		log.Info("connection to postgres established", zap.String("table", cfg.Postgres.Table))

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	if cfg.Seed != "" {
		records, err := memrepo.ReadFile(cfg.Seed)
		if err != nil {
			st.close()
			return nil, err
		}
		if err := store.Insert(ctx, records...); err != nil {
			st.close()
			return nil, errorutils.Wrap(err, "cannot seed records from %s", cfg.Seed)
		}
		log.Info("records seeded", zap.String("file", cfg.Seed), zap.Int("count", len(records)))
	}

	var onInsert func()
	st.finder, st.counter = store, store
	if cfg.CountCacheTTL > 0 {
		cached := cachedrepo.New(store, cfg.CountCacheTTL)
		st.finder, st.counter = cached, cached
		onInsert = cached.Invalidate
		log.Info("count cache enabled", zap.Duration("ttl", cfg.CountCacheTTL))
	}

	if cfg.Ingest.Stream != "" {
		if js == nil {
			conn, stream, err := natscomp.NewJetStream(cfg.NATS.URL)
			if err != nil {
				st.close()
				return nil, fmt.Errorf("cannot connect to nats: %w", err)
			}
			st.closers = append(st.closers, conn.Close)
			js = stream
		}

		cons, err := newIngest(ctx, js, cfg.Ingest, natscons.NewRecordHandler(store, log, onInsert), log)
		if err != nil {
			st.close()
			return nil, err
		}
		st.ingest = cons
		log.Info("record ingestion configured", zap.String("stream", cfg.Ingest.Stream))
	}

	return st, nil
}

func newIngest(ctx context.Context, js jetstream.JetStream, cfg IngestConfig, handler natscons.Handler, log *zap.Logger) (*natscons.Consumer, error) {
	subjects := cfg.Subjects
	if len(subjects) == 0 {
		subjects = []string{cfg.Stream + ".>"}
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.Stream,
		Subjects: subjects,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create stream %s: %w", cfg.Stream, err)
	}

	return natscons.NewConsumer(ctx, stream, natscons.Config{
		Durable: cfg.Durable,
		Slots:   cfg.Slots,
	}, handler, log.Named("ingest"))
}

// seedTimeout bounds backend connection and seeding at startup.
const seedTimeout = 30 * time.Second
