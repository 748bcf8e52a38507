package gatewayapp

import (
	"time"

	pgrepo "github.com/10Narratives/pager/internal/repositories/records/postgres"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendKV       Backend = "kv"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	Server     ServerConfig   `yaml:"server"`
	Storage    StorageConfig  `yaml:"storage"`
	Pagination pagesrv.Config `yaml:"pagination"`
}

type ServerConfig struct {
	Grpc    GrpcConfig    `yaml:"grpc"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type GrpcConfig struct {
	Address string `yaml:"address" env:"PAGER_GRPC_ADDRESS" env-default:":50051"`
}

type MetricsConfig struct {
	// Address is empty when metrics are not exposed.
	Address string `yaml:"address" env:"PAGER_METRICS_ADDRESS"`
}

type StorageConfig struct {
	Backend Backend `yaml:"backend" env:"PAGER_STORAGE_BACKEND" env-default:"memory"`
	// Seed is a YAML or JSON list of records inserted at startup.
	Seed string `yaml:"seed" env:"PAGER_STORAGE_SEED"`
	// CountCacheTTL enables count caching when positive.
	CountCacheTTL time.Duration     `yaml:"count_cache_ttl" env:"PAGER_COUNT_CACHE_TTL"`
	NATS          NATSConfig        `yaml:"nats"`
	Postgres      pgrepo.PoolConfig `yaml:"postgres"`
	Ingest        IngestConfig      `yaml:"ingest"`
}

// IngestConfig describes the JetStream stream records are consumed from.
// Ingestion is off while Stream is empty.
type IngestConfig struct {
	Stream   string   `yaml:"stream" env:"PAGER_INGEST_STREAM"`
	Subjects []string `yaml:"subjects" env:"PAGER_INGEST_SUBJECTS" env-separator:","`
	Durable  string   `yaml:"durable" env:"PAGER_INGEST_DURABLE" env-default:"pager-ingest"`
	Slots    int      `yaml:"slots" env:"PAGER_INGEST_SLOTS" env-default:"4"`
}

type NATSConfig struct {
	URL    string `yaml:"url" env:"PAGER_NATS_URL" env-default:"nats://127.0.0.1:4222"`
	Bucket string `yaml:"bucket" env:"PAGER_NATS_BUCKET" env-default:"records"`
}
