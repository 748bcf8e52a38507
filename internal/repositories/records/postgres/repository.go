// Package pgrepo stores records as jsonb documents in a PostgreSQL table
// with the columns (id bigserial, data jsonb).
package pgrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	"github.com/containerd/errdefs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const undefinedTable = "42P01"

var identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)?$`)

// DB is the subset of *pgxpool.Pool the repository relies on.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PoolConfig struct {
	DSN         string        `yaml:"dsn" env:"PAGER_POSTGRES_DSN"`
	Table       string        `yaml:"table" env:"PAGER_POSTGRES_TABLE" env-default:"records"`
	MaxConns    int32         `yaml:"max_conns" env:"PAGER_POSTGRES_MAX_CONNS" env-default:"10"`
	MaxIdleTime time.Duration `yaml:"max_idle_time" env:"PAGER_POSTGRES_MAX_IDLE_TIME" env-default:"30m"`
}

func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", errors.Join(errdefs.ErrUnavailable, err))
	}
	return pool, nil
}

type Repository struct {
	db    DB
	table string
}

func NewRepository(db DB, table string) (*Repository, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Repository{db: db, table: table}, nil
}

// EnsureSchema creates the records table when it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (id bigserial PRIMARY KEY, data jsonb NOT NULL)`, r.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", r.table, handlePgError(err))
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, records ...pagedomain.Record) error {
	query := fmt.Sprintf(`INSERT INTO %s (data) VALUES (@data)`, r.table)
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := r.db.Exec(ctx, query, pgx.NamedArgs{"data": string(b)}); err != nil {
			return handlePgError(err)
		}
	}
	return nil
}

func (r *Repository) Find(ctx context.Context, args pagedomain.Args) ([]pagedomain.Record, error) {
	query, data, err := buildFindQuery(r.table, args)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, data)
	if err != nil {
		return nil, handlePgError(err)
	}

	raw, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, handlePgError(err)
	}

	out := make([]pagedomain.Record, 0, len(raw))
	for _, b := range raw {
		rec, err := recordrepo.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context, filter pagedomain.Filter) (int64, error) {
	query, data, err := buildCountQuery(r.table, filter)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, data).Scan(&n); err != nil {
		return 0, handlePgError(err)
	}
	return n, nil
}

func (r *Repository) FindOperation() pagedomain.Operation {
	return recordrepo.FindOperation(r)
}

func (r *Repository) CountOperation() pagedomain.Operation {
	return recordrepo.CountOperation(r)
}

func buildFindQuery(table string, args pagedomain.Args) (string, pgx.NamedArgs, error) {
	buf := bytes.NewBufferString("SELECT data FROM " + table)
	data := pgx.NamedArgs{}

	if err := addWhereClause(buf, data, args.Filter); err != nil {
		return "", nil, err
	}

	buf.WriteString(" ORDER BY ")
	for i, key := range args.Sort {
		name := fmt.Sprintf("sort_%d", i)
		data[name] = key.Field

		dir := "ASC NULLS FIRST"
		if key.Desc {
			dir = "DESC NULLS LAST"
		}
		fmt.Fprintf(buf, "data -> @%s %s, ", name, dir)
	}
	buf.WriteString("id ASC")

	if args.Skip > 0 {
		buf.WriteString(" OFFSET @skip")
		data["skip"] = args.Skip
	}

	limit := args.Limit
	if limit == 0 {
		limit = args.First
	}
	if limit > 0 {
		buf.WriteString(" LIMIT @limit")
		data["limit"] = limit
	}

	return buf.String(), data, nil
}

func buildCountQuery(table string, filter pagedomain.Filter) (string, pgx.NamedArgs, error) {
	buf := bytes.NewBufferString("SELECT count(*) FROM " + table)
	data := pgx.NamedArgs{}

	if err := addWhereClause(buf, data, filter); err != nil {
		return "", nil, err
	}
	return buf.String(), data, nil
}

// addWhereClause matches by jsonb containment, so every filter field must
// equal the stored value.
func addWhereClause(buf *bytes.Buffer, data pgx.NamedArgs, filter pagedomain.Filter) error {
	if len(filter) == 0 {
		return nil
	}

	b, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("%w: filter is not JSON encodable: %v", pagedomain.ErrInvalidArguments, err)
	}

	buf.WriteString(" WHERE data @> @filter::jsonb")
	data["filter"] = string(b)
	return nil
}

func handlePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return fmt.Errorf("%s: %w", pgErr.Message, errdefs.ErrNotFound)
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return errors.Join(errdefs.ErrUnavailable, err)
	}
	return err
}
