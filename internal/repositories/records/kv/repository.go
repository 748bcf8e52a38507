// Package kvrepo stores records as JSON documents in a JetStream key-value bucket.
// Unsorted finds return records by id: numeric ids in numeric order first,
// then the remaining ids lexically.
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	"github.com/containerd/errdefs"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
)

const keyPrefix = "records/"

// KeyValue is the subset of jetstream.KeyValue the repository relies on.
type KeyValue interface {
	Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error)
	Put(ctx context.Context, key string, value []byte) (uint64, error)
	Delete(ctx context.Context, key string, opts ...jetstream.KVDeleteOpt) error
	ListKeys(ctx context.Context, opts ...jetstream.WatchOpt) (jetstream.KeyLister, error)
}

type Repository struct {
	kv KeyValue
}

func NewRepository(ctx context.Context, js jetstream.JetStream, bucket string) (*Repository, error) {
	if bucket == "" {
		return nil, errors.New("bucket is empty")
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("create key value bucket %s: %w", bucket, err)
	}

	return NewRepositoryFromKV(kv), nil
}

func NewRepositoryFromKV(kv KeyValue) *Repository {
	return &Repository{kv: kv}
}

// Insert upserts records. A record is keyed by its "id" field; records
// without one get a generated id.
func (r *Repository) Insert(ctx context.Context, records ...pagedomain.Record) error {
	for _, rec := range records {
		id, ok := rec["id"]
		if !ok || id == nil {
			id = uuid.NewString()
			rec = clone(rec)
			rec["id"] = id
		}

		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record %v: %w", id, err)
		}

		if _, err := r.kv.Put(ctx, keyPrefix+fmt.Sprint(id), b); err != nil {
			return fmt.Errorf("put record %v: %w", id, err)
		}
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.kv.Delete(ctx, keyPrefix+id); err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return fmt.Errorf("record %s: %w", id, errdefs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *Repository) Find(ctx context.Context, args pagedomain.Args) ([]pagedomain.Record, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return recordrepo.Query(all, args), nil
}

func (r *Repository) Count(ctx context.Context, filter pagedomain.Filter) (int64, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return 0, err
	}
	return recordrepo.Count(all, filter), nil
}

func (r *Repository) FindOperation() pagedomain.Operation {
	return recordrepo.FindOperation(r)
}

func (r *Repository) CountOperation() pagedomain.Operation {
	return recordrepo.CountOperation(r)
}

func (r *Repository) loadAll(ctx context.Context) ([]pagedomain.Record, error) {
	keys, err := r.listRecordKeys(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]pagedomain.Record, 0, len(keys))
	for _, k := range keys {
		entry, err := r.kv.Get(ctx, k)
		if err != nil {
			// deleted between ListKeys and Get
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("get record %s: %w", k, err)
		}

		rec, err := recordrepo.Decode(entry.Value())
		if err != nil {
			return nil, fmt.Errorf("decode record %s: %w", k, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Repository) listRecordKeys(ctx context.Context) ([]string, error) {
	lister, err := r.kv.ListKeys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list record keys: %w", err)
	}
	defer lister.Stop()

	var keys []string
	for k := range lister.Keys() {
		if strings.HasPrefix(k, keyPrefix) {
			keys = append(keys, k)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return idLess(strings.TrimPrefix(keys[i], keyPrefix), strings.TrimPrefix(keys[j], keyPrefix))
	})
	return keys, nil
}

func idLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func clone(r pagedomain.Record) pagedomain.Record {
	out := make(pagedomain.Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}
