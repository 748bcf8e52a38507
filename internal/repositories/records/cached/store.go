// Package cachedrepo memoizes count results of another record store.
package cachedrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	"github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

type Backend interface {
	recordrepo.Finder
	recordrepo.Counter
}

// Store serves finds from the backend and counts from a TTL cache keyed by
// the filter. Stale counts are possible until the TTL expires or Invalidate is called.
type Store struct {
	next   Backend
	counts *cache.Cache
}

func New(next Backend, ttl time.Duration) *Store {
	return &Store{
		next:   next,
		counts: cache.New(ttl, cleanupInterval),
	}
}

func (s *Store) Find(ctx context.Context, args pagedomain.Args) ([]pagedomain.Record, error) {
	return s.next.Find(ctx, args)
}

func (s *Store) Count(ctx context.Context, filter pagedomain.Filter) (int64, error) {
	key, err := cacheKey(filter)
	if err != nil {
		return 0, err
	}

	if v, ok := s.counts.Get(key); ok {
		return v.(int64), nil
	}

	n, err := s.next.Count(ctx, filter)
	if err != nil {
		return 0, err
	}
	s.counts.SetDefault(key, n)
	return n, nil
}

// Invalidate drops every cached count.
func (s *Store) Invalidate() {
	s.counts.Flush()
}

func (s *Store) FindOperation() pagedomain.Operation {
	return recordrepo.FindOperation(s)
}

func (s *Store) CountOperation() pagedomain.Operation {
	return recordrepo.CountOperation(s)
}

// encoding/json sorts map keys, which makes equal filters share a key.
func cacheKey(filter pagedomain.Filter) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("%w: filter is not JSON encodable: %v", pagedomain.ErrInvalidArguments, err)
	}
	return string(b), nil
}
