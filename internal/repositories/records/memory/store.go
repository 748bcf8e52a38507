package memrepo

import (
	"context"
	"fmt"
	"os"
	"sync"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	"gopkg.in/yaml.v3"
)

type Store struct {
	mu      sync.RWMutex
	records []pagedomain.Record
}

func NewStore(records ...pagedomain.Record) *Store {
	s := &Store{}
	s.insert(records)
	return s
}

// LoadFile reads a YAML (or JSON) list of records into a new store.
func LoadFile(path string) (*Store, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(records...), nil
}

func ReadFile(path string) ([]pagedomain.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read records file: %w", err)
	}

	var records []pagedomain.Record
	if err := yaml.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("cannot decode records file %s: %w", path, err)
	}
	return records, nil
}

func (s *Store) Insert(ctx context.Context, records ...pagedomain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.insert(records)
	return nil
}

func (s *Store) insert(records []pagedomain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records = append(s.records, clone(r))
	}
}

func (s *Store) Find(ctx context.Context, args pagedomain.Args) ([]pagedomain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	page := recordrepo.Query(s.records, args)
	out := make([]pagedomain.Record, len(page))
	for i, r := range page {
		out[i] = clone(r)
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, filter pagedomain.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return recordrepo.Count(s.records, filter), nil
}

func (s *Store) FindOperation() pagedomain.Operation {
	return recordrepo.FindOperation(s)
}

func (s *Store) CountOperation() pagedomain.Operation {
	return recordrepo.CountOperation(s)
}

func clone(r pagedomain.Record) pagedomain.Record {
	out := make(pagedomain.Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
