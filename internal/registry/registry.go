// Package registry provides an in-memory operation registry.
package registry

import (
	"fmt"
	"sort"
	"sync"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
)

type Registry struct {
	mu  sync.RWMutex
	ops map[string]pagedomain.Operation
}

func New() *Registry {
	return &Registry{ops: make(map[string]pagedomain.Operation)}
}

func (r *Registry) HasOperation(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ops[name]
	return ok
}

func (r *Registry) GetOperation(name string) (pagedomain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", pagedomain.ErrUnknownOperation, name)
	}
	return op, nil
}

// SetOperation registers op under name, replacing any previous entry.
// A nil op removes the entry.
func (r *Registry) SetOperation(name string, op pagedomain.Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if op == nil {
		delete(r.ops, name)
		return
	}
	r.ops[name] = op
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
