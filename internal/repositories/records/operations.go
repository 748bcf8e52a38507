package recordrepo

import (
	"context"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
)

type Finder interface {
	Find(ctx context.Context, args pagedomain.Args) ([]pagedomain.Record, error)
}

type Counter interface {
	Count(ctx context.Context, filter pagedomain.Filter) (int64, error)
}

// FindOperation exposes f as an operation that returns []pagedomain.Record.
func FindOperation(f Finder) pagedomain.Operation {
	return findOperation{f}
}

// CountOperation exposes c as an operation that returns an int64 total.
// Only the filter of the call is used.
func CountOperation(c Counter) pagedomain.Operation {
	return countOperation{c}
}

type findOperation struct{ f Finder }

func (op findOperation) Resolve(ctx context.Context, params *pagedomain.ResolveParams) (any, error) {
	if params == nil {
		return op.f.Find(ctx, pagedomain.Args{})
	}
	return op.f.Find(ctx, params.Args)
}

func (findOperation) DeclaredArgs() []pagedomain.ArgSpec {
	return FindArgs
}

type countOperation struct{ c Counter }

func (op countOperation) Resolve(ctx context.Context, params *pagedomain.ResolveParams) (any, error) {
	if params == nil {
		return op.c.Count(ctx, nil)
	}
	return op.c.Count(ctx, params.Args.Filter)
}
