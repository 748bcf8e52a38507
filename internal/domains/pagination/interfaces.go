package pagedomain

import "context"

// Operation is a named, resolvable unit exposed by a registry.
type Operation interface {
	Resolve(ctx context.Context, params *ResolveParams) (any, error)
}

// OperationFunc adapts a plain function to Operation.
type OperationFunc func(ctx context.Context, params *ResolveParams) (any, error)

func (f OperationFunc) Resolve(ctx context.Context, params *ResolveParams) (any, error) {
	return f(ctx, params)
}

// ArgsDeclarer is implemented by operations that publish the arguments they accept.
type ArgsDeclarer interface {
	DeclaredArgs() []ArgSpec
}

type OperationRegistry interface {
	HasOperation(name string) bool
	GetOperation(name string) (Operation, error)
	SetOperation(name string, op Operation)
}

type ResolveParams struct {
	Args       Args
	Projection Shape
	RawQuery   any
}
