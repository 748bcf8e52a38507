package pagedomain

import "fmt"

type Record map[string]any

type Filter map[string]any

type SortKey struct {
	Field string `json:"field" yaml:"field"`
	Desc  bool   `json:"desc" yaml:"desc"`
}

type Sort []SortKey

// Args carries the arguments of a paginated call and of the operations it
// delegates to. Zero values mean the argument was not supplied.
type Args struct {
	Page    int
	PerPage int
	First   int
	Skip    int
	Limit   int
	Filter  Filter
	Sort    Sort
	Extra   map[string]any
}

func (a Args) Validate() error {
	switch {
	case a.Page < 0:
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidArguments, a.Page)
	case a.PerPage < 0:
		return fmt.Errorf("%w: perPage must be >= 1, got %d", ErrInvalidArguments, a.PerPage)
	case a.First < 0:
		return fmt.Errorf("%w: first must be >= 1, got %d", ErrInvalidArguments, a.First)
	case a.Skip < 0:
		return fmt.Errorf("%w: skip must be >= 0, got %d", ErrInvalidArguments, a.Skip)
	case a.Limit < 0:
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidArguments, a.Limit)
	}
	return nil
}

// Clone returns a copy that shares no maps or slices with a.
func (a Args) Clone() Args {
	out := a
	if a.Filter != nil {
		out.Filter = make(Filter, len(a.Filter))
		for k, v := range a.Filter {
			out.Filter[k] = v
		}
	}
	if a.Sort != nil {
		out.Sort = append(Sort(nil), a.Sort...)
	}
	if a.Extra != nil {
		out.Extra = make(map[string]any, len(a.Extra))
		for k, v := range a.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Needs tells which underlying operations a requested shape depends on.
type Needs struct {
	Items bool
	Count bool
}

type Plan struct {
	FindParams  *ResolveParams
	CountParams *ResolveParams
	CurrentPage int
	PerPage     int
	// Shape is the output requested by the caller.
	Shape Shape
	// Cursor is set when the call is driven by the `first` argument.
	Cursor bool
}

// PageInfo fields are nil unless the caller requested them.
type PageInfo struct {
	CurrentPage     *int   `json:"currentPage,omitempty"`
	PerPage         *int   `json:"perPage,omitempty"`
	ItemCount       *int64 `json:"itemCount,omitempty"`
	PageCount       *int64 `json:"pageCount,omitempty"`
	HasPreviousPage *bool  `json:"hasPreviousPage,omitempty"`
	HasNextPage     *bool  `json:"hasNextPage,omitempty"`
}

type Result struct {
	Items    []Record  `json:"items,omitempty"`
	Count    *int64    `json:"count,omitempty"`
	PageInfo *PageInfo `json:"pageInfo,omitempty"`
}

type Kind string

const KindQuery Kind = "query"

type ArgSpec struct {
	Name     string
	Type     string
	Required bool
}

// Descriptor describes an exposed operation: its name, kind, arguments and
// the result fields a caller may request.
type Descriptor struct {
	Name   string
	Kind   Kind
	Args   []ArgSpec
	Fields []string
}
