package paginationapi

import (
	"encoding/json"
	"fmt"
	"math"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	sliceutils "github.com/10Narratives/pager/pkg/slices"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	keyArgs       = "args"
	keyProjection = "projection"
	keyFields     = "fields"
)

// NewRequest encodes args and shape as
// {"args": {...}, "projection": {...}}.
func NewRequest(args pagedomain.Args, shape pagedomain.Shape) (*structpb.Struct, error) {
	a := map[string]any{}
	for k, v := range args.Extra {
		a[k] = v
	}
	if args.Page > 0 {
		a["page"] = args.Page
	}
	if args.PerPage > 0 {
		a["perPage"] = args.PerPage
	}
	if args.First > 0 {
		a["first"] = args.First
	}
	if args.Filter != nil {
		a["filter"] = map[string]any(args.Filter)
	}
	if len(args.Sort) > 0 {
		a["sort"] = sliceutils.Map(args.Sort, func(k pagedomain.SortKey) map[string]any {
			return map[string]any{"field": k.Field, "desc": k.Desc}
		})
	}

	return toStruct(map[string]any{
		keyArgs:       a,
		keyProjection: shape.ToMap(),
	})
}

// DecodeRequest accepts the projection either as a nested object or as a
// list of dotted paths under "fields".
func DecodeRequest(in *structpb.Struct) (*pagesrv.Request, error) {
	m := in.AsMap()
	req := &pagesrv.Request{Shape: pagedomain.Shape{}}

	if raw, ok := m[keyArgs]; ok && raw != nil {
		args, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: args must be an object", pagedomain.ErrInvalidArguments)
		}
		if err := decodeArgs(args, &req.Args); err != nil {
			return nil, err
		}
	}

	if raw, ok := m[keyProjection]; ok && raw != nil {
		p, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: projection must be an object", pagedomain.ErrInvalidArguments)
		}
		req.Shape = pagedomain.ShapeFromMap(p)
	}

	if raw, ok := m[keyFields]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: fields must be a list of paths", pagedomain.ErrInvalidArguments)
		}
		paths := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: fields must be a list of paths", pagedomain.ErrInvalidArguments)
			}
			paths = append(paths, s)
		}
		req.Shape = req.Shape.Merge(pagedomain.ShapeFromPaths(paths))
	}

	return req, nil
}

func decodeArgs(m map[string]any, args *pagedomain.Args) error {
	for k, v := range m {
		var err error
		switch k {
		case "page":
			args.Page, err = toInt(k, v)
		case "perPage":
			args.PerPage, err = toInt(k, v)
		case "first":
			args.First, err = toInt(k, v)
		case "skip":
			args.Skip, err = toInt(k, v)
		case "limit":
			args.Limit, err = toInt(k, v)
		case "filter":
			args.Filter, err = toFilter(v)
		case "sort":
			args.Sort, err = toSort(v)
		default:
			if args.Extra == nil {
				args.Extra = map[string]any{}
			}
			args.Extra[k] = v
		}
		if err != nil {
			return err
		}
	}
	return args.Validate()
}

func toInt(name string, v any) (int, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", pagedomain.ErrInvalidArguments, name, v)
	}
	return int(f), nil
}

func toFilter(v any) (pagedomain.Filter, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: filter must be an object", pagedomain.ErrInvalidArguments)
	}
	return pagedomain.Filter(m), nil
}

// toSort takes "age:desc,name" or [{"field": "age", "desc": true}].
func toSort(v any) (pagedomain.Sort, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return pagedomain.ParseSort(t)
	case []any:
		sort := make(pagedomain.Sort, 0, len(t))
		for _, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: sort key must be an object", pagedomain.ErrInvalidArguments)
			}
			field, _ := m["field"].(string)
			if field == "" {
				return nil, fmt.Errorf("%w: sort key without field", pagedomain.ErrInvalidArguments)
			}
			desc, _ := m["desc"].(bool)
			sort = append(sort, pagedomain.SortKey{Field: field, Desc: desc})
		}
		return sort, nil
	default:
		return nil, fmt.Errorf("%w: sort must be a string or a list", pagedomain.ErrInvalidArguments)
	}
}

// EncodeResult keeps only the parts present in res. An empty page is
// encoded as an empty items list.
func EncodeResult(res *pagedomain.Result) (*structpb.Struct, error) {
	out := map[string]any{}
	if res.Items != nil {
		out["items"] = res.Items
	}
	if res.Count != nil {
		out["count"] = *res.Count
	}
	if res.PageInfo != nil {
		out["pageInfo"] = res.PageInfo
	}
	return toStruct(out)
}

func EncodeDescriptor(d pagedomain.Descriptor) (*structpb.Struct, error) {
	return toStruct(map[string]any{
		"name": d.Name,
		"kind": string(d.Kind),
		"args": sliceutils.Map(d.Args, func(a pagedomain.ArgSpec) map[string]any {
			return map[string]any{"name": a.Name, "type": a.Type, "required": a.Required}
		}),
		"fields": d.Fields,
	})
}

// toStruct goes through JSON so that any JSON encodable record value is accepted.
func toStruct(v map[string]any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	return out, nil
}
