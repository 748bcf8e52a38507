package pagedomain

import (
	"sort"
	"strings"
)

// Shape is a tree of requested output fields keyed by field name.
type Shape map[string]Field

// Field is one requested field. A field without children is a leaf.
type Field struct {
	Children Shape
}

func Leaf() Field {
	return Field{}
}

func Node(children Shape) Field {
	if children == nil {
		children = Shape{}
	}
	return Field{Children: children}
}

func (f Field) IsLeaf() bool {
	return f.Children == nil
}

func (s Shape) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Lookup walks path from the root of s. A leaf met halfway down counts as a
// request for everything below it.
func (s Shape) Lookup(path ...string) bool {
	cur := s
	for i, name := range path {
		f, ok := cur[name]
		if !ok {
			return false
		}
		if f.IsLeaf() || i == len(path)-1 {
			return true
		}
		cur = f.Children
	}
	return len(path) == 0
}

// Sub returns the children of name, or nil when name is absent or a leaf.
func (s Shape) Sub(name string) Shape {
	f, ok := s[name]
	if !ok {
		return nil
	}
	return f.Children
}

// Names returns the top-level field names in lexical order.
func (s Shape) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new shape holding the fields of s and other. Subtrees
// present in both are merged recursively; a leaf wins over a subtree.
func (s Shape) Merge(other Shape) Shape {
	out := make(Shape, len(s)+len(other))
	for name, f := range s {
		out[name] = f
	}
	for name, f := range other {
		prev, ok := out[name]
		switch {
		case !ok:
			out[name] = f
		case prev.IsLeaf() || f.IsLeaf():
			out[name] = Leaf()
		default:
			out[name] = Node(prev.Children.Merge(f.Children))
		}
	}
	return out
}

// ToMap renders s as nested maps with `true` for leaves.
func (s Shape) ToMap() map[string]any {
	out := make(map[string]any, len(s))
	for name, f := range s {
		if f.IsLeaf() {
			out[name] = true
			continue
		}
		out[name] = f.Children.ToMap()
	}
	return out
}

// ShapeFromMap builds a shape from loosely typed input. Nested maps become
// subtrees; any other value is a leaf unless it is false or nil.
func ShapeFromMap(m map[string]any) Shape {
	out := make(Shape, len(m))
	for name, v := range m {
		switch t := v.(type) {
		case map[string]any:
			out[name] = Node(ShapeFromMap(t))
		case nil:
		case bool:
			if t {
				out[name] = Leaf()
			}
		default:
			out[name] = Leaf()
		}
	}
	return out
}

// ShapeFromPaths builds a shape from dotted paths such as "pageInfo.hasNextPage".
func ShapeFromPaths(paths []string) Shape {
	out := Shape{}
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = out.Merge(pathShape(strings.Split(p, ".")))
	}
	return out
}

func pathShape(parts []string) Shape {
	if len(parts) == 1 {
		return Shape{parts[0]: Leaf()}
	}
	return Shape{parts[0]: Node(pathShape(parts[1:]))}
}
