package pagesrv

import pagedomain "github.com/10Narratives/pager/internal/domains/pagination"

const (
	fieldItems    = "items"
	fieldEdges    = "edges"
	fieldNode     = "node"
	fieldCount    = "count"
	fieldPageInfo = "pageInfo"

	fieldCurrentPage     = "currentPage"
	fieldPerPage         = "perPage"
	fieldItemCount       = "itemCount"
	fieldPageCount       = "pageCount"
	fieldHasPreviousPage = "hasPreviousPage"
	fieldHasNextPage     = "hasNextPage"
)

var pageInfoFields = []string{
	fieldCurrentPage,
	fieldPerPage,
	fieldItemCount,
	fieldPageCount,
	fieldHasPreviousPage,
	fieldHasNextPage,
}

// Analyze reports which underlying operations a requested shape depends on.
func Analyze(shape pagedomain.Shape) pagedomain.Needs {
	return analyze(shape, false)
}

func analyze(shape pagedomain.Shape, probeFlags bool) pagedomain.Needs {
	var needs pagedomain.Needs

	for name := range shape {
		switch name {
		case fieldCount:
			needs.Count = true
		case fieldPageInfo:
			if shape.Lookup(fieldPageInfo, fieldItemCount) || shape.Lookup(fieldPageInfo, fieldPageCount) {
				needs.Count = true
			}
			if shape.Lookup(fieldPageInfo, fieldHasPreviousPage) && !probeFlags {
				needs.Count = true
			}
			if shape.Lookup(fieldPageInfo, fieldHasNextPage) {
				if probeFlags {
					needs.Items = true
				} else {
					needs.Count = true
				}
			}
		default:
			// items, edges and any passthrough field are served by find.
			needs.Items = true
		}
	}

	return needs
}

// requestsItems reports whether the caller asked for records in the result.
func requestsItems(shape pagedomain.Shape) bool {
	for name := range shape {
		if name != fieldCount && name != fieldPageInfo {
			return true
		}
	}
	return false
}

// findProjection lifts the item subtree to the top level and keeps
// passthrough fields, so the find operation sees the record fields it must load.
func findProjection(shape pagedomain.Shape) pagedomain.Shape {
	out := pagedomain.Shape{}
	for name, f := range shape {
		switch name {
		case fieldCount, fieldPageInfo:
		case fieldItems:
			out = out.Merge(f.Children)
		case fieldEdges:
			out = out.Merge(f.Children.Sub(fieldNode))
		default:
			out = out.Merge(pagedomain.Shape{name: f})
		}
	}
	return out
}

func countProjection(shape pagedomain.Shape) pagedomain.Shape {
	out := pagedomain.Shape{}
	for _, name := range []string{fieldCount, fieldPageInfo} {
		if f, ok := shape[name]; ok {
			out[name] = f
		}
	}
	return out
}

func withoutPageInfo(shape pagedomain.Shape) pagedomain.Shape {
	if !shape.Has(fieldPageInfo) {
		return shape
	}
	out := make(pagedomain.Shape, len(shape))
	for name, f := range shape {
		if name != fieldPageInfo {
			out[name] = f
		}
	}
	return out
}
