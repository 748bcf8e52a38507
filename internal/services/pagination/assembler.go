package pagesrv

import (
	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
)

// assemble builds a result holding only the fields present in the plan's shape.
func (o *Orchestrator) assemble(plan *pagedomain.Plan, out outcome) *pagedomain.Result {
	shape := o.effectiveShape(plan)
	res := &pagedomain.Result{}

	if requestsItems(shape) {
		res.Items = out.records
		if res.Items == nil {
			res.Items = []pagedomain.Record{}
		}
	}

	if shape.Has(fieldCount) && out.haveTotal {
		total := out.total
		res.Count = &total
	}

	if shape.Has(fieldPageInfo) {
		res.PageInfo = buildPageInfo(shape, plan, out)
	}

	return res
}

func buildPageInfo(shape pagedomain.Shape, plan *pagedomain.Plan, out outcome) *pagedomain.PageInfo {
	info := &pagedomain.PageInfo{}
	requested := func(name string) bool {
		return shape.Lookup(fieldPageInfo, name)
	}

	var pageCount int64
	if out.haveTotal {
		pageCount = PageCount(out.total, plan.PerPage)
	}

	if requested(fieldCurrentPage) {
		info.CurrentPage = ptr(plan.CurrentPage)
	}
	if requested(fieldPerPage) {
		info.PerPage = ptr(plan.PerPage)
	}
	if requested(fieldItemCount) && out.haveTotal {
		info.ItemCount = ptr(out.total)
	}
	if requested(fieldPageCount) && out.haveTotal {
		info.PageCount = ptr(pageCount)
	}
	if requested(fieldHasPreviousPage) {
		info.HasPreviousPage = ptr(plan.CurrentPage > 1)
	}
	if requested(fieldHasNextPage) {
		if out.haveTotal {
			info.HasNextPage = ptr(int64(plan.CurrentPage) < pageCount)
		} else {
			info.HasNextPage = ptr(out.probeHasMore)
		}
	}

	return info
}

// PageCount returns ceil(itemCount / perPage), or 0 when there are no items.
func PageCount(itemCount int64, perPage int) int64 {
	if itemCount <= 0 || perPage <= 0 {
		return 0
	}
	p := int64(perPage)
	return (itemCount + p - 1) / p
}

func ptr[T any](v T) *T {
	return &v
}
