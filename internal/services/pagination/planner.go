package pagesrv

import (
	"fmt"
	"math"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
)

// Request is a single pagination call.
type Request struct {
	Args     pagedomain.Args
	Shape    pagedomain.Shape
	RawQuery any
}

// PlanQuery translates page-based or cursor-style arguments into the
// parameters of the find and count operations. req is never modified.
func PlanQuery(cfg Config, req *Request) (*pagedomain.Plan, error) {
	cfg = cfg.withDefaults()

	if err := req.Args.Validate(); err != nil {
		return nil, err
	}

	perPage := req.Args.PerPage
	if perPage == 0 {
		perPage = cfg.PerPage
	}

	findArgs := req.Args.Clone()
	findArgs.Page = 0
	findArgs.PerPage = 0
	findArgs.Skip = 0
	findArgs.Limit = 0

	plan := &pagedomain.Plan{
		CurrentPage: 1,
		PerPage:     perPage,
		Shape:       req.Shape,
	}

	switch {
	case req.Args.First > 0:
		plan.Cursor = true
		if cfg.CursorPageInfo == CursorPageInfoCompute {
			if req.Args.First == math.MaxInt {
				return nil, fmt.Errorf("%w: first %d is too large", pagedomain.ErrInvalidArguments, req.Args.First)
			}
			plan.PerPage = req.Args.First
			findArgs.Limit = req.Args.First + 1
		}
	default:
		if req.Args.Page > 0 {
			plan.CurrentPage = req.Args.Page
		}
		if perPage == math.MaxInt || plan.CurrentPage-1 > (math.MaxInt-1)/perPage {
			return nil, fmt.Errorf("%w: page %d with perPage %d is out of range",
				pagedomain.ErrInvalidArguments, plan.CurrentPage, perPage)
		}
		findArgs.Skip = (plan.CurrentPage - 1) * perPage
		findArgs.Limit = perPage + 1
	}

	filter := req.Args.Clone().Filter
	if filter == nil {
		filter = pagedomain.Filter{}
	}

	plan.FindParams = &pagedomain.ResolveParams{
		Args:       findArgs,
		Projection: findProjection(req.Shape),
		RawQuery:   req.RawQuery,
	}
	plan.CountParams = &pagedomain.ResolveParams{
		Args:       pagedomain.Args{Filter: filter},
		Projection: countProjection(req.Shape),
		RawQuery:   req.RawQuery,
	}

	return plan, nil
}
