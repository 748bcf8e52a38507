package pagesrv_test

import (
	"fmt"
	"testing"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/10Narratives/pager/internal/registry"
	memrepo "github.com/10Narratives/pager/internal/repositories/records/memory"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	"github.com/stretchr/testify/require"
)

// users returns 15 records; odd ids are "m", even ids are "f".
func users() []pagedomain.Record {
	out := make([]pagedomain.Record, 0, 15)
	for i := 1; i <= 15; i++ {
		gender := "f"
		if i%2 == 1 {
			gender = "m"
		}
		out = append(out, pagedomain.Record{
			"id":     i,
			"name":   fmt.Sprintf("user%02d", i),
			"age":    10 + i,
			"gender": gender,
		})
	}
	return out
}

func usersOrchestrator(t *testing.T, cfg pagesrv.Config, opts ...pagesrv.Option) *pagesrv.Orchestrator {
	t.Helper()

	store := memrepo.NewStore(users()...)
	reg := registry.New()
	reg.SetOperation("findMany", store.FindOperation())
	reg.SetOperation("count", store.CountOperation())

	cfg.FindOperation = "findMany"
	cfg.CountOperation = "count"

	o, err := pagesrv.NewOrchestrator(reg, cfg, opts...)
	require.NoError(t, err)
	return o
}

func allPageInfo() pagedomain.Shape {
	return pagedomain.ShapeFromPaths([]string{
		"pageInfo.currentPage",
		"pageInfo.perPage",
		"pageInfo.itemCount",
		"pageInfo.pageCount",
		"pageInfo.hasPreviousPage",
		"pageInfo.hasNextPage",
	})
}

func ptr[T any](v T) *T {
	return &v
}
