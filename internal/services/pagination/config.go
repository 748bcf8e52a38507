package pagesrv

import "fmt"

const DefaultPerPage = 20

// CursorPageInfoMode selects how pageInfo is treated when a call is driven by
// the `first` argument instead of page/perPage.
type CursorPageInfoMode string

const (
	// CursorPageInfoSuppress omits pageInfo and never fetches a count for it.
	CursorPageInfoSuppress CursorPageInfoMode = "suppress"
	// CursorPageInfoCompute treats `first` as the page size of page 1.
	CursorPageInfoCompute CursorPageInfoMode = "compute"
)

type Config struct {
	FindOperation  string             `yaml:"find_operation" env:"PAGER_FIND_OPERATION" env-default:"findMany"`
	CountOperation string             `yaml:"count_operation" env:"PAGER_COUNT_OPERATION" env-default:"count"`
	PerPage        int                `yaml:"per_page" env:"PAGER_PER_PAGE" env-default:"20"`
	CursorPageInfo CursorPageInfoMode `yaml:"cursor_page_info" env:"PAGER_CURSOR_PAGE_INFO" env-default:"suppress"`
	// ProbeHasNextPage answers hasPreviousPage/hasNextPage without a count:
	// the former from the page number, the latter from the over-fetched record.
	ProbeHasNextPage bool `yaml:"probe_has_next_page" env:"PAGER_PROBE_HAS_NEXT_PAGE"`
	// Sequential runs find before count instead of running them concurrently.
	Sequential bool `yaml:"sequential" env:"PAGER_SEQUENTIAL"`
}

func (c Config) withDefaults() Config {
	if c.PerPage == 0 {
		c.PerPage = DefaultPerPage
	}
	if c.CursorPageInfo == "" {
		c.CursorPageInfo = CursorPageInfoSuppress
	}
	return c
}

func (c Config) validateMode() error {
	switch c.CursorPageInfo {
	case CursorPageInfoSuppress, CursorPageInfoCompute:
		return nil
	default:
		return fmt.Errorf("unknown cursor page info mode %q", c.CursorPageInfo)
	}
}
