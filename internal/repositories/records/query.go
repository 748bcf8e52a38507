// Package recordrepo holds the query semantics shared by every record store:
// equality filters, multi-key sorting and skip/limit windows.
package recordrepo

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	sliceutils "github.com/10Narratives/pager/pkg/slices"
)

// FindArgs are the arguments every store's find operation accepts.
var FindArgs = []pagedomain.ArgSpec{
	{Name: "filter", Type: "JSON"},
	{Name: "sort", Type: "[SortKey]"},
	{Name: "skip", Type: "Int"},
	{Name: "limit", Type: "Int"},
	{Name: "first", Type: "Int"},
}

// Query filters, sorts and windows records. The input slice is not modified.
func Query(records []pagedomain.Record, args pagedomain.Args) []pagedomain.Record {
	matched := sliceutils.Filter(records, func(r pagedomain.Record) bool {
		return Match(r, args.Filter)
	})
	SortRecords(matched, args.Sort)
	return Window(matched, args)
}

func Count(records []pagedomain.Record, filter pagedomain.Filter) int64 {
	var n int64
	for _, r := range records {
		if Match(r, filter) {
			n++
		}
	}
	return n
}

// Match reports whether every filter field equals the record's field.
func Match(r pagedomain.Record, filter pagedomain.Filter) bool {
	for field, want := range filter {
		got, ok := r[field]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

// SortRecords sorts records in place by keys; ties keep their input order.
func SortRecords(records []pagedomain.Record, keys pagedomain.Sort) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, k := range keys {
			c := compare(records[i][k.Field], records[j][k.Field])
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// Window applies skip, then limit. Without a limit, first caps the window.
// Negative skips count as zero and non-positive limits as no limit.
func Window(records []pagedomain.Record, args pagedomain.Args) []pagedomain.Record {
	skip := max(args.Skip, 0)
	if skip >= len(records) {
		return []pagedomain.Record{}
	}
	records = records[skip:]

	n := args.Limit
	if n == 0 {
		n = args.First
	}
	if n > 0 && n < len(records) {
		records = records[:n]
	}
	return records
}

func equal(a, b any) bool {
	fa, okA := number(a)
	fb, okB := number(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func compare(a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		return strings.Compare(sa, sb)
	}

	ba, okA := a.(bool)
	bb, okB := b.(bool)
	if okA && okB {
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
