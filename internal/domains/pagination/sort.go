package pagedomain

import (
	"fmt"
	"strings"
)

// ParseSort parses a comma separated list of "field[:asc|desc]" keys.
// The order defaults to ascending.
func ParseSort(expr string) (Sort, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	var sort Sort
	for _, part := range strings.Split(expr, ",") {
		pieces := strings.Split(part, ":")
		if len(pieces) > 2 {
			return nil, fmt.Errorf("%w: invalid sort key %q", ErrInvalidArguments, part)
		}

		field := strings.TrimSpace(pieces[0])
		if field == "" {
			return nil, fmt.Errorf("%w: empty sort field in %q", ErrInvalidArguments, expr)
		}

		key := SortKey{Field: field}
		if len(pieces) == 2 {
			switch strings.ToLower(strings.TrimSpace(pieces[1])) {
			case "asc":
			case "desc":
				key.Desc = true
			default:
				return nil, fmt.Errorf("%w: invalid sort order %q (must be asc or desc)", ErrInvalidArguments, pieces[1])
			}
		}
		sort = append(sort, key)
	}
	return sort, nil
}
