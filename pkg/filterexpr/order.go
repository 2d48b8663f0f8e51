package filterexpr

import (
	"fmt"
	"slices"
	"strings"
)

// ParseOrder resolves an order_by string against the schema. The schema tiebreak
// is appended so the resulting order is total.
func ParseOrder(raw string, schema Schema) ([]Sort, error) {
	limit := schema.MaxSortKeys
	if limit <= 0 {
		limit = 2
	}

	var sorts []Sort
	for _, term := range strings.Split(raw, ",") {
		parts := strings.Fields(term)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return nil, fmt.Errorf("malformed term %q", strings.TrimSpace(term))
		}
		key := parts[0]
		if !slices.Contains(schema.Sortable, key) {
			return nil, fmt.Errorf("cannot order by %q", key)
		}
		if slices.ContainsFunc(sorts, func(s Sort) bool { return s.Key == key }) {
			return nil, fmt.Errorf("duplicate key %q", key)
		}

		s := Sort{Key: key}
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				s.Desc = true
			default:
				return nil, fmt.Errorf("invalid direction %q for %q", parts[1], key)
			}
		}
		sorts = append(sorts, s)
	}
	if len(sorts) > limit {
		return nil, fmt.Errorf("at most %d keys are allowed", limit)
	}

	if len(sorts) == 0 {
		sorts = append(sorts, schema.Default...)
	}
	if schema.Tiebreak.Key != "" && !slices.ContainsFunc(sorts, func(s Sort) bool { return s.Key == schema.Tiebreak.Key }) {
		sorts = append(sorts, schema.Tiebreak)
	}
	return sorts, nil
}
