package search

import (
	"net/url"
	"strconv"
	"strings"
)

// SortOrder selects the in-memory ordering applied after retrieval.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
)

// PropertyParamPrefix marks query-string keys carrying property filters,
// e.g. property_color=red.
const PropertyParamPrefix = "property_"

// FilterSet is the request-scoped set of constraints parsed from the query
// string. A nil or empty field means that dimension is unconstrained, never
// "match empty".
type FilterSet struct {
	MinPrice   *float64            `json:"minPrice,omitempty"`
	MaxPrice   *float64            `json:"maxPrice,omitempty"`
	Categories []string            `json:"category,omitempty"`
	Properties map[string][]string `json:"properties,omitempty"`
	Sort       SortOrder           `json:"sortOrder,omitempty"`
}

// ParseFilterSet reads filter parameters from raw request values. Malformed
// numeric bounds are dropped, not rejected.
func ParseFilterSet(values url.Values) FilterSet {
	fs := FilterSet{Properties: map[string][]string{}}

	if bound := parsePriceBound(values.Get("minPrice")); bound != nil {
		fs.MinPrice = bound
	}
	if bound := parsePriceBound(values.Get("maxPrice")); bound != nil {
		fs.MaxPrice = bound
	}

	for _, id := range values["category"] {
		if id = strings.TrimSpace(id); id != "" {
			fs.Categories = append(fs.Categories, id)
		}
	}

	for key, raw := range values {
		if !strings.HasPrefix(key, PropertyParamPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, PropertyParamPrefix)
		if name == "" {
			continue
		}
		accepted := make([]string, 0, len(raw))
		for _, value := range raw {
			if value = strings.TrimSpace(value); value != "" {
				accepted = append(accepted, value)
			}
		}
		if len(accepted) > 0 {
			fs.Properties[name] = accepted
		}
	}

	fs.Sort = ParseSortOrder(values.Get("sortOrder"))
	return fs
}

// ParseSortOrder maps the sortOrder parameter onto a known order; anything
// unrecognized falls back to the store's natural order.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(strings.TrimSpace(raw)) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortNewest:
		return SortNewest
	case SortOldest:
		return SortOldest
	default:
		return SortNone
	}
}

func parsePriceBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
