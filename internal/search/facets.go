package search

import (
	"sort"

	"storefront/internal/models"
)

// Facets captures the distinct filterable values observed across a result
// set. It feeds the filter controls, so it is computed over the broad search
// match, not over an already refined subset.
type Facets struct {
	Names      []string            `json:"names"`
	Properties map[string][]string `json:"properties"`
	Categories []string            `json:"categories"`
}

// ComputeFacets groups every observed (property, value) pair into per-name
// value sets, expanding multi-valued properties into each member. Value order
// is first-seen; property names are visited alphabetically per product so the
// output is deterministic.
func ComputeFacets(products []models.Product) Facets {
	facets := Facets{
		Names:      []string{},
		Properties: map[string][]string{},
		Categories: []string{},
	}
	seenValue := map[string]map[string]bool{}
	seenCategory := map[string]bool{}

	for _, product := range products {
		for _, name := range sortedPropertyNames(product.Properties) {
			if _, ok := seenValue[name]; !ok {
				seenValue[name] = map[string]bool{}
				facets.Names = append(facets.Names, name)
				facets.Properties[name] = []string{}
			}
			for _, value := range product.Properties[name] {
				if seenValue[name][value] {
					continue
				}
				seenValue[name][value] = true
				facets.Properties[name] = append(facets.Properties[name], value)
			}
		}

		if ref := product.CategoryHex(); ref != "" && !seenCategory[ref] {
			seenCategory[ref] = true
			facets.Categories = append(facets.Categories, ref)
		}
	}

	return facets
}

func sortedPropertyNames(properties models.PropertyMap) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
