package search

import (
	"storefront/internal/models"
)

// ApplyFilters re-applies the predicate semantics over an already fetched
// result set, without a new store round trip. Bounds are inclusive and a
// property filter accepts any product carrying at least one accepted value,
// matching Predicate exactly so refinement never diverges from a fresh query.
func ApplyFilters(products []models.Product, fs FilterSet) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if Matches(product, fs) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Matches reports whether a single product satisfies every constraint in the
// filter set. An absent constraint never excludes anything.
func Matches(product models.Product, fs FilterSet) bool {
	if fs.MinPrice != nil && product.Price < *fs.MinPrice {
		return false
	}
	if fs.MaxPrice != nil && product.Price > *fs.MaxPrice {
		return false
	}

	if len(fs.Categories) > 0 {
		ref := product.CategoryHex()
		found := false
		for _, id := range fs.Categories {
			if id == ref {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for name, accepted := range fs.Properties {
		if len(accepted) == 0 {
			continue
		}
		values, ok := product.Properties[name]
		if !ok || !values.Contains(accepted) {
			return false
		}
	}

	return true
}
