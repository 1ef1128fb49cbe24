package search

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

func float(v float64) *float64 { return &v }

func TestApplyFiltersUnconstrainedKeepsEverything(t *testing.T) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Price: 10},
		{ID: primitive.NewObjectID(), Price: 999},
	}

	filtered := ApplyFilters(products, FilterSet{})
	if len(filtered) != len(products) {
		t.Fatalf("expected no constraint to keep all %d products, got %d", len(products), len(filtered))
	}
}

func TestApplyFiltersPriceBoundsAreInclusive(t *testing.T) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Price: 10},
		{ID: primitive.NewObjectID(), Price: 30},
		{ID: primitive.NewObjectID(), Price: 50},
		{ID: primitive.NewObjectID(), Price: 50.01},
	}

	filtered := ApplyFilters(products, FilterSet{MinPrice: float(10), MaxPrice: float(50)})
	if len(filtered) != 3 {
		t.Fatalf("expected boundary prices included, got %d products", len(filtered))
	}
}

func TestApplyFiltersPropertyMembership(t *testing.T) {
	multi := models.Product{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"color": {"red", "blue"}}}
	single := models.Product{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"color": {"green"}}}
	missing := models.Product{ID: primitive.NewObjectID()}
	products := []models.Product{multi, single, missing}

	filtered := ApplyFilters(products, FilterSet{Properties: map[string][]string{"color": {"blue"}}})
	if len(filtered) != 1 || filtered[0].ID != multi.ID {
		t.Fatalf("expected only the multi-valued product to match blue, got %d", len(filtered))
	}

	filtered = ApplyFilters(products, FilterSet{Properties: map[string][]string{"color": {"green", "blue"}}})
	if len(filtered) != 2 {
		t.Fatalf("expected any accepted value to match, got %d", len(filtered))
	}
}

func TestApplyFiltersCategoryMembership(t *testing.T) {
	cat := primitive.NewObjectID()
	in := models.Product{ID: primitive.NewObjectID(), Category: &cat}
	out := models.Product{ID: primitive.NewObjectID()}

	filtered := ApplyFilters([]models.Product{in, out}, FilterSet{Categories: []string{cat.Hex()}})
	if len(filtered) != 1 || filtered[0].ID != in.ID {
		t.Fatalf("expected only the categorized product, got %d", len(filtered))
	}
}

// Refinement over a fixed set must reproduce the server-side predicate
// semantics, so narrowing and widening never diverge from a fresh query.
func TestApplyFiltersMatchesPredicateSemantics(t *testing.T) {
	cat := primitive.NewObjectID()
	products := []models.Product{
		{ID: primitive.NewObjectID(), Price: 15, Category: &cat, Properties: models.PropertyMap{"size": {"S", "M"}}},
		{ID: primitive.NewObjectID(), Price: 15, Category: &cat, Properties: models.PropertyMap{"size": {"XL"}}},
		{ID: primitive.NewObjectID(), Price: 75, Category: &cat, Properties: models.PropertyMap{"size": {"M"}}},
		{ID: primitive.NewObjectID(), Price: 15, Properties: models.PropertyMap{"size": {"M"}}},
	}
	fs := FilterSet{
		MinPrice:   float(10),
		MaxPrice:   float(50),
		Categories: []string{cat.Hex()},
		Properties: map[string][]string{"size": {"M"}},
	}

	filtered := ApplyFilters(products, fs)

	if len(filtered) != 1 || filtered[0].ID != products[0].ID {
		t.Fatalf("expected exactly the first product to satisfy all constraints, got %d", len(filtered))
	}
}

func TestSortProductsPriceStableForEqualKeys(t *testing.T) {
	first := models.Product{ID: primitive.NewObjectID(), Price: 20}
	second := models.Product{ID: primitive.NewObjectID(), Price: 20}
	cheap := models.Product{ID: primitive.NewObjectID(), Price: 5}
	products := []models.Product{first, second, cheap}

	SortProducts(products, SortPriceAsc)

	if products[0].ID != cheap.ID {
		t.Fatal("expected cheapest product first")
	}
	if products[1].ID != first.ID || products[2].ID != second.ID {
		t.Fatal("expected equal prices to keep pre-sort relative order")
	}

	SortProducts(products, SortPriceDesc)
	if products[0].ID != first.ID || products[1].ID != second.ID {
		t.Fatal("expected equal prices to keep relative order under priceDesc")
	}
}

func TestSortProductsByCreationTime(t *testing.T) {
	now := time.Now()
	oldest := models.Product{ID: primitive.NewObjectID(), CreatedAt: now.Add(-2 * time.Hour)}
	middle := models.Product{ID: primitive.NewObjectID(), CreatedAt: now.Add(-time.Hour)}
	newest := models.Product{ID: primitive.NewObjectID(), CreatedAt: now}
	products := []models.Product{middle, newest, oldest}

	SortProducts(products, SortNewest)
	if products[0].ID != newest.ID || products[2].ID != oldest.ID {
		t.Fatal("expected newest-first ordering")
	}

	SortProducts(products, SortOldest)
	if products[0].ID != oldest.ID || products[2].ID != newest.ID {
		t.Fatal("expected oldest-first ordering")
	}
}

func TestSortProductsNoneLeavesOrder(t *testing.T) {
	a := models.Product{ID: primitive.NewObjectID(), Price: 9}
	b := models.Product{ID: primitive.NewObjectID(), Price: 1}
	products := []models.Product{a, b}

	SortProducts(products, SortNone)
	if products[0].ID != a.ID {
		t.Fatal("expected natural order preserved for SortNone")
	}
}
