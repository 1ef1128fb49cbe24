package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

func TestComputeFacetsUnionsPropertyValues(t *testing.T) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"color": {"red", "blue"}}},
		{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"color": {"red"}}},
	}

	facets := ComputeFacets(products)

	colors := facets.Properties["color"]
	if len(colors) != 2 {
		t.Fatalf("expected {red, blue}, got %v", colors)
	}
	seen := map[string]bool{}
	for _, value := range colors {
		seen[value] = true
	}
	if !seen["red"] || !seen["blue"] {
		t.Fatalf("expected red and blue present, got %v", colors)
	}
}

func TestComputeFacetsFirstSeenValueOrder(t *testing.T) {
	products := []models.Product{
		{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"size": {"M", "S"}}},
		{ID: primitive.NewObjectID(), Properties: models.PropertyMap{"size": {"L", "M"}}},
	}

	facets := ComputeFacets(products)

	sizes := facets.Properties["size"]
	want := []string{"M", "S", "L"}
	if len(sizes) != len(want) {
		t.Fatalf("expected %v, got %v", want, sizes)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("expected first-seen order %v, got %v", want, sizes)
		}
	}
}

func TestComputeFacetsCollectsDistinctCategories(t *testing.T) {
	shared := primitive.NewObjectID()
	other := primitive.NewObjectID()
	products := []models.Product{
		{ID: primitive.NewObjectID(), Category: &shared},
		{ID: primitive.NewObjectID(), Category: &shared},
		{ID: primitive.NewObjectID(), Category: &other},
		{ID: primitive.NewObjectID()},
	}

	facets := ComputeFacets(products)

	if len(facets.Categories) != 2 {
		t.Fatalf("expected two distinct categories, got %v", facets.Categories)
	}
	if facets.Categories[0] != shared.Hex() || facets.Categories[1] != other.Hex() {
		t.Fatalf("expected first-seen category order, got %v", facets.Categories)
	}
}

func TestComputeFacetsEmptySet(t *testing.T) {
	facets := ComputeFacets(nil)
	if len(facets.Names) != 0 || len(facets.Properties) != 0 || len(facets.Categories) != 0 {
		t.Fatalf("expected empty facet map for empty result set, got %+v", facets)
	}
}
