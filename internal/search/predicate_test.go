package search

import (
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPredicateEmptyFilterSetIsOpen(t *testing.T) {
	filter := Predicate("", FilterSet{})
	if len(filter) != 0 {
		t.Fatalf("expected open predicate for empty filter set, got %v", filter)
	}
}

func TestPredicateTitleMatchIsCaseInsensitive(t *testing.T) {
	filter := Predicate("Shirt", FilterSet{})
	title, ok := filter["title"].(bson.M)
	if !ok {
		t.Fatalf("expected title clause, got %v", filter)
	}
	if title["$regex"] != "Shirt" || title["$options"] != "i" {
		t.Fatalf("expected case-insensitive regex on title, got %v", title)
	}
}

func TestPredicateSearchScenario(t *testing.T) {
	catID := primitive.NewObjectID()
	values := url.Values{
		"minPrice": []string{"10"},
		"maxPrice": []string{"50"},
		"category": []string{catID.Hex()},
	}
	fs := ParseFilterSet(values)

	filter := Predicate("shirt", fs)

	price, ok := filter["price"].(bson.M)
	if !ok {
		t.Fatalf("expected price clause, got %v", filter)
	}
	if price["$gte"] != 10.0 || price["$lte"] != 50.0 {
		t.Fatalf("expected inclusive bounds [10,50], got %v", price)
	}

	category, ok := filter["category"].(bson.M)
	if !ok {
		t.Fatalf("expected category clause, got %v", filter)
	}
	refs, ok := category["$in"].([]interface{})
	if !ok || len(refs) != 1 {
		t.Fatalf("expected one category ref, got %v", category)
	}
	if refs[0] != catID {
		t.Fatalf("expected hex id resolved to ObjectID, got %v", refs[0])
	}
}

func TestPredicateQuotesRegexMetacharacters(t *testing.T) {
	filter := Predicate("100% cotton (soft)", FilterSet{})
	title := filter["title"].(bson.M)
	if title["$regex"] == "100% cotton (soft)" {
		t.Fatal("expected regex metacharacters to be quoted")
	}
}

func TestPredicatePropertyFiltersUseIn(t *testing.T) {
	fs := FilterSet{Properties: map[string][]string{"color": {"red", "blue"}}}
	filter := Predicate("", fs)

	clause, ok := filter["properties.color"].(bson.M)
	if !ok {
		t.Fatalf("expected properties.color clause, got %v", filter)
	}
	accepted, ok := clause["$in"].([]string)
	if !ok || len(accepted) != 2 {
		t.Fatalf("expected two accepted values, got %v", clause)
	}
}

func TestParseFilterSetDropsMalformedBounds(t *testing.T) {
	values := url.Values{
		"minPrice": []string{"abc"},
		"maxPrice": []string{"50"},
	}
	fs := ParseFilterSet(values)

	if fs.MinPrice != nil {
		t.Fatalf("expected malformed minPrice dropped, got %v", *fs.MinPrice)
	}
	if fs.MaxPrice == nil || *fs.MaxPrice != 50 {
		t.Fatal("expected valid maxPrice kept")
	}
}

func TestParseFilterSetCollectsRepeatedPropertyParams(t *testing.T) {
	values := url.Values{
		"property_color": []string{"red", "blue"},
		"property_size":  []string{"M"},
		"property_":      []string{"ignored"},
	}
	fs := ParseFilterSet(values)

	if len(fs.Properties["color"]) != 2 {
		t.Fatalf("expected two accepted colors, got %v", fs.Properties["color"])
	}
	if len(fs.Properties["size"]) != 1 {
		t.Fatalf("expected one accepted size, got %v", fs.Properties["size"])
	}
	if len(fs.Properties) != 2 {
		t.Fatalf("expected nameless property param ignored, got %v", fs.Properties)
	}
}

func TestParseSortOrderFallsBackToNone(t *testing.T) {
	if got := ParseSortOrder("priceAsc"); got != SortPriceAsc {
		t.Fatalf("expected priceAsc, got %q", got)
	}
	if got := ParseSortOrder("bogus"); got != SortNone {
		t.Fatalf("expected none for unknown order, got %q", got)
	}
	if got := ParseSortOrder(""); got != SortNone {
		t.Fatalf("expected none for empty order, got %q", got)
	}
}
