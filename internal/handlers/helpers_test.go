package handlers

import (
	"testing"

	"storefront/internal/models"
)

func TestParsePaginationParams(t *testing.T) {
	page, limit, err := parsePaginationParams("2", "25")
	if err != nil {
		t.Fatalf("expected valid params, got error: %v", err)
	}
	if page != 2 || limit != 25 {
		t.Fatalf("expected page=2 limit=25, got %d/%d", page, limit)
	}

	if _, _, err := parsePaginationParams("0", "10"); err == nil {
		t.Fatal("expected error for page below 1")
	}
	if _, _, err := parsePaginationParams("abc", "10"); err == nil {
		t.Fatal("expected error for non-numeric page")
	}
}

func TestNormalizePropertiesTrimsAndDropsEmpty(t *testing.T) {
	properties := normalizeProperties(map[string][]string{
		"color": {" red ", "", "blue"},
		"  ":    {"ignored"},
		"size":  {"", "  "},
	})

	if len(properties) != 1 {
		t.Fatalf("expected only color kept, got %v", properties)
	}
	colors := properties["color"]
	if len(colors) != 2 || colors[0] != "red" || colors[1] != "blue" {
		t.Fatalf("expected trimmed values [red blue], got %v", colors)
	}
}

func TestNormalizeImagesDropsBlanks(t *testing.T) {
	images := normalizeImages([]string{" /a.png ", "", "/b.png"})
	if len(images) != 2 || images[0] != "/a.png" || images[1] != "/b.png" {
		t.Fatalf("expected two trimmed image paths, got %v", images)
	}
}

func TestNormalizeProductFillsOptionalFields(t *testing.T) {
	var product models.Product
	normalizeProduct(&product)

	if product.Images == nil {
		t.Fatal("expected images initialized")
	}
	if product.Properties == nil {
		t.Fatal("expected properties initialized")
	}
}
