package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

func TestMergeUniqueFirstOccurrenceWins(t *testing.T) {
	shared := models.Product{ID: primitive.NewObjectID(), Title: "direct match"}
	duplicate := shared
	duplicate.Title = "category match"
	onlyDirect := models.Product{ID: primitive.NewObjectID()}
	onlyCategory := models.Product{ID: primitive.NewObjectID()}

	merged := MergeUnique(
		[]models.Product{shared, onlyDirect},
		[]models.Product{duplicate, onlyCategory},
	)

	if len(merged) != 3 {
		t.Fatalf("expected 3 unique products, got %d", len(merged))
	}
	if merged[0].ID != shared.ID || merged[0].Title != "direct match" {
		t.Fatalf("expected first occurrence to win, got %+v", merged[0])
	}
	if merged[1].ID != onlyDirect.ID || merged[2].ID != onlyCategory.ID {
		t.Fatal("expected union to preserve branch order")
	}
}

func TestMergeUniqueEmptySets(t *testing.T) {
	merged := MergeUnique(nil, nil)
	if len(merged) != 0 {
		t.Fatalf("expected empty union, got %d", len(merged))
	}
}
