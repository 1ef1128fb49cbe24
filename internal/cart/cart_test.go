package cart

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

func TestDefaultSelectionsTakeFirstValue(t *testing.T) {
	product := models.Product{
		ID: primitive.NewObjectID(),
		Properties: models.PropertyMap{
			"size":  {"S", "M", "L"},
			"color": {"red"},
		},
	}

	selections := DefaultSelections(product)

	if len(selections["size"]) != 1 || selections["size"][0] != "S" {
		t.Fatalf("expected size defaulted to [S], got %v", selections["size"])
	}
	if len(selections["color"]) != 1 || selections["color"][0] != "red" {
		t.Fatalf("expected color defaulted to [red], got %v", selections["color"])
	}
}

func TestDefaultSelectionsSkipEmptyProperties(t *testing.T) {
	product := models.Product{
		ID:         primitive.NewObjectID(),
		Properties: models.PropertyMap{"size": {}},
	}

	selections := DefaultSelections(product)
	if len(selections) != 0 {
		t.Fatalf("expected empty property skipped, got %v", selections)
	}
}

func TestNewEntryCopiesSelections(t *testing.T) {
	selections := map[string][]string{"size": {"M"}}
	entry := NewEntry("p1", selections, 0)

	selections["size"][0] = "XL"
	selections["color"] = []string{"red"}

	if entry.Selections["size"][0] != "M" {
		t.Fatal("expected entry snapshot isolated from caller mutation")
	}
	if _, ok := entry.Selections["color"]; ok {
		t.Fatal("expected entry snapshot isolated from added keys")
	}
	if entry.Quantity != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %d", entry.Quantity)
	}
	if entry.ID == "" {
		t.Fatal("expected entry id assigned")
	}
}

func TestMemoryStoreAddKeepsSeparateLines(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Add(ctx, "owner", NewEntry("p1", map[string][]string{"size": {"S"}}, 1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Add(ctx, "owner", NewEntry("p1", map[string][]string{"size": {"S"}}, 1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	entries, err := store.Get(ctx, "owner")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected repeated adds to create separate lines, got %d", len(entries))
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("expected distinct entry ids")
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	keep := NewEntry("p1", nil, 1)
	drop := NewEntry("p2", nil, 1)
	_ = store.Add(ctx, "owner", keep)
	_ = store.Add(ctx, "owner", drop)

	if err := store.Remove(ctx, "owner", drop.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	entries, _ := store.Get(ctx, "owner")
	if len(entries) != 1 || entries[0].ID != keep.ID {
		t.Fatalf("expected only the kept entry, got %v", entries)
	}

	if err := store.Remove(ctx, "owner", drop.ID); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Add(ctx, "owner", NewEntry("p1", nil, 1))
	if err := store.Clear(ctx, "owner"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	entries, _ := store.Get(ctx, "owner")
	if len(entries) != 0 {
		t.Fatalf("expected empty cart after clear, got %d entries", len(entries))
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Add(ctx, "owner", NewEntry("p1", nil, 1))

	entries, _ := store.Get(ctx, "owner")
	entries[0].ProductID = "tampered"

	fresh, _ := store.Get(ctx, "owner")
	if fresh[0].ProductID != "p1" {
		t.Fatal("expected stored entries shielded from caller mutation")
	}
}

func TestMemoryStoreIsolatesOwners(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Add(ctx, "alice", NewEntry("p1", nil, 1))

	entries, _ := store.Get(ctx, "bob")
	if len(entries) != 0 {
		t.Fatalf("expected empty cart for another owner, got %d entries", len(entries))
	}
}
