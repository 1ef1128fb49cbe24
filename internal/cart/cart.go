package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// ErrEntryNotFound is returned when removing an entry that is not in the cart.
var ErrEntryNotFound = errors.New("cart entry not found")

// Entry is one line in a cart. Repeated adds of the same product create
// separate lines; quantities are not merged.
type Entry struct {
	ID         string              `json:"id"`
	ProductID  string              `json:"productId"`
	Selections map[string][]string `json:"selections"`
	Quantity   int                 `json:"quantity"`
	AddedAt    time.Time           `json:"addedAt"`
}

// Store holds per-owner cart state across navigation within a session. Each
// cart has a single logical writer (the interacting user); implementations
// only guard their own shared structures.
type Store interface {
	Get(ctx context.Context, ownerID string) ([]Entry, error)
	Add(ctx context.Context, ownerID string, entry Entry) error
	Remove(ctx context.Context, ownerID, entryID string) error
	Clear(ctx context.Context, ownerID string) error
}

// NewEntry builds a cart line with a fresh id. The selections are copied so
// later catalog or caller mutation cannot alter the snapshot.
func NewEntry(productID string, selections map[string][]string, quantity int) Entry {
	if quantity < 1 {
		quantity = 1
	}
	return Entry{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Selections: copySelections(selections),
		Quantity:   quantity,
		AddedAt:    time.Now(),
	}
}

// DefaultSelections snapshots the first value of each of the product's
// properties, the choice made when the user adds to cart without picking.
func DefaultSelections(product models.Product) map[string][]string {
	selections := make(map[string][]string, len(product.Properties))
	for name, values := range product.Properties {
		if first := values.First(); first != "" {
			selections[name] = []string{first}
		}
	}
	return selections
}

func copySelections(selections map[string][]string) map[string][]string {
	copied := make(map[string][]string, len(selections))
	for name, values := range selections {
		copied[name] = append([]string(nil), values...)
	}
	return copied
}
