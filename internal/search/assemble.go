package search

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// Assembler executes the two-branch catalog search: the predicate applied
// directly to products, and the predicate applied to products whose category
// name matches the same free-text query. The union is deduplicated by product
// identity, first occurrence winning.
type Assembler struct {
	db *mongo.Database
}

func NewAssembler(db *mongo.Database) *Assembler {
	return &Assembler{db: db}
}

// Search runs both branches and returns the merged result set in the
// requested order. With SortNone the store's identity-descending order is
// preserved.
func (a *Assembler) Search(ctx context.Context, query string, fs FilterSet) ([]models.Product, error) {
	predicate := Predicate(query, fs)

	direct, err := a.findProducts(ctx, predicate)
	if err != nil {
		return nil, err
	}

	byCategory, err := a.findByCategoryName(ctx, query, predicate)
	if err != nil {
		return nil, err
	}

	merged := MergeUnique(direct, byCategory)
	SortProducts(merged, fs.Sort)
	return merged, nil
}

func (a *Assembler) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := a.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// findByCategoryName resolves categories matching the query and fetches their
// products under the same predicate. An explicit category constraint in the
// predicate takes precedence over the name-match set.
func (a *Assembler) findByCategoryName(ctx context.Context, query string, predicate bson.M) ([]models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}

	cursor, err := a.db.Collection("categories").Find(ctx, bson.M{"name": titleRegex(q)})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(categories))
	for _, cat := range categories {
		ids = append(ids, cat.ID)
	}

	branch := bson.M{"category": bson.M{"$in": ids}}
	for key, value := range predicate {
		branch[key] = value
	}

	return a.findProducts(ctx, branch)
}

// MergeUnique unions result sets, keeping the first occurrence of each
// product id and dropping later duplicates.
func MergeUnique(sets ...[]models.Product) []models.Product {
	seen := make(map[string]bool)
	merged := make([]models.Product, 0)
	for _, set := range sets {
		for _, product := range set {
			key := product.ID.Hex()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, product)
		}
	}
	return merged
}
