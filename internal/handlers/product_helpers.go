package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

// normalizeProduct keeps the response shape stable for documents missing
// optional fields.
func normalizeProduct(p *models.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Properties == nil {
		p.Properties = models.PropertyMap{}
	}
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	for i := range products {
		normalizeProduct(&products[i])
	}

	return products, nil
}
