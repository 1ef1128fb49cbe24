package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

type ProductCreateRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Images      []string            `json:"images"`
	Price       *float64            `json:"price" binding:"required"`
	Category    string              `json:"category"`
	Properties  map[string][]string `json:"properties"`
}

type ProductUpdateRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Images      *[]string            `json:"images"`
	Price       *float64             `json:"price"`
	Category    *string              `json:"category"`
	Properties  *map[string][]string `json:"properties"`
}

/*
GET /admin/api/products
- Full catalog for the admin panel, newest first, optional title search
*/
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		filter := bson.M{}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["title"] = bson.M{"$regex": search, "$options": "i"}
		}

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products, err := decodeProducts(ctx, cursor)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": products,
		})
	}
}

/*
POST /admin/api/products
- Price must be non-negative; category, when given, must exist
*/
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
			return
		}
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		category, ok := resolveCategoryRef(c, ctx, db, req.Category)
		if !ok {
			return
		}

		product := models.Product{
			Title:       title,
			Description: strings.TrimSpace(req.Description),
			Images:      normalizeImages(req.Images),
			Price:       *req.Price,
			Category:    category,
			Properties:  normalizeProperties(req.Properties),
			CreatedAt:   time.Now(),
		}

		result, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			log.Println("[ADMIN] [ERROR] create product failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		product.ID = result.InsertedID.(primitive.ObjectID)

		log.Println("[ADMIN] [INFO] product created:", product.ID.Hex())
		c.JSON(http.StatusCreated, product)
	}
}

/*
PUT /admin/api/products/:id
- Partial update; only supplied fields change
*/
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		update := bson.M{}
		unset := bson.M{}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
				return
			}
			update["title"] = title
		}

		if req.Description != nil {
			update["description"] = strings.TrimSpace(*req.Description)
		}

		if req.Images != nil {
			update["images"] = normalizeImages(*req.Images)
		}

		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
				return
			}
			update["price"] = *req.Price
		}

		if req.Category != nil {
			if strings.TrimSpace(*req.Category) == "" {
				unset["category"] = ""
			} else {
				category, ok := resolveCategoryRef(c, ctx, db, *req.Category)
				if !ok {
					return
				}
				update["category"] = category
			}
		}

		if req.Properties != nil {
			update["properties"] = normalizeProperties(*req.Properties)
		}

		if len(update) == 0 && len(unset) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		change := bson.M{}
		if len(update) > 0 {
			change["$set"] = update
		}
		if len(unset) > 0 {
			change["$unset"] = unset
		}

		var updated models.Product
		err = db.Collection("products").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": id},
				change,
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		normalizeProduct(&updated)
		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /admin/api/products/:id
*/
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		log.Println("[ADMIN] [INFO] product deleted:", id.Hex())
		c.Status(http.StatusNoContent)
	}
}

func resolveCategoryRef(c *gin.Context, ctx context.Context, db *mongo.Database, raw string) (*primitive.ObjectID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return nil, false
	}

	count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return nil, false
	}
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
		return nil, false
	}

	return &id, true
}

func normalizeImages(images []string) []string {
	normalized := make([]string, 0, len(images))
	for _, image := range images {
		if image = strings.TrimSpace(image); image != "" {
			normalized = append(normalized, image)
		}
	}
	return normalized
}

func normalizeProperties(properties map[string][]string) models.PropertyMap {
	normalized := make(models.PropertyMap, len(properties))
	for name, values := range properties {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		list := make(models.StringList, 0, len(values))
		for _, value := range values {
			if value = strings.TrimSpace(value); value != "" {
				list = append(list, value)
			}
		}
		if len(list) > 0 {
			normalized[name] = list
		}
	}
	return normalized
}
