package handlers

import (
	"context"
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

type CategoryCreateRequest struct {
	Name       string                  `json:"name" binding:"required"`
	Parent     string                  `json:"parent"`
	Properties []models.PropertySchema `json:"properties"`
}

type CategoryUpdateRequest struct {
	Name       *string                  `json:"name"`
	Parent     *string                  `json:"parent"`
	Properties *[]models.PropertySchema `json:"properties"`
}

/*
GET /admin/api/categories
*/
func GetAllCategories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("categories").
			Find(context.Background(), bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(context.Background())

		categories := make([]models.Category, 0)
		if err := cursor.All(context.Background(), &categories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": categories,
		})
	}
}

/*
POST /admin/api/categories
- Duplicate names rejected
- Parent, when given, must be an existing category
*/
func CreateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}

		var parent *primitive.ObjectID
		if strings.TrimSpace(req.Parent) != "" {
			parentID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.Parent))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
				return
			}
			exists, err := db.Collection("categories").CountDocuments(ctx, bson.M{"_id": parentID})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			if exists == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "parent category not found"})
				return
			}
			parent = &parentID
		}

		category := models.Category{
			Name:       name,
			Parent:     parent,
			Properties: normalizePropertySchemas(req.Properties),
			CreatedAt:  time.Now(),
		}

		result, err := db.Collection("categories").InsertOne(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		category.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, category)
	}
}

/*
PUT /admin/api/categories/:id
- Re-parenting that would close a cycle is rejected
*/
func UpdateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req CategoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		update := bson.M{}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			update["name"] = name
		}

		if req.Parent != nil {
			parent := strings.TrimSpace(*req.Parent)
			if parent == "" {
				update["parent"] = nil
			} else {
				parentID, err := primitive.ObjectIDFromHex(parent)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
					return
				}
				if parentID == id {
					c.JSON(http.StatusBadRequest, gin.H{"error": "category cannot be its own parent"})
					return
				}
				cyclic, err := wouldFormCycle(ctx, db, id, parentID)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
					return
				}
				if cyclic {
					c.JSON(http.StatusBadRequest, gin.H{"error": "parent would form a cycle"})
					return
				}
				update["parent"] = parentID
			}
		}

		if req.Properties != nil {
			update["properties"] = normalizePropertySchemas(*req.Properties)
		}

		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		var updated models.Category
		err = db.Collection("categories").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": id},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /admin/api/categories/:id
- Products keep their reference cleared so they stay reachable uncategorized
*/
func DeleteCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("categories").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		if _, err := db.Collection("products").UpdateMany(ctx,
			bson.M{"category": id},
			bson.M{"$unset": bson.M{"category": ""}},
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if _, err := db.Collection("categories").UpdateMany(ctx,
			bson.M{"parent": id},
			bson.M{"$unset": bson.M{"parent": ""}},
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// wouldFormCycle walks up from the proposed parent; hitting the category
// being updated means the tree would loop.
func wouldFormCycle(ctx context.Context, db *mongo.Database, id, parentID primitive.ObjectID) (bool, error) {
	current := parentID
	for i := 0; i < 100; i++ {
		var node models.Category
		err := db.Collection("categories").FindOne(ctx, bson.M{"_id": current}).Decode(&node)
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if node.Parent == nil {
			return false, nil
		}
		if *node.Parent == id {
			return true, nil
		}
		current = *node.Parent
	}
	return true, nil
}

func normalizePropertySchemas(schemas []models.PropertySchema) []models.PropertySchema {
	normalized := make([]models.PropertySchema, 0, len(schemas))
	for _, schema := range schemas {
		name := strings.TrimSpace(schema.Name)
		if name == "" {
			continue
		}
		values := make([]string, 0, len(schema.Values))
		for _, value := range schema.Values {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
		normalized = append(normalized, models.PropertySchema{Name: name, Values: values})
	}
	return normalized
}
