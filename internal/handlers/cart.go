package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/cart"
	"storefront/internal/models"
)

type addCartItemRequest struct {
	ProductID  string              `json:"productId" binding:"required"`
	Selections map[string][]string `json:"selections"`
	Quantity   int                 `json:"quantity"`
}

func GetCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		entries, err := store.Get(ctx, userID.Hex())
		if err != nil {
			log.Println("[CART] [ERROR] get cart failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": entries})
	}
}

func AddCartItem(db *mongo.Database, store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[CART] [ERROR] invalid add body:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		productID, err := primitive.ObjectIDFromHex(req.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			log.Println("[CART] [ERROR] product lookup failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		selections := req.Selections
		if len(selections) == 0 {
			selections = cart.DefaultSelections(product)
		}

		entry := cart.NewEntry(product.ID.Hex(), selections, req.Quantity)
		if err := store.Add(ctx, userID.Hex(), entry); err != nil {
			log.Println("[CART] [ERROR] add entry failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}

		log.Println("[CART] [INFO] entry added:", entry.ID)
		c.JSON(http.StatusCreated, gin.H{"entry": entry})
	}
}

func RemoveCartItem(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		entryID := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.Remove(ctx, userID.Hex(), entryID); err != nil {
			if errors.Is(err, cart.ErrEntryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart entry not found"})
				return
			}
			log.Println("[CART] [ERROR] remove entry failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}

		log.Println("[CART] [INFO] entry removed:", entryID)
		c.Status(http.StatusNoContent)
	}
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, ok := c.Get("userId")
	if !ok {
		log.Println("[CART] [ERROR] userId missing in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}

	userID, ok := value.(primitive.ObjectID)
	if !ok {
		log.Println("[CART] [ERROR] userId has unexpected type")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}

	return userID, true
}
