package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/cart"
	"storefront/internal/models"
)

func GetMe(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get("userId")
		if !ok {
			log.Println("[AUTH] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			log.Println("[AUTH] [ERROR] get me failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":        user.ID.Hex(),
			"email":     user.Email,
			"name":      user.Name,
			"createdAt": user.CreatedAt,
			"updatedAt": user.UpdatedAt,
		})
	}
}

/*
DELETE /account
- Deletes the account, then revokes sessions and clears the cart.
- A failed deletion aborts the flow before any sign-out side effect: the
  caller stays signed in. At most one attempt, no retries.
*/
func DeleteAccount(db *mongo.Database, store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("users").DeleteOne(ctx, bson.M{"_id": userID})
		if err != nil {
			log.Println("[ACCOUNT] [ERROR] delete user failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		// Deletion is confirmed from here; cleanup failures are logged but do
		// not resurrect the account.
		if _, err := db.Collection("refresh_tokens").UpdateMany(ctx,
			bson.M{"userId": userID},
			bson.M{"$set": bson.M{"revoked": true}},
		); err != nil {
			log.Println("[ACCOUNT] [ERROR] revoke sessions failed:", err)
		}

		if err := store.Clear(ctx, userID.Hex()); err != nil {
			log.Println("[ACCOUNT] [ERROR] clear cart failed:", err)
		}

		log.Println("[ACCOUNT] [INFO] account deleted:", userID.Hex())
		c.Status(http.StatusNoContent)
	}
}
