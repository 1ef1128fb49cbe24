package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
	"storefront/internal/search"
)

/*
GET /search/:query
- Free-text query in the path, filters in the query string:
  minPrice, maxPrice, category (repeatable), sortOrder,
  property_<name> (repeatable per property)
- Facets are computed over the broad match, before any client refinement
*/
func Search(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /search/:query"
		defer handlePanic(c, route)

		query := c.Param("query")
		filters := search.ParseFilterSet(c.Request.URL.Query())

		log.Printf("[%s] hit query=%q sort=%q", route, query, filters.Sort)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		results, err := search.NewAssembler(db).Search(ctx, query, filters)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		for i := range results {
			normalizeProduct(&results[i])
		}

		cursor, err := db.Collection("categories").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		categories := make([]models.Category, 0)
		if err := cursor.All(ctx, &categories); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d results", route, len(results))
		c.JSON(http.StatusOK, gin.H{
			"results":    results,
			"facets":     search.ComputeFacets(results),
			"categories": categories,
			"filters":    filters,
		})
	}
}
