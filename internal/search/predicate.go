package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Predicate translates a free-text query plus a filter set into a store-level
// filter document. Dimensions without a constraint are left out entirely, so
// the predicate stays open on those fields.
func Predicate(query string, fs FilterSet) bson.M {
	filter := bson.M{}

	if q := strings.TrimSpace(query); q != "" {
		filter["title"] = titleRegex(q)
	}

	price := bson.M{}
	if fs.MinPrice != nil {
		price["$gte"] = *fs.MinPrice
	}
	if fs.MaxPrice != nil {
		price["$lte"] = *fs.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if refs := categoryRefs(fs.Categories); len(refs) > 0 {
		filter["category"] = bson.M{"$in": refs}
	}

	for name, accepted := range fs.Properties {
		if len(accepted) == 0 {
			continue
		}
		// $in matches scalar equality and array membership alike, so
		// single and multi-valued properties share one clause.
		filter["properties."+name] = bson.M{"$in": accepted}
	}

	return filter
}

func titleRegex(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}

// categoryRefs keeps ids opaque: valid hex ids are matched as ObjectIDs,
// everything else is matched as the raw string, covering legacy documents
// that stored category as a plain string.
func categoryRefs(ids []string) []interface{} {
	refs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			refs = append(refs, oid)
			continue
		}
		refs = append(refs, id)
	}
	return refs
}
