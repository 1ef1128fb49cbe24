package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type propertyDoc struct {
	Properties PropertyMap `bson:"properties"`
}

func TestPropertyMapDecodesLegacyStringValue(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"properties": bson.M{
			"color": "red",
			"size":  []string{"S", "M"},
		},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc propertyDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got := doc.Properties["color"]; len(got) != 1 || got[0] != "red" {
		t.Fatalf("expected legacy string decoded as single-element list, got %v", got)
	}
	if got := doc.Properties["size"]; len(got) != 2 {
		t.Fatalf("expected array decoded as-is, got %v", got)
	}
}

func TestStringListContains(t *testing.T) {
	values := StringList{"red", "blue"}

	if !values.Contains([]string{"blue"}) {
		t.Fatal("expected membership on overlapping value")
	}
	if values.Contains([]string{"green"}) {
		t.Fatal("expected no membership without overlap")
	}
	if values.Contains(nil) {
		t.Fatal("expected empty accepted set to never match")
	}
}

func TestStringListFirst(t *testing.T) {
	if got := (StringList{"S", "M"}).First(); got != "S" {
		t.Fatalf("expected first value S, got %q", got)
	}
	if got := (StringList{}).First(); got != "" {
		t.Fatalf("expected empty string for empty list, got %q", got)
	}
}
