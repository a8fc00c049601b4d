package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestItems_AbsentValue(t *testing.T) {
	items := Items(nil, nil)
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestItems_SingleObjectWithLookup(t *testing.T) {
	lookup := map[string]string{"AG25": "Emerald Turf"}
	items := Items(bson.M{"id": "AG25", "quantity": 2, "price": 50}, lookup)

	assert.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "AG25", it.ID)
	assert.Equal(t, "Emerald Turf", it.Name)
	assert.Equal(t, "Emerald Turf", it.Category)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, "", it.SizeType)
	assert.Equal(t, 50.0, it.Price)
}

func TestItems_ArrayPreservesOrderAndLength(t *testing.T) {
	lookup := map[string]string{"AG25": "Emerald Turf", "LG10": "Cow Grass"}
	items := Items([]any{
		bson.M{"id": "LG10", "quantity": 1, "price": 12},
		bson.M{"id": "AG25", "quantity": 2, "price": 50},
	}, lookup)

	assert.Len(t, items, 2)
	assert.Equal(t, "Cow Grass", items[0].Name)
	assert.Equal(t, "Emerald Turf", items[1].Name)
}

func TestItems_BsonArray(t *testing.T) {
	items := Items(bson.A{bson.M{"name": "Granite Pebbles", "price": 35}}, nil)
	assert.Len(t, items, 1)
	assert.Equal(t, "Granite Pebbles", items[0].Name)
}

func TestItems_CategoryBackfillsName(t *testing.T) {
	// Item without any name-like field and absent from the lookup map.
	items := Items(bson.M{"category": "Rocks", "quantity": 3}, map[string]string{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Rocks", items[0].Name)
	assert.Equal(t, "Rocks", items[0].Category)
}

func TestItems_PrimitiveString(t *testing.T) {
	items := Items("Custom Item", nil)

	assert.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "Custom Item", it.Name)
	assert.Equal(t, "Custom Item", it.Category)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, 0.0, it.Price)
}

func TestItems_NameFallbackChain(t *testing.T) {
	cases := []struct {
		doc  bson.M
		want string
	}{
		{bson.M{"name": "A", "productName": "B"}, "A"},
		{bson.M{"productName": "B", "product": "C"}, "B"},
		{bson.M{"product": "C", "label": "D"}, "C"},
		{bson.M{"label": "D", "title": "E"}, "D"},
		{bson.M{"title": "E"}, "E"},
	}
	for _, tc := range cases {
		items := Items(tc.doc, nil)
		if items[0].Name != tc.want {
			t.Fatalf("doc %v: expected name %q, got %q", tc.doc, tc.want, items[0].Name)
		}
	}
}

func TestItems_LookupWinsOverOwnName(t *testing.T) {
	lookup := map[string]string{"DP01": "Monstera Deliciosa"}
	items := Items(bson.M{"id": "DP01", "name": "monstera (old)"}, lookup)
	assert.Equal(t, "Monstera Deliciosa", items[0].Name)
}

func TestItems_AltQuantityAndPriceFields(t *testing.T) {
	items := Items(bson.M{"name": "Clay Pot", "qty": 4, "amount": 18.5, "size": "M"}, nil)
	it := items[0]
	assert.Equal(t, 4, it.Quantity)
	assert.Equal(t, 18.5, it.Price)
	assert.Equal(t, "M", it.SizeType)
}

func TestItems_MalformedNumbersCoerceSilently(t *testing.T) {
	items := Items(bson.M{"name": "Bench", "quantity": "two", "price": "abc"}, nil)
	it := items[0]
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, 0.0, it.Price)
}

func TestItems_NumericStrings(t *testing.T) {
	items := Items(bson.M{"name": "Bench", "quantity": "3", "price": "120.50"}, nil)
	it := items[0]
	assert.Equal(t, 3, it.Quantity)
	assert.Equal(t, 120.5, it.Price)
}

func TestItems_BsonDDocument(t *testing.T) {
	doc := bson.D{{Key: "name", Value: "Stone Lantern"}, {Key: "price", Value: int32(88)}}
	items := Items(doc, nil)
	assert.Equal(t, "Stone Lantern", items[0].Name)
	assert.Equal(t, 88.0, items[0].Price)
}

func TestRating_AlternateFieldOrder(t *testing.T) {
	assert.Equal(t, 4.0, Rating(4, nil, nil))
	assert.Equal(t, 5.0, Rating(nil, int32(5), nil))
	assert.Equal(t, 3.5, Rating(nil, nil, "3.5"))
	assert.Equal(t, 0.0, Rating(nil, nil, nil))
}
