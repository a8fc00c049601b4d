// Package normalize flattens the loosely-shaped documents coming out of the
// store into the uniform records the admin pages render. The collections were
// written by several generations of the storefront, so the same field can show
// up under different names (name/productName/product/label/title,
// price/amount, quantity/qty) or be missing entirely. Every resolver here
// defaults silently instead of erroring.
package normalize

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// LineItem is one product entry within an order, in canonical shape.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	SizeType string  `json:"sizeType,omitempty"`
	Price    float64 `json:"price"`
}

// Items converts an order's products field into line items. The field may be
// absent, a single item-like document, an array of them, or a bare primitive
// (old orders stored free-text items as plain strings). lookup maps product id
// to display name and is consulted before any of the item's own name fields.
// Output order matches input order.
func Items(value any, lookup map[string]string) []LineItem {
	switch v := value.(type) {
	case nil:
		return []LineItem{}
	case []any:
		items := make([]LineItem, 0, len(v))
		for _, entry := range v {
			items = append(items, item(entry, lookup))
		}
		return items
	case bson.A:
		return Items([]any(v), lookup)
	default:
		return []LineItem{item(value, lookup)}
	}
}

func item(value any, lookup map[string]string) LineItem {
	m, ok := asDocument(value)
	if !ok {
		// Primitive entry: the stringified value stands in for both name
		// and category.
		s := str(value)
		return LineItem{Name: s, Category: s, Quantity: 1}
	}

	id := str(m["id"])

	name := lookup[id]
	if name == "" {
		name = firstString(m, "name", "productName", "product", "label", "title")
	}

	category := str(m["category"])

	// Name and category only backfill each other as a last resort.
	if name == "" {
		if category != "" {
			name = category
		} else {
			name = str(value)
		}
	}
	if category == "" {
		if n := firstNonEmpty(lookup[id], firstString(m, "name", "productName", "product", "label", "title")); n != "" {
			category = n
		} else {
			category = str(value)
		}
	}

	qty := number(m["quantity"])
	if qty == 0 {
		qty = number(m["qty"])
	}
	if qty == 0 {
		qty = 1
	}

	price := number(m["price"])
	if price == 0 {
		price = number(m["amount"])
	}

	return LineItem{
		ID:       id,
		Name:     name,
		Category: category,
		Quantity: int(qty),
		SizeType: firstString(m, "sizeType", "size"),
		Price:    price,
	}
}

// asDocument unifies the map shapes the driver can hand back when decoding
// into interface{}.
func asDocument(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case bson.M:
		return map[string]any(v), true
	case bson.D:
		m := make(map[string]any, len(v))
		for _, e := range v {
			m[e.Key] = e.Value
		}
		return m, true
	default:
		return nil, false
	}
}

// Rating resolves a review rating from its historical field names, first
// present value wins.
func Rating(values ...any) float64 {
	for _, v := range values {
		if v == nil {
			continue
		}
		return number(v)
	}
	return 0
}

// Text coerces a primitive to its display string; nil yields "".
func Text(value any) string { return str(value) }

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := str(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func str(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// number coerces the numeric encodings seen in the store. Anything it cannot
// make sense of becomes 0, never an error.
func number(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
