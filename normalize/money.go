package normalize

import (
	"fmt"
	"math"
)

// Placeholder rendered where a money value cannot be computed.
const MoneyPlaceholder = "—"

// Subtotal sums line-item prices. Price is stored as a line total (quantity
// was folded in when the order was written), so no multiplication happens
// here.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// Total adds the shipping surcharge to the subtotal when delivery was
// requested.
func Total(subtotal, shippingCost float64, shippingRequested bool) float64 {
	if shippingRequested {
		return subtotal + shippingCost
	}
	return subtotal
}

// FormatRM renders a Ringgit amount with two decimals, e.g. "RM 12.50".
// NaN renders as the placeholder, never "RM NaN".
func FormatRM(v float64) string {
	if math.IsNaN(v) {
		return MoneyPlaceholder
	}
	return fmt.Sprintf("RM %.2f", v)
}
