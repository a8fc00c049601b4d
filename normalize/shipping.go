package normalize

import "strings"

// ShippingRequested reports whether an order should be treated as a delivery
// rather than a pickup. The flag was stored by different storefront versions
// as a bool, a string or a number, and very old orders carry no flag at all;
// for those a non-empty delivery address is taken as the signal.
func ShippingRequested(flag any, address string) bool {
	switch v := flag.(type) {
	case bool:
		if v {
			return true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "shipping", "1":
			return true
		}
	default:
		if number(flag) == 1 {
			return true
		}
	}
	return strings.TrimSpace(address) != ""
}

// ShippingCost resolves the delivery surcharge: the shipping sub-record's
// cost, else the order's top-level field, else zero.
func ShippingCost(sub map[string]any, topLevel any) float64 {
	if sub != nil {
		if c := number(sub["cost"]); c != 0 {
			return c
		}
	}
	return number(topLevel)
}
