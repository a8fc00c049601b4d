package normalize

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestShippingRequested_TruthyEncodings(t *testing.T) {
	cases := []struct {
		name    string
		flag    any
		address string
		want    bool
	}{
		{"bool true", true, "", true},
		{"string true", "true", "", true},
		{"string TRUE", "TRUE", "", true},
		{"string shipping", "shipping", "", true},
		{"string Shipping", "Shipping", "", true},
		{"numeric one", 1, "", true},
		{"float one", 1.0, "", true},
		{"string one", "1", "", true},
		{"address implies shipping", false, "12 Jalan Kebun", true},
		{"missing flag with address", nil, "12 Jalan Kebun", true},

		{"bool false", false, "", false},
		{"missing", nil, "", false},
		{"empty string", "", "", false},
		{"zero", 0, "", false},
		{"string pickup", "pickup", "", false},
		{"whitespace address", nil, "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShippingRequested(tc.flag, tc.address); got != tc.want {
				t.Fatalf("ShippingRequested(%v, %q) = %v, want %v", tc.flag, tc.address, got, tc.want)
			}
		})
	}
}

func TestShippingCost_Resolution(t *testing.T) {
	if got := ShippingCost(map[string]any{"cost": 15.0}, 99.0); got != 15.0 {
		t.Fatalf("expected sub-record cost 15, got %v", got)
	}
	if got := ShippingCost(map[string]any{}, 20.0); got != 20.0 {
		t.Fatalf("expected top-level cost 20, got %v", got)
	}
	if got := ShippingCost(nil, nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := ShippingCost(map[string]any(bson.M{"cost": "10"}), nil); got != 10.0 {
		t.Fatalf("expected string cost coerced to 10, got %v", got)
	}
}
