package validation

import "testing"

func TestCreateCheckoutSessionRequest_Valid(t *testing.T) {
	v := New()

	req := CreateCheckoutSessionRequest{
		CartItems: []CheckoutItem{
			{Name: "Tee", Image: "tee.jpg", Price: 28.0, Quantity: 2, ID: "a", Size: "M"},
			{Name: "Hoodie", Price: 45.5, Quantity: 1},
		},
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateCheckoutSessionRequest_EmptyCart(t *testing.T) {
	v := New()

	req := CreateCheckoutSessionRequest{CartItems: []CheckoutItem{}}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty cart, got nil")
	}
}

func TestCreateCheckoutSessionRequest_BadItems(t *testing.T) {
	v := New()

	cases := map[string]CheckoutItem{
		"missing name":  {Price: 10, Quantity: 1},
		"zero price":    {Name: "Tee", Price: 0, Quantity: 1},
		"zero quantity": {Name: "Tee", Price: 10, Quantity: 0},
	}
	for name, item := range cases {
		req := CreateCheckoutSessionRequest{CartItems: []CheckoutItem{item}}
		if err := v.Struct(req); err == nil {
			t.Fatalf("%s: expected validation error, got nil", name)
		}
	}
}
