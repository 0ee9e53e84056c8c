package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OrdersTable != "orders" {
		t.Fatalf("expected default orders table, got %q", cfg.OrdersTable)
	}
	if cfg.CartsTable != "carts" {
		t.Fatalf("expected default carts table, got %q", cfg.CartsTable)
	}
	if len(cfg.AllowedCountries) != 1 || cfg.AllowedCountries[0] != "US" {
		t.Fatalf("expected default country allow-list [US], got %v", cfg.AllowedCountries)
	}
	if cfg.WebhookDevMode {
		t.Fatal("dev mode should default to off")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ORDERS_TABLE", "store-orders")
	t.Setenv("ALLOWED_SHIPPING_COUNTRIES", "US,CA")
	t.Setenv("WEBHOOK_DEV_MODE", "true")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OrdersTable != "store-orders" {
		t.Fatalf("orders table not read from env, got %q", cfg.OrdersTable)
	}
	if len(cfg.AllowedCountries) != 2 || cfg.AllowedCountries[1] != "CA" {
		t.Fatalf("expected [US CA], got %v", cfg.AllowedCountries)
	}
	if !cfg.WebhookDevMode {
		t.Fatal("dev mode should be on")
	}
	if cfg.StripeSecretKey != "sk_test_abc" {
		t.Fatal("stripe key not read from env")
	}
}
