package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ProductsTable != "products" || cfg.CartTable != "cart" || cfg.OrdersTable != "orders" {
		t.Fatalf("unexpected table defaults: %+v", cfg)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr default %q", cfg.HTTPAddr)
	}
	if !cfg.AllowAllOrigins() {
		t.Fatalf("expected wildcard CORS by default, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PRODUCTS_TABLE", "novaeletro-products")
	t.Setenv("CORS_ORIGINS", "https://loja.example.com, https://admin.example.com")
	t.Setenv("RUN_LOCAL", "true")

	cfg := Load()

	if cfg.ProductsTable != "novaeletro-products" {
		t.Fatalf("env override ignored: %q", cfg.ProductsTable)
	}
	if !cfg.RunLocal {
		t.Fatal("RUN_LOCAL not honored")
	}
	if cfg.AllowAllOrigins() {
		t.Fatal("explicit origins should disable wildcard")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://loja.example.com" {
		t.Fatalf("origins not parsed: %v", cfg.CORSOrigins)
	}
}
