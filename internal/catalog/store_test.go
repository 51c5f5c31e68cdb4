package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/testutil"
)

func newTestStore() (*Store, *testutil.DynamoFake) {
	fake := testutil.NewDynamoFake().AddTable("products", "id")
	return NewStore(fake, "products"), fake
}

func sampleProduct(id, category string) Product {
	return Product{
		ID:          id,
		Name:        "Ventilador Turbo X",
		Description: "Ventilador de mesa com 3 velocidades",
		Price:       199.99,
		Category:    category,
		Brand:       "Arno",
		ImageURL:    "https://example.com/fan.jpg",
		InStock:     true,
		Specifications: map[string]interface{}{
			"velocidades": "3",
			"cor":         "Preto",
		},
		CreatedAt: time.Now().UTC().Round(time.Second),
	}
}

func TestCreateThenGet_ReturnsSameFields(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	want := sampleProduct("prod-1", "ventilador")
	if err := store.Create(ctx, want); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := store.Get(ctx, "prod-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil {
		t.Fatal("expected product, got nil")
	}
	if got.ID != want.ID || got.Name != want.Name || got.Price != want.Price ||
		got.Category != want.Category || got.Brand != want.Brand ||
		got.ImageURL != want.ImageURL || got.InStock != want.InStock {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at mismatch: got %v want %v", got.CreatedAt, want.CreatedAt)
	}
	if got.Specifications["cor"] != "Preto" {
		t.Fatalf("specifications not preserved: %+v", got.Specifications)
	}
}

func TestGet_Missing_ReturnsNil(t *testing.T) {
	store, _ := newTestStore()

	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing product, got %+v", got)
	}
}

func TestListByCategory_ReturnsExactSubset(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for _, p := range []Product{
		sampleProduct("p1", "geladeira"),
		sampleProduct("p2", "ventilador"),
		sampleProduct("p3", "geladeira"),
	} {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := store.ListByCategory(ctx, "geladeira")
	if err != nil {
		t.Fatalf("ListByCategory error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "geladeira" {
			t.Fatalf("unexpected category %q in result", p.Category)
		}
	}

	none, err := store.ListByCategory(ctx, "fogao")
	if err != nil {
		t.Fatalf("ListByCategory error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d items", len(none))
	}
}

func TestBatchCreateAndCount(t *testing.T) {
	store, fake := newTestStore()
	ctx := context.Background()

	if err := store.BatchCreate(ctx, SampleProducts(time.Now())); err != nil {
		t.Fatalf("BatchCreate error: %v", err)
	}
	if fake.Len("products") != 6 {
		t.Fatalf("expected 6 seeded products, got %d", fake.Len("products"))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected count 6, got %d", count)
	}
}
