package cart

import (
	"context"
	"testing"

	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/testutil"
)

func newTestStore() (*Store, *testutil.DynamoFake) {
	fake := testutil.NewDynamoFake().AddTable("cart", "product_id")
	return NewStore(fake, "cart"), fake
}

func TestAdd_SameProduct_MergesQuantities(t *testing.T) {
	store, fake := newTestStore()
	ctx := context.Background()

	first, err := store.Add(ctx, "prod-1", 2)
	if err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}
	if first.ID == "" || first.AddedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", first)
	}

	second, err := store.Add(ctx, "prod-1", 3)
	if err != nil {
		t.Fatalf("second Add error: %v", err)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
	// the line keeps its original identity on merge
	if second.ID != first.ID {
		t.Fatalf("item id changed on merge: %q -> %q", first.ID, second.ID)
	}
	if !second.AddedAt.Equal(first.AddedAt) {
		t.Fatalf("added_at changed on merge")
	}
	if fake.Len("cart") != 1 {
		t.Fatalf("expected a single cart line, got %d", fake.Len("cart"))
	}
}

func TestAdd_DistinctProducts_CreatesDistinctLines(t *testing.T) {
	store, fake := newTestStore()
	ctx := context.Background()

	a, err := store.Add(ctx, "prod-1", 1)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	b, err := store.Add(ctx, "prod-2", 1)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct item ids")
	}
	if fake.Len("cart") != 2 {
		t.Fatalf("expected 2 cart lines, got %d", fake.Len("cart"))
	}
}

func TestAdd_NegativeQuantity_IsSummedAsIs(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	if _, err := store.Add(ctx, "prod-1", 2); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	got, err := store.Add(ctx, "prod-1", -5)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.Quantity != -3 {
		t.Fatalf("expected quantity -3, got %d", got.Quantity)
	}
}

func TestUpdateQuantity_OverwritesExistingLine(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	item, err := store.Add(ctx, "prod-1", 2)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := store.UpdateQuantity(ctx, item.ID, 10); err != nil {
		t.Fatalf("UpdateQuantity error: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 10 {
		t.Fatalf("expected single line with quantity 10, got %+v", items)
	}
}

func TestUpdateQuantity_MissingID_IsSilentSuccess(t *testing.T) {
	store, fake := newTestStore()
	ctx := context.Background()

	if _, err := store.Add(ctx, "prod-1", 2); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := store.UpdateQuantity(ctx, "no-such-item", 99); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if fake.Len("cart") != 1 {
		t.Fatalf("cart mutated by no-op update")
	}
}

func TestRemove_ThenList_NeverReturnsTheItem(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	item, err := store.Add(ctx, "prod-1", 2)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if _, err := store.Add(ctx, "prod-2", 1); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := store.Remove(ctx, item.ID); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for _, it := range items {
		if it.ID == item.ID {
			t.Fatalf("removed item still listed: %+v", it)
		}
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 remaining line, got %d", len(items))
	}
}

func TestRemove_MissingID_IsSilentSuccess(t *testing.T) {
	store, _ := newTestStore()

	if err := store.Remove(context.Background(), "no-such-item"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
}

func TestClear_EmptiesTheCart(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for _, pid := range []string{"p1", "p2", "p3"} {
		if _, err := store.Add(ctx, pid, 1); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}

	// clearing an already-empty cart is fine too
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty cart error: %v", err)
	}
}
