package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "products"); !errors.Is(err, cart.ErrKeyNotFound) {
		t.Errorf("Get on empty store: error = %v, want cart.ErrKeyNotFound", err)
	}

	if err := store.Set(ctx, "products", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get(ctx, "products")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "[]" {
		t.Errorf("Get = %q, want %q", got, "[]")
	}

	if err := store.Del(ctx, "products", "cartDate"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := store.Get(ctx, "products"); !errors.Is(err, cart.ErrKeyNotFound) {
		t.Error("key should be gone after Del")
	}
}
