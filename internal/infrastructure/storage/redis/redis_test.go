package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
)

func newTestStore(t *testing.T, prefix string) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, prefix), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, "")
	ctx := context.Background()

	if err := store.Set(ctx, "products", `[{"id":1}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "products")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Errorf("Get = %q, want the stored value", got)
	}
}

func TestStoreMissingKey(t *testing.T) {
	store, _ := newTestStore(t, "")

	if _, err := store.Get(context.Background(), "cartDate"); !errors.Is(err, cart.ErrKeyNotFound) {
		t.Errorf("Get of missing key: error = %v, want cart.ErrKeyNotFound", err)
	}
}

func TestStoreDel(t *testing.T) {
	store, _ := newTestStore(t, "")
	ctx := context.Background()

	if err := store.Set(ctx, "products", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "cartDate", "2025-03-14T15:09:26Z"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Del(ctx, "products", "cartDate"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	if _, err := store.Get(ctx, "products"); !errors.Is(err, cart.ErrKeyNotFound) {
		t.Errorf("products still present after Del")
	}

	// Deleting missing keys is not an error.
	if err := store.Del(ctx, "products"); err != nil {
		t.Errorf("Del of missing key failed: %v", err)
	}
}

func TestStorePrefixesKeys(t *testing.T) {
	store, mr := newTestStore(t, "cart:")
	ctx := context.Background()

	if err := store.Set(ctx, "products", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if !mr.Exists("cart:products") {
		t.Error("expected the key to be stored under the cart: prefix")
	}
	if mr.Exists("products") {
		t.Error("unprefixed key must not exist")
	}

	if err := store.Del(ctx, "products"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if mr.Exists("cart:products") {
		t.Error("Del must honor the prefix")
	}
}

func TestStoreValuesHaveNoTTL(t *testing.T) {
	store, mr := newTestStore(t, "")

	if err := store.Set(context.Background(), "products", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if ttl := mr.TTL("products"); ttl != 0 {
		t.Errorf("TTL = %v, want none: the cart must survive restarts", ttl)
	}
}
