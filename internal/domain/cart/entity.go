// internal/domain/cart/entity.go
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/catalog"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"
)

// Storage keys. The cart is persisted as two entries: the line items and the
// session-start timestamp.
const (
	ItemsKey     = "products"
	StartedAtKey = "cartDate"
)

// MaxQuantity is the exclusive upper bound for a line item quantity.
const MaxQuantity = 100

// Cart operation errors. Handlers map these to user-facing notifications.
var (
	ErrAlreadyInCart    = errors.New("product already in cart")
	ErrProductNotFound  = errors.New("product not found")
	ErrQuantityTooSmall = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge = errors.New("maximum quantity exceeded")
	ErrNoActiveDiscount = errors.New("no active discount")
)

// ErrKeyNotFound is reported by a Store when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistent key-value storage port. Implementations must treat
// values as opaque strings and keep them across process restarts.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// Catalog is the product lookup port backing the add operation.
type Catalog interface {
	Fetch(ctx context.Context, id int) (*catalog.Product, error)
}

// LineItem is a product held in the cart together with its quantity.
// Identity is the product ID: a cart never holds two line items for the
// same product.
type LineItem struct {
	catalog.Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Totals are derived from the line items and the active discount on every
// change. They are never persisted.
type Totals struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}

// View is a read-only snapshot of the cart handed to the presentation layer.
type View struct {
	Items     []LineItem         `json:"items"`
	StartedAt *time.Time         `json:"started_at,omitempty"`
	Discount  *discount.Discount `json:"discount,omitempty"`
	Totals    Totals             `json:"totals"`
}
