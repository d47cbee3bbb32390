// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"
)

// Service holds the cart state and keeps it synchronized with the storage
// port. There is a single logical cart and a single logical writer; the
// mutex only guards against overlapping HTTP requests.
type Service struct {
	store     Store
	catalog   Catalog
	discounts *discount.Resolver
	now       func() time.Time
	logger    *logrus.Logger

	mu        sync.Mutex
	items     []LineItem
	startedAt *time.Time
	active    *discount.Discount
}

// NewService creates a cart service over the given storage and catalog ports.
// A nil clock defaults to time.Now.
func NewService(store Store, cat Catalog, discounts *discount.Resolver, now func() time.Time, logger *logrus.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:     store,
		catalog:   cat,
		discounts: discounts,
		now:       now,
		logger:    logger,
	}
}

// Hydrate loads the persisted cart. Absent or malformed data yields an empty
// cart; entries that fail schema validation are dropped. The timestamp
// invariant (present iff the cart is non-empty) is repaired and the repaired
// state is written back.
func (s *Service) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, dirty := s.loadItems(ctx)
	s.items = items

	startedAt := s.loadStartedAt(ctx)
	switch {
	case len(s.items) == 0 && startedAt != nil:
		// Orphaned timestamp from a previous partial write.
		startedAt = nil
		if err := s.store.Del(ctx, StartedAtKey); err != nil {
			return fmt.Errorf("failed to clear orphaned cart date: %w", err)
		}
	case len(s.items) > 0 && startedAt == nil:
		t := s.now()
		startedAt = &t
		if err := s.persistStartedAt(ctx, t); err != nil {
			return err
		}
	}
	s.startedAt = startedAt

	if dirty {
		if err := s.persistItems(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Add fetches the product and appends it as a new line item. Adding a product
// that is already in the cart is rejected without touching any state. The
// first item added to an empty cart stamps the session start.
func (s *Service) Add(ctx context.Context, id, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooSmall
	}
	if quantity >= MaxQuantity {
		return nil, ErrQuantityTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return nil, ErrAlreadyInCart
		}
	}

	product, err := s.catalog.Fetch(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	wasEmpty := len(s.items) == 0

	s.items = append(s.items, LineItem{
		Product:  *product,
		Quantity: quantity,
		AddedAt:  s.now().UTC(),
	})

	if err := s.persistItems(ctx); err != nil {
		s.items = s.items[:len(s.items)-1]
		return nil, err
	}

	if wasEmpty {
		t := s.now()
		if err := s.persistStartedAt(ctx, t); err != nil {
			return nil, err
		}
		s.startedAt = &t
	}

	return s.viewLocked(), nil
}

// Remove deletes the line item with the given product ID. A missing ID is a
// no-op, not an error. Removing the last item clears the session start.
func (s *Service) Remove(ctx context.Context, id int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered

	if err := s.persistItems(ctx); err != nil {
		return nil, err
	}

	if len(s.items) == 0 && s.startedAt != nil {
		if err := s.store.Del(ctx, StartedAtKey); err != nil {
			return nil, fmt.Errorf("failed to clear cart date: %w", err)
		}
		s.startedAt = nil
	}

	return s.viewLocked(), nil
}

// UpdateQuantity replaces the quantity of an existing line item in place.
func (s *Service) UpdateQuantity(ctx context.Context, id, quantity int) (*View, error) {
	if quantity >= MaxQuantity {
		return nil, ErrQuantityTooLarge
	}
	if quantity < 1 {
		return nil, ErrQuantityTooSmall
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrProductNotFound
	}

	previous := s.items[idx].Quantity
	s.items[idx].Quantity = quantity

	if err := s.persistItems(ctx); err != nil {
		s.items[idx].Quantity = previous
		return nil, err
	}

	return s.viewLocked(), nil
}

// Clear empties the cart, the session start, and both storage entries.
func (s *Service) Clear(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Del(ctx, ItemsKey, StartedAtKey); err != nil {
		return nil, fmt.Errorf("failed to clear cart storage: %w", err)
	}

	s.items = nil
	s.startedAt = nil

	return s.viewLocked(), nil
}

// ApplyDiscount resolves the code and makes it the active discount, replacing
// any prior one. An invalid code leaves the active discount untouched.
func (s *Service) ApplyDiscount(code string) (*View, error) {
	d, err := s.discounts.Resolve(code)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = d
	return s.viewLocked(), nil
}

// RemoveDiscount clears the active discount.
func (s *Service) RemoveDiscount() (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNoActiveDiscount
	}

	s.active = nil
	return s.viewLocked(), nil
}

// View returns the current cart snapshot with freshly computed totals.
func (s *Service) View() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Service) viewLocked() *View {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)

	return &View{
		Items:     items,
		StartedAt: s.startedAt,
		Discount:  s.active,
		Totals:    ComputeTotals(s.items, s.active),
	}
}

func (s *Service) persistItems(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}
	if s.items == nil {
		data = []byte("[]")
	}
	if err := s.store.Set(ctx, ItemsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist cart items: %w", err)
	}
	return nil
}

func (s *Service) persistStartedAt(ctx context.Context, t time.Time) error {
	if err := s.store.Set(ctx, StartedAtKey, t.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to persist cart date: %w", err)
	}
	return nil
}

// loadItems reads and validates the persisted line items. The second return
// reports whether any entries were dropped and the cleaned list should be
// written back.
func (s *Service) loadItems(ctx context.Context) ([]LineItem, bool) {
	data, err := s.store.Get(ctx, ItemsKey)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.WithError(err).Warn("Failed to read persisted cart, starting empty")
		}
		return nil, false
	}

	var raw []LineItem
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		s.logger.WithError(err).Warn("Persisted cart is malformed, starting empty")
		return nil, true
	}

	seen := make(map[int]bool, len(raw))
	items := make([]LineItem, 0, len(raw))
	for _, item := range raw {
		if item.ID <= 0 || item.Price < 0 || item.Quantity < 1 || item.Quantity >= MaxQuantity {
			s.logger.WithField("product_id", item.ID).Warn("Dropping invalid persisted cart item")
			continue
		}
		if seen[item.ID] {
			s.logger.WithField("product_id", item.ID).Warn("Dropping duplicate persisted cart item")
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, len(raw) > 0
	}
	return items, len(items) != len(raw)
}

func (s *Service) loadStartedAt(ctx context.Context) *time.Time {
	data, err := s.store.Get(ctx, StartedAtKey)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.WithError(err).Warn("Failed to read persisted cart date")
		}
		return nil
	}

	t, err := time.Parse(time.RFC3339, data)
	if err != nil {
		s.logger.WithError(err).Warn("Persisted cart date is malformed, ignoring")
		return nil
	}
	return &t
}
