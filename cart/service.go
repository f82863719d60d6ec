// Package cart manages the shopping cart: line items pairing an asset
// snapshot with a quantity, unique per asset id, persisted after every
// mutation. The cart belongs to the installation, not to a user: switching
// accounts keeps the same cart.
package cart

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/syedOmegaPrime/SolitudeFinalProject/catalog"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
	"github.com/syedOmegaPrime/SolitudeFinalProject/notify"
)

// Service is the cart store. Every mutator persists the full cart
// synchronously after updating (there is no debounce or batching) and
// emits a user-visible notification through the injected Notifier.
type Service struct {
	store    *localstore.Store
	notifier notify.Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	items []Item
}

// NewService creates a cart Service, loading any persisted cart.
func NewService(store *localstore.Store, notifier notify.Notifier, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, notifier: notifier, logger: logger}
	if _, err := store.Load(localstore.CartItemsKey, &s.items); err != nil {
		return nil, err
	}
	return s, nil
}

// AddToCart adds quantity of the asset. If a line for the asset id already
// exists its quantity is incremented; otherwise a new line is appended. A
// quantity below one is treated as one (the "add" button semantics).
func (s *Service) AddToCart(asset catalog.Asset, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snapshotLocked()
	merged := false
	for i := range s.items {
		if s.items[i].Asset.ID == asset.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{Asset: asset, Quantity: quantity})
	}

	if err := s.persistLocked(); err != nil {
		s.items = prev
		return err
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart.", asset.Name),
	})
	return nil
}

// RemoveFromCart removes the line with the given asset id. Removing an
// absent id is a no-op, not an error; the removal notification is emitted
// either way, so callers need not check membership first.
func (s *Service) RemoveFromCart(assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(assetID)
}

// UpdateQuantity sets the quantity of the line with the given asset id.
// A requested quantity of zero or less behaves exactly as RemoveFromCart:
// the store never holds a non-positive quantity. Otherwise the quantity is
// replaced (not added to).
func (s *Service) UpdateQuantity(assetID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(assetID)
	}

	for i := range s.items {
		if s.items[i].Asset.ID == assetID {
			prev := s.items[i].Quantity
			s.items[i].Quantity = quantity
			if err := s.persistLocked(); err != nil {
				s.items[i].Quantity = prev
				return err
			}
			return nil
		}
	}
	// Absent id: nothing to update, nothing persisted.
	return nil
}

// ClearCart empties every line and persists the empty cart.
func (s *Service) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.items
	s.items = nil
	if err := s.persistLocked(); err != nil {
		s.items = prev
		return err
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Cart Cleared",
		Description: "All items have been removed from your cart.",
	})
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// CartTotal is the sum over lines of price times quantity. The empty cart
// totals zero.
func (s *Service) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Asset.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of line quantities, not the number of distinct
// lines. Two lines with quantities 2 and 3 count as 5.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// removeLocked drops the line with the given asset id and persists.
// Callers must hold s.mu.
func (s *Service) removeLocked(assetID string) error {
	prev := s.snapshotLocked()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Asset.ID != assetID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	if err := s.persistLocked(); err != nil {
		s.items = prev
		return err
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Removed from cart",
		Description: "Item has been removed from your cart.",
		Variant:     notify.VariantDestructive,
	})
	return nil
}

// snapshotLocked copies the cart lines so a mutator can restore them when
// the write fails, keeping memory a valid serialization of the blob on
// disk. Callers must hold s.mu.
func (s *Service) snapshotLocked() []Item {
	prev := make([]Item, len(s.items))
	copy(prev, s.items)
	return prev
}

// persistLocked writes the full cart. Callers must hold s.mu.
func (s *Service) persistLocked() error {
	// Persist an empty list rather than null so the blob shape stays a
	// list in every state.
	items := s.items
	if items == nil {
		items = []Item{}
	}
	return s.store.Save(localstore.CartItemsKey, items)
}
