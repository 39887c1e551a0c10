// Package cart implements the cart store: the user's current selection of
// products and quantities pending checkout. State is persisted to the
// key-value storage on every mutation and rehydrated at startup.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
	"github.com/dmitrijs2005/marketcart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/marketcart/internal/common"
	"github.com/dmitrijs2005/marketcart/internal/logging"
)

// StorageKey is the key-value storage key the cart is persisted under.
const StorageKey = "cart"

// Receipt summarizes a completed checkout.
type Receipt struct {
	ID         string          `json:"id"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Store holds cart items in insertion order, with at most one item per
// distinct product id. Operations are invoked sequentially; the store is
// not safe for concurrent use.
type Store struct {
	storage kv.Repository
	log     logging.Logger

	// checkoutDelay simulates remote latency for checkout only; it gates
	// the loading flag and carries no other semantics.
	checkoutDelay time.Duration

	items   []models.CartItem
	loading bool
}

// NewStore returns an empty cart bound to the given storage. Call Restore
// to rehydrate previously persisted state.
func NewStore(storage kv.Repository, log logging.Logger, checkoutDelay time.Duration) *Store {
	return &Store{storage: storage, log: log, checkoutDelay: checkoutDelay}
}

// Restore rehydrates the cart from storage. Missing or corrupt stored
// state degrades to an empty cart; it is never a fatal error.
func (s *Store) Restore(ctx context.Context) error {
	data, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if data == nil {
		s.items = nil
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "discarding corrupt cart state", "error", err)
		s.items = nil
		return nil
	}
	s.items = items
	return nil
}

// Add puts quantity units of product into the cart. If the product is
// already present the existing quantity is increased; otherwise a new item
// is appended with a denormalized copy of the product. Quantity must be
// at least 1.
func (s *Store) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		return common.ErrInvalidQuantity
	}

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, models.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Product:   product,
		})
	}
	return s.persist(ctx)
}

// Remove deletes the item for productID. Removing an absent product is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, productID string) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist(ctx)
}

// UpdateQuantity sets the quantity for productID. A quantity below 1
// removes the item. Updating an absent product is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, productID)
	}
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity
	return s.persist(ctx)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	return s.persist(ctx)
}

// Checkout simulates placing an order: it requires a non-empty cart,
// produces a receipt for the current totals, and clears the cart. A second
// checkout while one is pending is rejected with ErrOperationInProgress.
func (s *Store) Checkout(ctx context.Context) (*Receipt, error) {
	if s.loading {
		return nil, common.ErrOperationInProgress
	}
	if len(s.items) == 0 {
		return nil, common.ErrCartEmpty
	}

	s.loading = true
	defer func() { s.loading = false }()

	if err := common.Sleep(ctx, s.checkoutDelay); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		ID:         uuid.NewString(),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
		CreatedAt:  time.Now(),
	}

	if err := s.Clear(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "order placed",
		"receipt", receipt.ID, "items", receipt.TotalItems, "total", receipt.TotalPrice)
	return receipt, nil
}

// Items returns the cart contents in insertion order.
func (s *Store) Items() []models.CartItem {
	return append([]models.CartItem(nil), s.items...)
}

// TotalItems is the sum of quantities across all entries, recomputed on
// every read.
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of line totals across all entries, recomputed on
// every read.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Loading reports whether a checkout is currently pending.
func (s *Store) Loading() bool {
	return s.loading
}

func (s *Store) indexOf(productID string) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
