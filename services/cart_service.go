package services

import (
	"buddies-inn/models"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// CartStore persists cart snapshots, one key per owner. Load reports
// found=false when no snapshot exists yet.
type CartStore interface {
	Load(ctx context.Context, owner string) (payload string, found bool, err error)
	Save(ctx context.Context, owner string, payload string) error
}

// CartItemInput is a draft cart line as it arrives from the menu: the
// product fields are seeded from the catalog, the add-on toggles and
// note come from the customer.
type CartItemInput struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Image     string
	Category  string
	AddOns    models.CartAddOns
	Note      string
}

type cartState struct {
	items []models.CartItem
	// lastErr is advisory only: a failed snapshot read or write never
	// invalidates the in-memory cart.
	lastErr error
}

// CartService owns every customer's cart. Lines merge by identity
// (product + add-on combination): adding an exact repeat increments the
// existing line, a different add-on combination starts a new line.
// All mutations are serialized behind one mutex since the merge is a
// read-modify-write sequence, and each successful mutation writes a
// snapshot through the store.
type CartService struct {
	mu    sync.Mutex
	store CartStore
	carts map[string]*cartState
}

// NewCartService returns a service backed by store. A nil store is
// allowed: carts then live only in memory.
func NewCartService(store CartStore) *CartService {
	return &CartService{
		store: store,
		carts: make(map[string]*cartState),
	}
}

// load returns the cart for owner, restoring it from the store on first
// access. A missing snapshot yields an empty cart; a corrupt or
// unreadable one yields an empty cart and an advisory error.
func (s *CartService) load(ctx context.Context, owner string) *cartState {
	if st, ok := s.carts[owner]; ok {
		return st
	}

	st := &cartState{items: []models.CartItem{}}
	s.carts[owner] = st

	if s.store == nil {
		return st
	}

	payload, found, err := s.store.Load(ctx, owner)
	if err != nil {
		st.lastErr = fmt.Errorf("failed to restore cart: %w", err)
		return st
	}
	if !found {
		return st
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		st.lastErr = fmt.Errorf("cart snapshot corrupt, starting empty: %w", err)
		return st
	}

	// Totals are derived state: recompute on restore rather than
	// trusting the snapshot. Lines without a valid quantity are dropped.
	items := []models.CartItem{}
	for _, item := range cart.Items {
		if item.Quantity < 1 {
			continue
		}
		item.Recompute()
		items = append(items, item)
	}
	st.items = items
	return st
}

// persist writes the current snapshot. Failures are recorded as the
// owner's advisory error; the in-memory cart stays authoritative.
func (s *CartService) persist(ctx context.Context, owner string, st *cartState) {
	if s.store == nil {
		return
	}

	payload, err := json.Marshal(models.Cart{Items: st.items})
	if err != nil {
		st.lastErr = fmt.Errorf("failed to serialize cart: %w", err)
		return
	}

	if err := s.store.Save(ctx, owner, string(payload)); err != nil {
		st.lastErr = fmt.Errorf("failed to persist cart: %w", err)
		return
	}
	st.lastErr = nil
}

// AddItem merges the draft line into the cart and returns the affected
// line. Invalid input is coerced: a non-positive quantity becomes 1, a
// negative price becomes 0.
func (s *CartService) AddItem(ctx context.Context, owner string, input CartItemInput) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, owner)

	if input.Quantity < 1 {
		input.Quantity = 1
	}
	if input.Price.IsNegative() {
		input.Price = decimal.Zero
	}

	id := models.CartItemID(input.ProductID, input.AddOns)

	for i := range st.items {
		if st.items[i].ID != id {
			continue
		}
		st.items[i].Quantity += input.Quantity
		st.items[i].Price = input.Price
		if input.Note != "" {
			st.items[i].Note = input.Note
		}
		st.items[i].Recompute()
		s.persist(ctx, owner, st)
		return st.items[i]
	}

	item := models.CartItem{
		ID:        id,
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Quantity:  input.Quantity,
		Image:     input.Image,
		Category:  input.Category,
		AddOns:    input.AddOns,
		Note:      input.Note,
	}
	item.Recompute()
	st.items = append(st.items, item)
	s.persist(ctx, owner, st)
	return item
}

// UpdateItem applies a partial update to the line with the given
// identity. An unknown identity is a no-op and reports found=false.
// Reducing the quantity to zero or below removes the line. The line
// total is recomputed from the post-update values whenever quantity,
// price, or add-ons changed.
func (s *CartService) UpdateItem(ctx context.Context, owner, id string, upd models.UpdateCartItemRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, owner)

	for i := range st.items {
		if st.items[i].ID != id {
			continue
		}

		if upd.Quantity != nil && *upd.Quantity < 1 {
			st.items = append(st.items[:i], st.items[i+1:]...)
			s.persist(ctx, owner, st)
			return true
		}

		recompute := false
		if upd.Quantity != nil {
			st.items[i].Quantity = *upd.Quantity
			recompute = true
		}
		if upd.Price != nil {
			price := *upd.Price
			if price.IsNegative() {
				price = decimal.Zero
			}
			st.items[i].Price = price
			recompute = true
		}
		if upd.AddOns != nil {
			st.items[i].AddOns = *upd.AddOns
			recompute = true
		}
		if upd.Note != nil {
			st.items[i].Note = *upd.Note
		}
		if recompute {
			st.items[i].Recompute()
		}

		s.persist(ctx, owner, st)
		return true
	}

	return false
}

// RemoveItem deletes the line with the given identity. Removing an
// unknown identity is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, owner, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, owner)

	for i := range st.items {
		if st.items[i].ID == id {
			st.items = append(st.items[:i], st.items[i+1:]...)
			s.persist(ctx, owner, st)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout and for
// explicit empty-cart actions.
func (s *CartService) Clear(ctx context.Context, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, owner)
	st.items = []models.CartItem{}
	s.persist(ctx, owner, st)
}

// Get returns a copy of the owner's cart.
func (s *CartService) Get(ctx context.Context, owner string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, owner)
	items := make([]models.CartItem, len(st.items))
	copy(items, st.items)
	return models.Cart{Items: items}
}

// ItemCount returns the sum of all line quantities.
func (s *CartService) ItemCount(ctx context.Context, owner string) int {
	return s.Get(ctx, owner).ItemCount()
}

// Subtotal returns the sum of all line totals.
func (s *CartService) Subtotal(ctx context.Context, owner string) decimal.Decimal {
	return s.Get(ctx, owner).Subtotal()
}

// Warning reports the owner's advisory persistence error, if any. The
// cart remains usable; callers should warn that changes may not survive
// a reload.
func (s *CartService) Warning(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, owner).lastErr
}
