package services

import (
	"context"
	"errors"
	"testing"

	"buddies-inn/models"

	"github.com/shopspring/decimal"
)

// memoryCartStore is an in-memory CartStore for tests. Load and Save
// failures can be injected per test.
type memoryCartStore struct {
	snapshots map[string]string
	loadErr   error
	saveErr   error
	saves     int
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{snapshots: map[string]string{}}
}

func (m *memoryCartStore) Load(_ context.Context, owner string) (string, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	payload, ok := m.snapshots[owner]
	return payload, ok, nil
}

func (m *memoryCartStore) Save(_ context.Context, owner, payload string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snapshots[owner] = payload
	return nil
}

func burgerInput(qty int, addOns models.CartAddOns) CartItemInput {
	return CartItemInput{
		ProductID: 42,
		Name:      "Beef Burger",
		Price:     decimal.NewFromInt(30),
		Quantity:  qty,
		Category:  "Burgers",
		AddOns:    addOns,
	}
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("merges repeated product into one line", func(t *testing.T) {
		svc := NewCartService(nil)

		svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
		svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{}))

		cart := svc.Get(ctx, "u1")
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart.Items))
		}
		if cart.Items[0].Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", cart.Items[0].Quantity)
		}
		if got := cart.Items[0].ItemTotal; !got.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected line total 90, got %s", got)
		}
	})

	t.Run("different add-ons start a separate line", func(t *testing.T) {
		svc := NewCartService(nil)

		plain := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
		cheesy := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{Cheese: true}))

		if plain.ID == cheesy.ID {
			t.Fatalf("expected distinct line identities, both were %q", plain.ID)
		}
		if got := svc.Get(ctx, "u1").Items; len(got) != 2 {
			t.Errorf("expected 2 lines, got %d", len(got))
		}
	})

	t.Run("surcharges are additive per unit", func(t *testing.T) {
		svc := NewCartService(nil)

		item := svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{
			FriedEgg:  true,
			Cheese:    true,
			Vegetable: true,
		}))

		// (30 + 5 + 5 + 7) * 2
		want := decimal.NewFromInt(94)
		if !item.ItemTotal.Equal(want) {
			t.Errorf("expected line total %s, got %s", want, item.ItemTotal)
		}
	})

	t.Run("coerces invalid quantity and price", func(t *testing.T) {
		svc := NewCartService(nil)

		input := burgerInput(0, models.CartAddOns{})
		input.Price = decimal.NewFromInt(-5)
		item := svc.AddItem(ctx, "u1", input)

		if item.Quantity != 1 {
			t.Errorf("expected quantity coerced to 1, got %d", item.Quantity)
		}
		if !item.Price.IsZero() {
			t.Errorf("expected price coerced to 0, got %s", item.Price)
		}
	})

	t.Run("merge keeps existing note when input note is empty", func(t *testing.T) {
		svc := NewCartService(nil)

		input := burgerInput(1, models.CartAddOns{})
		input.Note = "no onions"
		svc.AddItem(ctx, "u1", input)

		merged := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
		if merged.Note != "no onions" {
			t.Errorf("expected note preserved, got %q", merged.Note)
		}
	})
}

func TestCartServiceUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity change recomputes the line total", func(t *testing.T) {
		svc := NewCartService(nil)
		item := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{Cheese: true}))

		qty := 3
		if found := svc.UpdateItem(ctx, "u1", item.ID, models.UpdateCartItemRequest{Quantity: &qty}); !found {
			t.Fatal("expected the line to be found")
		}

		got := svc.Get(ctx, "u1").Items[0]
		// (30 + 5) * 3
		if want := decimal.NewFromInt(105); !got.ItemTotal.Equal(want) {
			t.Errorf("expected line total %s, got %s", want, got.ItemTotal)
		}
	})

	t.Run("quantity zero removes the line", func(t *testing.T) {
		svc := NewCartService(nil)
		item := svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{}))

		qty := 0
		if found := svc.UpdateItem(ctx, "u1", item.ID, models.UpdateCartItemRequest{Quantity: &qty}); !found {
			t.Fatal("expected the line to be found")
		}
		if count := svc.ItemCount(ctx, "u1"); count != 0 {
			t.Errorf("expected empty cart, got count %d", count)
		}
	})

	t.Run("unknown identity is a no-op", func(t *testing.T) {
		svc := NewCartService(nil)
		svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))

		qty := 5
		if found := svc.UpdateItem(ctx, "u1", "999-cheese", models.UpdateCartItemRequest{Quantity: &qty}); found {
			t.Error("expected found=false for an unknown identity")
		}
		if got := svc.Get(ctx, "u1").Items[0].Quantity; got != 1 {
			t.Errorf("expected untouched quantity 1, got %d", got)
		}
	})

	t.Run("add-on toggle recomputes in place", func(t *testing.T) {
		svc := NewCartService(nil)
		item := svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{}))

		addOns := models.CartAddOns{Vegetable: true}
		svc.UpdateItem(ctx, "u1", item.ID, models.UpdateCartItemRequest{AddOns: &addOns})

		got := svc.Get(ctx, "u1").Items[0]
		// (30 + 7) * 2
		if want := decimal.NewFromInt(74); !got.ItemTotal.Equal(want) {
			t.Errorf("expected line total %s, got %s", want, got.ItemTotal)
		}
	})
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(nil)

	item := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))

	svc.RemoveItem(ctx, "u1", item.ID)
	if count := svc.ItemCount(ctx, "u1"); count != 0 {
		t.Fatalf("expected empty cart after removal, got count %d", count)
	}

	// Removing again must not change anything.
	svc.RemoveItem(ctx, "u1", item.ID)
	if count := svc.ItemCount(ctx, "u1"); count != 0 {
		t.Errorf("expected repeated removal to stay empty, got count %d", count)
	}

	svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{Cheese: true}))
	svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
	svc.Clear(ctx, "u1")
	if got := svc.Get(ctx, "u1").Items; len(got) != 0 {
		t.Errorf("expected cleared cart, got %d lines", len(got))
	}
}

func TestCartServiceSubtotal(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(nil)

	svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{}))               // 60
	svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{FriedEgg: true})) // 35

	if want := decimal.NewFromInt(95); !svc.Subtotal(ctx, "u1").Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, svc.Subtotal(ctx, "u1"))
	}
	if count := svc.ItemCount(ctx, "u1"); count != 3 {
		t.Errorf("expected item count 3, got %d", count)
	}
}

func TestCartServicePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("cart survives a restart through the store", func(t *testing.T) {
		store := newMemoryCartStore()

		svc := NewCartService(store)
		svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{Cheese: true}))
		svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))

		// A fresh service restores from the same store.
		restored := NewCartService(store)
		cart := restored.Get(ctx, "u1")
		if len(cart.Items) != 2 {
			t.Fatalf("expected 2 restored lines, got %d", len(cart.Items))
		}
		if want := decimal.NewFromInt(100); !cart.Subtotal().Equal(want) {
			t.Errorf("expected restored subtotal %s, got %s", want, cart.Subtotal())
		}
	})

	t.Run("every mutation writes a snapshot", func(t *testing.T) {
		store := newMemoryCartStore()
		svc := NewCartService(store)

		item := svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
		qty := 2
		svc.UpdateItem(ctx, "u1", item.ID, models.UpdateCartItemRequest{Quantity: &qty})
		svc.RemoveItem(ctx, "u1", item.ID)

		if store.saves != 3 {
			t.Errorf("expected 3 snapshot writes, got %d", store.saves)
		}
	})

	t.Run("corrupt snapshot yields empty cart with warning", func(t *testing.T) {
		store := newMemoryCartStore()
		store.snapshots["u1"] = "{not json"

		svc := NewCartService(store)
		if got := svc.Get(ctx, "u1").Items; len(got) != 0 {
			t.Errorf("expected empty cart, got %d lines", len(got))
		}
		if err := svc.Warning(ctx, "u1"); err == nil {
			t.Error("expected an advisory warning for the corrupt snapshot")
		}
	})

	t.Run("restore drops lines without a valid quantity", func(t *testing.T) {
		store := newMemoryCartStore()
		store.snapshots["u1"] = `{"items":[
			{"id":"1","product_id":1,"name":"Burger","price":"30","quantity":2},
			{"id":"2","product_id":2,"name":"Stale","price":"10","quantity":0}
		]}`

		svc := NewCartService(store)
		cart := svc.Get(ctx, "u1")
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 surviving line, got %d", len(cart.Items))
		}
		// Totals are recomputed on restore, not read from the snapshot.
		if want := decimal.NewFromInt(60); !cart.Items[0].ItemTotal.Equal(want) {
			t.Errorf("expected recomputed total %s, got %s", want, cart.Items[0].ItemTotal)
		}
	})

	t.Run("write failure keeps the in-memory cart authoritative", func(t *testing.T) {
		store := newMemoryCartStore()
		store.saveErr = errors.New("connection refused")

		svc := NewCartService(store)
		svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))

		if count := svc.ItemCount(ctx, "u1"); count != 1 {
			t.Errorf("expected the item despite the write failure, got count %d", count)
		}
		if err := svc.Warning(ctx, "u1"); err == nil {
			t.Error("expected an advisory warning for the failed write")
		}

		// A later successful write clears the warning.
		store.saveErr = nil
		svc.AddItem(ctx, "u1", burgerInput(1, models.CartAddOns{}))
		if err := svc.Warning(ctx, "u1"); err != nil {
			t.Errorf("expected warning cleared after a successful write, got %v", err)
		}
	})

	t.Run("read failure yields empty cart with warning", func(t *testing.T) {
		store := newMemoryCartStore()
		store.loadErr = errors.New("connection refused")

		svc := NewCartService(store)
		if got := svc.Get(ctx, "u1").Items; len(got) != 0 {
			t.Errorf("expected empty cart, got %d lines", len(got))
		}
		if err := svc.Warning(ctx, "u1"); err == nil {
			t.Error("expected an advisory warning for the failed read")
		}
	})
}

func TestCartServiceIsolatesOwners(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(nil)

	svc.AddItem(ctx, "u1", burgerInput(2, models.CartAddOns{}))
	svc.AddItem(ctx, "u2", burgerInput(1, models.CartAddOns{Cheese: true}))

	if count := svc.ItemCount(ctx, "u1"); count != 2 {
		t.Errorf("expected u1 count 2, got %d", count)
	}
	if count := svc.ItemCount(ctx, "u2"); count != 1 {
		t.Errorf("expected u2 count 1, got %d", count)
	}

	svc.Clear(ctx, "u1")
	if count := svc.ItemCount(ctx, "u2"); count != 1 {
		t.Errorf("expected u2 untouched by clearing u1, got count %d", count)
	}
}
