package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartAddOnsSurcharge(t *testing.T) {
	cases := []struct {
		name   string
		addOns CartAddOns
		want   int64
	}{
		{"none", CartAddOns{}, 0},
		{"fried egg", CartAddOns{FriedEgg: true}, 5},
		{"cheese", CartAddOns{Cheese: true}, 5},
		{"vegetable", CartAddOns{Vegetable: true}, 7},
		{"egg and cheese", CartAddOns{FriedEgg: true, Cheese: true}, 10},
		{"all three", CartAddOns{FriedEgg: true, Cheese: true, Vegetable: true}, 17},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.addOns.Surcharge(); !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("expected surcharge %d, got %s", tc.want, got)
			}
		})
	}
}

func TestCartAddOnsFingerprint(t *testing.T) {
	cases := []struct {
		name   string
		addOns CartAddOns
		want   string
	}{
		{"none", CartAddOns{}, ""},
		{"egg only", CartAddOns{FriedEgg: true}, "egg"},
		{"cheese sorts before egg", CartAddOns{FriedEgg: true, Cheese: true}, "cheese+egg"},
		{"all three", CartAddOns{FriedEgg: true, Cheese: true, Vegetable: true}, "cheese+egg+veg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.addOns.Fingerprint(); got != tc.want {
				t.Errorf("expected fingerprint %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCartItemID(t *testing.T) {
	if got := CartItemID(42, CartAddOns{}); got != "42" {
		t.Errorf("expected plain id %q, got %q", "42", got)
	}
	if got := CartItemID(42, CartAddOns{Cheese: true, Vegetable: true}); got != "42-cheese+veg" {
		t.Errorf("expected id %q, got %q", "42-cheese+veg", got)
	}

	// The same selection must always produce the same identity.
	a := CartItemID(7, CartAddOns{FriedEgg: true, Cheese: true})
	b := CartItemID(7, CartAddOns{Cheese: true, FriedEgg: true})
	if a != b {
		t.Errorf("expected identical ids, got %q and %q", a, b)
	}
}

func TestCartItemRecompute(t *testing.T) {
	item := CartItem{
		Price:    decimal.NewFromInt(30),
		Quantity: 2,
		AddOns:   CartAddOns{Cheese: true, Vegetable: true},
	}
	item.Recompute()

	// (30 + 5 + 7) * 2
	if want := decimal.NewFromInt(84); !item.ItemTotal.Equal(want) {
		t.Errorf("expected item total %s, got %s", want, item.ItemTotal)
	}
}

func TestCartAggregates(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Price: decimal.NewFromInt(30), Quantity: 2, ItemTotal: decimal.NewFromInt(60)},
		{Price: decimal.NewFromInt(10), Quantity: 3, ItemTotal: decimal.NewFromInt(30)},
	}}

	if got := cart.ItemCount(); got != 5 {
		t.Errorf("expected item count 5, got %d", got)
	}
	if want := decimal.NewFromInt(90); !cart.Subtotal().Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, cart.Subtotal())
	}
}
