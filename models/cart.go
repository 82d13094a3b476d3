package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Add-on surcharges are fixed menu-wide.
var (
	FriedEggSurcharge  = decimal.NewFromInt(5)
	CheeseSurcharge    = decimal.NewFromInt(5)
	VegetableSurcharge = decimal.NewFromInt(7)
)

type CartAddOns struct {
	FriedEgg  bool `json:"fried_egg"`
	Cheese    bool `json:"cheese"`
	Vegetable bool `json:"vegetable"`
}

// Surcharge returns the sum of the active add-on prices.
func (a CartAddOns) Surcharge() decimal.Decimal {
	total := decimal.Zero
	if a.FriedEgg {
		total = total.Add(FriedEggSurcharge)
	}
	if a.Cheese {
		total = total.Add(CheeseSurcharge)
	}
	if a.Vegetable {
		total = total.Add(VegetableSurcharge)
	}
	return total
}

// Fingerprint is a canonical encoding of the active add-on set, used as
// part of the cart line identity. Empty when no add-ons are active.
func (a CartAddOns) Fingerprint() string {
	codes := []string{}
	if a.Cheese {
		codes = append(codes, "cheese")
	}
	if a.FriedEgg {
		codes = append(codes, "egg")
	}
	if a.Vegetable {
		codes = append(codes, "veg")
	}
	return strings.Join(codes, "+")
}

// Labels returns display names for the active add-ons.
func (a CartAddOns) Labels() []string {
	labels := []string{}
	if a.FriedEgg {
		labels = append(labels, "Fried Egg")
	}
	if a.Cheese {
		labels = append(labels, "Cheese")
	}
	if a.Vegetable {
		labels = append(labels, "Vegetable")
	}
	return labels
}

// CartItem is one line in a cart. ID identifies the product together with
// its add-on combination: the same product with different add-ons is a
// different line. ItemTotal is derived, never set directly.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
	AddOns    CartAddOns      `json:"add_ons"`
	Note      string          `json:"note,omitempty"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

// CartItemID builds the line identity for a product and add-on selection.
func CartItemID(productID int, addOns CartAddOns) string {
	fp := addOns.Fingerprint()
	if fp == "" {
		return strconv.Itoa(productID)
	}
	return strconv.Itoa(productID) + "-" + fp
}

// Recompute sets ItemTotal to (price + active surcharges) * quantity.
func (i *CartItem) Recompute() {
	i.ItemTotal = i.Price.Add(i.AddOns.Surcharge()).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the serialized snapshot written to the cart store.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.ItemTotal)
	}
	return subtotal
}
