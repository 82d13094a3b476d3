package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buddies-inn/models"
	"buddies-inn/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newCartTestRouter(carts *services.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewCartController(carts)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", 7)
		c.Next()
	})
	router.GET("/cart", ctrl.GetCart)
	router.PATCH("/cart/items/:id", ctrl.UpdateItem)
	router.DELETE("/cart/items/:id", ctrl.RemoveItem)
	router.DELETE("/cart", ctrl.ClearCart)
	return router
}

func seedCartLine(t *testing.T, carts *services.CartService, qty int, addOns models.CartAddOns) models.CartItem {
	t.Helper()
	return carts.AddItem(context.Background(), "7", services.CartItemInput{
		ProductID: 42,
		Name:      "Beef Burger",
		Price:     decimal.NewFromInt(30),
		Quantity:  qty,
		AddOns:    addOns,
	})
}

func decodeCartData(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	return resp.Data
}

func TestCartControllerGetCart(t *testing.T) {
	carts := services.NewCartService(nil)
	seedCartLine(t, carts, 2, models.CartAddOns{Cheese: true})
	router := newCartTestRouter(carts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := decodeCartData(t, w.Body)
	if got := data["item_count"].(float64); got != 2 {
		t.Errorf("expected item count 2, got %v", got)
	}
	// (30 + 5) * 2; decimals serialize as JSON strings
	if got := data["subtotal"].(string); got != "70" {
		t.Errorf("expected subtotal 70, got %v", got)
	}
}

func TestCartControllerUpdateItem(t *testing.T) {
	t.Run("updates quantity", func(t *testing.T) {
		carts := services.NewCartService(nil)
		line := seedCartLine(t, carts, 1, models.CartAddOns{})
		router := newCartTestRouter(carts)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/cart/items/"+line.ID,
			bytes.NewBufferString(`{"quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeCartData(t, w.Body)
		if got := data["subtotal"].(string); got != "90" {
			t.Errorf("expected subtotal 90, got %v", got)
		}
	})

	t.Run("quantity zero removes the line", func(t *testing.T) {
		carts := services.NewCartService(nil)
		line := seedCartLine(t, carts, 2, models.CartAddOns{})
		router := newCartTestRouter(carts)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/cart/items/"+line.ID,
			bytes.NewBufferString(`{"quantity": 0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeCartData(t, w.Body)
		if got := data["item_count"].(float64); got != 0 {
			t.Errorf("expected empty cart, got count %v", got)
		}
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		carts := services.NewCartService(nil)
		seedCartLine(t, carts, 1, models.CartAddOns{})
		router := newCartTestRouter(carts)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/cart/items/999-cheese",
			bytes.NewBufferString(`{"quantity": 5}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeCartData(t, w.Body)
		if got := data["item_count"].(float64); got != 1 {
			t.Errorf("expected untouched cart, got count %v", got)
		}
	})
}

func TestCartControllerRemoveAndClear(t *testing.T) {
	carts := services.NewCartService(nil)
	line := seedCartLine(t, carts, 1, models.CartAddOns{})
	seedCartLine(t, carts, 1, models.CartAddOns{FriedEgg: true})
	router := newCartTestRouter(carts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/items/"+line.ID, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeCartData(t, w.Body)
	if got := data["item_count"].(float64); got != 1 {
		t.Errorf("expected 1 remaining item, got %v", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/cart", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data = decodeCartData(t, w.Body)
	if got := data["item_count"].(float64); got != 0 {
		t.Errorf("expected cleared cart, got count %v", got)
	}
}
