package models

import "time"

// Order status lifecycle. Status transitions are driven by the back
// office; customers only ever create orders in StatusPending.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

var ValidOrderStatuses = map[string]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusReady:          true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

// statusMinutes maps a status to the estimated minutes until the order
// is complete, counted from the moment the status was set.
var statusMinutes = map[string]int{
	StatusPending:        45,
	StatusConfirmed:      40,
	StatusPreparing:      30,
	StatusReady:          5,
	StatusOutForDelivery: 15,
	StatusDelivered:      0,
	StatusCancelled:      0,
}

// EstimatedCompletion returns when an order in the given status, last
// updated at the given time, is expected to be done.
func EstimatedCompletion(status string, updatedAt time.Time) time.Time {
	minutes, ok := statusMinutes[status]
	if !ok {
		minutes = 30
	}
	return updatedAt.Add(time.Duration(minutes) * time.Minute)
}

type Order struct {
	ID            int         `json:"id"`
	OrderNumber   string      `json:"order_number"`
	UserID        int         `json:"user_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Address       string      `json:"address,omitempty"`
	OrderType     string      `json:"order_type"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Shipping      float64     `json:"shipping"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	Notes         string      `json:"notes,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        int      `json:"id"`
	OrderID   int      `json:"order_id"`
	ProductID int      `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Total     float64  `json:"total"`
	AddOns    []string `json:"add_ons"`
	Note      string   `json:"note,omitempty"`
}
