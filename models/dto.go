package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type AddCartItemRequest struct {
	ProductID int        `json:"product_id" binding:"required"`
	Quantity  int        `json:"quantity"`
	AddOns    CartAddOns `json:"add_ons"`
	Note      string     `json:"note"`
}

// UpdateCartItemRequest carries a partial update: nil fields are left
// untouched on the matched cart line.
type UpdateCartItemRequest struct {
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
	AddOns   *CartAddOns      `json:"add_ons"`
	Note     *string          `json:"note"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	OrderType     string `json:"order_type"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2"`
	Description string `json:"description" form:"description"`
	SortOrder   int    `json:"sort_order" form:"sort_order"`
}
