package services

import (
	"buddies-inn/config"
	"buddies-inn/models"
	"buddies-inn/repositories"
	"buddies-inn/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
	userRepo  *repositories.UserRepository
	carts     *CartService
	email     *models.EmailService
}

// NewOrderService wires the checkout flow. email may be nil when SMTP
// is not configured; confirmations are then skipped.
func NewOrderService(carts *CartService, email *models.EmailService) *OrderService {
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		userRepo:  repositories.NewUserRepository(),
		carts:     carts,
		email:     email,
	}
}

// Checkout turns the caller's cart into a persisted order. The cart is
// cleared only after the order transaction commits; a failed checkout
// leaves the cart intact.
func (s *OrderService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Order, error) {
	owner := strconv.Itoa(userID)
	cart := s.carts.Get(ctx, owner)
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	orderType := strings.ToLower(req.OrderType)
	if orderType == "" {
		orderType = OrderTypeDelivery
	}
	if orderType != OrderTypeDelivery && orderType != OrderTypePickup {
		return nil, errors.New("invalid order type")
	}

	// Fall back to the stored profile for missing customer details.
	if req.CustomerName == "" || req.CustomerPhone == "" || req.Address == "" {
		profile, err := s.userRepo.GetUserWithProfile(userID)
		if err == nil {
			if req.CustomerName == "" {
				req.CustomerName = profile.FullName
			}
			if req.CustomerPhone == "" {
				req.CustomerPhone = profile.Phone
			}
			if req.Address == "" {
				req.Address = profile.Address
			}
		}
	}

	if req.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}
	if orderType == OrderTypeDelivery && req.Address == "" {
		return nil, errors.New("delivery address is required")
	}
	if req.CustomerPhone != "" {
		if err := utils.ValidatePhoneNumber(req.CustomerPhone); err != nil {
			return nil, err
		}
	}

	subtotal := cart.Subtotal()
	tax := subtotal.Mul(decimal.NewFromFloat(config.AppConfig.TaxRate)).Round(2)
	shipping := decimal.Zero
	if orderType == OrderTypeDelivery {
		shipping = decimal.NewFromFloat(config.AppConfig.DeliveryFee)
	}
	discount := decimal.Zero
	total := subtotal.Add(tax).Add(shipping).Sub(discount)

	order := &models.Order{
		OrderNumber:   newOrderNumber(),
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		OrderType:     orderType,
		Status:        models.StatusPending,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      subtotal.InexactFloat64(),
		Tax:           tax.InexactFloat64(),
		Shipping:      shipping.InexactFloat64(),
		Discount:      discount.InexactFloat64(),
		Total:         total.InexactFloat64(),
		Notes:         req.Notes,
	}

	for _, line := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price.Add(line.AddOns.Surcharge()).InexactFloat64(),
			Total:     line.ItemTotal.InexactFloat64(),
			AddOns:    line.AddOns.Labels(),
			Note:      line.Note,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.carts.Clear(ctx, owner)

	if s.email != nil {
		go func(order models.Order, userID int) {
			user, err := s.userRepo.FindByID(userID)
			if err != nil {
				return
			}
			if err := s.email.SendOrderConfirmation(user.Email, &order); err != nil {
				log.Printf("Failed to send order confirmation for %s: %v", order.OrderNumber, err)
			}
		}(*order, userID)
	}

	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	return s.orderRepo.FindByUser(ctx, userID, page, limit)
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
