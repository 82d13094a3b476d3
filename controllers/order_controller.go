package controllers

import (
	"buddies-inn/models"
	"buddies-inn/services"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

func (ctrl *OrderController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}

	if page > 1 {
		links.Prev = makeURL(page - 1)
	}

	if page < totalPages {
		links.Next = makeURL(page + 1)
	}

	return links
}

func (ctrl *OrderController) buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
		Links: ctrl.generateLinks(c, page, limit, totalPages),
	}
}

func orderView(o models.Order) gin.H {
	return gin.H{
		"id":                   o.ID,
		"order_number":         o.OrderNumber,
		"user_id":              o.UserID,
		"customer_name":        o.CustomerName,
		"customer_phone":       o.CustomerPhone,
		"address":              o.Address,
		"order_type":           o.OrderType,
		"status":               o.Status,
		"payment_method":       o.PaymentMethod,
		"subtotal":             o.Subtotal,
		"tax":                  o.Tax,
		"shipping":             o.Shipping,
		"discount":             o.Discount,
		"total":                o.Total,
		"notes":                o.Notes,
		"items":                o.Items,
		"estimated_completion": models.EstimatedCompletion(o.Status, o.UpdatedAt),
		"created_at":           o.CreatedAt,
		"updated_at":           o.UpdatedAt,
	}
}

// @Summary Checkout
// @Description Create an order from the current cart. The cart is cleared only after the order is persisted.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	order, err := ctrl.Orders.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data":    orderView(*order),
	})
}

// @Summary Get my orders
// @Description Get the current user's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	page, limit := ctrl.getPaginationParams(c, 10)

	orders, total, err := ctrl.Orders.GetUserOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	views := []gin.H{}
	for _, o := range orders {
		views = append(views, orderView(o))
	}

	c.JSON(200, ctrl.buildResponse(c, "Orders retrieved successfully", views, page, limit, total))
}

// @Summary Get my order
// @Description Get one of the current user's orders with tracking info
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetMyOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctrl.Orders.GetOrder(c.Request.Context(), id)
	if err != nil || order.UserID != userID {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    orderView(*order),
	})
}
