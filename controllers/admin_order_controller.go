package controllers

import (
	"buddies-inn/models"
	"buddies-inn/repositories"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type AdminOrderController struct {
	OrderController
	repo *repositories.OrderRepository
}

func NewAdminOrderController(base *OrderController) *AdminOrderController {
	return &AdminOrderController{
		OrderController: *base,
		repo:            repositories.NewOrderRepository(),
	}
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number or customer name"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *AdminOrderController) GetAllOrders(c *gin.Context) {
	page, limit := ctrl.getPaginationParams(c, 10)
	status := c.Query("status")
	search := c.Query("search")

	orders, total, err := ctrl.repo.FindAll(c.Request.Context(), page, limit, status, search)
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

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminOrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    orderView(*order),
	})
}

// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *AdminOrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !models.ValidOrderStatuses[status] {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	if err := ctrl.repo.UpdateStatus(c.Request.Context(), id, status); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":     id,
			"status": status,
		},
	})
}

// @Summary Delete order
// @Description Delete order and its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [delete]
func (ctrl *AdminOrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if err := ctrl.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order deleted successfully",
		"data":    gin.H{"id": id},
	})
}

// @Summary Dashboard
// @Description Get order counters and revenue (Admin)
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *AdminOrderController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load dashboard"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data":    stats,
	})
}
