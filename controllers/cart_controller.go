package controllers

import (
	"buddies-inn/config"
	"buddies-inn/models"
	"buddies-inn/services"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

func cartOwner(c *gin.Context) string {
	return strconv.Itoa(c.GetInt("user_id"))
}

// cartView builds the response body shared by every cart endpoint. A
// persistence warning is advisory: the cart is still usable, changes
// may just not survive a restart.
func (ctrl *CartController) cartView(ctx context.Context, owner string) gin.H {
	cart := ctrl.Carts.Get(ctx, owner)

	view := gin.H{
		"items":      cart.Items,
		"item_count": cart.ItemCount(),
		"subtotal":   cart.Subtotal(),
	}
	if warn := ctrl.Carts.Warning(ctx, owner); warn != nil {
		view["warning"] = warn.Error()
	}
	return view
}

// @Summary Get cart
// @Description Get the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    ctrl.cartView(c.Request.Context(), cartOwner(c)),
	})
}

// @Summary Add cart item
// @Description Add a product with optional add-ons to the cart. An exact repeat of product and add-ons increments the existing line.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart item"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctx := c.Request.Context()

	var (
		name     string
		price    float64
		imageURL string
		category string
	)
	err := config.DB.QueryRow(ctx, `
		SELECT p.name, p.price, COALESCE(p.image_url, ''), COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1 AND p.is_active = true`,
		req.ProductID).Scan(&name, &price, &imageURL, &category)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	owner := cartOwner(c)
	item := ctrl.Carts.AddItem(ctx, owner, services.CartItemInput{
		ProductID: req.ProductID,
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		Quantity:  req.Quantity,
		Image:     imageURL,
		Category:  category,
		AddOns:    req.AddOns,
		Note:      req.Note,
	})

	view := ctrl.cartView(ctx, owner)
	view["item"] = item

	c.JSON(201, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    view,
	})
}

// @Summary Update cart item
// @Description Partially update a cart line. Quantity zero removes the line. Unknown line IDs are a no-op.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart line ID"
// @Param request body models.UpdateCartItemRequest true "Fields to change"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	owner := cartOwner(c)

	found := ctrl.Carts.UpdateItem(ctx, owner, c.Param("id"), req)

	message := "Cart item updated"
	if !found {
		message = "Cart item not in cart, nothing to update"
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data":    ctrl.cartView(ctx, owner),
	})
}

// @Summary Remove cart item
// @Description Remove a cart line. Removing an unknown line is a no-op.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart line ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()
	owner := cartOwner(c)

	ctrl.Carts.RemoveItem(ctx, owner, c.Param("id"))

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart item removed",
		"data":    ctrl.cartView(ctx, owner),
	})
}

// @Summary Clear cart
// @Description Empty the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	owner := cartOwner(c)

	ctrl.Carts.Clear(ctx, owner)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart cleared",
		"data":    ctrl.cartView(ctx, owner),
	})
}
