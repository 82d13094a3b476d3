package controllers

import (
	"buddies-inn/models"
	"buddies-inn/repositories"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	userRepo *repositories.UserRepository
}

func NewCustomerController() *CustomerController {
	return &CustomerController{
		userRepo: repositories.NewUserRepository(),
	}
}

// @Summary Get all customers
// @Description Get paginated list of customers (Admin)
// @Tags Admin - Customers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/customers [get]
func (ctrl *CustomerController) GetAllCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	customers, total, err := ctrl.userRepo.FindAllCustomers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve customers",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Customers retrieved successfully",
		Data:    customers,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Get customer by ID
// @Description Get customer details (Admin)
// @Tags Admin - Customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/customers/{id} [get]
func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer ID"})
		return
	}

	customer, err := ctrl.userRepo.GetUserWithProfile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer retrieved",
		"data":    customer,
	})
}
