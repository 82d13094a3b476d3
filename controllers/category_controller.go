package controllers

import (
	"buddies-inn/config"
	"buddies-inn/models"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

// @Summary Get all categories
// @Description Get list of active categories in menu order
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	rows, _ := config.DB.Query(context.Background(),
		"SELECT id, name, COALESCE(description, ''), COALESCE(image_url, ''), is_active, sort_order, created_at FROM categories WHERE is_active=true ORDER BY sort_order, name")
	defer rows.Close()

	categories := []gin.H{}
	for rows.Next() {
		var cat models.Category
		rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ImageURL, &cat.IsActive, &cat.SortOrder, &cat.CreatedAt)
		categories = append(categories, gin.H{
			"id":          cat.ID,
			"name":        cat.Name,
			"description": cat.Description,
			"image_url":   cat.ImageURL,
			"is_active":   cat.IsActive,
			"sort_order":  cat.SortOrder,
			"created_at":  cat.CreatedAt,
		})
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Create category
// @Description Create new category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required (min 2 characters)"})
		return
	}

	name := strings.TrimSpace(req.Name)

	var exists int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM categories WHERE LOWER(name)=LOWER($1)", name).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category already exists"})
		return
	}

	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO categories (name, description, sort_order, is_active, created_at) VALUES ($1,$2,$3,true,$4) RETURNING id",
		name, req.Description, req.SortOrder, time.Now()).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data": gin.H{
			"id": id, "name": name, "description": req.Description,
			"sort_order": req.SortOrder, "is_active": true,
		},
	})
}

// @Summary Update category
// @Description Update category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.Category
	err := config.DB.QueryRow(context.Background(),
		"SELECT name, COALESCE(description, ''), is_active, sort_order FROM categories WHERE id=$1",
		id).Scan(&existing.Name, &existing.Description, &existing.IsActive, &existing.SortOrder)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		SortOrder   *int    `json:"sort_order"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if len(existing.Name) < 2 {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 2 characters"})
		return
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE categories SET name=$1, description=$2, sort_order=$3, is_active=$4 WHERE id=$5",
		existing.Name, existing.Description, existing.SortOrder, existing.IsActive, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully"})
}

// @Summary Delete category
// @Description Delete category without products (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	var productCount int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products WHERE category_id=$1", id).Scan(&productCount)
	if productCount > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category still has products"})
		return
	}

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM categories WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}
