package controllers

import (
	"buddies-inn/config"
	"buddies-inn/libs"
	"buddies-inn/models"
	"buddies-inn/utils"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type ProductController struct{}

const productColumns = `id, name, description, category_id, price, stock, COALESCE(image_url, ''), COALESCE(featured, false), is_active, created_at, updated_at`

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

func productView(p models.Product) gin.H {
	return gin.H{
		"id": p.ID, "name": p.Name, "description": p.Description,
		"category_id": p.CategoryID, "price": p.Price, "stock": p.Stock,
		"image_url": p.ImageURL, "featured": p.Featured,
		"is_active": p.IsActive, "created_at": p.CreatedAt, "updated_at": p.UpdatedAt,
	}
}

// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := getProductCacheKey(page, limit)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	offset := (page - 1) * limit

	var total int
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE is_active=true").Scan(&total)

	rows, _ := config.DB.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE is_active=true ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	defer rows.Close()

	products := []gin.H{}
	for rows.Next() {
		var p models.Product
		rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &p.Featured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		products = append(products, productView(p))
	}

	response := gin.H{
		"success": true, "message": "Products retrieved", "data": products,
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Filter products
// @Description Filter products by search, category, sort, and price range
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Filter by category name"
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	sortName := strings.TrimSpace(c.Query("sort_name"))
	sortPrice := strings.TrimSpace(c.Query("sort_price"))
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	query := "SELECT " + productColumns + " FROM products WHERE is_active=true"
	args := []interface{}{}
	paramIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND LOWER(name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+search+"%")
		paramIndex++
	}

	if category != "" {
		if category == "featured" {
			query += " AND featured=true"
		} else {
			query += fmt.Sprintf(" AND category_id IN (SELECT id FROM categories WHERE LOWER(name)=LOWER($%d))", paramIndex)
			args = append(args, category)
			paramIndex++
		}
	}

	if minPrice > 0 {
		query += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, minPrice)
		paramIndex++
	}

	if maxPrice > 0 {
		query += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, maxPrice)
		paramIndex++
	}

	orderBy := " ORDER BY created_at DESC"
	if sortName == "asc" {
		orderBy = " ORDER BY name ASC"
	} else if sortName == "desc" {
		orderBy = " ORDER BY name DESC"
	} else if sortPrice == "asc" {
		orderBy = " ORDER BY price ASC"
	} else if sortPrice == "desc" {
		orderBy = " ORDER BY price DESC"
	}

	query += orderBy

	rows, _ := config.DB.Query(context.Background(), query, args...)
	defer rows.Close()

	products := []gin.H{}
	for rows.Next() {
		var p models.Product
		rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &p.Featured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		products = append(products, productView(p))
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products filtered",
		"data":    products,
		"total":   len(products),
	})
}

// @Summary Get featured products
// @Description Get list of featured products (limited to 4)
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	rows, _ := config.DB.Query(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE is_active=true AND featured=true ORDER BY created_at DESC LIMIT 4")
	defer rows.Close()

	products := []gin.H{}
	for rows.Next() {
		var p models.Product
		rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &p.Featured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		products = append(products, productView(p))
	}

	c.JSON(200, gin.H{"success": true, "message": "Featured products retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var p models.Product
	err := config.DB.QueryRow(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE id=$1",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &p.Featured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": productView(p)})
}

// saveProductImage stores the uploaded image locally and mirrors it to
// Cloudinary when configured. Returns the URL to persist.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	localPath, err := utils.UploadFile(c, file, "products")
	if err != nil {
		return "", err
	}

	fullPath := config.AppConfig.UploadDir + "/" + localPath
	if hosted, err := libs.UploadToCloudinary(fullPath); err == nil {
		return hosted, nil
	}

	return "/uploads/" + localPath, nil
}

// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Product price"
// @Param stock formData int false "Product stock"
// @Param featured formData bool false "Is featured"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryIDStr := c.PostForm("category_id")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")
	featured, _ := strconv.ParseBool(c.DefaultPostForm("featured", "false"))

	if name == "" || categoryIDStr == "" || priceStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, category_id, and price are required"})
		return
	}

	if len(name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 3 characters"})
		return
	}

	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil || categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category_id"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	stock := 0
	if stockStr != "" {
		stock, err = strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(400, gin.H{"success": false, "message": "Invalid stock"})
			return
		}
	}

	var categoryExists int
	config.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM categories WHERE id=$1", categoryID).Scan(&categoryExists)
	if categoryExists == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	imageURL, err := saveProductImage(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	now := time.Now()
	var id int
	err = config.DB.QueryRow(context.Background(),
		"INSERT INTO products (name, description, category_id, price, stock, image_url, featured, is_active, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,true,$8,$9) RETURNING id",
		name, description, categoryID, price, stock, imageURL, featured, now, now).Scan(&id)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product: " + err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{
		"success": true, "message": "Product created successfully",
		"data": gin.H{
			"id": id, "name": name, "description": description,
			"category_id": categoryID, "price": price, "stock": stock,
			"image_url": imageURL, "featured": featured, "is_active": true,
		},
	})
}

// @Summary Update product
// @Description Update product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param name formData string false "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int false "Category ID"
// @Param price formData number false "Product price"
// @Param stock formData int false "Product stock"
// @Param featured formData bool false "Is featured"
// @Param is_active formData bool false "Is active"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.Product
	err := config.DB.QueryRow(context.Background(),
		"SELECT name, description, category_id, price, stock, COALESCE(image_url, ''), COALESCE(featured, false), is_active FROM products WHERE id=$1",
		id).Scan(&existing.Name, &existing.Description, &existing.CategoryID,
		&existing.Price, &existing.Stock, &existing.ImageURL, &existing.Featured, &existing.IsActive)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	name := strings.TrimSpace(c.DefaultPostForm("name", existing.Name))
	description := strings.TrimSpace(c.DefaultPostForm("description", existing.Description))
	categoryID, _ := strconv.Atoi(c.DefaultPostForm("category_id", strconv.Itoa(existing.CategoryID)))
	price, _ := strconv.ParseFloat(c.DefaultPostForm("price", strconv.FormatFloat(existing.Price, 'f', -1, 64)), 64)
	stock, _ := strconv.Atoi(c.DefaultPostForm("stock", strconv.Itoa(existing.Stock)))
	featured, _ := strconv.ParseBool(c.DefaultPostForm("featured", strconv.FormatBool(existing.Featured)))
	isActive, _ := strconv.ParseBool(c.DefaultPostForm("is_active", strconv.FormatBool(existing.IsActive)))

	if len(name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 3 characters"})
		return
	}

	if categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category_id"})
		return
	}

	if price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	if stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock"})
		return
	}

	imageURL := existing.ImageURL
	if uploaded, err := saveProductImage(c); err == nil && uploaded != "" {
		if strings.HasPrefix(existing.ImageURL, "/uploads/") {
			utils.DeleteFile(strings.TrimPrefix(existing.ImageURL, "/uploads/"))
		}
		imageURL = uploaded
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE products SET name=$1, description=$2, category_id=$3, price=$4, stock=$5, image_url=$6, featured=$7, is_active=$8, updated_at=$9 WHERE id=$10",
		name, description, categoryID, price, stock, imageURL, featured, isActive, time.Now(), id)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully"})
}

// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var imageURL string
	err := config.DB.QueryRow(context.Background(),
		"SELECT COALESCE(image_url, '') FROM products WHERE id=$1", id).Scan(&imageURL)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	_, err = config.DB.Exec(context.Background(), "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	if strings.HasPrefix(imageURL, "/uploads/") {
		utils.DeleteFile(strings.TrimPrefix(imageURL, "/uploads/"))
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted permanently"})
}
