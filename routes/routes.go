package routes

import (
	"buddies-inn/controllers"
	"buddies-inn/middleware"
	"buddies-inn/models"
	"buddies-inn/repositories"
	"buddies-inn/services"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	var cartStore services.CartStore
	if models.RedisClient != nil {
		cartStore = repositories.NewRedisCartStore(models.RedisClient)
	}
	cartService := services.NewCartService(cartStore)

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
		emailService = nil
	}
	orderService := services.NewOrderService(cartService, emailService)

	authCtrl := controllers.NewAuthController()
	productCtrl := &controllers.ProductController{}
	categoryCtrl := &controllers.CategoryController{}
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService)
	adminOrderCtrl := controllers.NewAdminOrderController(orderCtrl)
	customerCtrl := controllers.NewCustomerController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/filter", productCtrl.FilterProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetMyOrderByID)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminOrderCtrl.GetDashboard)

		admin.GET("/customers", customerCtrl.GetAllCustomers)
		admin.GET("/customers/:id", customerCtrl.GetCustomerByID)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/orders", adminOrderCtrl.GetAllOrders)
		admin.GET("/orders/:id", adminOrderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", adminOrderCtrl.DeleteOrder)
	}

	router.Static("/uploads", "./uploads")
}
