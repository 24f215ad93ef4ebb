package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rekar-dev/warehouse-api/internal/config"
	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/handler"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/middleware"
	"github.com/rekar-dev/warehouse-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Buying    *handler.BuyingHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Supplier  *handler.SupplierHandler
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Purchase  *handler.PurchaseHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard",
		middleware.RequireSection(enum.SectionDashboard), h.Dashboard.GetStats)

	registerBuyingRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerOrderRoutes(protected, h)
	registerPurchaseRoutes(protected, h)
}

func registerBuyingRoutes(protected *gin.RouterGroup, h *Handlers) {
	buying := protected.Group("/buying")
	buying.Use(middleware.RequireSection(enum.SectionProductEntry))
	{
		buying.GET("/draft", h.Buying.GetDraft)
		buying.POST("/items", h.Buying.AddItem)
		buying.DELETE("/items/:id", h.Buying.RemoveItem)
		buying.GET("/line-total", h.Buying.LineTotal)
		buying.POST("/checkout", h.Buying.Checkout)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Browsing products is part of purchase entry; creating and
		// editing them is the add-product section.
		products.GET("",
			middleware.RequireSection(enum.SectionProductEntry), h.Product.List)
		products.GET("/:id",
			middleware.RequireSection(enum.SectionProductEntry), h.Product.Get)
		products.POST("",
			middleware.RequireSection(enum.SectionAddProduct), h.Product.Create)
		products.PUT("/:id",
			middleware.RequireSection(enum.SectionAddProduct), h.Product.Update)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("",
			middleware.RequireSection(enum.SectionProductEntry), h.Category.List)
		categories.POST("",
			middleware.RequireSection(enum.SectionAddProduct), h.Category.Create)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("",
			middleware.RequireSection(enum.SectionProductEntry), h.Supplier.List)
		suppliers.GET("/debts",
			middleware.RequireSection(enum.SectionDebtSupplier), h.Supplier.ListDebts)
		suppliers.POST("",
			middleware.RequireSection(enum.SectionSupplier), h.Supplier.Create)
		suppliers.GET("/:id",
			middleware.RequireSection(enum.SectionSupplier), h.Supplier.Get)
		suppliers.PUT("/:id",
			middleware.RequireSection(enum.SectionSupplier), h.Supplier.Update)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequireSection(enum.SectionCustomer))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequireSection(enum.SectionProductExit))
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	purchases.Use(middleware.RequireSection(enum.SectionTransactions))
	{
		purchases.GET("", h.Purchase.List)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.GET("/:id/receipt", h.Purchase.GetReceipt)
	}
}
