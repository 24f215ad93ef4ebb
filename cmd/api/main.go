package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rekar-dev/warehouse-api/internal/application/service"
	"github.com/rekar-dev/warehouse-api/internal/config"
	"github.com/rekar-dev/warehouse-api/internal/infrastructure/database"
	"github.com/rekar-dev/warehouse-api/internal/infrastructure/repository"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/handler"
	"github.com/rekar-dev/warehouse-api/internal/presentation/http/routes"
	"github.com/rekar-dev/warehouse-api/pkg/receipt"
	"github.com/rekar-dev/warehouse-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize receipt renderer
	receiptRenderer := receipt.NewTextRenderer(cfg.Receipt.StoreName)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	buyingService := service.NewBuyingService(purchaseRepo, productRepo, supplierRepo, receiptRenderer)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, receiptRenderer)
	dashboardService := service.NewDashboardService(orderRepo, purchaseRepo, productRepo, customerRepo, supplierRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Buying:    handler.NewBuyingHandler(buyingService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Customer:  handler.NewCustomerHandler(customerService),
		Order:     handler.NewOrderHandler(orderService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
