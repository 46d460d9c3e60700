package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockdesk/internal/handler"
	"go-stockdesk/internal/middleware"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/policy"
	"go-stockdesk/internal/repository"
	"go-stockdesk/internal/service"
	"go-stockdesk/internal/storage"
	"go-stockdesk/internal/ws"
	"go-stockdesk/pkg/database"
	"go-stockdesk/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	defer database.Close(db)
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.Purchase{},
		&model.Expense{},
		&model.User{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Object store for product images (optional)
	var store storage.ObjectStore
	if os.Getenv("GCS_BUCKET") != "" {
		gcs, err := storage.NewGCSStore(context.Background())
		if err != nil {
			log.Fatal("Failed to init object store: ", err)
		}
		defer gcs.Close()
		store = gcs
	} else {
		logger.L().Info("GCS_BUCKET not set, image uploads disabled")
	}

	// 5. WebSocket hub for dashboard stock events
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	userRepo := repository.NewUserRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	productService := service.NewProductService(productRepo, wsHub)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, db, wsHub)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, db, wsHub)
	expenseService := service.NewExpenseService(expenseRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)
	statsService := service.NewStatsService(statsRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, store)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	userHandler := handler.NewUserHandler(userService)
	statsHandler := handler.NewStatsHandler(statsService)

	pol := policy.Default()

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockdesk API v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// ============ PUBLIC ROUTES ============
	app.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := app.Group("", middleware.RequireAuth())

	// Products
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Customers
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Delete("/customers/:id",
		middleware.RequireCapability(pol, policy.CustomerDelete), customerHandler.DeleteCustomer)

	// Orders
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Post("/orders/process/:id", orderHandler.ProcessOrder)

	// Purchases
	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Get("/purchases/:id", purchaseHandler.GetPurchase)
	protected.Post("/purchases",
		middleware.RequireCapability(pol, policy.PurchaseWrite), purchaseHandler.CreatePurchase)
	protected.Delete("/purchases/:id",
		middleware.RequireCapability(pol, policy.PurchaseWrite), purchaseHandler.DeletePurchase)

	// Expenses
	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Get("/expenses/:id", expenseHandler.GetExpense)
	protected.Post("/expenses",
		middleware.RequireCapability(pol, policy.ExpenseWrite), expenseHandler.CreateExpense)
	protected.Delete("/expenses/:id",
		middleware.RequireCapability(pol, policy.ExpenseWrite), expenseHandler.DeleteExpense)

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users",
		middleware.RequireCapability(pol, policy.UserManage), userHandler.CreateUser)
	protected.Put("/users/:id",
		middleware.RequireCapability(pol, policy.UserManage), userHandler.UpdateUser)
	protected.Patch("/users/:id",
		middleware.RequireCapability(pol, policy.UserManage), userHandler.UpdateUser)

	// Statistics
	protected.Get("/statistics/sales-summary", statsHandler.SalesSummary)
	protected.Get("/statistics/purchase-summary", statsHandler.PurchaseSummary)
	protected.Get("/statistics/popular-products", statsHandler.PopularProducts)
	protected.Get("/statistics/order-summary", statsHandler.OrderSummary)
	protected.Get("/statistics/customer-growth", statsHandler.CustomerGrowth)
	protected.Get("/statistics/expense-summary", statsHandler.ExpenseSummary)

	// WebSocket feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}

// seedAdmin makes sure the instance always has one admin to log in
// with.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	var existing model.User
	if err := db.First(&existing, "email = ?", email).Error; err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "adminpass"
	}

	admin := &model.User{
		Name:  "Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
