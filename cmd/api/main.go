package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-stock/internal/handler"
	"go-warehouse-stock/internal/middleware"
	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/internal/service"
	"go-warehouse-stock/internal/ws"
	"go-warehouse-stock/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
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
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Zone{},
		&model.Inventory{},
		&model.Sensor{},
		&model.SensorData{},
		&model.Alert{},
		&model.Order{},
		&model.OrderPrediction{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// 3. Seed default admin account
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	zoneRepo := repository.NewZoneRepo(db)
	invRepo := repository.NewInventoryRepo(db)
	sensorRepo := repository.NewSensorRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	predictionRepo := repository.NewPredictionRepo(db)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	stockService := service.NewStockService(productRepo, zoneRepo, invRepo, alertRepo, db, wsHub)
	sensorService := service.NewSensorService(sensorRepo, zoneRepo)
	orderService := service.NewOrderService(orderRepo, predictionRepo, productRepo, userRepo)
	alertService := service.NewAlertService(alertRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	stockHandler := handler.NewStockHandler(stockService)
	zoneHandler := handler.NewZoneHandler(zoneRepo)
	sensorHandler := handler.NewSensorHandler(sensorService)
	orderHandler := handler.NewOrderHandler(orderService)
	alertHandler := handler.NewAlertHandler(alertService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Stock API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Read endpoints are open
	api.Get("/categories", catalogHandler.GetCategories)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/zones", zoneHandler.GetZones)
	api.Get("/inventory", stockHandler.GetInventory)
	api.Get("/sensors", sensorHandler.GetSensors)
	api.Get("/sensors/:id/data", sensorHandler.GetReadings)
	api.Get("/alerts", alertHandler.GetAlerts)
	api.Get("/users", userHandler.GetUsers)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Any authenticated role may write catalog structure and move stock
	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Post("/zones", zoneHandler.CreateZone)
	protected.Post("/inventory", stockHandler.UpsertInventory)
	protected.Post("/sensors", sensorHandler.CreateSensor)
	protected.Post("/sensors/:id/data", sensorHandler.RecordReading)

	protected.Get("/orders", orderHandler.GetOrders)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Put("/orders/:id/deliver", orderHandler.MarkDelivered)
	protected.Put("/orders/:id/return", orderHandler.MarkReturned)
	protected.Get("/predictions", orderHandler.GetPredictions)
	protected.Post("/predictions", orderHandler.CreatePrediction)
	protected.Post("/predictions/:id/orders", orderHandler.GenerateOrder)
	protected.Put("/alerts/:id/assign", alertHandler.AssignAlert)

	// Destructive and administrative operations are admin-only
	admin := protected.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.Put("/products/:id", catalogHandler.UpdateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)
	admin.Delete("/sensors/:id", sensorHandler.DeleteSensor)
	admin.Post("/users", userHandler.CreateUser)
	admin.Put("/alerts/:id/resolve", alertHandler.ResolveAlert)

	// WebSocket Route
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

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it does not exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin / admin123")
	}
}
