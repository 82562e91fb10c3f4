package main

import (
	"log"
	"strings"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/catalog"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/inventory"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/shipping"
	"warehouse-backend/internal/shop"
	"warehouse-backend/internal/store"
	"warehouse-backend/internal/warehouse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	zapLogger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	stores := store.NewGormStores(database.DB)
	resolver := refs.NewResolver(stores.Warehouses, stores.Items, stores.Shipments, stores.Shops)

	warehouseSvc := warehouse.NewService(stores.Warehouses, resolver, logger)
	catalogSvc := catalog.NewService(stores.Items, logger)
	shopSvc := shop.NewService(stores.Shops, logger)
	shipmentSvc := shipping.NewShipmentService(stores.Shipments, stores.LineItems, stores.Inventories, stores.Warehouses, resolver, logger)
	lineItemSvc := shipping.NewLineItemService(stores.LineItems, resolver, logger)
	inventorySvc := inventory.NewService(stores.Inventories, resolver, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.NewErrorHandler(logger),
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg, stores.Users))
	api.Post("/auth/login", auth.LoginHandler(cfg, stores.Users))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(stores.Users))

	// Shops
	protected.Get("/shops", shop.ListHandler(shopSvc))
	protected.Get("/shops/:id", shop.GetHandler(shopSvc))
	protected.Post("/shops", shop.CreateHandler(shopSvc))
	protected.Get("/shops/:id/shipments", shipping.ListShipmentsByShopHandler(shipmentSvc))

	// Warehouses
	protected.Get("/warehouses", warehouse.ListHandler(warehouseSvc))
	protected.Get("/warehouses/:id", warehouse.GetHandler(warehouseSvc))
	protected.Post("/warehouses", warehouse.CreateHandler(warehouseSvc))
	protected.Put("/warehouses/:id", warehouse.UpdateHandler(warehouseSvc))
	protected.Delete("/warehouses/:id", auth.RequireRole(models.RoleAdmin), warehouse.DeleteHandler(warehouseSvc))
	protected.Get("/warehouses/:id/shipments", shipping.ListShipmentsByWarehouseHandler(shipmentSvc))
	protected.Get("/warehouses/:id/inventory", inventory.ListByWarehouseHandler(inventorySvc))

	// Items
	protected.Get("/items", catalog.ListItemsHandler(catalogSvc))
	protected.Get("/items/:id", catalog.GetItemHandler(catalogSvc))
	protected.Post("/items", catalog.CreateItemHandler(catalogSvc))
	protected.Put("/items/:id", catalog.UpdateItemHandler(catalogSvc))
	protected.Delete("/items/:id", auth.RequireRole(models.RoleAdmin), catalog.DeleteItemHandler(catalogSvc))
	protected.Delete("/items", auth.RequireRole(models.RoleAdmin), catalog.DeleteAllItemsHandler(catalogSvc))
	protected.Get("/items/:id/inventory", inventory.ListByItemHandler(inventorySvc))

	// Shipments
	protected.Get("/shipments", shipping.ListShipmentsHandler(shipmentSvc))
	protected.Get("/shipments/:id", shipping.GetShipmentHandler(shipmentSvc))
	protected.Post("/shipments", shipping.CreateShipmentHandler(shipmentSvc))
	protected.Put("/shipments/:id", shipping.UpdateShipmentHandler(shipmentSvc))
	protected.Put("/shipments/:id/status", shipping.UpdateShipmentStatusHandler(shipmentSvc))
	protected.Delete("/shipments/:id", shipping.DeleteShipmentHandler(shipmentSvc))
	protected.Get("/shipments/:id/line-items", shipping.ListLineItemsHandler(lineItemSvc))

	// Line items
	protected.Post("/line-items", shipping.CreateLineItemHandler(lineItemSvc))
	protected.Put("/line-items/:id", shipping.UpdateLineItemHandler(lineItemSvc))
	protected.Delete("/line-items/:id", shipping.DeleteLineItemHandler(lineItemSvc))

	// Inventory
	protected.Get("/inventory", inventory.ListHandler(inventorySvc))
	protected.Get("/inventory/:id", inventory.GetHandler(inventorySvc))
	protected.Post("/inventory", inventory.CreateHandler(inventorySvc))
	protected.Put("/inventory/:id", inventory.UpdateHandler(inventorySvc))
	protected.Delete("/inventory/:id", inventory.DeleteHandler(inventorySvc))

	logger.Infow("server listening", "port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" || env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
