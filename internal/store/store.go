// Package store provides the typed per-entity persistence layer. Every
// lookup-by-id returns (nil, nil) when the row does not exist; translating
// that into a not-found error is the caller's job.
package store

import (
	"context"

	"warehouse-backend/internal/models"
)

type WarehouseStore interface {
	FindAll(ctx context.Context) ([]models.Warehouse, error)
	FindByID(ctx context.Context, id string) (*models.Warehouse, error)
	FindAllByShopID(ctx context.Context, shopID string) ([]models.Warehouse, error)
	Insert(ctx context.Context, w *models.Warehouse) error
	Save(ctx context.Context, w *models.Warehouse) error
	Delete(ctx context.Context, w *models.Warehouse) error
}

type ItemStore interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id string) (*models.Item, error)
	Insert(ctx context.Context, i *models.Item) error
	Save(ctx context.Context, i *models.Item) error
	Delete(ctx context.Context, i *models.Item) error
	DeleteAll(ctx context.Context) error
}

type ShopStore interface {
	FindAll(ctx context.Context) ([]models.Shop, error)
	FindByID(ctx context.Context, id string) (*models.Shop, error)
	Insert(ctx context.Context, s *models.Shop) error
}

type ShipmentStore interface {
	FindAll(ctx context.Context) ([]models.Shipment, error)
	FindByID(ctx context.Context, id string) (*models.Shipment, error)
	FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Shipment, error)
	FindAllByWarehouseIDs(ctx context.Context, warehouseIDs []string) ([]models.Shipment, error)
	Insert(ctx context.Context, s *models.Shipment) error
	Save(ctx context.Context, s *models.Shipment) error
	Delete(ctx context.Context, s *models.Shipment) error
}

// LineItemStore loads line items with their Shipment and Item associations
// populated; the lock gate reads the parent status off the loaded row.
type LineItemStore interface {
	FindByID(ctx context.Context, id string) (*models.ShipmentLineItem, error)
	FindAllByShipmentID(ctx context.Context, shipmentID string) ([]models.ShipmentLineItem, error)
	Insert(ctx context.Context, li *models.ShipmentLineItem) error
	Save(ctx context.Context, li *models.ShipmentLineItem) error
	Delete(ctx context.Context, li *models.ShipmentLineItem) error
	DeleteAllByShipmentID(ctx context.Context, shipmentID string) error
}

type InventoryStore interface {
	FindAll(ctx context.Context) ([]models.Inventory, error)
	FindByID(ctx context.Context, id string) (*models.Inventory, error)
	FindAllByItemID(ctx context.Context, itemID string) ([]models.Inventory, error)
	FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Inventory, error)
	Insert(ctx context.Context, inv *models.Inventory) error
	Save(ctx context.Context, inv *models.Inventory) error
	SaveAll(ctx context.Context, invs []models.Inventory) error
	Delete(ctx context.Context, inv *models.Inventory) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
	Insert(ctx context.Context, u *models.User) error
}
