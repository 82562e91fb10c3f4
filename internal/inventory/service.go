// Package inventory manages per-warehouse stock levels. Inventory rows carry
// the same referential-integrity rules as line items (both references must
// resolve at write time) but are not coupled to shipment status.
package inventory

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	inventories store.InventoryStore
	resolver    *refs.Resolver
	log         *zap.SugaredLogger
}

func NewService(inventories store.InventoryStore, resolver *refs.Resolver, log *zap.SugaredLogger) *Service {
	return &Service{inventories: inventories, resolver: resolver, log: log}
}

type CreateInput struct {
	WarehouseID string
	ItemID      string
	Quantity    int
}

type UpdateInput struct {
	WarehouseID *string
	ItemID      *string
	Quantity    *int
}

func (s *Service) List(ctx context.Context) ([]models.Inventory, error) {
	return s.inventories.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Inventory, error) {
	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperr.NotFound("inventory", id)
	}
	return inv, nil
}

func (s *Service) ListByItem(ctx context.Context, itemID string) ([]models.Inventory, error) {
	invs, err := s.inventories.FindAllByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		return nil, apperr.NotFound("inventory for item", itemID)
	}
	return invs, nil
}

func (s *Service) ListByWarehouse(ctx context.Context, warehouseID string) ([]models.Inventory, error) {
	invs, err := s.inventories.FindAllByWarehouseID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		return nil, apperr.NotFound("inventory for warehouse", warehouseID)
	}
	return invs, nil
}

// Create resolves the warehouse first, then the item; the first missing
// reference wins the error.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Inventory, error) {
	warehouse, err := s.resolver.Warehouse(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}

	item, err := s.resolver.Item(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	inv := models.Inventory{
		WarehouseID: warehouse.ID,
		Warehouse:   *warehouse,
		ItemID:      item.ID,
		Item:        *item,
		Quantity:    in.Quantity,
	}
	if err := s.inventories.Insert(ctx, &inv); err != nil {
		return nil, err
	}

	s.log.Infow("inventory created", "id", inv.ID, "warehouse_id", warehouse.ID, "item_id", item.ID)
	return &inv, nil
}

// Update merges the supplied fields onto the existing row, re-resolving
// whichever references the update carries (warehouse before item).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Inventory, error) {
	existing, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("inventory", id)
	}

	merged := *existing
	if in.WarehouseID != nil {
		warehouse, err := s.resolver.Warehouse(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		merged.WarehouseID = warehouse.ID
		merged.Warehouse = *warehouse
	}
	if in.ItemID != nil {
		item, err := s.resolver.Item(ctx, *in.ItemID)
		if err != nil {
			return nil, err
		}
		merged.ItemID = item.ID
		merged.Item = *item
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}

	if err := s.inventories.Save(ctx, &merged); err != nil {
		return nil, err
	}

	s.log.Infow("inventory updated", "id", merged.ID)
	return &merged, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("inventory", id)
	}

	if err := s.inventories.Delete(ctx, existing); err != nil {
		return err
	}

	s.log.Infow("inventory deleted", "id", id)
	return nil
}
