package shipping

import (
	"context"
	"time"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

// ShipmentService owns the shipment lifecycle. Completing a shipment rolls
// its received quantities into the destination warehouse's inventory.
type ShipmentService struct {
	shipments   store.ShipmentStore
	lineItems   store.LineItemStore
	inventories store.InventoryStore
	warehouses  store.WarehouseStore
	resolver    *refs.Resolver
	log         *zap.SugaredLogger
}

func NewShipmentService(
	shipments store.ShipmentStore,
	lineItems store.LineItemStore,
	inventories store.InventoryStore,
	warehouses store.WarehouseStore,
	resolver *refs.Resolver,
	log *zap.SugaredLogger,
) *ShipmentService {
	return &ShipmentService{
		shipments:   shipments,
		lineItems:   lineItems,
		inventories: inventories,
		warehouses:  warehouses,
		resolver:    resolver,
		log:         log,
	}
}

type CreateShipmentInput struct {
	WarehouseID         string
	ExpectedArrivalDate time.Time
	Status              models.ShipmentStatus
}

type UpdateShipmentInput struct {
	WarehouseID         *string
	ExpectedArrivalDate *time.Time
	Status              *models.ShipmentStatus
}

func (s *ShipmentService) List(ctx context.Context) ([]models.Shipment, error) {
	return s.shipments.FindAll(ctx)
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*models.Shipment, error) {
	return s.resolver.Shipment(ctx, id)
}

func (s *ShipmentService) ListByWarehouse(ctx context.Context, warehouseID string) ([]models.Shipment, error) {
	warehouse, err := s.resolver.Warehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	return s.shipments.FindAllByWarehouseID(ctx, warehouse.ID)
}

// ListByShop collects the shipments of every warehouse belonging to the shop.
func (s *ShipmentService) ListByShop(ctx context.Context, shopID string) ([]models.Shipment, error) {
	shop, err := s.resolver.Shop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	warehouses, err := s.warehouses.FindAllByShopID(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		ids = append(ids, w.ID)
	}
	return s.shipments.FindAllByWarehouseIDs(ctx, ids)
}

func (s *ShipmentService) Create(ctx context.Context, in CreateShipmentInput) (*models.Shipment, error) {
	warehouse, err := s.resolver.Warehouse(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}

	shipment := models.Shipment{
		WarehouseID:         warehouse.ID,
		Warehouse:           *warehouse,
		ExpectedArrivalDate: in.ExpectedArrivalDate,
		Status:              in.Status,
	}
	if err := s.shipments.Insert(ctx, &shipment); err != nil {
		return nil, err
	}

	s.log.Infow("shipment created", "id", shipment.ID, "warehouse_id", warehouse.ID)
	return &shipment, nil
}

// Update patches the supplied fields. A completed shipment rejects any
// further modification, including via this generic update.
func (s *ShipmentService) Update(ctx context.Context, id string, in UpdateShipmentInput) (*models.Shipment, error) {
	shipment, err := s.resolver.Shipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkUnlocked(shipment); err != nil {
		return nil, err
	}

	if in.WarehouseID != nil {
		warehouse, err := s.resolver.Warehouse(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		shipment.WarehouseID = warehouse.ID
		shipment.Warehouse = *warehouse
	}
	if in.ExpectedArrivalDate != nil {
		shipment.ExpectedArrivalDate = *in.ExpectedArrivalDate
	}
	if in.Status != nil {
		shipment.Status = *in.Status
	}

	if err := s.shipments.Save(ctx, shipment); err != nil {
		return nil, err
	}

	s.log.Infow("shipment updated", "id", shipment.ID)
	return shipment, nil
}

// UpdateStatus moves the shipment to a new status. Transitioning into
// COMPLETED books every line item's received quantity into the warehouse
// inventory before the status is persisted.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id string, status models.ShipmentStatus) (*models.Shipment, error) {
	shipment, err := s.resolver.Shipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkUnlocked(shipment); err != nil {
		return nil, err
	}

	if status == models.ShipmentCompleted {
		if err := s.completeShipment(ctx, shipment); err != nil {
			return nil, err
		}
	}

	shipment.Status = status
	if err := s.shipments.Save(ctx, shipment); err != nil {
		return nil, err
	}

	s.log.Infow("shipment status updated", "id", shipment.ID, "status", status)
	return shipment, nil
}

// completeShipment upserts one inventory row per received item: existing
// rows are incremented, unseen items get a fresh row.
func (s *ShipmentService) completeShipment(ctx context.Context, shipment *models.Shipment) error {
	lineItems, err := s.lineItems.FindAllByShipmentID(ctx, shipment.ID)
	if err != nil {
		return err
	}
	if len(lineItems) == 0 {
		return apperr.NotFound("line items for shipment", shipment.ID)
	}

	inventories, err := s.inventories.FindAllByWarehouseID(ctx, shipment.WarehouseID)
	if err != nil {
		return err
	}

	byItem := make(map[string]models.Inventory, len(inventories))
	for _, inv := range inventories {
		byItem[inv.ItemID] = inv
	}

	// Accumulate into the map so several line items for the same item end up
	// in one row, then upsert only the touched rows.
	touched := make([]string, 0, len(lineItems))
	for _, li := range lineItems {
		inv, ok := byItem[li.ItemID]
		if !ok {
			inv = models.Inventory{
				WarehouseID: shipment.WarehouseID,
				ItemID:      li.ItemID,
			}
		}
		if !seen(touched, li.ItemID) {
			touched = append(touched, li.ItemID)
		}
		inv.Quantity += li.ReceivedQuantity
		byItem[li.ItemID] = inv
	}

	upserts := make([]models.Inventory, 0, len(touched))
	for _, itemID := range touched {
		upserts = append(upserts, byItem[itemID])
	}

	return s.inventories.SaveAll(ctx, upserts)
}

func seen(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Delete removes the shipment together with its line items. Completed
// shipments stay immutable.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	shipment, err := s.resolver.Shipment(ctx, id)
	if err != nil {
		return err
	}

	if err := checkUnlocked(shipment); err != nil {
		return err
	}

	if err := s.lineItems.DeleteAllByShipmentID(ctx, shipment.ID); err != nil {
		return err
	}
	if err := s.shipments.Delete(ctx, shipment); err != nil {
		return err
	}

	s.log.Infow("shipment deleted", "id", id)
	return nil
}
