package shipping

import (
	"context"
	"testing"
	"time"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/store/storetest"

	"go.uber.org/zap"
)

type shipmentFixture struct {
	warehouses  *storetest.Warehouses
	items       *storetest.Items
	shipments   *storetest.Shipments
	shops       *storetest.Shops
	lineItems   *storetest.LineItems
	inventories *storetest.Inventories
	svc         *ShipmentService
}

func newShipmentFixture() *shipmentFixture {
	warehouses := storetest.NewWarehouses()
	items := storetest.NewItems()
	shipments := storetest.NewShipments()
	shops := storetest.NewShops()
	lineItems := storetest.NewLineItems(shipments, items)
	inventories := storetest.NewInventories()

	resolver := refs.NewResolver(warehouses, items, shipments, shops)
	svc := NewShipmentService(shipments, lineItems, inventories, warehouses, resolver, zap.NewNop().Sugar())

	return &shipmentFixture{
		warehouses:  warehouses,
		items:       items,
		shipments:   shipments,
		shops:       shops,
		lineItems:   lineItems,
		inventories: inventories,
		svc:         svc,
	}
}

func TestCreateShipment(t *testing.T) {
	f := newShipmentFixture()
	warehouse := f.warehouses.Add(models.Warehouse{Name: "Central"})

	arrival := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	shipment, err := f.svc.Create(context.Background(), CreateShipmentInput{
		WarehouseID:         warehouse.ID,
		ExpectedArrivalDate: arrival,
		Status:              models.ShipmentOrdered,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if shipment.WarehouseID != warehouse.ID || !shipment.ExpectedArrivalDate.Equal(arrival) {
		t.Fatalf("Create: %+v", shipment)
	}
}

func TestCreateShipmentMissingWarehouse(t *testing.T) {
	f := newShipmentFixture()

	_, err := f.svc.Create(context.Background(), CreateShipmentInput{
		WarehouseID: "missing",
		Status:      models.ShipmentOrdered,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if f.shipments.Count() != 0 {
		t.Fatal("store must not be mutated on a failed create")
	}
}

func TestUpdateShipmentLocked(t *testing.T) {
	f := newShipmentFixture()
	shipment := f.shipments.Add(models.Shipment{Status: models.ShipmentCompleted})

	status := models.ShipmentOrdered
	if _, err := f.svc.Update(context.Background(), shipment.ID, UpdateShipmentInput{Status: &status}); !apperr.IsLocked(err) {
		t.Fatalf("expected LockedError, got %v", err)
	}
}

func TestUpdateShipmentPatchesSuppliedFields(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	first := f.warehouses.Add(models.Warehouse{Name: "First"})
	second := f.warehouses.Add(models.Warehouse{Name: "Second"})
	arrival := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	shipment := f.shipments.Add(models.Shipment{
		WarehouseID:         first.ID,
		ExpectedArrivalDate: arrival,
		Status:              models.ShipmentOrdered,
	})

	updated, err := f.svc.Update(ctx, shipment.ID, UpdateShipmentInput{WarehouseID: &second.ID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.WarehouseID != second.ID {
		t.Fatalf("warehouse should be %s, got %s", second.ID, updated.WarehouseID)
	}
	if !updated.ExpectedArrivalDate.Equal(arrival) || updated.Status != models.ShipmentOrdered {
		t.Fatalf("omitted fields must stay untouched: %+v", updated)
	}
}

func TestUpdateShipmentMissingWarehouse(t *testing.T) {
	f := newShipmentFixture()
	shipment := f.shipments.Add(models.Shipment{Status: models.ShipmentOrdered})

	bad := "missing"
	_, err := f.svc.Update(context.Background(), shipment.ID, UpdateShipmentInput{WarehouseID: &bad})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateStatusLocked(t *testing.T) {
	f := newShipmentFixture()
	shipment := f.shipments.Add(models.Shipment{Status: models.ShipmentCompleted})

	// Even re-asserting COMPLETED is refused once the shipment is locked.
	if _, err := f.svc.UpdateStatus(context.Background(), shipment.ID, models.ShipmentCompleted); !apperr.IsLocked(err) {
		t.Fatalf("expected LockedError, got %v", err)
	}
}

func TestCompleteShipmentRollsUpInventory(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	warehouse := f.warehouses.Add(models.Warehouse{Name: "Central"})
	known := f.items.Add(models.Item{Name: "Widget A"})
	fresh := f.items.Add(models.Item{Name: "Widget B"})
	shipment := f.shipments.Add(models.Shipment{WarehouseID: warehouse.ID, Status: models.ShipmentInDelivery})

	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: known.ID, ExpectedQuantity: 10, ReceivedQuantity: 8})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: fresh.ID, ExpectedQuantity: 5, ReceivedQuantity: 5})

	f.inventories.Add(models.Inventory{WarehouseID: warehouse.ID, ItemID: known.ID, Quantity: 100})

	updated, err := f.svc.UpdateStatus(ctx, shipment.ID, models.ShipmentCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.ShipmentCompleted {
		t.Fatalf("status should be COMPLETED, got %s", updated.Status)
	}

	rows, err := f.inventories.FindAllByWarehouseID(ctx, warehouse.ID)
	if err != nil {
		t.Fatalf("FindAllByWarehouseID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 inventory rows, got %d", len(rows))
	}

	byItem := make(map[string]int, len(rows))
	for _, inv := range rows {
		byItem[inv.ItemID] = inv.Quantity
	}
	if byItem[known.ID] != 108 {
		t.Fatalf("existing row should be incremented to 108, got %d", byItem[known.ID])
	}
	if byItem[fresh.ID] != 5 {
		t.Fatalf("new item should get a fresh row with 5, got %d", byItem[fresh.ID])
	}
}

// Several line items for the same item must accumulate into one inventory
// row; no increment may be lost to a stale read.
func TestCompleteShipmentAccumulatesDuplicateItems(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	warehouse := f.warehouses.Add(models.Warehouse{Name: "Central"})
	stocked := f.items.Add(models.Item{Name: "Widget A"})
	fresh := f.items.Add(models.Item{Name: "Widget B"})
	shipment := f.shipments.Add(models.Shipment{WarehouseID: warehouse.ID, Status: models.ShipmentInDelivery})

	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: stocked.ID, ExpectedQuantity: 8, ReceivedQuantity: 8})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: stocked.ID, ExpectedQuantity: 3, ReceivedQuantity: 3})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: fresh.ID, ExpectedQuantity: 2, ReceivedQuantity: 2})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: fresh.ID, ExpectedQuantity: 5, ReceivedQuantity: 5})

	f.inventories.Add(models.Inventory{WarehouseID: warehouse.ID, ItemID: stocked.ID, Quantity: 100})

	if _, err := f.svc.UpdateStatus(ctx, shipment.ID, models.ShipmentCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	rows, err := f.inventories.FindAllByWarehouseID(ctx, warehouse.ID)
	if err != nil {
		t.Fatalf("FindAllByWarehouseID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per distinct item, got %d", len(rows))
	}

	byItem := make(map[string]int, len(rows))
	for _, inv := range rows {
		byItem[inv.ItemID] = inv.Quantity
	}
	if byItem[stocked.ID] != 111 {
		t.Fatalf("stocked item should total 111, got %d", byItem[stocked.ID])
	}
	if byItem[fresh.ID] != 7 {
		t.Fatalf("fresh item should total 7, got %d", byItem[fresh.ID])
	}
}

// Completion requires at least one line item; an empty shipment fails and
// stays in its previous status.
func TestCompleteShipmentWithoutLineItems(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	warehouse := f.warehouses.Add(models.Warehouse{Name: "Central"})
	shipment := f.shipments.Add(models.Shipment{WarehouseID: warehouse.ID, Status: models.ShipmentInDelivery})

	if _, err := f.svc.UpdateStatus(ctx, shipment.ID, models.ShipmentCompleted); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	stored, _ := f.shipments.FindByID(ctx, shipment.ID)
	if stored.Status != models.ShipmentInDelivery {
		t.Fatalf("failed completion must not change status, got %s", stored.Status)
	}
}

func TestDeleteShipmentCascades(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	warehouse := f.warehouses.Add(models.Warehouse{Name: "Central"})
	item := f.items.Add(models.Item{Name: "Widget A"})
	shipment := f.shipments.Add(models.Shipment{WarehouseID: warehouse.ID, Status: models.ShipmentOrdered})
	other := f.shipments.Add(models.Shipment{WarehouseID: warehouse.ID, Status: models.ShipmentOrdered})

	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: item.ID, ExpectedQuantity: 1})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: item.ID, ExpectedQuantity: 2})
	kept := f.lineItems.Add(models.ShipmentLineItem{ShipmentID: other.ID, ItemID: item.ID, ExpectedQuantity: 3})

	if err := f.svc.Delete(ctx, shipment.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got, _ := f.shipments.FindByID(ctx, shipment.ID); got != nil {
		t.Fatal("shipment should be gone")
	}
	if f.lineItems.Count() != 1 {
		t.Fatalf("only the other shipment's line item should survive, count %d", f.lineItems.Count())
	}
	if got, _ := f.lineItems.FindByID(ctx, kept.ID); got == nil {
		t.Fatal("unrelated line item must survive the cascade")
	}
}

func TestDeleteShipmentLocked(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	item := f.items.Add(models.Item{Name: "Widget A"})
	shipment := f.shipments.Add(models.Shipment{Status: models.ShipmentCompleted})
	f.lineItems.Add(models.ShipmentLineItem{ShipmentID: shipment.ID, ItemID: item.ID, ExpectedQuantity: 1})

	if err := f.svc.Delete(ctx, shipment.ID); !apperr.IsLocked(err) {
		t.Fatalf("expected LockedError, got %v", err)
	}
	if f.shipments.Count() != 1 || f.lineItems.Count() != 1 {
		t.Fatal("locked shipment and its line items must not be deleted")
	}
}

func TestListByShop(t *testing.T) {
	f := newShipmentFixture()
	ctx := context.Background()

	shop := f.shops.Add(models.Shop{Name: "Downtown"})
	mine := f.warehouses.Add(models.Warehouse{Name: "Mine", ShopID: &shop.ID})
	other := f.warehouses.Add(models.Warehouse{Name: "Other"})

	want := f.shipments.Add(models.Shipment{WarehouseID: mine.ID, Status: models.ShipmentOrdered})
	f.shipments.Add(models.Shipment{WarehouseID: other.ID, Status: models.ShipmentOrdered})

	got, err := f.svc.ListByShop(ctx, shop.ID)
	if err != nil {
		t.Fatalf("ListByShop: %v", err)
	}
	if len(got) != 1 || got[0].ID != want.ID {
		t.Fatalf("expected only the shop warehouse's shipment, got %+v", got)
	}
}

func TestListByShopMissingShop(t *testing.T) {
	f := newShipmentFixture()

	if _, err := f.svc.ListByShop(context.Background(), "missing"); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
