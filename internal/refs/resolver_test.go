package refs

import (
	"context"
	"errors"
	"testing"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/store/storetest"
)

func newResolver() (*Resolver, *storetest.Warehouses, *storetest.Items, *storetest.Shipments, *storetest.Shops) {
	warehouses := storetest.NewWarehouses()
	items := storetest.NewItems()
	shipments := storetest.NewShipments()
	shops := storetest.NewShops()
	return NewResolver(warehouses, items, shipments, shops), warehouses, items, shipments, shops
}

func TestResolveKnownIDs(t *testing.T) {
	r, warehouses, items, shipments, shops := newResolver()
	ctx := context.Background()

	w := warehouses.Add(models.Warehouse{Name: "Central"})
	i := items.Add(models.Item{Name: "Widget A"})
	s := shipments.Add(models.Shipment{Status: models.ShipmentOrdered})
	sh := shops.Add(models.Shop{Name: "Downtown"})

	if got, err := r.Warehouse(ctx, w.ID); err != nil || got.ID != w.ID {
		t.Fatalf("Warehouse: %v / %+v", err, got)
	}
	if got, err := r.Item(ctx, i.ID); err != nil || got.ID != i.ID {
		t.Fatalf("Item: %v / %+v", err, got)
	}
	if got, err := r.Shipment(ctx, s.ID); err != nil || got.ID != s.ID {
		t.Fatalf("Shipment: %v / %+v", err, got)
	}
	if got, err := r.Shop(ctx, sh.ID); err != nil || got.ID != sh.ID {
		t.Fatalf("Shop: %v / %+v", err, got)
	}
}

// Each resolve reports its own kind in the error so the caller can tell which
// reference was dangling.
func TestResolveUnknownIDs(t *testing.T) {
	r, _, _, _, _ := newResolver()
	ctx := context.Background()

	cases := []struct {
		kind    string
		resolve func() error
	}{
		{"warehouse", func() error { _, err := r.Warehouse(ctx, "ghost"); return err }},
		{"item", func() error { _, err := r.Item(ctx, "ghost"); return err }},
		{"shipment", func() error { _, err := r.Shipment(ctx, "ghost"); return err }},
		{"shop", func() error { _, err := r.Shop(ctx, "ghost"); return err }},
	}

	for _, tc := range cases {
		err := tc.resolve()
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("%s: expected NotFoundError, got %v", tc.kind, err)
		}
		if nf.Kind != tc.kind || nf.ID != "ghost" {
			t.Fatalf("%s: wrong error target: %+v", tc.kind, nf)
		}
	}
}

func TestResolveSeesLatestState(t *testing.T) {
	r, _, _, shipments, _ := newResolver()
	ctx := context.Background()

	s := shipments.Add(models.Shipment{Status: models.ShipmentOrdered})
	s.Status = models.ShipmentCompleted
	shipments.Add(s)

	got, err := r.Shipment(ctx, s.ID)
	if err != nil {
		t.Fatalf("Shipment: %v", err)
	}
	if got.Status != models.ShipmentCompleted {
		t.Fatalf("resolver must return the stored state, got %s", got.Status)
	}
}
