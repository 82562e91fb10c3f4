// Package refs resolves raw foreign-key ids to live entities. Every resolve
// is a fresh store lookup; results are never cached across requests.
package refs

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/store"
)

type Resolver struct {
	warehouses store.WarehouseStore
	items      store.ItemStore
	shipments  store.ShipmentStore
	shops      store.ShopStore
}

func NewResolver(warehouses store.WarehouseStore, items store.ItemStore, shipments store.ShipmentStore, shops store.ShopStore) *Resolver {
	return &Resolver{
		warehouses: warehouses,
		items:      items,
		shipments:  shipments,
		shops:      shops,
	}
}

func (r *Resolver) Warehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	w, err := r.warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperr.NotFound("warehouse", id)
	}
	return w, nil
}

func (r *Resolver) Item(ctx context.Context, id string) (*models.Item, error) {
	i, err := r.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, apperr.NotFound("item", id)
	}
	return i, nil
}

func (r *Resolver) Shipment(ctx context.Context, id string) (*models.Shipment, error) {
	s, err := r.shipments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.NotFound("shipment", id)
	}
	return s, nil
}

func (r *Resolver) Shop(ctx context.Context, id string) (*models.Shop, error) {
	s, err := r.shops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.NotFound("shop", id)
	}
	return s, nil
}
