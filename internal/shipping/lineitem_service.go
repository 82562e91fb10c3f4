package shipping

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

// LineItemService owns create/update/delete/list of shipment line items and
// enforces the referential-integrity and write-locking rules around them.
type LineItemService struct {
	lineItems store.LineItemStore
	resolver  *refs.Resolver
	log       *zap.SugaredLogger
}

func NewLineItemService(lineItems store.LineItemStore, resolver *refs.Resolver, log *zap.SugaredLogger) *LineItemService {
	return &LineItemService{lineItems: lineItems, resolver: resolver, log: log}
}

type CreateLineItemInput struct {
	ShipmentID       string `json:"shipmentId"`
	ItemID           string `json:"itemId"`
	ExpectedQuantity int    `json:"expectedQuantity"`
	ReceivedQuantity int    `json:"receivedQuantity"`
}

// ListByShipment returns the shipment's line items in insertion order. An
// empty result is a not-found, whether the shipment is unknown or merely has
// no line items; the two cases are deliberately not distinguished.
func (s *LineItemService) ListByShipment(ctx context.Context, shipmentID string) ([]models.ShipmentLineItem, error) {
	items, err := s.lineItems.FindAllByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("line items for shipment", shipmentID)
	}
	return items, nil
}

// Create validates both references, shipment first, then inserts. There is no
// lock check here: a completed shipment still accepts new line items.
func (s *LineItemService) Create(ctx context.Context, in CreateLineItemInput) (*models.ShipmentLineItem, error) {
	shipment, err := s.resolver.Shipment(ctx, in.ShipmentID)
	if err != nil {
		return nil, err
	}

	item, err := s.resolver.Item(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	lineItem := models.ShipmentLineItem{
		ShipmentID:       shipment.ID,
		Shipment:         *shipment,
		ItemID:           item.ID,
		Item:             *item,
		ExpectedQuantity: in.ExpectedQuantity,
		ReceivedQuantity: in.ReceivedQuantity,
	}

	if err := s.lineItems.Insert(ctx, &lineItem); err != nil {
		return nil, err
	}

	s.log.Infow("line item created", "id", lineItem.ID, "shipment_id", shipment.ID, "item_id", item.ID)
	return &lineItem, nil
}

// Update runs its guards in a fixed order: existence of the line item, then
// the lock gate on the parent shipment, then re-resolution of whichever
// references the update supplies (shipment before item). Each guard
// short-circuits with its own error.
func (s *LineItemService) Update(ctx context.Context, id string, in UpdateLineItemInput) (*models.ShipmentLineItem, error) {
	existing, err := s.lineItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("shipment line item", id)
	}

	if err := checkUnlocked(&existing.Shipment); err != nil {
		return nil, err
	}

	var shipment *models.Shipment
	if in.ShipmentID != nil {
		if shipment, err = s.resolver.Shipment(ctx, *in.ShipmentID); err != nil {
			return nil, err
		}
	}

	var item *models.Item
	if in.ItemID != nil {
		if item, err = s.resolver.Item(ctx, *in.ItemID); err != nil {
			return nil, err
		}
	}

	merged := mergeLineItem(existing, in, shipment, item)
	if err := s.lineItems.Save(ctx, &merged); err != nil {
		return nil, err
	}

	s.log.Infow("line item updated", "id", merged.ID)
	return &merged, nil
}

// Delete removes the line item after the same existence and lock guards as
// Update. A missing id always reports not-found, never locked.
func (s *LineItemService) Delete(ctx context.Context, id string) error {
	existing, err := s.lineItems.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("shipment line item", id)
	}

	if err := checkUnlocked(&existing.Shipment); err != nil {
		return err
	}

	if err := s.lineItems.Delete(ctx, existing); err != nil {
		return err
	}

	s.log.Infow("line item deleted", "id", id)
	return nil
}
