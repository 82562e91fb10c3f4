package shipping

import "warehouse-backend/internal/models"

// UpdateLineItemInput is a partial update: nil fields keep the current value.
// A nil reference field means "keep the current reference", never "clear it".
type UpdateLineItemInput struct {
	ShipmentID       *string `json:"shipmentId"`
	ItemID           *string `json:"itemId"`
	ExpectedQuantity *int    `json:"expectedQuantity"`
	ReceivedQuantity *int    `json:"receivedQuantity"`
}

// mergeLineItem applies the update onto a copy of the existing line item.
// shipment and item are the already-resolved replacements, nil when the
// update did not supply them. The id always comes from existing.
func mergeLineItem(existing *models.ShipmentLineItem, in UpdateLineItemInput, shipment *models.Shipment, item *models.Item) models.ShipmentLineItem {
	merged := *existing

	if shipment != nil {
		merged.ShipmentID = shipment.ID
		merged.Shipment = *shipment
	}
	if item != nil {
		merged.ItemID = item.ID
		merged.Item = *item
	}
	if in.ExpectedQuantity != nil {
		merged.ExpectedQuantity = *in.ExpectedQuantity
	}
	if in.ReceivedQuantity != nil {
		merged.ReceivedQuantity = *in.ReceivedQuantity
	}

	return merged
}
