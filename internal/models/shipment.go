package models

import "time"

type ShipmentStatus string

const (
	ShipmentOrdered    ShipmentStatus = "ORDERED"
	ShipmentProcessed  ShipmentStatus = "PROCESSED"
	ShipmentInDelivery ShipmentStatus = "IN_DELIVERY"
	// ShipmentCompleted is terminal: line items of a completed shipment are
	// locked against update and delete.
	ShipmentCompleted ShipmentStatus = "COMPLETED"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentOrdered, ShipmentProcessed, ShipmentInDelivery, ShipmentCompleted:
		return true
	}
	return false
}

// Shipment: an inbound delivery headed for a warehouse.
type Shipment struct {
	Base
	WarehouseID         string `gorm:"size:36;index;not null"`
	Warehouse           Warehouse
	ExpectedArrivalDate time.Time      `gorm:"not null"`
	Status              ShipmentStatus `gorm:"size:20;not null"`
}

// ShipmentLineItem: expected vs. received quantity of one item within one shipment.
type ShipmentLineItem struct {
	Base
	ShipmentID       string `gorm:"size:36;index;not null"`
	Shipment         Shipment
	ItemID           string `gorm:"size:36;index;not null"`
	Item             Item
	ExpectedQuantity int `gorm:"not null"`
	ReceivedQuantity int `gorm:"not null"`
}
