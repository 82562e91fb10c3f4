package models

// Item: catalog entry referenced by inventory and shipment line items.
type Item struct {
	Base
	SKU  string `gorm:"size:100;uniqueIndex"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}
