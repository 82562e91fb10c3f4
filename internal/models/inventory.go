package models

// Inventory: current stock level of one item in one warehouse.
type Inventory struct {
	Base
	WarehouseID string `gorm:"size:36;index;not null"`
	Warehouse   Warehouse
	ItemID      string `gorm:"size:36;index;not null"`
	Item        Item
	Quantity    int `gorm:"not null"`
}
