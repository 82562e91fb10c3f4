package models

// Warehouse: storage location shipments are delivered to.
type Warehouse struct {
	Base
	Name        string   `gorm:"size:100;not null;uniqueIndex"`
	Lat         *float64
	Lng         *float64
	Street      string `gorm:"size:100"`
	Number      string `gorm:"size:20"`
	City        string `gorm:"size:100"`
	PostalCode  string `gorm:"size:20"`
	State       string `gorm:"size:100"`
	Country     string `gorm:"size:100"`
	MaxCapacity int    `gorm:"not null"`
	ShopID      *string `gorm:"size:36;index"`
	Shop        *Shop
}
