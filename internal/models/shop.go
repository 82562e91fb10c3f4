package models

type Shop struct {
	Base
	Name string `gorm:"size:100;not null;uniqueIndex"`

	Warehouses []Warehouse
}
