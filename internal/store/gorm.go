package store

import (
	"context"
	"errors"

	"warehouse-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStores bundles the gorm-backed implementations over one connection.
type GormStores struct {
	Warehouses  WarehouseStore
	Items       ItemStore
	Shops       ShopStore
	Shipments   ShipmentStore
	LineItems   LineItemStore
	Inventories InventoryStore
	Users       UserStore
}

func NewGormStores(db *gorm.DB) *GormStores {
	return &GormStores{
		Warehouses:  &gormWarehouseStore{db: db},
		Items:       &gormItemStore{db: db},
		Shops:       &gormShopStore{db: db},
		Shipments:   &gormShipmentStore{db: db},
		LineItems:   &gormLineItemStore{db: db},
		Inventories: &gormInventoryStore{db: db},
		Users:       &gormUserStore{db: db},
	}
}

func firstOrNil[T any](db *gorm.DB, out *T, id string) (*T, error) {
	err := db.First(out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

type gormWarehouseStore struct {
	db *gorm.DB
}

func (s *gormWarehouseStore) FindAll(ctx context.Context) ([]models.Warehouse, error) {
	var out []models.Warehouse
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *gormWarehouseStore) FindByID(ctx context.Context, id string) (*models.Warehouse, error) {
	return firstOrNil(s.db.WithContext(ctx), &models.Warehouse{}, id)
}

func (s *gormWarehouseStore) FindAllByShopID(ctx context.Context, shopID string) ([]models.Warehouse, error) {
	var out []models.Warehouse
	err := s.db.WithContext(ctx).Where("shop_id = ?", shopID).Find(&out).Error
	return out, err
}

func (s *gormWarehouseStore) Insert(ctx context.Context, w *models.Warehouse) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *gormWarehouseStore) Save(ctx context.Context, w *models.Warehouse) error {
	return s.db.WithContext(ctx).Save(w).Error
}

func (s *gormWarehouseStore) Delete(ctx context.Context, w *models.Warehouse) error {
	return s.db.WithContext(ctx).Delete(w).Error
}

type gormItemStore struct {
	db *gorm.DB
}

func (s *gormItemStore) FindAll(ctx context.Context) ([]models.Item, error) {
	var out []models.Item
	err := s.db.WithContext(ctx).Order("name asc").Find(&out).Error
	return out, err
}

func (s *gormItemStore) FindByID(ctx context.Context, id string) (*models.Item, error) {
	return firstOrNil(s.db.WithContext(ctx), &models.Item{}, id)
}

func (s *gormItemStore) Insert(ctx context.Context, i *models.Item) error {
	return s.db.WithContext(ctx).Create(i).Error
}

func (s *gormItemStore) Save(ctx context.Context, i *models.Item) error {
	return s.db.WithContext(ctx).Save(i).Error
}

func (s *gormItemStore) Delete(ctx context.Context, i *models.Item) error {
	return s.db.WithContext(ctx).Delete(i).Error
}

func (s *gormItemStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Item{}).Error
}

type gormShopStore struct {
	db *gorm.DB
}

func (s *gormShopStore) FindAll(ctx context.Context) ([]models.Shop, error) {
	var out []models.Shop
	err := s.db.WithContext(ctx).Order("name asc").Find(&out).Error
	return out, err
}

func (s *gormShopStore) FindByID(ctx context.Context, id string) (*models.Shop, error) {
	return firstOrNil(s.db.WithContext(ctx), &models.Shop{}, id)
}

func (s *gormShopStore) Insert(ctx context.Context, shop *models.Shop) error {
	return s.db.WithContext(ctx).Create(shop).Error
}

type gormShipmentStore struct {
	db *gorm.DB
}

func (s *gormShipmentStore) FindAll(ctx context.Context) ([]models.Shipment, error) {
	var out []models.Shipment
	err := s.db.WithContext(ctx).Preload("Warehouse").Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *gormShipmentStore) FindByID(ctx context.Context, id string) (*models.Shipment, error) {
	return firstOrNil(s.db.WithContext(ctx).Preload("Warehouse"), &models.Shipment{}, id)
}

func (s *gormShipmentStore) FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Shipment, error) {
	var out []models.Shipment
	err := s.db.WithContext(ctx).Preload("Warehouse").
		Where("warehouse_id = ?", warehouseID).Find(&out).Error
	return out, err
}

func (s *gormShipmentStore) FindAllByWarehouseIDs(ctx context.Context, warehouseIDs []string) ([]models.Shipment, error) {
	var out []models.Shipment
	if len(warehouseIDs) == 0 {
		return out, nil
	}
	err := s.db.WithContext(ctx).Preload("Warehouse").
		Where("warehouse_id IN ?", warehouseIDs).Find(&out).Error
	return out, err
}

func (s *gormShipmentStore) Insert(ctx context.Context, sh *models.Shipment) error {
	return s.db.WithContext(ctx).Create(sh).Error
}

func (s *gormShipmentStore) Save(ctx context.Context, sh *models.Shipment) error {
	return s.db.WithContext(ctx).Save(sh).Error
}

func (s *gormShipmentStore) Delete(ctx context.Context, sh *models.Shipment) error {
	return s.db.WithContext(ctx).Delete(sh).Error
}

type gormLineItemStore struct {
	db *gorm.DB
}

func (s *gormLineItemStore) FindByID(ctx context.Context, id string) (*models.ShipmentLineItem, error) {
	return firstOrNil(s.db.WithContext(ctx).Preload("Shipment").Preload("Item"), &models.ShipmentLineItem{}, id)
}

func (s *gormLineItemStore) FindAllByShipmentID(ctx context.Context, shipmentID string) ([]models.ShipmentLineItem, error) {
	var out []models.ShipmentLineItem
	err := s.db.WithContext(ctx).Preload("Shipment").Preload("Item").
		Where("shipment_id = ?", shipmentID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

func (s *gormLineItemStore) Insert(ctx context.Context, li *models.ShipmentLineItem) error {
	return s.db.WithContext(ctx).Create(li).Error
}

func (s *gormLineItemStore) Save(ctx context.Context, li *models.ShipmentLineItem) error {
	return s.db.WithContext(ctx).Save(li).Error
}

func (s *gormLineItemStore) Delete(ctx context.Context, li *models.ShipmentLineItem) error {
	return s.db.WithContext(ctx).Delete(li).Error
}

func (s *gormLineItemStore) DeleteAllByShipmentID(ctx context.Context, shipmentID string) error {
	return s.db.WithContext(ctx).Where("shipment_id = ?", shipmentID).
		Delete(&models.ShipmentLineItem{}).Error
}

type gormInventoryStore struct {
	db *gorm.DB
}

func (s *gormInventoryStore) FindAll(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	err := s.db.WithContext(ctx).Preload("Warehouse").Preload("Item").
		Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *gormInventoryStore) FindByID(ctx context.Context, id string) (*models.Inventory, error) {
	return firstOrNil(s.db.WithContext(ctx).Preload("Warehouse").Preload("Item"), &models.Inventory{}, id)
}

func (s *gormInventoryStore) FindAllByItemID(ctx context.Context, itemID string) ([]models.Inventory, error) {
	var out []models.Inventory
	err := s.db.WithContext(ctx).Preload("Warehouse").Preload("Item").
		Where("item_id = ?", itemID).Find(&out).Error
	return out, err
}

func (s *gormInventoryStore) FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Inventory, error) {
	var out []models.Inventory
	err := s.db.WithContext(ctx).Preload("Warehouse").Preload("Item").
		Where("warehouse_id = ?", warehouseID).Find(&out).Error
	return out, err
}

func (s *gormInventoryStore) Insert(ctx context.Context, inv *models.Inventory) error {
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *gormInventoryStore) Save(ctx context.Context, inv *models.Inventory) error {
	return s.db.WithContext(ctx).Save(inv).Error
}

func (s *gormInventoryStore) SaveAll(ctx context.Context, invs []models.Inventory) error {
	if len(invs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&invs).Error
}

func (s *gormInventoryStore) Delete(ctx context.Context, inv *models.Inventory) error {
	return s.db.WithContext(ctx).Delete(inv).Error
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return firstOrNil(s.db.WithContext(ctx), &models.User{}, id)
}

func (s *gormUserStore) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (s *gormUserStore) Insert(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}
