// Package storetest provides map-backed fakes of the store interfaces for
// service tests. Lookups return copies; FindAll-style methods keep insertion
// order, matching the created_at ordering of the gorm stores.
package storetest

import (
	"context"
	"sync"

	"warehouse-backend/internal/models"

	"github.com/google/uuid"
)

type Warehouses struct {
	mu    sync.Mutex
	rows  map[string]models.Warehouse
	order []string
}

func NewWarehouses() *Warehouses {
	return &Warehouses{rows: make(map[string]models.Warehouse)}
}

func (f *Warehouses) Add(w models.Warehouse) models.Warehouse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if _, ok := f.rows[w.ID]; !ok {
		f.order = append(f.order, w.ID)
	}
	f.rows[w.ID] = w
	return w
}

func (f *Warehouses) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *Warehouses) FindAll(ctx context.Context) ([]models.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Warehouse, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *Warehouses) FindByID(ctx context.Context, id string) (*models.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f *Warehouses) FindAllByShopID(ctx context.Context, shopID string) ([]models.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Warehouse
	for _, id := range f.order {
		w := f.rows[id]
		if w.ShopID != nil && *w.ShopID == shopID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *Warehouses) Insert(ctx context.Context, w *models.Warehouse) error {
	added := f.Add(*w)
	w.ID = added.ID
	return nil
}

func (f *Warehouses) Save(ctx context.Context, w *models.Warehouse) error {
	f.Add(*w)
	return nil
}

func (f *Warehouses) Delete(ctx context.Context, w *models.Warehouse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, w.ID)
	for i, id := range f.order {
		if id == w.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type Items struct {
	mu    sync.Mutex
	rows  map[string]models.Item
	order []string
}

func NewItems() *Items {
	return &Items{rows: make(map[string]models.Item)}
}

func (f *Items) Add(i models.Item) models.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if _, ok := f.rows[i.ID]; !ok {
		f.order = append(f.order, i.ID)
	}
	f.rows[i.ID] = i
	return i
}

func (f *Items) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *Items) FindAll(ctx context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Item, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *Items) FindByID(ctx context.Context, id string) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (f *Items) Insert(ctx context.Context, i *models.Item) error {
	added := f.Add(*i)
	i.ID = added.ID
	return nil
}

func (f *Items) Save(ctx context.Context, i *models.Item) error {
	f.Add(*i)
	return nil
}

func (f *Items) Delete(ctx context.Context, i *models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, i.ID)
	for idx, id := range f.order {
		if id == i.ID {
			f.order = append(f.order[:idx], f.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (f *Items) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = make(map[string]models.Item)
	f.order = nil
	return nil
}

type Shops struct {
	mu    sync.Mutex
	rows  map[string]models.Shop
	order []string
}

func NewShops() *Shops {
	return &Shops{rows: make(map[string]models.Shop)}
}

func (f *Shops) Add(s models.Shop) models.Shop {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, ok := f.rows[s.ID]; !ok {
		f.order = append(f.order, s.ID)
	}
	f.rows[s.ID] = s
	return s
}

func (f *Shops) FindAll(ctx context.Context) ([]models.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Shop, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *Shops) FindByID(ctx context.Context, id string) (*models.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *Shops) Insert(ctx context.Context, s *models.Shop) error {
	added := f.Add(*s)
	s.ID = added.ID
	return nil
}

type Shipments struct {
	mu    sync.Mutex
	rows  map[string]models.Shipment
	order []string
}

func NewShipments() *Shipments {
	return &Shipments{rows: make(map[string]models.Shipment)}
}

func (f *Shipments) Add(s models.Shipment) models.Shipment {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, ok := f.rows[s.ID]; !ok {
		f.order = append(f.order, s.ID)
	}
	f.rows[s.ID] = s
	return s
}

func (f *Shipments) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *Shipments) FindAll(ctx context.Context) ([]models.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Shipment, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *Shipments) FindByID(ctx context.Context, id string) (*models.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *Shipments) FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Shipment, error) {
	return f.FindAllByWarehouseIDs(ctx, []string{warehouseID})
}

func (f *Shipments) FindAllByWarehouseIDs(ctx context.Context, warehouseIDs []string) ([]models.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Shipment
	for _, id := range f.order {
		s := f.rows[id]
		for _, wid := range warehouseIDs {
			if s.WarehouseID == wid {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *Shipments) Insert(ctx context.Context, s *models.Shipment) error {
	added := f.Add(*s)
	s.ID = added.ID
	return nil
}

func (f *Shipments) Save(ctx context.Context, s *models.Shipment) error {
	f.Add(*s)
	return nil
}

func (f *Shipments) Delete(ctx context.Context, s *models.Shipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, s.ID)
	for i, id := range f.order {
		if id == s.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// LineItems refreshes the Shipment and Item associations from the linked
// fakes on every read, the way the gorm store preloads them.
type LineItems struct {
	mu    sync.Mutex
	rows  map[string]models.ShipmentLineItem
	order []string

	Shipments *Shipments
	Items     *Items
}

func NewLineItems(shipments *Shipments, items *Items) *LineItems {
	return &LineItems{
		rows:      make(map[string]models.ShipmentLineItem),
		Shipments: shipments,
		Items:     items,
	}
}

func (f *LineItems) Add(li models.ShipmentLineItem) models.ShipmentLineItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	if _, ok := f.rows[li.ID]; !ok {
		f.order = append(f.order, li.ID)
	}
	f.rows[li.ID] = li
	return li
}

func (f *LineItems) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *LineItems) load(li models.ShipmentLineItem) models.ShipmentLineItem {
	if f.Shipments != nil {
		if s, _ := f.Shipments.FindByID(context.Background(), li.ShipmentID); s != nil {
			li.Shipment = *s
		}
	}
	if f.Items != nil {
		if i, _ := f.Items.FindByID(context.Background(), li.ItemID); i != nil {
			li.Item = *i
		}
	}
	return li
}

func (f *LineItems) FindByID(ctx context.Context, id string) (*models.ShipmentLineItem, error) {
	f.mu.Lock()
	li, ok := f.rows[id]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}
	li = f.load(li)
	return &li, nil
}

func (f *LineItems) FindAllByShipmentID(ctx context.Context, shipmentID string) ([]models.ShipmentLineItem, error) {
	f.mu.Lock()
	var rows []models.ShipmentLineItem
	for _, id := range f.order {
		if f.rows[id].ShipmentID == shipmentID {
			rows = append(rows, f.rows[id])
		}
	}
	f.mu.Unlock()

	for i := range rows {
		rows[i] = f.load(rows[i])
	}
	return rows, nil
}

func (f *LineItems) Insert(ctx context.Context, li *models.ShipmentLineItem) error {
	added := f.Add(*li)
	li.ID = added.ID
	return nil
}

func (f *LineItems) Save(ctx context.Context, li *models.ShipmentLineItem) error {
	f.Add(*li)
	return nil
}

func (f *LineItems) Delete(ctx context.Context, li *models.ShipmentLineItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, li.ID)
	for i, id := range f.order {
		if id == li.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *LineItems) DeleteAllByShipmentID(ctx context.Context, shipmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.order[:0]
	for _, id := range f.order {
		if f.rows[id].ShipmentID == shipmentID {
			delete(f.rows, id)
			continue
		}
		kept = append(kept, id)
	}
	f.order = kept
	return nil
}

type Inventories struct {
	mu    sync.Mutex
	rows  map[string]models.Inventory
	order []string
}

func NewInventories() *Inventories {
	return &Inventories{rows: make(map[string]models.Inventory)}
}

func (f *Inventories) Add(inv models.Inventory) models.Inventory {
	f.mu.Lock()
	defer f.mu.Unlock()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if _, ok := f.rows[inv.ID]; !ok {
		f.order = append(f.order, inv.ID)
	}
	f.rows[inv.ID] = inv
	return inv
}

func (f *Inventories) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *Inventories) FindAll(ctx context.Context) ([]models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Inventory, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *Inventories) FindByID(ctx context.Context, id string) (*models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (f *Inventories) FindAllByItemID(ctx context.Context, itemID string) ([]models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Inventory
	for _, id := range f.order {
		if f.rows[id].ItemID == itemID {
			out = append(out, f.rows[id])
		}
	}
	return out, nil
}

func (f *Inventories) FindAllByWarehouseID(ctx context.Context, warehouseID string) ([]models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Inventory
	for _, id := range f.order {
		if f.rows[id].WarehouseID == warehouseID {
			out = append(out, f.rows[id])
		}
	}
	return out, nil
}

func (f *Inventories) Insert(ctx context.Context, inv *models.Inventory) error {
	added := f.Add(*inv)
	inv.ID = added.ID
	return nil
}

func (f *Inventories) Save(ctx context.Context, inv *models.Inventory) error {
	f.Add(*inv)
	return nil
}

func (f *Inventories) SaveAll(ctx context.Context, invs []models.Inventory) error {
	for i := range invs {
		f.Add(invs[i])
	}
	return nil
}

func (f *Inventories) Delete(ctx context.Context, inv *models.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, inv.ID)
	for i, id := range f.order {
		if id == inv.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type Users struct {
	mu   sync.Mutex
	rows map[string]models.User
}

func NewUsers() *Users {
	return &Users{rows: make(map[string]models.User)}
}

func (f *Users) Add(u models.User) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.rows[u.ID] = u
	return u
}

func (f *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *Users) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.rows {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *Users) Insert(ctx context.Context, u *models.User) error {
	added := f.Add(*u)
	u.ID = added.ID
	return nil
}
