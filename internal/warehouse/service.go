package warehouse

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/refs"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	warehouses store.WarehouseStore
	resolver   *refs.Resolver
	log        *zap.SugaredLogger
}

func NewService(warehouses store.WarehouseStore, resolver *refs.Resolver, log *zap.SugaredLogger) *Service {
	return &Service{warehouses: warehouses, resolver: resolver, log: log}
}

type CreateInput struct {
	Name        string
	Lat         *float64
	Lng         *float64
	Street      string
	Number      string
	City        string
	PostalCode  string
	State       string
	Country     string
	MaxCapacity int
	ShopID      *string
}

type UpdateInput struct {
	Name        *string
	Lat         *float64
	Lng         *float64
	Street      *string
	Number      *string
	City        *string
	PostalCode  *string
	State       *string
	Country     *string
	MaxCapacity *int
	ShopID      *string
}

func (s *Service) List(ctx context.Context) ([]models.Warehouse, error) {
	return s.warehouses.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Warehouse, error) {
	w, err := s.warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperr.NotFound("warehouse", id)
	}
	return w, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Warehouse, error) {
	if in.ShopID != nil {
		if _, err := s.resolver.Shop(ctx, *in.ShopID); err != nil {
			return nil, err
		}
	}

	w := models.Warehouse{
		Name:        in.Name,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Street:      in.Street,
		Number:      in.Number,
		City:        in.City,
		PostalCode:  in.PostalCode,
		State:       in.State,
		Country:     in.Country,
		MaxCapacity: in.MaxCapacity,
		ShopID:      in.ShopID,
	}
	if err := s.warehouses.Insert(ctx, &w); err != nil {
		return nil, err
	}

	s.log.Infow("warehouse created", "id", w.ID, "name", w.Name)
	return &w, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Warehouse, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ShopID != nil {
		if _, err := s.resolver.Shop(ctx, *in.ShopID); err != nil {
			return nil, err
		}
		w.ShopID = in.ShopID
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Lat != nil {
		w.Lat = in.Lat
	}
	if in.Lng != nil {
		w.Lng = in.Lng
	}
	if in.Street != nil {
		w.Street = *in.Street
	}
	if in.Number != nil {
		w.Number = *in.Number
	}
	if in.City != nil {
		w.City = *in.City
	}
	if in.PostalCode != nil {
		w.PostalCode = *in.PostalCode
	}
	if in.State != nil {
		w.State = *in.State
	}
	if in.Country != nil {
		w.Country = *in.Country
	}
	if in.MaxCapacity != nil {
		w.MaxCapacity = *in.MaxCapacity
	}

	if err := s.warehouses.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	w, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.warehouses.Delete(ctx, w); err != nil {
		return err
	}
	s.log.Infow("warehouse deleted", "id", id)
	return nil
}
