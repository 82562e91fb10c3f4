package shop

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	shops store.ShopStore
	log   *zap.SugaredLogger
}

func NewService(shops store.ShopStore, log *zap.SugaredLogger) *Service {
	return &Service{shops: shops, log: log}
}

func (s *Service) List(ctx context.Context) ([]models.Shop, error) {
	return s.shops.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Shop, error) {
	shop, err := s.shops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.NotFound("shop", id)
	}
	return shop, nil
}

func (s *Service) Create(ctx context.Context, name string) (*models.Shop, error) {
	shop := models.Shop{Name: name}
	if err := s.shops.Insert(ctx, &shop); err != nil {
		return nil, err
	}
	s.log.Infow("shop created", "id", shop.ID, "name", shop.Name)
	return &shop, nil
}
