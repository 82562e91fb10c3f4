package catalog

import (
	"context"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	items store.ItemStore
	log   *zap.SugaredLogger
}

func NewService(items store.ItemStore, log *zap.SugaredLogger) *Service {
	return &Service{items: items, log: log}
}

type CreateItemInput struct {
	SKU  string
	Name string
}

type UpdateItemInput struct {
	SKU  *string
	Name *string
}

func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	return s.items.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item", id)
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	item := models.Item{SKU: in.SKU, Name: in.Name}
	if err := s.items.Insert(ctx, &item); err != nil {
		return nil, err
	}
	s.log.Infow("item created", "id", item.ID, "sku", item.SKU)
	return &item, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateItemInput) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, item); err != nil {
		return err
	}
	s.log.Infow("item deleted", "id", id)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	return s.items.DeleteAll(ctx)
}
