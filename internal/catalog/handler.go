package catalog

import (
	"strings"
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateItemRequest struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

type UpdateItemRequest struct {
	SKU  *string `json:"sku"`
	Name *string `json:"name"`
}

type ItemResponse struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		SKU:       item.SKU,
		Name:      item.Name,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/items
func ListItemsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.Context())
		if err != nil {
			return err
		}
		resp := make([]ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toResponse(&items[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/items/:id
func GetItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponse(item))
	}
}

// POST /api/items
func CreateItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.SKU = strings.TrimSpace(body.SKU)
		if len(body.Name) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "name must be at least 2 characters")
		}

		item, err := svc.Create(c.Context(), CreateItemInput{SKU: body.SKU, Name: body.Name})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(item))
	}
}

// PUT /api/items/:id
func UpdateItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Name != nil && len(strings.TrimSpace(*body.Name)) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "name must be at least 2 characters")
		}

		item, err := svc.Update(c.Context(), c.Params("id"), UpdateItemInput{SKU: body.SKU, Name: body.Name})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(item))
	}
}

// DELETE /api/items/:id
func DeleteItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}

// DELETE /api/items
func DeleteAllItemsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteAll(c.Context()); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}
