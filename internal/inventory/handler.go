package inventory

import (
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateInventoryRequest struct {
	WarehouseID string `json:"warehouse_id"`
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
}

type UpdateInventoryRequest struct {
	WarehouseID *string `json:"warehouse_id"`
	ItemID      *string `json:"item_id"`
	Quantity    *int    `json:"quantity"`
}

type InventoryResponse struct {
	ID            string `json:"id"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	ItemID        string `json:"item_id"`
	ItemName      string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toResponse(inv *models.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:            inv.ID,
		WarehouseID:   inv.WarehouseID,
		WarehouseName: inv.Warehouse.Name,
		ItemID:        inv.ItemID,
		ItemName:      inv.Item.Name,
		Quantity:      inv.Quantity,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponseList(invs []models.Inventory) []InventoryResponse {
	resp := make([]InventoryResponse, 0, len(invs))
	for i := range invs {
		resp = append(resp, toResponse(&invs[i]))
	}
	return resp
}

// GET /api/inventory
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invs, err := svc.List(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(toResponseList(invs))
	}
}

// GET /api/inventory/:id
func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponse(inv))
	}
}

// GET /api/items/:id/inventory
func ListByItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invs, err := svc.ListByItem(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponseList(invs))
	}
}

// GET /api/warehouses/:id/inventory
func ListByWarehouseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invs, err := svc.ListByWarehouse(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponseList(invs))
	}
}

// POST /api/inventory
func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.WarehouseID == "" || body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "warehouse_id and item_id are required")
		}
		if body.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
		}

		inv, err := svc.Create(c.Context(), CreateInput{
			WarehouseID: body.WarehouseID,
			ItemID:      body.ItemID,
			Quantity:    body.Quantity,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(inv))
	}
}

// PUT /api/inventory/:id
func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Quantity != nil && *body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must not be negative")
		}

		inv, err := svc.Update(c.Context(), c.Params("id"), UpdateInput{
			WarehouseID: body.WarehouseID,
			ItemID:      body.ItemID,
			Quantity:    body.Quantity,
		})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(inv))
	}
}

// DELETE /api/inventory/:id
func DeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}
