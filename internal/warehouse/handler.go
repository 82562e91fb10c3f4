package warehouse

import (
	"strings"
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateWarehouseRequest struct {
	Name        string   `json:"name"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Street      string   `json:"street"`
	Number      string   `json:"number"`
	City        string   `json:"city"`
	PostalCode  string   `json:"postal_code"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	MaxCapacity int      `json:"max_capacity"`
	ShopID      *string  `json:"shop_id"`
}

type UpdateWarehouseRequest struct {
	Name        *string  `json:"name"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Street      *string  `json:"street"`
	Number      *string  `json:"number"`
	City        *string  `json:"city"`
	PostalCode  *string  `json:"postal_code"`
	State       *string  `json:"state"`
	Country     *string  `json:"country"`
	MaxCapacity *int     `json:"max_capacity"`
	ShopID      *string  `json:"shop_id"`
}

type WarehouseResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Street      string   `json:"street"`
	Number      string   `json:"number"`
	City        string   `json:"city"`
	PostalCode  string   `json:"postal_code"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	MaxCapacity int      `json:"max_capacity"`
	ShopID      *string  `json:"shop_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toResponse(w *models.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Lat:         w.Lat,
		Lng:         w.Lng,
		Street:      w.Street,
		Number:      w.Number,
		City:        w.City,
		PostalCode:  w.PostalCode,
		State:       w.State,
		Country:     w.Country,
		MaxCapacity: w.MaxCapacity,
		ShopID:      w.ShopID,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/warehouses
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		warehouses, err := svc.List(c.Context())
		if err != nil {
			return err
		}
		resp := make([]WarehouseResponse, 0, len(warehouses))
		for i := range warehouses {
			resp = append(resp, toResponse(&warehouses[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/warehouses/:id
func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponse(w))
	}
}

// POST /api/warehouses
func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}
		if body.MaxCapacity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "max_capacity must be at least 1")
		}

		w, err := svc.Create(c.Context(), CreateInput{
			Name:        body.Name,
			Lat:         body.Lat,
			Lng:         body.Lng,
			Street:      body.Street,
			Number:      body.Number,
			City:        body.City,
			PostalCode:  body.PostalCode,
			State:       body.State,
			Country:     body.Country,
			MaxCapacity: body.MaxCapacity,
			ShopID:      body.ShopID,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(w))
	}
}

// PUT /api/warehouses/:id
func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.MaxCapacity != nil && *body.MaxCapacity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "max_capacity must be at least 1")
		}

		w, err := svc.Update(c.Context(), c.Params("id"), UpdateInput{
			Name:        body.Name,
			Lat:         body.Lat,
			Lng:         body.Lng,
			Street:      body.Street,
			Number:      body.Number,
			City:        body.City,
			PostalCode:  body.PostalCode,
			State:       body.State,
			Country:     body.Country,
			MaxCapacity: body.MaxCapacity,
			ShopID:      body.ShopID,
		})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(w))
	}
}

// DELETE /api/warehouses/:id
func DeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}
