package shop

import (
	"strings"
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateShopRequest struct {
	Name string `json:"name"`
}

type ShopResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toResponse(s *models.Shop) ShopResponse {
	return ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/shops
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shops, err := svc.List(c.Context())
		if err != nil {
			return err
		}
		resp := make([]ShopResponse, 0, len(shops))
		for i := range shops {
			resp = append(resp, toResponse(&shops[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/shops/:id
func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toResponse(s))
	}
}

// POST /api/shops
func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if len(body.Name) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "name must be at least 2 characters")
		}

		s, err := svc.Create(c.Context(), body.Name)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(s))
	}
}
