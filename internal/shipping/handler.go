package shipping

import (
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateShipmentRequest struct {
	WarehouseID         string `json:"warehouse_id"`
	ExpectedArrivalDate string `json:"expected_arrival_date"` // "2006-01-02"
	Status              string `json:"status"`
}

type UpdateShipmentRequest struct {
	WarehouseID         *string `json:"warehouse_id"`
	ExpectedArrivalDate *string `json:"expected_arrival_date"`
	Status              *string `json:"status"`
}

type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

type ShipmentResponse struct {
	ID                  string                `json:"id"`
	WarehouseID         string                `json:"warehouse_id"`
	WarehouseName       string                `json:"warehouse_name"`
	ExpectedArrivalDate string                `json:"expected_arrival_date"`
	Status              models.ShipmentStatus `json:"status"`
	CreatedAt           string                `json:"created_at"`
	UpdatedAt           string                `json:"updated_at"`
}

type CreateLineItemRequest struct {
	ShipmentID       string `json:"shipment_id"`
	ItemID           string `json:"item_id"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ReceivedQuantity int    `json:"received_quantity"`
}

type UpdateLineItemRequest struct {
	ShipmentID       *string `json:"shipment_id"`
	ItemID           *string `json:"item_id"`
	ExpectedQuantity *int    `json:"expected_quantity"`
	ReceivedQuantity *int    `json:"received_quantity"`
}

type LineItemResponse struct {
	ID               string `json:"id"`
	ShipmentID       string `json:"shipment_id"`
	ItemID           string `json:"item_id"`
	ItemName         string `json:"item_name"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ReceivedQuantity int    `json:"received_quantity"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func toShipmentResponse(s *models.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                  s.ID,
		WarehouseID:         s.WarehouseID,
		WarehouseName:       s.Warehouse.Name,
		ExpectedArrivalDate: s.ExpectedArrivalDate.Format("2006-01-02"),
		Status:              s.Status,
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}

func toLineItemResponse(li *models.ShipmentLineItem) LineItemResponse {
	return LineItemResponse{
		ID:               li.ID,
		ShipmentID:       li.ShipmentID,
		ItemID:           li.ItemID,
		ItemName:         li.Item.Name,
		ExpectedQuantity: li.ExpectedQuantity,
		ReceivedQuantity: li.ReceivedQuantity,
		CreatedAt:        li.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        li.UpdatedAt.Format(time.RFC3339),
	}
}

func parseStatus(raw string) (models.ShipmentStatus, error) {
	status := models.ShipmentStatus(raw)
	if !status.Valid() {
		return "", fiber.NewError(fiber.StatusBadRequest, "status must be one of ORDERED, PROCESSED, IN_DELIVERY, COMPLETED")
	}
	return status, nil
}

// GET /api/shipments
func ListShipmentsHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipments, err := svc.List(c.Context())
		if err != nil {
			return err
		}
		resp := make([]ShipmentResponse, 0, len(shipments))
		for i := range shipments {
			resp = append(resp, toShipmentResponse(&shipments[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/shipments/:id
func GetShipmentHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipment, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toShipmentResponse(shipment))
	}
}

// GET /api/warehouses/:id/shipments
func ListShipmentsByWarehouseHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipments, err := svc.ListByWarehouse(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		resp := make([]ShipmentResponse, 0, len(shipments))
		for i := range shipments {
			resp = append(resp, toShipmentResponse(&shipments[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/shops/:id/shipments
func ListShipmentsByShopHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipments, err := svc.ListByShop(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		resp := make([]ShipmentResponse, 0, len(shipments))
		for i := range shipments {
			resp = append(resp, toShipmentResponse(&shipments[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/shipments
func CreateShipmentHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.WarehouseID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "warehouse_id is required")
		}

		arrival, err := time.Parse("2006-01-02", body.ExpectedArrivalDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "expected_arrival_date must be 'YYYY-MM-DD'")
		}
		status, err := parseStatus(body.Status)
		if err != nil {
			return err
		}

		shipment, err := svc.Create(c.Context(), CreateShipmentInput{
			WarehouseID:         body.WarehouseID,
			ExpectedArrivalDate: arrival,
			Status:              status,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toShipmentResponse(shipment))
	}
}

// PUT /api/shipments/:id
func UpdateShipmentHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		in := UpdateShipmentInput{WarehouseID: body.WarehouseID}
		if body.ExpectedArrivalDate != nil {
			arrival, err := time.Parse("2006-01-02", *body.ExpectedArrivalDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "expected_arrival_date must be 'YYYY-MM-DD'")
			}
			in.ExpectedArrivalDate = &arrival
		}
		if body.Status != nil {
			status, err := parseStatus(*body.Status)
			if err != nil {
				return err
			}
			in.Status = &status
		}

		shipment, err := svc.Update(c.Context(), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.JSON(toShipmentResponse(shipment))
	}
}

// PUT /api/shipments/:id/status
func UpdateShipmentStatusHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateShipmentStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		status, err := parseStatus(body.Status)
		if err != nil {
			return err
		}

		shipment, err := svc.UpdateStatus(c.Context(), c.Params("id"), status)
		if err != nil {
			return err
		}
		return c.JSON(toShipmentResponse(shipment))
	}
}

// DELETE /api/shipments/:id
func DeleteShipmentHandler(svc *ShipmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}

// GET /api/shipments/:id/line-items
func ListLineItemsHandler(svc *LineItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lineItems, err := svc.ListByShipment(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		resp := make([]LineItemResponse, 0, len(lineItems))
		for i := range lineItems {
			resp = append(resp, toLineItemResponse(&lineItems[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/line-items
func CreateLineItemHandler(svc *LineItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLineItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.ShipmentID == "" || body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "shipment_id and item_id are required")
		}
		if body.ExpectedQuantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "expected_quantity must be at least 1")
		}
		if body.ReceivedQuantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "received_quantity must not be negative")
		}

		lineItem, err := svc.Create(c.Context(), CreateLineItemInput{
			ShipmentID:       body.ShipmentID,
			ItemID:           body.ItemID,
			ExpectedQuantity: body.ExpectedQuantity,
			ReceivedQuantity: body.ReceivedQuantity,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toLineItemResponse(lineItem))
	}
}

// PUT /api/line-items/:id
func UpdateLineItemHandler(svc *LineItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateLineItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.ExpectedQuantity != nil && *body.ExpectedQuantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "expected_quantity must be at least 1")
		}
		if body.ReceivedQuantity != nil && *body.ReceivedQuantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "received_quantity must not be negative")
		}

		lineItem, err := svc.Update(c.Context(), c.Params("id"), UpdateLineItemInput{
			ShipmentID:       body.ShipmentID,
			ItemID:           body.ItemID,
			ExpectedQuantity: body.ExpectedQuantity,
			ReceivedQuantity: body.ReceivedQuantity,
		})
		if err != nil {
			return err
		}
		return c.JSON(toLineItemResponse(lineItem))
	}
}

// DELETE /api/line-items/:id
func DeleteLineItemHandler(svc *LineItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"deleted": true})
	}
}
