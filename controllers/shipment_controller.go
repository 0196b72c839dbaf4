package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"warehouse-app/models"
	"warehouse-app/services"
	"warehouse-app/types"
)

type ShipmentController struct {
	service *services.ShipmentService
}

func NewShipmentController(service *services.ShipmentService) *ShipmentController {
	return &ShipmentController{service: service}
}

type shipmentPayload struct {
	Number   string                `json:"number" validate:"required"`
	ClientID types.SnowflakeID     `json:"client_id" validate:"required"`
	Date     time.Time             `json:"date" validate:"required"`
	Items    []documentItemPayload `json:"items"`
}

func (p *shipmentPayload) toModel() *models.ShipmentDocument {
	doc := &models.ShipmentDocument{
		Number:   p.Number,
		ClientID: p.ClientID,
		Date:     p.Date,
		Items:    make([]models.ShipmentItem, 0, len(p.Items)),
	}
	for _, item := range p.Items {
		doc.Items = append(doc.Items, models.ShipmentItem{
			BaseModel:  models.BaseModel{ID: item.ID},
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		})
	}
	return doc
}

func (c *ShipmentController) CreateShipment(ctx *fiber.Ctx) error {
	var payload shipmentPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Number, client and date are required"})
	}

	doc := payload.toModel()
	if err := c.service.Create(doc); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Shipment created successfully",
		"data":    doc,
	})
}

func (c *ShipmentController) GetAllShipments(ctx *fiber.Ctx) error {
	docs, err := c.service.GetFiltered(parseDocumentFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": docs})
}

func (c *ShipmentController) GetShipmentByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	doc, err := c.service.GetByID(id)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": doc})
}

func (c *ShipmentController) UpdateShipment(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload shipmentPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Number, client and date are required"})
	}

	if err := c.service.Update(id, payload.toModel()); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipment updated successfully"})
}

func (c *ShipmentController) DeleteShipment(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipment deleted successfully"})
}

// ChangeShipmentStatus drives the document through its lifecycle.
func (c *ShipmentController) ChangeShipmentStatus(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload struct {
		Status models.ShipmentStatus `json:"status" validate:"required"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Status is required"})
	}

	if err := c.service.ChangeStatus(id, payload.Status); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipment status changed successfully"})
}
