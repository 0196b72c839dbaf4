package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"warehouse-app/models"
	"warehouse-app/services"
	"warehouse-app/types"
)

type SupplyController struct {
	service *services.SupplyService
}

func NewSupplyController(service *services.SupplyService) *SupplyController {
	return &SupplyController{service: service}
}

type documentItemPayload struct {
	ID         types.SnowflakeID `json:"id"`
	ResourceID types.SnowflakeID `json:"resource_id" validate:"required"`
	UnitID     types.SnowflakeID `json:"unit_id" validate:"required"`
	Quantity   decimal.Decimal   `json:"quantity"`
}

type supplyPayload struct {
	Number string                `json:"number" validate:"required"`
	Date   time.Time             `json:"date" validate:"required"`
	Items  []documentItemPayload `json:"items"`
}

func (p *supplyPayload) toModel() *models.SupplyDocument {
	doc := &models.SupplyDocument{
		Number: p.Number,
		Date:   p.Date,
		Items:  make([]models.SupplyItem, 0, len(p.Items)),
	}
	for _, item := range p.Items {
		doc.Items = append(doc.Items, models.SupplyItem{
			BaseModel:  models.BaseModel{ID: item.ID},
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		})
	}
	return doc
}

func (c *SupplyController) CreateSupply(ctx *fiber.Ctx) error {
	var payload supplyPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Number and date are required"})
	}

	doc := payload.toModel()
	if err := c.service.Create(doc); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Supply created successfully",
		"data":    doc,
	})
}

func (c *SupplyController) GetAllSupplies(ctx *fiber.Ctx) error {
	docs, err := c.service.GetFiltered(parseDocumentFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": docs})
}

func (c *SupplyController) GetSupplyByID(ctx *fiber.Ctx) error {
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

func (c *SupplyController) UpdateSupply(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload supplyPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Number and date are required"})
	}

	if err := c.service.Update(id, payload.toModel()); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supply updated successfully"})
}

func (c *SupplyController) DeleteSupply(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supply deleted successfully"})
}
