package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"warehouse-app/models"
	"warehouse-app/services"
)

type UomController struct {
	service *services.UnitService
}

func NewUomController(service *services.UnitService) *UomController {
	return &UomController{service: service}
}

type uomPayload struct {
	Name string `json:"name" validate:"required"`
}

func (c *UomController) CreateUom(ctx *fiber.Ctx) error {
	var payload uomPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name is required"})
	}

	unit := models.UnitOfMeasure{Name: payload.Name}
	if err := c.service.Create(&unit); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Unit created successfully",
		"data":    unit,
	})
}

func (c *UomController) GetAllUoms(ctx *fiber.Ctx) error {
	units, err := c.service.GetFiltered(parseEntityFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": units})
}

func (c *UomController) GetUomByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	unit, err := c.service.GetByID(id)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": unit})
}

func (c *UomController) UpdateUom(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload uomPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name is required"})
	}

	if err := c.service.Update(id, &models.UnitOfMeasure{Name: payload.Name}); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Unit updated successfully"})
}

func (c *UomController) DeleteUom(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Unit deleted successfully"})
}

func (c *UomController) ArchiveUom(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, true, "Unit archived successfully")
}

func (c *UomController) UnarchiveUom(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, false, "Unit unarchived successfully")
}

func (c *UomController) setArchived(ctx *fiber.Ctx, archived bool, message string) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.SetArchived(id, archived); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message})
}
