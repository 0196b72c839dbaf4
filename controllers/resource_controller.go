package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"warehouse-app/models"
	"warehouse-app/services"
)

type ResourceController struct {
	service *services.ResourceService
}

func NewResourceController(service *services.ResourceService) *ResourceController {
	return &ResourceController{service: service}
}

type resourcePayload struct {
	Name string `json:"name" validate:"required"`
}

func (c *ResourceController) CreateResource(ctx *fiber.Ctx) error {
	var payload resourcePayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name is required"})
	}

	resource := models.Resource{Name: payload.Name}
	if err := c.service.Create(&resource); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Resource created successfully",
		"data":    resource,
	})
}

func (c *ResourceController) GetAllResources(ctx *fiber.Ctx) error {
	resources, err := c.service.GetFiltered(parseEntityFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": resources})
}

func (c *ResourceController) GetResourceByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	resource, err := c.service.GetByID(id)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": resource})
}

func (c *ResourceController) UpdateResource(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload resourcePayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name is required"})
	}

	if err := c.service.Update(id, &models.Resource{Name: payload.Name}); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Resource updated successfully"})
}

func (c *ResourceController) DeleteResource(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Resource deleted successfully"})
}

func (c *ResourceController) ArchiveResource(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, true, "Resource archived successfully")
}

func (c *ResourceController) UnarchiveResource(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, false, "Resource unarchived successfully")
}

func (c *ResourceController) setArchived(ctx *fiber.Ctx, archived bool, message string) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.SetArchived(id, archived); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message})
}
