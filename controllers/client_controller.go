package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"warehouse-app/models"
	"warehouse-app/services"
)

type ClientController struct {
	service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{service: service}
}

type clientPayload struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (c *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var payload clientPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name and address are required"})
	}

	client := models.Client{Name: payload.Name, Address: payload.Address}
	if err := c.service.Create(&client); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Client created successfully",
		"data":    client,
	})
}

func (c *ClientController) GetAllClients(ctx *fiber.Ctx) error {
	clients, err := c.service.GetFiltered(parseEntityFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": clients})
}

func (c *ClientController) GetClientByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	client, err := c.service.GetByID(id)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": client})
}

func (c *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	var payload clientPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request payload", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name and address are required"})
	}

	input := models.Client{Name: payload.Name, Address: payload.Address}
	if err := c.service.Update(id, &input); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client updated successfully"})
}

func (c *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client deleted successfully"})
}

func (c *ClientController) ArchiveClient(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, true, "Client archived successfully")
}

func (c *ClientController) UnarchiveClient(ctx *fiber.Ctx) error {
	return c.setArchived(ctx, false, "Client unarchived successfully")
}

func (c *ClientController) setArchived(ctx *fiber.Ctx, archived bool, message string) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return serviceError(ctx, err)
	}

	if err := c.service.SetArchived(id, archived); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message})
}
