package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"warehouse-app/models"
	"warehouse-app/services"
)

type BalanceController struct {
	service *services.BalanceService
}

func NewBalanceController(service *services.BalanceService) *BalanceController {
	return &BalanceController{service: service}
}

func (c *BalanceController) GetBalances(ctx *fiber.Ctx) error {
	balances, err := c.service.GetAll(parseBalanceFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"balances": balances}})
}

func (c *BalanceController) ExportExcel(ctx *fiber.Ctx) error {
	balances, err := c.service.GetAll(parseBalanceFilter(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Resource")
	f.SetCellValue(sheet, "B1", "Unit")
	f.SetCellValue(sheet, "C1", "Quantity")

	for i, balance := range balances {
		resourceName := ""
		if balance.Resource != nil {
			resourceName = balance.Resource.Name
		}
		unitName := ""
		if balance.Unit != nil {
			unitName = balance.Unit.Name
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), resourceName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), unitName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), balance.Quantity.String())
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="balances.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel file")
	}

	return nil
}

func parseBalanceFilter(ctx *fiber.Ctx) models.BalanceFilter {
	return models.BalanceFilter{
		ResourceIDs: parseIDList(ctx, "resource_ids"),
		UnitIDs:     parseIDList(ctx, "unit_ids"),
	}
}
