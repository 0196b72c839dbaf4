package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"warehouse-app/models"
	"warehouse-app/services"
	"warehouse-app/types"
)

// parseID reads a snowflake ID from a route parameter.
func parseID(ctx *fiber.Ctx, name string) (types.SnowflakeID, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id: "+raw)
	}
	return types.SnowflakeID(id), nil
}

// parseIDList reads a comma-separated list of snowflake IDs from a query
// parameter. Malformed entries are skipped.
func parseIDList(ctx *fiber.Ctx, name string) []types.SnowflakeID {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}

	var ids []types.SnowflakeID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, types.SnowflakeID(id))
		}
	}
	return ids
}

func parseEntityFilter(ctx *fiber.Ctx) models.EntityFilter {
	return models.EntityFilter{
		IDs:             parseIDList(ctx, "ids"),
		NameContains:    ctx.Query("name"),
		IncludeArchived: ctx.QueryBool("include_archived", false),
	}
}

func parseDocumentFilter(ctx *fiber.Ctx) models.DocumentFilter {
	filter := models.DocumentFilter{
		ResourceIDs: parseIDList(ctx, "resource_ids"),
		UnitIDs:     parseIDList(ctx, "unit_ids"),
	}

	if raw := ctx.Query("numbers"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter.Numbers = append(filter.Numbers, part)
			}
		}
	}
	if raw := ctx.Query("date_from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateFrom = &t
		}
	}
	if raw := ctx.Query("date_to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateTo = &t
		}
	}
	return filter
}

// serviceError maps domain errors to HTTP responses. Anything not in the
// taxonomy is an internal failure.
func serviceError(ctx *fiber.Ctx, err error) error {
	var stockErr *services.InsufficientStockError
	var archivedErr *services.ArchivedEntityError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateNumber),
		errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrInUse):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	case errors.As(err, &stockErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":     false,
			"message":     stockErr.Error(),
			"resource_id": stockErr.ResourceID,
			"unit_id":     stockErr.UnitID,
			"available":   stockErr.Available,
			"required":    stockErr.Required,
		})
	case errors.As(err, &archivedErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": archivedErr.Error(),
		})
	case errors.Is(err, services.ErrEmptyDocument),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrDuplicateItem),
		errors.Is(err, services.ErrNonPositiveQuantity):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	case errors.Is(err, services.ErrSignedDocumentImmutable),
		errors.Is(err, services.ErrRevokedDocument):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false, "message": fiberErr.Message,
		})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false, "message": "internal server error", "error": err.Error(),
	})
}
