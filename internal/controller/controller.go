package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fitbite-be/internal/pkg/apperror"
)

// currentUserId reads the authenticated user id set by the JWT middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing authentication")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid authentication")
	}
	return userId, nil
}

// parseUUIDParam parses a path parameter as a UUID, surfacing a not-found
// error so malformed ids do not leak resource existence hints.
func parseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	value, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.NotFound(name + " not found")
	}
	return value, nil
}
