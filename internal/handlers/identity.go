package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/model"
	"github.com/student-hub/backend/store"
)

// identityFrom resolves who is acting. A verified identity set by the
// JWT middleware wins; otherwise the caller-supplied pair from the body
// is taken as-is (the auth service is an external collaborator, this
// core does not verify the pair itself).
func identityFrom(c *fiber.Ctx, userID, userName string) model.Like {
	who := model.Like{UserID: userID, UserName: userName}
	if v, ok := c.Locals("user_id").(string); ok && v != "" {
		who.UserID = v
	}
	if v, ok := c.Locals("user_name").(string); ok && v != "" {
		who.UserName = v
	}
	return who
}

// storeErr maps store failures onto the HTTP error contract:
// NotFound → 404, InvalidInput → 400, anything else → 500,
// always with a {detail} body.
func storeErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Post not found"})
	case errors.Is(err, store.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}
}
