package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freelancehub/api/internal/apperr"
)

// respondErr renders a taxonomy error as the standard envelope with its
// mapped status. Anything outside the taxonomy becomes a bare 500.
func respondErr(c *fiber.Ctx, err error) error {
	resp := fiber.Map{
		"success": false,
		"message": err.Error(),
	}
	var e *apperr.Error
	if errors.As(err, &e) && len(e.Fields) > 0 {
		resp["errors"] = e.Fields
	}
	return c.Status(apperr.StatusCode(err)).JSON(resp)
}

func validationFail(c *fiber.Ctx, errs apperr.FieldErrors) error {
	return respondErr(c, errs.Err())
}

func fail500(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func getAuth(c *fiber.Ctx) (uuid.UUID, error) {
	rawID, ok := c.Locals("userId").(string)
	if !ok || rawID == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	uID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id")
	}
	return uID, nil
}
