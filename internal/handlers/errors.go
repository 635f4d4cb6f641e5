package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/pickleball-venue/internal/validation"
	"github.com/trentd187/pickleball-venue/internal/venue"
)

// ErrorHandler is the app-wide fiber.ErrorHandler. Every error body has a
// single "detail" key:
//   - validation failures -> 422, detail lists each failing field
//   - booking conflicts   -> 409, detail is the conflict message
//   - fiber errors        -> their own status code and message
//   - anything else       -> 500 with the error message
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": ve.Fields})
	}

	if errors.Is(err, venue.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": venue.ConflictMessage})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
}
