package handlers

import "github.com/gofiber/fiber/v2"

// ErrorHandler renders every error as a JSON body. Store failures surface as
// a generic 500; fiber errors keep their status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
}
