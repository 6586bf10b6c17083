package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
)

// Mensaje fijo para 500: el texto del driver se registra en el log, nunca se devuelve.
const serverErrorMessage = "error interno del servidor"

// Success 200 con success=true.
func Success(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{Success: true, Data: data, Message: message})
}

// Error success=false con el status indicado (400 si no se indica).
func Error(c *fiber.Ctx, message string, status ...int) error {
	code := fiber.StatusBadRequest
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).JSON(dto.Envelope{Success: false, Error: message})
}

// ErrorWithData igual que Error pero adjunta data (rechazos de lote, kanban vencido).
func ErrorWithData(c *fiber.Ctx, message string, data interface{}, status int) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Error: message, Data: data})
}

// ServerError 500 con mensaje genérico.
func ServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Error: serverErrorMessage})
}

// Unauthorized 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{Success: false, Error: message})
}
