package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// SubmissionGuard rechaza el mismo lote reenviado dentro de una ventana corta.
type SubmissionGuard interface {
	Claim(ctx context.Context, scope string, body []byte) error
}

// SubmitGuard middleware para los POST de lotes; nil = sin guardia.
func SubmitGuard(g SubmissionGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g == nil || c.Method() != fiber.MethodPost {
			return c.Next()
		}
		scope := c.Path() + ":" + GetUserID(c)
		if err := g.Claim(c.UserContext(), scope, c.Body()); err != nil {
			return err
		}
		return c.Next()
	}
}
