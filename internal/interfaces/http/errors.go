package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
	"github.com/jhoicas/mes-pda-api/internal/domain"
)

// statusFor traduce errores de dominio a HTTP. 0 = error no clasificado (500).
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrDuplicateScan),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrNoItemsProcessed),
		errors.Is(err, domain.ErrBatchRejected),
		errors.Is(err, domain.ErrInvalidAction):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrWorkOrderCompleted),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDuplicateSubmission):
		return fiber.StatusConflict
	}
	return 0
}

// messageFor mensaje para el cliente. Los sentinels de la máquina de estados se
// devuelven tal cual ("work order already completed", "invalid action").
func messageFor(err error) string {
	for _, sentinel := range []error{
		domain.ErrNoItemsProcessed,
		domain.ErrWorkOrderCompleted,
		domain.ErrInvalidTransition,
		domain.ErrInvalidAction,
		domain.ErrDuplicateSubmission,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// handleError envelope de error; lo no clasificado se registra y sale como 500.
func handleError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status := statusFor(err)
	if status == 0 {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).
			Str("request_id", requestID(c)).Msg("error no controlado")
		return ServerError(c)
	}
	return Error(c, messageFor(err), status)
}

// batchResponse respuesta de un lote del libro de inventario. Con count=0 o lote
// rechazado se devuelve 400 con el detalle de los ítems omitidos en data.
func batchResponse(c *fiber.Ctx, log zerolog.Logger, res *inventory.Result, err error, data interface{}) error {
	if err != nil {
		if res != nil && statusFor(err) == fiber.StatusBadRequest {
			return ErrorWithData(c, messageFor(err), res, fiber.StatusBadRequest)
		}
		return handleError(c, log, err)
	}
	if data == nil {
		data = res
	}
	return Success(c, data, summary(res))
}

func summary(res *inventory.Result) string {
	if res == nil {
		return ""
	}
	if res.OK+res.NG > 0 {
		return fmt.Sprintf("%d procesados (OK %d, NG %d), %d omitidos", res.Count, res.OK, res.NG, len(res.Skipped))
	}
	return fmt.Sprintf("%d procesados, %d omitidos", res.Count, len(res.Skipped))
}

// ErrorHandler handler de errores de fiber: rutas inexistentes, body demasiado grande, panics recuperados.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error de fiber")
				return ServerError(c)
			}
			return Error(c, fe.Message, fe.Code)
		}
		return handleError(c, log, err)
	}
}
