package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrDuplicateScan       = errors.New("unidad escaneada más de una vez en el lote")
	ErrAlreadyCancelled    = errors.New("movimiento ya cancelado")
	ErrNoItemsProcessed    = errors.New("no items processed")
	ErrBatchRejected       = errors.New("lote rechazado")
	ErrInvalidAction       = errors.New("invalid action")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrWorkOrderCompleted  = errors.New("work order already completed")
	ErrDuplicateSubmission = errors.New("lote ya enviado, espere unos segundos")
)
