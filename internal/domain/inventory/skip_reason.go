package inventory

import (
	"errors"

	"github.com/jhoicas/mes-pda-api/internal/domain"
)

// SkipReason motivo por el que un ítem de un lote no se aplicó.
type SkipReason string

const (
	SkipInsufficientStock SkipReason = "insufficient_stock"
	SkipNotFound          SkipReason = "not_found"
	SkipDuplicate         SkipReason = "duplicate"
	SkipAlreadyCancelled  SkipReason = "already_cancelled"
	SkipInvalidItem       SkipReason = "invalid_item"
	SkipError             SkipReason = "error"
)

// ReasonFor clasifica el error de un ítem. Todo lo que no es un rechazo de negocio
// conocido es SkipError (falla de infraestructura o bug).
func ReasonFor(err error) SkipReason {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return SkipInsufficientStock
	case errors.Is(err, domain.ErrNotFound):
		return SkipNotFound
	case errors.Is(err, domain.ErrDuplicateScan):
		return SkipDuplicate
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return SkipAlreadyCancelled
	case errors.Is(err, domain.ErrInvalidInput):
		return SkipInvalidItem
	default:
		return SkipError
	}
}

// IsBusiness indica si el motivo es un rechazo de negocio (no una falla técnica).
func (r SkipReason) IsBusiness() bool {
	return r != SkipError
}
