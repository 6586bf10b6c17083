package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos.
type MovementFilter struct {
	Saupj   string
	Type    string
	WhsCode string // coincide con origen o destino
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// MovementRepository puerto sobre pmb100 (historial append-only).
type MovementRepository interface {
	Create(ctx context.Context, m *entity.MovementRecord) error
	GetByID(ctx context.Context, id string) (*entity.MovementRecord, error)
	// GetForUpdate bloquea el movimiento mientras se cancela.
	GetForUpdate(ctx context.Context, id string) (*entity.MovementRecord, error)
	// MarkCancelled cambia el flag solo si aún no estaba cancelado. false = ya cancelado / no existe.
	MarkCancelled(ctx context.Context, id, user string, at time.Time) (bool, error)
	List(ctx context.Context, f MovementFilter) ([]*entity.MovementRecord, error)
}
