package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// WorkOrderRepository puerto sobre pmo100/pmo110.
type WorkOrderRepository interface {
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.WorkOrder, error)
	// NextOpen siguiente orden programada o preparada de la línea (menor secuencia).
	NextOpen(ctx context.Context, saupj, opCode, lineCode string) (*entity.WorkOrder, error)
	// ApplyTransition actualiza el estado si el actual está en t.From y registra el log,
	// todo en una transacción. false = el estado ya no permitía la transición.
	ApplyTransition(ctx context.Context, orderNo string, t entity.Transition, user string, at time.Time) (bool, error)
}
