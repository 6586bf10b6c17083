package inventory

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

// Stores repositorios atados a una misma transacción de BD.
type Stores struct {
	Stock       repository.StockRepository
	Movements   repository.MovementRepository
	Inspections repository.InspectionRepository
	Shipments   repository.ShipmentRepository
	Slips       repository.IssueSlipRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(s Stores) error) error
}

// Actor identidad que ejecuta la operación (resuelta por la capa HTTP).
type Actor struct {
	UserID string
	Saupj  string
	Role   string
}
