package repository

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// MasterRepository maestros que el PDA consulta para combos y listas.
type MasterRepository interface {
	Codes(ctx context.Context, majorCode string) ([]entity.Code, error)
	Warehouses(ctx context.Context, saupj string) ([]entity.Warehouse, error)
	Lines(ctx context.Context, saupj, opCode string) ([]entity.Line, error)
	// Line una línea por código; nil si no existe.
	Line(ctx context.Context, saupj, lineCode string) (*entity.Line, error)
	Kanban(ctx context.Context, kanbanNo string) (*entity.Kanban, error)
	// UpsertWarehouse alta o actualización desde la importación de maestros.
	UpsertWarehouse(ctx context.Context, w *entity.Warehouse) error
}

// ItemRepository puerto sobre el maestro de ítems.
type ItemRepository interface {
	GetByCode(ctx context.Context, itemCode string) (*entity.Item, error)
	Upsert(ctx context.Context, item *entity.Item) error
}
