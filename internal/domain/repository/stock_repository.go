package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// StockRepository puerto sobre pms100. Usado dentro de transacciones por ítem o por lote.
type StockRepository interface {
	// Get devuelve la fila o nil si la unidad no existe en esa ubicación.
	Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)
	// ListByBox todas las ubicaciones donde hay stock de la unidad.
	ListByBox(ctx context.Context, saupj, boxNo string) ([]*entity.StockRecord, error)
	// Decrement resta qty solo si quantity >= qty. false = ninguna fila afectada.
	Decrement(ctx context.Context, key entity.StockKey, qty decimal.Decimal, user string) (bool, error)
	// Increment suma qty creando la fila si no existe (upsert).
	Increment(ctx context.Context, rec *entity.StockRecord) error
	// Set fija la cantidad (inventario físico), creando la fila si no existe.
	Set(ctx context.Context, rec *entity.StockRecord) error
}
