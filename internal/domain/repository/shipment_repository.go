package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// ShipmentRepository puerto sobre pmd100/pmd110.
type ShipmentRepository interface {
	// NextRound número de vuelta siguiente para (saupj, fecha).
	NextRound(ctx context.Context, saupj string, shipDate time.Time) (int, error)
	CreateHeader(ctx context.Context, s *entity.Shipment) error
	AddLine(ctx context.Context, l *entity.ShipmentLine) error
	// Get cabecera con líneas; nil si no existe.
	Get(ctx context.Context, shipNo string) (*entity.Shipment, error)
}
