package usecase

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// ShipmentSlipGenerator genera el PDF del comprobante de despacho.
type ShipmentSlipGenerator interface {
	GenerateShipmentSlip(ctx context.Context, s *entity.Shipment, items map[string]*entity.Item) ([]byte, error)
}

// ReceiptReportWriter serializa el historial de recepciones como planilla.
type ReceiptReportWriter interface {
	WriteReceipts(ctx context.Context, title string, rows []dto.MovementResponse) ([]byte, error)
}
