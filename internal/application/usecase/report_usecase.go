package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

// ReportUseCase documentos descargables: planilla de recepciones y comprobante de despacho.
type ReportUseCase struct {
	lookup    *LookupUseCase
	shipments repository.ShipmentRepository
	items     repository.ItemRepository
	slips     ShipmentSlipGenerator
	sheets    ReceiptReportWriter
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(
	lookup *LookupUseCase,
	shipments repository.ShipmentRepository,
	items repository.ItemRepository,
	slips ShipmentSlipGenerator,
	sheets ReceiptReportWriter,
) *ReportUseCase {
	return &ReportUseCase{lookup: lookup, shipments: shipments, items: items, slips: slips, sheets: sheets}
}

// ExportReceipts genera el .xlsx del mismo filtro que GET /material/receive.
func (uc *ReportUseCase) ExportReceipts(ctx context.Context, q dto.ReceiveHistoryQuery) ([]byte, string, error) {
	if q.Limit <= 0 {
		q.Limit = 5000
	}
	rows, err := uc.lookup.ReceiveHistory(ctx, q)
	if err != nil {
		return nil, "", err
	}
	title := fmt.Sprintf("Recepciones %s %s-%s", q.WhsCode, q.FromDate, q.ToDate)
	data, err := uc.sheets.WriteReceipts(ctx, title, rows)
	if err != nil {
		return nil, "", fmt.Errorf("export: planilla: %w", err)
	}
	filename := fmt.Sprintf("recepciones_%s_%s.xlsx", q.Saupj, time.Now().In(uc.lookup.loc).Format("20060102_1504"))
	return data, filename, nil
}

// ShipmentSlip genera el PDF de un despacho ya registrado.
//   - domain.ErrNotFound si el despacho no existe o es de otra planta.
func (uc *ReportUseCase) ShipmentSlip(ctx context.Context, saupj, shipNo string) ([]byte, string, error) {
	s, err := uc.shipments.Get(ctx, shipNo)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener despacho: %w", err)
	}
	if s == nil || (saupj != "" && s.Saupj != saupj) {
		return nil, "", fmt.Errorf("despacho %s: %w", shipNo, domain.ErrNotFound)
	}
	items := map[string]*entity.Item{}
	for _, l := range s.Lines {
		if _, ok := items[l.ItemCode]; ok {
			continue
		}
		if it, err := uc.items.GetByCode(ctx, l.ItemCode); err == nil && it != nil {
			items[l.ItemCode] = it
		}
	}
	pdf, err := uc.slips.GenerateShipmentSlip(ctx, s, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("despacho_%s.pdf", s.ShipNo), nil
}
