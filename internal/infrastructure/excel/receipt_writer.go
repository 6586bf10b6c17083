// Package excel exporta el historial de recepciones a .xlsx.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/usecase"
)

var _ usecase.ReceiptReportWriter = (*ReceiptWriter)(nil)

const sheetName = "Recepciones"

var receiptHeadings = []string{"Fecha", "Box", "Ítem", "Almacén", "Cantidad", "Referencia", "Usuario", "Registrado", "Cancelado"}

// ReceiptWriter implementa usecase.ReceiptReportWriter con excelize.
type ReceiptWriter struct{}

// NewReceiptWriter construye el writer.
func NewReceiptWriter() *ReceiptWriter { return &ReceiptWriter{} }

// WriteReceipts fila 1 título, fila 2 cabeceras, datos desde la fila 3.
func (w *ReceiptWriter) WriteReceipts(_ context.Context, title string, rows []dto.MovementResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, err
	}
	for i, h := range receiptHeadings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(receiptHeadings), 2)
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cancelled := "N"
		if r.Cancelled {
			cancelled = "Y"
		}
		qty, _ := r.Qty.Float64()
		values := []any{r.MovDate, r.BoxNo, r.ItemCode, r.ToWhsCode, qty, r.RefNo, r.RegUser, r.RegDate, cancelled}
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+3, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
