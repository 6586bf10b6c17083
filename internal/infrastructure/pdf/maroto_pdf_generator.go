// Package pdf genera el comprobante de despacho que acompaña a la carga.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + Cliente    │  N° Despacho + Fecha + Vuelta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Box | Ítem | Descripción | Cantidad              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cajas / cantidad                                   │
//	│  FOOTER: QR con el número de despacho + firma de recepción   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/mes-pda-api/internal/application/usecase"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

var _ usecase.ShipmentSlipGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ShipmentSlipGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateShipmentSlip genera el PDF y devuelve sus bytes. items puede no
// contener todos los códigos: la descripción queda vacía.
func (g *MarotoPDFGenerator) GenerateShipmentSlip(
	_ context.Context,
	s *entity.Shipment,
	items map[string]*entity.Item,
) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("pdf: despacho nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de despacho "+s.ShipNo, true).
		WithAuthor(s.RegUser, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(s.Lines, items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(s))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(s))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(s *entity.Shipment) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE DESPACHO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planta: "+s.Saupj+"   |   Almacén: "+nonEmpty(s.WhsCode, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New("Cliente: "+nonEmpty(s.CustomerCode, "-"), props.Text{
				Size: 9, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(s.ShipNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+s.ShipDate.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Vuelta: "+strconv.Itoa(s.Round), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Box", 3, align.Left),
		h("Ítem", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRows una fila por caja despachada.
func tableDetailRows(lines []entity.ShipmentLine, items map[string]*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		name := ""
		if it, ok := items[l.ItemCode]; ok && it != nil {
			name = it.ItemName
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(l.BoxNo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.ItemCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(s *entity.Shipment) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(label("Cajas:"), text.New("Cantidad total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5})),
		col.New(3).Add(value(strconv.Itoa(len(s.Lines))), text.New(s.TotalQuantity().String(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 5, Color: colorPrimary})),
	)
}

// footerRow QR con el número de despacho (lo escanea el PDA del cliente) y firma.
func footerRow(s *entity.Shipment) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(s.ShipNo, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Registrado por: "+nonEmpty(s.RegUser, "-")+"   "+s.RegDate.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Recibido conforme: ______________________________", props.Text{
				Size: 9, Top: 24, Left: 3,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
