package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario (pmb100.mov_type).
const (
	MovementReceive      = "RECEIVE"       // recepción en almacén
	MovementTransfer     = "TRANSFER"      // traslado entre almacenes sin documento
	MovementIssue        = "ISSUE"         // salida con vale de salida
	MovementRelease      = "RELEASE"       // almacén -> stock de línea
	MovementOutsourceOut = "OUTSOURCE_OUT" // envío a proveedor externo
	MovementShipOut      = "SHIP_OUT"      // despacho a cliente
	MovementReturnIn     = "RETURN_IN"     // devolución individual
	MovementInput        = "INPUT"         // consumo de partes en línea
	MovementProduce      = "PRODUCE"       // resultado de ensamble OK
	MovementStocktake    = "STOCKTAKE"     // ajuste por inventario físico
)

// MovementRecord fila inmutable del historial (pmb100). Lo único que cambia después
// de insertada es el flag de cancelación, y solo una vez.
type MovementRecord struct {
	ID          string
	Saupj       string
	MovDate     time.Time
	BoxNo       string
	ItemCode    string
	FromWhs     string // vacío si no aplica
	ToWhs       string // vacío si no aplica
	Quantity    decimal.Decimal
	Type        string
	RefNo       string // vale, despacho, orden de trabajo, proveedor...
	RegUser     string
	RegDate     time.Time
	Cancelled   bool
	CancelUser  string
	CancelledAt *time.Time
}

// Cancellable indica si el movimiento puede revertirse con la variante de cancelación.
func (m *MovementRecord) Cancellable() bool {
	if m == nil || m.Cancelled {
		return false
	}
	return m.Type == MovementReceive || m.Type == MovementInput
}
