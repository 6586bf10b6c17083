package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord cantidad disponible de una unidad (BOX o serial) en una ubicación (pms100).
// Clave: (Saupj, BoxNo, WhsCode). Nunca se borra; las cancelaciones revierten el delta.
type StockRecord struct {
	Saupj     string
	BoxNo     string
	WhsCode   string
	ItemCode  string
	LotNo     string
	Quantity  decimal.Decimal // siempre >= 0
	UpdUser   string
	UpdatedAt time.Time
}

// StockKey identifica una fila de stock.
type StockKey struct {
	Saupj   string
	BoxNo   string
	WhsCode string
}

// Key devuelve la clave de la fila.
func (s *StockRecord) Key() StockKey {
	return StockKey{Saupj: s.Saupj, BoxNo: s.BoxNo, WhsCode: s.WhsCode}
}

// CanDebit indica si la fila soporta una salida de qty sin quedar negativa.
func (s *StockRecord) CanDebit(qty decimal.Decimal) bool {
	return s != nil && s.Quantity.GreaterThanOrEqual(qty)
}
