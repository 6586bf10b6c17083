package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment cabecera de despacho (pmd100). Round es la vuelta del día para el almacén.
type Shipment struct {
	ShipNo       string
	Saupj        string
	ShipDate     time.Time
	Round        int
	CustomerCode string
	WhsCode      string
	RegUser      string
	RegDate      time.Time
	Lines        []ShipmentLine
}

// ShipmentLine línea de despacho (pmd110).
type ShipmentLine struct {
	ShipNo   string
	BoxNo    string
	ItemCode string
	Quantity decimal.Decimal
}

// TotalQuantity suma de cantidades de las líneas.
func (s *Shipment) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Quantity)
	}
	return total
}
