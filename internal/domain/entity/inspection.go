package entity

import "time"

// Resultados de inspección.
const (
	ResultOK = "OK"
	ResultNG = "NG"
)

// InspectionRecord resultado OK/NG de un BOX o serial dentro de un lote de inspección
// (proceso + línea + fecha). Tabla pmq100.
type InspectionRecord struct {
	ID        string
	Saupj     string
	OpCode    string
	LineCode  string
	CheckDate time.Time
	OrderNo   string
	BoxNo     string
	Result    string
	CheckedAt time.Time
	RegUser   string
}

// IsOK resultado aprobado.
func (r *InspectionRecord) IsOK() bool { return r.Result == ResultOK }
