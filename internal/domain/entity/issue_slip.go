package entity

import "time"

// Estados del vale de salida (pmr100.status).
const (
	SlipOpen   = "O"
	SlipIssued = "C"
)

// IssueSlip vale de salida de materiales emitido por planificación.
type IssueSlip struct {
	Saupj    string
	SlipNo   string
	FromWhs  string
	ToWhs    string
	Status   string
	IssuedBy string
	IssuedAt *time.Time
}
