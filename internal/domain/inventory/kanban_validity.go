package inventory

import (
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/pkg/bizdate"
)

// Validity clasificación de un kanban escaneado.
type Validity string

const (
	KanbanValid   Validity = "valid"
	KanbanInvalid Validity = "invalid"
	KanbanExpired Validity = "expired"
)

// usableKanbanStatus estados que permiten usar el kanban en planta.
var usableKanbanStatus = map[string]bool{
	entity.KanbanRegistered: true,
	entity.KanbanInStock:    true,
}

// KanbanVerdict resultado de la validación con el motivo legible.
type KanbanVerdict struct {
	Validity Validity
	Reason   string
	Expiry   *time.Time
}

// ClassifyKanban aplica las reglas de negocio: estado en lista blanca y vencimiento.
// El vencimiento se compara como fecha (no como texto) en la zona de la planta; el
// kanban vence al terminar su día de vencimiento.
func ClassifyKanban(k *entity.Kanban, now time.Time, loc *time.Location) KanbanVerdict {
	if k == nil {
		return KanbanVerdict{Validity: KanbanInvalid, Reason: "kanban no registrado"}
	}
	if !usableKanbanStatus[k.Status] {
		return KanbanVerdict{Validity: KanbanInvalid, Reason: "estado de kanban no utilizable: " + k.Status}
	}
	if k.ExpiryDate == "" {
		return KanbanVerdict{Validity: KanbanValid}
	}
	expiry, err := bizdate.Parse(k.ExpiryDate, loc)
	if err != nil {
		return KanbanVerdict{Validity: KanbanInvalid, Reason: "fecha de vencimiento ilegible"}
	}
	if bizdate.Today(now, loc).After(expiry) {
		return KanbanVerdict{Validity: KanbanExpired, Reason: "vencido el " + bizdate.Compact(expiry), Expiry: &expiry}
	}
	return KanbanVerdict{Validity: KanbanValid, Expiry: &expiry}
}
