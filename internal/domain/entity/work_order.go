package entity

import "time"

// WorkOrderStatus estado de la orden de trabajo (pmo100.status).
type WorkOrderStatus string

const (
	WorkOrderScheduled WorkOrderStatus = "P"
	WorkOrderReady     WorkOrderStatus = "R"
	WorkOrderStarted   WorkOrderStatus = "W"
	WorkOrderCompleted WorkOrderStatus = "C"
)

// Acciones que el PDA puede pedir sobre una orden.
const (
	ActionReady = "ready"
	ActionStart = "start"
	ActionEnd   = "end"
)

// WorkOrder orden de producción o inspección.
type WorkOrder struct {
	OrderNo   string
	Saupj     string
	OpCode    string
	LineCode  string
	ItemCode  string
	PlanQty   int
	PlanSeq   int
	Status    WorkOrderStatus
	StartedAt *time.Time
	EndedAt   *time.Time
}

// Transition describe el cambio de estado que produce una acción.
type Transition struct {
	Action string
	From   []WorkOrderStatus
	To     WorkOrderStatus
}

var transitions = map[string]Transition{
	ActionReady: {Action: ActionReady, From: []WorkOrderStatus{WorkOrderScheduled}, To: WorkOrderReady},
	ActionStart: {Action: ActionStart, From: []WorkOrderStatus{WorkOrderScheduled, WorkOrderReady}, To: WorkOrderStarted},
	ActionEnd:   {Action: ActionEnd, From: []WorkOrderStatus{WorkOrderStarted}, To: WorkOrderCompleted},
}

// TransitionFor devuelve la transición de una acción; ok=false si la acción no existe.
func TransitionFor(action string) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// Allows indica si la transición acepta el estado actual.
func (t Transition) Allows(s WorkOrderStatus) bool {
	for _, f := range t.From {
		if f == s {
			return true
		}
	}
	return false
}

// FromStrings estados de origen como []string (parámetro SQL).
func (t Transition) FromStrings() []string {
	out := make([]string, len(t.From))
	for i, f := range t.From {
		out[i] = string(f)
	}
	return out
}

// IsTerminal el estado completado es de solo lectura.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderCompleted
}

// WorkOrderLog registro de cada transición aplicada (pmo110).
type WorkOrderLog struct {
	ID         string
	OrderNo    string
	Action     string
	FromStatus WorkOrderStatus
	ToStatus   WorkOrderStatus
	UserID     string
	At         time.Time
}
