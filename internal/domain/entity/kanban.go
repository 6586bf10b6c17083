package entity

// Estados de kanban (pmk100.status).
const (
	KanbanRegistered = "R"
	KanbanInStock    = "I"
	KanbanHold       = "H"
	KanbanDisposed   = "D"
)

// Kanban tarjeta que identifica un contenedor de material con vencimiento.
type Kanban struct {
	KanbanNo   string
	ItemCode   string
	BoxNo      string
	Status     string
	ExpiryDate string // YYYYMMDD tal como lo guarda la tabla heredada
}
