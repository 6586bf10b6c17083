package dto

// CodeResponse elemento de combo.
type CodeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// WarehouseResponse almacén para selección en el PDA.
type WarehouseResponse struct {
	WhsCode string `json:"whsCode"`
	WhsName string `json:"whsName"`
	WhsType string `json:"whsType"`
}

// LineResponse línea de producción.
type LineResponse struct {
	LineCode string `json:"lineCode"`
	LineName string `json:"lineName"`
	OpCode   string `json:"opCode"`
	LineWhs  string `json:"lineWhs"`
}

// KanbanResponse resultado de validar un kanban.
type KanbanResponse struct {
	KanbanNo   string `json:"kanbanNo"`
	ItemCode   string `json:"itemCode,omitempty"`
	BoxNo      string `json:"boxNo,omitempty"`
	Status     string `json:"status,omitempty"`
	Validity   string `json:"validity"`
	Reason     string `json:"reason,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}
