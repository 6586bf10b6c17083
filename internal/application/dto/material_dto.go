package dto

import "github.com/shopspring/decimal"

// ItemRequest unidad escaneada (BOX o serial).
type ItemRequest struct {
	BoxNo    string          `json:"boxNo" validate:"max=40"`
	ItemCode string          `json:"itemCode,omitempty" validate:"max=30"`
	LotNo    string          `json:"lotNo,omitempty" validate:"max=30"`
	Qty      decimal.Decimal `json:"qty"`
}

// IssueNoSlipRequest body de POST /api/material/issue-no-slip.
type IssueNoSlipRequest struct {
	Identity
	IssueDate   string        `json:"issueDate" validate:"omitempty,max=10"`
	FromWhsCode string        `json:"fromWhsCode" validate:"required,max=10"`
	ToWhsCode   string        `json:"toWhsCode" validate:"required,max=10,nefield=FromWhsCode"`
	Items       []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// IssueSlipRequest body de POST /api/material/issue-slip.
type IssueSlipRequest struct {
	Identity
	IssueDate string        `json:"issueDate" validate:"omitempty,max=10"`
	SlipNo    string        `json:"slipNo" validate:"required,max=30"`
	Items     []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// ReceiveRequest body de POST /api/material/receive.
type ReceiveRequest struct {
	Identity
	ReceiveDate string        `json:"receiveDate" validate:"omitempty,max=10"`
	WhsCode     string        `json:"whsCode" validate:"required,max=10"`
	RefNo       string        `json:"refNo" validate:"omitempty,max=30"`
	Items       []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// CancelItem movimiento a revertir.
type CancelItem struct {
	MovementID string `json:"movementId" validate:"max=36"`
}

// CancelRequest body de receive-cancel e input-cancel.
type CancelRequest struct {
	Identity
	Items []CancelItem `json:"items" validate:"required,min=1,max=1000,dive"`
}

// ReleaseRequest body de POST /api/material/release.
type ReleaseRequest struct {
	Identity
	ReleaseDate string        `json:"releaseDate" validate:"omitempty,max=10"`
	WhsCode     string        `json:"whsCode" validate:"required,max=10"`
	LineCode    string        `json:"lineCode" validate:"required,max=10"`
	Items       []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// CountItem cantidad contada en inventario físico.
type CountItem struct {
	BoxNo     string          `json:"boxNo" validate:"max=40"`
	ItemCode  string          `json:"itemCode,omitempty" validate:"max=30"`
	SystemQty decimal.Decimal `json:"systemQty"` // lo que mostró el PDA; la diferencia se calcula contra la BD
	ActualQty decimal.Decimal `json:"actualQty"`
}

// StocktakeRequest body de POST /api/material/stocktaking.
type StocktakeRequest struct {
	Identity
	CountDate string      `json:"countDate" validate:"omitempty,max=10"`
	WhsCode   string      `json:"whsCode" validate:"required,max=10"`
	Items     []CountItem `json:"items" validate:"required,min=1,max=1000,dive"`
}

// ReceiveHistoryQuery filtros de GET /api/material/receive.
type ReceiveHistoryQuery struct {
	PageRequest
	Saupj    string `query:"saupj"`
	WhsCode  string `query:"whsCode" validate:"omitempty,max=10"`
	FromDate string `query:"fromDate" validate:"omitempty,max=10"`
	ToDate   string `query:"toDate" validate:"omitempty,max=10"`
}

// MovementResponse fila del historial.
type MovementResponse struct {
	ID          string          `json:"id"`
	MovDate     string          `json:"movDate"`
	BoxNo       string          `json:"boxNo"`
	ItemCode    string          `json:"itemCode"`
	FromWhsCode string          `json:"fromWhsCode,omitempty"`
	ToWhsCode   string          `json:"toWhsCode,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	Type        string          `json:"type"`
	RefNo       string          `json:"refNo,omitempty"`
	RegUser     string          `json:"regUser"`
	RegDate     string          `json:"regDate"`
	Cancelled   bool            `json:"cancelled"`
}

// StockLocation cantidad de la unidad en un almacén.
type StockLocation struct {
	WhsCode string          `json:"whsCode"`
	Qty     decimal.Decimal `json:"qty"`
	LotNo   string          `json:"lotNo,omitempty"`
}

// BarcodeResponse resolución de un BOX/serial escaneado.
type BarcodeResponse struct {
	BoxNo     string          `json:"boxNo"`
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName,omitempty"`
	Spec      string          `json:"spec,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	TotalQty  decimal.Decimal `json:"totalQty"`
	Locations []StockLocation `json:"locations"`
}

// StocktakeLookupResponse cantidad de sistema para el conteo.
type StocktakeLookupResponse struct {
	BoxNo     string          `json:"boxNo"`
	WhsCode   string          `json:"whsCode"`
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName,omitempty"`
	SystemQty decimal.Decimal `json:"systemQty"`
}
