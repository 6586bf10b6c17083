package dto

// ShipmentRequest body de POST /api/shipment.
type ShipmentRequest struct {
	Identity
	ShipDate     string        `json:"shipDate" validate:"omitempty,max=10"`
	CustomerCode string        `json:"customerCode" validate:"required,max=20"`
	WhsCode      string        `json:"whsCode" validate:"required,max=10"`
	Items        []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// OutsourcingRequest body de POST /api/outsourcing.
type OutsourcingRequest struct {
	Identity
	OutDate    string        `json:"outDate" validate:"omitempty,max=10"`
	WhsCode    string        `json:"whsCode" validate:"required,max=10"`
	VendorCode string        `json:"vendorCode" validate:"required,max=10,nefield=WhsCode"`
	Items      []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// ReturnRequest body de POST /api/return/individual.
type ReturnRequest struct {
	Identity
	ReturnDate string        `json:"returnDate" validate:"omitempty,max=10"`
	WhsCode    string        `json:"whsCode" validate:"required,max=10"`
	Reason     string        `json:"reason" validate:"omitempty,max=30"`
	Items      []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// RoundResponse vuelta siguiente de despacho.
type RoundResponse struct {
	ShipDate string `json:"shipDate"`
	Round    int    `json:"round"`
}
