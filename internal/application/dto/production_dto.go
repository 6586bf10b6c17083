package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckItem resultado OK/NG de una unidad.
type CheckItem struct {
	BoxNo     string          `json:"boxNo" validate:"max=40"`
	ItemCode  string          `json:"itemCode,omitempty" validate:"max=30"`
	Qty       decimal.Decimal `json:"qty"`
	Result    string          `json:"result"`
	CheckedAt *time.Time      `json:"checkedAt,omitempty"`
}

// CheckRequest body de smd-check, plan/check y assembly-result.
type CheckRequest struct {
	Identity
	CheckDate string      `json:"checkDate" validate:"omitempty,max=10"`
	OpCode    string      `json:"opCode" validate:"required,max=10"`
	LineCode  string      `json:"lineCode" validate:"required,max=10"`
	OrderNo   string      `json:"orderNo" validate:"omitempty,max=30"`
	Items     []CheckItem `json:"items" validate:"required,min=1,max=1000,dive"`
}

// PartsInputRequest body de POST /api/production/parts-input.
type PartsInputRequest struct {
	Identity
	InputDate string        `json:"inputDate" validate:"omitempty,max=10"`
	LineCode  string        `json:"lineCode" validate:"required,max=10"`
	OrderNo   string        `json:"orderNo" validate:"omitempty,max=30"`
	Items     []ItemRequest `json:"items" validate:"required,min=1,max=1000,dive"`
}

// WorkRequest body de POST /api/plan/work.
type WorkRequest struct {
	Identity
	OrderNo string `json:"orderNo" validate:"required,max=30"`
	Action  string `json:"action" validate:"required"`
}

// NextWorkRequest body de POST /api/plan/next-work.
type NextWorkRequest struct {
	Identity
	OpCode   string `json:"opCode" validate:"required,max=10"`
	LineCode string `json:"lineCode" validate:"required,max=10"`
	Action   string `json:"action" validate:"required"`
}

// WorkOrderResponse estado de la orden tras la transición.
type WorkOrderResponse struct {
	OrderNo   string     `json:"orderNo"`
	OpCode    string     `json:"opCode"`
	LineCode  string     `json:"lineCode"`
	ItemCode  string     `json:"itemCode"`
	PlanQty   int        `json:"planQty"`
	PlanSeq   int        `json:"planSeq"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}
