package http

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// Contratos que consumen los handlers. Los implementan inventory.Service,
// production.WorkOrderUseCase, usecase.LookupUseCase, usecase.ReportUseCase y auth.AuthUseCase.

// Ledger operaciones del libro de inventario.
type Ledger interface {
	IssueNoSlip(ctx context.Context, cmd inventory.TransferCommand) (*inventory.Result, error)
	IssueBySlip(ctx context.Context, cmd inventory.SlipIssueCommand) (*inventory.Result, error)
	Receive(ctx context.Context, cmd inventory.ReceiveCommand) (*inventory.Result, error)
	ReturnIndividual(ctx context.Context, cmd inventory.ReceiveCommand) (*inventory.Result, error)
	ReceiveCancel(ctx context.Context, cmd inventory.CancelCommand) (*inventory.Result, error)
	InputCancel(ctx context.Context, cmd inventory.CancelCommand) (*inventory.Result, error)
	Release(ctx context.Context, cmd inventory.ReleaseCommand) (*inventory.Result, error)
	Outsource(ctx context.Context, cmd inventory.OutsourceCommand) (*inventory.Result, error)
	PartsInput(ctx context.Context, cmd inventory.InputCommand) (*inventory.Result, error)
	Stocktake(ctx context.Context, cmd inventory.StocktakeCommand) (*inventory.Result, error)
	Inspect(ctx context.Context, op string, cmd inventory.CheckCommand) (*inventory.Result, error)
	AssemblyResult(ctx context.Context, cmd inventory.CheckCommand) (*inventory.Result, error)
	Ship(ctx context.Context, cmd inventory.ShipCommand) (*inventory.ShipResult, error)
}

// Lookups consultas de solo lectura.
type Lookups interface {
	Combo(ctx context.Context, majorCode string) ([]dto.CodeResponse, error)
	Warehouses(ctx context.Context, saupj string) ([]dto.WarehouseResponse, error)
	Lines(ctx context.Context, saupj, opCode string) ([]dto.LineResponse, error)
	Barcode(ctx context.Context, saupj, boxNo, whsCode string) (*dto.BarcodeResponse, error)
	Kanban(ctx context.Context, kanbanNo string) (*dto.KanbanResponse, error)
	StocktakeLookup(ctx context.Context, saupj, whsCode, boxNo string) (*dto.StocktakeLookupResponse, error)
	ReceiveHistory(ctx context.Context, q dto.ReceiveHistoryQuery) ([]dto.MovementResponse, error)
	ShipmentRound(ctx context.Context, saupj, shipDate string) (*dto.RoundResponse, error)
}

// Reports documentos descargables.
type Reports interface {
	ExportReceipts(ctx context.Context, q dto.ReceiveHistoryQuery) ([]byte, string, error)
	ShipmentSlip(ctx context.Context, saupj, shipNo string) ([]byte, string, error)
}

// WorkOrders máquina de estados de órdenes de trabajo.
type WorkOrders interface {
	Apply(ctx context.Context, saupj, userID, orderNo, action string) (*entity.WorkOrder, error)
	ApplyNext(ctx context.Context, saupj, userID, opCode, lineCode, action string) (*entity.WorkOrder, error)
}

// Authenticator login de operadores.
type Authenticator interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}
