package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/inventory"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
	"github.com/jhoicas/mes-pda-api/pkg/bizdate"
)

// LookupUseCase consultas de solo lectura que el PDA hace antes de enviar un lote.
type LookupUseCase struct {
	masters   repository.MasterRepository
	items     repository.ItemRepository
	stock     repository.StockRepository
	movements repository.MovementRepository
	shipments repository.ShipmentRepository
	loc       *time.Location
	now       func() time.Time
}

// NewLookupUseCase construye el caso de uso. loc es la zona horaria de la planta.
func NewLookupUseCase(
	masters repository.MasterRepository,
	items repository.ItemRepository,
	stock repository.StockRepository,
	movements repository.MovementRepository,
	shipments repository.ShipmentRepository,
	loc *time.Location,
) *LookupUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &LookupUseCase{
		masters:   masters,
		items:     items,
		stock:     stock,
		movements: movements,
		shipments: shipments,
		loc:       loc,
		now:       time.Now,
	}
}

// Combo lista de códigos de un grupo.
func (uc *LookupUseCase) Combo(ctx context.Context, majorCode string) ([]dto.CodeResponse, error) {
	if strings.TrimSpace(majorCode) == "" {
		return nil, fmt.Errorf("%w: majorCode requerido", domain.ErrInvalidInput)
	}
	codes, err := uc.masters.Codes(ctx, majorCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, dto.CodeResponse{Code: c.MinorCode, Name: c.CodeName})
	}
	return out, nil
}

// Warehouses almacenes activos de la planta.
func (uc *LookupUseCase) Warehouses(ctx context.Context, saupj string) ([]dto.WarehouseResponse, error) {
	list, err := uc.masters.Warehouses(ctx, saupj)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.WarehouseResponse{WhsCode: w.WhsCode, WhsName: w.WhsName, WhsType: w.WhsType})
	}
	return out, nil
}

// Lines líneas de la planta; opCode vacío = todas.
func (uc *LookupUseCase) Lines(ctx context.Context, saupj, opCode string) ([]dto.LineResponse, error) {
	list, err := uc.masters.Lines(ctx, saupj, opCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LineResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LineResponse{LineCode: l.LineCode, LineName: l.LineName, OpCode: l.OpCode, LineWhs: l.LineWhs})
	}
	return out, nil
}

// Barcode resuelve un BOX/serial: ítem y cantidades por almacén. Con whsCode solo
// considera esa ubicación. Sin stock disponible devuelve ErrNotFound.
func (uc *LookupUseCase) Barcode(ctx context.Context, saupj, boxNo, whsCode string) (*dto.BarcodeResponse, error) {
	if strings.TrimSpace(boxNo) == "" {
		return nil, fmt.Errorf("%w: boxNo requerido", domain.ErrInvalidInput)
	}
	rows, err := uc.stock.ListByBox(ctx, saupj, boxNo)
	if err != nil {
		return nil, err
	}
	out := &dto.BarcodeResponse{BoxNo: boxNo, TotalQty: decimal.Zero, Locations: []dto.StockLocation{}}
	for _, r := range rows {
		if whsCode != "" && r.WhsCode != whsCode {
			continue
		}
		if !r.Quantity.IsPositive() {
			continue
		}
		out.ItemCode = r.ItemCode
		out.TotalQty = out.TotalQty.Add(r.Quantity)
		out.Locations = append(out.Locations, dto.StockLocation{WhsCode: r.WhsCode, Qty: r.Quantity, LotNo: r.LotNo})
	}
	if len(out.Locations) == 0 {
		return nil, fmt.Errorf("box %s sin stock: %w", boxNo, domain.ErrNotFound)
	}
	uc.describe(ctx, out)
	return out, nil
}

func (uc *LookupUseCase) describe(ctx context.Context, out *dto.BarcodeResponse) {
	item, err := uc.items.GetByCode(ctx, out.ItemCode)
	if err != nil || item == nil {
		return
	}
	out.ItemName, out.Spec, out.Unit = item.ItemName, item.Spec, item.Unit
}

// Kanban clasifica el kanban escaneado como valid, invalid o expired.
func (uc *LookupUseCase) Kanban(ctx context.Context, kanbanNo string) (*dto.KanbanResponse, error) {
	if strings.TrimSpace(kanbanNo) == "" {
		return nil, fmt.Errorf("%w: kanbanNo requerido", domain.ErrInvalidInput)
	}
	k, err := uc.masters.Kanban(ctx, kanbanNo)
	if err != nil {
		return nil, err
	}
	v := inventory.ClassifyKanban(k, uc.now(), uc.loc)
	out := &dto.KanbanResponse{KanbanNo: kanbanNo, Validity: string(v.Validity), Reason: v.Reason}
	if k != nil {
		out.ItemCode, out.BoxNo, out.Status = k.ItemCode, k.BoxNo, k.Status
	}
	if v.Expiry != nil {
		out.ExpiryDate = bizdate.Compact(*v.Expiry)
	}
	return out, nil
}

// StocktakeLookup cantidad de sistema de la unidad en el almacén a contar.
func (uc *LookupUseCase) StocktakeLookup(ctx context.Context, saupj, whsCode, boxNo string) (*dto.StocktakeLookupResponse, error) {
	if strings.TrimSpace(whsCode) == "" || strings.TrimSpace(boxNo) == "" {
		return nil, fmt.Errorf("%w: whsCode y boxNo requeridos", domain.ErrInvalidInput)
	}
	rec, err := uc.stock.Get(ctx, entity.StockKey{Saupj: saupj, BoxNo: boxNo, WhsCode: whsCode})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("box %s en %s: %w", boxNo, whsCode, domain.ErrNotFound)
	}
	out := &dto.StocktakeLookupResponse{BoxNo: boxNo, WhsCode: whsCode, ItemCode: rec.ItemCode, SystemQty: rec.Quantity}
	if item, err := uc.items.GetByCode(ctx, rec.ItemCode); err == nil && item != nil {
		out.ItemName = item.ItemName
	}
	return out, nil
}

// ReceiveHistory recepciones de la planta filtradas por almacén y rango de fechas.
func (uc *LookupUseCase) ReceiveHistory(ctx context.Context, q dto.ReceiveHistoryQuery) ([]dto.MovementResponse, error) {
	q.DefaultPage()
	f := repository.MovementFilter{
		Saupj:   q.Saupj,
		Type:    entity.MovementReceive,
		WhsCode: q.WhsCode,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	if q.FromDate != "" {
		from, err := bizdate.Parse(q.FromDate, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		f.From = &from
	}
	if q.ToDate != "" {
		to, err := bizdate.Parse(q.ToDate, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, fmt.Errorf("%w: toDate anterior a fromDate", domain.ErrInvalidInput)
	}
	rows, err := uc.movements.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMovementResponse(m, uc.loc))
	}
	return out, nil
}

// ShipmentRound vuelta que tendría el próximo despacho del día (vacío = hoy).
func (uc *LookupUseCase) ShipmentRound(ctx context.Context, saupj, shipDate string) (*dto.RoundResponse, error) {
	date, err := bizdate.ParseOr(shipDate, uc.loc, bizdate.Today(uc.now(), uc.loc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	round, err := uc.shipments.NextRound(ctx, saupj, date)
	if err != nil {
		return nil, err
	}
	return &dto.RoundResponse{ShipDate: bizdate.Compact(date), Round: round}, nil
}

func toMovementResponse(m *entity.MovementRecord, loc *time.Location) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		MovDate:     bizdate.Compact(m.MovDate),
		BoxNo:       m.BoxNo,
		ItemCode:    m.ItemCode,
		FromWhsCode: m.FromWhs,
		ToWhsCode:   m.ToWhs,
		Qty:         m.Quantity,
		Type:        m.Type,
		RefNo:       m.RefNo,
		RegUser:     m.RegUser,
		RegDate:     m.RegDate.In(loc).Format("2006-01-02 15:04:05"),
		Cancelled:   m.Cancelled,
	}
}
