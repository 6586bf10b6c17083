package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// InputCommand consumo de partes en una línea contra una orden de trabajo.
type InputCommand struct {
	Actor
	InputDate string
	LineCode  string
	OrderNo   string
	Items     []ItemLine
}

// PartsInput descuenta las partes del stock de la línea (movimiento INPUT).
func (svc *Service) PartsInput(ctx context.Context, cmd InputCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"lineCode": cmd.LineCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.InputDate)
	if err != nil {
		return nil, err
	}
	from, err := svc.lineWhs(ctx, cmd.Saupj, cmd.LineCode)
	if err != nil {
		return nil, err
	}
	m := fixed(move{typ: entity.MovementInput, from: from, ref: cmd.OrderNo})
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}
	return svc.engine.Run(ctx, Batch{Op: OpPartsInput, Lines: lines})
}

// CheckLine resultado de una unidad inspeccionada.
type CheckLine struct {
	BoxNo     string
	ItemCode  string
	Qty       decimal.Decimal
	Result    string
	CheckedAt *time.Time
}

func (c CheckLine) check() error {
	if err := checkUnit(c.BoxNo, c.ItemCode, "", c.Qty); err != nil {
		return err
	}
	if c.Result != entity.ResultOK && c.Result != entity.ResultNG {
		return fmt.Errorf("%w: resultado %q (OK|NG)", domain.ErrInvalidInput, c.Result)
	}
	return nil
}

// CheckCommand lote de inspección de un proceso y una línea.
type CheckCommand struct {
	Actor
	CheckDate string
	OpCode    string
	LineCode  string
	OrderNo   string
	Items     []CheckLine
}

// Inspect registra resultados OK/NG (inspección SMD o de plan). op debe ser OpSMDCheck u OpPlanCheck.
func (svc *Service) Inspect(ctx context.Context, op string, cmd CheckCommand) (*Result, error) {
	if op != OpSMDCheck && op != OpPlanCheck {
		return nil, fmt.Errorf("%w: operación de inspección %q", domain.ErrInvalidInput, op)
	}
	if err := requireFields(cmd.Actor, map[string]string{"opCode": cmd.OpCode, "lineCode": cmd.LineCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.CheckDate)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = Line{Key: it.BoxNo, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
			return svc.inspect(ctx, s, cmd, date, it)
		}}
	}
	return svc.engine.Run(ctx, Batch{Op: op, Lines: lines})
}

func (svc *Service) inspect(ctx context.Context, s Stores, cmd CheckCommand, date time.Time, it CheckLine) (Verdict, error) {
	if err := it.check(); err != nil {
		return VerdictNone, err
	}
	checkedAt := svc.now()
	if it.CheckedAt != nil {
		checkedAt = *it.CheckedAt
	}
	rec := &entity.InspectionRecord{
		ID:        uuid.New().String(),
		Saupj:     cmd.Saupj,
		OpCode:    cmd.OpCode,
		LineCode:  cmd.LineCode,
		CheckDate: date,
		OrderNo:   cmd.OrderNo,
		BoxNo:     it.BoxNo,
		Result:    it.Result,
		CheckedAt: checkedAt,
		RegUser:   cmd.UserID,
	}
	created, err := s.Inspections.Create(ctx, rec)
	if err != nil {
		return VerdictNone, err
	}
	if !created {
		return VerdictNone, fmt.Errorf("box %s ya inspeccionado: %w", it.BoxNo, domain.ErrDuplicateScan)
	}
	if rec.IsOK() {
		return VerdictOK, nil
	}
	return VerdictNG, nil
}

// AssemblyResult registra el resultado de ensamble por serial. Los seriales OK
// entran al stock de la línea con movimiento PRODUCE; los NG solo quedan inspeccionados.
func (svc *Service) AssemblyResult(ctx context.Context, cmd CheckCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"opCode": cmd.OpCode, "lineCode": cmd.LineCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.CheckDate)
	if err != nil {
		return nil, err
	}
	lineWhs, err := svc.lineWhs(ctx, cmd.Saupj, cmd.LineCode)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = Line{Key: it.BoxNo, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
			v, err := svc.inspect(ctx, s, cmd, date, it)
			if err != nil || v != VerdictOK {
				return v, err
			}
			qty := it.Qty
			if !qty.IsPositive() {
				qty = decimal.NewFromInt(1)
			}
			now := svc.now()
			key := entity.StockKey{Saupj: cmd.Saupj, BoxNo: it.BoxNo, WhsCode: lineWhs}
			if err := credit(ctx, s, key, it.ItemCode, "", qty, cmd.UserID, now); err != nil {
				return VerdictNone, err
			}
			return v, record(ctx, s, &entity.MovementRecord{
				Saupj:    cmd.Saupj,
				MovDate:  date,
				BoxNo:    it.BoxNo,
				ItemCode: it.ItemCode,
				ToWhs:    lineWhs,
				Quantity: qty,
				Type:     entity.MovementProduce,
				RefNo:    cmd.OrderNo,
				RegUser:  cmd.UserID,
				RegDate:  now,
			})
		}}
	}
	return svc.engine.Run(ctx, Batch{Op: OpAssembly, Lines: lines})
}
