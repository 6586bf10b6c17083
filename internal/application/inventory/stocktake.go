package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// CountLine cantidad física contada de una unidad.
type CountLine struct {
	BoxNo     string
	ItemCode  string
	ActualQty decimal.Decimal
}

// StocktakeCommand inventario físico de un almacén.
type StocktakeCommand struct {
	Actor
	CountDate string
	WhsCode   string
	Items     []CountLine
}

// Stocktake fija cada unidad a la cantidad contada. La diferencia del movimiento se
// calcula contra la cantidad bloqueada en BD, no contra lo que el PDA mostró.
func (svc *Service) Stocktake(ctx context.Context, cmd StocktakeCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"whsCode": cmd.WhsCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.CountDate)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = Line{Key: it.BoxNo, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
			if err := checkUnit(it.BoxNo, it.ItemCode, "", it.ActualQty); err != nil {
				return VerdictNone, err
			}
			if it.ActualQty.IsNegative() {
				return VerdictNone, fmt.Errorf("%w: cantidad contada negativa", domain.ErrInvalidInput)
			}
			key := entity.StockKey{Saupj: cmd.Saupj, BoxNo: it.BoxNo, WhsCode: cmd.WhsCode}
			cur, err := s.Stock.GetForUpdate(ctx, key)
			if err != nil {
				return VerdictNone, err
			}
			system := decimal.Zero
			itemCode, lotNo := it.ItemCode, ""
			if cur != nil {
				system = cur.Quantity
				lotNo = cur.LotNo
				if itemCode == "" {
					itemCode = cur.ItemCode
				}
			}
			if itemCode == "" {
				return VerdictNone, fmt.Errorf("box %s sin stock previo: %w", it.BoxNo, domain.ErrNotFound)
			}
			now := svc.now()
			if err := s.Stock.Set(ctx, &entity.StockRecord{
				Saupj:     cmd.Saupj,
				BoxNo:     it.BoxNo,
				WhsCode:   cmd.WhsCode,
				ItemCode:  itemCode,
				LotNo:     lotNo,
				Quantity:  it.ActualQty,
				UpdUser:   cmd.UserID,
				UpdatedAt: now,
			}); err != nil {
				return VerdictNone, err
			}
			return VerdictNone, record(ctx, s, &entity.MovementRecord{
				Saupj:    cmd.Saupj,
				MovDate:  date,
				BoxNo:    it.BoxNo,
				ItemCode: itemCode,
				ToWhs:    cmd.WhsCode,
				Quantity: it.ActualQty.Sub(system),
				Type:     entity.MovementStocktake,
				RegUser:  cmd.UserID,
				RegDate:  now,
			})
		}}
	}
	return svc.engine.Run(ctx, Batch{Op: OpStocktake, Lines: lines})
}
