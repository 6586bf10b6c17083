package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/pkg/bizdate"
)

// ShipCommand despacho de unidades a un cliente desde un almacén.
type ShipCommand struct {
	Actor
	ShipDate     string
	CustomerCode string
	WhsCode      string
	Items        []ItemLine
}

// ShipResult resultado del lote con el documento generado.
type ShipResult struct {
	*Result
	ShipNo string `json:"shipNo"`
	Round  int    `json:"round"`
}

// ShipNo número de despacho: planta, fecha y vuelta del día.
func ShipNo(saupj string, round int, date string) string {
	return fmt.Sprintf("SH%s-%s-%02d", saupj, date, round)
}

// Ship calcula la vuelta del día, crea la cabecera y por cada unidad descuenta el
// almacén, agrega la línea y registra SHIP_OUT con el número de despacho.
func (svc *Service) Ship(ctx context.Context, cmd ShipCommand) (*ShipResult, error) {
	if err := requireFields(cmd.Actor, map[string]string{"whsCode": cmd.WhsCode, "customerCode": cmd.CustomerCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.ShipDate)
	if err != nil {
		return nil, err
	}

	out := &ShipResult{}
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = Line{Key: it.BoxNo, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
			mv := move{typ: entity.MovementShipOut, from: cmd.WhsCode, ref: out.ShipNo}
			itemCode, err := svc.applyMove(ctx, s, cmd.Actor, date, mv, it)
			if err != nil {
				return VerdictNone, err
			}
			return VerdictNone, s.Shipments.AddLine(ctx, &entity.ShipmentLine{
				ShipNo:   out.ShipNo,
				BoxNo:    it.BoxNo,
				ItemCode: itemCode,
				Quantity: it.Qty,
			})
		}}
	}

	res, err := svc.engine.Run(ctx, Batch{
		Op:    OpShipment,
		Lines: lines,
		Before: func(ctx context.Context, s Stores) error {
			round, err := s.Shipments.NextRound(ctx, cmd.Saupj, date)
			if err != nil {
				return err
			}
			out.Round = round
			out.ShipNo = ShipNo(cmd.Saupj, round, bizdate.Compact(date))
			return s.Shipments.CreateHeader(ctx, &entity.Shipment{
				ShipNo:       out.ShipNo,
				Saupj:        cmd.Saupj,
				ShipDate:     date,
				Round:        round,
				CustomerCode: cmd.CustomerCode,
				WhsCode:      cmd.WhsCode,
				RegUser:      cmd.UserID,
				RegDate:      svc.now(),
			})
		},
	})
	out.Result = res
	if err != nil {
		return out, err
	}
	return out, nil
}
