package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// ReceiveCommand recepción de unidades en un almacén.
type ReceiveCommand struct {
	Actor
	ReceiveDate string
	WhsCode     string
	RefNo       string
	Items       []ItemLine
}

// Receive acredita cada unidad y registra RECEIVE.
func (svc *Service) Receive(ctx context.Context, cmd ReceiveCommand) (*Result, error) {
	return svc.inbound(ctx, OpReceive, entity.MovementReceive, cmd)
}

// ReturnIndividual devolución unitaria desde cliente o línea (RETURN_IN).
func (svc *Service) ReturnIndividual(ctx context.Context, cmd ReceiveCommand) (*Result, error) {
	return svc.inbound(ctx, OpReturn, entity.MovementReturnIn, cmd)
}

func (svc *Service) inbound(ctx context.Context, op, typ string, cmd ReceiveCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"whsCode": cmd.WhsCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.ReceiveDate)
	if err != nil {
		return nil, err
	}
	m := fixed(move{typ: typ, to: cmd.WhsCode, ref: cmd.RefNo})
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}
	return svc.engine.Run(ctx, Batch{Op: op, Lines: lines})
}

// CancelCommand cancelación de movimientos por id.
type CancelCommand struct {
	Actor
	MovementIDs []string
}

// ReceiveCancel revierte recepciones: descuenta el destino y marca el movimiento cancelado.
func (svc *Service) ReceiveCancel(ctx context.Context, cmd CancelCommand) (*Result, error) {
	return svc.cancel(ctx, OpReceiveCancel, entity.MovementReceive, cmd)
}

// InputCancel revierte consumos de partes: devuelve la cantidad al stock de línea.
func (svc *Service) InputCancel(ctx context.Context, cmd CancelCommand) (*Result, error) {
	return svc.cancel(ctx, OpInputCancel, entity.MovementInput, cmd)
}

func (svc *Service) cancel(ctx context.Context, op, typ string, cmd CancelCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, nil); err != nil {
		return nil, err
	}
	lines := make([]Line, len(cmd.MovementIDs))
	for i, id := range cmd.MovementIDs {
		id := strings.TrimSpace(id)
		lines[i] = Line{Key: id, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
			return VerdictNone, svc.reverse(ctx, s, cmd.Actor, typ, id)
		}}
	}
	return svc.engine.Run(ctx, Batch{Op: op, Lines: lines})
}

// reverse bloquea el movimiento original, aplica el delta inverso y marca la cancelación.
// La marca es condicional (cancel_yn = 'N'): dos cancelaciones concurrentes no revierten dos veces.
func (svc *Service) reverse(ctx context.Context, s Stores, a Actor, typ, id string) error {
	if id == "" {
		return fmt.Errorf("%w: movementId vacío", domain.ErrInvalidInput)
	}
	m, err := s.Movements.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if m == nil || m.Saupj != a.Saupj {
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
	}
	if m.Type != typ {
		return fmt.Errorf("%w: movimiento %s es %s", domain.ErrInvalidInput, id, m.Type)
	}
	if m.Cancelled {
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrAlreadyCancelled)
	}

	now := svc.now()
	switch typ {
	case entity.MovementReceive:
		key := entity.StockKey{Saupj: m.Saupj, BoxNo: m.BoxNo, WhsCode: m.ToWhs}
		if _, err := debit(ctx, s, key, m.Quantity, a.UserID); err != nil {
			return err
		}
	case entity.MovementInput:
		key := entity.StockKey{Saupj: m.Saupj, BoxNo: m.BoxNo, WhsCode: m.FromWhs}
		if err := credit(ctx, s, key, m.ItemCode, "", m.Quantity, a.UserID, now); err != nil {
			return err
		}
	}

	ok, err := s.Movements.MarkCancelled(ctx, id, a.UserID, now)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrAlreadyCancelled)
	}
	return nil
}
