package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// TransferCommand salida de materiales sin vale: almacén origen -> destino.
type TransferCommand struct {
	Actor
	IssueDate   string
	FromWhsCode string
	ToWhsCode   string
	Items       []ItemLine
}

// IssueNoSlip traslada cada unidad de FromWhsCode a ToWhsCode. Cada ítem se descuenta,
// se acredita y se audita con un único movimiento TRANSFER.
func (svc *Service) IssueNoSlip(ctx context.Context, cmd TransferCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"fromWhsCode": cmd.FromWhsCode, "toWhsCode": cmd.ToWhsCode}); err != nil {
		return nil, err
	}
	if cmd.FromWhsCode == cmd.ToWhsCode {
		return nil, fmt.Errorf("%w: origen y destino iguales", domain.ErrInvalidInput)
	}
	date, err := svc.businessDate(cmd.IssueDate)
	if err != nil {
		return nil, err
	}
	m := fixed(move{typ: entity.MovementTransfer, from: cmd.FromWhsCode, to: cmd.ToWhsCode})
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}
	return svc.engine.Run(ctx, Batch{Op: OpIssueNoSlip, Lines: lines})
}

// SlipIssueCommand salida contra un vale de planificación. Los almacenes vienen del vale.
type SlipIssueCommand struct {
	Actor
	IssueDate string
	SlipNo    string
	Items     []ItemLine
}

// IssueBySlip bloquea el vale, traslada las unidades y lo marca emitido.
func (svc *Service) IssueBySlip(ctx context.Context, cmd SlipIssueCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"slipNo": cmd.SlipNo}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.IssueDate)
	if err != nil {
		return nil, err
	}

	var slip *entity.IssueSlip
	m := func() move {
		return move{typ: entity.MovementIssue, from: slip.FromWhs, to: slip.ToWhs, ref: slip.SlipNo}
	}
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}

	return svc.engine.Run(ctx, Batch{
		Op:    OpIssueSlip,
		Lines: lines,
		Before: func(ctx context.Context, s Stores) error {
			sl, err := s.Slips.GetForUpdate(ctx, cmd.Saupj, cmd.SlipNo)
			if err != nil {
				return err
			}
			if sl == nil {
				return fmt.Errorf("vale %s: %w", cmd.SlipNo, domain.ErrNotFound)
			}
			if sl.Status != entity.SlipOpen {
				return fmt.Errorf("vale %s ya emitido: %w", cmd.SlipNo, domain.ErrConflict)
			}
			slip = sl
			return nil
		},
		After: func(ctx context.Context, s Stores, _ *Result) error {
			ok, err := s.Slips.MarkIssued(ctx, cmd.Saupj, cmd.SlipNo, cmd.UserID, svc.now())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("vale %s ya emitido: %w", cmd.SlipNo, domain.ErrConflict)
			}
			return nil
		},
	})
}

// ReleaseCommand entrega de material del almacén al stock de una línea.
type ReleaseCommand struct {
	Actor
	ReleaseDate string
	WhsCode     string
	LineCode    string
	Items       []ItemLine
}

// Release traslada las unidades a la ubicación de stock de la línea (movimiento RELEASE).
func (svc *Service) Release(ctx context.Context, cmd ReleaseCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"whsCode": cmd.WhsCode, "lineCode": cmd.LineCode}); err != nil {
		return nil, err
	}
	date, err := svc.businessDate(cmd.ReleaseDate)
	if err != nil {
		return nil, err
	}
	to, err := svc.lineWhs(ctx, cmd.Saupj, cmd.LineCode)
	if err != nil {
		return nil, err
	}
	m := fixed(move{typ: entity.MovementRelease, from: cmd.WhsCode, to: to, ref: cmd.LineCode})
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}
	return svc.engine.Run(ctx, Batch{Op: OpRelease, Lines: lines})
}

// OutsourceCommand envío de unidades a un proveedor externo (almacén tipo V).
type OutsourceCommand struct {
	Actor
	OutDate    string
	WhsCode    string
	VendorCode string
	Items      []ItemLine
}

// Outsource traslada al almacén del proveedor con movimiento OUTSOURCE_OUT.
func (svc *Service) Outsource(ctx context.Context, cmd OutsourceCommand) (*Result, error) {
	if err := requireFields(cmd.Actor, map[string]string{"whsCode": cmd.WhsCode, "vendorCode": cmd.VendorCode}); err != nil {
		return nil, err
	}
	if cmd.WhsCode == cmd.VendorCode {
		return nil, fmt.Errorf("%w: origen y proveedor iguales", domain.ErrInvalidInput)
	}
	date, err := svc.businessDate(cmd.OutDate)
	if err != nil {
		return nil, err
	}
	m := fixed(move{typ: entity.MovementOutsourceOut, from: cmd.WhsCode, to: cmd.VendorCode, ref: cmd.VendorCode})
	lines := make([]Line, len(cmd.Items))
	for i, it := range cmd.Items {
		lines[i] = svc.moveLine(cmd.Actor, date, m, it)
	}
	return svc.engine.Run(ctx, Batch{Op: OpOutsourcing, Lines: lines})
}
