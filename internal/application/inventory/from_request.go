package inventory

import "github.com/jhoicas/mes-pda-api/internal/application/dto"

// Adaptadores request HTTP -> comando. El Actor ya viene resuelto (token o body).

func itemLines(in []dto.ItemRequest) []ItemLine {
	out := make([]ItemLine, len(in))
	for i, it := range in {
		out[i] = ItemLine{BoxNo: it.BoxNo, ItemCode: it.ItemCode, LotNo: it.LotNo, Qty: it.Qty}
	}
	return out
}

// TransferFromRequest issue-no-slip.
func TransferFromRequest(a Actor, in dto.IssueNoSlipRequest) TransferCommand {
	return TransferCommand{Actor: a, IssueDate: in.IssueDate, FromWhsCode: in.FromWhsCode, ToWhsCode: in.ToWhsCode, Items: itemLines(in.Items)}
}

// SlipIssueFromRequest issue-slip.
func SlipIssueFromRequest(a Actor, in dto.IssueSlipRequest) SlipIssueCommand {
	return SlipIssueCommand{Actor: a, IssueDate: in.IssueDate, SlipNo: in.SlipNo, Items: itemLines(in.Items)}
}

// ReceiveFromRequest receive.
func ReceiveFromRequest(a Actor, in dto.ReceiveRequest) ReceiveCommand {
	return ReceiveCommand{Actor: a, ReceiveDate: in.ReceiveDate, WhsCode: in.WhsCode, RefNo: in.RefNo, Items: itemLines(in.Items)}
}

// ReturnFromRequest return/individual; el motivo queda como referencia del movimiento.
func ReturnFromRequest(a Actor, in dto.ReturnRequest) ReceiveCommand {
	return ReceiveCommand{Actor: a, ReceiveDate: in.ReturnDate, WhsCode: in.WhsCode, RefNo: in.Reason, Items: itemLines(in.Items)}
}

// CancelFromRequest receive-cancel / input-cancel.
func CancelFromRequest(a Actor, in dto.CancelRequest) CancelCommand {
	ids := make([]string, len(in.Items))
	for i, it := range in.Items {
		ids[i] = it.MovementID
	}
	return CancelCommand{Actor: a, MovementIDs: ids}
}

// ReleaseFromRequest release.
func ReleaseFromRequest(a Actor, in dto.ReleaseRequest) ReleaseCommand {
	return ReleaseCommand{Actor: a, ReleaseDate: in.ReleaseDate, WhsCode: in.WhsCode, LineCode: in.LineCode, Items: itemLines(in.Items)}
}

// OutsourceFromRequest outsourcing.
func OutsourceFromRequest(a Actor, in dto.OutsourcingRequest) OutsourceCommand {
	return OutsourceCommand{Actor: a, OutDate: in.OutDate, WhsCode: in.WhsCode, VendorCode: in.VendorCode, Items: itemLines(in.Items)}
}

// InputFromRequest parts-input.
func InputFromRequest(a Actor, in dto.PartsInputRequest) InputCommand {
	return InputCommand{Actor: a, InputDate: in.InputDate, LineCode: in.LineCode, OrderNo: in.OrderNo, Items: itemLines(in.Items)}
}

// StocktakeFromRequest stocktaking.
func StocktakeFromRequest(a Actor, in dto.StocktakeRequest) StocktakeCommand {
	items := make([]CountLine, len(in.Items))
	for i, it := range in.Items {
		items[i] = CountLine{BoxNo: it.BoxNo, ItemCode: it.ItemCode, ActualQty: it.ActualQty}
	}
	return StocktakeCommand{Actor: a, CountDate: in.CountDate, WhsCode: in.WhsCode, Items: items}
}

// CheckFromRequest smd-check, plan/check y assembly-result.
func CheckFromRequest(a Actor, in dto.CheckRequest) CheckCommand {
	items := make([]CheckLine, len(in.Items))
	for i, it := range in.Items {
		items[i] = CheckLine{BoxNo: it.BoxNo, ItemCode: it.ItemCode, Qty: it.Qty, Result: it.Result, CheckedAt: it.CheckedAt}
	}
	return CheckCommand{Actor: a, CheckDate: in.CheckDate, OpCode: in.OpCode, LineCode: in.LineCode, OrderNo: in.OrderNo, Items: items}
}

// ShipFromRequest shipment.
func ShipFromRequest(a Actor, in dto.ShipmentRequest) ShipCommand {
	return ShipCommand{Actor: a, ShipDate: in.ShipDate, CustomerCode: in.CustomerCode, WhsCode: in.WhsCode, Items: itemLines(in.Items)}
}
