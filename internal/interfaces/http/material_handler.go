package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MaterialHandler pantallas de material: salida, recepción, liberación a línea e inventario físico.
type MaterialHandler struct {
	ledger  Ledger
	lookups Lookups
	reports Reports
	actors  actorResolver
	log     zerolog.Logger
}

// NewMaterialHandler construye el handler. systemUser es el userId cuando el PDA no manda uno.
func NewMaterialHandler(ledger Ledger, lookups Lookups, reports Reports, systemUser string, log zerolog.Logger) *MaterialHandler {
	return &MaterialHandler{ledger: ledger, lookups: lookups, reports: reports, actors: actorResolver{systemUser: systemUser}, log: log}
}

// Barcode godoc
// @Summary      Resolver BOX/serial escaneado
// @Tags         material
// @Produce      json
// @Param        boxNo    query  string  true   "unidad"
// @Param        whsCode  query  string  false  "almacén (vacío = todas las ubicaciones)"
// @Success      200  {object}  dto.Envelope{data=dto.BarcodeResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/barcode [get]
func (h *MaterialHandler) Barcode(c *fiber.Ctx) error {
	out, err := h.lookups.Barcode(c.UserContext(), h.actors.saupj(c), c.Query("boxNo"), c.Query("whsCode"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// IssueNoSlip godoc
// @Summary      Salida sin vale (traspaso entre almacenes)
// @Tags         material
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueNoSlipRequest  true  "fromWhsCode, toWhsCode, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/issue-no-slip [post]
func (h *MaterialHandler) IssueNoSlip(c *fiber.Ctx) error {
	var in dto.IssueNoSlipRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.IssueNoSlip(c.UserContext(), inventory.TransferFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// IssueSlip godoc
// @Summary      Salida contra vale (todo o nada)
// @Tags         material
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueSlipRequest  true  "slipNo, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/material/issue-slip [post]
func (h *MaterialHandler) IssueSlip(c *fiber.Ctx) error {
	var in dto.IssueSlipRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.IssueBySlip(c.UserContext(), inventory.SlipIssueFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// Receive godoc
// @Summary      Recepción de material
// @Tags         material
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "whsCode, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/receive [post]
func (h *MaterialHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.Receive(c.UserContext(), inventory.ReceiveFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// ReceiveHistory godoc
// @Summary      Historial de recepciones
// @Tags         material
// @Produce      json
// @Param        whsCode   query  string  false  "almacén"
// @Param        fromDate  query  string  false  "YYYYMMDD"
// @Param        toDate    query  string  false  "YYYYMMDD"
// @Success      200  {object}  dto.Envelope{data=[]dto.MovementResponse}
// @Router       /api/material/receive [get]
func (h *MaterialHandler) ReceiveHistory(c *fiber.Ctx) error {
	q, err := h.historyQuery(c)
	if err != nil {
		return handleError(c, h.log, err)
	}
	out, err := h.lookups.ReceiveHistory(c.UserContext(), q)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// ExportReceipts godoc
// @Summary      Historial de recepciones en Excel
// @Tags         material
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        whsCode   query  string  false  "almacén"
// @Param        fromDate  query  string  false  "YYYYMMDD"
// @Param        toDate    query  string  false  "YYYYMMDD"
// @Success      200
// @Router       /api/material/receive/export [get]
func (h *MaterialHandler) ExportReceipts(c *fiber.Ctx) error {
	q, err := h.historyQuery(c)
	if err != nil {
		return handleError(c, h.log, err)
	}
	data, filename, err := h.reports.ExportReceipts(c.UserContext(), q)
	if err != nil {
		return handleError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *MaterialHandler) historyQuery(c *fiber.Ctx) (dto.ReceiveHistoryQuery, error) {
	var q dto.ReceiveHistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return q, err
	}
	q.Saupj = h.actors.saupj(c)
	return q, nil
}

// ReceiveCancel godoc
// @Summary      Cancelar recepciones
// @Tags         material
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CancelRequest  true  "items: movementId"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/material/receive-cancel [post]
func (h *MaterialHandler) ReceiveCancel(c *fiber.Ctx) error {
	var in dto.CancelRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.ReceiveCancel(c.UserContext(), inventory.CancelFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// Release godoc
// @Summary      Liberación de almacén a línea
// @Tags         material
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReleaseRequest  true  "whsCode, lineCode, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/release [post]
func (h *MaterialHandler) Release(c *fiber.Ctx) error {
	var in dto.ReleaseRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.Release(c.UserContext(), inventory.ReleaseFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// StocktakeLookup godoc
// @Summary      Cantidad de sistema para inventario físico
// @Tags         material
// @Produce      json
// @Param        boxNo    query  string  true  "unidad"
// @Param        whsCode  query  string  true  "almacén"
// @Success      200  {object}  dto.Envelope{data=dto.StocktakeLookupResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/stocktaking [get]
func (h *MaterialHandler) StocktakeLookup(c *fiber.Ctx) error {
	out, err := h.lookups.StocktakeLookup(c.UserContext(), h.actors.saupj(c), c.Query("whsCode"), c.Query("boxNo"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// Stocktake godoc
// @Summary      Registrar inventario físico
// @Tags         material
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StocktakeRequest  true  "whsCode, items: boxNo, actualQty"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/material/stocktaking [post]
func (h *MaterialHandler) Stocktake(c *fiber.Ctx) error {
	var in dto.StocktakeRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.Stocktake(c.UserContext(), inventory.StocktakeFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}
