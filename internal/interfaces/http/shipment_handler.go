package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
)

// ShipmentHandler despachos, envíos a proveedor y devoluciones.
type ShipmentHandler struct {
	ledger  Ledger
	lookups Lookups
	reports Reports
	actors  actorResolver
	log     zerolog.Logger
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(ledger Ledger, lookups Lookups, reports Reports, systemUser string, log zerolog.Logger) *ShipmentHandler {
	return &ShipmentHandler{ledger: ledger, lookups: lookups, reports: reports, actors: actorResolver{systemUser: systemUser}, log: log}
}

// Ship godoc
// @Summary      Despacho (todo o nada)
// @Tags         shipment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShipmentRequest  true  "customerCode, whsCode, items"
// @Success      200  {object}  dto.Envelope{data=inventory.ShipResult}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/shipment [post]
func (h *ShipmentHandler) Ship(c *fiber.Ctx) error {
	var in dto.ShipmentRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	out, err := h.ledger.Ship(c.UserContext(), inventory.ShipFromRequest(h.actors.resolve(c, in.Identity), in))
	var res *inventory.Result
	if out != nil {
		res = out.Result
	}
	if err != nil {
		return batchResponse(c, h.log, res, err, nil)
	}
	return batchResponse(c, h.log, res, nil, out)
}

// Round godoc
// @Summary      Vuelta siguiente de despacho
// @Tags         shipment
// @Produce      json
// @Param        shipDate  query  string  false  "YYYYMMDD (vacío = hoy)"
// @Success      200  {object}  dto.Envelope{data=dto.RoundResponse}
// @Router       /api/shipment/round [get]
func (h *ShipmentHandler) Round(c *fiber.Ctx) error {
	out, err := h.lookups.ShipmentRound(c.UserContext(), h.actors.saupj(c), c.Query("shipDate"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// Slip godoc
// @Summary      Comprobante de despacho en PDF
// @Tags         shipment
// @Produce      application/pdf
// @Param        shipNo  path  string  true  "número de despacho"
// @Success      200
// @Failure      400  {object}  dto.Envelope
// @Router       /api/shipment/{shipNo}/slip [get]
func (h *ShipmentHandler) Slip(c *fiber.Ctx) error {
	data, filename, err := h.reports.ShipmentSlip(c.UserContext(), h.actors.saupj(c), c.Params("shipNo"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// Outsource godoc
// @Summary      Envío a proveedor externo (todo o nada)
// @Tags         shipment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutsourcingRequest  true  "whsCode, vendorCode, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/outsourcing [post]
func (h *ShipmentHandler) Outsource(c *fiber.Ctx) error {
	var in dto.OutsourcingRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.Outsource(c.UserContext(), inventory.OutsourceFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// ReturnIndividual godoc
// @Summary      Devolución individual
// @Tags         shipment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "whsCode, reason, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/return/individual [post]
func (h *ShipmentHandler) ReturnIndividual(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.ReturnIndividual(c.UserContext(), inventory.ReturnFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}
