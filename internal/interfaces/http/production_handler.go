package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// ProductionHandler inspección, consumo en línea, resultados de montaje y órdenes de trabajo.
type ProductionHandler struct {
	ledger Ledger
	orders WorkOrders
	actors actorResolver
	log    zerolog.Logger
}

// NewProductionHandler construye el handler.
func NewProductionHandler(ledger Ledger, orders WorkOrders, systemUser string, log zerolog.Logger) *ProductionHandler {
	return &ProductionHandler{ledger: ledger, orders: orders, actors: actorResolver{systemUser: systemUser}, log: log}
}

// SMDCheck godoc
// @Summary      Resultados de inspección SMD
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckRequest  true  "opCode, lineCode, items: boxNo, result OK/NG"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/production/smd-check [post]
func (h *ProductionHandler) SMDCheck(c *fiber.Ctx) error {
	return h.inspect(c, inventory.OpSMDCheck)
}

// PlanCheck godoc
// @Summary      Resultados de inspección de plan
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckRequest  true  "opCode, lineCode, items: boxNo, result OK/NG"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/plan/check [post]
func (h *ProductionHandler) PlanCheck(c *fiber.Ctx) error {
	return h.inspect(c, inventory.OpPlanCheck)
}

func (h *ProductionHandler) inspect(c *fiber.Ctx, op string) error {
	var in dto.CheckRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.Inspect(c.UserContext(), op, inventory.CheckFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// AssemblyResult godoc
// @Summary      Resultados de montaje (OK entra a stock de línea)
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckRequest  true  "opCode, lineCode, orderNo, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/production/assembly-result [post]
func (h *ProductionHandler) AssemblyResult(c *fiber.Ctx) error {
	var in dto.CheckRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.AssemblyResult(c.UserContext(), inventory.CheckFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// PartsInput godoc
// @Summary      Consumo de partes en línea
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartsInputRequest  true  "lineCode, orderNo, items"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/production/parts-input [post]
func (h *ProductionHandler) PartsInput(c *fiber.Ctx) error {
	var in dto.PartsInputRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.PartsInput(c.UserContext(), inventory.InputFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// InputCancel godoc
// @Summary      Cancelar consumos de partes
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CancelRequest  true  "items: movementId"
// @Success      200  {object}  dto.Envelope{data=inventory.Result}
// @Failure      400  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/production/input-cancel [post]
func (h *ProductionHandler) InputCancel(c *fiber.Ctx) error {
	var in dto.CancelRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	res, err := h.ledger.InputCancel(c.UserContext(), inventory.CancelFromRequest(h.actors.resolve(c, in.Identity), in))
	return batchResponse(c, h.log, res, err, nil)
}

// Work godoc
// @Summary      Transición de orden de trabajo
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WorkRequest  true  "orderNo, action: ready|start|end"
// @Success      200  {object}  dto.Envelope{data=dto.WorkOrderResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/plan/work [post]
func (h *ProductionHandler) Work(c *fiber.Ctx) error {
	var in dto.WorkRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	a := h.actors.resolve(c, in.Identity)
	wo, err := h.orders.Apply(c.UserContext(), a.Saupj, a.UserID, in.OrderNo, in.Action)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, toWorkOrderResponse(wo), "orden "+wo.OrderNo+" → "+string(wo.Status))
}

// NextWork godoc
// @Summary      Transición de la siguiente orden abierta de la línea
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NextWorkRequest  true  "opCode, lineCode, action"
// @Success      200  {object}  dto.Envelope{data=dto.WorkOrderResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/plan/next-work [post]
func (h *ProductionHandler) NextWork(c *fiber.Ctx) error {
	var in dto.NextWorkRequest
	if err := bindJSON(c, &in); err != nil {
		return handleError(c, h.log, err)
	}
	a := h.actors.resolve(c, in.Identity)
	wo, err := h.orders.ApplyNext(c.UserContext(), a.Saupj, a.UserID, in.OpCode, in.LineCode, in.Action)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, toWorkOrderResponse(wo), "orden "+wo.OrderNo+" → "+string(wo.Status))
}

func toWorkOrderResponse(wo *entity.WorkOrder) dto.WorkOrderResponse {
	return dto.WorkOrderResponse{
		OrderNo:   wo.OrderNo,
		OpCode:    wo.OpCode,
		LineCode:  wo.LineCode,
		ItemCode:  wo.ItemCode,
		PlanQty:   wo.PlanQty,
		PlanSeq:   wo.PlanSeq,
		Status:    string(wo.Status),
		StartedAt: wo.StartedAt,
		EndedAt:   wo.EndedAt,
	}
}
