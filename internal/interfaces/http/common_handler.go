package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/domain/inventory"
)

// CommonHandler combos y maestros que el PDA carga al abrir cada pantalla.
type CommonHandler struct {
	lookups Lookups
	actors  actorResolver
	log     zerolog.Logger
}

// NewCommonHandler construye el handler.
func NewCommonHandler(lookups Lookups, log zerolog.Logger) *CommonHandler {
	return &CommonHandler{lookups: lookups, log: log}
}

// Combo godoc
// @Summary      Lista de códigos
// @Tags         common
// @Produce      json
// @Param        majorCode  query  string  true  "grupo de códigos"
// @Success      200  {object}  dto.Envelope{data=[]dto.CodeResponse}
// @Router       /api/common/combo [get]
func (h *CommonHandler) Combo(c *fiber.Ctx) error {
	out, err := h.lookups.Combo(c.UserContext(), c.Query("majorCode"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// Warehouses godoc
// @Summary      Almacenes de la planta
// @Tags         common
// @Produce      json
// @Param        saupj  query  string  false  "planta (sin token)"
// @Success      200  {object}  dto.Envelope{data=[]dto.WarehouseResponse}
// @Router       /api/common/warehouses [get]
func (h *CommonHandler) Warehouses(c *fiber.Ctx) error {
	out, err := h.lookups.Warehouses(c.UserContext(), h.actors.saupj(c))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// Lines godoc
// @Summary      Líneas de producción
// @Tags         common
// @Produce      json
// @Param        saupj   query  string  false  "planta (sin token)"
// @Param        opCode  query  string  false  "proceso"
// @Success      200  {object}  dto.Envelope{data=[]dto.LineResponse}
// @Router       /api/common/lines [get]
func (h *CommonHandler) Lines(c *fiber.Ctx) error {
	out, err := h.lookups.Lines(c.UserContext(), h.actors.saupj(c), c.Query("opCode"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return Success(c, out, "")
}

// Kanban godoc
// @Summary      Validar kanban
// @Description  valid → 200; invalid o expired → 400 con el detalle en data.
// @Tags         common
// @Produce      json
// @Param        kanbanNo  query  string  true  "kanban escaneado"
// @Success      200  {object}  dto.Envelope{data=dto.KanbanResponse}
// @Failure      400  {object}  dto.Envelope{data=dto.KanbanResponse}
// @Router       /api/common/kanban [get]
func (h *CommonHandler) Kanban(c *fiber.Ctx) error {
	out, err := h.lookups.Kanban(c.UserContext(), c.Query("kanbanNo"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	if out.Validity != string(inventory.KanbanValid) {
		return ErrorWithData(c, "kanban "+out.Validity+": "+out.Reason, out, fiber.StatusBadRequest)
	}
	return Success(c, out, "kanban válido")
}
