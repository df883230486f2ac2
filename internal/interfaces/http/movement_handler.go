package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/movement"
)

// MovementHandler maneja el workflow de movimientos de stock (protegido).
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar movimiento de stock
// @Description  Nace pendiente, o aprobado de inmediato si la configuración
//               tiene auto-aprobación activa al momento de crear.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "productId, type (entrada|salida), quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetIdentity(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pendiente | aprobado | rechazado"
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Query("status"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Approve godoc
// @Summary      Aprobar movimiento pendiente (aplica el delta al stock)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/approve [post]
func (h *MovementHandler) Approve(c *fiber.Ctx) error {
	resp, err := h.uc.Approve(c.Context(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Reject godoc
// @Summary      Rechazar movimiento pendiente (no toca el stock)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/reject [post]
func (h *MovementHandler) Reject(c *fiber.Ctx) error {
	resp, err := h.uc.Reject(c.Context(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
