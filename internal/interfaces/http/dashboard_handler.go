package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/usecase"
)

// DashboardHandler resumen de solo lectura del almacén (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del almacén
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.Summary()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
