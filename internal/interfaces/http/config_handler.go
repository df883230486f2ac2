package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/usecase"
)

// ConfigHandler maneja la configuración de negocio (lectura para todos los
// autenticados, escritura solo admin).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración vigente
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SystemConfigDTO
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Reemplazar configuración
// @Description  Documento completo; rige solo hacia adelante, los registros
//               pendientes ya creados no se re-evalúan.
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SystemConfigDTO  true  "configuración completa"
// @Success      200   {object}  dto.SystemConfigDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.SystemConfigDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Update(GetIdentity(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
