package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/incident"
)

// IncidentHandler maneja el flujo de incidencias de stock (protegido).
type IncidentHandler struct {
	uc *incident.UseCase
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *incident.UseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

// Create godoc
// @Summary      Reportar incidencia
// @Description  Siempre nace pendiente; el stock se debita recién al resolverla.
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "productId, type (daño|pérdida|robo|vencimiento|otro), quantity, description"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
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
// @Summary      Listar incidencias
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pendiente | resuelto | rechazado"
// @Success      200     {object}  dto.IncidentListResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Query("status"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener incidencia
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la incidencia"
// @Success      200  {object}  dto.IncidentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Resolve godoc
// @Summary      Disponer incidencia pendiente
// @Description  resuelto debita el stock reportado (con piso de cero);
//               rechazado cierra la incidencia sin tocar stock.
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la incidencia"
// @Param        body  body  dto.ResolveIncidentRequest  true  "outcome: resuelto | rechazado"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/incidents/{id}/resolve [post]
func (h *IncidentHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Resolve(c.Context(), GetIdentity(c), c.Params("id"), in.Outcome)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
