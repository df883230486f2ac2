package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/auth"
	"github.com/jcastro/almacen-api/internal/application/dto"
)

// AuthHandler maneja login, logout y consulta de sesión.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y contraseña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return invalidBody(c)
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Session godoc
// @Summary      Sesión persistida actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.IdentityResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	id, err := h.uc.CurrentSession()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(id)
}
