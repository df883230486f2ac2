package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/pkg/jwt"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalEmail = "email"
	LocalName  = "name"
	LocalRole  = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae email, nombre y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, name, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalName, name)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) entity.Identity {
	return entity.Identity{
		Email: localString(c, LocalEmail),
		Name:  localString(c, LocalName),
		Role:  localString(c, LocalRole),
	}
}

// RequireCapability corta con 403 si el rol del actor no tiene la capacidad.
// Los casos de uso re-verifican la política de todas formas; este middleware
// solo evita trabajo y da una respuesta temprana.
func RequireCapability(action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !policy.Can(localString(c, LocalRole), action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene permiso para esta acción"})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
