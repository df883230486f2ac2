package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidTransition    = errors.New("transición de estado no permitida")
	ErrInvalidQuantity      = errors.New("la cantidad debe ser mayor que cero")
	ErrPermissionDenied     = errors.New("el rol no tiene permiso para esta acción")
	ErrAuthenticationFailed = errors.New("credenciales incorrectas")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
)
