package entity

import "time"

// Roles válidos para AppUser y para la tabla de credenciales.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleAuditor  = "auditor"
)

// Estados de cuenta.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// AppUser representa un usuario administrado de la aplicación. Es independiente
// de la identidad de autenticación (la tabla de credenciales del sistema es una
// lista fija aparte); se preserva esa separación del sistema original.
type AppUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidRole verifica que el rol esté dentro del catálogo.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleAuditor:
		return true
	}
	return false
}
