package dto

// LoginRequest credenciales de entrada.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// IdentityResponse identidad del actor (sin contraseña).
type IdentityResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse token + identidad tras un login exitoso.
type LoginResponse struct {
	Token string           `json:"token"`
	User  IdentityResponse `json:"user"`
}
