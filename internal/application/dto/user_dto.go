package dto

import "time"

// CreateUserRequest entrada para crear un usuario de la aplicación.
type CreateUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required"`
	Status string `json:"status"`
}

// UpdateUserRequest entrada para actualizar un usuario (createdAt se preserva).
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
