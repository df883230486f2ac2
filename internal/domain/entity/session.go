package entity

// Identity es el actor actual (sin contraseña) que se enhebra en cada llamada
// de workflow para atribución. Se persiste como sesión entre reinicios.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
