package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// SessionRepository persiste la identidad de la sesión actual entre reinicios
// (email, nombre y rol; nunca la contraseña). Get devuelve (nil, nil) si no
// hay sesión guardada.
type SessionRepository interface {
	Get() (*entity.Identity, error)
	Save(id entity.Identity) error
	Clear() error
}
