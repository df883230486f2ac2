package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre el blob store.
type SessionRepo struct {
	c *Collections
}

// NewSessionRepository construye el adaptador de persistencia para la sesión.
func NewSessionRepository(c *Collections) *SessionRepo {
	return &SessionRepo{c: c}
}

// Get devuelve la identidad persistida o (nil, nil) si no hay sesión.
func (r *SessionRepo) Get() (*entity.Identity, error) {
	return r.c.Session(context.Background())
}

// Save persiste la identidad de la sesión actual.
func (r *SessionRepo) Save(id entity.Identity) error {
	return r.c.SaveSession(context.Background(), id)
}

// Clear elimina la sesión persistida.
func (r *SessionRepo) Clear() error {
	return r.c.ClearSession(context.Background())
}
