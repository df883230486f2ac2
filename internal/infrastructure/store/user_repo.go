package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el blob store.
type UserRepo struct {
	c *Collections
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(c *Collections) *UserRepo {
	return &UserRepo{c: c}
}

// Create persiste un nuevo usuario. El email debe ser único.
func (r *UserRepo) Create(user *entity.AppUser) error {
	ctx := context.Background()
	list, err := r.c.Users(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == user.ID || list[i].Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	list = append(list, *user)
	return r.c.SaveUsers(ctx, list)
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.AppUser, error) {
	list, err := r.c.Users(context.Background())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			u := list[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email exacto; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.AppUser, error) {
	list, err := r.c.Users(context.Background())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Email == email {
			u := list[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Update reemplaza un usuario existente.
func (r *UserRepo) Update(user *entity.AppUser) error {
	ctx := context.Background()
	list, err := r.c.Users(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == user.ID {
			list[i] = *user
			return r.c.SaveUsers(ctx, list)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	ctx := context.Background()
	list, err := r.c.Users(ctx)
	if err != nil {
		return err
	}
	out := list[:0]
	for i := range list {
		if list[i].ID != id {
			out = append(out, list[i])
		}
	}
	if len(out) == len(list) {
		return domain.ErrNotFound
	}
	return r.c.SaveUsers(ctx, out)
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.AppUser, error) {
	list, err := r.c.Users(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AppUser, 0, len(list))
	for i := range list {
		u := list[i]
		out = append(out, &u)
	}
	return out, nil
}
