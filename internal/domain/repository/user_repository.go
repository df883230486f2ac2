package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para AppUser.
type UserRepository interface {
	Create(user *entity.AppUser) error
	GetByID(id string) (*entity.AppUser, error)
	GetByEmail(email string) (*entity.AppUser, error)
	Update(user *entity.AppUser) error
	Delete(id string) error
	List() ([]*entity.AppUser, error)
}
