package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// GetByID devuelve (nil, nil) cuando el movimiento no existe.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	List() ([]*entity.Movement, error)
}
