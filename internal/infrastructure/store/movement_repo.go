package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el blob store.
// Las transiciones de estado van por el TxRunner; este adaptador sirve lecturas
// y altas directas.
type MovementRepo struct {
	c *Collections
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(c *Collections) *MovementRepo {
	return &MovementRepo{c: c}
}

// Create persiste un nuevo movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	ctx := context.Background()
	list, err := r.c.Movements(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == movement.ID {
			return domain.ErrDuplicate
		}
	}
	list = append(list, *movement)
	return r.c.SaveMovements(ctx, list)
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	list, err := r.c.Movements(context.Background())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			m := list[i]
			return &m, nil
		}
	}
	return nil, nil
}

// Update reemplaza un movimiento existente.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	ctx := context.Background()
	list, err := r.c.Movements(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == movement.ID {
			list[i] = *movement
			return r.c.SaveMovements(ctx, list)
		}
	}
	return domain.ErrNotFound
}

// List devuelve todos los movimientos.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	list, err := r.c.Movements(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0, len(list))
	for i := range list {
		m := list[i]
		out = append(out, &m)
	}
	return out, nil
}
