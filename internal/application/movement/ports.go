package movement

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta el callback sobre un snapshot atómico de movimientos y
// productos: los cambios solo se publican si el callback devuelve nil.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
