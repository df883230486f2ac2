package incident

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta el callback sobre un snapshot atómico de incidencias y
// productos: los cambios solo se publican si el callback devuelve nil.
type TxRunner interface {
	RunIncident(ctx context.Context, fn func(
		incRepo repository.IncidentRepository,
		productRepo repository.ProductRepository,
	) error) error
}
