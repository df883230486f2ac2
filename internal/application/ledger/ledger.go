// Package ledger concentra la única vía de mutación del stock de productos.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/internal/metrics"
)

// Apply suma delta (con signo) al stock del producto y persiste el resultado.
// El stock nunca queda negativo: un débito que excede lo disponible se recorta
// al piso de cero en silencio y se cuenta en métricas. Devuelve el producto ya
// actualizado.
func Apply(products repository.ProductRepository, productID string, delta decimal.Decimal) (*entity.Product, error) {
	p, err := products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	q := p.Quantity.Add(delta)
	if q.IsNegative() {
		q = decimal.Zero
		metrics.StockClamped.Inc()
	}
	p.Quantity = q

	if err := products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
