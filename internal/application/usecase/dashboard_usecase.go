package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

// DashboardUseCase resumen de solo lectura del almacén. Visible para todos
// los roles autenticados.
type DashboardUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	incidents repository.IncidentRepository
	config    repository.ConfigRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	incidents repository.IncidentRepository,
	config repository.ConfigRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, movements: movements, incidents: incidents, config: config}
}

// Summary totaliza catálogo, valor de stock, productos con stock bajo y
// trabajo pendiente de revisión.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	incidents, err := uc.incidents.List()
	if err != nil {
		return nil, err
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	lowStock := make([]dto.ProductResponse, 0)
	for _, p := range products {
		totalValue = totalValue.Add(p.Quantity.Mul(p.Price))
		if r := toProductResponse(p, cfg); r.LowStock {
			lowStock = append(lowStock, r)
		}
	}

	pending := 0
	for _, m := range movements {
		if m.Status == entity.StatusPendiente {
			pending++
		}
	}
	open := 0
	for _, inc := range incidents {
		if inc.Status == entity.StatusPendiente {
			open++
		}
	}

	return &dto.DashboardResponse{
		TotalProducts:    len(products),
		TotalStockValue:  totalValue,
		Currency:         cfg.Currency,
		LowStock:         lowStock,
		PendingMovements: pending,
		OpenIncidents:    open,
	}, nil
}
