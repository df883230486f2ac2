// Package usecase agrupa los casos de uso CRUD y de consulta que no pasan por
// el motor de workflows: productos, usuarios, configuración y dashboard.
package usecase

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// ProductUseCase CRUD del catálogo de productos. La cantidad solo se fija al
// crear: después de eso el stock se muta únicamente vía movimientos e
// incidencias aprobados.
type ProductUseCase struct {
	products repository.ProductRepository
	config   repository.ConfigRepository
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, config repository.ConfigRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, config: config, log: log}
}

// Create da de alta un producto. Si no trae ubicación usa la ubicación por
// defecto de la configuración; la cantidad inicial respeta el tope por
// producto configurado.
func (uc *ProductUseCase) Create(actor entity.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !policy.Can(actor.Role, policy.ActionCreateProduct) {
		return nil, domain.ErrPermissionDenied
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.MinStock.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	if cfg.MaxStockPerProduct > 0 && in.Quantity.GreaterThan(decimal.NewFromInt(int64(cfg.MaxStockPerProduct))) {
		return nil, domain.ErrInvalidQuantity
	}

	location := in.Location
	if location == "" {
		location = cfg.DefaultLocation
	}

	p := &entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Price:    in.Price,
		Location: location,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", p.ID).Str("name", p.Name).Str("created_by", actor.Email).Msg("producto creado")
	resp := toProductResponse(p, cfg)
	return &resp, nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p, cfg)
	return &resp, nil
}

// List devuelve el catálogo ordenado por nombre.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(all))
	for _, p := range all {
		items = append(items, toProductResponse(p, cfg))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update edita los campos descriptivos de un producto. La cantidad no se toca
// aquí.
func (uc *ProductUseCase) Update(actor entity.Identity, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !policy.Can(actor.Role, policy.ActionEditProduct) {
		return nil, domain.ErrPermissionDenied
	}

	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.MinStock = *in.MinStock
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Location != nil {
		p.Location = *in.Location
	}

	if err := uc.products.Update(p); err != nil {
		return nil, err
	}

	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p, cfg)
	return &resp, nil
}

// Delete borra el producto. Sus movimientos e incidencias históricos quedan:
// conservan el nombre como snapshot de auditoría.
func (uc *ProductUseCase) Delete(actor entity.Identity, id string) error {
	if !policy.Can(actor.Role, policy.ActionDeleteProduct) {
		return domain.ErrPermissionDenied
	}
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Str("deleted_by", actor.Email).Msg("producto borrado")
	return nil
}

// toProductResponse marca stock bajo con el mínimo del producto; si el
// producto no define mínimo aplica el umbral global configurado.
func toProductResponse(p *entity.Product, cfg entity.SystemConfig) dto.ProductResponse {
	limit := p.MinStock
	if limit.IsZero() {
		limit = decimal.NewFromInt(int64(cfg.LowStockThreshold))
	}
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Quantity: p.Quantity,
		MinStock: p.MinStock,
		Price:    p.Price,
		Location: p.Location,
		LowStock: p.Quantity.LessThanOrEqual(limit),
	}
}
