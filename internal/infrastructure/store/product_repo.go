package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el blob store.
// Cada operación carga la colección completa, la muta y la guarda completa.
type ProductRepo struct {
	c *Collections
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(c *Collections) *ProductRepo {
	return &ProductRepo{c: c}
}

// Create persiste un nuevo producto. El id debe ser único.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	list, err := r.c.Products(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	list = append(list, *product)
	return r.c.SaveProducts(ctx, list)
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	list, err := r.c.Products(context.Background())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	ctx := context.Background()
	list, err := r.c.Products(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == product.ID {
			list[i] = *product
			return r.c.SaveProducts(ctx, list)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina un producto por ID. Los movimientos e incidencias históricos
// que lo referencian se conservan (snapshot de nombre, sin cascada).
func (r *ProductRepo) Delete(id string) error {
	ctx := context.Background()
	list, err := r.c.Products(ctx)
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
	return r.c.SaveProducts(ctx, out)
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	list, err := r.c.Products(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(list))
	for i := range list {
		p := list[i]
		out = append(out, &p)
	}
	return out, nil
}
