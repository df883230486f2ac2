package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
}
