package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"minStock"`
	Price    decimal.Decimal `json:"price"`
	Location string          `json:"location"`
}

// UpdateProductRequest entrada para actualizar un producto. Quantity no se
// incluye: el stock solo se muta vía movimientos e incidencias.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	MinStock *decimal.Decimal `json:"minStock"`
	Price    *decimal.Decimal `json:"price"`
	Location *string          `json:"location"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"minStock"`
	Price    decimal.Decimal `json:"price"`
	Location string          `json:"location"`
	LowStock bool            `json:"lowStock"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
