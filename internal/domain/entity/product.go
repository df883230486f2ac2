package entity

import "github.com/shopspring/decimal"

// Product representa un producto del almacén. Quantity es el stock autoritativo
// y solo se muta a través del ledger (movimientos aprobados e incidencias resueltas).
// Invariante: Quantity nunca es negativa (se recorta a 0 en débitos).
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"minStock"`
	Price    decimal.Decimal `json:"price"`
	Location string          `json:"location"`
}
