package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para solicitar un movimiento de stock.
type CreateMovementRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=entrada salida"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
	Reason      string          `json:"reason"`
	RequestedBy string          `json:"requestedBy"`
	Status      string          `json:"status"`
	ReviewedBy  string          `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time      `json:"reviewedAt,omitempty"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
