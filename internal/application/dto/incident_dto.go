package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIncidentRequest entrada para reportar una incidencia.
type CreateIncidentRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
}

// ResolveIncidentRequest entrada para disponer una incidencia pendiente.
// Outcome: resuelto (debita stock) o rechazado (no toca stock).
type ResolveIncidentRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=resuelto rechazado"`
}

// IncidentResponse salida de una incidencia.
type IncidentResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	ReportedBy  string          `json:"reportedBy"`
	ReportedAt  time.Time       `json:"reportedAt"`
	ResolvedBy  string          `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time      `json:"resolvedAt,omitempty"`
}

// IncidentListResponse lista de incidencias.
type IncidentListResponse struct {
	Items []IncidentResponse `json:"items"`
	Total int                `json:"total"`
}
