package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada" // suma stock
	MovementSalida  = "salida"  // resta stock
)

// Estados del flujo de aprobación de movimientos.
// aprobado y rechazado son terminales: no admiten más transiciones.
const (
	StatusPendiente = "pendiente"
	StatusAprobado  = "aprobado"
	StatusRechazado = "rechazado"
)

// Movement representa una solicitud de cambio de stock (entrada o salida).
// ProductName es snapshot al momento de crear: no se sincroniza con ediciones
// posteriores del producto y sobrevive a su borrado (pista de auditoría).
type Movement struct {
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

// Terminal indica si el movimiento ya alcanzó un estado final.
func (m *Movement) Terminal() bool {
	return m.Status == StatusAprobado || m.Status == StatusRechazado
}
