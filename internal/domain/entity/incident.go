package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de incidencia sobre el stock.
const (
	IncidentDano        = "daño"
	IncidentPerdida     = "pérdida"
	IncidentRobo        = "robo"
	IncidentVencimiento = "vencimiento"
	IncidentOtro        = "otro"
)

// Estado terminal adicional del flujo de incidencias (comparte pendiente y
// rechazado con los movimientos).
const StatusResuelto = "resuelto"

// IncidentTypes tipos válidos de incidencia.
var IncidentTypes = []string{IncidentDano, IncidentPerdida, IncidentRobo, IncidentVencimiento, IncidentOtro}

// Incident representa un reporte de pérdida o daño de stock. Siempre nace en
// pendiente; el stock se debita únicamente al pasar a resuelto, nunca en
// pendiente ni rechazado.
type Incident struct {
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

// Terminal indica si la incidencia ya alcanzó un estado final.
func (i *Incident) Terminal() bool {
	return i.Status == StatusResuelto || i.Status == StatusRechazado
}

// ValidIncidentType verifica que el tipo esté dentro del catálogo.
func ValidIncidentType(t string) bool {
	for _, v := range IncidentTypes {
		if v == t {
			return true
		}
	}
	return false
}
