package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen general del almacén.
type DashboardResponse struct {
	TotalProducts    int               `json:"totalProducts"`
	TotalStockValue  decimal.Decimal   `json:"totalStockValue"`
	Currency         string            `json:"currency"`
	LowStock         []ProductResponse `json:"lowStock"`
	PendingMovements int               `json:"pendingMovements"`
	OpenIncidents    int               `json:"openIncidents"`
}
