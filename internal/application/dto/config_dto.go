package dto

// SystemConfigDTO configuración de negocio expuesta por la API.
type SystemConfigDTO struct {
	CompanyName             string `json:"companyName"`
	LowStockThreshold       int    `json:"lowStockThreshold"`
	Currency                string `json:"currency"`
	AutoApproveMovements    bool   `json:"autoApproveMovements"`
	RequireIncidentApproval bool   `json:"requireIncidentApproval"`
	EnableNotifications     bool   `json:"enableNotifications"`
	DefaultLocation         string `json:"defaultLocation"`
	MaxStockPerProduct      int    `json:"maxStockPerProduct"`
}
