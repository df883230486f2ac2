package entity

// SystemConfig configuración de negocio del almacén. Se lee al momento de cada
// decisión de workflow; los cambios no afectan retroactivamente registros ya
// creados en pendiente (la política se congela al crear).
type SystemConfig struct {
	CompanyName             string `json:"companyName"`
	LowStockThreshold       int    `json:"lowStockThreshold"`
	Currency                string `json:"currency"`
	AutoApproveMovements    bool   `json:"autoApproveMovements"`
	RequireIncidentApproval bool   `json:"requireIncidentApproval"`
	EnableNotifications     bool   `json:"enableNotifications"`
	DefaultLocation         string `json:"defaultLocation"`
	MaxStockPerProduct      int    `json:"maxStockPerProduct"`
}

// DefaultConfig valores por defecto del sistema original.
func DefaultConfig() SystemConfig {
	return SystemConfig{
		CompanyName:             "Almacén Central",
		LowStockThreshold:       20,
		Currency:                "USD",
		AutoApproveMovements:    false,
		RequireIncidentApproval: true,
		EnableNotifications:     true,
		DefaultLocation:         "Almacén Principal",
		MaxStockPerProduct:      1000,
	}
}
