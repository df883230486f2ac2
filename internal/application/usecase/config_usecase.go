package usecase

import (
	"golang.org/x/text/currency"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// ConfigUseCase lectura y reemplazo de la configuración de negocio. El
// reemplazo es del documento completo; gana el último escritor.
type ConfigUseCase struct {
	config repository.ConfigRepository
	log    *logger.Logger
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(config repository.ConfigRepository, log *logger.Logger) *ConfigUseCase {
	return &ConfigUseCase{config: config, log: log}
}

// Get devuelve la configuración vigente (o los defaults si nunca se guardó).
func (uc *ConfigUseCase) Get() (*dto.SystemConfigDTO, error) {
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}
	out := toConfigDTO(cfg)
	return &out, nil
}

// Update reemplaza la configuración completa. Los umbrales no pueden ser
// negativos y la moneda debe ser un código ISO 4217 válido. El cambio rige
// solo hacia adelante: los registros pendientes ya creados no se re-evalúan.
func (uc *ConfigUseCase) Update(actor entity.Identity, in dto.SystemConfigDTO) (*dto.SystemConfigDTO, error) {
	if !policy.Can(actor.Role, policy.ActionEditConfig) {
		return nil, domain.ErrPermissionDenied
	}
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LowStockThreshold < 0 || in.MaxStockPerProduct < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := currency.ParseISO(in.Currency); err != nil {
		return nil, domain.ErrInvalidInput
	}

	cfg := entity.SystemConfig{
		CompanyName:             in.CompanyName,
		LowStockThreshold:       in.LowStockThreshold,
		Currency:                in.Currency,
		AutoApproveMovements:    in.AutoApproveMovements,
		RequireIncidentApproval: in.RequireIncidentApproval,
		EnableNotifications:     in.EnableNotifications,
		DefaultLocation:         in.DefaultLocation,
		MaxStockPerProduct:      in.MaxStockPerProduct,
	}
	if err := uc.config.Save(cfg); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("updated_by", actor.Email).
		Bool("auto_approve_movements", cfg.AutoApproveMovements).
		Msg("configuración actualizada")

	out := toConfigDTO(cfg)
	return &out, nil
}

func toConfigDTO(cfg entity.SystemConfig) dto.SystemConfigDTO {
	return dto.SystemConfigDTO{
		CompanyName:             cfg.CompanyName,
		LowStockThreshold:       cfg.LowStockThreshold,
		Currency:                cfg.Currency,
		AutoApproveMovements:    cfg.AutoApproveMovements,
		RequireIncidentApproval: cfg.RequireIncidentApproval,
		EnableNotifications:     cfg.EnableNotifications,
		DefaultLocation:         cfg.DefaultLocation,
		MaxStockPerProduct:      cfg.MaxStockPerProduct,
	}
}
