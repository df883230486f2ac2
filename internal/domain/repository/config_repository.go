package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// ConfigRepository define el puerto de persistencia para SystemConfig.
// Get devuelve los valores por defecto cuando nunca se ha guardado.
// Save es lectura-modificación-escritura sin control optimista: gana el
// último escritor.
type ConfigRepository interface {
	Get() (entity.SystemConfig, error)
	Save(cfg entity.SystemConfig) error
}
