package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementación del puerto ConfigRepository sobre el blob store.
type ConfigRepo struct {
	c *Collections
}

// NewConfigRepository construye el adaptador de persistencia para la configuración.
func NewConfigRepository(c *Collections) *ConfigRepo {
	return &ConfigRepo{c: c}
}

// Get devuelve la configuración guardada o los valores por defecto si no hay
// (o si el blob está corrupto: misma política de caída a defaults del original).
func (r *ConfigRepo) Get() (entity.SystemConfig, error) {
	cfg, found, err := r.c.Config(context.Background())
	if err != nil {
		return entity.SystemConfig{}, err
	}
	if !found {
		return entity.DefaultConfig(), nil
	}
	return cfg, nil
}

// Save persiste la configuración completa. Gana el último escritor.
func (r *ConfigRepo) Save(cfg entity.SystemConfig) error {
	return r.c.SaveConfig(context.Background(), cfg)
}
