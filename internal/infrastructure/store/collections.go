package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/metrics"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// Collections codifica y decodifica las colecciones tipadas sobre un BlobStore.
// Un blob corrupto se trata como colección vacía (fail closed): se registra en
// el log y en métricas, nunca se aborta el proceso. Política heredada del
// sistema original, aquí observable.
type Collections struct {
	store BlobStore
	log   *logger.Logger
}

// NewCollections construye el codec sobre el backend dado.
func NewCollections(store BlobStore, log *logger.Logger) *Collections {
	return &Collections{store: store, log: log}
}

// load deserializa el kind en v. Devuelve found=false si el blob no existe o
// está corrupto; el error solo refleja fallos de E/S del backend.
func (c *Collections) load(ctx context.Context, kind string, v interface{}) (found bool, err error) {
	data, err := c.store.Load(ctx, kind)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.log.Warn().Str("kind", kind).Err(err).
			Msg("colección persistida corrupta; se trata como vacía")
		metrics.CorruptCollections.WithLabelValues(kind).Inc()
		return false, nil
	}
	return true, nil
}

func (c *Collections) save(ctx context.Context, kind string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", kind, err)
	}
	return c.store.Save(ctx, kind, data)
}

// Products carga la colección de productos (vacía si nunca se guardó).
func (c *Collections) Products(ctx context.Context) ([]entity.Product, error) {
	var list []entity.Product
	if _, err := c.load(ctx, KindProducts, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveProducts guarda la colección completa de productos.
func (c *Collections) SaveProducts(ctx context.Context, list []entity.Product) error {
	return c.save(ctx, KindProducts, list)
}

// Movements carga la colección de movimientos.
func (c *Collections) Movements(ctx context.Context) ([]entity.Movement, error) {
	var list []entity.Movement
	if _, err := c.load(ctx, KindMovements, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveMovements guarda la colección completa de movimientos.
func (c *Collections) SaveMovements(ctx context.Context, list []entity.Movement) error {
	return c.save(ctx, KindMovements, list)
}

// Incidents carga la colección de incidencias.
func (c *Collections) Incidents(ctx context.Context) ([]entity.Incident, error) {
	var list []entity.Incident
	if _, err := c.load(ctx, KindIncidents, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveIncidents guarda la colección completa de incidencias.
func (c *Collections) SaveIncidents(ctx context.Context, list []entity.Incident) error {
	return c.save(ctx, KindIncidents, list)
}

// Users carga la colección de usuarios de la aplicación.
func (c *Collections) Users(ctx context.Context) ([]entity.AppUser, error) {
	var list []entity.AppUser
	if _, err := c.load(ctx, KindUsers, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveUsers guarda la colección completa de usuarios.
func (c *Collections) SaveUsers(ctx context.Context, list []entity.AppUser) error {
	return c.save(ctx, KindUsers, list)
}

// Config carga la configuración del sistema; found=false indica que aplica el
// valor por defecto.
func (c *Collections) Config(ctx context.Context) (cfg entity.SystemConfig, found bool, err error) {
	found, err = c.load(ctx, KindConfig, &cfg)
	return cfg, found, err
}

// SaveConfig guarda la configuración del sistema.
func (c *Collections) SaveConfig(ctx context.Context, cfg entity.SystemConfig) error {
	return c.save(ctx, KindConfig, cfg)
}

// Session carga la identidad de la sesión actual o nil si no hay sesión.
func (c *Collections) Session(ctx context.Context) (*entity.Identity, error) {
	var id entity.Identity
	found, err := c.load(ctx, KindSession, &id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &id, nil
}

// SaveSession guarda la identidad de la sesión actual (sin contraseña).
func (c *Collections) SaveSession(ctx context.Context, id entity.Identity) error {
	return c.save(ctx, KindSession, id)
}

// ClearSession elimina la sesión persistida.
func (c *Collections) ClearSession(ctx context.Context) error {
	return c.store.Delete(ctx, KindSession)
}
