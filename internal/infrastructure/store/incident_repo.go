package store

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo implementación del puerto IncidentRepository sobre el blob store.
type IncidentRepo struct {
	c *Collections
}

// NewIncidentRepository construye el adaptador de persistencia para incidencias.
func NewIncidentRepository(c *Collections) *IncidentRepo {
	return &IncidentRepo{c: c}
}

// Create persiste una nueva incidencia.
func (r *IncidentRepo) Create(incident *entity.Incident) error {
	ctx := context.Background()
	list, err := r.c.Incidents(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == incident.ID {
			return domain.ErrDuplicate
		}
	}
	list = append(list, *incident)
	return r.c.SaveIncidents(ctx, list)
}

// GetByID obtiene una incidencia por ID; (nil, nil) si no existe.
func (r *IncidentRepo) GetByID(id string) (*entity.Incident, error) {
	list, err := r.c.Incidents(context.Background())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			inc := list[i]
			return &inc, nil
		}
	}
	return nil, nil
}

// Update reemplaza una incidencia existente.
func (r *IncidentRepo) Update(incident *entity.Incident) error {
	ctx := context.Background()
	list, err := r.c.Incidents(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == incident.ID {
			list[i] = *incident
			return r.c.SaveIncidents(ctx, list)
		}
	}
	return domain.ErrNotFound
}

// List devuelve todas las incidencias.
func (r *IncidentRepo) List() ([]*entity.Incident, error) {
	list, err := r.c.Incidents(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Incident, 0, len(list))
	for i := range list {
		inc := list[i]
		out = append(out, &inc)
	}
	return out, nil
}
