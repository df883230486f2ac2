package repository

import "github.com/jcastro/almacen-api/internal/domain/entity"

// IncidentRepository define el puerto de persistencia para Incident.
// GetByID devuelve (nil, nil) cuando la incidencia no existe.
type IncidentRepository interface {
	Create(incident *entity.Incident) error
	GetByID(id string) (*entity.Incident, error)
	Update(incident *entity.Incident) error
	List() ([]*entity.Incident, error)
}
