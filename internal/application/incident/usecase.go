// Package incident implementa el flujo de incidencias de stock
// (daño, pérdida, robo, vencimiento, otro).
package incident

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/ledger"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/internal/metrics"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// UseCase casos de uso del ciclo de vida de una incidencia: reportar y
// disponer (resuelto debita stock, rechazado no).
type UseCase struct {
	tx        TxRunner
	incidents repository.IncidentRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, incidents repository.IncidentRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, incidents: incidents, log: log}
}

// Create reporta una incidencia. Siempre nace en pendiente, sin importar la
// configuración: el débito de stock ocurre recién al resolverla.
func (uc *UseCase) Create(ctx context.Context, actor entity.Identity, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	if !policy.Can(actor.Role, policy.ActionCreateIncident) {
		return nil, domain.ErrPermissionDenied
	}
	if !entity.ValidIncidentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	inc := &entity.Incident{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: in.Description,
		Status:      entity.StatusPendiente,
		ReportedBy:  actor.Name,
		ReportedAt:  time.Now().UTC(),
	}

	err := uc.tx.RunIncident(ctx, func(incRepo repository.IncidentRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		inc.ProductName = p.Name
		return incRepo.Create(inc)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncidentsCreated.WithLabelValues(inc.Type).Inc()
	uc.log.Info().
		Str("incident_id", inc.ID).
		Str("type", inc.Type).
		Str("reported_by", actor.Email).
		Msg("incidencia reportada")

	resp := toIncidentResponse(inc)
	return &resp, nil
}

// Resolve dispone una incidencia pendiente. resuelto debita el stock (con piso
// de cero); rechazado no lo toca. Los estados terminales son inmutables.
func (uc *UseCase) Resolve(ctx context.Context, actor entity.Identity, id, outcome string) (*dto.IncidentResponse, error) {
	if !policy.Can(actor.Role, policy.ActionResolveIncident) {
		return nil, domain.ErrPermissionDenied
	}
	if outcome != entity.StatusResuelto && outcome != entity.StatusRechazado {
		return nil, domain.ErrInvalidInput
	}

	var resolved *entity.Incident
	err := uc.tx.RunIncident(ctx, func(incRepo repository.IncidentRepository, productRepo repository.ProductRepository) error {
		inc, err := incRepo.GetByID(id)
		if err != nil {
			return err
		}
		if inc == nil {
			return domain.ErrNotFound
		}
		if inc.Status != entity.StatusPendiente {
			return domain.ErrInvalidTransition
		}

		if outcome == entity.StatusResuelto {
			if _, err := ledger.Apply(productRepo, inc.ProductID, inc.Quantity.Neg()); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		inc.Status = outcome
		inc.ResolvedBy = actor.Name
		inc.ResolvedAt = &now
		resolved = inc
		return incRepo.Update(inc)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncidentsResolved.WithLabelValues(outcome).Inc()
	uc.log.Info().
		Str("incident_id", id).
		Str("outcome", outcome).
		Str("resolved_by", actor.Email).
		Msg("incidencia dispuesta")

	resp := toIncidentResponse(resolved)
	return &resp, nil
}

// Get devuelve una incidencia por id.
func (uc *UseCase) Get(id string) (*dto.IncidentResponse, error) {
	inc, err := uc.incidents.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, domain.ErrNotFound
	}
	resp := toIncidentResponse(inc)
	return &resp, nil
}

// List devuelve las incidencias, opcionalmente filtradas por estado, de la más
// reciente a la más antigua.
func (uc *UseCase) List(status string) (*dto.IncidentListResponse, error) {
	all, err := uc.incidents.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.IncidentResponse, 0, len(all))
	for _, inc := range all {
		if status != "" && inc.Status != status {
			continue
		}
		items = append(items, toIncidentResponse(inc))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ReportedAt.After(items[j].ReportedAt)
	})
	return &dto.IncidentListResponse{Items: items, Total: len(items)}, nil
}

func toIncidentResponse(inc *entity.Incident) dto.IncidentResponse {
	return dto.IncidentResponse{
		ID:          inc.ID,
		ProductID:   inc.ProductID,
		ProductName: inc.ProductName,
		Type:        inc.Type,
		Quantity:    inc.Quantity,
		Description: inc.Description,
		Status:      inc.Status,
		ReportedBy:  inc.ReportedBy,
		ReportedAt:  inc.ReportedAt,
		ResolvedBy:  inc.ResolvedBy,
		ResolvedAt:  inc.ResolvedAt,
	}
}
