// Package movement implementa el workflow de aprobación de movimientos de stock.
package movement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/ledger"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/internal/metrics"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// UseCase casos de uso del ciclo de vida de un movimiento:
// crear (pendiente o auto-aprobado según configuración), aprobar, rechazar.
type UseCase struct {
	tx        TxRunner
	movements repository.MovementRepository
	config    repository.ConfigRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, movements repository.MovementRepository, config repository.ConfigRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, movements: movements, config: config, log: log}
}

// Create registra una solicitud de movimiento. La política de auto-aprobación
// se lee aquí, una sola vez: cambiarla después no afecta solicitudes ya
// creadas. Con auto-aprobación activa el delta se aplica en la misma
// transacción y el movimiento nace aprobado sin revisor (no hubo humano).
func (uc *UseCase) Create(ctx context.Context, actor entity.Identity, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !policy.Can(actor.Role, policy.ActionCreateMovement) {
		return nil, domain.ErrPermissionDenied
	}
	if in.Type != entity.MovementEntrada && in.Type != entity.MovementSalida {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}

	m := &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Date:        time.Now().UTC(),
		Reason:      in.Reason,
		RequestedBy: actor.Name,
		Status:      entity.StatusPendiente,
	}

	err = uc.tx.RunMovement(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		m.ProductName = p.Name

		if cfg.AutoApproveMovements {
			if _, err := ledger.Apply(productRepo, m.ProductID, signedDelta(m)); err != nil {
				return err
			}
			m.Status = entity.StatusAprobado
		}
		return movRepo.Create(m)
	})
	if err != nil {
		return nil, err
	}

	metrics.MovementsCreated.WithLabelValues(m.Type, m.Status).Inc()
	uc.log.Info().
		Str("movement_id", m.ID).
		Str("type", m.Type).
		Str("status", m.Status).
		Str("requested_by", actor.Email).
		Msg("movimiento creado")

	resp := toMovementResponse(m)
	return &resp, nil
}

// Approve aprueba un movimiento pendiente y aplica su delta al stock, todo o
// nada. Solo pendiente admite la transición; los estados terminales son
// inmutables.
func (uc *UseCase) Approve(ctx context.Context, actor entity.Identity, id string) (*dto.MovementResponse, error) {
	return uc.review(ctx, actor, id, entity.StatusAprobado)
}

// Reject rechaza un movimiento pendiente. No toca el stock.
func (uc *UseCase) Reject(ctx context.Context, actor entity.Identity, id string) (*dto.MovementResponse, error) {
	return uc.review(ctx, actor, id, entity.StatusRechazado)
}

func (uc *UseCase) review(ctx context.Context, actor entity.Identity, id, status string) (*dto.MovementResponse, error) {
	if !policy.Can(actor.Role, policy.ActionApproveMovement) {
		return nil, domain.ErrPermissionDenied
	}

	var reviewed *entity.Movement
	err := uc.tx.RunMovement(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		m, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if m.Status != entity.StatusPendiente {
			return domain.ErrInvalidTransition
		}

		if status == entity.StatusAprobado {
			if _, err := ledger.Apply(productRepo, m.ProductID, signedDelta(m)); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		m.Status = status
		m.ReviewedBy = actor.Name
		m.ReviewedAt = &now
		reviewed = m
		return movRepo.Update(m)
	})
	if err != nil {
		return nil, err
	}

	metrics.MovementsReviewed.WithLabelValues(status).Inc()
	uc.log.Info().
		Str("movement_id", id).
		Str("status", status).
		Str("reviewed_by", actor.Email).
		Msg("movimiento revisado")

	resp := toMovementResponse(reviewed)
	return &resp, nil
}

// Get devuelve un movimiento por id.
func (uc *UseCase) Get(id string) (*dto.MovementResponse, error) {
	m, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMovementResponse(m)
	return &resp, nil
}

// List devuelve los movimientos, opcionalmente filtrados por estado, del más
// reciente al más antiguo.
func (uc *UseCase) List(status string) (*dto.MovementListResponse, error) {
	all, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(all))
	for _, m := range all {
		if status != "" && m.Status != status {
			continue
		}
		items = append(items, toMovementResponse(m))
	}
	sortByDateDesc(items)
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// signedDelta delta con signo del movimiento: entrada suma, salida resta.
func signedDelta(m *entity.Movement) decimal.Decimal {
	if m.Type == entity.MovementSalida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Reason:      m.Reason,
		RequestedBy: m.RequestedBy,
		Status:      m.Status,
		ReviewedBy:  m.ReviewedBy,
		ReviewedAt:  m.ReviewedAt,
	}
}

func sortByDateDesc(items []dto.MovementResponse) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
