package store

import (
	"context"
	"sync"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta un callback de workflow sobre snapshots en memoria de las
// colecciones y solo publica el resultado si el callback termina sin error:
// todo-o-nada sobre un blob store sin transacciones. Un mutex de proceso
// serializa a los escritores (disciplina de escritor único del ledger), lo que
// garantiza que "aprobar solo desde pendiente" se sostenga ante carreras
// aprobar+rechazar.
type TxRunner struct {
	mu sync.Mutex
	c  *Collections
}

// NewTxRunner construye el runner sobre el codec de colecciones.
func NewTxRunner(c *Collections) *TxRunner {
	return &TxRunner{c: c}
}

// RunMovement carga productos y movimientos, ejecuta fn con repos atados al
// snapshot y guarda las colecciones modificadas solo si fn devuelve nil.
func (r *TxRunner) RunMovement(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.c.Products(ctx)
	if err != nil {
		return err
	}
	movements, err := r.c.Movements(ctx)
	if err != nil {
		return err
	}

	pr := &txProductRepo{items: products}
	mr := &txMovementRepo{items: movements}

	if err := fn(mr, pr); err != nil {
		return err
	}

	if pr.dirty {
		if err := r.c.SaveProducts(ctx, pr.items); err != nil {
			return err
		}
	}
	if mr.dirty {
		if err := r.c.SaveMovements(ctx, mr.items); err != nil {
			return err
		}
	}
	return nil
}

// RunIncident variante para el workflow de incidencias.
func (r *TxRunner) RunIncident(ctx context.Context, fn func(
	incRepo repository.IncidentRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.c.Products(ctx)
	if err != nil {
		return err
	}
	incidents, err := r.c.Incidents(ctx)
	if err != nil {
		return err
	}

	pr := &txProductRepo{items: products}
	ir := &txIncidentRepo{items: incidents}

	if err := fn(ir, pr); err != nil {
		return err
	}

	if pr.dirty {
		if err := r.c.SaveProducts(ctx, pr.items); err != nil {
			return err
		}
	}
	if ir.dirty {
		if err := r.c.SaveIncidents(ctx, ir.items); err != nil {
			return err
		}
	}
	return nil
}

// ── Repos atados al snapshot ─────────────────────────────────────────────────

var _ repository.ProductRepository = (*txProductRepo)(nil)

type txProductRepo struct {
	items []entity.Product
	dirty bool
}

func (r *txProductRepo) Create(product *entity.Product) error {
	for i := range r.items {
		if r.items[i].ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *product)
	r.dirty = true
	return nil
}

func (r *txProductRepo) GetByID(id string) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *txProductRepo) Update(product *entity.Product) error {
	for i := range r.items {
		if r.items[i].ID == product.ID {
			r.items[i] = *product
			r.dirty = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *txProductRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.dirty = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *txProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for i := range r.items {
		p := r.items[i]
		out = append(out, &p)
	}
	return out, nil
}

var _ repository.MovementRepository = (*txMovementRepo)(nil)

type txMovementRepo struct {
	items []entity.Movement
	dirty bool
}

func (r *txMovementRepo) Create(movement *entity.Movement) error {
	for i := range r.items {
		if r.items[i].ID == movement.ID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *movement)
	r.dirty = true
	return nil
}

func (r *txMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			m := r.items[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *txMovementRepo) Update(movement *entity.Movement) error {
	for i := range r.items {
		if r.items[i].ID == movement.ID {
			r.items[i] = *movement
			r.dirty = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *txMovementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.items))
	for i := range r.items {
		m := r.items[i]
		out = append(out, &m)
	}
	return out, nil
}

var _ repository.IncidentRepository = (*txIncidentRepo)(nil)

type txIncidentRepo struct {
	items []entity.Incident
	dirty bool
}

func (r *txIncidentRepo) Create(incident *entity.Incident) error {
	for i := range r.items {
		if r.items[i].ID == incident.ID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *incident)
	r.dirty = true
	return nil
}

func (r *txIncidentRepo) GetByID(id string) (*entity.Incident, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			inc := r.items[i]
			return &inc, nil
		}
	}
	return nil, nil
}

func (r *txIncidentRepo) Update(incident *entity.Incident) error {
	for i := range r.items {
		if r.items[i].ID == incident.ID {
			r.items[i] = *incident
			r.dirty = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *txIncidentRepo) List() ([]*entity.Incident, error) {
	out := make([]*entity.Incident, 0, len(r.items))
	for i := range r.items {
		inc := r.items[i]
		out = append(out, &inc)
	}
	return out, nil
}
