package movement

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
	"github.com/jcastro/almacen-api/pkg/logger"
)

type fixture struct {
	uc       *UseCase
	products *store.ProductRepo
	config   *store.ConfigRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	c := store.NewCollections(store.NewMemoryStore(), log)

	products := store.NewProductRepository(c)
	movements := store.NewMovementRepository(c)
	config := store.NewConfigRepository(c)
	uc := NewUseCase(store.NewTxRunner(c), movements, config, log)

	require.NoError(t, products.Create(&entity.Product{
		ID:       "p1",
		Name:     "Taladro industrial",
		Quantity: decimal.NewFromInt(10),
	}))
	return &fixture{uc: uc, products: products, config: config}
}

func (f *fixture) setAutoApprove(t *testing.T, on bool) {
	t.Helper()
	cfg := entity.DefaultConfig()
	cfg.AutoApproveMovements = on
	require.NoError(t, f.config.Save(cfg))
}

var operador = entity.Identity{Email: "operator@almacen.com", Name: "Carlos Operador", Role: entity.RoleOperator}
var gerente = entity.Identity{Email: "manager@almacen.com", Name: "María Gerente", Role: entity.RoleManager}
var auditor = entity.Identity{Email: "auditor@almacen.com", Name: "Ana Auditora", Role: entity.RoleAuditor}

func TestCreate_PendienteNoTocaStock(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Create(context.Background(), operador, createReq("salida", 4))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, resp.Status)
	assert.Equal(t, "Taladro industrial", resp.ProductName)
	assert.Empty(t, resp.ReviewedBy)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)), "pendiente no muta el stock")
}

func TestCreate_AutoAprobadoAplicaDeltaSinRevisor(t *testing.T) {
	f := newFixture(t)
	f.setAutoApprove(t, true)

	resp, err := f.uc.Create(context.Background(), operador, createReq("entrada", 5))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprobado, resp.Status)
	assert.Empty(t, resp.ReviewedBy, "auto-aprobación no registra revisor humano")
	assert.Nil(t, resp.ReviewedAt)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(15)))
}

func TestCreate_PoliticaSeCongelaAlCrear(t *testing.T) {
	f := newFixture(t)

	// Creado con auto-aprobación apagada.
	resp, err := f.uc.Create(context.Background(), operador, createReq("entrada", 5))
	require.NoError(t, err)
	require.Equal(t, entity.StatusPendiente, resp.Status)

	// Encenderla después no re-evalúa solicitudes ya pendientes.
	f.setAutoApprove(t, true)
	got, err := f.uc.Get(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, got.Status)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, operador, createReq("transferencia", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, operador, createReq("entrada", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.uc.Create(ctx, operador, createReq("entrada", -3))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	req := createReq("entrada", 1)
	req.ProductID = "no-existe"
	_, err = f.uc.Create(ctx, operador, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(ctx, auditor, createReq("entrada", 1))
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestApprove_AplicaDeltaUnaSolaVez(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq("salida", 4))
	require.NoError(t, err)

	resp, err := f.uc.Approve(ctx, gerente, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprobado, resp.Status)
	assert.Equal(t, "María Gerente", resp.ReviewedBy)
	require.NotNil(t, resp.ReviewedAt)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(6)))

	// Terminal: ni re-aprobar ni rechazar, y el stock no vuelve a moverse.
	_, err = f.uc.Approve(ctx, gerente, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.uc.Reject(ctx, gerente, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	p, err = f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(6)))
}

func TestApprove_SalidaMayorAlStockRecortaACero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq("salida", 25))
	require.NoError(t, err)

	_, err = f.uc.Approve(ctx, gerente, created.ID)
	require.NoError(t, err)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.IsZero())
}

func TestReject_NoTocaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq("salida", 4))
	require.NoError(t, err)

	resp, err := f.uc.Reject(ctx, gerente, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRechazado, resp.Status)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestReview_Permisos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq("entrada", 2))
	require.NoError(t, err)

	// El operador puede crear pero no revisar.
	_, err = f.uc.Approve(ctx, operador, created.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = f.uc.Approve(ctx, gerente, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.uc.Create(ctx, operador, createReq("entrada", 1))
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, operador, createReq("salida", 2))
	require.NoError(t, err)
	_, err = f.uc.Approve(ctx, gerente, a.ID)
	require.NoError(t, err)

	pendientes, err := f.uc.List(entity.StatusPendiente)
	require.NoError(t, err)
	assert.Equal(t, 1, pendientes.Total)

	todos, err := f.uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 2, todos.Total)
}

func createReq(typ string, qty int64) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      typ,
		Quantity:  decimal.NewFromInt(qty),
		Reason:    "reposición de prueba",
	}
}
