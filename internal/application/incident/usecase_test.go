package incident

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
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	c := store.NewCollections(store.NewMemoryStore(), log)

	products := store.NewProductRepository(c)
	uc := NewUseCase(store.NewTxRunner(c), store.NewIncidentRepository(c), log)

	require.NoError(t, products.Create(&entity.Product{
		ID:       "p1",
		Name:     "Guantes de seguridad",
		Quantity: decimal.NewFromInt(8),
	}))
	return &fixture{uc: uc, products: products}
}

var operador = entity.Identity{Email: "operator@almacen.com", Name: "Carlos Operador", Role: entity.RoleOperator}
var gerente = entity.Identity{Email: "manager@almacen.com", Name: "María Gerente", Role: entity.RoleManager}
var auditor = entity.Identity{Email: "auditor@almacen.com", Name: "Ana Auditora", Role: entity.RoleAuditor}

func createReq(typ string, qty int64) dto.CreateIncidentRequest {
	return dto.CreateIncidentRequest{
		ProductID:   "p1",
		Type:        typ,
		Quantity:    decimal.NewFromInt(qty),
		Description: "caja dañada en recepción",
	}
}

func TestCreate_SiempreNacePendiente(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Create(context.Background(), operador, createReq(entity.IncidentDano, 3))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, resp.Status)
	assert.Equal(t, "Guantes de seguridad", resp.ProductName)
	assert.Equal(t, "Carlos Operador", resp.ReportedBy)

	// Reportar no debita: el stock se toca recién al resolver.
	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(8)))
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, operador, createReq("inundación", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, operador, createReq(entity.IncidentRobo, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	req := createReq(entity.IncidentRobo, 1)
	req.ProductID = "no-existe"
	_, err = f.uc.Create(ctx, operador, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(ctx, auditor, createReq(entity.IncidentRobo, 1))
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestResolve_ResueltoDebitaConPisoDeCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq(entity.IncidentPerdida, 3))
	require.NoError(t, err)

	resp, err := f.uc.Resolve(ctx, gerente, created.ID, entity.StatusResuelto)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusResuelto, resp.Status)
	assert.Equal(t, "María Gerente", resp.ResolvedBy)
	require.NotNil(t, resp.ResolvedAt)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(5)))

	// Una incidencia que excede lo disponible recorta a cero, no a negativo.
	big, err := f.uc.Create(ctx, operador, createReq(entity.IncidentVencimiento, 50))
	require.NoError(t, err)
	_, err = f.uc.Resolve(ctx, gerente, big.ID, entity.StatusResuelto)
	require.NoError(t, err)

	p, err = f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.IsZero())
}

func TestResolve_RechazadoNoTocaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq(entity.IncidentRobo, 5))
	require.NoError(t, err)

	resp, err := f.uc.Resolve(ctx, gerente, created.ID, entity.StatusRechazado)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRechazado, resp.Status)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(8)))
}

func TestResolve_TerminalEsInmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq(entity.IncidentDano, 2))
	require.NoError(t, err)
	_, err = f.uc.Resolve(ctx, gerente, created.ID, entity.StatusRechazado)
	require.NoError(t, err)

	_, err = f.uc.Resolve(ctx, gerente, created.ID, entity.StatusResuelto)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El stock sigue intacto tras el intento.
	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(8)))
}

func TestResolve_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, operador, createReq(entity.IncidentOtro, 1))
	require.NoError(t, err)

	_, err = f.uc.Resolve(ctx, gerente, created.ID, "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Resolve(ctx, operador, created.ID, entity.StatusResuelto)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = f.uc.Resolve(ctx, gerente, "no-existe", entity.StatusResuelto)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
