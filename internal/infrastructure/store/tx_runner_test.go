package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
)

func TestTxRunner_CommitSoloSiCallbackOk(t *testing.T) {
	ctx := context.Background()
	c := store.NewCollections(store.NewMemoryStore(), testLogger())
	require.NoError(t, c.SaveProducts(ctx, []entity.Product{
		{ID: "p1", Name: "Monitor", Quantity: decimal.NewFromInt(5)},
	}))

	runner := store.NewTxRunner(c)

	// Callback con error: nada se publica aunque haya mutado el snapshot
	boom := errors.New("boom")
	err := runner.RunMovement(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID("p1")
		require.NoError(t, err)
		p.Quantity = decimal.NewFromInt(99)
		require.NoError(t, productRepo.Update(p))
		require.NoError(t, movRepo.Create(&entity.Movement{ID: "m1", ProductID: "p1", Type: entity.MovementEntrada, Quantity: decimal.NewFromInt(1), Status: entity.StatusPendiente}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	assert.True(t, products[0].Quantity.Equal(decimal.NewFromInt(5)), "rollback: la cantidad no debe cambiar")
	movements, err := c.Movements(ctx)
	require.NoError(t, err)
	assert.Empty(t, movements, "rollback: el movimiento no debe persistirse")

	// Callback exitoso: ambas colecciones se publican
	err = runner.RunMovement(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID("p1")
		require.NoError(t, err)
		p.Quantity = p.Quantity.Add(decimal.NewFromInt(3))
		if err := productRepo.Update(p); err != nil {
			return err
		}
		return movRepo.Create(&entity.Movement{ID: "m1", ProductID: "p1", Type: entity.MovementEntrada, Quantity: decimal.NewFromInt(3), Status: entity.StatusAprobado})
	})
	require.NoError(t, err)

	products, err = c.Products(ctx)
	require.NoError(t, err)
	assert.True(t, products[0].Quantity.Equal(decimal.NewFromInt(8)))
	movements, err = c.Movements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.StatusAprobado, movements[0].Status)
}

func TestTxRunner_IncidenteNoTocaProductosSiNoHayMutacion(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	c := store.NewCollections(mem, testLogger())
	runner := store.NewTxRunner(c)

	err := runner.RunIncident(ctx, func(incRepo repository.IncidentRepository, productRepo repository.ProductRepository) error {
		return incRepo.Create(&entity.Incident{ID: "i1", ProductID: "p9", Type: entity.IncidentRobo, Quantity: decimal.NewFromInt(2), Status: entity.StatusPendiente})
	})
	require.NoError(t, err)

	// Solo la colección de incidencias fue escrita
	data, err := mem.Load(ctx, store.KindProducts)
	require.NoError(t, err)
	assert.Nil(t, data)
	incidents, err := c.Incidents(ctx)
	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}
