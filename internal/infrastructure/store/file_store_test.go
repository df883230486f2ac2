package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
	"github.com/jcastro/almacen-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Kind nunca guardado → (nil, nil)
	data, err := fs.Load(ctx, store.KindProducts)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, fs.Save(ctx, store.KindProducts, []byte(`[{"id":"1"}]`)))
	data, err = fs.Load(ctx, store.KindProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	require.NoError(t, fs.Delete(ctx, store.KindProducts))
	data, err = fs.Load(ctx, store.KindProducts)
	require.NoError(t, err)
	assert.Nil(t, data)

	// Delete de algo inexistente no es error
	require.NoError(t, fs.Delete(ctx, store.KindProducts))
}

func TestCollections_BlobCorruptoSeTrataComoVacio(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)

	// Blob ilegible en disco
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.KindProducts+".json"), []byte("{not json"), 0o644))

	c := store.NewCollections(fs, testLogger())
	products, err := c.Products(ctx)
	require.NoError(t, err, "corrupto no debe ser fatal")
	assert.Empty(t, products)
}

func TestCollections_ConfigAusenteDevuelveDefaults(t *testing.T) {
	c := store.NewCollections(store.NewMemoryStore(), testLogger())
	repo := store.NewConfigRepository(c)

	cfg, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultConfig(), cfg)

	cfg.AutoApproveMovements = true
	cfg.CompanyName = "Almacén Norte"
	require.NoError(t, repo.Save(cfg))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.True(t, got.AutoApproveMovements)
	assert.Equal(t, "Almacén Norte", got.CompanyName)
}

func TestProductRepo_CRUD(t *testing.T) {
	c := store.NewCollections(store.NewMemoryStore(), testLogger())
	repo := store.NewProductRepository(c)

	p := &entity.Product{ID: "p1", Name: "Caja", Quantity: decimal.NewFromInt(10)}
	require.NoError(t, repo.Create(p))
	assert.Error(t, repo.Create(p), "id duplicado debe fallar")

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Caja", got.Name)

	got.Name = "Caja Grande"
	require.NoError(t, repo.Update(got))
	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Caja Grande", again.Name)

	missing, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete("p1"))
	assert.Error(t, repo.Delete("p1"))
}

func TestSessionRepo_PersisteIdentidadSinPassword(t *testing.T) {
	c := store.NewCollections(store.NewMemoryStore(), testLogger())
	repo := store.NewSessionRepository(c)

	id, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, id)

	require.NoError(t, repo.Save(entity.Identity{Email: "admin@almacen.com", Name: "Admin Principal", Role: entity.RoleAdmin}))
	id, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, entity.RoleAdmin, id.Role)

	require.NoError(t, repo.Clear())
	id, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSeed_SoloColeccionesVacias(t *testing.T) {
	ctx := context.Background()
	c := store.NewCollections(store.NewMemoryStore(), testLogger())

	require.NoError(t, store.Seed(ctx, c, testLogger()))
	products, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
	users, err := c.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	// Un segundo seed no duplica ni pisa datos existentes
	products[0].Name = "Editado"
	require.NoError(t, c.SaveProducts(ctx, products[:1]))
	require.NoError(t, store.Seed(ctx, c, testLogger()))
	after, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Editado", after[0].Name)
}
