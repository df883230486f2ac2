package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
	"github.com/jcastro/almacen-api/pkg/jwt"
	"github.com/jcastro/almacen-api/pkg/logger"
)

const testSecret = "secreto-de-prueba"

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	creds, err := DefaultCredentials()
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	c := store.NewCollections(store.NewMemoryStore(), log)
	opts := JWTOptions{Secret: testSecret, Issuer: "almacen-api", ExpMinutes: 60}
	return NewUseCase(creds, store.NewSessionRepository(c), opts, log)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "manager@almacen.com", Password: "manager123"})
	require.NoError(t, err)
	assert.Equal(t, "María Gerente", resp.User.Name)
	assert.Equal(t, entity.RoleManager, resp.User.Role)

	email, name, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager@almacen.com", email)
	assert.Equal(t, "María Gerente", name)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@almacen.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@almacen.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	// El email se compara exacto, sensible a mayúsculas.
	_, err = uc.Login(dto.LoginRequest{Email: "Admin@Almacen.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
}

func TestSesion_PersisteYSeLimpia(t *testing.T) {
	uc := newUseCase(t)

	// Sin login no hay sesión.
	_, err := uc.CurrentSession()
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	_, err = uc.Login(dto.LoginRequest{Email: "operator@almacen.com", Password: "operator123"})
	require.NoError(t, err)

	id, err := uc.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, "operator@almacen.com", id.Email)
	assert.Equal(t, entity.RoleOperator, id.Role)

	require.NoError(t, uc.Logout())
	_, err = uc.CurrentSession()
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	// Logout repetido no falla.
	require.NoError(t, uc.Logout())
}
