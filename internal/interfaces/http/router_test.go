package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/jcastro/almacen-api/internal/application/auth"
	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/application/incident"
	"github.com/jcastro/almacen-api/internal/application/movement"
	"github.com/jcastro/almacen-api/internal/application/report"
	"github.com/jcastro/almacen-api/internal/application/usecase"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/infrastructure/pdf"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
	apphttp "github.com/jcastro/almacen-api/internal/interfaces/http"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// newTestAPI levanta la API completa sobre el backend en memoria, con los
// datos demo sembrados.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	c := store.NewCollections(store.NewMemoryStore(), log)
	require.NoError(t, store.Seed(t.Context(), c, log))

	products := store.NewProductRepository(c)
	movements := store.NewMovementRepository(c)
	incidents := store.NewIncidentRepository(c)
	users := store.NewUserRepository(c)
	configRepo := store.NewConfigRepository(c)
	sessions := store.NewSessionRepository(c)
	tx := store.NewTxRunner(c)

	creds, err := appauth.DefaultCredentials()
	require.NoError(t, err)
	authUC := appauth.NewUseCase(creds, sessions, appauth.JWTOptions{
		Secret: testJWTSecret, Issuer: testIssuer, ExpMinutes: testExpMin,
	}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   usecase.NewProductUseCase(products, configRepo, log),
		MovementUC:  movement.NewUseCase(tx, movements, configRepo, log),
		IncidentUC:  incident.NewUseCase(tx, incidents, log),
		UserUC:      usecase.NewUserUseCase(users, log),
		ConfigUC:    usecase.NewConfigUseCase(configRepo, log),
		DashboardUC: usecase.NewDashboardUseCase(products, movements, incidents, configRepo),
		ReportUC:    report.NewUseCase(products, movements, configRepo, pdf.NewMarotoStockReport(), log),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return "Bearer " + out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAPI_FlujoMovimientoCompleto(t *testing.T) {
	app := newTestAPI(t)
	operToken := login(t, app, "operator@almacen.com", "operator123")
	mgrToken := login(t, app, "manager@almacen.com", "manager123")

	// El operador lista el catálogo sembrado y elige un producto.
	resp := doJSON(t, app, http.MethodGet, "/api/products", operToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.NotEmpty(t, list.Items)
	product := list.Items[0]

	// Solicita una salida: nace pendiente.
	resp = doJSON(t, app, http.MethodPost, "/api/movements", operToken, dto.CreateMovementRequest{
		ProductID: product.ID,
		Type:      entity.MovementSalida,
		Quantity:  decimal.NewFromInt(1),
		Reason:    "entrega a obra",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var mov dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mov))
	assert.Equal(t, entity.StatusPendiente, mov.Status)

	// El operador no puede aprobar: 403 del middleware.
	resp = doJSON(t, app, http.MethodPost, "/api/movements/"+mov.ID+"/approve", operToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// El manager aprueba y el stock baja en 1.
	resp = doJSON(t, app, http.MethodPost, "/api/movements/"+mov.ID+"/approve", mgrToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+product.ID, mgrToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var after dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	assert.True(t, after.Quantity.Equal(product.Quantity.Sub(decimal.NewFromInt(1))))

	// Re-aprobar un terminal devuelve 409.
	resp = doJSON(t, app, http.MethodPost, "/api/movements/"+mov.ID+"/approve", mgrToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_LoginInvalidoYRutasProtegidas(t *testing.T) {
	app := newTestAPI(t)

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@almacen.com", Password: "mala"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Sin token no se entra.
	resp = doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_AuditorSoloLectura(t *testing.T) {
	app := newTestAPI(t)
	audToken := login(t, app, "auditor@almacen.com", "auditor123")

	// Puede leer reportes.
	resp := doJSON(t, app, http.MethodGet, "/api/reports/products.csv", audToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	// No puede crear movimientos ni tocar la configuración.
	resp = doJSON(t, app, http.MethodPost, "/api/movements", audToken, dto.CreateMovementRequest{
		ProductID: "x", Type: entity.MovementEntrada, Quantity: decimal.NewFromInt(1),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/config", audToken, dto.SystemConfigDTO{CompanyName: "X", Currency: "USD"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_SesionPersistida(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app, "admin@almacen.com", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var id dto.IdentityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
	assert.Equal(t, "admin@almacen.com", id.Email)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/session", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
