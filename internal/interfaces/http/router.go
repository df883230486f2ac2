package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcastro/almacen-api/internal/application/auth"
	"github.com/jcastro/almacen-api/internal/application/incident"
	"github.com/jcastro/almacen-api/internal/application/movement"
	"github.com/jcastro/almacen-api/internal/application/report"
	"github.com/jcastro/almacen-api/internal/application/usecase"
	"github.com/jcastro/almacen-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *movement.UseCase
	IncidentUC  *incident.UseCase
	UserUC      *usecase.UserUseCase
	ConfigUC    *usecase.ConfigUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *report.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (sin auth, pensado para scraping interno).
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth: login público; logout y sesión requieren token.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rutas protegidas (requieren Bearer Token). La política fina rol×acción
	// vive en los casos de uso; RequireCapability solo corta temprano.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireCapability(policy.ActionCreateProduct), productHandler.Create)
	products.Put("/:id", RequireCapability(policy.ActionEditProduct), productHandler.Update)
	products.Delete("/:id", RequireCapability(policy.ActionDeleteProduct), productHandler.Delete)

	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", RequireCapability(policy.ActionCreateMovement), movementHandler.Create)
	movements.Post("/:id/approve", RequireCapability(policy.ActionApproveMovement), movementHandler.Approve)
	movements.Post("/:id/reject", RequireCapability(policy.ActionApproveMovement), movementHandler.Reject)

	incidents := protected.Group("/incidents")
	incidentHandler := NewIncidentHandler(deps.IncidentUC)
	incidents.Get("/", incidentHandler.List)
	incidents.Get("/:id", incidentHandler.GetByID)
	incidents.Post("/", RequireCapability(policy.ActionCreateIncident), incidentHandler.Create)
	incidents.Post("/:id/resolve", RequireCapability(policy.ActionResolveIncident), incidentHandler.Resolve)

	users := protected.Group("/users", RequireCapability(policy.ActionManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config", RequireCapability(policy.ActionEditConfig), configHandler.Update)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	reports := protected.Group("/reports", RequireCapability(policy.ActionViewReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/products.csv", reportHandler.ProductsCSV)
	reports.Get("/movements.csv", reportHandler.MovementsCSV)
	reports.Get("/movements.xml", reportHandler.MovementsXML)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}
