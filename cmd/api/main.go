package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastro/almacen-api/internal/application/auth"
	"github.com/jcastro/almacen-api/internal/application/incident"
	"github.com/jcastro/almacen-api/internal/application/movement"
	"github.com/jcastro/almacen-api/internal/application/report"
	"github.com/jcastro/almacen-api/internal/application/usecase"
	infrapdf "github.com/jcastro/almacen-api/internal/infrastructure/pdf"
	"github.com/jcastro/almacen-api/internal/infrastructure/store"
	apphttp "github.com/jcastro/almacen-api/internal/interfaces/http"
	"github.com/jcastro/almacen-api/pkg/config"
	"github.com/jcastro/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	blobStore, cleanup, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar blob store")
	}
	defer cleanup()

	collections := store.NewCollections(blobStore, log)
	if cfg.Auth.Seed {
		if err := store.Seed(ctx, collections, log); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos iniciales")
		}
	}

	productRepo := store.NewProductRepository(collections)
	movementRepo := store.NewMovementRepository(collections)
	incidentRepo := store.NewIncidentRepository(collections)
	userRepo := store.NewUserRepository(collections)
	configRepo := store.NewConfigRepository(collections)
	sessionRepo := store.NewSessionRepository(collections)
	txRunner := store.NewTxRunner(collections)

	creds, err := auth.DefaultCredentials()
	if err != nil {
		log.Fatal().Err(err).Msg("preparar credenciales")
	}
	authUC := auth.NewUseCase(creds, sessionRepo, auth.JWTOptions{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   usecase.NewProductUseCase(productRepo, configRepo, log),
		MovementUC:  movement.NewUseCase(txRunner, movementRepo, configRepo, log),
		IncidentUC:  incident.NewUseCase(txRunner, incidentRepo, log),
		UserUC:      usecase.NewUserUseCase(userRepo, log),
		ConfigUC:    usecase.NewConfigUseCase(configRepo, log),
		DashboardUC: usecase.NewDashboardUseCase(productRepo, movementRepo, incidentRepo, configRepo),
		ReportUC:    report.NewUseCase(productRepo, movementRepo, configRepo, infrapdf.NewMarotoStockReport(), log),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newBlobStore construye el backend de persistencia según el driver
// configurado. cleanup cierra conexiones si el backend las tiene.
func newBlobStore(ctx context.Context, cfg config.StorageConfig) (store.BlobStore, func(), error) {
	noop := func() {}
	switch cfg.Driver {
	case "memory":
		return store.NewMemoryStore(), noop, nil
	case "redis":
		rs, err := store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return rs, func() { _ = rs.Close() }, nil
	case "postgres":
		ps, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return ps, ps.Close, nil
	default: // file
		fs, err := store.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	}
}
