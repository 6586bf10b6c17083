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

	"github.com/jhoicas/mes-pda-api/internal/application/auth"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
	"github.com/jhoicas/mes-pda-api/internal/application/production"
	"github.com/jhoicas/mes-pda-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/mes-pda-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/mes-pda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mes-pda-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/mes-pda-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/mes-pda-api/internal/interfaces/http"
	"github.com/jhoicas/mes-pda-api/pkg/config"
	"github.com/jhoicas/mes-pda-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", loc.String()).
		Bool("auth_required", cfg.App.AuthRequired).
		Strs("atomic_ops", cfg.Ledger.AtomicOperations).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	masterRepo := postgres.NewMasterRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := inventory.NewEngine(txRunner, inventory.NewPolicy(cfg.Ledger.AtomicOperations), log.Component("ledger"))
	ledger := inventory.NewService(engine, masterRepo, loc)
	workOrderUC := production.NewWorkOrderUseCase(workOrderRepo)
	lookupUC := usecase.NewLookupUseCase(masterRepo, itemRepo, stockRepo, movementRepo, shipmentRepo, loc)
	reportUC := usecase.NewReportUseCase(lookupUC, shipmentRepo, itemRepo,
		infrapdf.NewMarotoPDFGenerator(), infraexcel.NewReceiptWriter())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Guardia de doble envío: solo con REDIS_ADDR configurado
	var guard httpRouter.SubmissionGuard
	if cfg.Redis.Enabled() {
		sg := infraredis.NewSubmissionGuard(infraredis.NewClient(cfg.Redis), cfg.Redis.GuardTTL(), log.Component("submit-guard"))
		defer sg.Close()
		if err := sg.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no responde; la guardia deja pasar los lotes")
		}
		guard = sg
	}

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(httpLog),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(httpLog))

	// Swagger UI: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "MES PDA API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:     ledger,
		Lookups:    lookupUC,
		Reports:    reportUC,
		WorkOrders: workOrderUC,
		Auth:       authUC,
		Guard:      guard,
		AuthConfig: httpRouter.AuthConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			Required:   cfg.App.AuthRequired,
			SystemUser: cfg.App.SystemUser,
		},
		Log: httpLog,
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
