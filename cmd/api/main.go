package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/google/uuid"

	_ "github.com/jhoicas/holding-tracker/docs"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/holding-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/holding-tracker/internal/interfaces/http"
	"github.com/jhoicas/holding-tracker/pkg/config"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.Store
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		store = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		store = postgres.NewStore(pool)
	}

	wipeSecret := cfg.Wipe.Secret
	if wipeSecret == "" {
		// Los tokens emitidos dejan de valer al reiniciar.
		wipeSecret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("WIPE_SECRET vacío: se usa un secreto aleatorio")
	}

	rollupUC := analytics.NewRollupUseCase(store)
	companyUC := usecase.NewCompanyUseCase(store, log.Named("company"))
	subsidiaryUC := usecase.NewSubsidiaryUseCase(store, log.Named("subsidiary"))
	clientUC := usecase.NewClientUseCase(store, log.Named("client"))
	contractUC := usecase.NewContractUseCase(store, rollupUC, log.Named("contract"))
	ledgerUC := usecase.NewLedgerUseCase(store, log.Named("ledger"))
	bootstrapUC := usecase.NewBootstrapUseCase(store, usecase.BootstrapNames{
		Parent:       cfg.Bootstrap.ParentName,
		Subsidiaries: cfg.Bootstrap.Subsidiaries,
	}, log.Named("bootstrap"))
	adminUC := usecase.NewAdminUseCase(store, usecase.WipeSettings{
		Secret: wipeSecret,
		Issuer: cfg.App.Name,
		TTL:    time.Duration(cfg.Wipe.TTLSeconds) * time.Second,
	}, log.Named("admin"))

	// PDF: reporte del dashboard
	reportRenderer := infrapdf.NewDashboardReport(cfg.App.Name)
	dashboardUC := analytics.NewDashboardUseCase(store, rollupUC, reportRenderer)
	exportUC := analytics.NewExportUseCase(store, rollupUC)

	deps := httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		SubsidiaryUC: subsidiaryUC,
		ClientUC:     clientUC,
		ContractUC:   contractUC,
		LedgerUC:     ledgerUC,
		BootstrapUC:  bootstrapUC,
		AdminUC:      adminUC,
		RollupUC:     rollupUC,
		DashboardUC:  dashboardUC,
		ExportUC:     exportUC,
		Log:          log.Named("http"),
	}
	// Swagger UI en local: http://localhost:<port>/docs
	swaggerUI := swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Holding Tracker API",
	})
	app := httpRouter.NewApp(cfg.App.Name, deps, swaggerUI)

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
