package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	SubsidiaryUC *usecase.SubsidiaryUseCase
	ClientUC     *usecase.ClientUseCase
	ContractUC   *usecase.ContractUseCase
	LedgerUC     *usecase.LedgerUseCase
	BootstrapUC  *usecase.BootstrapUseCase
	AdminUC      *usecase.AdminUseCase
	RollupUC     *analytics.RollupUseCase
	DashboardUC  *analytics.DashboardUseCase
	ExportUC     *analytics.ExportUseCase
	Log          *logger.Logger
}

// NewApp construye la aplicación Fiber con recover, log de peticiones, /health y las rutas de la API.
// Los middlewares extra (p. ej. swagger) se registran antes de las rutas.
func NewApp(appName string, deps RouterDeps, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	for _, h := range extra {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies + bootstrap de la organización por defecto
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.BootstrapUC, deps.RollupUC, deps.Log)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/rollup", companyHandler.Rollup)
	api.Post("/bootstrap", companyHandler.Bootstrap)

	// Subsidiaries
	subsidiaryHandler := NewSubsidiaryHandler(deps.SubsidiaryUC, deps.RollupUC, deps.Log)
	subsidiaries := api.Group("/subsidiaries")
	subsidiaries.Get("/", subsidiaryHandler.List)
	subsidiaries.Post("/", subsidiaryHandler.Create)
	subsidiaries.Get("/:id", subsidiaryHandler.GetByID)
	subsidiaries.Get("/:id/rollup", subsidiaryHandler.Rollup)

	// Clients
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	clients := api.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)

	// Contracts y sus movimientos
	contractHandler := NewContractHandler(deps.ContractUC, deps.LedgerUC, deps.RollupUC, deps.Log)
	contracts := api.Group("/contracts")
	contracts.Get("/", contractHandler.List)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/:id", contractHandler.Detail)
	contracts.Patch("/:id/status", contractHandler.UpdateStatus)
	contracts.Get("/:id/aggregate", contractHandler.Aggregate)
	contracts.Post("/:id/revenues", contractHandler.RecordRevenue)
	contracts.Post("/:id/expenses", contractHandler.RecordExpense)
	contracts.Post("/:id/equity-awards", contractHandler.AwardEquity)

	// Dashboard y exportación
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ExportUC, deps.Log)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/", dashboardHandler.GetSummary)
	dashboard.Get("/revenue-series", dashboardHandler.GetRevenueSeries)
	dashboard.Get("/report.pdf", dashboardHandler.GetReport)
	api.Get("/export/contracts.csv", dashboardHandler.ExportContracts)

	// Admin: tablas y borrado en dos pasos
	adminHandler := NewAdminHandler(deps.AdminUC, deps.Log)
	admin := api.Group("/admin")
	admin.Get("/tables/:table", adminHandler.Table)
	admin.Post("/wipe/enable", adminHandler.EnableWipe)
	admin.Post("/wipe/confirm", adminHandler.ConfirmWipe)
}
