package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/refdata"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/views"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	References  *refdata.Store
	StockUC     *stock.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	ViewsUC     *views.UseCase
	PDF         analytics.ReportExporter
	XLSX        analytics.ReportExporter
	JWTSecret   string
	DefaultLang string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "references_loaded": deps.References.Loaded()})
	})

	api := app.Group("/api", LanguageMiddleware(deps.DefaultLang))

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Referencias
	refHandler := NewReferenceHandler(deps.References, deps.DashboardUC, deps.Log)
	protected.Get("/references", refHandler.List)
	protected.Post("/references/refresh", refHandler.Refresh)
	protected.Get("/references/:kind", refHandler.ListKind)

	// Stock y proveedores
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Post("/stock-in", stockHandler.RecordStockIn)
	protected.Post("/stock-transfers", stockHandler.RecordTransfer)
	protected.Post("/suppliers", RequireRole(entity.RoleAdmin, entity.RoleManager), stockHandler.CreateSupplier)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF, deps.XLSX)
	protected.Get("/reports/product-mix", reportHandler.GetProductMix)
	protected.Get("/reports/product-mix.pdf", reportHandler.ExportPDF)
	protected.Get("/reports/product-mix.xlsx", reportHandler.ExportXLSX)

	// Dashboard
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashHandler.GetSummary)
	protected.Post("/dashboard/refresh", dashHandler.Refresh)

	// Páginas
	viewHandler := NewViewHandler(deps.ViewsUC)
	protected.Get("/views/:id", viewHandler.Show)
}
