package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	InvoicePDF *usecase.PDFUseCase // nil = sin /invoices/:id/pdf
	Logger     *logger.Logger
	Metrics    *Metrics                        // nil = sin /metrics
	Ping       func(ctx context.Context) error // nil = /health no consulta la DB
}

// Router registra middlewares y rutas de la API. El ErrorHandler de la app debe
// ser NewErrorHandler.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestObserver(log, deps.Metrics))
	app.Use(recover.New())

	app.Get("/health", healthHandler(deps.AppName, deps.Ping))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	// Companies
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.GetByCode)
	companies.Put("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	// Invoices
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	if deps.InvoicePDF != nil {
		invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	}
}

func healthHandler(appName string, ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			if err := ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable", "service": appName, "error": err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	}
}
