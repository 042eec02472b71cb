package main

import (
	"context"
	"time"

	"github.com/healthmoney/healthmoney/internal/api"
	v1 "github.com/healthmoney/healthmoney/internal/api/v1"
	"github.com/healthmoney/healthmoney/internal/calendar"
	"github.com/healthmoney/healthmoney/internal/config"
	"github.com/healthmoney/healthmoney/internal/httpclient"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/pdfshift"
	"github.com/healthmoney/healthmoney/internal/postgres"
	"github.com/healthmoney/healthmoney/internal/render"
	"github.com/healthmoney/healthmoney/internal/repository"
	"github.com/healthmoney/healthmoney/internal/service"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/healthmoney/healthmoney/internal/validator"
	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// @title HealthMoney API
// @version 1.0
// @description Invoice emission and practice finance service
// @BasePath /v1

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Rendering
			render.SystemClock,
			render.NewTimestampProtocolGenerator,
			render.NewRenderer,

			// Outbound HTTP clients
			providePDFShiftClient,
			provideCalendarClient,

			// Repositories
			repository.NewInvoiceRepository,
			repository.NewExpenseRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewInvoiceService,
			service.NewExpenseService,
			service.NewReportService,
			service.NewCalendarService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func providePDFShiftClient(cfg *config.Configuration) pdfshift.Client {
	return pdfshift.NewClient(cfg, httpclient.NewClientWithTimeout(cfg.PDFShift.Timeout()))
}

func provideCalendarClient(cfg *config.Configuration) calendar.Client {
	return calendar.NewClient(cfg, httpclient.NewClientWithTimeout(cfg.Calendar.Timeout()))
}

func provideHandlers(
	logger *logger.Logger,
	invoiceService service.InvoiceService,
	expenseService service.ExpenseService,
	reportService service.ReportService,
	calendarService service.CalendarService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Invoice:  v1.NewInvoiceHandler(invoiceService, logger),
		Expense:  v1.NewExpenseHandler(expenseService, reportService, logger),
		Calendar: v1.NewCalendarHandler(calendarService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
	_ *govalidator.Validate,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
