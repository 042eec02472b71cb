package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/healthmoney/healthmoney/internal/api/v1"
	"github.com/healthmoney/healthmoney/internal/rest/middleware"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Invoice  *v1.InvoiceHandler
	Expense  *v1.ExpenseHandler
	Calendar *v1.CalendarHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Invoice routes
	invoices := router.Group("/invoices")
	{
		invoices.POST("/emit", handlers.Invoice.EmitInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id/pdf", handlers.Invoice.RedownloadInvoice)
	}

	// Expense and report routes
	expenses := router.Group("/expenses")
	{
		expenses.POST("", handlers.Expense.CreateExpense)
		expenses.GET("", handlers.Expense.ListExpenses)
	}
	router.GET("/reports/financial", handlers.Expense.FinancialReport)

	// Calendar routes, bound to the session-supplied OAuth token
	events := router.Group("/calendar/events", middleware.SessionTokenMiddleware)
	{
		events.POST("", handlers.Calendar.CreateEvent)
		events.GET("", handlers.Calendar.ListUpcomingEvents)
		events.DELETE("/:id", handlers.Calendar.DeleteEvent)
	}
}
