package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthmoney/healthmoney/internal/api/dto"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/service"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
	reportService  service.ReportService
	logger         *logger.Logger
}

func NewExpenseHandler(
	expenseService service.ExpenseService,
	reportService service.ReportService,
	logger *logger.Logger,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		reportService:  reportService,
		logger:         logger,
	}
}

// CreateExpense godoc
// @Summary Register an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create expense", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListExpenses godoc
// @Summary List expenses
// @Tags Expenses
// @Accept json
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	resp, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list expenses", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FinancialReport godoc
// @Summary Financial report
// @Description Revenue from emitted invoices against registered expenses
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /reports/financial [get]
func (h *ExpenseHandler) FinancialReport(c *gin.Context) {
	resp, err := h.reportService.FinancialReport(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to build financial report", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
