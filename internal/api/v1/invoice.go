package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthmoney/healthmoney/internal/api/dto"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/service"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// EmitInvoice godoc
// @Summary Emit a new invoice document
// @Description Persist the invoice best-effort and return the generated PDF
// @Tags Invoices
// @Accept json
// @Produce application/pdf
// @Param invoice body dto.EmitInvoiceRequest true "Invoice data"
// @Success 200 {file} application/pdf
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/emit [post]
func (h *InvoiceHandler) EmitInvoice(c *gin.Context) {
	var req dto.EmitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.EmitInvoice(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to emit invoice", "error", err)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+resp.Filename)
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}

// ListInvoices godoc
// @Summary List invoice history
// @Description List every emitted invoice with its line items
// @Tags Invoices
// @Accept json
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	resp, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list invoices", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RedownloadInvoice godoc
// @Summary Re-download an emitted invoice
// @Description Rebuild and convert the stored invoice into a fresh PDF
// @Tags Invoices
// @Accept json
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} application/pdf
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) RedownloadInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid invoice id").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.RedownloadInvoice(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to redownload invoice", "error", err, "invoice_id", id)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+resp.Filename)
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}
