package service

import (
	"context"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/pdfshift"
	"github.com/healthmoney/healthmoney/internal/render"
	"github.com/samber/lo"
)

// InvoiceService orchestrates document emission: best-effort history
// persistence, markup rendering and remote PDF conversion.
type InvoiceService interface {
	// EmitInvoice generates a fresh document for the given data. The
	// invoice is persisted best-effort: a store failure is logged and
	// never blocks document generation.
	EmitInvoice(ctx context.Context, req dto.EmitInvoiceRequest) (*dto.InvoicePDFResponse, error)

	// RedownloadInvoice re-serves a previously emitted invoice. The
	// document is rendered freshly, so the protocol number and emission
	// date differ from the original download.
	RedownloadInvoice(ctx context.Context, id string) (*dto.InvoicePDFResponse, error)

	// ListInvoices returns the full emission history in insertion order.
	ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error)
}

type invoiceService struct {
	logger      *logger.Logger
	invoiceRepo invoice.Repository
	renderer    render.Renderer
	converter   pdfshift.Client
}

func NewInvoiceService(
	invoiceRepo invoice.Repository,
	renderer render.Renderer,
	converter pdfshift.Client,
	logger *logger.Logger,
) InvoiceService {
	return &invoiceService{
		logger:      logger,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		converter:   converter,
	}
}

func (s *invoiceService) EmitInvoice(ctx context.Context, req dto.EmitInvoiceRequest) (*dto.InvoicePDFResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := req.ToInvoice(ctx)
	if err != nil {
		return nil, err
	}

	// The caller-supplied total is rendered as-is; a mismatch against the
	// line item sum is surfaced in the logs, not rejected.
	if !inv.TotalAmount.Equal(inv.LineItemTotal()) {
		s.logger.Warnw("invoice total does not match line item sum",
			"invoice_id", inv.ID,
			"total_amount", inv.TotalAmount.String(),
			"line_item_total", inv.LineItemTotal().String(),
		)
	}

	// Best-effort history tracking: the document must not be lost just
	// because persistence failed.
	if err := s.invoiceRepo.CreateWithLineItems(ctx, inv); err != nil {
		s.logger.Errorw("failed to persist invoice history",
			"invoice_id", inv.ID,
			"error", err,
		)
	}

	return s.generateDocument(ctx, &req, dto.FilenameForEmission(req.CustomerName))
}

func (s *invoiceService) RedownloadInvoice(ctx context.Context, id string) (*dto.InvoicePDFResponse, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data := dto.NewInvoiceDataFromInvoice(inv)
	return s.generateDocument(ctx, data, dto.FilenameForRedownload(inv.ID))
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return dto.NewInvoiceResponse(inv)
	}), nil
}

func (s *invoiceService) generateDocument(ctx context.Context, data *dto.EmitInvoiceRequest, filename string) (*dto.InvoicePDFResponse, error) {
	html, err := s.renderer.RenderHTML(data)
	if err != nil {
		return nil, err
	}

	pdf, err := s.converter.Convert(ctx, html)
	if err != nil {
		return nil, err
	}

	return &dto.InvoicePDFResponse{
		Filename: filename,
		PDF:      pdf,
	}, nil
}
