package dto

import (
	"context"
	"strings"

	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/validator"
	"github.com/shopspring/decimal"
)

// LineItemData is the transmission form of one billable line. Numeric
// fields travel as decimal-formatted strings so the rendered document
// never carries floating point artifacts.
type LineItemData struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// EmitInvoiceRequest is the transmission form of an invoice. The order
// of Items is significant: it determines row order in the rendered table.
type EmitInvoiceRequest struct {
	CustomerName string         `json:"customer_name" validate:"required"`
	TaxID        string         `json:"tax_id"`
	FullAddress  string         `json:"full_address"`
	Neighborhood string         `json:"neighborhood"`
	CityState    string         `json:"city_state"`
	TotalAmount  string         `json:"total_amount"`
	Items        []LineItemData `json:"items"`
}

func (r *EmitInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if _, err := parseAmount(r.TotalAmount); err != nil {
		return ierr.WithError(err).
			WithHint("total_amount must be a decimal string").
			WithReportableDetails(map[string]any{
				"total_amount": r.TotalAmount,
			}).Mark(ierr.ErrValidation)
	}

	for idx, item := range r.Items {
		for field, value := range map[string]string{
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
			"line_total": item.LineTotal,
		} {
			if _, err := parseAmount(value); err != nil {
				return ierr.WithError(err).
					WithHintf("items[%d].%s must be a decimal string", idx, field).
					WithReportableDetails(map[string]any{
						"index": idx,
						"field": field,
						"value": value,
					}).Mark(ierr.ErrValidation)
			}
		}
	}

	return nil
}

// ToInvoice maps the transmission form to a fresh persisted record.
// Identity and display number are assigned here; decimal strings are
// parsed exactly, with no rounding.
func (r *EmitInvoiceRequest) ToInvoice(ctx context.Context) (*invoice.Invoice, error) {
	total, err := parseAmount(r.TotalAmount)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("total_amount must be a decimal string").
			Mark(ierr.ErrValidation)
	}

	inv := invoice.NewInvoice()
	inv.CustomerName = r.CustomerName
	inv.TaxID = r.TaxID
	inv.FullAddress = r.FullAddress
	inv.Neighborhood = r.Neighborhood
	inv.CityState = r.CityState
	inv.TotalAmount = total
	inv.LineItems = make([]*invoice.LineItem, 0, len(r.Items))

	for idx, item := range r.Items {
		quantity, err := parseAmount(item.Quantity)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("items[%d].quantity must be a decimal string", idx).
				Mark(ierr.ErrValidation)
		}
		unitPrice, err := parseAmount(item.UnitPrice)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("items[%d].unit_price must be a decimal string", idx).
				Mark(ierr.ErrValidation)
		}
		lineTotal, err := parseAmount(item.LineTotal)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("items[%d].line_total must be a decimal string", idx).
				Mark(ierr.ErrValidation)
		}

		li := invoice.NewLineItem()
		li.InvoiceID = inv.ID
		li.Code = item.Code
		li.Description = item.Description
		li.Quantity = quantity
		li.UnitPrice = unitPrice
		li.LineTotal = lineTotal
		li.DisplayOrder = idx
		inv.LineItems = append(inv.LineItems, li)
	}

	return inv, nil
}

// NewInvoiceDataFromInvoice maps a persisted record back to its
// transmission form. Decimal values are formatted losslessly; a nil
// line item collection maps to an empty sequence, never a failure.
func NewInvoiceDataFromInvoice(inv *invoice.Invoice) *EmitInvoiceRequest {
	data := &EmitInvoiceRequest{
		CustomerName: inv.CustomerName,
		TaxID:        inv.TaxID,
		FullAddress:  inv.FullAddress,
		Neighborhood: inv.Neighborhood,
		CityState:    inv.CityState,
		TotalAmount:  inv.TotalAmount.String(),
		Items:        make([]LineItemData, 0, len(inv.LineItems)),
	}

	for _, item := range inv.LineItems {
		data.Items = append(data.Items, LineItemData{
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   item.UnitPrice.String(),
			LineTotal:   item.LineTotal.String(),
		})
	}

	return data
}

// InvoiceResponse is the full persisted form returned by the history
// listing, nested line items included.
type InvoiceResponse struct {
	*invoice.Invoice
}

// NewInvoiceResponse creates a new invoice response from domain invoice
func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{Invoice: inv}
}

// InvoicePDFResponse carries the generated document bytes and the
// content-disposition filename for download responses.
type InvoicePDFResponse struct {
	Filename string
	PDF      []byte
}

// FilenameForEmission derives the download filename for a freshly
// emitted document from the customer name, spaces replaced by
// underscores.
func FilenameForEmission(customerName string) string {
	return "nota_fiscal_" + strings.ReplaceAll(customerName, " ", "_") + ".pdf"
}

// FilenameForRedownload derives the download filename for a re-served
// document from the invoice identity.
func FilenameForRedownload(id string) string {
	return "nota_" + id + ".pdf"
}

func parseAmount(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(value))
}
