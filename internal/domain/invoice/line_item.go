package invoice

import (
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is one billable row of a persisted invoice. It carries a
// non-owning back-reference to its invoice and exact decimal amounts.
type LineItem struct {
	ID          string          `db:"id" json:"id"`
	InvoiceID   string          `db:"invoice_id" json:"invoice_id"`
	Code        string          `db:"code" json:"code"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	LineTotal   decimal.Decimal `db:"line_total" json:"line_total"`
	// DisplayOrder preserves the wire order of items; it determines row
	// order in the rendered document.
	DisplayOrder int `db:"display_order" json:"display_order"`
}

// NewLineItem returns a line item with a freshly assigned identity.
func NewLineItem() *LineItem {
	return &LineItem{
		ID: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
	}
}

// Validate validates the invoice line item
func (i *LineItem) Validate() error {
	if i.Quantity.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("quantity must be non negative").
			Mark(ierr.ErrValidation)
	}

	if i.UnitPrice.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("unit_price must be non negative").
			Mark(ierr.ErrValidation)
	}

	if i.LineTotal.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("line_total must be non negative").
			Mark(ierr.ErrValidation)
	}

	return nil
}
