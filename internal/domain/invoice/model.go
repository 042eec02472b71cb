package invoice

import (
	"time"

	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is the persisted form of a fiscal document. It is created only as
// a side effect of emission and is immutable once stored.
type Invoice struct {
	ID            string          `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	CustomerName  string          `db:"customer_name" json:"customer_name"`
	TaxID         string          `db:"tax_id" json:"tax_id"`
	FullAddress   string          `db:"full_address" json:"full_address"`
	Neighborhood  string          `db:"neighborhood" json:"neighborhood"`
	CityState     string          `db:"city_state" json:"city_state"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`

	// LineItems are exclusively owned by the invoice; deletion cascades.
	LineItems []*LineItem `db:"-" json:"line_items"`
}

// NewInvoice returns an invoice with a freshly assigned identity and
// display number.
func NewInvoice() *Invoice {
	return &Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE_NUMBER),
		CreatedAt:     time.Now().UTC(),
	}
}

// LineItemTotal returns the sum of line totals across all items.
func (i *Invoice) LineItemTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range i.LineItems {
		sum = sum.Add(item.LineTotal)
	}
	return sum
}

// Validate checks structural invariants of a persisted invoice.
// The caller-supplied total is NOT required to match the line item sum;
// that mismatch is detected and logged by the service, never rejected.
func (i *Invoice) Validate() error {
	if i.CustomerName == "" {
		return ierr.NewError("invoice validation failed").
			WithHint("customer_name must not be empty").
			Mark(ierr.ErrValidation)
	}

	if i.TotalAmount.IsNegative() {
		return ierr.NewError("invoice validation failed").
			WithHint("total_amount must be non negative").
			Mark(ierr.ErrValidation)
	}

	for _, item := range i.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
