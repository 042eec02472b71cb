package postgres

import (
	"context"
	"database/sql"

	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/postgres"
	"github.com/jmoiron/sqlx"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)

		query := `
		INSERT INTO invoices (
			id, invoice_number, customer_name, tax_id, full_address,
			neighborhood, city_state, total_amount, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		`

		_, err := q.ExecContext(ctx, query,
			inv.ID,
			inv.InvoiceNumber,
			inv.CustomerName,
			inv.TaxID,
			inv.FullAddress,
			inv.Neighborhood,
			inv.CityState,
			inv.TotalAmount,
			inv.CreatedAt,
		)
		if err != nil {
			return ierr.WithError(err).
				WithHint("failed to insert invoice").
				Mark(ierr.ErrDatabase)
		}

		itemQuery := `
		INSERT INTO invoice_line_items (
			id, invoice_id, code, description, quantity, unit_price,
			line_total, display_order
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		`

		for _, item := range inv.LineItems {
			_, err := q.ExecContext(ctx, itemQuery,
				item.ID,
				item.InvoiceID,
				item.Code,
				item.Description,
				item.Quantity,
				item.UnitPrice,
				item.LineTotal,
				item.DisplayOrder,
			)
			if err != nil {
				return ierr.WithError(err).
					WithHint("failed to insert invoice line item").
					Mark(ierr.ErrDatabase)
			}
		}

		return nil
	})
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	query := `
	SELECT id, invoice_number, customer_name, tax_id, full_address,
		neighborhood, city_state, total_amount, created_at
	FROM invoices
	WHERE id = $1
	`

	var inv invoice.Invoice
	err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("invoice not found").
			WithHintf("invoice %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	items, err := r.listLineItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	inv.LineItems = items[id]
	if inv.LineItems == nil {
		inv.LineItems = []*invoice.LineItem{}
	}

	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `
	SELECT id, invoice_number, customer_name, tax_id, full_address,
		neighborhood, city_state, total_amount, created_at
	FROM invoices
	ORDER BY created_at, id
	`

	invoices := []*invoice.Invoice{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}

	itemsByInvoice, err := r.listLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		inv.LineItems = itemsByInvoice[inv.ID]
		if inv.LineItems == nil {
			inv.LineItems = []*invoice.LineItem{}
		}
	}

	return invoices, nil
}

func (r *invoiceRepository) listLineItems(ctx context.Context, invoiceIDs []string) (map[string][]*invoice.LineItem, error) {
	query, args, err := sqlx.In(`
	SELECT id, invoice_id, code, description, quantity, unit_price,
		line_total, display_order
	FROM invoice_line_items
	WHERE invoice_id IN (?)
	ORDER BY invoice_id, display_order
	`, invoiceIDs)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to build line item query").
			Mark(ierr.ErrDatabase)
	}

	items := []*invoice.LineItem{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list invoice line items").
			Mark(ierr.ErrDatabase)
	}

	byInvoice := make(map[string][]*invoice.LineItem, len(invoiceIDs))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}
	return byInvoice, nil
}
