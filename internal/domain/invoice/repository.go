package invoice

import (
	"context"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// CreateWithLineItems creates a new invoice together with its owned
	// line items in a single transaction
	CreateWithLineItems(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID including its line items
	Get(ctx context.Context, id string) (*Invoice, error)

	// List retrieves all invoices in insertion order, line items included
	List(ctx context.Context) ([]*Invoice, error)
}
