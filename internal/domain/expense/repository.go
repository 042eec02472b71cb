package expense

import (
	"context"
)

// Repository defines the interface for expense persistence operations
type Repository interface {
	// Create creates a new expense
	Create(ctx context.Context, expense *Expense) error

	// List retrieves all expenses in insertion order
	List(ctx context.Context) ([]*Expense, error)
}
