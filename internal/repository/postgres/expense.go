package postgres

import (
	"context"

	"github.com/healthmoney/healthmoney/internal/domain/expense"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/postgres"
)

type expenseRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewExpenseRepository(db *postgres.DB, logger *logger.Logger) expense.Repository {
	return &expenseRepository{db: db, logger: logger}
}

func (r *expenseRepository) Create(ctx context.Context, exp *expense.Expense) error {
	query := `
	INSERT INTO expenses (
		id, description, category, amount, paid_at, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6
	)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		exp.ID,
		exp.Description,
		exp.Category,
		exp.Amount,
		exp.PaidAt,
		exp.CreatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to insert expense").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *expenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	query := `
	SELECT id, description, category, amount, paid_at, created_at
	FROM expenses
	ORDER BY created_at, id
	`

	expenses := []*expense.Expense{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &expenses, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list expenses").
			Mark(ierr.ErrDatabase)
	}

	return expenses, nil
}
