package dto

import (
	"context"
	"time"

	"github.com/healthmoney/healthmoney/internal/domain/expense"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest registers one operating expense.
type CreateExpenseRequest struct {
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"`
	Amount      string `json:"amount" validate:"required"`
	PaidAt      string `json:"paid_at"` // YYYY-MM-DD, defaults to today
}

func (r *CreateExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if _, err := decimal.NewFromString(r.Amount); err != nil {
		return ierr.WithError(err).
			WithHint("amount must be a decimal string").
			WithReportableDetails(map[string]any{
				"amount": r.Amount,
			}).Mark(ierr.ErrValidation)
	}

	if r.PaidAt != "" {
		if _, err := time.Parse("2006-01-02", r.PaidAt); err != nil {
			return ierr.WithError(err).
				WithHint("paid_at must be formatted as YYYY-MM-DD").
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// ToExpense maps the request to a fresh persisted expense.
func (r *CreateExpenseRequest) ToExpense(ctx context.Context) (*expense.Expense, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("amount must be a decimal string").
			Mark(ierr.ErrValidation)
	}

	paidAt := time.Now().UTC()
	if r.PaidAt != "" {
		parsed, err := time.Parse("2006-01-02", r.PaidAt)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("paid_at must be formatted as YYYY-MM-DD").
				Mark(ierr.ErrValidation)
		}
		paidAt = parsed
	}

	exp := expense.NewExpense()
	exp.Description = r.Description
	exp.Category = r.Category
	exp.Amount = amount
	exp.PaidAt = paidAt
	return exp, nil
}

// ExpenseResponse is the persisted form of an expense.
type ExpenseResponse struct {
	*expense.Expense
}

func NewExpenseResponse(exp *expense.Expense) *ExpenseResponse {
	return &ExpenseResponse{Expense: exp}
}

// CategoryAmount is one category slice of the financial report.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialReportResponse summarizes revenue from emitted invoices
// against registered expenses.
type FinancialReportResponse struct {
	TotalRevenue       decimal.Decimal  `json:"total_revenue"`
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	Balance            decimal.Decimal  `json:"balance"`
	RevenueByCustomer  []CategoryAmount `json:"revenue_by_customer"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
}
