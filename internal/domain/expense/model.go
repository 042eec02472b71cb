package expense

import (
	"time"

	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is a single operating expense of the clinic, used by the
// financial report alongside invoice revenue.
type Expense struct {
	ID          string          `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaidAt      time.Time       `db:"paid_at" json:"paid_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NewExpense returns an expense with a freshly assigned identity.
func NewExpense() *Expense {
	return &Expense{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		CreatedAt: time.Now().UTC(),
	}
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return ierr.NewError("expense validation failed").
			WithHint("description must not be empty").
			Mark(ierr.ErrValidation)
	}

	if e.Amount.IsNegative() {
		return ierr.NewError("expense validation failed").
			WithHint("amount must be non negative").
			Mark(ierr.ErrValidation)
	}

	return nil
}
