package testutil

import (
	"context"
	"sync"

	"github.com/healthmoney/healthmoney/internal/domain/expense"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
)

// InMemoryExpenseStore implements expense.Repository
type InMemoryExpenseStore struct {
	mu       sync.RWMutex
	expenses []*expense.Expense
}

// NewInMemoryExpenseStore creates a new in-memory expense store
func NewInMemoryExpenseStore() *InMemoryExpenseStore {
	return &InMemoryExpenseStore{}
}

func (s *InMemoryExpenseStore) Create(ctx context.Context, exp *expense.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp == nil {
		return ierr.NewError("expense cannot be nil").
			Mark(ierr.ErrValidation)
	}

	stored := *exp
	s.expenses = append(s.expenses, &stored)
	return nil
}

func (s *InMemoryExpenseStore) List(ctx context.Context) ([]*expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*expense.Expense, len(s.expenses))
	for i, exp := range s.expenses {
		expCopy := *exp
		out[i] = &expCopy
	}
	return out, nil
}

// Clear removes all stored expenses
func (s *InMemoryExpenseStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nil
}
